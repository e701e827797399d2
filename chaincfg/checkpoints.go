// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigcheckVerificationFactor is the relative cost of verifying a transaction
// after the last checkpoint, where signatures must be checked, compared to
// one before it.
const sigcheckVerificationFactor = 5.0

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData is the checkpoint table of a network together with the
// metadata used to estimate initial sync progress.
type CheckpointData struct {
	// Checkpoints ordered from oldest to newest.  The first entry is
	// always the genesis block.
	Checkpoints []Checkpoint

	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TxCountAtLastCheckpoint is the total number of transactions between
	// genesis and the last checkpoint.
	TxCountAtLastCheckpoint uint64

	// TxPerDayAfterCheckpoint is the estimated number of transactions per
	// day after the last checkpoint.
	TxPerDayAfterCheckpoint float64
}

// newCheckpointData returns a checkpoint table containing only the genesis
// block of a network.
func newCheckpointData(genesisHash *chainhash.Hash, genesisTime time.Time,
	spacing time.Duration) CheckpointData {

	return CheckpointData{
		Checkpoints:             []Checkpoint{{0, genesisHash}},
		LastCheckpointTime:      genesisTime,
		TxCountAtLastCheckpoint: 1,
		TxPerDayAfterCheckpoint: float64(24*time.Hour) / float64(spacing),
	}
}

// HeightToHash returns the checkpointed hash at height.
func (d *CheckpointData) HeightToHash(height int32) (*chainhash.Hash, bool) {
	i := sort.Search(len(d.Checkpoints), func(i int) bool {
		return d.Checkpoints[i].Height >= height
	})
	if i < len(d.Checkpoints) && d.Checkpoints[i].Height == height {
		return d.Checkpoints[i].Hash, true
	}
	return nil, false
}

// LastCheckpoint returns the most recent checkpoint or nil when the table is
// empty.
func (d *CheckpointData) LastCheckpoint() *Checkpoint {
	if len(d.Checkpoints) == 0 {
		return nil
	}
	return &d.Checkpoints[len(d.Checkpoints)-1]
}

// LastCheckpointHeight returns the height of the most recent checkpoint.
func (d *CheckpointData) LastCheckpointHeight() int32 {
	if cp := d.LastCheckpoint(); cp != nil {
		return cp.Height
	}
	return 0
}

// EstimatedTxCount approximates the number of transactions in the chain up to
// height.  Heights up to the last checkpoint are interpolated linearly; beyond
// it the daily rate is applied to the time the remaining blocks take at the
// given block spacing.  The estimate is for progress display only.
func (d *CheckpointData) EstimatedTxCount(height int32, spacing time.Duration) uint64 {
	if height <= 0 {
		return 0
	}

	last := d.LastCheckpointHeight()
	if height <= last {
		return d.TxCountAtLastCheckpoint * uint64(height) / uint64(last)
	}

	days := float64(height-last) * spacing.Hours() / 24
	return d.TxCountAtLastCheckpoint + uint64(days*d.TxPerDayAfterCheckpoint)
}

// GuessVerificationProgress estimates the fraction of the chain which has
// been verified given the transaction count and timestamp of the current tip.
// Work after the last checkpoint is weighted by the cost of checking
// signatures.  The result is in [0, 1].
func (d *CheckpointData) GuessVerificationProgress(txCount uint64, tipTime,
	now time.Time) float64 {

	var workBefore, workAfter float64
	if txCount <= d.TxCountAtLastCheckpoint {
		cheapAfter := float64(d.TxCountAtLastCheckpoint - txCount)
		expensiveAfter := nonNegativeDays(now.Sub(d.LastCheckpointTime)) *
			d.TxPerDayAfterCheckpoint
		workBefore = float64(txCount)
		workAfter = cheapAfter + expensiveAfter*sigcheckVerificationFactor
	} else {
		cheapBefore := float64(d.TxCountAtLastCheckpoint)
		expensiveBefore := float64(txCount - d.TxCountAtLastCheckpoint)
		expensiveAfter := nonNegativeDays(now.Sub(tipTime)) *
			d.TxPerDayAfterCheckpoint
		workBefore = cheapBefore + expensiveBefore*sigcheckVerificationFactor
		workAfter = expensiveAfter * sigcheckVerificationFactor
	}

	if workBefore+workAfter == 0 {
		return 0
	}
	return workBefore / (workBefore + workAfter)
}

func nonNegativeDays(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return d.Hours() / 24
}
