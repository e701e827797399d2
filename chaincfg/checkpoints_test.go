// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestGenesisCheckpoint ensures the first checkpoint of every network is its
// genesis block.
func TestGenesisCheckpoint(t *testing.T) {
	for n := MainNet; n < numNetworks; n++ {
		p, err := Create(n)
		require.NoError(t, err)

		hash, ok := p.Checkpoints.HeightToHash(0)
		require.True(t, ok, n)
		require.Equal(t, p.GenesisHash, hash, n)
		require.Zero(t, p.LatestCheckpointHeight(), n)
		require.Equal(t, p.GenesisBlock.Header.Timestamp,
			p.Checkpoints.LastCheckpointTime, n)
		require.EqualValues(t, 1, p.Checkpoints.TxCountAtLastCheckpoint, n)

		_, ok = p.Checkpoints.HeightToHash(1)
		require.False(t, ok, n)
	}
}

// testCheckpoints returns a checkpoint table with two checkpoints a hundred
// blocks apart.
func testCheckpoints() CheckpointData {
	return CheckpointData{
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("000009f632929508d7d1e3530e2a9f795824074d4c0f3cd670acb8ecb424de87")},
			{100, newHashFromStr("0a")},
		},
		LastCheckpointTime:      time.Unix(1528226239, 0),
		TxCountAtLastCheckpoint: 1000,
		TxPerDayAfterCheckpoint: 100,
	}
}

// TestCheckpointLookup ensures checkpoints are found by height.
func TestCheckpointLookup(t *testing.T) {
	d := testCheckpoints()

	tests := []struct {
		height int32
		ok     bool
	}{
		{0, true},
		{1, false},
		{99, false},
		{100, true},
		{101, false},
		{-1, false},
	}
	for _, test := range tests {
		hash, ok := d.HeightToHash(test.height)
		require.Equal(t, test.ok, ok, "height %d", test.height)
		if ok {
			require.NotNil(t, hash)
		}
	}

	require.EqualValues(t, 100, d.LastCheckpointHeight())
	require.Equal(t, &d.Checkpoints[1], d.LastCheckpoint())

	var empty CheckpointData
	require.Nil(t, empty.LastCheckpoint())
	require.Zero(t, empty.LastCheckpointHeight())
}

// TestEstimatedTxCount ensures transaction counts are interpolated up to the
// last checkpoint and extrapolated at the daily rate beyond it.
func TestEstimatedTxCount(t *testing.T) {
	d := testCheckpoints()

	tests := []struct {
		height int32
		want   uint64
	}{
		{-5, 0},
		{0, 0},
		{50, 500},
		{100, 1000},
		{124, 1100},
		{148, 1200},
	}
	for _, test := range tests {
		got := d.EstimatedTxCount(test.height, time.Hour)
		require.Equal(t, test.want, got, "height %d", test.height)
	}

	// A genesis only table estimates one block per target spacing.
	p := regTestParams()
	require.Equal(t, 24*time.Hour/p.TargetTimePerBlock,
		time.Duration(p.Checkpoints.TxPerDayAfterCheckpoint))
	require.Zero(t, p.EstimatedTxCount(0))
	require.True(t, p.EstimatedTxCount(1440) >= 1440)
}

// TestGuessVerificationProgress ensures sync progress weighs transactions
// after the last checkpoint by the cost of checking their signatures.
func TestGuessVerificationProgress(t *testing.T) {
	d := testCheckpoints()
	day := 24 * time.Hour
	cpTime := d.LastCheckpointTime

	tests := []struct {
		name    string
		txCount uint64
		tipTime time.Time
		now     time.Time
		want    float64
	}{{
		name:    "half way to checkpoint",
		txCount: 500,
		tipTime: cpTime.Add(-day),
		now:     cpTime,
		want:    0.5,
	}, {
		name:    "at checkpoint",
		txCount: 1000,
		tipTime: cpTime,
		now:     cpTime,
		want:    1,
	}, {
		name:    "day behind after checkpoint",
		txCount: 1100,
		tipTime: cpTime.Add(day),
		now:     cpTime.Add(2 * day),
		want:    0.75,
	}, {
		name:    "tip in the future",
		txCount: 1100,
		tipTime: cpTime.Add(3 * day),
		now:     cpTime.Add(2 * day),
		want:    1,
	}, {
		name:    "nothing to verify",
		txCount: 0,
		tipTime: cpTime,
		now:     cpTime,
		want:    0,
	}}

	for _, test := range tests {
		if test.name == "nothing to verify" {
			d.TxCountAtLastCheckpoint = 0
		}
		got := d.GuessVerificationProgress(test.txCount, test.tipTime,
			test.now)
		require.InDelta(t, test.want, got, 1e-9, test.name)
	}
}
