// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"time"

	"github.com/luxcore/luxd/wire"
)

// ErrNoBlockClock is returned when a window is queried before a block clock
// has been synchronized.
var ErrNoBlockClock = errors.New("no block clock synchronized")

// BlockClock is an abstraction over the past median time computation.  The
// deployment window of a soft fork is measured against the past median time
// of a block, which the chain computes from the 11 blocks before it.
type BlockClock interface {
	// PastMedianTime returns the past median time from the PoV of the
	// passed block header.
	PastMedianTime(*wire.BlockHeader) (time.Time, error)
}

// WindowPhase describes where a block falls relative to a deployment's
// signalling window.
type WindowPhase uint8

const (
	// PhasePending is the phase before the window opens.
	PhasePending WindowPhase = iota

	// PhaseSignalling is the phase in which miners may signal.
	PhaseSignalling

	// PhaseExpired is the phase after the window closed.
	PhaseExpired

	// PhaseDisabled is the phase of a deployment which never signals.
	PhaseDisabled
)

var phaseStrings = map[WindowPhase]string{
	PhasePending:    "pending",
	PhaseSignalling: "signalling",
	PhaseExpired:    "expired",
	PhaseDisabled:   "disabled",
}

// String returns the WindowPhase in human-readable form.
func (p WindowPhase) String() string {
	if s, ok := phaseStrings[p]; ok {
		return s
	}
	return fmt.Sprintf("Unknown WindowPhase (%d)", uint8(p))
}

// DeploymentClock places blocks in the signalling window of one deployment.
// A zero start time opens the window from genesis, and disabled or unwired
// deployments are in PhaseDisabled for every block.
//
// Queries fail with ErrNoBlockClock until SynchronizeClock is called.
type DeploymentClock struct {
	deployment ConsensusDeployment
	blockClock BlockClock
}

// Clock returns a DeploymentClock for the deployment window.  The clock holds
// a copy of the deployment.
func (d *ConsensusDeployment) Clock() *DeploymentClock {
	return &DeploymentClock{deployment: *d}
}

// SynchronizeClock sets the block clock used to measure the window.
func (c *DeploymentClock) SynchronizeClock(clock BlockClock) {
	c.blockClock = clock
}

// StartTime returns the window start, or the zero time for a window open
// since genesis.
func (c *DeploymentClock) StartTime() time.Time {
	if c.deployment.StartTime == 0 {
		return time.Time{}
	}
	return time.Unix(int64(c.deployment.StartTime), 0)
}

// ExpireTime returns the time at which the window closes.
func (c *DeploymentClock) ExpireTime() time.Time {
	return time.Unix(int64(c.deployment.ExpireTime), 0)
}

// Phase returns the phase of the window at the past median time of the
// header.  The start is inclusive and the expiry exclusive.
func (c *DeploymentClock) Phase(header *wire.BlockHeader) (WindowPhase, error) {
	if c.blockClock == nil {
		return 0, ErrNoBlockClock
	}
	if c.deployment.Disabled() {
		return PhaseDisabled, nil
	}

	medianTime, err := c.blockClock.PastMedianTime(header)
	if err != nil {
		return 0, err
	}

	switch {
	case medianTime.Unix() < int64(c.deployment.StartTime):
		return PhasePending, nil
	case medianTime.Unix() >= int64(c.deployment.ExpireTime):
		return PhaseExpired, nil
	}
	return PhaseSignalling, nil
}

// HasStarted reports whether the window has opened by the header.  A
// disabled deployment never starts.
func (c *DeploymentClock) HasStarted(header *wire.BlockHeader) (bool, error) {
	phase, err := c.Phase(header)
	if err != nil {
		return false, err
	}
	return phase == PhaseSignalling || phase == PhaseExpired, nil
}

// HasEnded reports whether the window can no longer be signalled in.  A
// disabled deployment has always ended.
func (c *DeploymentClock) HasEnded(header *wire.BlockHeader) (bool, error) {
	phase, err := c.Phase(header)
	if err != nil {
		return false, err
	}
	return phase == PhaseExpired || phase == PhaseDisabled, nil
}
