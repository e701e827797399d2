// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"
	"time"

	"github.com/luxcore/luxd/wire"
	"github.com/stretchr/testify/require"
)

// fixedClock is a BlockClock which reports the same median time for every
// header.
type fixedClock time.Time

func (c fixedClock) PastMedianTime(*wire.BlockHeader) (time.Time, error) {
	return time.Time(c), nil
}

// TestDeploymentWindows ensures every enabled deployment of every network
// has a window which ends after it starts, a bit of its own and a threshold
// which fits the confirmation window.
func TestDeploymentWindows(t *testing.T) {
	for n := MainNet; n < numNetworks; n++ {
		p, err := Create(n)
		require.NoError(t, err)
		require.True(t, p.RuleChangeActivationThreshold <=
			p.MinerConfirmationWindow, n)

		var used uint32
		for id := 0; id < DefinedDeployments; id++ {
			d, err := p.DeploymentWindow(id)
			require.NoError(t, err)
			if d.Disabled() {
				continue
			}
			require.True(t, d.ExpireTime > d.StartTime, "%v %s", n,
				DeploymentName(id))
			require.True(t, d.BitNumber <= 31)
			require.Zero(t, used&d.Mask(), "%v %s", n, DeploymentName(id))
			used |= d.Mask()
		}
	}
}

// TestSmartContractsDeployment ensures the smart contracts deployment only
// reserves the smart contracts version bit.
func TestSmartContractsDeployment(t *testing.T) {
	for n := MainNet; n < numNetworks; n++ {
		p, err := Create(n)
		require.NoError(t, err)

		d := p.Deployments[DeploymentSmartContracts]
		require.True(t, d.Unwired, n)
		require.True(t, d.Disabled(), n)
		require.EqualValues(t, wire.SmartContractsVersionBit, d.BitNumber, n)
		require.Equal(t, uint32(1<<30), d.Mask(), n)
	}
}

// TestDeploymentWindowUnknown ensures unknown deployment IDs are rejected.
func TestDeploymentWindowUnknown(t *testing.T) {
	p := mainNetParams()
	for _, id := range []int{-1, DefinedDeployments, 99} {
		_, err := p.DeploymentWindow(id)
		var derr DeploymentError
		require.True(t, errors.As(err, &derr), "id %d: got %v", id, err)
		require.Equal(t, id, int(derr))
		require.Contains(t, DeploymentName(id), "unknown deployment")
	}
	require.Equal(t, "segwit", DeploymentName(DeploymentSegwit))
}

// TestDeploymentClock ensures the deployment window is measured with the
// synchronized block clock.
func TestDeploymentClock(t *testing.T) {
	p := mainNetParams()
	csv := p.Deployments[DeploymentCSV]
	start := time.Unix(int64(csv.StartTime), 0)
	expire := time.Unix(int64(csv.ExpireTime), 0)
	header := &p.GenesisBlock.Header

	clock := csv.Clock()
	_, err := clock.HasStarted(header)
	require.Equal(t, ErrNoBlockClock, err)
	_, err = clock.HasEnded(header)
	require.Equal(t, ErrNoBlockClock, err)
	_, err = clock.Phase(header)
	require.Equal(t, ErrNoBlockClock, err)
	require.Equal(t, start, clock.StartTime())
	require.Equal(t, expire, clock.ExpireTime())

	tests := []struct {
		now     time.Time
		phase   WindowPhase
		started bool
		ended   bool
	}{
		{start.Add(-time.Second), PhasePending, false, false},
		{start, PhaseSignalling, true, false},
		{expire.Add(-time.Second), PhaseSignalling, true, false},
		{expire, PhaseExpired, true, true},
	}
	for _, test := range tests {
		clock.SynchronizeClock(fixedClock(test.now))

		phase, err := clock.Phase(header)
		require.NoError(t, err)
		require.Equal(t, test.phase, phase, test.now)

		started, err := clock.HasStarted(header)
		require.NoError(t, err)
		require.Equal(t, test.started, started, test.now)

		ended, err := clock.HasEnded(header)
		require.NoError(t, err)
		require.Equal(t, test.ended, ended, test.now)
	}

	// The clock holds its own copy of the window.
	csv.StartTime = 0
	require.Equal(t, start, clock.StartTime())

	// Windows starting at zero have always started and regression test
	// windows never time out in practice.
	always := regTestParams().Deployments[DeploymentSegwit].Clock()
	require.True(t, always.StartTime().IsZero())
	always.SynchronizeClock(fixedClock(time.Unix(0, 0)))
	started, err := always.HasStarted(header)
	require.NoError(t, err)
	require.True(t, started)
	ended, err := always.HasEnded(header)
	require.NoError(t, err)
	require.False(t, ended)

	// Disabled deployments never start and are always over, whatever the
	// median time.
	dummy := p.Deployments[DeploymentTestDummy]
	require.True(t, dummy.Disabled())
	clock = dummy.Clock()
	for _, now := range []int64{0, 1528300000, noTimeout} {
		clock.SynchronizeClock(fixedClock(time.Unix(now, 0)))
		phase, err := clock.Phase(header)
		require.NoError(t, err)
		require.Equal(t, PhaseDisabled, phase)
		started, err = clock.HasStarted(header)
		require.NoError(t, err)
		require.False(t, started)
		ended, err = clock.HasEnded(header)
		require.NoError(t, err)
		require.True(t, ended)
	}
}

// TestDeploymentClockError ensures block clock failures are passed through.
func TestDeploymentClockError(t *testing.T) {
	errClock := errors.New("median time unavailable")
	csv := mainNetParams().Deployments[DeploymentCSV]
	clock := csv.Clock()
	clock.SynchronizeClock(failingClock{errClock})

	_, err := clock.HasStarted(nil)
	require.Equal(t, errClock, err)
	_, err = clock.HasEnded(nil)
	require.Equal(t, errClock, err)
}

// failingClock is a BlockClock which cannot tell the time.
type failingClock struct {
	err error
}

func (c failingClock) PastMedianTime(*wire.BlockHeader) (time.Time, error) {
	return time.Time{}, c.err
}

// TestWindowPhaseStringer tests the stringized output for window phases.
func TestWindowPhaseStringer(t *testing.T) {
	tests := []struct {
		in   WindowPhase
		want string
	}{
		{PhasePending, "pending"},
		{PhaseSignalling, "signalling"},
		{PhaseExpired, "expired"},
		{PhaseDisabled, "disabled"},
		{0xff, "Unknown WindowPhase (255)"},
	}

	for i, test := range tests {
		require.Equalf(t, test.want, test.in.String(), "#%d", i)
	}
}
