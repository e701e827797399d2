// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/luxcore/luxd/chaincfg"
	"github.com/stretchr/testify/require"
)

// TestSetLogLevels ensures levels are applied to known subsystems only.
func TestSetLogLevels(t *testing.T) {
	require.Equal(t, []string{"CCFG", "CHAN", "CMGR", "LUXP"},
		SupportedSubsystems())

	SetLogLevels("debug")
	for _, subsys := range SupportedSubsystems() {
		level, ok := Level(subsys)
		require.True(t, ok)
		require.Equal(t, btclog.LevelDebug, level, subsys)
	}

	SetLogLevel("CCFG", "trace")
	level, _ := Level("CCFG")
	require.Equal(t, btclog.LevelTrace, level)

	// Unknown subsystems are ignored and bad levels fall back to info.
	SetLogLevel("NOPE", "trace")
	_, ok := Level("NOPE")
	require.False(t, ok)
	SetLogLevel("CHAN", "loud")
	level, _ = Level("CHAN")
	require.Equal(t, btclog.LevelInfo, level)

	require.True(t, ValidLogLevel("warn"))
	require.False(t, ValidLogLevel("loud"))
}

// TestInitLogRotator ensures the rotator is created in a new directory.
func TestInitLogRotator(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "luxparams.log")
	require.NoError(t, InitLogRotator(logFile))
	require.NotNil(t, LogRotator)
	CloseLogRotator()
	LogRotator = nil
}

// TestChaincfgLogging ensures the chaincfg package logs through the logger it
// is given.
func TestChaincfgLogging(t *testing.T) {
	var buf bytes.Buffer
	chaincfg.UseLogger(NewTestLogger(&buf, "CCFG"))
	defer chaincfg.UseLogger(ccfgLog)

	_, err := chaincfg.Create(chaincfg.RegTest)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "[DBG] CCFG: Built regtest parameters")
}

func TestPickNoun(t *testing.T) {
	require.Equal(t, "block", PickNoun(1, "block", "blocks"))
	require.Equal(t, "blocks", PickNoun(0, "block", "blocks"))
}
