// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/luxcore/luxd/chaincfg"
	"github.com/luxcore/luxd/internal/log"
)

const (
	defaultLogFilename = "luxparams.log"
	defaultLogLevel    = "info"
	defaultMaxNonce    = math.MaxUint32
)

var (
	luxdHomeDir   = btcutil.AppDataDir("luxd", false)
	defaultLogDir = filepath.Join(luxdHomeDir, "logs")
)

// config defines the configuration options for luxparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	NoLogFile   bool   `long:"nologfile" description:"Only log to standard output"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	RegTest     bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest    bool   `long:"unittest" description:"Use the unit test network"`
	SegWitTest  bool   `long:"segwittest" description:"Use the segwit test network"`
	Dump        bool   `long:"dump" description:"Dump every parameter of the network"`
	Mine        bool   `long:"mine" description:"Search a nonce solving the genesis header with the network hasher"`
	MaxNonce    uint32 `long:"maxnonce" description:"Highest nonce tried by --mine"`

	network chaincfg.Network
}

// errNetworkFlags describes an error where more than one network flag was
// passed.
var errNetworkFlags = errors.New("the testnet, regtest, unittest and " +
	"segwittest params can't be used together -- choose one of the four")

// selectedNetwork returns the network chosen by the network flags.
func (cfg *config) selectedNetwork() (chaincfg.Network, error) {
	network := chaincfg.MainNet
	numNets := 0
	for _, choice := range []struct {
		set bool
		net chaincfg.Network
	}{
		{cfg.TestNet, chaincfg.TestNet},
		{cfg.RegTest, chaincfg.RegTest},
		{cfg.UnitTest, chaincfg.UnitTest},
		{cfg.SegWitTest, chaincfg.SegWitTest},
	} {
		if choice.set {
			numNets++
			network = choice.net
		}
	}
	if numNets > 1 {
		return 0, errNetworkFlags
	}
	return network, nil
}

// loadConfig initializes and parses the config using command line options.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		MaxNonce:   defaultMaxNonce,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	cfg.network, err = cfg.selectedNetwork()
	if err != nil {
		err := fmt.Errorf("%s: %w", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate debug log level.
	if !log.ValidLogLevel(cfg.DebugLevel) {
		str := "%s: the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Append the network type to the log directory so it is "namespaced"
	// per network.
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir),
		cfg.network.String())

	return &cfg, remainingArgs, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if len(path) > 0 && path[0] == '~' {
		homeDir := filepath.Dir(luxdHomeDir)
		path = filepath.Join(homeDir, path[1:])
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
