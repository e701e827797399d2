// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/luxcore/luxd/blockchain"
	"github.com/luxcore/luxd/chaincfg"
	"github.com/luxcore/luxd/internal/log"
	"github.com/luxcore/luxd/internal/version"
	"github.com/luxcore/luxd/wire"
)

var luxpLog = log.LuxpLog

// wallClock is a chaincfg.BlockClock which reports the current time for every
// header, standing in for a chain tip's median time.
type wallClock struct{}

func (wallClock) PastMedianTime(*wire.BlockHeader) (time.Time, error) {
	return time.Now(), nil
}

// printSummary writes the identity and consensus rules of the network to w.
func printSummary(w io.Writer, p *chaincfg.Params) error {
	premine, err := p.PremineAddress()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Network:               %s (%v)\n", p.Name, p.Net)
	start := p.Net.MessageStart()
	fmt.Fprintf(w, "Message start:         %x\n", start[:])
	fmt.Fprintf(w, "Default port:          %s\n", p.DefaultPort)
	for _, seed := range p.DNSSeeds {
		fmt.Fprintf(w, "DNS seed:              %s (%s)\n", seed, seed.Name)
	}
	for _, na := range p.FixedSeeds {
		fmt.Fprintf(w, "Fixed seed:            %s:%d\n", na.IP, na.Port)
	}
	fmt.Fprintf(w, "Header hash:           %v\n", p.HeaderHashAlgo)
	fmt.Fprintf(w, "Genesis hash:          %v\n", p.GenesisHash)
	fmt.Fprintf(w, "Genesis merkle root:   %v\n", p.GenesisMerkleRoot)
	fmt.Fprintf(w, "Genesis time:          %v\n",
		p.GenesisBlock.Header.Timestamp.UTC())
	if premine != "" {
		fmt.Fprintf(w, "Premine address:       %s\n", premine)
	}
	fmt.Fprintf(w, "Proof of work limit:   %08x\n", p.PowLimitBits)
	fmt.Fprintf(w, "Target spacing:        %v\n", p.TargetTimePerBlock)
	fmt.Fprintf(w, "Target timespan:       %v\n", p.TargetTimespan)
	fmt.Fprintf(w, "Last PoW block:        %d\n", p.LastPoWBlock)
	fmt.Fprintf(w, "Coinbase maturity:     %d\n", p.CoinbaseMaturity)
	fmt.Fprintf(w, "Address prefixes:      pkh %d, sh %d, bech32 %q\n",
		p.PubKeyHashAddrID, p.ScriptHashAddrID, p.Bech32HRPSegwit)
	fmt.Fprintf(w, "Rule change threshold: %d/%d\n",
		p.RuleChangeActivationThreshold, p.MinerConfirmationWindow)

	for id := 0; id < chaincfg.DefinedDeployments; id++ {
		d, err := p.DeploymentWindow(id)
		if err != nil {
			return err
		}
		window := "disabled"
		if !d.Disabled() {
			clock := d.Clock()
			clock.SynchronizeClock(wallClock{})
			phase, err := clock.Phase(&p.GenesisBlock.Header)
			if err != nil {
				return err
			}
			window = fmt.Sprintf("%d - %d, %v now", d.StartTime,
				d.ExpireTime, phase)
		}
		fmt.Fprintf(w, "Deployment %-11s bit %2d, %s\n",
			chaincfg.DeploymentName(id)+":", d.BitNumber, window)
	}

	cps := p.Checkpoints.Checkpoints
	fmt.Fprintf(w, "Checkpoints:           %d %s, last at height %d\n",
		len(cps), log.PickNoun(uint64(len(cps)), "checkpoint",
			"checkpoints"), p.LatestCheckpointHeight())
	return nil
}

// mineGenesis searches a nonce which solves the genesis header of p with the
// network hasher.  The shared genesis block is not modified.
func mineGenesis(ctx context.Context, w io.Writer, p *chaincfg.Params,
	maxNonce uint32) error {

	header := p.GenesisBlock.Header
	header.Nonce = 0

	luxpLog.Infof("Solving %s genesis header with bits %08x", p.Name,
		header.Bits)
	start := time.Now()
	solved, err := blockchain.SolveHeader(ctx, &header, p.HeaderHasher,
		maxNonce)
	if err != nil {
		return err
	}
	if !solved {
		return fmt.Errorf("no nonce up to %d solves the %s genesis header",
			maxNonce, p.Name)
	}

	luxpLog.Infof("Solved genesis header in %v",
		time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(w, "Nonce:                 %d\n", header.Nonce)
	fmt.Fprintf(w, "Hash:                  %v\n", header.HashWith(p.HeaderHasher))
	return nil
}

// run selects the configured network and writes the requested output to w.
func run(ctx context.Context, cfg *config, w io.Writer) error {
	p, err := chaincfg.Select(cfg.network)
	if err != nil {
		return err
	}

	if cfg.Dump {
		spew.Fdump(w, p)
		return nil
	}
	if err := printSummary(w, p); err != nil {
		return err
	}
	if cfg.Mine {
		return mineGenesis(ctx, w, p, cfg.MaxNonce)
	}
	return nil
}

func luxparamsMain() error {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Printf("luxparams version %s\n", version.String())
		return nil
	}

	if !cfg.NoLogFile {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			return err
		}
		defer log.CloseLogRotator()
	}
	log.SetLogLevels(cfg.DebugLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		luxpLog.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	if err := luxparamsMain(); err != nil {
		os.Exit(1)
	}
}
