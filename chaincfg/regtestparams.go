// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/luxcore/luxd/wire"
)

// regTestGenesis holds the constants of the regression test network genesis
// block.  It reuses the test network coinbase.
var regTestGenesis = genesisSpec{
	timestamp: testNetGenesis.timestamp,
	txTime:    testNetGenesis.txTime,
	blockTime: 1454124731,
	bits:      0x207fffff,
	nonce:     12345,
}

// regTestParams returns the network parameters for the regression test
// network.  It starts from the test network values.  The genesis block is
// not fixed, so its hash is whatever the block hashes to.  Its nonce does not
// meet the phi1612 target.
func regTestParams() *Params {
	p := testNetParams()

	p.Name = "regtest"
	p.Network = RegTest
	p.Net = wire.RegTest
	p.DefaultPort = "51476"
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.GenesisBlock = newGenesisBlock(regTestGenesis)
	hash := p.GenesisBlock.Header.HashWith(p.HeaderHasher)
	p.GenesisHash = &hash
	merkleRoot := p.GenesisBlock.Header.MerkleRoot
	p.GenesisMerkleRoot = &merkleRoot
	p.VerifyGenesis = false

	p.PowLimit = regressionPowLimit
	p.PowLimitBits = 0x207fffff
	p.TargetTimespan = 24 * time.Hour
	p.TargetTimePerBlock = time.Minute
	p.ReduceMinDifficulty = true
	p.NoRetargeting = true

	p.BlockEnforceNumRequired = 750
	p.BlockRejectNumRequired = 950
	p.BlockUpgradeNumToCheck = 1000

	p.RuleChangeActivationThreshold = 108 // 75%  of MinerConfirmationWindow
	p.MinerConfirmationWindow = 144
	p.Deployments[DeploymentTestDummy] = ConsensusDeployment{
		BitNumber:  28,
		StartTime:  0,
		ExpireTime: noTimeout,
	}
	p.Deployments[DeploymentCSV] = ConsensusDeployment{
		BitNumber:  0,
		StartTime:  0,
		ExpireTime: noTimeout,
	}
	p.Deployments[DeploymentSegwit] = ConsensusDeployment{
		BitNumber:  1,
		StartTime:  0,
		ExpireTime: noTimeout,
	}

	p.MinerThreads = 1
	p.CoinbaseMaturity = 2

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false

	p.Checkpoints = genesisCheckpoints(p)
	return p
}
