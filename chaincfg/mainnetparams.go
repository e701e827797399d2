// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/luxcore/luxd/wire"
)

// mainNetGenesis holds the constants of the main network genesis block.
var mainNetGenesis = genesisSpec{
	timestamp: "Lux - final test 1",
	txTime:    1528226239,
	blockTime: 1528226239,
	bits:      0x1e0fffff,
	nonce:     1244317,
}

// mainNetParams returns the network parameters for the main LUX network.
// The other networks start from these values.
func mainNetParams() *Params {
	p := &Params{
		Name:        "main",
		Network:     MainNet,
		Net:         wire.MainNet,
		DefaultPort: "28666",
		DNSSeeds: []DNSSeed{
			{"luxseed1", "45.32.220.58"},
			{"luxseed2", "45.32.46.81"},
		},
		FixedSeeds: fixedSeeds(mainNetSeeds),

		// Chain parameters
		GenesisBlock:        newGenesisBlock(mainNetGenesis),
		GenesisHash:         newHashFromStr("000009f632929508d7d1e3530e2a9f795824074d4c0f3cd670acb8ecb424de87"),
		GenesisMerkleRoot:   newHashFromStr("7f4ad75b2d0056751bd3ba5b23b740302be736d77ac1bbca29412affe2afcc47"),
		VerifyGenesis:       true,
		HeaderHashAlgo:      wire.HashPhi1612,
		HeaderHasher:        newHeaderHasher(wire.HashPhi1612),
		PowLimit:            mainPowLimit,
		PowLimitBits:        0x1e0fffff,
		TargetTimespan:      time.Minute,
		TargetTimePerBlock:  time.Minute,
		ReduceMinDifficulty: false,
		NoRetargeting:       false,

		// Enforce current block version once majority of the network has
		// upgraded.
		// 75% (750 / 1000)
		// Reject previous block versions once a majority of the network
		// has upgraded.
		// 95% (950 / 1000)
		BlockEnforceNumRequired: 750,
		BlockRejectNumRequired:  950,
		BlockUpgradeNumToCheck:  1000,

		// Consensus rule change deployments.
		//
		// The miner confirmation window is defined as:
		//   target proof of work timespan / target proof of work spacing
		RuleChangeActivationThreshold: 1026, // 95% of MinerConfirmationWindow
		MinerConfirmationWindow:       1080,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber: 28,
			},
			DeploymentCSV: {
				BitNumber:  0,
				StartTime:  1528234050,
				ExpireTime: 1528372800,
			},
			DeploymentSegwit: {
				BitNumber:  1,
				StartTime:  1528234050,
				ExpireTime: 1528372800,
			},
			DeploymentSmartContracts: {
				BitNumber: wire.SmartContractsVersionBit,
				Unwired:   true,
			},
		},

		LastPoWBlock:           6000000,
		SwitchPhi2Block:        1000,
		FirstSCBlock:           1000,
		PruneAfterHeight:       1000,
		SplitRewardBlock:       1000,
		ModifierUpdateBlock:    615800,
		CoinbaseMaturity:       79,
		MaxReorganizationDepth: 100,
		MinerThreads:           0,

		MasternodeCountDrift:    20,
		PoolMaxTransactions:     3,
		StartMasternodePayments: 1528226239,

		StakingRoundPeriod: 2 * time.Minute,
		StakingInterval:    22 * time.Second,
		StakingMinAge:      6 * time.Minute,

		AlertPubKey:              hexDecode("042d13c016ed91528241bcff222989769417eb10cdb679228c91e26e26900eb9fd053cd9f16a9a2894ad5ebbd551be1a4bd23bd55023679be17f0bd3a16e6fbeba"),
		SporkPubKey:              hexDecode("04a983220ea7a38a7106385003fef77896538a382a0dcc389cc45f3c98751d9af423a097789757556259351198a8aaa628a1fd644c3232678c5845384c744ff8d7"),
		DarksendPoolDummyAddress: "LgcjpYxWa5EB9KCYaRtpPgG8kgiWRvJY38",

		// Human-readable part for Bech32 encoded segwit addresses, as defined in
		// BIP 173.
		Bech32HRPSegwit: "bc",

		// Address encoding magics
		PubKeyHashAddrID: 48,  // starts with L
		ScriptHashAddrID: 63,  // starts with S
		PrivateKeyID:     155,

		// BIP32 hierarchical deterministic extended key magics
		HDPublicKeyID:  [4]byte{0x07, 0x28, 0xa2, 0x4e},
		HDPrivateKeyID: [4]byte{0x03, 0xd8, 0xa1, 0xe5},

		RequireRPCPassword:            true,
		MiningRequiresPeers:           true,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,
	}
	p.Checkpoints = genesisCheckpoints(p)
	return p
}

// genesisCheckpoints returns a checkpoint table holding only the genesis
// block of p.
func genesisCheckpoints(p *Params) CheckpointData {
	return newCheckpointData(p.GenesisHash,
		p.GenesisBlock.Header.Timestamp, p.TargetTimePerBlock)
}
