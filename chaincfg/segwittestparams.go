// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/luxcore/luxd/wire"
)

// segWitTestGenesis holds the constants of the segwit test network genesis
// block.  Its coinbase pays the premine to segWitTestPremineKey.
var segWitTestGenesis = genesisSpec{
	timestamp:    "Lux - Implemented New PHI Algo PoW/PoS Hybrid - Parallel Masternode - ThankYou - 216k155",
	txTime:       1524645689,
	blockTime:    1524645689,
	bits:         0x1e0fffff,
	nonce:        729147,
	premineKey:   hexDecode("039ec9c09ee245790849f297f8df36c3aab97335ee011250a23d35569fdab891f0"),
	premineValue: btcutil.Amount(21000000000000),
}

// segWitTestParams returns the network parameters for the segregated witness
// test network.  It does not derive from another network.
func segWitTestParams() *Params {
	p := &Params{
		Name:        "segwit",
		Network:     SegWitTest,
		Net:         wire.SegWitTest,
		DefaultPort: "25666",

		// Chain parameters
		GenesisBlock:        newGenesisBlock(segWitTestGenesis),
		GenesisHash:         newHashFromStr("00000a1a2a728145f14f873037b5f4188c1b36d20f8187d329e412b97cdbaabf"),
		GenesisMerkleRoot:   newHashFromStr("b35719fbe3e4d52f06d791e938de406d48defadb83beeb1fdd10c7ef52a481c2"),
		VerifyGenesis:       true,
		HeaderHashAlgo:      wire.HashPhi1612,
		HeaderHasher:        newHeaderHasher(wire.HashPhi1612),
		PowLimit:            mainPowLimit,
		PowLimitBits:        0x1e0fffff,
		TargetTimespan:      10 * time.Minute,
		TargetTimePerBlock:  time.Minute,
		ReduceMinDifficulty: false,
		NoRetargeting:       false,

		BlockEnforceNumRequired: 750,
		BlockRejectNumRequired:  950,
		BlockUpgradeNumToCheck:  1000,

		RuleChangeActivationThreshold: 9, // 95% of MinerConfirmationWindow
		MinerConfirmationWindow:       10,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber: 28,
			},
			DeploymentCSV: {
				BitNumber:  0,
				StartTime:  0,
				ExpireTime: noTimeout,
			},
			DeploymentSegwit: {
				BitNumber:  1,
				StartTime:  1524733200,
				ExpireTime: 1557187200,
			},
			DeploymentSmartContracts: {
				BitNumber: wire.SmartContractsVersionBit,
				Unwired:   true,
			},
		},

		LastPoWBlock:           6000000,
		SwitchPhi2Block:        1200,
		ModifierUpdateBlock:    615800,
		CoinbaseMaturity:       5,
		MaxReorganizationDepth: 100,
		MinerThreads:           0,

		MasternodeCountDrift:    20,
		PoolMaxTransactions:     3,
		StartMasternodePayments: 1507656633,

		StakingRoundPeriod: 2 * time.Minute,
		StakingInterval:    22 * time.Second,
		StakingMinAge:      36 * time.Hour,

		AlertPubKey:              hexDecode("042d13c016ed91528241bcff222989769417eb10cdb679228c91e26e26900eb9fd053cd9f16a9a2894ad5ebbd551be1a4bd23bd55023679be17f0bd3a16e6fbeba"),
		SporkPubKey:              hexDecode("04a983220ea7a38a7106385003fef77896538a382a0dcc389cc45f3c98751d9af423a097789757556259351198a8aaa628a1fd644c3232678c5845384c744ff8d7"),
		DarksendPoolDummyAddress: "LgcjpYxWa5EB9KCYaRtpPgG8kgiWRvJY38",

		Bech32HRPSegwit: "bcst",

		PubKeyHashAddrID: 48, // starts with L
		ScriptHashAddrID: 64,
		PrivateKeyID:     155,

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
