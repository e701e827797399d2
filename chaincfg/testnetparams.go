// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/luxcore/luxd/wire"
)

// testNetGenesis holds the constants of the test network genesis block.
var testNetGenesis = genesisSpec{
	timestamp: "Lux - Testnet",
	txTime:    1527664240,
	blockTime: 1527664240,
	bits:      0x1e0fffff,
	nonce:     1153266,
}

// testNetParams returns the network parameters for the LUX test network.  It
// starts from the main network values.
func testNetParams() *Params {
	p := mainNetParams()

	p.Name = "test"
	p.Network = TestNet
	p.Net = wire.TestNet
	p.DefaultPort = "28333"
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.GenesisBlock = newGenesisBlock(testNetGenesis)
	p.GenesisHash = newHashFromStr("00000ed61786c92e01948df9f543fc2effc17a025ec14f743ec1848dff81233b")
	p.GenesisMerkleRoot = newHashFromStr("484415096c0c3f026838b97854d02bbf38aad5449938ef62f1fdd51c371a1696")
	p.PowLimit = testNetPowLimit
	p.PowLimitBits = 0x1f3fffff
	p.TargetTimespan = 30 * time.Minute
	p.TargetTimePerBlock = 2 * time.Minute

	p.BlockEnforceNumRequired = 51
	p.BlockRejectNumRequired = 75
	p.BlockUpgradeNumToCheck = 100

	p.RuleChangeActivationThreshold = 1368 // 95% of MinerConfirmationWindow
	p.MinerConfirmationWindow = 1440
	p.Deployments[DeploymentSegwit] = ConsensusDeployment{
		BitNumber:  1,
		StartTime:  1577836800,
		ExpireTime: 1577836900,
	}

	p.CoinbaseMaturity = 10
	p.ModifierUpdateBlock = 51197
	p.SplitRewardBlock = 1000
	p.FirstSCBlock = 1000
	p.StartMasternodePayments = 1507656633

	// The published key has an odd number of hex digits.  The trailing
	// digit is dropped.
	p.AlertPubKey = hexDecode("000010e83b2703ccf322f7dbd62dd5855ac7c10bd055814ce121ba32607d573b8810c02c0582aed05b4deb9c4b77b26d92428c61256cd42774babea0a073b2ed0c9")
	p.SporkPubKey = hexDecode("04348C2F50F90267E64FACC65BFDC9D0EB147D090872FB97ABAE92E9A36E6CA60983E28E741F8E7277B11A7479B626AC115BA31463AC48178A5075C5A9319D4A38")
	p.DarksendPoolDummyAddress = "LPGq7DZbqZ8Vb3tfLH8Z8VHqeV4fsK68oX"

	p.Bech32HRPSegwit = "tb"
	p.HDPublicKeyID = [4]byte{0x3a, 0x80, 0x61, 0xa0}
	p.HDPrivateKeyID = [4]byte{0x3a, 0x80, 0x58, 0x37}
	p.HDCoinTypeID = []byte{0x01, 0x00, 0x00, 0x80}

	p.Checkpoints = genesisCheckpoints(p)
	return p
}
