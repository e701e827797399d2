// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/luxcore/luxd/blockchain"
	"github.com/luxcore/luxd/wire"
	"github.com/stretchr/testify/require"
)

// TestMainNetParams checks the identity of the main network.
func TestMainNetParams(t *testing.T) {
	p, err := Create(MainNet)
	require.NoError(t, err)

	require.Equal(t, "main", p.Name)
	require.Equal(t, MainNet, p.Network)
	require.Equal(t, wire.MainNet, p.Net)
	require.Equal(t, [4]byte{0xf6, 0xa8, 0xd3, 0xc4}, p.Net.MessageStart())
	require.Equal(t, "28666", p.DefaultPort)
	require.Equal(t, "bc", p.Bech32HRPSegwit)
	require.EqualValues(t, 48, p.PubKeyHashAddrID)
	require.Equal(t,
		"000009f632929508d7d1e3530e2a9f795824074d4c0f3cd670acb8ecb424de87",
		p.GenesisHash.String())
	require.Len(t, p.DNSSeeds, 2)
	require.Equal(t, "45.32.220.58", p.DNSSeeds[0].String())

	// The fixed seeds are the DNS seed hosts on the default port.
	require.Len(t, p.FixedSeeds, 2)
	require.Equal(t, "45.32.220.58", p.FixedSeeds[0].IP.String())
	require.Equal(t, "45.32.46.81", p.FixedSeeds[1].IP.String())
	for _, na := range p.FixedSeeds {
		require.EqualValues(t, 28666, na.Port)
	}
}

// TestNetworkIdentities ensures no two networks share magic bytes or a
// default port.
func TestNetworkIdentities(t *testing.T) {
	tests := []struct {
		net  Network
		name string
		port string
	}{
		{MainNet, "main", "28666"},
		{TestNet, "test", "28333"},
		{RegTest, "regtest", "51476"},
		{UnitTest, "unittest", "51478"},
		{SegWitTest, "segwit", "25666"},
	}

	ports := make(map[string]Network)
	for _, test := range tests {
		p, err := Create(test.net)
		require.NoError(t, err)
		require.Equal(t, test.name, p.Name)
		require.Equal(t, test.name, test.net.String())
		require.Equal(t, test.port, p.DefaultPort)

		other, ok := ports[p.DefaultPort]
		require.False(t, ok, "%v and %v share port %s", test.net, other,
			p.DefaultPort)
		ports[p.DefaultPort] = test.net
	}
}

// TestParseNetwork ensures network names round trip and unknown names are
// rejected.
func TestParseNetwork(t *testing.T) {
	for n := MainNet; n < numNetworks; n++ {
		require.True(t, n.IsValid())
		got, err := ParseNetwork(n.String())
		require.NoError(t, err)
		require.Equal(t, n, got)
	}

	_, err := ParseNetwork("simnet")
	require.True(t, errors.Is(err, ErrUnknownNetwork), "got %v", err)
	require.False(t, numNetworks.IsValid())
	require.False(t, Network(-1).IsValid())
	require.Equal(t, "Unknown Network (42)", Network(42).String())
}

// TestPowLimits ensures the compact limits decode within the big integer
// limits of each network.
func TestPowLimits(t *testing.T) {
	tests := []struct {
		build func() *Params
		bits  uint32
		limit *big.Int
	}{
		{mainNetParams, 0x1e0fffff, mainPowLimit},
		{testNetParams, 0x1f3fffff, testNetPowLimit},
		{regTestParams, 0x207fffff, regressionPowLimit},
		{segWitTestParams, 0x1e0fffff, mainPowLimit},
	}

	for _, test := range tests {
		p := test.build()
		require.Equal(t, test.bits, p.PowLimitBits, p.Name)
		require.Zero(t, test.limit.Cmp(p.PowLimit), p.Name)

		target, negative, overflow := blockchain.CompactToBig(p.PowLimitBits)
		require.False(t, negative || overflow, p.Name)
		require.True(t, target.Cmp(p.PowLimit) <= 0, p.Name)
	}
	require.Equal(t, 236, mainPowLimit.BitLen())
	require.Equal(t, 246, testNetPowLimit.BitLen())
	require.Equal(t, 255, regressionPowLimit.BitLen())
}

// TestParamsCheckProofOfWork ensures headers are checked with the network
// hasher and limit unless the network skips the check.
func TestParamsCheckProofOfWork(t *testing.T) {
	// The regression test genesis nonce was never mined for phi1612, so it
	// does not satisfy even the trivial regression test target.
	p := regTestParams()
	err := p.CheckProofOfWork(&p.GenesisBlock.Header)
	var rerr blockchain.RuleError
	require.True(t, errors.As(err, &rerr), "got %v", err)
	require.Equal(t, blockchain.ErrHighHash, rerr.ErrorCode)

	// Bits easier than the limit are rejected before hashing.
	p = mainNetParams()
	header := p.GenesisBlock.Header
	header.Bits = 0x207fffff
	err = p.CheckProofOfWork(&header)
	require.True(t, errors.As(err, &rerr), "got %v", err)
	require.Equal(t, blockchain.ErrUnexpectedDifficulty, rerr.ErrorCode)

	p, err = NewUnitTestBuilder().SetSkipProofOfWorkCheck(true).Build()
	require.NoError(t, err)
	require.NoError(t, p.CheckProofOfWork(&header))
}

// TestGenesisProofOfWork ensures the genesis block of every network with
// verified genesis constants hashes to its constant under the network header
// hasher and satisfies its own difficulty bits.
func TestGenesisProofOfWork(t *testing.T) {
	tests := []struct {
		net  Network
		hash string
	}{
		{MainNet, "000009f632929508d7d1e3530e2a9f795824074d4c0f3cd670acb8ecb424de87"},
		{TestNet, "00000ed61786c92e01948df9f543fc2effc17a025ec14f743ec1848dff81233b"},
		{SegWitTest, "00000a1a2a728145f14f873037b5f4188c1b36d20f8187d329e412b97cdbaabf"},
	}

	for _, test := range tests {
		p, err := Create(test.net)
		require.NoError(t, err, test.net)
		require.True(t, p.VerifyGenesis, test.net)
		require.Equal(t, wire.HashPhi1612, p.HeaderHashAlgo, test.net)

		header := &p.GenesisBlock.Header
		hash := header.HashWith(p.HeaderHasher)
		require.Equal(t, test.hash, hash.String(), test.net)
		require.Equal(t, test.hash, p.GenesisHash.String(), test.net)
		require.True(t, blockchain.CheckProof(&hash, header.Bits), test.net)
		require.NoError(t, p.CheckProofOfWork(header), test.net)

		// Double sha256 does not reproduce the network hash.
		require.NotEqual(t, hash, header.BlockHash(), test.net)
	}
}

// TestHDCoinType ensures only networks with a coin type report one.
func TestHDCoinType(t *testing.T) {
	coinType, ok := testNetParams().HDCoinType()
	require.True(t, ok)
	require.EqualValues(t, 1, coinType)
	require.EqualValues(t, 1, testNetParams().AddressParams().HDCoinType)

	_, ok = mainNetParams().HDCoinType()
	require.False(t, ok)
}

// TestAddressParams ensures the address magics are carried over so btcutil
// encodes LUX addresses.
func TestAddressParams(t *testing.T) {
	p := mainNetParams()
	ap := p.AddressParams()
	require.Equal(t, p.Name, ap.Name)
	require.Equal(t, p.PubKeyHashAddrID, ap.PubKeyHashAddrID)
	require.Equal(t, p.ScriptHashAddrID, ap.ScriptHashAddrID)
	require.Equal(t, p.PrivateKeyID, ap.PrivateKeyID)
	require.Equal(t, p.HDPublicKeyID, ap.HDPublicKeyID)
	require.Equal(t, p.Bech32HRPSegwit, ap.Bech32HRPSegwit)

	addr, err := btcutil.DecodeAddress(p.DarksendPoolDummyAddress, ap)
	require.NoError(t, err)
	require.Equal(t, p.DarksendPoolDummyAddress, addr.EncodeAddress())

	p2sh, err := btcutil.NewAddressScriptHashFromHash(make([]byte, 20), ap)
	require.NoError(t, err)
	require.Equal(t, "S", p2sh.EncodeAddress()[:1])
}

// TestKeys ensures the hard-coded keys decode, including the test network
// alert key which is published with an odd number of hex digits.
func TestKeys(t *testing.T) {
	p := mainNetParams()
	require.Len(t, p.AlertPubKey, 65)
	require.Len(t, p.SporkPubKey, 65)

	p = testNetParams()
	require.Len(t, p.AlertPubKey, 65)
	require.Equal(t, byte(0x00), p.AlertPubKey[0])
	require.Equal(t, byte(0x0c), p.AlertPubKey[64])
	require.Len(t, p.SporkPubKey, 65)
}

// TestNetworkInheritance ensures derived networks keep the values of their
// base network which they do not override.
func TestNetworkInheritance(t *testing.T) {
	main, test := mainNetParams(), testNetParams()
	require.Equal(t, main.LastPoWBlock, test.LastPoWBlock)
	require.Equal(t, main.PubKeyHashAddrID, test.PubKeyHashAddrID)
	require.Equal(t, main.StakingMinAge, test.StakingMinAge)
	require.Equal(t, 2*time.Minute, test.TargetTimePerBlock)
	require.EqualValues(t, 10, test.CoinbaseMaturity)

	reg := regTestParams()
	require.Equal(t, test.Bech32HRPSegwit, reg.Bech32HRPSegwit)
	require.Equal(t, test.HDPublicKeyID, reg.HDPublicKeyID)
	require.True(t, reg.NoRetargeting)
	require.True(t, reg.MineBlocksOnDemand)
	require.False(t, reg.VerifyGenesis)
	require.EqualValues(t, 2, reg.CoinbaseMaturity)

	unit := unitTestParams()
	require.Equal(t, main.GenesisBlock, unit.GenesisBlock)
	require.Equal(t, main.Deployments, unit.Deployments)
	require.True(t, unit.DefaultConsistencyChecks)
	require.False(t, unit.RequireRPCPassword)
}

// TestInvalidHashStrPanic ensures newHashFromStr panics on invalid input.
func TestInvalidHashStrPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for invalid hash string, got nil")
		}
	}()
	newHashFromStr("banana")
}

// TestInvalidHexPanic ensures hexDecode panics on invalid input.
func TestInvalidHexPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for invalid hex string")
		}
	}()
	hexDecode("banana")
}

// TestHexDecodeOddLength ensures a trailing odd nibble is dropped.
func TestHexDecodeOddLength(t *testing.T) {
	require.Equal(t, []byte{0xab, 0xcd}, hexDecode("abcde"))
	require.Equal(t, []byte{}, hexDecode("a"))
}
