// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"time"

	btcchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/luxcore/luxd/blockchain"
	"github.com/luxcore/luxd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a LUX block can have
	// for the main network.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// testNetPowLimit is the highest proof of work value a LUX block can
	// have for the test network.  It is the value 2^246 - 1.
	testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 246), bigOne)

	// regressionPowLimit is the highest proof of work value a LUX block
	// can have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// hardenedKeyStart is the index at which a hardened key starts.
const hardenedKeyStart = 0x80000000

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the label of the seed.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a LUX network by its parameters.  These parameters may be
// used by LUX applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// Params values handed out by this package are never modified after they are
// built.  Tests which need different values use UnitTestBuilder.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Network is the network these parameters define.
	Network Network

	// Net defines the magic bytes used to identify the network.
	Net wire.LuxNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the hard-coded peers used when no DNS seed answers.
	FixedSeeds []*btcwire.NetAddress

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the expected hash of the genesis block.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the expected merkle root of the genesis block.
	GenesisMerkleRoot *chainhash.Hash

	// VerifyGenesis is set for networks whose genesis block is fixed.  The
	// built genesis block must then hash to GenesisHash.
	VerifyGenesis bool

	// HeaderHashAlgo names the proof of work hash of the network.
	HeaderHashAlgo wire.HashAlgo

	// HeaderHasher computes block identifier hashes for the network.  It
	// implements HeaderHashAlgo.
	HeaderHasher wire.HeaderHasher

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block.  This is really only useful for test
	// networks and should not be set on a main network.
	ReduceMinDifficulty bool

	// NoRetargeting defines whether the network keeps the difficulty of
	// the previous block instead of retargeting.
	NoRetargeting bool

	// Enforce current block version once network has upgraded.
	BlockEnforceNumRequired uint64

	// Reject previous block versions once network has upgraded.
	BlockRejectNumRequired uint64

	// The number of nodes to check.
	BlockUpgradeNumToCheck uint64

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// LastPoWBlock is the last height at which blocks are mined by proof
	// of work.  Proof of stake takes over afterward.
	LastPoWBlock int32

	// SwitchPhi2Block is the height at which the PoW hash switches to
	// Phi2.
	SwitchPhi2Block int32

	// FirstSCBlock is the first height at which smart contracts are
	// accepted.
	FirstSCBlock int32

	// PruneAfterHeight is the height below which block files may be
	// pruned.
	PruneAfterHeight int32

	// SplitRewardBlock is the height at which the staking reward is split.
	SplitRewardBlock int32

	// ModifierUpdateBlock is the height of the stake modifier upgrade.
	ModifierUpdateBlock int32

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins (coinbase transactions) can be spent.
	CoinbaseMaturity uint16

	// MaxReorganizationDepth is the deepest reorganization accepted.
	MaxReorganizationDepth int32

	// MinerThreads is the default number of mining threads.  Zero lets the
	// miner pick.
	MinerThreads int

	MasternodeCountDrift    int
	PoolMaxTransactions     int
	StartMasternodePayments int64

	// Staking schedule.
	StakingRoundPeriod time.Duration
	StakingInterval    time.Duration
	StakingMinAge      time.Duration

	// Checkpoints holds the known good blocks of the chain and the sync
	// progress metadata.
	Checkpoints CheckpointData

	// AlertPubKey is the raw key alerts are signed with.
	AlertPubKey []byte

	// SporkPubKey is the serialized secp256k1 key sporks are signed with.
	SporkPubKey []byte

	// DarksendPoolDummyAddress is the address used to pad mixing pools.
	DarksendPoolDummyAddress string

	// Human-readable part for Bech32 encoded segwit addresses, as defined
	// in BIP 173.
	Bech32HRPSegwit string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// HDCoinTypeID is the serialized BIP44 coin type.  It is empty for
	// networks which do not define one.
	HDCoinTypeID []byte

	// Node policy.
	RequireRPCPassword            bool
	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool
}

// Genesis returns the genesis block of the network.
func (p *Params) Genesis() *wire.MsgBlock {
	return p.GenesisBlock
}

// LatestCheckpointHeight is the height of the latest checkpoint block in the
// parameters.
func (p *Params) LatestCheckpointHeight() int32 {
	return p.Checkpoints.LastCheckpointHeight()
}

// EstimatedTxCount estimates the number of transactions in the chain up to
// height using the checkpoint metadata and the network's block spacing.
func (p *Params) EstimatedTxCount(height int32) uint64 {
	return p.Checkpoints.EstimatedTxCount(height, p.TargetTimePerBlock)
}

// HDCoinType returns the BIP44 coin type of the network without the hardened
// flag.  ok is false when the network does not define one.
func (p *Params) HDCoinType() (coinType uint32, ok bool) {
	if len(p.HDCoinTypeID) != 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(p.HDCoinTypeID) &^ hardenedKeyStart, true
}

// CheckProofOfWork ensures the header satisfies its difficulty bits and that
// those bits are within the network's proof of work limit.  It is a no-op
// when the network skips proof of work checks.
func (p *Params) CheckProofOfWork(header *wire.BlockHeader) error {
	if p.SkipProofOfWorkCheck {
		return nil
	}
	return blockchain.CheckProofOfWork(header, p.HeaderHasher, p.PowLimit)
}

// AddressParams returns btcd chain parameters carrying the LUX address
// encoding magics so btcutil can encode and decode LUX addresses.
func (p *Params) AddressParams() *btcchaincfg.Params {
	coinType, _ := p.HDCoinType()
	return &btcchaincfg.Params{
		Name:             p.Name,
		Net:              btcwire.BitcoinNet(p.Net),
		DefaultPort:      p.DefaultPort,
		Bech32HRPSegwit:  p.Bech32HRPSegwit,
		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
		PrivateKeyID:     p.PrivateKeyID,
		HDPrivateKeyID:   p.HDPrivateKeyID,
		HDPublicKeyID:    p.HDPublicKeyID,
		HDCoinType:       coinType,
	}
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// hexDecode decodes a hard-coded hex string and panics on error.  A trailing
// odd nibble is dropped, as the reference client's hex parser does.
func hexDecode(hexStr string) []byte {
	if len(hexStr)%2 != 0 {
		hexStr = hexStr[:len(hexStr)-1]
	}
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// newHeaderHasher returns the hasher of a hard-coded hash algorithm and
// panics when there is none.
func newHeaderHasher(algo wire.HashAlgo) wire.HeaderHasher {
	hasher, err := wire.NewHeaderHasher(algo)
	if err != nil {
		panic(err)
	}
	return hasher
}
