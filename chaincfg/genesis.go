// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/luxcore/luxd/blockchain"
	"github.com/luxcore/luxd/wire"
	"golang.org/x/crypto/sha3"
)

// genesisStateRoot is the contract state root committed to by every LUX
// genesis block.
var genesisStateRoot = newHashFromStr("e965ffd002cd6ad0e2dc402b8044de833e06b23127ea8c3d80aec91410771495")

// genesisUTXORoot is the contract UTXO root of every LUX genesis block: the
// Keccak-256 hash of the RLP encoding of the empty string, which is the root
// of an empty trie.
var genesisUTXORoot = emptyTrieRoot()

// emptyTrieRoot returns keccak256(rlp("")) in the byte order of a
// chainhash.Hash.
func emptyTrieRoot() *chainhash.Hash {
	encoded, err := rlp.EncodeToBytes("")
	if err != nil {
		panic(err)
	}
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(encoded)
	digest := hasher.Sum(nil)

	var root chainhash.Hash
	for i := range digest {
		root[chainhash.HashSize-1-i] = digest[i]
	}
	return &root
}

// genesisSpec holds the constants a network's genesis block is built from.
type genesisSpec struct {
	// timestamp is the message embedded in the coinbase signature script.
	timestamp string

	// txTime is the coinbase transaction time.
	txTime int64

	// blockTime, bits and nonce are the header fields fixed when the
	// block was mined.
	blockTime int64
	bits      uint32
	nonce     uint32

	// premineKey, when set, is the public key paid premineValue by the
	// coinbase.  Otherwise the coinbase output is empty.
	premineKey   []byte
	premineValue btcutil.Amount
}

// coinbaseScript returns the genesis coinbase signature script:
// OP_0 <42> <timestamp>.
func (s *genesisSpec) coinbaseScript() []byte {
	script, err := txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(42).
		AddData([]byte(s.timestamp)).
		Script()
	if err != nil {
		panic(err)
	}
	return script
}

// premineScript returns the pay-to-pubkey script of the premine output.
func (s *genesisSpec) premineScript() []byte {
	script, err := txscript.NewScriptBuilder().
		AddData(s.premineKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		panic(err)
	}
	return script
}

// newGenesisBlock builds the genesis block described by spec.
func newGenesisBlock(spec genesisSpec) *wire.MsgBlock {
	coinbase := wire.NewMsgTx(wire.TxVersion, time.Unix(spec.txTime, 0))
	coinbase.AddTxIn(&btcwire.TxIn{
		PreviousOutPoint: btcwire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: btcwire.MaxPrevOutIndex,
		},
		SignatureScript: spec.coinbaseScript(),
		Sequence:        btcwire.MaxTxInSequenceNum,
	})
	if spec.premineKey != nil {
		coinbase.AddTxOut(btcwire.NewTxOut(int64(spec.premineValue),
			spec.premineScript()))
	} else {
		coinbase.AddTxOut(&btcwire.TxOut{})
	}

	transactions := []*wire.MsgTx{coinbase}
	merkleRoot := blockchain.CalcMerkleRoot(transactions)
	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:       1,
			PrevBlock:     chainhash.Hash{},
			MerkleRoot:    merkleRoot,
			Timestamp:     time.Unix(spec.blockTime, 0),
			Bits:          spec.bits,
			Nonce:         spec.nonce,
			HashStateRoot: *genesisStateRoot,
			HashUTXORoot:  *genesisUTXORoot,
		},
		Transactions: transactions,
	}
}

// GenesisMismatchError describes a genesis block which does not match the
// constants of its network.  It is a fatal configuration error: a node with
// a different genesis block can never agree with the rest of the network.
type GenesisMismatchError struct {
	Network Network
	Field   string
	Got     chainhash.Hash
	Want    chainhash.Hash
}

// Error satisfies the error interface and prints human-readable errors.
func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("%s genesis %s mismatch: got %v, want %v",
		e.Network, e.Field, e.Got, e.Want)
}

// verifyGenesis checks the genesis block of p against its stored merkle root
// and hash.
func verifyGenesis(p *Params) error {
	header := &p.GenesisBlock.Header

	merkleRoot := blockchain.CalcMerkleRoot(p.GenesisBlock.Transactions)
	if merkleRoot != header.MerkleRoot || merkleRoot != *p.GenesisMerkleRoot {
		return &GenesisMismatchError{
			Network: p.Network,
			Field:   "merkle root",
			Got:     merkleRoot,
			Want:    *p.GenesisMerkleRoot,
		}
	}

	hash := header.HashWith(p.HeaderHasher)
	if hash != *p.GenesisHash {
		return &GenesisMismatchError{
			Network: p.Network,
			Field:   "hash",
			Got:     hash,
			Want:    *p.GenesisHash,
		}
	}

	return nil
}

// PremineAddress returns the pay-to-pubkey-hash address of the key paid by
// the genesis coinbase.  It returns an empty string when the genesis block
// has no premine.
func (p *Params) PremineAddress() (string, error) {
	coinbase := p.GenesisBlock.Transactions[0]
	for _, txOut := range coinbase.TxOut {
		if txOut.Value == 0 {
			continue
		}
		class, addrs, _, err := txscript.ExtractPkScriptAddrs(
			txOut.PkScript, p.AddressParams())
		if err != nil {
			return "", err
		}
		if class != txscript.PubKeyTy || len(addrs) != 1 {
			return "", fmt.Errorf("unexpected premine script class %v",
				class)
		}
		pubKey, ok := addrs[0].(*btcutil.AddressPubKey)
		if !ok {
			return "", fmt.Errorf("unexpected premine address type %T",
				addrs[0])
		}
		return pubKey.AddressPubKeyHash().EncodeAddress(), nil
	}
	return "", nil
}
