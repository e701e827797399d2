// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// SmartContractsVersionBit is the block version bit which signals a
	// smart-contract block.  Headers with this bit set carry the EVM state
	// root and the UTXO root after the nonce.
	SmartContractsVersionBit = 30

	// BaseBlockHeaderPayload is the number of bytes of a block header
	// without the smart-contract roots.
	// Version 4 bytes + Timestamp 4 bytes + Bits 4 bytes + Nonce 4 bytes +
	// PrevBlock and MerkleRoot hashes.
	BaseBlockHeaderPayload = 16 + (chainhash.HashSize * 2)

	// MaxBlockHeaderPayload is the maximum number of bytes a block header
	// can be.  It adds HashStateRoot and HashUTXORoot to the base header.
	MaxBlockHeaderPayload = BaseBlockHeaderPayload + (chainhash.HashSize * 2)
)

// BlockHeader defines information about a block and is used in the LUX
// block (MsgBlock).
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32

	// Root of the contract state trie.  Only serialized when the header
	// signals SmartContractsVersionBit.
	HashStateRoot chainhash.Hash

	// Root of the contract UTXO set.  Only serialized when the header
	// signals SmartContractsVersionBit.
	HashUTXORoot chainhash.Hash
}

// HasContractRoots reports whether the header version signals a smart-contract
// block and therefore serializes the state and UTXO roots.
func (h *BlockHeader) HasContractRoots() bool {
	return h.Version&(1<<SmartContractsVersionBit) != 0
}

// SerializeSize returns the number of bytes it would take to serialize the
// block header.
func (h *BlockHeader) SerializeSize() int {
	if h.HasContractRoots() {
		return MaxBlockHeaderPayload
	}
	return BaseBlockHeaderPayload
}

// BlockHash computes the block identifier hash for the given block header
// using double sha256.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	return h.HashWith(DoubleSHA256)
}

// HashWith computes the block identifier hash for the given block header
// using the provided hasher.  A nil hasher falls back to double sha256.
func (h *BlockHeader) HashWith(hasher HeaderHasher) chainhash.Hash {
	if hasher == nil {
		hasher = DoubleSHA256
	}

	// Encode the header and hash everything.  Ignore the error returns
	// since there is no way the encode could fail except being out of
	// memory which would cause a run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, h.SerializeSize()))
	_ = writeBlockHeader(buf, h)

	return hasher(buf.Bytes())
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// Serialize encodes a block header to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Bytes returns a byte slice containing the serialized contents of the block
// header.
func (h *BlockHeader) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, h.SerializeSize()))
	if err := h.Serialize(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewBlockHeader returns a new BlockHeader using the provided version, previous
// block hash, merkle root hash, difficulty bits, and nonce used to generate the
// block with defaults for the remaining fields.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce uint32) *BlockHeader {

	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

// readBlockHeader reads a LUX block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	err := readElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		(*uint32Time)(&bh.Timestamp), &bh.Bits, &bh.Nonce)
	if err != nil {
		return err
	}
	if !bh.HasContractRoots() {
		return nil
	}
	return readElements(r, &bh.HashStateRoot, &bh.HashUTXORoot)
}

// writeBlockHeader writes a LUX block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	sec := uint32(bh.Timestamp.Unix())
	err := writeElements(w, bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		sec, bh.Bits, bh.Nonce)
	if err != nil {
		return err
	}
	if !bh.HasContractRoots() {
		return nil
	}
	return writeElements(w, &bh.HashStateRoot, &bh.HashUTXORoot)
}
