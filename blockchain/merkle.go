// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/luxcore/luxd/wire"
)

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.  This is a helper
// function used to aid in the generation of a merkle tree.
func HashMerkleBranches(left, right *chainhash.Hash) chainhash.Hash {
	var hash [chainhash.HashSize * 2]byte
	copy(hash[:chainhash.HashSize], left[:])
	copy(hash[chainhash.HashSize:], right[:])
	return chainhash.DoubleHashH(hash[:])
}

// CalcMerkleRoot computes the merkle root over the hashes of the given
// transactions.  A level with an odd number of nodes pairs its last node with
// itself, as in bitcoin.  The root of a single transaction is its hash and
// the root of no transactions is the zero hash.
func CalcMerkleRoot(transactions []*wire.MsgTx) chainhash.Hash {
	if len(transactions) == 0 {
		return chainhash.Hash{}
	}

	level := make([]chainhash.Hash, 0, len(transactions))
	for _, tx := range transactions {
		level = append(level, tx.TxHash())
	}

	for len(level) > 1 {
		next := make([]chainhash.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := &level[i]
			if i+1 < len(level) {
				right = &level[i+1]
			}
			next = append(next, HashMerkleBranches(&level[i], right))
		}
		level = next
	}

	return level[0]
}
