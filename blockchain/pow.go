// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/luxcore/luxd/wire"
)

// solveCheckInterval is the number of nonces tried between checks of the
// solver's context.
const solveCheckInterval = 1 << 16

// CheckProof reports whether hash satisfies the target encoded by the compact
// difficulty bits.  Bits which decode to a negative, zero or overflowing
// target are never satisfied.  A hash equal to the target satisfies it.
func CheckProof(hash *chainhash.Hash, bits uint32) bool {
	return CheckProofDetailed(hash, bits) == nil
}

// CheckProofDetailed performs the same check as CheckProof, but returns a
// RuleError describing why the proof was rejected.
func CheckProofDetailed(hash *chainhash.Hash, bits uint32) error {
	target, negative, overflow := CompactToBig(bits)
	switch {
	case negative:
		str := fmt.Sprintf("difficulty bits %08x encode a negative "+
			"target", bits)
		return ruleError(ErrNegativeTarget, str)

	case overflow:
		str := fmt.Sprintf("difficulty bits %08x encode a target "+
			"wider than 256 bits", bits)
		return ruleError(ErrTargetOverflow, str)

	case target.Sign() == 0:
		str := fmt.Sprintf("difficulty bits %08x encode a zero target",
			bits)
		return ruleError(ErrZeroTarget, str)
	}

	hashNum := HashToBig(hash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than "+
			"expected max of %064x", hashNum, target)
		return ruleError(ErrHighHash, str)
	}

	return nil
}

// CheckProofOfWork ensures the header bits are within the network's proof of
// work limit and that the header hash computed with hasher satisfies them.
func CheckProofOfWork(header *wire.BlockHeader, hasher wire.HeaderHasher,
	powLimit *big.Int) error {

	target, _, _ := CompactToBig(header.Bits)
	if target.Cmp(powLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is "+
			"higher than max of %064x", target, powLimit)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	hash := header.HashWith(hasher)
	return CheckProofDetailed(&hash, header.Bits)
}

// SolveHeader increments the header nonce, starting at its current value,
// until the header hash computed with hasher satisfies the header bits or
// maxNonce has been tried.  It returns whether a solution was found; on
// success the header holds the solving nonce.  The context is checked
// periodically so long searches can be cancelled.
func SolveHeader(ctx context.Context, header *wire.BlockHeader,
	hasher wire.HeaderHasher, maxNonce uint32) (bool, error) {

	// The zero hash satisfies every usable target.
	if err := CheckProofDetailed(&chainhash.Hash{}, header.Bits); err != nil {
		return false, err
	}

	log.Debugf("Solving header with bits %08x from nonce %d", header.Bits,
		header.Nonce)

	start := header.Nonce
	for nonce := uint64(start); nonce <= uint64(maxNonce); nonce++ {
		if (nonce-uint64(start))%solveCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}

		header.Nonce = uint32(nonce)
		hash := header.HashWith(hasher)
		if CheckProof(&hash, header.Bits) {
			log.Debugf("Solved header %v with nonce %d", hash,
				header.Nonce)
			return true, nil
		}
		if nonce == math.MaxUint32 {
			break
		}
	}

	return false, nil
}
