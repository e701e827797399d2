// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	btcchain "github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mask256 has the low 256 bits set and truncates targets to the width
	// of a block hash.
	mask256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// HashToBig converts a chainhash.Hash into a big.Int that can be used to
// perform math comparisons.  The hash bytes are little endian, so they are
// reversed before interpretation.
func HashToBig(hash *chainhash.Hash) *big.Int {
	return btcchain.HashToBig(hash)
}

// CompactToBig converts a compact representation of a whole number N to an
// unsigned 256-bit number.  The representation is similar to IEEE754 floating
// point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa.  They are broken out as follows:
//
// - the most significant 8 bits represent the unsigned base 256 exponent
// - bit 23 (the 24th bit) represents the sign bit
// - the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// The returned target is the magnitude of N truncated to 256 bits.  negative
// reports a set sign bit with a non-zero mantissa and overflow reports a
// value which does not fit in 256 bits, both exactly as bitcoind's SetCompact
// does.  Callers must not trust the target when either flag is set.
func CompactToBig(compact uint32) (target *big.Int, negative, overflow bool) {
	exponent := uint(compact >> 24)
	mantissa := compact & 0x007fffff
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
	}

	negative = mantissa != 0 && compact&0x00800000 != 0
	overflow = mantissa != 0 && (exponent > 34 ||
		(mantissa > 0xff && exponent > 33) ||
		(mantissa > 0xffff && exponent > 32))

	target = btcchain.CompactToBig(compact)
	target.Abs(target)
	target.And(target, mask256)
	return target, negative, overflow
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number.  The compact representation only provides 23 bits
// of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number.  See CompactToBig for details.
func BigToCompact(n *big.Int) uint32 {
	return btcchain.BigToCompact(n)
}

// CalcWork calculates a work value from difficulty bits.  A lower target
// equates to more work, so the work value is the inverse of the target with 1
// added to the denominator to avoid division by zero.  Invalid bits are worth
// no work.
func CalcWork(bits uint32) *big.Int {
	target, negative, overflow := CompactToBig(bits)
	if negative || overflow || target.Sign() == 0 {
		return big.NewInt(0)
	}

	// (1 << 256) / (target + 1)
	denominator := new(big.Int).Add(target, bigOne)
	return new(big.Int).Div(new(big.Int).Lsh(bigOne, 256), denominator)
}
