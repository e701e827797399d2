// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/luxcore/luxd/phi1612"
)

// HeaderHasher computes the block identifier hash of a serialized block
// header.  Networks designate their hasher in the chain parameters.
type HeaderHasher func(serialized []byte) chainhash.Hash

// DoubleSHA256 is the HeaderHasher which computes sha256(sha256(header)).
var DoubleSHA256 HeaderHasher = chainhash.DoubleHashH

// Phi1612 is the HeaderHasher of the LUX proof of work.  It chains skein,
// jh, cubehash, fugue, gost and echo and keeps the first 256 bits.
var Phi1612 HeaderHasher = phi1612.Sum

// HashAlgo identifies a block header hash algorithm.
type HashAlgo uint8

const (
	// HashDoubleSHA256 selects DoubleSHA256.
	HashDoubleSHA256 HashAlgo = iota

	// HashPhi1612 selects Phi1612.
	HashPhi1612
)

// haStrings maps hash algorithms to their names for pretty printing.
var haStrings = map[HashAlgo]string{
	HashDoubleSHA256: "sha256d",
	HashPhi1612:      "phi1612",
}

// String returns the HashAlgo in human-readable form.
func (a HashAlgo) String() string {
	if s, ok := haStrings[a]; ok {
		return s
	}
	return fmt.Sprintf("Unknown HashAlgo (%d)", uint8(a))
}

// NewHeaderHasher returns the HeaderHasher implementing algo.
func NewHeaderHasher(algo HashAlgo) (HeaderHasher, error) {
	switch algo {
	case HashDoubleSHA256:
		return DoubleSHA256, nil
	case HashPhi1612:
		return Phi1612, nil
	}
	return nil, fmt.Errorf("no header hasher for %v", algo)
}
