// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package phi1612

import (
	"github.com/bitbandi/go-x11/cubed"
	"github.com/bitbandi/go-x11/echo"
	"github.com/bitbandi/go-x11/gost"
	"github.com/bitbandi/go-x11/hash"
	"github.com/bitbandi/go-x11/jhash"
	"github.com/bitbandi/go-x11/skein"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/luxcore/luxd/phi1612/fugue"
)

// Size is the number of bytes of a Phi1612 hash.
const Size = chainhash.HashSize

// stageSize is the output size of every stage of the chain.
const stageSize = 64

// stages lists the digests of the chain in the order they are applied.
var stages = [...]func() hash.Digest{
	skein.New,
	jhash.New,
	cubed.New,
	fugue.New,
	gost.New512,
	echo.New,
}

// Sum returns the Phi1612 hash of data.  Each stage hashes the 512-bit output
// of the previous one and the result is the first 256 bits of the last.
func Sum(data []byte) chainhash.Hash {
	var ta, tb [stageSize]byte
	in, out := data, ta[:]
	for _, newDigest := range stages {
		d := newDigest()
		d.Write(in)

		// Close only fails for a short destination or partial bits.
		_ = d.Close(out, 0, 0)
		in, out = out, tb[:]
		if &in[0] == &tb[0] {
			out = ta[:]
		}
	}

	var h chainhash.Hash
	copy(h[:], in[:Size])
	return h
}
