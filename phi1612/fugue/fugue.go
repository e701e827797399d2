// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fugue

import (
	"encoding/binary"
	"fmt"

	"github.com/bitbandi/go-x11/hash"
)

// HashSize holds the size of a hash in bytes.
const HashSize = 64

// BlockSize holds the size of a block in bytes.  Fugue absorbs the message
// one 32-bit word at a time.
const BlockSize = 4

// stateWords is the number of 32-bit columns of the Fugue-512 state.
const stateWords = 36

type digest struct {
	// s is a ring of columns.  S_i lives at s[(base+i) % stateWords], so
	// rotating the state right only moves base.
	s    [stateWords]uint32
	base int

	b   [BlockSize]byte
	ptr int
	cnt uint64
}

// New returns a new digest computing the 512-bit Fugue hash.
func New() hash.Digest {
	ref := &digest{}
	ref.Reset()
	return ref
}

// Reset resets the digest to its initial state.
func (ref *digest) Reset() {
	for i := range ref.s {
		ref.s[i] = 0
	}
	copy(ref.s[stateWords-len(kInit):], kInit[:])
	ref.base = 0
	ref.ptr = 0
	ref.cnt = 0
}

// Sum appends the current hash to dst and returns the result
// as a slice. It does not change the underlying hash state.
func (ref *digest) Sum(dst []byte) []byte {
	dgt := *ref
	hsh := [HashSize]byte{}
	dgt.Close(hsh[:], 0, 0)
	return append(dst, hsh[:]...)
}

// Write more data to the running hash, never returns an error.
func (ref *digest) Write(src []byte) (int, error) {
	fln := len(src)
	ref.cnt += uint64(fln)
	for len(src) > 0 {
		n := copy(ref.b[ref.ptr:], src)
		src = src[n:]
		ref.ptr += n
		if ref.ptr == BlockSize {
			ref.round(binary.BigEndian.Uint32(ref.b[:]))
			ref.ptr = 0
		}
	}
	return fln, nil
}

// Close the digest by writing the last bits and storing the hash
// in dst. This prepares the digest for reuse by calling reset. A call
// to Close with a dst that is smaller then HashSize will return an error.
// Partial trailing bytes are not supported.
func (ref *digest) Close(dst []byte, bits uint8, bcnt uint8) error {
	if ln := len(dst); HashSize > ln {
		return fmt.Errorf("Fugue Close: dst min length: %d, got %d", HashSize, ln)
	}
	if bcnt != 0 {
		return fmt.Errorf("Fugue Close: bits not supported: got %d", bcnt)
	}

	bitLen := ref.cnt << 3
	if ref.ptr > 0 {
		for i := ref.ptr; i < BlockSize; i++ {
			ref.b[i] = 0
		}
		ref.round(binary.BigEndian.Uint32(ref.b[:]))
	}
	ref.round(uint32(bitLen >> 32))
	ref.round(uint32(bitLen))

	ref.final()

	for i, col := range kOutput {
		binary.BigEndian.PutUint32(dst[i<<2:], *ref.col(col))
	}

	ref.Reset()
	return nil
}

// Size returns the number of bytes required to store the hash.
func (*digest) Size() int {
	return HashSize
}

// BlockSize returns the block size of the hash.
func (*digest) BlockSize() int {
	return BlockSize
}

////////////////

// col returns a pointer to state column S_i.
func (ref *digest) col(i int) *uint32 {
	return &ref.s[(ref.base+i)%stateWords]
}

// ror rotates the state right by n columns.
func (ref *digest) ror(n int) {
	ref.base = (ref.base + stateWords - n) % stateWords
}

// xorInto adds S_0 to each of the given columns.
func (ref *digest) xorInto(cols ...int) {
	s0 := *ref.col(0)
	for _, c := range cols {
		*ref.col(c) ^= s0
	}
}

// cmix is the column mix of the 36 column state.
func (ref *digest) cmix() {
	s4, s5, s6 := *ref.col(4), *ref.col(5), *ref.col(6)
	*ref.col(0) ^= s4
	*ref.col(1) ^= s5
	*ref.col(2) ^= s6
	*ref.col(18) ^= s4
	*ref.col(19) ^= s5
	*ref.col(20) ^= s6
}

// smix applies the substitution and super-mix to columns S_0 to S_3.
func (ref *digest) smix() {
	var x, c, r [4]uint32
	for j := range x {
		x[j] = *ref.col(j)
	}

	// c collects the column mix of every column.  r collects, per row,
	// the mix of the row entries off the diagonal.
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			t := kMix[i][(x[j]>>(24-8*uint(i)))&0xff]
			c[j] ^= t
			if i != j {
				r[i] ^= t
			}
		}
	}

	// Row i of the result is rotated left by i columns.
	for j := 0; j < 4; j++ {
		var w uint32
		for i := 0; i < 4; i++ {
			k := (i + j) & 3
			v := (c[k] >> (24 - 8*uint(i))) ^ (r[i] >> (24 - 8*uint(k)))
			w |= (v & 0xff) << (24 - 8*uint(i))
		}
		*ref.col(j) = w
	}
}

// round absorbs one message word.
func (ref *digest) round(q uint32) {
	*ref.col(22) ^= *ref.col(0)
	*ref.col(0) = q
	*ref.col(8) ^= q
	*ref.col(1) ^= *ref.col(24)
	*ref.col(4) ^= *ref.col(27)
	*ref.col(7) ^= *ref.col(30)

	for i := 0; i < 4; i++ {
		ref.ror(3)
		ref.cmix()
		ref.smix()
	}
}

// final runs the output transformation.
func (ref *digest) final() {
	for i := 0; i < 32; i++ {
		ref.ror(3)
		ref.cmix()
		ref.smix()
	}

	for i := 0; i < 13; i++ {
		ref.xorInto(4, 9, 18, 27)
		ref.ror(9)
		ref.smix()
		ref.xorInto(4, 10, 18, 27)
		ref.ror(9)
		ref.smix()
		ref.xorInto(4, 10, 19, 27)
		ref.ror(9)
		ref.smix()
		ref.xorInto(4, 10, 19, 28)
		ref.ror(8)
		ref.smix()
	}
	ref.xorInto(4, 9, 18, 27)
}

////////////////

// gmul multiplies a and b in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func gmul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

// kMix[i][u] is column i of the mix matrix circ(1, 4, 7, 1) scaled by the
// substituted byte u.
var kMix [4][256]uint32

func init() {
	for u := 0; u < 256; u++ {
		s := kSbox[u]
		t := uint32(s)<<24 | uint32(s)<<16 | uint32(gmul(s, 7))<<8 |
			uint32(gmul(s, 4))
		for i := 0; i < 4; i++ {
			kMix[i][u] = t>>(8*uint(i)) | t<<(32-8*uint(i))
		}
	}
}

// kOutput lists the state columns which make up the digest.
var kOutput = [16]int{1, 2, 3, 4, 9, 10, 11, 12, 18, 19, 20, 21, 27, 28, 29, 30}

var kInit = [16]uint32{
	uint32(0x8807a57e), uint32(0xe616af75), uint32(0xc5d3e4db), uint32(0xac9ab027),
	uint32(0xd915f117), uint32(0xb6eecc54), uint32(0x06e8020b), uint32(0x4a92efd1),
	uint32(0xaac6e2c9), uint32(0xddb21398), uint32(0xcae65838), uint32(0x437f203f),
	uint32(0x25ea78e7), uint32(0x951fddd6), uint32(0xda6ed11d), uint32(0xe13e3567),
}

// kSbox is the AES substitution box.
var kSbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}
