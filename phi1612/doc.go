// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package phi1612 implements the Phi1612 proof-of-work hash used by the LUX
block header.

Phi1612 chains six 512-bit hash functions: skein, jh, cubehash, fugue,
gost (streebog) and echo.  Every stage hashes the full output of the stage
before it.  The block hash is the first 256 bits of the final echo digest.

All stages except fugue come from the go-x11 primitives.  The fugue
subpackage provides Fugue-512 with the same hash.Digest interface.
*/
package phi1612
