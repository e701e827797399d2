// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fugue implements the 512-bit Fugue hash function behind the
// hash.Digest interface of the go-x11 primitives.
package fugue
