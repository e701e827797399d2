// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
)

// LuxNet represents which LUX network a message belongs to.  It is the
// little-endian interpretation of the four message start bytes which prefix
// every message on the peer-to-peer network.
type LuxNet uint32

// Constants used to indicate the message LUX network.  They can also be used
// to seek to the next message when a stream's state is unknown, but this
// package does not provide that functionality since it's generally a better
// idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main LUX network.
	MainNet LuxNet = 0xc4d3a8f6

	// TestNet represents the LUX test network.
	TestNet LuxNet = 0xac556653

	// RegTest represents the regression test network.
	RegTest LuxNet = 0xac7ecfa1

	// SegWitTest represents the segregated witness test network.
	SegWitTest LuxNet = 0xa7c973f9
)

// lnStrings is a map of LUX networks back to their constant names for
// pretty printing.
var lnStrings = map[LuxNet]string{
	MainNet:    "MainNet",
	TestNet:    "TestNet",
	RegTest:    "RegTest",
	SegWitTest: "SegWitTest",
}

// String returns the LuxNet in human-readable form.
func (n LuxNet) String() string {
	if s, ok := lnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown LuxNet (%d)", uint32(n))
}

// MessageStart returns the four message start bytes in the order they appear
// on the wire.
func (n LuxNet) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(n))
	return start
}
