// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

// ErrUnknownNetwork describes an error where the requested network is not
// one of the networks defined by this package.
var ErrUnknownNetwork = errors.New("unknown LUX network")

// Network identifies one of the LUX networks.
type Network int

// These constants define the networks known to this package.
const (
	// MainNet is the production LUX network.
	MainNet Network = iota

	// TestNet is the public LUX test network.
	TestNet

	// RegTest is the regression test network.  Its genesis block is not
	// fixed and blocks are mined on demand.
	RegTest

	// UnitTest is the network used by unit tests.  It shares the main
	// network consensus rules and checkpoints.
	UnitTest

	// SegWitTest is the network used to test segregated witness
	// activation.
	SegWitTest

	// numNetworks is the number of defined networks.
	numNetworks
)

// netStrings maps each network to the name used on the command line and in
// RPC results.
var netStrings = map[Network]string{
	MainNet:    "main",
	TestNet:    "test",
	RegTest:    "regtest",
	UnitTest:   "unittest",
	SegWitTest: "segwit",
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := netStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Network (%d)", int(n))
}

// IsValid reports whether n is one of the defined networks.
func (n Network) IsValid() bool {
	return n >= MainNet && n < numNetworks
}

// ParseNetwork returns the network with the given name.
func ParseNetwork(name string) (Network, error) {
	for n, s := range netStrings {
		if s == name {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}
