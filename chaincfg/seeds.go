// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/luxcore/luxd/connmgr"
)

// mainNetSeeds are the packed fixed seed records of the main network.  Each
// record is an IPv6 (or IPv4-mapped) address followed by a big-endian port.
var mainNetSeeds = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xff, 0xff, 0x2d, 0x20, 0xdc, 0x3a, 0x6f, 0xfa, // 45.32.220.58:28666
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xff, 0xff, 0x2d, 0x20, 0x2e, 0x51, 0x6f, 0xfa, // 45.32.46.81:28666
}

// fixedSeeds decodes hard-coded seed records into peer addresses.  It panics
// on malformed data since the table is compiled in.
func fixedSeeds(data []byte) []*btcwire.NetAddress {
	records, err := connmgr.DecodeSeedRecords(data)
	if err != nil {
		panic(err)
	}
	return connmgr.ConvertSeeds(records)
}
