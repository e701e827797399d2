// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package connmgr implements the LUX fixed-seed bootstrap.

Seed Overview

Each network carries a small table of hard-coded peers which is used when DNS
seeding yields nothing.  The table is packed as 18 byte records, a 16 byte
IPv6 (or IPv4-mapped) address followed by a big-endian port.  Converted seeds
advertise full node service and carry a last seen time between one and two
weeks in the past, so any address learned from a live peer is preferred.
*/
package connmgr
