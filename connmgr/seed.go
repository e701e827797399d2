// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand"
	"net"
	"sync"
	"time"

	"github.com/btcsuite/btcd/wire"
)

const (
	// SeedRecordSize is the number of bytes of an encoded seed record: a
	// 16 byte IPv6 (or IPv4-mapped) address followed by a big-endian port.
	SeedRecordSize = net.IPv6len + 2

	// secondsInWeek is used by the seed conversion to pick a random last
	// seen time between one and two weeks ago.
	secondsInWeek = 7 * 24 * 60 * 60
)

// ErrMalformedSeedData is returned when encoded seed data is not a whole
// number of seed records.
var ErrMalformedSeedData = errors.New("malformed seed data")

// RandSource supplies the random last seen offsets of converted seeds.
type RandSource interface {
	Int63n(n int64) int64
}

// lockedRand is a RandSource which may be shared between goroutines.
type lockedRand struct {
	mtx sync.Mutex
	r   *mrand.Rand
}

// Int63n returns a pseudo-random number in [0,n).
func (l *lockedRand) Int63n(n int64) int64 {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.r.Int63n(n)
}

var (
	// seedRand is the process-wide source used by ConvertSeeds.  It is
	// seeded once so back-to-back conversions draw from one stream.
	seedRand RandSource = &lockedRand{
		r: mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}

	// seedNow is the clock used by ConvertSeeds.
	seedNow = time.Now
)

// SeedRecord is a hard-coded bootstrap peer.
type SeedRecord struct {
	Addr [net.IPv6len]byte
	Port uint16
}

// NewSeedRecord returns the seed record for ip and port.  IPv4 addresses are
// stored in their IPv4-mapped IPv6 form.
func NewSeedRecord(ip net.IP, port uint16) SeedRecord {
	var rec SeedRecord
	copy(rec.Addr[:], ip.To16())
	rec.Port = port
	return rec
}

// IP returns the address of the seed.
func (r SeedRecord) IP() net.IP {
	ip := make(net.IP, net.IPv6len)
	copy(ip, r.Addr[:])
	return ip
}

// String returns the seed in host:port form.
func (r SeedRecord) String() string {
	return net.JoinHostPort(r.IP().String(), fmt.Sprint(r.Port))
}

// DecodeSeedRecords decodes a packed list of seed records.  The data must be a
// whole number of SeedRecordSize byte records.
func DecodeSeedRecords(data []byte) ([]SeedRecord, error) {
	if len(data)%SeedRecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d",
			ErrMalformedSeedData, len(data), SeedRecordSize)
	}

	records := make([]SeedRecord, 0, len(data)/SeedRecordSize)
	for len(data) > 0 {
		var rec SeedRecord
		copy(rec.Addr[:], data[:net.IPv6len])
		rec.Port = binary.BigEndian.Uint16(data[net.IPv6len:SeedRecordSize])
		records = append(records, rec)
		data = data[SeedRecordSize:]
	}
	return records, nil
}

// EncodeSeedRecords packs seed records into the form read by
// DecodeSeedRecords.
func EncodeSeedRecords(records []SeedRecord) []byte {
	data := make([]byte, 0, len(records)*SeedRecordSize)
	for _, rec := range records {
		data = append(data, rec.Addr[:]...)
		data = binary.BigEndian.AppendUint16(data, rec.Port)
	}
	return data
}

// ConvertSeeds converts seed records into network addresses advertising full
// node service.  Each address is given a random last seen time between one
// and two weeks ago so that peers learned later, which carry newer
// timestamps, are preferred over the hard-coded seeds.
func ConvertSeeds(records []SeedRecord) []*wire.NetAddress {
	return ConvertSeedsWithSource(records, seedNow, seedRand)
}

// ConvertSeedsWithSource is ConvertSeeds with an injected clock and random
// source.  The output preserves the order of records.  Every record draws its
// own offset from randSource.
func ConvertSeedsWithSource(records []SeedRecord, now func() time.Time,
	randSource RandSource) []*wire.NetAddress {

	addresses := make([]*wire.NetAddress, 0, len(records))
	for _, rec := range records {
		addr := wire.NewNetAddressIPPort(rec.IP(), rec.Port,
			wire.SFNodeNetwork)
		lastSeen := now().Unix() - secondsInWeek -
			randSource.Int63n(secondsInWeek)
		addr.Timestamp = time.Unix(lastSeen, 0)
		addresses = append(addresses, addr)
	}

	log.Debugf("Converted %d fixed seeds", len(addresses))
	return addresses
}

// OnSeed is the signature of the callback function which is invoked when
// seeding is successful.
type OnSeed func(addrs []*wire.NetAddress)

// SeedFromFixed converts the hard-coded seed records and hands the addresses
// to seedFn.  Nothing is delivered when there are no records.
func SeedFromFixed(records []SeedRecord, seedFn OnSeed) {
	if len(records) == 0 {
		log.Infof("No fixed seeds available")
		return
	}

	addresses := ConvertSeeds(records)
	log.Infof("%d addresses found from fixed seeds", len(addresses))
	seedFn(addresses)
}
