// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.
var littleEndian = binary.LittleEndian

// uint32Time represents a unix timestamp encoded with a uint32.  It is used as
// a way to signal the readElement function how to decode a timestamp into a Go
// time.Time since it is otherwise ambiguous.
type uint32Time time.Time

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	var scratch [8]byte

	switch e := element.(type) {
	case *int32:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = int32(littleEndian.Uint32(scratch[:4]))
		return nil

	case *uint32:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = littleEndian.Uint32(scratch[:4])
		return nil

	case *int64:
		if _, err := io.ReadFull(r, scratch[:8]); err != nil {
			return err
		}
		*e = int64(littleEndian.Uint64(scratch[:8]))
		return nil

	// Unix timestamp encoded as a uint32.
	case *uint32Time:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = uint32Time(time.Unix(int64(littleEndian.Uint32(scratch[:4])), 0))
		return nil

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err
	}

	return fmt.Errorf("readElement: unsupported type %T", element)
}

// readElements reads multiple items from r.  It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		if err := readElement(r, element); err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	var scratch [8]byte

	switch e := element.(type) {
	case int32:
		littleEndian.PutUint32(scratch[:4], uint32(e))
		_, err := w.Write(scratch[:4])
		return err

	case uint32:
		littleEndian.PutUint32(scratch[:4], e)
		_, err := w.Write(scratch[:4])
		return err

	case int64:
		littleEndian.PutUint64(scratch[:8], uint64(e))
		_, err := w.Write(scratch[:8])
		return err

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	}

	return fmt.Errorf("writeElement: unsupported type %T", element)
}

// writeElements writes multiple items to w.  It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := writeElement(w, element); err != nil {
			return err
		}
	}
	return nil
}
