// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// maxScriptSize is the largest signature or public key script this
	// package will decode.
	maxScriptSize = 10000

	// maxTxInOut bounds the number of inputs or outputs decoded for a single
	// transaction so a malformed count can't force a huge allocation.
	maxTxInOut = 100000
)

// MsgTx is a LUX transaction.  It differs from a bitcoin transaction by the
// Time field which is serialized directly after the version.  Inputs and
// outputs share the bitcoin layout.
type MsgTx struct {
	Version  int32
	Time     time.Time
	TxIn     []*btcwire.TxIn
	TxOut    []*btcwire.TxOut
	LockTime uint32
}

// NewMsgTx returns a new LUX tx message that conforms to the Message interface.
// The return instance has a default version of TxVersion and there are no
// transaction inputs or outputs.  Also, the lock time is set to zero to
// indicate the transaction is valid immediately as opposed to some time in
// future.
func NewMsgTx(version int32, txTime time.Time) *MsgTx {
	return &MsgTx{
		Version: version,
		Time:    time.Unix(txTime.Unix(), 0),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *btcwire.TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *btcwire.TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether or not the transaction is a coinbase.  A
// coinbase is a special transaction created by miners that has no inputs.
// This is represented in the block chain by a transaction with a single input
// that has a previous output transaction index set to the maximum value along
// with a zero hash.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}

	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == btcwire.MaxPrevOutIndex &&
		prevOut.Hash == (chainhash.Hash{})
}

// TxHash generates the hash for the transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + Time 4 bytes + LockTime 4 bytes + Serialized varint
	// size for the number of transaction inputs and outputs.
	n := 12 + btcwire.VarIntSerializeSize(uint64(len(msg.TxIn))) +
		btcwire.VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		// Outpoint 36 bytes + Sequence 4 bytes + serialized script.
		n += 40 + btcwire.VarIntSerializeSize(uint64(len(txIn.SignatureScript))) +
			len(txIn.SignatureScript)
	}
	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}

	return n
}

// Serialize encodes the transaction to w.
func (msg *MsgTx) Serialize(w io.Writer) error {
	err := writeElements(w, msg.Version, uint32(msg.Time.Unix()))
	if err != nil {
		return err
	}

	if err := btcwire.WriteVarInt(w, 0, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		err := writeElements(w, &ti.PreviousOutPoint.Hash,
			ti.PreviousOutPoint.Index)
		if err != nil {
			return err
		}
		if err := btcwire.WriteVarBytes(w, 0, ti.SignatureScript); err != nil {
			return err
		}
		if err := writeElement(w, ti.Sequence); err != nil {
			return err
		}
	}

	if err := btcwire.WriteVarInt(w, 0, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := btcwire.WriteTxOut(w, 0, 0, to); err != nil {
			return err
		}
	}

	return writeElement(w, msg.LockTime)
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	var txTime uint32Time
	if err := readElements(r, &msg.Version, &txTime); err != nil {
		return err
	}
	msg.Time = time.Time(txTime)

	count, err := btcwire.ReadVarInt(r, 0)
	if err != nil {
		return err
	}
	if count > maxTxInOut {
		return fmt.Errorf("too many input transactions to fit into "+
			"max message size [count %d, max %d]", count, maxTxInOut)
	}
	msg.TxIn = make([]*btcwire.TxIn, 0, count)
	for i := uint64(0); i < count; i++ {
		ti := new(btcwire.TxIn)
		err := readElements(r, &ti.PreviousOutPoint.Hash,
			&ti.PreviousOutPoint.Index)
		if err != nil {
			return err
		}
		ti.SignatureScript, err = btcwire.ReadVarBytes(r, 0,
			maxScriptSize, "transaction input signature script")
		if err != nil {
			return err
		}
		if err := readElement(r, &ti.Sequence); err != nil {
			return err
		}
		msg.TxIn = append(msg.TxIn, ti)
	}

	count, err = btcwire.ReadVarInt(r, 0)
	if err != nil {
		return err
	}
	if count > maxTxInOut {
		return fmt.Errorf("too many output transactions to fit into "+
			"max message size [count %d, max %d]", count, maxTxInOut)
	}
	msg.TxOut = make([]*btcwire.TxOut, 0, count)
	for i := uint64(0); i < count; i++ {
		to := new(btcwire.TxOut)
		if err := readElement(r, &to.Value); err != nil {
			return err
		}
		to.PkScript, err = btcwire.ReadVarBytes(r, 0, maxScriptSize,
			"transaction output public key script")
		if err != nil {
			return err
		}
		msg.TxOut = append(msg.TxOut, to)
	}

	return readElement(r, &msg.LockTime)
}
