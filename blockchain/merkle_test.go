// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/luxcore/luxd/wire"
	"github.com/stretchr/testify/require"
)

func coinbase(timestamp string, txTime int64) *wire.MsgTx {
	tx := wire.NewMsgTx(1, time.Unix(txTime, 0))
	tx.AddTxIn(&btcwire.TxIn{
		PreviousOutPoint: btcwire.OutPoint{Index: btcwire.MaxPrevOutIndex},
		SignatureScript: append([]byte{0x00, 0x01, 0x2a,
			byte(len(timestamp))}, timestamp...),
		Sequence: btcwire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(&btcwire.TxOut{})
	return tx
}

// TestMerkle tests the CalcMerkleRoot API.
func TestMerkle(t *testing.T) {
	require.Equal(t, chainhash.Hash{}, CalcMerkleRoot(nil))

	genesis := coinbase("Lux - final test 1", 1528226239)
	want, err := chainhash.NewHashFromStr("7f4ad75b2d0056751bd3ba5b23b740302be736d77ac1bbca29412affe2afcc47")
	require.NoError(t, err)
	require.Equal(t, *want, CalcMerkleRoot([]*wire.MsgTx{genesis}))

	testnet := coinbase("Lux - Testnet", 1527664240)
	want, err = chainhash.NewHashFromStr("484415096c0c3f026838b97854d02bbf38aad5449938ef62f1fdd51c371a1696")
	require.NoError(t, err)
	require.Equal(t, *want, CalcMerkleRoot([]*wire.MsgTx{testnet}))

	h1, h2 := genesis.TxHash(), testnet.TxHash()
	pair := HashMerkleBranches(&h1, &h2)
	require.Equal(t, pair, CalcMerkleRoot([]*wire.MsgTx{genesis, testnet}))

	// An odd level pairs the last node with itself.
	third := coinbase("third", 1)
	h3 := third.TxHash()
	right := HashMerkleBranches(&h3, &h3)
	require.Equal(t, HashMerkleBranches(&pair, &right),
		CalcMerkleRoot([]*wire.MsgTx{genesis, testnet, third}))
}
