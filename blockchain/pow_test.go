// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/luxcore/luxd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigToHash returns the hash whose numeric interpretation is n.
func bigToHash(n *big.Int) *chainhash.Hash {
	var buf [chainhash.HashSize]byte
	n.FillBytes(buf[:])
	for i := 0; i < chainhash.HashSize/2; i++ {
		buf[i], buf[chainhash.HashSize-1-i] = buf[chainhash.HashSize-1-i], buf[i]
	}
	hash := chainhash.Hash(buf)
	return &hash
}

func regTestHeader() *wire.BlockHeader {
	merkle, err := chainhash.NewHashFromStr("484415096c0c3f026838b97854d02bbf38aad5449938ef62f1fdd51c371a1696")
	if err != nil {
		panic(err)
	}
	return &wire.BlockHeader{
		Version:    1,
		MerkleRoot: *merkle,
		Timestamp:  time.Unix(1454124731, 0),
		Bits:       0x207fffff,
		Nonce:      12345,
	}
}

// TestCheckProof exercises the proof predicate on the target boundaries and
// on every class of unusable difficulty bits.
func TestCheckProof(t *testing.T) {
	regTarget, _, _ := CompactToBig(0x207fffff)
	aboveRegTarget := new(big.Int).Add(regTarget, bigOne)
	belowRegTarget := new(big.Int).Sub(regTarget, bigOne)
	maxHash := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)

	tests := []struct {
		name string
		hash *chainhash.Hash
		bits uint32
		want bool
		code ErrorCode
	}{
		{"zero hash main limit", &chainhash.Hash{}, 0x1e0fffff, true, 0},
		{"hash equals target", bigToHash(regTarget), 0x207fffff, true, 0},
		{"hash below target", bigToHash(belowRegTarget), 0x207fffff, true, 0},
		{"hash above target", bigToHash(aboveRegTarget), 0x207fffff, false, ErrHighHash},
		{"max hash", bigToHash(maxHash), 0x1e0fffff, false, ErrHighHash},
		{"negative target", &chainhash.Hash{}, 0x04923456, false, ErrNegativeTarget},
		{"overflow target", &chainhash.Hash{}, 0xff123456, false, ErrTargetOverflow},
		{"zero target", &chainhash.Hash{}, 0x01003456, false, ErrZeroTarget},
		{"zero bits", &chainhash.Hash{}, 0, false, ErrZeroTarget},
	}

	for _, test := range tests {
		got := CheckProof(test.hash, test.bits)
		require.Equalf(t, test.want, got, "%s: hash %v", test.name,
			test.hash)

		err := CheckProofDetailed(test.hash, test.bits)
		if test.want {
			require.NoErrorf(t, err, "%s", test.name)
			continue
		}
		var rerr RuleError
		require.Truef(t, errors.As(err, &rerr), "%s: unexpected error "+
			"type %s", test.name, spew.Sdump(err))
		require.Equalf(t, test.code, rerr.ErrorCode, "%s", test.name)
	}
}

// TestCheckProofOfWork ensures headers are checked against the network limit
// as well as against their own bits.
func TestCheckProofOfWork(t *testing.T) {
	regLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
	mainLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	header := regTestHeader()
	require.NoError(t, CheckProofOfWork(header, wire.DoubleSHA256, regLimit))

	err := CheckProofOfWork(header, wire.DoubleSHA256, mainLimit)
	var rerr RuleError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, ErrUnexpectedDifficulty, rerr.ErrorCode)

	// The main network genesis header was mined for phi1612 and only meets
	// its bits under that hasher.
	merkle, err := chainhash.NewHashFromStr("7f4ad75b2d0056751bd3ba5b23b740302be736d77ac1bbca29412affe2afcc47")
	require.NoError(t, err)
	header = &wire.BlockHeader{
		Version:    1,
		MerkleRoot: *merkle,
		Timestamp:  time.Unix(1528226239, 0),
		Bits:       0x1e0fffff,
		Nonce:      1244317,
	}
	require.NoError(t, CheckProofOfWork(header, wire.Phi1612, mainLimit))

	err = CheckProofOfWork(header, wire.DoubleSHA256, mainLimit)
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, ErrHighHash, rerr.ErrorCode)
}

// TestSolveHeader ensures the nonce search finds a solution for an easy target
// and honours its bounds and context.
func TestSolveHeader(t *testing.T) {
	ctx := context.Background()

	header := regTestHeader()
	header.Nonce = 0
	solved, err := SolveHeader(ctx, header, nil, 1000)
	require.NoError(t, err)
	require.True(t, solved)
	hash := header.BlockHash()
	require.True(t, CheckProof(&hash, header.Bits))

	// The stored regression test nonce already solves the header, so the
	// search must stop without changing it.
	header = regTestHeader()
	solved, err = SolveHeader(ctx, header, wire.DoubleSHA256, 12345)
	require.NoError(t, err)
	require.True(t, solved)
	require.Equal(t, uint32(12345), header.Nonce)

	// A start beyond the maximum nonce tries nothing.
	header = regTestHeader()
	solved, err = SolveHeader(ctx, header, nil, 10)
	require.NoError(t, err)
	require.False(t, solved)

	// Unusable bits are rejected before searching.
	header = regTestHeader()
	header.Bits = 0x01003456
	solved, err = SolveHeader(ctx, header, nil, 10)
	require.False(t, solved)
	var rerr RuleError
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, ErrZeroTarget, rerr.ErrorCode)

	// A hasher which never satisfies the target exhausts the range.
	header = regTestHeader()
	header.Nonce = 0
	maxHash := func([]byte) chainhash.Hash {
		var h chainhash.Hash
		for i := range h {
			h[i] = 0xff
		}
		return h
	}
	solved, err = SolveHeader(ctx, header, maxHash, 100)
	require.NoError(t, err)
	require.False(t, solved)
	require.Equal(t, uint32(100), header.Nonce)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	header = regTestHeader()
	solved, err = SolveHeader(cancelled, header, maxHash, 1<<20)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, solved)
}
