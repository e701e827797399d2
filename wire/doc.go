// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the LUX block and transaction encoding.

LUX keeps the bitcoin layout for transaction inputs and outputs, so this
package reuses the btcd wire types for them.  Two things differ:

  - transactions carry a uint32 timestamp right after the version
  - block headers whose version sets SmartContractsVersionBit append the
    contract state root and the contract UTXO root after the nonce

The block identifier hash is computed by a HeaderHasher.  Phi1612, the LUX
proof of work hash, and DoubleSHA256 are provided.  NewHeaderHasher maps a
HashAlgo to its hasher and chain parameters name the one for their network.

LuxNet identifies a network by the four message start bytes which prefix
every peer-to-peer message.
*/
package wire
