// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines the consensus parameters of the LUX networks.

Each network (main, test, regtest, unittest and segwit) is described by a
Params value holding the genesis block, proof of work limits, checkpoints,
BIP0009 deployment windows, address encoding magics and node policy flags.
Parameters are built on first use and verified against the compiled in
genesis constants before they are handed out.

A process selects the network it runs on once, usually while parsing its
configuration:

	params, err := chaincfg.Select(chaincfg.TestNet)
	if err != nil {
		// The compiled in constants are inconsistent.
		return err
	}

Code which runs after start up retrieves the selection with ActiveParams.
Asking for the parameters of another network, for instance to decode an
address from a different network, does not change the selection:

	mainParams, err := chaincfg.ParamsFor(chaincfg.MainNet)

Unit tests which need to tweak parameters build private copies with
UnitTestBuilder instead of modifying shared values:

	params, err := chaincfg.NewUnitTestBuilder().
		SetSkipProofOfWorkCheck(true).
		Build()
*/
package chaincfg
