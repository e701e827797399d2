// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blockchain implements the LUX proof of work primitives.

It decodes compact difficulty bits into 256-bit targets with the sign and
overflow semantics of the reference client, checks block hashes against those
targets, computes transaction merkle roots and provides the nonce search used
to mine genesis headers.

Errors

Rejected proofs are reported as RuleError values.  Callers can use a type
assertion to recover the ErrorCode which identifies the failed rule.
*/
package blockchain
