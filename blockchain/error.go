// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrNegativeTarget indicates the compact difficulty bits encode a
	// negative target.
	ErrNegativeTarget ErrorCode = iota

	// ErrTargetOverflow indicates the compact difficulty bits encode a
	// target which does not fit in 256 bits.
	ErrTargetOverflow

	// ErrZeroTarget indicates the compact difficulty bits encode a zero
	// target which no hash can satisfy.
	ErrZeroTarget

	// ErrHighHash indicates the block hash is higher than the target
	// encoded by the difficulty bits.
	ErrHighHash

	// ErrUnexpectedDifficulty indicates the target is easier than the
	// network's proof of work limit.
	ErrUnexpectedDifficulty

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrNegativeTarget:       "ErrNegativeTarget",
	ErrTargetOverflow:       "ErrTargetOverflow",
	ErrZeroTarget:           "ErrZeroTarget",
	ErrHighHash:             "ErrHighHash",
	ErrUnexpectedDifficulty: "ErrUnexpectedDifficulty",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation.  It is used to indicate that a proof
// of work check failed.  The caller can use type assertions to determine if a
// failure was specifically due to a rule violation and access the ErrorCode
// field to ascertain the specific reason for the rule violation.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates an RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// AssertError identifies an error that indicates an internal code consistency
// issue and should be treated as a critical and unrecoverable error.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}
