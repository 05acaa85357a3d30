// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"fmt"

	"github.com/pkg/errors"
)

// The four error kinds the core surfaces. They are sentinels so callers can
// test with errors.Is; wrap them with errors.Wrap/Wrapf to add the failing
// operation's context.
var (
	// ErrAlloc names the allocation-failure kind. No function in this module
	// returns it: the Go runtime does not report a failed heap allocation as
	// an error value.
	ErrAlloc = errors.New("tpaillier: allocation failed")

	// ErrEntropy is returned by RandomState.New/Reseed when the OS entropy
	// source is unavailable or short-reads.
	ErrEntropy = errors.New("tpaillier: entropy source failed")

	// ErrInvert is returned by ShareCombine when a required modular inverse
	// does not exist; it indicates malformed shares and must be treated as a
	// protocol abort, not retried.
	ErrInvert = errors.New("tpaillier: modular inverse does not exist")

	// ErrPrecondition is returned by sharing's Polynomial.Eval when a caller
	// passes a negative server index, and by EntropySource.SampleSeed for a
	// non-positive bit count.
	ErrPrecondition = errors.New("tpaillier: precondition violated")
)

// WrapEntropy tags err as ErrEntropy while keeping err's message and stack,
// so callers can still errors.Is(err, ErrEntropy) after formatting context in.
func WrapEntropy(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w: %w", msg, ErrEntropy, err)
}
