// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// RandomState is a stateful PRNG handle wrapping a keyed BLAKE2b XOF seeded
// from an EntropySource. A RandomState is exclusively owned by a single
// caller; it is an error for two concurrent goroutines to call its methods
// on the same handle. Callers needing parallelism should construct one
// RandomState per goroutine rather than share a single generator.
//
// The XOF itself need not be cryptographically strong provided it is seeded
// from real entropy, but BLAKE2b's XOF mode is a reasonable CSPRNG and costs
// nothing extra, so that's what this wraps.
type RandomState struct {
	entropy EntropySource
	xof     blake2b.XOF
}

// NewRandomState allocates a RandomState seeded from the OS entropy source.
// It fails with ErrEntropy if seeding fails.
func NewRandomState() (*RandomState, error) {
	return NewRandomStateFrom(DefaultEntropySource)
}

// NewRandomStateFrom allocates a RandomState seeded from the given entropy
// source; exposed so tests can exercise the EntropyError path.
func NewRandomStateFrom(es EntropySource) (*RandomState, error) {
	rs := &RandomState{entropy: es}
	if err := rs.reseedLocked(); err != nil {
		return nil, err
	}
	return rs, nil
}

// Reseed re-draws EntropySeedBits of fresh OS entropy and replaces the
// internal seed, the way the source's hcs_random_reseed does.
func (rs *RandomState) Reseed() error {
	return rs.reseedLocked()
}

func (rs *RandomState) reseedLocked() error {
	seed, err := rs.entropy.SampleSeedBytes(EntropySeedBits)
	if err != nil {
		return err
	}
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed)
	if err != nil {
		return WrapEntropy(err, "RandomState: failed to key BLAKE2b XOF")
	}
	rs.xof = xof
	return nil
}

// fill reads len(buf) pseudorandom bytes from the generator.
func (rs *RandomState) fill(buf []byte) {
	if rs.xof == nil {
		panic(errors.New("RandomState used before seeding"))
	}
	if _, err := io.ReadFull(rs.xof, buf); err != nil {
		// The XOF is an in-memory hash function; a read failure here means
		// the generator is structurally broken, not a transient condition.
		panic(errors.Wrap(err, "RandomState: XOF read failed"))
	}
}

// SampleUniform draws r uniformly from [0, n) by rejection sampling on the
// minimal number of bits that cover n.
func (rs *RandomState) SampleUniform(n *big.Int) *big.Int {
	if n == nil || n.Sign() <= 0 {
		panic(errors.Errorf("SampleUniform: n must be positive, got %v", n))
	}
	bitLen := n.BitLen()
	numBytes := (bitLen + 7) / 8
	excess := uint(numBytes*8 - bitLen)
	buf := make([]byte, numBytes)
	r := new(big.Int)
	for {
		rs.fill(buf)
		r.SetBytes(buf)
		if excess > 0 {
			r.Rsh(r, excess)
		}
		if r.Cmp(n) < 0 {
			return r
		}
	}
}

// SampleInMultiplicativeGroup draws r uniformly from (Z/nZ)*: it resamples
// in [0, n) until gcd(r, n) = 1.
func (rs *RandomState) SampleInMultiplicativeGroup(n *big.Int) *big.Int {
	gcd := new(big.Int)
	for {
		r := rs.SampleUniform(n)
		if r.Sign() == 0 {
			continue
		}
		if gcd.GCD(nil, nil, r, n).Cmp(one) == 0 {
			return r
		}
	}
}
