// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package paillier implements the Damgård–Jurik threshold variant of the
// Paillier cryptosystem specialized to base s = 1 (the classic Paillier
// group modulo n²). A trusted dealer runs GenerateKeyPair to produce a
// PublicKey shared by everyone and a PrivateKey dealer state consumed only
// by the sharing package to split the decryption key across l servers, w of
// which must cooperate to decrypt.
package paillier

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/quorumvote/tpaillier/common"
)

// MinimumModulusBits is the bit length GenerateKeyPair callers should use in
// production. It is advisory, not enforced: the reference implementation's
// own key-generation example used 128 bits, which is insecure, and this
// package's own tests use smaller moduli to keep safe-prime sampling fast.
const MinimumModulusBits = 2048

type (
	// PublicKey is {n, n², g, Δ, l, w}, immutable once constructed and safe
	// to share freely across goroutines.
	PublicKey struct {
		N       *big.Int
		NSquare *big.Int
		G       *big.Int // n + 1
		Delta   *big.Int // l!
		L       int      // total servers
		W       int      // quorum threshold
	}

	// PrivateKey is the dealer's short-lived state {n, n², d, m, l, w}. It
	// exists only during key dealing: once the sharing package has built and
	// distributed shares from it, callers must call Destroy.
	PrivateKey struct {
		PublicKey
		M *big.Int // p'*q', the sharing modulus's non-n factor
		D *big.Int // constant term of the sharing polynomial: d=1 mod n, d=0 mod m
	}
)

// SharingModulus returns n*m, the modulus the polynomial in the sharing
// package is evaluated over.
func (sk *PrivateKey) SharingModulus() *big.Int {
	return new(big.Int).Mul(sk.N, sk.M)
}

// Destroy zeroizes the dealer state's secret-bearing fields. Safe to call
// more than once or on a key that failed partway through construction.
func (sk *PrivateKey) Destroy() {
	if sk == nil {
		return
	}
	zeroizeAll(sk.M, sk.D)
}

func zeroizeAll(ints ...*big.Int) {
	for _, v := range ints {
		if v != nil {
			v.SetInt64(0)
		}
	}
}

// GenerateKeyPair samples two independent safe-prime pairs of ⌈bits/2⌉ bits
// each, builds n = p*q and the dealer's splitting modulus m = p'*q', and
// computes d via CRT so that d ≡ 1 (mod n) and d ≡ 0 (mod m). w and l are
// carried onto both keys unvalidated beyond 0 < w <= l (the nominal
// ⌈l/2⌉ <= w bound is the dealer's responsibility, not enforced here).
func GenerateKeyPair(rs *common.RandomState, bits, w, l int) (*PublicKey, *PrivateKey, error) {
	if bits < 6 {
		return nil, nil, errors.Errorf("GenerateKeyPair: modulus bit length %d is too small to hold two safe primes", bits)
	}
	if w <= 0 || w > l {
		return nil, nil, errors.Errorf("GenerateKeyPair: require 0 < w <= l, got w=%d l=%d", w, l)
	}

	primeBits := (bits + 1) / 2

	var p, q *common.SafePrime
	for {
		var err error
		if p, err = common.SampleSafePrime(rs, primeBits); err != nil {
			return nil, nil, errors.Wrap(err, "GenerateKeyPair")
		}
		if q, err = common.SampleSafePrime(rs, primeBits); err != nil {
			return nil, nil, errors.Wrap(err, "GenerateKeyPair")
		}
		if p.SafePrimeValue().Cmp(q.SafePrimeValue()) != 0 {
			break
		}
	}

	n := new(big.Int).Mul(p.SafePrimeValue(), q.SafePrimeValue())
	if err := common.CheckModulusSmoothness(n); err != nil {
		return nil, nil, errors.Wrap(err, "GenerateKeyPair")
	}
	nSquare := new(big.Int).Mul(n, n)
	g := new(big.Int).Add(n, big.NewInt(1))
	m := new(big.Int).Mul(p.Prime(), q.Prime())

	d, err := common.TwoModulusCRT(big.NewInt(1), n, big.NewInt(0), m)
	if err != nil {
		return nil, nil, errors.Wrap(err, "GenerateKeyPair: failed to compute dealer constant d")
	}

	delta := common.Factorial(l)

	pk := PublicKey{N: n, NSquare: nSquare, G: g, Delta: delta, L: l, W: w}
	sk := &PrivateKey{PublicKey: pk, M: m, D: d}
	return &pk, sk, nil
}
