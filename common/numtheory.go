// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"

	"github.com/otiai10/primes"
	"github.com/pkg/errors"
)

const primeTestN = 30

// SmoothnessCheckUntil bounds the trial-division sweep CheckModulusSmoothness
// runs against a candidate modulus.
const SmoothnessCheckUntil = 1000

var smallPrimeCache = primes.Until(SmoothnessCheckUntil).List()

// SafePrime is a prime p = 2*q + 1 where q is also prime ("Sophie Germain").
type SafePrime struct {
	p, q *big.Int // p = 2q + 1
}

// Prime returns q, the Sophie Germain prime.
func (sp *SafePrime) Prime() *big.Int { return sp.q }

// SafePrimeValue returns p = 2q + 1.
func (sp *SafePrime) SafePrimeValue() *big.Int { return sp.p }

func (sp *SafePrime) Validate() bool {
	return probablyPrime(sp.q) && computeSafePrime(sp.q).Cmp(sp.p) == 0 && probablyPrime(sp.p)
}

func computeSafePrime(q *big.Int) *big.Int {
	return new(big.Int).Add(new(big.Int).Mul(q, two), one)
}

func probablyPrime(n *big.Int) bool {
	return n != nil && n.ProbablyPrime(primeTestN)
}

// smallPrimes and smallPrimesProduct back a trial-division sieve that
// quickly rejects composite safe-prime candidates before the expensive
// Miller-Rabin/Pocklington checks run. The sieve executes synchronously on
// the caller's single RandomState; it does not spawn workers.
var smallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

var smallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// SampleSafePrime draws a safe prime p of exactly `bits` bits from rs, along
// with the Sophie Germain prime q = (p-1)/2.
func SampleSafePrime(rs *RandomState, bits int) (*SafePrime, error) {
	if bits < 6 {
		return nil, errors.Errorf("SampleSafePrime: bits must be >= 6, got %d", bits)
	}
	qBits := bits - 1
	for {
		q := sampleOddCandidate(rs, qBits)

		mod := new(big.Int).Mod(q, smallPrimesProduct).Uint64()
		rejected := false
		for _, sp := range smallPrimes {
			if mod%uint64(sp) == 0 && (qBits > 6 || mod != uint64(sp)) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}
		// If q = 1 (mod 3) then p = 2q+1 is a multiple of 3.
		if new(big.Int).Mod(q, big.NewInt(3)).Cmp(one) == 0 {
			continue
		}

		p := computeSafePrime(q)
		if !isSmallPrimeCoprime(p) {
			continue
		}
		if q.BitLen() != qBits {
			continue
		}
		if !q.ProbablyPrime(20) || !pocklingtonSatisfied(p) {
			continue
		}
		sp := &SafePrime{p: p, q: q}
		if !sp.Validate() {
			continue
		}
		return sp, nil
	}
}

func sampleOddCandidate(rs *RandomState, bits int) *big.Int {
	max := new(big.Int).Lsh(one, uint(bits))
	q := rs.SampleUniform(max)
	// Force the top two bits and the low bit so q has exactly `bits` bits
	// and is odd.
	q.SetBit(q, bits-1, 1)
	if bits >= 2 {
		q.SetBit(q, bits-2, 1)
	}
	q.SetBit(q, 0, 1)
	return q
}

func isSmallPrimeCoprime(n *big.Int) bool {
	m := new(big.Int).Mod(n, smallPrimesProduct).Uint64()
	for _, sp := range smallPrimes {
		if m%uint64(sp) == 0 && m != uint64(sp) {
			return false
		}
	}
	return true
}

// pocklingtonSatisfied checks 2^(p-1) = 1 (mod p), sufficient to prove p
// prime once q = (p-1)/2 is already known prime.
func pocklingtonSatisfied(p *big.Int) bool {
	return new(big.Int).Exp(two, new(big.Int).Sub(p, one), p).Cmp(one) == 0
}

// TwoModulusCRT solves x = r1 (mod m1), x = r2 (mod m2) for gcd(m1, m2) = 1,
// returning x in [0, m1*m2).
func TwoModulusCRT(r1, m1, r2, m2 *big.Int) (*big.Int, error) {
	m1InvModM2 := new(big.Int).ModInverse(m1, m2)
	if m1InvModM2 == nil {
		return nil, errors.Errorf("TwoModulusCRT: m1 and m2 are not coprime")
	}
	m2InvModM1 := new(big.Int).ModInverse(m2, m1)
	if m2InvModM1 == nil {
		return nil, errors.Errorf("TwoModulusCRT: m1 and m2 are not coprime")
	}
	m := new(big.Int).Mul(m1, m2)
	// x = r1*m2*(m2^-1 mod m1) + r2*m1*(m1^-1 mod m2) (mod m)
	modM := ModInt(m)
	term1 := modM.Mul(modM.Mul(r1, m2), m2InvModM1)
	term2 := modM.Mul(modM.Mul(r2, m1), m1InvModM2)
	return modM.Add(term1, term2), nil
}

// L is the Paillier reduction L(x) = (x-1)/n, defined only when x = 1 (mod n).
func L(x, n *big.Int) *big.Int {
	t := new(big.Int).Sub(x, one)
	return new(big.Int).Div(t, n)
}

// Factorial returns l!.
func Factorial(l int) *big.Int {
	r := big.NewInt(1)
	for i := 2; i <= l; i++ {
		r.Mul(r, big.NewInt(int64(i)))
	}
	return r
}

// Invert returns a^-1 mod m, or ErrInvert if gcd(a, m) != 1.
func Invert(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, errors.Wrapf(ErrInvert, "Invert: %v has no inverse mod %v", a, m)
	}
	return inv, nil
}

// CheckModulusSmoothness trial-divides n by small primes as a cheap
// defense-in-depth sanity check before a freshly generated modulus is
// trusted.
func CheckModulusSmoothness(n *big.Int) error {
	for _, p := range smallPrimeCache {
		pb := big.NewInt(p)
		if pb.Cmp(n) >= 0 {
			break
		}
		if new(big.Int).Mod(n, pb).Sign() == 0 {
			return errors.Errorf("CheckModulusSmoothness: modulus is divisible by small prime %d", p)
		}
	}
	return nil
}
