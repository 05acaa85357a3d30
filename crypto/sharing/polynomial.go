// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package sharing builds the degree-(w-1) Shamir-style polynomial a trusted
// dealer uses to split a Paillier decryption key across l servers, w of
// which must cooperate to decrypt. The polynomial lives over Z/(n*m)Z — a
// non-prime modulus, since m = p'*q' is itself a product of two primes —
// sampled uniformly and evaluated term by term with a running power of the
// evaluation point. There are no
// public commitments to the coefficients; shares are trusted, not
// verifiable.
package sharing

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/quorumvote/tpaillier/common"
	"github.com/quorumvote/tpaillier/crypto/paillier"
)

// Polynomial is the dealer's [c0, c1, ..., c_{w-1}] coefficient sequence,
// c0 = d, the rest uniform in [0, n*m). Like PrivateKey, it exists only
// during dealing and must be destroyed once every share has been handed out.
type Polynomial struct {
	coeffs  []*big.Int
	modulus *big.Int // n*m
}

// Build allocates w coefficients with c0 = sk.D and c1..c_{w-1} drawn
// uniformly from rs over Z/(n*m)Z.
func Build(sk *paillier.PrivateKey, rs *common.RandomState) (*Polynomial, error) {
	if sk.W <= 0 {
		return nil, errors.Errorf("sharing.Build: w must be positive, got %d", sk.W)
	}
	modulus := sk.SharingModulus()
	coeffs := make([]*big.Int, sk.W)
	coeffs[0] = new(big.Int).Set(sk.D)
	for i := 1; i < sk.W; i++ {
		coeffs[i] = rs.SampleUniform(modulus)
	}
	return &Polynomial{coeffs: coeffs, modulus: modulus}, nil
}

// Eval computes y = Poly(i+1) mod n*m for the 0-based server index i. The
// polynomial is evaluated at i+1, never at 0, so the constant term d is
// never directly exposed to a server.
func (poly *Polynomial) Eval(i int) (*big.Int, error) {
	if i < 0 {
		return nil, errors.Wrapf(common.ErrPrecondition, "sharing.Eval: server index must be >= 0, got %d", i)
	}
	modN := common.ModInt(poly.modulus)
	x := big.NewInt(int64(i + 1))

	result := new(big.Int).Set(poly.coeffs[0])
	xPow := big.NewInt(1)
	for k := 1; k < len(poly.coeffs); k++ {
		xPow = modN.Mul(xPow, x)
		term := modN.Mul(poly.coeffs[k], xPow)
		result = modN.Add(result, term)
	}
	return result, nil
}

// Destroy zeroizes every coefficient, including the dealer's secret d,
// before the Polynomial is released.
func (poly *Polynomial) Destroy() {
	if poly == nil {
		return
	}
	for _, c := range poly.coeffs {
		if c != nil {
			c.SetInt64(0)
		}
	}
}

// Share is the point (i, Poly(i) mod n*m) handed to AuthServer i. A Value of
// 0 is a sentinel meaning "share absent" to the combiner; a genuine share is
// never literally 0 with overwhelming probability since the modulus is many
// hundreds of bits wide.
type Share struct {
	I     int // 1-indexed server identity
	Value *big.Int
}
