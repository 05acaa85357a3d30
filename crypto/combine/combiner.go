// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package combine reconstructs the plaintext from a quorum of partial
// decryptions via integer Lagrange interpolation, using Damgård–Jurik's
// Δ=l! trick to keep every fractional Lagrange coefficient an exact
// integer. The interpolation follows the usual "product over the other
// points" Lagrange-at-0 shape, generalized from summing scalars to
// exponentiating ciphertext group elements, since the thing being
// interpolated here is Dec(c), not a scalar secret directly.
package combine

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/quorumvote/tpaillier/common"
	"github.com/quorumvote/tpaillier/crypto/paillier"
)

// ShareCombine reconstructs the plaintext from C[0..l-1], where C[i] is the
// partial decryption from AuthServer i+1 or the sentinel 0 if absent. The
// precondition |present| >= w is the caller's responsibility and is not
// enforced here — an under-quorum C returns a meaningless plaintext rather
// than an error.
func ShareCombine(pk *paillier.PublicKey, c []*big.Int) (*big.Int, error) {
	if err := ValidatePartials(pk, c); err != nil {
		return nil, errors.Wrap(err, "combine.ShareCombine")
	}

	present := make([]int, 0, len(c))
	for i, ci := range c {
		if ci != nil && ci.Sign() != 0 {
			present = append(present, i)
		}
	}

	acc := big.NewInt(1)
	modNSquare := common.ModInt(pk.NSquare)

	for _, i := range present {
		a, sigma := unscaledLagrangeCoefficient(pk.Delta, present, i)

		exp := new(big.Int).Mul(big.NewInt(2), a)
		t := modNSquare.Exp(c[i], exp)

		if sigma < 0 {
			inv, err := common.Invert(t, pk.NSquare)
			if err != nil {
				return nil, errors.Wrapf(err, "combine.ShareCombine: index %d", i)
			}
			t = inv
		}
		acc = modNSquare.Mul(acc, t)
	}

	x := common.L(acc, pk.N)

	deltaSquare := new(big.Int).Mul(pk.Delta, pk.Delta)
	denom := new(big.Int).Mul(big.NewInt(4), deltaSquare)
	k, err := common.Invert(denom, pk.N)
	if err != nil {
		return nil, errors.Wrap(err, "combine.ShareCombine: (4*Δ²)⁻¹ mod n does not exist")
	}

	return common.ModInt(pk.N).Mul(x, k), nil
}

// unscaledLagrangeCoefficient computes |λᵢ| and sign(λᵢ) for
//
//	λᵢ = Δ · ∏_{j∈present, j≠i} (j+1) / (j−i)
//
// The numerator Δ·∏(j+1) is always positive; the sign of λᵢ is entirely
// carried by the denominator ∏(j−i). Δ = l! guarantees the division is
// exact, so truncated integer division of the absolute values yields the
// true magnitude.
func unscaledLagrangeCoefficient(delta *big.Int, present []int, i int) (magnitude *big.Int, sign int) {
	num := new(big.Int).Set(delta)
	den := big.NewInt(1)
	for _, j := range present {
		if j == i {
			continue
		}
		num.Mul(num, big.NewInt(int64(j+1)))
		den.Mul(den, big.NewInt(int64(j-i)))
	}
	sign = den.Sign()
	magnitude = new(big.Int).Div(num, new(big.Int).Abs(den))
	return magnitude, sign
}
