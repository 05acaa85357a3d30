// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/quorumvote/tpaillier/common"
)

var (
	ErrMessageOutOfRange    = errors.New("paillier: message must satisfy 0 <= m < n")
	ErrCiphertextOutOfRange = errors.New("paillier: ciphertext must satisfy 0 < c < n²")
)

// Encrypt computes c = g^m * r^n mod n², with r drawn fresh from (Z/nZ)*
// via rs, and returns the ciphertext directly.
func (pk *PublicKey) Encrypt(rs *common.RandomState, m *big.Int) (*big.Int, error) {
	r := rs.SampleInMultiplicativeGroup(pk.N)
	return pk.EncryptWithRandomness(r, m)
}

// EncryptWithRandomness is the deterministic variant of Encrypt that takes
// caller-supplied randomness r, used by zero-knowledge proofs built on top
// of this package (out of this module's scope, but this is the hook they'd
// use).
func (pk *PublicKey) EncryptWithRandomness(r, m *big.Int) (*big.Int, error) {
	if !common.IsInInterval(m, pk.N) {
		return nil, ErrMessageOutOfRange
	}
	modNSquare := common.ModInt(pk.NSquare)
	gm := modNSquare.Exp(pk.G, m)
	rn := modNSquare.Exp(r, pk.N)
	return modNSquare.Mul(gm, rn), nil
}

// Reencrypt multiplies c by a fresh r^n mod n², preserving the plaintext
// while randomizing the ciphertext's representation.
func (pk *PublicKey) Reencrypt(rs *common.RandomState, c *big.Int) (*big.Int, error) {
	if err := pk.checkCiphertext(c); err != nil {
		return nil, err
	}
	r := rs.SampleInMultiplicativeGroup(pk.N)
	rn := common.ModInt(pk.NSquare).Exp(r, pk.N)
	return common.ModInt(pk.NSquare).Mul(c, rn), nil
}

// AddCipherPlain returns c * g^m mod n², realizing Dec(c') = Dec(c) + m.
func (pk *PublicKey) AddCipherPlain(c, m *big.Int) (*big.Int, error) {
	if err := pk.checkCiphertext(c); err != nil {
		return nil, err
	}
	if !common.IsInInterval(m, pk.N) {
		return nil, ErrMessageOutOfRange
	}
	modNSquare := common.ModInt(pk.NSquare)
	gm := modNSquare.Exp(pk.G, m)
	return modNSquare.Mul(c, gm), nil
}

// AddCipherCipher returns c1 * c2 mod n², realizing Dec(c') = Dec(c1) + Dec(c2).
func (pk *PublicKey) AddCipherCipher(c1, c2 *big.Int) (*big.Int, error) {
	if err := pk.checkCiphertext(c1); err != nil {
		return nil, err
	}
	if err := pk.checkCiphertext(c2); err != nil {
		return nil, err
	}
	return common.ModInt(pk.NSquare).Mul(c1, c2), nil
}

// MulCipherPlain returns c^m mod n², realizing Dec(c') = m * Dec(c).
func (pk *PublicKey) MulCipherPlain(c, m *big.Int) (*big.Int, error) {
	if err := pk.checkCiphertext(c); err != nil {
		return nil, err
	}
	if !common.IsInInterval(m, pk.N) {
		return nil, ErrMessageOutOfRange
	}
	return common.ModInt(pk.NSquare).Exp(c, m), nil
}

// checkCiphertext enforces that every ciphertext lies in [1, n²); raw 0 is
// never valid.
func (pk *PublicKey) checkCiphertext(c *big.Int) error {
	if c == nil || c.Sign() <= 0 || c.Cmp(pk.NSquare) >= 0 {
		return ErrCiphertextOutOfRange
	}
	return nil
}
