// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package server implements a single decryption-quorum member. An
// AuthServer is long-lived, single-owner per identity, and holds one share
// sᵢ that never leaves its owning party in a correct deployment.
package server

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/quorumvote/tpaillier/crypto/paillier"
)

// AuthServer holds one server's share sᵢ and its 1-indexed identity i.
type AuthServer struct {
	i  int
	si *big.Int
}

// New allocates an uninitialized AuthServer; call Set before PartialDecrypt.
func New() *AuthServer {
	return &AuthServer{}
}

// Set stores the share sᵢ and records identity i+1 for the 0-based index i
// the caller passes in, matching sharing.Polynomial's 0-based Eval.
func (s *AuthServer) Set(share *big.Int, i int) error {
	if i < 0 {
		return errors.Errorf("server.Set: index must be >= 0, got %d", i)
	}
	s.i = i + 1
	s.si = new(big.Int).Set(share)
	return nil
}

// Index returns the server's 1-indexed identity.
func (s *AuthServer) Index() int { return s.i }

// PartialDecrypt computes cᵢ = c^(2*Δ*sᵢ) mod n², this server's contribution
// toward decrypting c.
func (s *AuthServer) PartialDecrypt(pk *paillier.PublicKey, c *big.Int) (*big.Int, error) {
	if s.si == nil {
		return nil, errors.New("server.PartialDecrypt: AuthServer has no share set")
	}
	if c == nil || c.Sign() <= 0 || c.Cmp(pk.NSquare) >= 0 {
		return nil, errors.New("server.PartialDecrypt: ciphertext out of range")
	}
	exp := new(big.Int).Mul(big.NewInt(2), pk.Delta)
	exp.Mul(exp, s.si)
	return new(big.Int).Exp(c, exp, pk.NSquare), nil
}

// Destroy zeroizes the server's share. Safe to call on an uninitialized or
// already-destroyed server.
func (s *AuthServer) Destroy() {
	if s == nil || s.si == nil {
		return
	}
	s.si.SetInt64(0)
}
