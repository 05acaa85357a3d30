// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumvote/tpaillier/common"
)

func TestSampleSafePrime(t *testing.T) {
	rs, err := common.NewRandomState()
	require.NoError(t, err)

	sp, err := common.SampleSafePrime(rs, 64)
	require.NoError(t, err)
	assert.True(t, sp.Validate())
	assert.Equal(t, 64, sp.SafePrimeValue().BitLen())
}

func TestTwoModulusCRT(t *testing.T) {
	r1, m1 := big.NewInt(1), big.NewInt(7)
	r2, m2 := big.NewInt(0), big.NewInt(11)

	x, err := common.TwoModulusCRT(r1, m1, r2, m2)
	require.NoError(t, err)

	assert.Equal(t, 0, new(big.Int).Mod(x, m1).Cmp(r1))
	assert.Equal(t, 0, new(big.Int).Mod(x, m2).Cmp(r2))
}

func TestTwoModulusCRTNotCoprime(t *testing.T) {
	_, err := common.TwoModulusCRT(big.NewInt(1), big.NewInt(6), big.NewInt(0), big.NewInt(9))
	assert.Error(t, err)
}

func TestL(t *testing.T) {
	n := big.NewInt(77)
	x := new(big.Int).Add(big.NewInt(1), new(big.Int).Mul(big.NewInt(5), n))
	assert.Equal(t, 0, common.L(x, n).Cmp(big.NewInt(5)))
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, big.NewInt(1), common.Factorial(0))
	assert.Equal(t, big.NewInt(1), common.Factorial(1))
	assert.Equal(t, big.NewInt(120), common.Factorial(5))
}

func TestInvert(t *testing.T) {
	inv, err := common.Invert(big.NewInt(3), big.NewInt(11))
	require.NoError(t, err)
	assert.Equal(t, 0, new(big.Int).Mod(new(big.Int).Mul(big.NewInt(3), inv), big.NewInt(11)).Cmp(big.NewInt(1)))

	_, err = common.Invert(big.NewInt(2), big.NewInt(4))
	assert.ErrorIs(t, err, common.ErrInvert)
}

func TestCheckModulusSmoothness(t *testing.T) {
	assert.Error(t, common.CheckModulusSmoothness(big.NewInt(21))) // 3*7
	assert.NoError(t, common.CheckModulusSmoothness(big.NewInt(1009*1013)))
}
