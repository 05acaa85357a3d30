// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumvote/tpaillier/common"
	"github.com/quorumvote/tpaillier/crypto/paillier"
)

// Using a small modulus keeps safe-prime sampling fast in tests; production
// deployments should use paillier.MinimumModulusBits or higher.
const testKeyBits = 128

func TestGenerateKeyPair(t *testing.T) {
	rs, err := common.NewRandomState()
	require.NoError(t, err)

	pk, sk, err := paillier.GenerateKeyPair(rs, testKeyBits, 3, 5)
	require.NoError(t, err)

	assert.NotNil(t, pk)
	assert.NotNil(t, sk)
	assert.Equal(t, 0, pk.G.Cmp(new(big.Int).Add(pk.N, big.NewInt(1))))
	assert.Equal(t, 5, pk.L)
	assert.Equal(t, 3, pk.W)
	assert.Equal(t, 0, pk.Delta.Cmp(common.Factorial(5)))
}

func TestGenerateKeyPairRejectsBadQuorum(t *testing.T) {
	rs, err := common.NewRandomState()
	require.NoError(t, err)

	_, _, err = paillier.GenerateKeyPair(rs, testKeyBits, 0, 5)
	assert.Error(t, err)

	_, _, err = paillier.GenerateKeyPair(rs, testKeyBits, 6, 5)
	assert.Error(t, err)
}

func TestPrivateKeyDestroy(t *testing.T) {
	rs, err := common.NewRandomState()
	require.NoError(t, err)

	_, sk, err := paillier.GenerateKeyPair(rs, testKeyBits, 2, 3)
	require.NoError(t, err)

	sk.Destroy()
	assert.Equal(t, 0, sk.D.Sign())
	assert.Equal(t, 0, sk.M.Sign())

	// Destroy must be idempotent and safe on an already-destroyed key.
	assert.NotPanics(t, func() { sk.Destroy() })
}
