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

func newTestKey(t *testing.T) (*paillier.PublicKey, *common.RandomState) {
	t.Helper()
	rs, err := common.NewRandomState()
	require.NoError(t, err)
	pk, _, err := paillier.GenerateKeyPair(rs, testKeyBits, 2, 3)
	require.NoError(t, err)
	return pk, rs
}

func TestEncryptRejectsOutOfRangeMessage(t *testing.T) {
	pk, rs := newTestKey(t)

	_, err := pk.Encrypt(rs, big.NewInt(-1))
	assert.ErrorIs(t, err, paillier.ErrMessageOutOfRange)

	_, err = pk.Encrypt(rs, pk.N)
	assert.ErrorIs(t, err, paillier.ErrMessageOutOfRange)
}

func TestEncryptProducesDistinctCiphertexts(t *testing.T) {
	pk, rs := newTestKey(t)

	m := big.NewInt(42)
	c1, err := pk.Encrypt(rs, m)
	require.NoError(t, err)
	c2, err := pk.Encrypt(rs, m)
	require.NoError(t, err)

	assert.NotEqual(t, 0, c1.Cmp(c2), "fresh encryptions of the same plaintext should differ")
	assert.True(t, c1.Sign() > 0 && c1.Cmp(pk.NSquare) < 0)
}

func TestEncryptWithRandomnessIsDeterministic(t *testing.T) {
	pk, rs := newTestKey(t)
	r := rs.SampleInMultiplicativeGroup(pk.N)

	c1, err := pk.EncryptWithRandomness(r, big.NewInt(7))
	require.NoError(t, err)
	c2, err := pk.EncryptWithRandomness(r, big.NewInt(7))
	require.NoError(t, err)

	assert.Equal(t, 0, c1.Cmp(c2))
}

func TestReencryptChangesCiphertext(t *testing.T) {
	pk, rs := newTestKey(t)
	c, err := pk.Encrypt(rs, big.NewInt(5))
	require.NoError(t, err)

	c2, err := pk.Reencrypt(rs, c)
	require.NoError(t, err)
	assert.NotEqual(t, 0, c.Cmp(c2))
}

func TestHomomorphicOpsRejectOutOfRangeCiphertext(t *testing.T) {
	pk, _ := newTestKey(t)

	bad := big.NewInt(0)
	_, err := pk.AddCipherPlain(bad, big.NewInt(1))
	assert.ErrorIs(t, err, paillier.ErrCiphertextOutOfRange)

	_, err = pk.AddCipherCipher(bad, bad)
	assert.ErrorIs(t, err, paillier.ErrCiphertextOutOfRange)

	_, err = pk.MulCipherPlain(bad, big.NewInt(1))
	assert.ErrorIs(t, err, paillier.ErrCiphertextOutOfRange)

	tooBig := new(big.Int).Set(pk.NSquare)
	_, err = pk.Reencrypt(nil, tooBig)
	assert.ErrorIs(t, err, paillier.ErrCiphertextOutOfRange)
}
