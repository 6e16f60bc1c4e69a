package agreement

import (
	"bytes"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/protocol/keygen"
)

func TestSharedSecretAgreement(t *testing.T) {
	for _, curve := range []curves.Curve{curves.NewSecp256k1Weierstrass(), curves.NewSecp256k1()} {
		gen := keygen.NewGenerator(curve)

		alice, err := gen.GenerateKeyPair()
		require.NoError(t, err)
		bob, err := gen.GenerateKeyPair()
		require.NoError(t, err)

		s1, err := ComputeSharedSecret(curve, alice.PrivateKey, bob.PublicKey)
		require.NoError(t, err)
		s2, err := ComputeSharedSecret(curve, bob.PrivateKey, alice.PublicKey)
		require.NoError(t, err)
		require.True(t, s1.Equal(s2))

		params := curve.Params()
		k1, err := SharedKey(params, s1)
		require.NoError(t, err)
		k2, err := SharedKey(params, s2)
		require.NoError(t, err)
		assert.Equal(t, k1, k2)
	}
}

func TestComputeSharedSecretRejects(t *testing.T) {
	curve := curves.NewSecp256k1Weierstrass()
	params := curve.Params()
	g := params.G

	_, err := ComputeSharedSecret(curve, big.NewInt(0), g)
	assert.ErrorIs(t, err, curves.ErrInvalidScalar)

	_, err = ComputeSharedSecret(curve, params.N, g)
	assert.ErrorIs(t, err, curves.ErrInvalidScalar)

	_, err = ComputeSharedSecret(curve, big.NewInt(5), curves.Identity())
	assert.ErrorIs(t, err, curves.ErrInvalidPoint)

	offCurve := curves.NewPoint(g.X, new(big.Int).Add(g.Y, big.NewInt(1)))
	_, err = ComputeSharedSecret(curve, big.NewInt(5), offCurve)
	assert.ErrorIs(t, err, curves.ErrInvalidPoint)
}

func TestSharedKey(t *testing.T) {
	params := curves.Secp256k1Params()

	// x of 1·G, hashed at full width
	want := sha256.Sum256(params.G.X.FillBytes(make([]byte, 32)))
	got, err := SharedKey(params, params.G)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = SharedKey(params, curves.Identity())
	assert.ErrorIs(t, err, curves.ErrInvalidPoint)
}

func TestDeriveKey(t *testing.T) {
	params := curves.Secp256k1Params()
	secret := params.G

	k1, err := DeriveKey(params, secret, []byte("salt"), []byte("ecdh aes-256"), 32)
	require.NoError(t, err)
	assert.Len(t, k1, 32)

	k2, err := DeriveKey(params, secret, []byte("salt"), []byte("ecdh aes-256"), 32)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := DeriveKey(params, secret, []byte("salt"), []byte("ecdh hmac"), 32)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(k1, k3))

	long, err := DeriveKey(params, secret, nil, nil, 64)
	require.NoError(t, err)
	assert.Len(t, long, 64)

	_, err = DeriveKey(params, secret, nil, nil, 0)
	assert.Error(t, err)
	_, err = DeriveKey(params, secret, nil, nil, 255*32+1)
	assert.Error(t, err)
	_, err = DeriveKey(params, curves.Identity(), nil, nil, 32)
	assert.ErrorIs(t, err, curves.ErrInvalidPoint)
}
