package schnorr

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/protocol/keygen"
)

func backends() map[string]curves.Curve {
	return map[string]curves.Curve{
		"generic": curves.NewSecp256k1Weierstrass(),
		"decred":  curves.NewSecp256k1(),
	}
}

func TestSchnorrProof(t *testing.T) {
	for name, curve := range backends() {
		t.Run(name, func(t *testing.T) {
			kp, err := keygen.GenerateKeyPair(curve, rand.Reader)
			require.NoError(t, err)

			proof, err := Prove(curve, kp.PrivateKey, kp.PublicKey, nil)
			require.NoError(t, err)
			assert.True(t, proof.Verify(curve, kp.PublicKey))

			// Proofs are portable between backends.
			for _, other := range backends() {
				assert.True(t, proof.Verify(other, kp.PublicKey))
			}
		})
	}
}

func TestSchnorrProofInvalid(t *testing.T) {
	curve := curves.NewSecp256k1Weierstrass()
	kp, err := keygen.GenerateKeyPair(curve, rand.Reader)
	require.NoError(t, err)
	other, err := keygen.GenerateKeyPair(curve, rand.Reader)
	require.NoError(t, err)

	proof, err := Prove(curve, kp.PrivateKey, kp.PublicKey, rand.Reader)
	require.NoError(t, err)

	// Wrong public key
	assert.False(t, proof.Verify(curve, other.PublicKey))

	// Proof for the wrong key
	forged, err := Prove(curve, other.PrivateKey, kp.PublicKey, rand.Reader)
	require.NoError(t, err)
	assert.False(t, forged.Verify(curve, kp.PublicKey))

	// Modify s
	s := proof.S
	proof.S = new(big.Int).Add(s, big.NewInt(1))
	proof.S.Mod(proof.S, curve.Params().N)
	assert.False(t, proof.Verify(curve, kp.PublicKey))

	// s out of range
	proof.S = new(big.Int).Add(s, curve.Params().N)
	assert.False(t, proof.Verify(curve, kp.PublicKey))
	proof.S = s

	// Modify R
	R := proof.R
	proof.R, err = curve.Double(R)
	require.NoError(t, err)
	assert.False(t, proof.Verify(curve, kp.PublicKey))

	proof.R = curves.Identity()
	assert.False(t, proof.Verify(curve, kp.PublicKey))
	proof.R = R

	assert.True(t, proof.Verify(curve, kp.PublicKey))
	assert.False(t, proof.Verify(curve, curves.Identity()))

	var nilProof *Proof
	assert.False(t, nilProof.Verify(curve, kp.PublicKey))
}

func TestProveRejectsInvalidKey(t *testing.T) {
	curve := curves.NewSecp256k1Weierstrass()
	g := curve.Params().G

	_, err := Prove(curve, big.NewInt(0), g, nil)
	assert.ErrorIs(t, err, curves.ErrInvalidScalar)

	_, err = Prove(curve, curve.Params().N, g, nil)
	assert.ErrorIs(t, err, curves.ErrInvalidScalar)
}
