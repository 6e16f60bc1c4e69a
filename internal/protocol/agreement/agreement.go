// Package agreement combines a private key with a peer's public point
// (elliptic-curve Diffie-Hellman) and turns the resulting point into
// symmetric key material.
package agreement

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/protocol/keygen"
)

// ComputeSharedSecret returns privateKey · peerPublicKey. Both parties of an
// exchange arrive at the same point: d1·(d2·G) = d2·(d1·G).
func ComputeSharedSecret(curve curves.Curve, privateKey *big.Int, peerPublicKey curves.Point) (curves.Point, error) {
	if err := keygen.ValidatePrivateKey(curve.Params(), privateKey); err != nil {
		return curves.Point{}, err
	}
	if peerPublicKey.IsIdentity() {
		return curves.Point{}, &curves.InvalidPointError{Reason: "peer public key is the identity"}
	}
	if !curve.IsOnCurve(peerPublicKey) {
		return curves.Point{}, &curves.InvalidPointError{Reason: "peer public key is not on the curve"}
	}

	s, err := curve.ScalarMult(peerPublicKey, privateKey)
	if err != nil {
		return curves.Point{}, errors.WithMessage(err, "agreement: computing shared point")
	}
	// Only possible when the peer point lies outside the order-n subgroup.
	if s.IsIdentity() {
		return curves.Point{}, &curves.InvalidPointError{Reason: "shared point is the identity"}
	}
	return s, nil
}

// SharedKey hashes the x coordinate of the shared point, encoded big-endian
// at the field width, with SHA-256.
func SharedKey(params *curves.Params, secret curves.Point) ([32]byte, error) {
	if secret.IsIdentity() {
		return [32]byte{}, &curves.InvalidPointError{Reason: "shared point is the identity"}
	}
	return sha256.Sum256(xBytes(params, secret)), nil
}

// DeriveKey expands the shared point into length bytes of key material with
// HKDF-SHA256. salt and info may be nil.
func DeriveKey(params *curves.Params, secret curves.Point, salt, info []byte, length int) ([]byte, error) {
	if secret.IsIdentity() {
		return nil, &curves.InvalidPointError{Reason: "shared point is the identity"}
	}
	if length <= 0 || length > 255*sha256.Size {
		return nil, errors.Errorf("agreement: invalid key length %d", length)
	}

	r := hkdf.New(sha256.New, xBytes(params, secret), salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Wrap(err, "agreement: expanding key")
	}
	return key, nil
}

func xBytes(params *curves.Params, p curves.Point) []byte {
	size := (params.P.BitLen() + 7) / 8
	out := make([]byte, size)
	p.X.FillBytes(out)
	return out
}
