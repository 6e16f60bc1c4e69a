// Package schnorr implements a non-interactive Schnorr proof of knowledge of
// a private key d for the public key X = d·G on any configured curve.
package schnorr

import (
	crand "crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/modular"
	"github.com/smallyu/go-ecc/internal/protocol/keygen"
)

// Proof is a Schnorr proof of knowledge of a discrete logarithm.
type Proof struct {
	R curves.Point // Commitment R = k·G
	S *big.Int     // Response s = k + e·d mod n
}

// Prove generates a proof that the caller knows d with X = d·G. A nil
// random defaults to crypto/rand.Reader.
func Prove(curve curves.Curve, d *big.Int, X curves.Point, random io.Reader) (*Proof, error) {
	params := curve.Params()
	if err := keygen.ValidatePrivateKey(params, d); err != nil {
		return nil, err
	}
	if random == nil {
		random = crand.Reader
	}

	k, err := keygen.NewGenerator(curve, keygen.WithRand(random)).NewPrivateKey()
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: drawing nonce")
	}
	R, err := curve.ScalarBaseMult(k)
	if err != nil {
		return nil, err
	}

	e := challenge(params, X, R)
	s := modular.Reduce(new(big.Int).Add(k, new(big.Int).Mul(e, d)), params.N)

	return &Proof{R: R, S: s}, nil
}

// Verify checks the proof for public key X.
func (p *Proof) Verify(curve curves.Curve, X curves.Point) bool {
	if p == nil || p.S == nil {
		return false
	}
	params := curve.Params()
	if p.S.Sign() < 0 || p.S.Cmp(params.N) >= 0 {
		return false
	}
	for _, q := range []curves.Point{X, p.R} {
		if q.IsIdentity() || !curve.IsOnCurve(q) {
			return false
		}
	}

	e := challenge(params, X, p.R)

	// s·G = R + e·X
	lhs, err := curve.ScalarBaseMult(p.S)
	if err != nil {
		return false
	}
	eX, err := curve.ScalarMult(X, e)
	if err != nil {
		return false
	}
	rhs, err := curve.Add(p.R, eX)
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

// challenge computes SHA-256(X || R) mod n over compressed SEC 1 encodings.
func challenge(params *curves.Params, X, R curves.Point) *big.Int {
	h := sha256.New()
	h.Write(curves.Marshal(params, X, true))
	h.Write(curves.Marshal(params, R, true))
	return modular.Reduce(new(big.Int).SetBytes(h.Sum(nil)), params.N)
}
