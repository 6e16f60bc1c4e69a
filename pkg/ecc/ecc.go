// Package ecc is the public entry point for prime-field elliptic-curve
// arithmetic and key derivation.
//
// A caller builds CurveParameters once, normally with InitCurveParameters
// for secp256k1, and passes it to every operation. CurveParameters is
// immutable and can be shared between goroutines without locking.
package ecc

import (
	"io"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-ecc/internal/protocol/agreement"
	"github.com/smallyu/go-ecc/internal/protocol/keygen"
)

type (
	// Params are raw domain parameters (p, a, b, G, n, h).
	Params = curves.Params
	// Point is an affine point or the identity.
	Point = curves.Point
	// KeyPair is a private scalar and its public point.
	KeyPair = keygen.KeyPair
	// OwnershipProof proves knowledge of the private key behind a public
	// key.
	OwnershipProof = schnorr.Proof
)

// CurveParameters is a validated set of domain parameters bound to an
// arithmetic engine.
type CurveParameters struct {
	curve curves.Curve
}

// InitCurveParameters returns the secp256k1 parameters:
// p = 2^256 - 2^32 - 977, a = 0, b = 7, h = 1.
func InitCurveParameters() *CurveParameters {
	return &CurveParameters{curve: curves.NewSecp256k1Weierstrass()}
}

// NewCurveParameters validates params once and returns them ready for use.
// Validation failures are *DomainParameterError.
func NewCurveParameters(params *Params) (*CurveParameters, error) {
	c, err := curves.NewWeierstrass(params)
	if err != nil {
		return nil, err
	}
	return &CurveParameters{curve: c}, nil
}

// InitDecredCurveParameters returns secp256k1 parameters bound to the
// decred Jacobian implementation instead of the affine engine.
func InitDecredCurveParameters() *CurveParameters {
	return &CurveParameters{curve: curves.NewSecp256k1()}
}

// Params returns a copy of the domain parameters.
func (cp *CurveParameters) Params() *Params {
	return cp.curve.Params()
}

// Generator returns the generator point G.
func (cp *CurveParameters) Generator() Point {
	return cp.curve.Params().G
}

// Identity returns the point at infinity.
func Identity() Point {
	return curves.Identity()
}

// NewPoint returns the affine point (x, y).
func NewPoint(x, y *big.Int) Point {
	return curves.NewPoint(x, y)
}

// GenerateKeyPair draws a private key uniformly from [1, n-1] using random
// and returns it with its public point. random must be a cryptographically
// secure source such as crypto/rand.Reader.
func GenerateKeyPair(cp *CurveParameters, random io.Reader) (*KeyPair, error) {
	return keygen.GenerateKeyPair(cp.curve, random)
}

// ScalarMultiply returns k·p. k must be non-negative; k = 0 gives the
// identity.
func ScalarMultiply(p Point, k *big.Int, cp *CurveParameters) (Point, error) {
	return cp.curve.ScalarMult(p, k)
}

// PointAdd returns p + q.
func PointAdd(p, q Point, cp *CurveParameters) (Point, error) {
	return cp.curve.Add(p, q)
}

// Negate returns -p.
func Negate(p Point, cp *CurveParameters) Point {
	return cp.curve.Negate(p)
}

// IsOnCurve reports whether p is the identity or satisfies the curve
// equation.
func IsOnCurve(p Point, cp *CurveParameters) bool {
	return cp.curve.IsOnCurve(p)
}

// ComputeSharedSecret returns privateKey · peerPublicKey.
func ComputeSharedSecret(privateKey *big.Int, peerPublicKey Point, cp *CurveParameters) (Point, error) {
	return agreement.ComputeSharedSecret(cp.curve, privateKey, peerPublicKey)
}

// SharedKey hashes the x coordinate of a shared point with SHA-256.
func SharedKey(secret Point, cp *CurveParameters) ([32]byte, error) {
	return agreement.SharedKey(cp.curve.Params(), secret)
}

// ProveKeyOwnership returns a Schnorr proof that the holder of kp knows its
// private key.
func ProveKeyOwnership(kp *KeyPair, random io.Reader, cp *CurveParameters) (*OwnershipProof, error) {
	return schnorr.Prove(cp.curve, kp.PrivateKey, kp.PublicKey, random)
}

// VerifyKeyOwnership checks proof against publicKey.
func VerifyKeyOwnership(publicKey Point, proof *OwnershipProof, cp *CurveParameters) bool {
	return proof.Verify(cp.curve, publicKey)
}

// FormatPoint renders p as "(x, y)" or "infinity".
func FormatPoint(p Point) string {
	return p.String()
}

// MarshalPoint encodes p in SEC 1 form.
func MarshalPoint(p Point, compressed bool, cp *CurveParameters) []byte {
	return curves.Marshal(cp.curve.Params(), p, compressed)
}

// UnmarshalPoint decodes a SEC 1 encoded point and checks it is on the
// curve.
func UnmarshalPoint(data []byte, cp *CurveParameters) (Point, error) {
	return curves.Unmarshal(cp.curve.Params(), data)
}
