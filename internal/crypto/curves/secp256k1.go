package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 implements Curve on top of the decred secp256k1 package, which
// works in Jacobian coordinates with specialised field arithmetic. It gives
// the same results as the Weierstrass engine for secp256k1 and is used to
// cross-check it.
type Secp256k1 struct {
	params *Params
}

// NewSecp256k1 returns a new instance of the decred-backed secp256k1 curve.
func NewSecp256k1() *Secp256k1 {
	return &Secp256k1{params: Secp256k1Params()}
}

func (c *Secp256k1) Params() *Params {
	return c.params.Clone()
}

func (c *Secp256k1) IsOnCurve(p Point) bool {
	if p.Infinity {
		return true
	}
	if p.X == nil || p.Y == nil {
		return false
	}
	if p.X.Sign() < 0 || p.X.Cmp(c.params.P) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(c.params.P) >= 0 {
		return false
	}
	return secp256k1.S256().IsOnCurve(p.X, p.Y)
}

func (c *Secp256k1) Add(p, q Point) (Point, error) {
	if err := checkAffine(p, q); err != nil {
		return Point{}, err
	}
	if p.Infinity {
		return q.Clone(), nil
	}
	if q.Infinity {
		return p.Clone(), nil
	}
	return fromAffine(secp256k1.S256().Add(p.X, p.Y, q.X, q.Y)), nil
}

func (c *Secp256k1) Double(p Point) (Point, error) {
	if err := checkAffine(p); err != nil {
		return Point{}, err
	}
	if p.Infinity {
		return Identity(), nil
	}
	return fromAffine(secp256k1.S256().Double(p.X, p.Y)), nil
}

func (c *Secp256k1) Negate(p Point) Point {
	return negate(c.params, p)
}

func (c *Secp256k1) ScalarMult(p Point, k *big.Int) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, &InvalidScalarError{Scalar: copyInt(k), Reason: "scalar must be non-negative"}
	}
	if err := checkAffine(p); err != nil {
		return Point{}, err
	}
	if p.Infinity {
		return Identity(), nil
	}
	// Every point has order n (cofactor 1), so reducing k is exact.
	kn := new(big.Int).Mod(k, c.params.N)
	if kn.Sign() == 0 {
		return Identity(), nil
	}
	return fromAffine(secp256k1.S256().ScalarMult(p.X, p.Y, kn.Bytes())), nil
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, &InvalidScalarError{Scalar: copyInt(k), Reason: "scalar must be non-negative"}
	}
	kn := new(big.Int).Mod(k, c.params.N)
	if kn.Sign() == 0 {
		return Identity(), nil
	}
	return fromAffine(secp256k1.S256().ScalarBaseMult(kn.Bytes())), nil
}

// fromAffine maps the (0, 0) encoding of the identity used by the
// crypto/elliptic adaptor back to Identity. (0, 0) is not on secp256k1.
func fromAffine(x, y *big.Int) Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return Identity()
	}
	return Point{X: x, Y: y}
}
