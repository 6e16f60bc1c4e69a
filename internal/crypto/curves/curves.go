package curves

import (
	"math/big"
)

// Curve defines the group operations the key derivation and agreement code
// needs. Implementations are immutable and safe for concurrent use.
type Curve interface {
	// Params returns a copy of the domain parameters.
	Params() *Params

	// IsOnCurve reports whether p is the identity or a valid affine point.
	IsOnCurve(p Point) bool

	// Add returns p + q.
	Add(p, q Point) (Point, error)

	// Double returns 2·p.
	Double(p Point) (Point, error)

	// Negate returns -p.
	Negate(p Point) Point

	// ScalarMult computes k * P. k must be non-negative.
	ScalarMult(p Point, k *big.Int) (Point, error)

	// ScalarBaseMult computes k * G (base point multiplication).
	ScalarBaseMult(k *big.Int) (Point, error)
}

// Weierstrass is the exact affine arithmetic engine over validated domain
// parameters. The parameters are checked once in NewWeierstrass and never
// again on the arithmetic path.
type Weierstrass struct {
	params *Params
}

// NewWeierstrass validates params and returns a curve engine holding a
// private copy of them.
func NewWeierstrass(params *Params) (*Weierstrass, error) {
	if params == nil {
		return nil, &DomainParameterError{Field: "params", Reason: "nil parameters"}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Weierstrass{params: params.Clone()}, nil
}

// NewSecp256k1Weierstrass returns the exact engine for secp256k1.
func NewSecp256k1Weierstrass() *Weierstrass {
	// The constants are known good; skip the n·G check on every startup.
	return &Weierstrass{params: Secp256k1Params()}
}

func (c *Weierstrass) Params() *Params {
	return c.params.Clone()
}

func (c *Weierstrass) IsOnCurve(p Point) bool {
	return isOnCurve(c.params, p)
}

func (c *Weierstrass) Add(p, q Point) (Point, error) {
	return add(c.params, p, q)
}

func (c *Weierstrass) Double(p Point) (Point, error) {
	return double(c.params, p)
}

func (c *Weierstrass) Negate(p Point) Point {
	return negate(c.params, p)
}

func (c *Weierstrass) ScalarMult(p Point, k *big.Int) (Point, error) {
	return scalarMult(c.params, p, k)
}

func (c *Weierstrass) ScalarBaseMult(k *big.Int) (Point, error) {
	return scalarMult(c.params, c.params.G, k)
}
