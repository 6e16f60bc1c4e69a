package curves

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// Point is an affine curve point or the identity element (point at
// infinity). Points are values: arithmetic returns new points and never
// modifies the coordinates of its inputs.
type Point struct {
	X, Y     *big.Int
	Infinity bool
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{Infinity: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.Infinity
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	if p.Infinity {
		return Identity()
	}
	return NewPoint(p.X, p.Y)
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// String formats an affine point as "(x, y)" in decimal and the identity as
// "infinity".
func (p Point) String() string {
	if p.Infinity {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.X.String(), p.Y.String())
}
