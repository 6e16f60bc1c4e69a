// Package modular implements the integer arithmetic needed by the curve
// engine: reduction into [0, m), Euclid's algorithm and modular inversion.
//
// All values are *big.Int and every function returns freshly allocated
// results; arguments are never modified.
package modular

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// ErrNoInverse is matched by every *NoInverseError.
var ErrNoInverse = errors.New("modular: no inverse exists")

// NoInverseError reports that A has no multiplicative inverse modulo M
// because they share the factor GCD (or because M < 2).
type NoInverseError struct {
	A   *big.Int
	M   *big.Int
	GCD *big.Int
}

func (e *NoInverseError) Error() string {
	if e.GCD == nil {
		return fmt.Sprintf("modular: no inverse of %s modulo %s", e.A, e.M)
	}
	return fmt.Sprintf("modular: no inverse of %s modulo %s (gcd %s)", e.A, e.M, e.GCD)
}

func (e *NoInverseError) Unwrap() error {
	return ErrNoInverse
}

// Reduce returns v mod m normalized into [0, m). Negative v is handled by
// adding m to the truncated remainder. m must be positive; Reduce panics
// when m is zero.
func Reduce(v, m *big.Int) *big.Int {
	r := new(big.Int).Rem(v, m)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// GCD computes the greatest common divisor of i and j with Euclid's
// algorithm. The result is non-negative; GCD(0, 0) is 0.
func GCD(i, j *big.Int) *big.Int {
	a := new(big.Int).Abs(i)
	b := new(big.Int).Abs(j)
	for b.Sign() != 0 {
		a.Rem(a, b)
		a, b = b, a
	}
	return a
}

// ExtendedGCD returns g = gcd(a, b) together with Bezout coefficients x, y
// such that a*x + b*y = g. The coefficients may be negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		// (oldR, r) = (r, oldR - q*r), same for s and t
		tmp.Mul(q, r)
		oldR, r = r, oldR.Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, oldS.Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, oldT.Sub(oldT, tmp)
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// Inverse returns the multiplicative inverse of a modulo m, i.e. the value
// x in [0, m) with a*x ≡ 1 (mod m). a may be negative or larger than m.
// It fails with *NoInverseError when gcd(a, m) != 1 or m < 2.
func Inverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(two) < 0 {
		return nil, &NoInverseError{A: new(big.Int).Set(a), M: new(big.Int).Set(m)}
	}

	ar := Reduce(a, m)
	g, x, _ := ExtendedGCD(ar, m)
	if g.Cmp(one) != 0 {
		return nil, &NoInverseError{A: new(big.Int).Set(a), M: new(big.Int).Set(m), GCD: g}
	}
	return Reduce(x, m), nil
}

// Mul returns a*b mod m.
func Mul(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return Reduce(r, m)
}

// Sub returns a-b mod m.
func Sub(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return Reduce(r, m)
}

// IsZero reports whether v ≡ 0 (mod m).
func IsZero(v, m *big.Int) bool {
	return Reduce(v, m).Cmp(zero) == 0
}
