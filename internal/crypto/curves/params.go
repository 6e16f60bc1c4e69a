package curves

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/smallyu/go-ecc/internal/crypto/modular"
)

// Params holds the domain parameters of a short Weierstrass curve
// y² = x³ + a·x + b over the prime field F_p.
type Params struct {
	Name    string
	P       *big.Int // prime modulus of the field
	A, B    *big.Int // curve coefficients
	G       Point    // generator of the working subgroup
	N       *big.Int // order of G
	H       *big.Int // cofactor
	BitSize int
}

// Secp256k1Params returns a fresh copy of the secp256k1 domain parameters
// (SEC 2, section 2.4.1). p = 2^256 - 2^32 - 977.
func Secp256k1Params() *Params {
	p := new(big.Int).Lsh(one, 256)
	p.Sub(p, new(big.Int).Lsh(one, 32))
	p.Sub(p, big.NewInt(977))

	gx, _ := new(big.Int).SetString("55066263022277343669578718895168534326250603453777594175500187360389116729240", 10)
	gy, _ := new(big.Int).SetString("32670510020758816978083085130507043184471273380659243275938904335757337482424", 10)
	n, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	return &Params{
		Name:    "secp256k1",
		P:       p,
		A:       big.NewInt(0),
		B:       big.NewInt(7),
		G:       NewPoint(gx, gy),
		N:       n,
		H:       big.NewInt(1),
		BitSize: 256,
	}
}

// ParamsFromStrings builds Params from textual values. Each value is parsed
// as hexadecimal when prefixed with 0x and as decimal otherwise. The result
// is not validated; pass it to NewWeierstrass or call Validate.
func ParamsFromStrings(name, p, a, b, gx, gy, n, h string) (*Params, error) {
	params := &Params{Name: name}
	var x, y *big.Int

	fields := []struct {
		name string
		val  string
		dst  **big.Int
	}{
		{"p", p, &params.P},
		{"a", a, &params.A},
		{"b", b, &params.B},
		{"gx", gx, &x},
		{"gy", gy, &y},
		{"n", n, &params.N},
		{"h", h, &params.H},
	}
	for _, f := range fields {
		v, err := parseInt(f.val)
		if err != nil {
			return nil, &DomainParameterError{Field: f.name, Reason: err.Error()}
		}
		*f.dst = v
	}

	params.G = NewPoint(x, y)
	params.BitSize = params.P.BitLen()
	return params, nil
}

func parseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty value")
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q as base %d integer", s, base)
	}
	return v, nil
}

// Validate checks the domain parameters once at setup. It never needs to run
// again on the arithmetic path.
func (params *Params) Validate() error {
	if params.P == nil || params.A == nil || params.B == nil || params.N == nil || params.H == nil {
		return &DomainParameterError{Field: "params", Reason: "missing value"}
	}

	p := params.P
	// 1. Field modulus
	if p.Cmp(big.NewInt(3)) <= 0 || !p.ProbablyPrime(20) {
		return &DomainParameterError{Field: "p", Reason: "modulus is not an odd prime greater than 3"}
	}
	if params.BitSize != 0 && params.BitSize != p.BitLen() {
		return &DomainParameterError{
			Field:  "bitsize",
			Reason: fmt.Sprintf("bit size %d does not match the modulus (%d bits)", params.BitSize, p.BitLen()),
		}
	}

	// 2. Coefficients are canonical field elements
	if params.A.Sign() < 0 || params.A.Cmp(p) >= 0 {
		return &DomainParameterError{Field: "a", Reason: "coefficient outside [0, p)"}
	}
	if params.B.Sign() < 0 || params.B.Cmp(p) >= 0 {
		return &DomainParameterError{Field: "b", Reason: "coefficient outside [0, p)"}
	}

	// 3. Non-singular: 4a³ + 27b² ≢ 0 (mod p)
	disc := new(big.Int).Exp(params.A, big.NewInt(3), p)
	disc.Mul(disc, big.NewInt(4))
	b2 := new(big.Int).Mul(params.B, params.B)
	b2.Mul(b2, big.NewInt(27))
	disc.Add(disc, b2)
	if modular.IsZero(disc, p) {
		return &DomainParameterError{Field: "a,b", Reason: "curve is singular"}
	}

	// 4. Generator
	g := params.G
	if g.Infinity || g.X == nil || g.Y == nil {
		return &DomainParameterError{Field: "g", Reason: "generator must be an affine point"}
	}
	if g.X.Sign() < 0 || g.X.Cmp(p) >= 0 || g.Y.Sign() < 0 || g.Y.Cmp(p) >= 0 {
		return &DomainParameterError{Field: "g", Reason: "generator coordinates outside [0, p)"}
	}
	if !params.onCurve(g.X, g.Y) {
		return &DomainParameterError{Field: "g", Reason: "generator is not on the curve"}
	}

	// 5. Subgroup order and cofactor
	if params.N.Cmp(one) <= 0 || !params.N.ProbablyPrime(20) {
		return &DomainParameterError{Field: "n", Reason: "order is not prime"}
	}
	if params.H.Sign() <= 0 {
		return &DomainParameterError{Field: "h", Reason: "cofactor must be positive"}
	}

	// n·G must be the identity. Run the ladder directly, the curve wrapper
	// does not exist yet.
	ng, err := scalarMult(params, g, params.N)
	if err != nil {
		return &DomainParameterError{Field: "n", Reason: err.Error()}
	}
	if !ng.Infinity {
		return &DomainParameterError{Field: "n", Reason: "n·G is not the identity"}
	}

	return nil
}

// onCurve reports whether y² ≡ x³ + a·x + b (mod p).
func (params *Params) onCurve(x, y *big.Int) bool {
	p := params.P

	lhs := new(big.Int).Mul(y, y)
	lhs = modular.Reduce(lhs, p)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	ax := new(big.Int).Mul(params.A, x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, params.B)
	rhs = modular.Reduce(rhs, p)

	return lhs.Cmp(rhs) == 0
}

// Clone returns a deep copy of params.
func (params *Params) Clone() *Params {
	return &Params{
		Name:    params.Name,
		P:       new(big.Int).Set(params.P),
		A:       new(big.Int).Set(params.A),
		B:       new(big.Int).Set(params.B),
		G:       params.G.Clone(),
		N:       new(big.Int).Set(params.N),
		H:       new(big.Int).Set(params.H),
		BitSize: params.BitSize,
	}
}
