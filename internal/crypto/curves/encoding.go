package curves

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// SEC 1 point encoding prefixes.
const (
	formatIdentity     byte = 0x00
	formatCompressed   byte = 0x02
	formatUncompressed byte = 0x04
)

// Marshal encodes p in SEC 1 form: 0x04||x||y uncompressed or
// 0x02/0x03||x compressed. The identity encodes as the single byte 0x00.
// secp256k1 points are serialized by the decred package.
func Marshal(params *Params, p Point, compressed bool) []byte {
	if p.Infinity {
		return []byte{formatIdentity}
	}

	if isSecp256k1(params) {
		var fx, fy secp256k1.FieldVal
		fx.SetByteSlice(p.X.Bytes())
		fy.SetByteSlice(p.Y.Bytes())
		pub := secp256k1.NewPublicKey(&fx, &fy)
		if compressed {
			return pub.SerializeCompressed()
		}
		return pub.SerializeUncompressed()
	}

	size := byteLen(params)
	if compressed {
		out := make([]byte, 1+size)
		out[0] = formatCompressed | byte(p.Y.Bit(0))
		p.X.FillBytes(out[1:])
		return out
	}

	out := make([]byte, 1+2*size)
	out[0] = formatUncompressed
	p.X.FillBytes(out[1 : 1+size])
	p.Y.FillBytes(out[1+size:])
	return out
}

// Unmarshal decodes a SEC 1 encoded point and checks that it lies on the
// curve described by params.
func Unmarshal(params *Params, data []byte) (Point, error) {
	if len(data) == 1 && data[0] == formatIdentity {
		return Identity(), nil
	}

	if isSecp256k1(params) {
		pub, err := secp256k1.ParsePubKey(data)
		if err != nil {
			return Point{}, &InvalidPointError{Reason: err.Error()}
		}
		return Point{X: pub.X(), Y: pub.Y()}, nil
	}

	size := byteLen(params)
	switch {
	case len(data) == 1+size && (data[0] == formatCompressed || data[0] == formatCompressed|1):
		x := new(big.Int).SetBytes(data[1:])
		y, err := decompressY(params, x, data[0]&1 == 1)
		if err != nil {
			return Point{}, err
		}
		return Point{X: x, Y: y}, nil

	case len(data) == 1+2*size && data[0] == formatUncompressed:
		p := Point{
			X: new(big.Int).SetBytes(data[1 : 1+size]),
			Y: new(big.Int).SetBytes(data[1+size:]),
		}
		if !isOnCurve(params, p) {
			return Point{}, &InvalidPointError{Reason: "point is not on the curve"}
		}
		return p, nil
	}

	return Point{}, &InvalidPointError{Reason: fmt.Sprintf("unsupported encoding of length %d", len(data))}
}

// decompressY solves y² = x³ + a·x + b for the root with the requested
// parity.
func decompressY(params *Params, x *big.Int, odd bool) (*big.Int, error) {
	if x.Cmp(params.P) >= 0 {
		return nil, &InvalidPointError{Reason: "x coordinate outside [0, p)"}
	}

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, new(big.Int).Mul(params.A, x))
	rhs.Add(rhs, params.B)
	rhs.Mod(rhs, params.P)

	y := new(big.Int).ModSqrt(rhs, params.P)
	if y == nil {
		return nil, &InvalidPointError{Reason: "x coordinate is not on the curve"}
	}
	if (y.Bit(0) == 1) != odd {
		y.Sub(params.P, y)
		y.Mod(y, params.P)
	}
	if (y.Bit(0) == 1) != odd {
		// y = 0 has no odd twin
		return nil, &InvalidPointError{Reason: "invalid y parity"}
	}
	return y, nil
}

// byteLen is the coordinate width in bytes, taken from the modulus.
func byteLen(params *Params) int {
	return (params.P.BitLen() + 7) / 8
}

// isSecp256k1 reports whether params describe secp256k1, in which case the
// decred package handles encoding.
func isSecp256k1(params *Params) bool {
	ref := secp256k1.S256().Params()
	return params.P.Cmp(ref.P) == 0 &&
		params.A.Sign() == 0 &&
		params.B.Cmp(ref.B) == 0 &&
		!params.G.Infinity &&
		params.G.X.Cmp(ref.Gx) == 0 &&
		params.G.Y.Cmp(ref.Gy) == 0
}
