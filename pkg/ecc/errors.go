package ecc

import (
	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/modular"
)

// Errors returned by the ecc package. Use errors.Is with the sentinels or
// errors.As with the typed errors.
var (
	// ErrNoInverse is returned when a modular inverse does not exist.
	ErrNoInverse = modular.ErrNoInverse
	// ErrInvalidScalar is returned for negative scalars and private keys
	// outside [1, n-1].
	ErrInvalidScalar = curves.ErrInvalidScalar
	// ErrDomainParameter is returned when curve parameters fail validation.
	ErrDomainParameter = curves.ErrDomainParameter
	// ErrInvalidPoint is returned for points that are not on the curve.
	ErrInvalidPoint = curves.ErrInvalidPoint
)

type (
	// NoInverseError carries the value and modulus that share a factor.
	NoInverseError = modular.NoInverseError
	// InvalidScalarError carries the rejected scalar and the reason.
	InvalidScalarError = curves.InvalidScalarError
	// DomainParameterError names the parameter that failed validation.
	DomainParameterError = curves.DomainParameterError
	// InvalidPointError describes why a point was rejected.
	InvalidPointError = curves.InvalidPointError
)
