package curves

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrDomainParameter = errors.New("curves: invalid domain parameters")
	ErrInvalidScalar   = errors.New("curves: invalid scalar")
	ErrInvalidPoint    = errors.New("curves: invalid point")
)

// DomainParameterError reports which field of Params failed validation.
type DomainParameterError struct {
	Field  string
	Reason string
}

func (e *DomainParameterError) Error() string {
	return fmt.Sprintf("curves: invalid domain parameter %s: %s", e.Field, e.Reason)
}

func (e *DomainParameterError) Unwrap() error {
	return ErrDomainParameter
}

// InvalidScalarError reports a negative scalar or a private key outside
// [1, n-1].
type InvalidScalarError struct {
	Scalar *big.Int
	Reason string
}

func (e *InvalidScalarError) Error() string {
	return fmt.Sprintf("curves: invalid scalar: %s", e.Reason)
}

func (e *InvalidScalarError) Unwrap() error {
	return ErrInvalidScalar
}

// InvalidPointError reports a point that is not on the curve or an encoding
// that cannot be decoded into one.
type InvalidPointError struct {
	Reason string
}

func (e *InvalidPointError) Error() string {
	return "curves: invalid point: " + e.Reason
}

func (e *InvalidPointError) Unwrap() error {
	return ErrInvalidPoint
}
