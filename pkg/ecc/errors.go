package ecc

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-eccore/internal/crypto/curves"
	"github.com/smallyu/go-eccore/internal/crypto/eddsa"
)

// Errors returned by the package. Decode failures are wrapped in a
// DecodeError and still match these with errors.Is.
var (
	ErrUnknownCurve   = curves.ErrUnknownCurve
	ErrInvalidLength  = eddsa.ErrInvalidLength
	ErrNonCanonical   = eddsa.ErrNonCanonical
	ErrNotOnCurve     = eddsa.ErrNotOnCurve
	ErrNoEncoding     = errors.New("curve has no point encoding")
	ErrNoMontgomery   = errors.New("curve has no Montgomery form")
	ErrUnknownModulus = errors.New("modulus must be \"p\" or \"q\"")
)

// DecodeError reports a rejected encoding or coordinate pair.
type DecodeError struct {
	Curve  string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Curve, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Curve, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(curve, reason string, err error) *DecodeError {
	return &DecodeError{
		Curve:  curve,
		Reason: reason,
		Err:    err,
	}
}
