package reference

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// Secp256k1 exposes decred's fixed-size field and scalar types for the
// secp256k1 moduli. Inputs and outputs are 32-byte big-endian strings.
type Secp256k1 struct{}

// FieldMul returns a*b mod p.
func (Secp256k1) FieldMul(a, b []byte) ([]byte, error) {
	var x, y secp256k1.FieldVal
	if x.SetByteSlice(a) || y.SetByteSlice(b) {
		return nil, errors.New("secp256k1: field element out of range")
	}
	x.Mul(&y).Normalize()
	out := x.Bytes()
	return out[:], nil
}

// ScalarMul returns a*b mod n.
func (Secp256k1) ScalarMul(a, b []byte) ([]byte, error) {
	var x, y secp256k1.ModNScalar
	if x.SetByteSlice(a) || y.SetByteSlice(b) {
		return nil, errors.New("secp256k1: scalar out of range")
	}
	x.Mul(&y)
	out := x.Bytes()
	return out[:], nil
}

// Generator returns the affine generator as 32-byte big-endian strings.
func (Secp256k1) Generator() (x, y []byte) {
	params := secp256k1.S256().Params()
	return params.Gx.FillBytes(make([]byte, 32)), params.Gy.FillBytes(make([]byte, 32))
}
