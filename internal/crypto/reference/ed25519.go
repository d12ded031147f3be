package reference

import (
	"io"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"github.com/pkg/errors"
)

// Ed25519 exposes filippo.io/edwards25519 in the byte-level terms the codec
// is tested in: little-endian 32-byte coordinates and RFC 8032 encodings.
type Ed25519 struct{}

// RandomPoint returns the encoding of s*B for a uniformly random scalar s,
// together with the scalar's canonical encoding.
func (Ed25519) RandomPoint(rand io.Reader) (point, scalar []byte, err error) {
	var b [64]byte
	if _, err := io.ReadFull(rand, b[:]); err != nil {
		return nil, nil, errors.Wrap(err, "reading random bytes")
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		return nil, nil, errors.Wrap(err, "reducing random scalar")
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	return p.Bytes(), s.Bytes(), nil
}

// Affine decodes an encoding and returns its affine coordinates as
// little-endian 32-byte strings.
func (Ed25519) Affine(enc []byte) (x, y []byte, err error) {
	p, err := new(edwards25519.Point).SetBytes(enc)
	if err != nil {
		return nil, nil, errors.Wrap(err, "edwards25519 rejected encoding")
	}
	X, Y, Z, _ := p.ExtendedCoordinates()
	zInv := new(field.Element).Invert(Z)
	x = new(field.Element).Multiply(X, zInv).Bytes()
	y = new(field.Element).Multiply(Y, zInv).Bytes()
	return x, y, nil
}

// Valid reports whether edwards25519 accepts the encoding.
func (Ed25519) Valid(enc []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(enc)
	return err == nil
}

// Negate returns the encoding of -P.
func (Ed25519) Negate(enc []byte) ([]byte, error) {
	p, err := new(edwards25519.Point).SetBytes(enc)
	if err != nil {
		return nil, errors.Wrap(err, "edwards25519 rejected encoding")
	}
	return new(edwards25519.Point).Negate(p).Bytes(), nil
}

// ReduceDigest reduces a 64-byte little-endian digest modulo the group
// order, as RFC 8032 does with SHA-512 outputs.
func (Ed25519) ReduceDigest(digest []byte) ([]byte, error) {
	s, err := edwards25519.NewScalar().SetUniformBytes(digest)
	if err != nil {
		return nil, errors.Wrap(err, "reducing digest")
	}
	return s.Bytes(), nil
}

// MontgomeryBase returns the encoding of clamp(k)*B and its Montgomery u
// coordinate, the pair X25519(k, 9) must agree with.
func (Ed25519) MontgomeryBase(k []byte) (point, u []byte, err error) {
	s, err := edwards25519.NewScalar().SetBytesWithClamping(k)
	if err != nil {
		return nil, nil, errors.Wrap(err, "clamping scalar")
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	return p.Bytes(), p.BytesMontgomery(), nil
}
