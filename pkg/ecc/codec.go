package ecc

import (
	"github.com/smallyu/go-eccore/internal/crypto/curves"
	"github.com/smallyu/go-eccore/internal/crypto/eddsa"
	"github.com/smallyu/go-eccore/internal/crypto/field"
	"github.com/smallyu/go-eccore/internal/crypto/mpn"
)

// PointCodec converts between RFC 8032 point encodings and affine
// coordinates.
type PointCodec interface {
	// Curve returns the canonical curve name.
	Curve() string

	// EncodedLen returns the length of an encoding in bytes.
	EncodedLen() int

	// Decode validates an encoding and returns the affine coordinates as
	// big-endian strings of the field byte length.
	Decode(enc []byte) (x, y []byte, err error)

	// Encode checks that (x, y) is a canonical curve point and returns its
	// encoding.
	Encode(x, y []byte) ([]byte, error)

	// Base returns the encoding of the curve's generator.
	Base() []byte
}

// Codec is the PointCodec for one Edwards curve. It holds no mutable state
// and is safe for concurrent use.
type Codec struct {
	c *curves.Curve
}

var _ PointCodec = (*Codec)(nil)

// NewCodec returns the codec for the named curve. Weierstrass curves have
// no codec and yield ErrNoEncoding.
func NewCodec(name string) (*Codec, error) {
	c, err := curves.ByName(name)
	if err != nil {
		return nil, err
	}
	if c.Family() != curves.Edwards {
		return nil, newDecodeError(c.Name(), "weierstrass curve", ErrNoEncoding)
	}
	return &Codec{c: c}, nil
}

func (k *Codec) Curve() string { return k.c.Name() }

func (k *Codec) EncodedLen() int { return k.c.EncodedLen() }

func (k *Codec) Decode(enc []byte) (x, y []byte, err error) {
	var p eddsa.Point
	var scratch [eddsa.MaxDecompressItch]uint64
	if err := eddsa.Decompress(k.c, &p, enc, scratch[:]); err != nil {
		return nil, nil, newDecodeError(k.c.Name(), "rejected encoding", err)
	}
	x, y = k.affine(&p)
	return x, y, nil
}

func (k *Codec) affine(p *eddsa.Point) (x, y []byte) {
	fp := k.c.P()
	n := fp.Size()
	var xl, yl [field.MaxSize]uint64
	var scratch [eddsa.MaxCompressItch]uint64
	p.Affine(k.c, xl[:n], yl[:n], scratch[:])

	x = make([]byte, fp.ByteLen())
	y = make([]byte, fp.ByteLen())
	mpn.PutBytesBE(x, xl[:n])
	mpn.PutBytesBE(y, yl[:n])
	return x, y
}

func (k *Codec) Encode(x, y []byte) ([]byte, error) {
	fp := k.c.P()
	n := fp.Size()
	if len(x) != fp.ByteLen() || len(y) != fp.ByteLen() {
		return nil, newDecodeError(k.c.Name(), "coordinates must be field-sized", ErrInvalidLength)
	}
	var xl, yl [field.MaxSize]uint64
	mpn.SetBytesBE(xl[:n], x)
	mpn.SetBytesBE(yl[:n], y)
	if mpn.SubBorrow(xl[:n], fp.Limbs())&mpn.SubBorrow(yl[:n], fp.Limbs()) != 1 {
		return nil, newDecodeError(k.c.Name(), "coordinate not below p", ErrNonCanonical)
	}

	var p eddsa.Point
	var scratch [eddsa.MaxCompressItch]uint64
	p.SetAffine(k.c, xl[:n], yl[:n], scratch[:])
	if k.c.OnCurve(p.X[:n], p.Y[:n], scratch[:]) != 1 {
		return nil, newDecodeError(k.c.Name(), "rejected coordinates", ErrNotOnCurve)
	}
	return k.compress(&p), nil
}

func (k *Codec) compress(p *eddsa.Point) []byte {
	var scratch [eddsa.MaxCompressItch]uint64
	out := make([]byte, k.c.EncodedLen())
	eddsa.Compress(k.c, out, p, scratch[:])
	return out
}

func (k *Codec) Base() []byte {
	var p eddsa.Point
	return k.compress(p.SetGenerator(k.c))
}

// MontgomeryU returns the X25519 u coordinate, little-endian, of the point
// an ed25519 encoding names. Other curves yield ErrNoMontgomery.
func (k *Codec) MontgomeryU(enc []byte) ([]byte, error) {
	if k.c != curves.Ed25519 {
		return nil, newDecodeError(k.c.Name(), "no birational map", ErrNoMontgomery)
	}
	var p eddsa.Point
	var scratch [eddsa.MaxDecompressItch]uint64
	if err := eddsa.Decompress(k.c, &p, enc, scratch[:]); err != nil {
		return nil, newDecodeError(k.c.Name(), "rejected encoding", err)
	}
	u := make([]byte, k.c.EncodedLen())
	eddsa.MontgomeryU(k.c, u, &p, scratch[:])
	return u, nil
}
