// Package ecc is the public face of the reduction engine and point codec.
// It works on byte strings and hides limb layouts and scratch sizing.
package ecc

import (
	"github.com/smallyu/go-eccore/internal/crypto/curves"
	"github.com/smallyu/go-eccore/internal/crypto/field"
	"github.com/smallyu/go-eccore/internal/crypto/mpn"
)

// Info describes a curve of the table.
type Info struct {
	Name       string // canonical name, e.g. "ed25519"
	Family     string // "weierstrass" or "edwards"
	FieldBits  int    // bit size of the field prime p
	OrderBits  int    // bit size of the group order q
	FastField  bool   // p has the fast "p+1" reduction
	FastOrder  bool   // q has the fast "p+1" reduction
	EncodedLen int    // point encoding length in bytes, 0 if none
}

func info(c *curves.Curve) Info {
	return Info{
		Name:       c.Name(),
		Family:     c.Family().String(),
		FieldBits:  c.P().BitSize(),
		OrderBits:  c.Q().BitSize(),
		FastField:  c.P().FastPath(),
		FastOrder:  c.Q().FastPath(),
		EncodedLen: c.EncodedLen(),
	}
}

// Curves lists every supported curve in table order.
func Curves() []Info {
	all := curves.All()
	out := make([]Info, len(all))
	for i, c := range all {
		out[i] = info(c)
	}
	return out
}

// Lookup finds a curve by name or alias, ignoring case.
func Lookup(name string) (Info, error) {
	c, err := curves.ByName(name)
	if err != nil {
		return Info{}, err
	}
	return info(c), nil
}

func modulus(c *curves.Curve, which string) (*field.Modulus, error) {
	switch which {
	case "p":
		return c.P(), nil
	case "q":
		return c.Q(), nil
	}
	return nil, ErrUnknownModulus
}

// Reduce returns the big-endian integer in reduced modulo the curve's p or
// q, as which selects, padded to the modulus byte length. The input may
// have any length.
func Reduce(curve, which string, in []byte) ([]byte, error) {
	c, err := curves.ByName(curve)
	if err != nil {
		return nil, err
	}
	m, err := modulus(c, which)
	if err != nil {
		return nil, err
	}
	a := make([]uint64, max((len(in)+7)/8, 1))
	mpn.SetBytesBE(a, in)
	r := make([]uint64, m.Size())
	m.Mod(r, a, make([]uint64, m.ModItch()))

	out := make([]byte, m.ByteLen())
	mpn.PutBytesBE(out, r)
	return out, nil
}

// ReduceWide runs the fixed-width reduction on a big-endian input of
// exactly twice the modulus limb width (16 bytes per limb). For moduli with
// the fast reduction the result is in * 2^(-64*limbs) mod m, the
// Montgomery residue; otherwise it is in mod m. When generic is set the
// bit-serial path is used instead of the fast one; both give the same
// answer.
func ReduceWide(curve, which string, in []byte, generic bool) ([]byte, error) {
	c, err := curves.ByName(curve)
	if err != nil {
		return nil, err
	}
	m, err := modulus(c, which)
	if err != nil {
		return nil, err
	}
	n := m.Size()
	if len(in) != 16*n {
		return nil, newDecodeError(c.Name(), "wide input must be 16 bytes per limb", ErrInvalidLength)
	}
	r := make([]uint64, 2*n)
	mpn.SetBytesBE(r, in)
	scratch := make([]uint64, m.ReduceItch())
	if generic {
		m.ReduceGeneric(r, scratch)
	} else {
		m.Reduce(r, scratch)
		m.Normalize(r)
	}

	out := make([]byte, m.ByteLen())
	mpn.PutBytesBE(out, r[:n])
	return out, nil
}

// ReduceScalar reduces a little-endian digest of any length modulo the
// group order and returns the little-endian result, the way RFC 8032
// derives scalars from hash outputs.
func ReduceScalar(curve string, digest []byte) ([]byte, error) {
	c, err := curves.ByName(curve)
	if err != nil {
		return nil, err
	}
	q := c.Q()
	a := make([]uint64, max((len(digest)+7)/8, 1))
	mpn.SetBytesLE(a, digest)
	r := make([]uint64, q.Size())
	c.ReduceScalar(r, a, make([]uint64, c.ReduceScalarItch()))

	out := make([]byte, q.ByteLen())
	mpn.PutBytesLE(out, r)
	return out, nil
}
