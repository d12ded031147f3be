// Package eddsa implements the RFC 8032 point encoding for the Edwards
// curves of the curve table.
//
// Compress and Decompress work entirely in caller-supplied scratch, sized by
// CompressItch and DecompressItch. Decompress treats its input as untrusted:
// it runs the same sequence of field operations for valid and invalid
// encodings and only inspects the accumulated result at the end.
package eddsa

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-eccore/internal/crypto/curves"
	"github.com/smallyu/go-eccore/internal/crypto/field"
	"github.com/smallyu/go-eccore/internal/crypto/mpn"
)

var (
	ErrInvalidLength = errors.New("eddsa: invalid encoding length")
	ErrNonCanonical  = errors.New("eddsa: non-canonical encoding")
	ErrNotOnCurve    = errors.New("eddsa: point is not on the curve")
)

// MaxEncodedLen is the longest point encoding of any supported curve.
const MaxEncodedLen = 57

// Worst-case scratch sizes over every curve, for callers that want fixed
// arrays.
const (
	MaxCompressItch   = 8 * field.MaxSize
	MaxDecompressItch = 14 * field.MaxSize
)

// Point is a curve point in projective coordinates (X:Y:Z), with affine
// x = X/Z and y = Y/Z. Coordinates are held in the representation of the
// curve's field prime; only the first P().Size() limbs are used.
type Point struct {
	X, Y, Z [field.MaxSize]uint64
}

func checkCurve(c *curves.Curve) {
	if c.Family() != curves.Edwards || c.EncodedLen() == 0 {
		panic(fmt.Sprintf("eddsa: %s has no point encoding", c.Name()))
	}
}

// traceStep, when set, is called with the name of each step Decompress
// takes. It is only set by tests.
var traceStep func(step string)

func trace(step string) {
	if traceStep != nil {
		traceStep(step)
	}
}

func need(scratch []uint64, n int) {
	if len(scratch) < n {
		panic(fmt.Sprintf("eddsa: scratch too short: have %d limbs, need %d", len(scratch), n))
	}
}

// SetIdentity sets p to the neutral element (0:1:1).
func (p *Point) SetIdentity(c *curves.Curve) *Point {
	n := c.P().Size()
	*p = Point{}
	copy(p.Y[:n], c.P().One())
	copy(p.Z[:n], c.P().One())
	return p
}

// SetGenerator sets p to the curve's base point.
func (p *Point) SetGenerator(c *curves.Curve) *Point {
	n := c.P().Size()
	gx, gy := c.Generator()
	*p = Point{}
	copy(p.X[:n], gx)
	copy(p.Y[:n], gy)
	copy(p.Z[:n], c.P().One())
	return p
}

// SetAffineItch returns the scratch needed by SetAffine.
func SetAffineItch(c *curves.Curve) int { return c.P().RepItch() }

// SetAffine sets p from canonical affine coordinates. It does not check that
// the point is on the curve.
func (p *Point) SetAffine(c *curves.Curve, x, y, scratch []uint64) *Point {
	fp := c.P()
	n := fp.Size()
	need(scratch, SetAffineItch(c))
	*p = Point{}
	fp.ToRep(p.X[:n], x, scratch)
	fp.ToRep(p.Y[:n], y, scratch)
	copy(p.Z[:n], fp.One())
	return p
}

// AffineItch returns the scratch needed by Affine.
func AffineItch(c *curves.Curve) int {
	fp := c.P()
	return fp.Size() + max(fp.InvItch(), fp.RepItch())
}

// Affine writes the canonical affine coordinates of p to x and y, each
// P().Size() limbs. Z must be nonzero.
func (p *Point) Affine(c *curves.Curve, x, y, scratch []uint64) {
	fp := c.P()
	n := fp.Size()
	need(scratch, AffineItch(c))
	zInv, s := scratch[:n], scratch[n:]

	fp.Inv(zInv, p.Z[:n], s)
	fp.Mul(x, p.X[:n], zInv, s)
	fp.Mul(y, p.Y[:n], zInv, s)
	fp.FromRep(x, x, s)
	fp.FromRep(y, y, s)
}

// CompressItch returns the scratch needed by Compress. It depends only on
// the curve.
func CompressItch(c *curves.Curve) int {
	return 2*c.P().Size() + AffineItch(c)
}

// Compress writes the encoding of p to dst, which must be EncodedLen()
// bytes: y little-endian with the low bit of x in the top bit of the last
// byte.
func Compress(c *curves.Curve, dst []byte, p *Point, scratch []uint64) {
	checkCurve(c)
	if len(dst) != c.EncodedLen() {
		panic(fmt.Sprintf("eddsa: output is %d bytes, need %d", len(dst), c.EncodedLen()))
	}
	n := c.P().Size()
	need(scratch, CompressItch(c))
	x, y := scratch[:n], scratch[n:2*n]

	p.Affine(c, x, y, scratch[2*n:])
	mpn.PutBytesLE(dst, y)
	dst[len(dst)-1] |= byte(x[0]&1) << 7
}

// DecompressItch returns the scratch needed by Decompress. It depends only
// on the curve.
func DecompressItch(c *curves.Curve) int {
	fp := c.P()
	return 6*fp.Size() + max(fp.SqrtRatioItch(), fp.RepItch(), c.OnCurveItch(), fp.CndNegItch())
}

// Decompress decodes src into p. On failure p is set to the all-zero
// point, which is not a valid projective point, and the error is one of
// ErrInvalidLength, ErrNonCanonical or ErrNotOnCurve.
func Decompress(c *curves.Curve, p *Point, src []byte, scratch []uint64) error {
	checkCurve(c)
	if len(src) != c.EncodedLen() {
		*p = Point{}
		return ErrInvalidLength
	}
	fp := c.P()
	n := fp.Size()
	need(scratch, DecompressItch(c))
	y, yr := scratch[:n], scratch[n:2*n]
	u, v := scratch[2*n:3*n], scratch[3*n:4*n]
	x, xc := scratch[4*n:5*n], scratch[5*n:6*n]
	s := scratch[6*n:]

	var buf [MaxEncodedLen]byte
	nb := copy(buf[:], src)
	sign := uint64(buf[nb-1] >> 7)
	buf[nb-1] &= 0x7f

	// y < p, and any byte past the limbs (ed448) must be zero.
	trace("setbytes")
	canonical := fp.SetBytes(y, buf[:nb])
	var pad uint64
	for _, b := range buf[8*n : max(nb, 8*n)] {
		trace("pad")
		pad |= uint64(b)
	}
	canonical &= mpn.IsZero([]uint64{pad})

	// x^2 = (y^2 - 1) / (d y^2 - a)
	trace("torep")
	fp.ToRep(yr, y, s)
	trace("sqr")
	fp.Sqr(u, yr, s)
	trace("mul")
	fp.Mul(v, u, c.D(), s)
	trace("sub")
	fp.Sub(v, v, c.A())
	trace("sub")
	fp.Sub(u, u, fp.One())
	trace("sqrtratio")
	ok := canonical & fp.SqrtRatio(x, u, v, c.SqrtM1(), s)

	// x = 0 has no negative; a set sign bit is then invalid.
	trace("iszero")
	ok &= ^(fp.IsZero(x) & sign) & 1

	trace("fromrep")
	fp.FromRep(xc, x, s)
	trace("cndneg")
	fp.CndNeg((xc[0]&1)^sign, x, x, s)
	trace("oncurve")
	ok &= c.OnCurve(x, yr, s)

	trace("store")
	*p = Point{}
	copy(p.X[:n], x)
	copy(p.Y[:n], yr)
	copy(p.Z[:n], fp.One())
	mpn.CndZero(ok^1, p.X[:n])
	mpn.CndZero(ok^1, p.Y[:n])
	mpn.CndZero(ok^1, p.Z[:n])

	switch {
	case canonical == 0:
		return ErrNonCanonical
	case ok == 0:
		return ErrNotOnCurve
	}
	return nil
}
