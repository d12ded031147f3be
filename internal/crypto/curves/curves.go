package curves

import (
	"encoding/hex"
	"fmt"

	"github.com/smallyu/go-eccore/internal/crypto/field"
	"github.com/smallyu/go-eccore/internal/crypto/mpn"
)

// Family identifies the equation a curve's points satisfy.
type Family int

const (
	// Weierstrass curves satisfy y^2 = x^3 + a*x + b.
	Weierstrass Family = iota
	// Edwards curves satisfy a*x^2 + y^2 = 1 + d*x^2*y^2.
	Edwards
)

func (f Family) String() string {
	switch f {
	case Weierstrass:
		return "weierstrass"
	case Edwards:
		return "edwards"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Curve describes one curve of the table: its field prime, its group order
// and the constants needed to validate and encode points. Coefficients and
// the generator are held in the representation of P. A Curve is read-only
// and shared by all callers.
type Curve struct {
	name       string
	family     Family
	p, q       *field.Modulus
	a, b       []uint64
	sqrtM1     []uint64
	gx, gy     []uint64
	encodedLen int
}

// Name returns the canonical curve name.
func (c *Curve) Name() string { return c.name }

// Family returns the curve's equation family.
func (c *Curve) Family() Family { return c.family }

// P returns the field prime.
func (c *Curve) P() *field.Modulus { return c.p }

// Q returns the order of the generator.
func (c *Curve) Q() *field.Modulus { return c.q }

// A returns the coefficient a in representation.
func (c *Curve) A() []uint64 { return c.a }

// B returns b for Weierstrass curves and d for Edwards curves, in
// representation.
func (c *Curve) B() []uint64 { return c.b }

// D is B under its Edwards name.
func (c *Curve) D() []uint64 { return c.b }

// SqrtM1 returns a square root of -1 in representation, or nil when the
// field prime is not 5 mod 8.
func (c *Curve) SqrtM1() []uint64 { return c.sqrtM1 }

// Generator returns the affine generator in representation.
func (c *Curve) Generator() (x, y []uint64) { return c.gx, c.gy }

// EncodedLen returns the length of a compressed point, or 0 for curves
// without a point encoding.
func (c *Curve) EncodedLen() int { return c.encodedLen }

// OnCurveItch returns the scratch needed by OnCurve.
func (c *Curve) OnCurveItch() int { return 3*c.p.Size() + c.p.MulItch() }

// OnCurve returns 1 if the affine point (x, y), given in representation,
// satisfies the curve equation and 0 otherwise.
func (c *Curve) OnCurve(x, y, scratch []uint64) uint64 {
	p := c.p
	n := p.Size()
	if len(scratch) < c.OnCurveItch() {
		panic("curves: scratch too short")
	}
	t0, t1, t2 := scratch[:n], scratch[n:2*n], scratch[2*n:3*n]
	s := scratch[3*n:]

	switch c.family {
	case Edwards:
		p.Sqr(t0, x, s)
		p.Sqr(t1, y, s)
		// t2 = 1 + d x^2 y^2
		p.Mul(t2, t0, t1, s)
		p.Mul(t2, t2, c.b, s)
		p.Add(t2, t2, p.One())
		// t0 = a x^2 + y^2
		p.Mul(t0, t0, c.a, s)
		p.Add(t0, t0, t1)
		return p.Equal(t0, t2)
	default:
		// t0 = (x^2 + a) x + b
		p.Sqr(t0, x, s)
		p.Add(t0, t0, c.a)
		p.Mul(t0, t0, x, s)
		p.Add(t0, t0, c.b)
		p.Sqr(t1, y, s)
		return p.Equal(t0, t1)
	}
}

// ReduceScalarItch returns the scratch needed by ReduceScalar.
func (c *Curve) ReduceScalarItch() int { return c.q.ModItch() }

// ReduceScalar sets rp[:Q().Size()] to ap mod q for an input of any length,
// such as a hash digest read as a little-endian integer.
func (c *Curve) ReduceScalar(rp, ap, scratch []uint64) {
	c.q.Mod(rp, ap, scratch)
}

type params struct {
	name       string
	family     Family
	p, q       *field.Modulus
	a          int64
	b          string // b, or d for Edwards curves
	sqrtM1     string
	gx, gy     string
	encodedLen int
}

func newCurve(pr params) *Curve {
	c := &Curve{
		name:       pr.name,
		family:     pr.family,
		p:          pr.p,
		q:          pr.q,
		encodedLen: pr.encodedLen,
	}
	c.a = c.small(pr.a)
	c.b = c.element(pr.b)
	c.gx = c.element(pr.gx)
	c.gy = c.element(pr.gy)
	if pr.sqrtM1 != "" {
		c.sqrtM1 = c.element(pr.sqrtM1)
	}
	return c
}

// element parses a canonical big-endian hex constant into representation.
func (c *Curve) element(s string) []uint64 {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("curves: %s: bad constant %q: %v", c.name, s, err))
	}
	n := c.p.Size()
	v := make([]uint64, n)
	mpn.SetBytesBE(v, b)
	if mpn.Cmp(v, c.p.Limbs()) >= 0 {
		panic(fmt.Sprintf("curves: %s: constant %q is not reduced", c.name, s))
	}
	c.p.ToRep(v, v, make([]uint64, c.p.RepItch()))
	return v
}

func (c *Curve) small(a int64) []uint64 {
	n := c.p.Size()
	v := make([]uint64, n)
	abs := a
	if a < 0 {
		abs = -a
	}
	v[0] = uint64(abs)
	c.p.ToRep(v, v, make([]uint64, c.p.RepItch()))
	if a < 0 {
		c.p.Neg(v, v)
	}
	return v
}
