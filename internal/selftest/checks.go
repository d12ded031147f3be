package selftest

import (
	"bytes"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/smallyu/go-eccore/internal/crypto/curves"
	"github.com/smallyu/go-eccore/internal/crypto/eddsa"
	"github.com/smallyu/go-eccore/internal/crypto/field"
	"github.com/smallyu/go-eccore/internal/crypto/mpn"
	"github.com/smallyu/go-eccore/internal/crypto/reference"
)

func (r *Runner) checks(c *curves.Curve) []check {
	light := max(r.cfg.Samples/10, 1)
	out := []check{
		reduceCheck(c.Name(), "p", c.P(), r.cfg.Samples),
		reduceCheck(c.Name(), "q", c.Q(), r.cfg.Samples),
		mulCheck(c.Name(), "p", c.P(), light),
		mulCheck(c.Name(), "q", c.Q(), light),
		generatorCheck(c),
	}
	if c.Family() == curves.Edwards {
		out = append(out, codecCheck(c, light))
		if c == curves.Ed25519 {
			out = append(out, edwards25519Check(light))
		}
	}
	return out
}

// randomLimbs alternates uniform limbs with long runs of all-zero and
// all-one limbs, which is where carry handling goes wrong.
func randomLimbs(rng *rand.Rand, ap []uint64) {
	if rng.Intn(2) == 0 {
		for i := range ap {
			ap[i] = rng.Uint64()
		}
		return
	}
	for i := 0; i < len(ap); {
		v := uint64(0)
		if rng.Intn(2) == 1 {
			v = ^uint64(0)
		}
		for run := 1 + rng.Intn(len(ap)); run > 0 && i < len(ap); run-- {
			ap[i] = v
			i++
		}
	}
	ap[rng.Intn(len(ap))] ^= 1 << uint(rng.Intn(64))
}

// reduceCheck compares Reduce against the oracle, checks that the fast
// result needs at most one subtraction, and that fast and generic agree.
func reduceCheck(curve, name string, m *field.Modulus, samples int) check {
	n := m.Size()
	oracle := reference.NewOracle(m.Limbs())
	a := make([]uint64, 2*n)
	fast := make([]uint64, 2*n)
	generic := make([]uint64, 2*n)
	want := make([]uint64, n)
	scratch := make([]uint64, m.ReduceItch())

	return check{
		curve:   curve,
		modulus: name,
		name:    "reduce",
		samples: samples,
		sample: func(rng *rand.Rand) error {
			randomLimbs(rng, a)
			if m.FastPath() {
				oracle.Redc(want, a)
			} else {
				oracle.Mod(want, a)
			}

			copy(fast, a)
			m.Reduce(fast, scratch)
			m.Normalize(fast)
			if mpn.SubBorrow(fast[:n], m.Limbs()) != 1 {
				return errors.Errorf("reduction of %x not below 2m", a)
			}
			if mpn.Equal(fast[:n], want) != 1 {
				return errors.Errorf("reduction of %x: got %x, want %x", a, fast[:n], want)
			}
			if !m.FastPath() {
				return nil
			}
			copy(generic, a)
			m.ReduceGeneric(generic, scratch)
			if mpn.Equal(generic[:n], fast[:n]) != 1 {
				return errors.Errorf("fast and generic reduction disagree on %x", a)
			}
			return nil
		},
	}
}

// mulCheck multiplies in representation and compares the decoded product
// with the oracle.
func mulCheck(curve, name string, m *field.Modulus, samples int) check {
	n := m.Size()
	oracle := reference.NewOracle(m.Limbs())
	a, b := make([]uint64, n), make([]uint64, n)
	ar, br := make([]uint64, n), make([]uint64, n)
	got, want := make([]uint64, n), make([]uint64, n)
	scratch := make([]uint64, max(m.MulItch(), m.RepItch()))

	return check{
		curve:   curve,
		modulus: name,
		name:    "mul",
		samples: samples,
		sample: func(rng *rand.Rand) error {
			randomLimbs(rng, a)
			randomLimbs(rng, b)
			oracle.MulMod(want, a, b)

			m.ToRep(ar, a, scratch)
			m.ToRep(br, b, scratch)
			m.Mul(got, ar, br, scratch)
			m.FromRep(got, got, scratch)
			if mpn.Equal(got, want) != 1 {
				return errors.Errorf("%x * %x: got %x, want %x", a, b, got, want)
			}
			return nil
		},
	}
}

func generatorCheck(c *curves.Curve) check {
	p := c.P()
	n := p.Size()
	gx, gy := c.Generator()
	y1 := make([]uint64, n)
	scratch := make([]uint64, c.OnCurveItch())

	return check{
		curve:   c.Name(),
		modulus: "p",
		name:    "generator",
		samples: 1,
		sample: func(*rand.Rand) error {
			if c.OnCurve(gx, gy, scratch) != 1 {
				return errors.New("generator is not on the curve")
			}
			p.Add(y1, gy, p.One())
			if c.OnCurve(gx, y1, scratch) != 0 {
				return errors.New("(gx, gy+1) accepted as a curve point")
			}
			return nil
		},
	}
}

// codecCheck decodes random encodings and requires every accepted one to
// re-encode to the same bytes, and the generator to survive a round trip.
func codecCheck(c *curves.Curve, samples int) check {
	enc := make([]byte, c.EncodedLen())
	out := make([]byte, c.EncodedLen())
	dec := make([]uint64, eddsa.DecompressItch(c))
	cmp := make([]uint64, eddsa.CompressItch(c))
	var pt eddsa.Point

	return check{
		curve:   c.Name(),
		modulus: "p",
		name:    "codec",
		samples: samples,
		sample: func(rng *rand.Rand) error {
			pt.SetGenerator(c)
			eddsa.Compress(c, enc, &pt, cmp)
			if err := eddsa.Decompress(c, &pt, enc, dec); err != nil {
				return errors.Wrap(err, "decoding the generator")
			}
			eddsa.Compress(c, out, &pt, cmp)
			if !bytes.Equal(out, enc) {
				return errors.Errorf("generator round trip: %x became %x", enc, out)
			}

			rng.Read(enc)
			if eddsa.Decompress(c, &pt, enc, dec) != nil {
				return nil
			}
			eddsa.Compress(c, out, &pt, cmp)
			if !bytes.Equal(out, enc) {
				return errors.Errorf("accepted %x but re-encoded it as %x", enc, out)
			}
			return nil
		},
	}
}

// edwards25519Check decodes points produced by filippo.io/edwards25519 and
// compares affine coordinates.
func edwards25519Check(samples int) check {
	c := curves.Ed25519
	n := c.P().Size()
	var ref reference.Ed25519
	var pt eddsa.Point
	dec := make([]uint64, eddsa.DecompressItch(c))
	aff := make([]uint64, eddsa.AffineItch(c))
	x, y := make([]uint64, n), make([]uint64, n)
	xb, yb := make([]byte, 32), make([]byte, 32)

	return check{
		curve:   c.Name(),
		modulus: "p",
		name:    "edwards25519",
		samples: samples,
		sample: func(rng *rand.Rand) error {
			enc, _, err := ref.RandomPoint(rng)
			if err != nil {
				return err
			}
			wantX, wantY, err := ref.Affine(enc)
			if err != nil {
				return err
			}
			if err := eddsa.Decompress(c, &pt, enc, dec); err != nil {
				return errors.Wrapf(err, "decoding %x", enc)
			}
			pt.Affine(c, x, y, aff)
			mpn.PutBytesLE(xb, x)
			mpn.PutBytesLE(yb, y)
			if !bytes.Equal(xb, wantX) || !bytes.Equal(yb, wantY) {
				return errors.Errorf("decoding %x: got (%x, %x), want (%x, %x)", enc, xb, yb, wantX, wantY)
			}
			return nil
		},
	}
}
