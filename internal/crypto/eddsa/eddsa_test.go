package eddsa_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-eccore/internal/crypto/curves"
	"github.com/smallyu/go-eccore/internal/crypto/eddsa"
	"github.com/smallyu/go-eccore/internal/crypto/mpn"
	"github.com/smallyu/go-eccore/internal/crypto/reference"
)

var edwards = []*curves.Curve{curves.Ed25519, curves.Ed448}

func unhex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// affine returns the canonical coordinates of p as big integers.
func affine(t testing.TB, c *curves.Curve, p *eddsa.Point) (*big.Int, *big.Int) {
	t.Helper()
	n := c.P().Size()
	x, y := make([]uint64, n), make([]uint64, n)
	p.Affine(c, x, y, make([]uint64, eddsa.AffineItch(c)))
	return limbsToBig(x), limbsToBig(y)
}

func limbsToBig(ap []uint64) *big.Int {
	b := make([]byte, 8*len(ap))
	mpn.PutBytesBE(b, ap)
	return new(big.Int).SetBytes(b)
}

// assertIntEqual compares by value rather than by big.Int layout.
func assertIntEqual(t testing.TB, want, got *big.Int) {
	t.Helper()
	assert.Zerof(t, want.Cmp(got), "want %v, got %v", want, got)
}

func decode(t testing.TB, c *curves.Curve, enc []byte) (*eddsa.Point, error) {
	t.Helper()
	var p eddsa.Point
	err := eddsa.Decompress(c, &p, enc, make([]uint64, eddsa.DecompressItch(c)))
	return &p, err
}

func encode(t testing.TB, c *curves.Curve, p *eddsa.Point) []byte {
	t.Helper()
	out := make([]byte, c.EncodedLen())
	eddsa.Compress(c, out, p, make([]uint64, eddsa.CompressItch(c)))
	return out
}

func TestGeneratorEncoding(t *testing.T) {
	for _, tc := range []struct {
		c   *curves.Curve
		enc string
	}{
		{curves.Ed25519, "5866666666666666666666666666666666666666666666666666666666666666"},
		{curves.Ed448, "14fa30f25b790898adc8d74e2c13bdfdc4397ce61cffd33ad7c2a0051e9c78874098a36c7373ea4b62c7c9563720768824bcb66e71463f6900"},
	} {
		t.Run(tc.c.Name(), func(t *testing.T) {
			var g eddsa.Point
			g.SetGenerator(tc.c)
			want := unhex(t, tc.enc)
			assert.Equal(t, want, encode(t, tc.c, &g))

			p, err := decode(t, tc.c, want)
			require.NoError(t, err)
			x, y := affine(t, tc.c, p)
			gx, gy := affine(t, tc.c, &g)
			assertIntEqual(t, gx, x)
			assertIntEqual(t, gy, y)
		})
	}
}

func TestIdentityEncoding(t *testing.T) {
	for _, c := range edwards {
		t.Run(c.Name(), func(t *testing.T) {
			want := make([]byte, c.EncodedLen())
			want[0] = 1

			var id eddsa.Point
			id.SetIdentity(c)
			assert.Equal(t, want, encode(t, c, &id))

			p, err := decode(t, c, want)
			require.NoError(t, err)
			x, y := affine(t, c, p)
			assert.Zero(t, x.Sign())
			assertIntEqual(t, big.NewInt(1), y)
			assert.Equal(t, want, encode(t, c, p))
		})
	}
}

func TestAllZeroEncoding(t *testing.T) {
	// y = 0 forces x^2 = 1/a, so x = sqrt(-1) on ed25519 and x = -1 on ed448.
	sqrtM1, _ := new(big.Int).SetString("19681161376707505956807079304988542015446066515923890162744021073123829784752", 10)
	for _, tc := range []struct {
		c     *curves.Curve
		wantX *big.Int
	}{
		{curves.Ed25519, sqrtM1},
		{curves.Ed448, new(big.Int).Sub(limbsToBig(curves.Ed448.P().Limbs()), big.NewInt(1))},
	} {
		t.Run(tc.c.Name(), func(t *testing.T) {
			zero := make([]byte, tc.c.EncodedLen())
			p, err := decode(t, tc.c, zero)
			require.NoError(t, err)
			x, y := affine(t, tc.c, p)
			assertIntEqual(t, tc.wantX, x)
			assert.Zero(t, y.Sign())
			assert.Equal(t, zero, encode(t, tc.c, p))
		})
	}
}

func TestMinusOneEncoding(t *testing.T) {
	// (0, -1) has order two.
	for _, c := range edwards {
		t.Run(c.Name(), func(t *testing.T) {
			pm1 := make([]uint64, c.P().Size())
			mpn.Sub1(pm1, c.P().Limbs(), 1)
			enc := make([]byte, c.EncodedLen())
			mpn.PutBytesLE(enc, pm1)

			p, err := decode(t, c, enc)
			require.NoError(t, err)
			x, y := affine(t, c, p)
			assert.Zero(t, x.Sign())
			assertIntEqual(t, limbsToBig(pm1), y)
		})
	}
}

func TestRejectsNonCanonical(t *testing.T) {
	for _, c := range edwards {
		t.Run(c.Name(), func(t *testing.T) {
			enc := make([]byte, c.EncodedLen())
			mpn.PutBytesLE(enc, c.P().Limbs())
			p, err := decode(t, c, enc)
			assert.ErrorIs(t, err, eddsa.ErrNonCanonical)
			assert.Equal(t, eddsa.Point{}, *p)

			// p + 1, with and without the sign bit.
			pp1 := make([]uint64, c.P().Size())
			mpn.Add1(pp1, c.P().Limbs(), 1)
			mpn.PutBytesLE(enc, pp1)
			_, err = decode(t, c, enc)
			assert.ErrorIs(t, err, eddsa.ErrNonCanonical)
			enc[len(enc)-1] |= 0x80
			_, err = decode(t, c, enc)
			assert.ErrorIs(t, err, eddsa.ErrNonCanonical)
		})
	}
}

func TestRejectsPaddingBits(t *testing.T) {
	c := curves.Ed448
	for bit := 0; bit < 7; bit++ {
		enc := make([]byte, c.EncodedLen())
		enc[0] = 1
		enc[56] = 1 << bit
		_, err := decode(t, c, enc)
		assert.ErrorIs(t, err, eddsa.ErrNonCanonical, "bit %d", bit)
	}
}

func TestRejectsNonSquare(t *testing.T) {
	for _, c := range edwards {
		t.Run(c.Name(), func(t *testing.T) {
			enc := make([]byte, c.EncodedLen())
			enc[0] = 2
			p, err := decode(t, c, enc)
			assert.ErrorIs(t, err, eddsa.ErrNotOnCurve)
			assert.Equal(t, eddsa.Point{}, *p)
		})
	}
}

func TestRejectsNegativeZero(t *testing.T) {
	for _, c := range edwards {
		t.Run(c.Name(), func(t *testing.T) {
			enc := make([]byte, c.EncodedLen())
			enc[0] = 1
			enc[len(enc)-1] |= 0x80
			_, err := decode(t, c, enc)
			assert.ErrorIs(t, err, eddsa.ErrNotOnCurve)
		})
	}
}

func TestRejectsLength(t *testing.T) {
	for _, c := range edwards {
		for _, l := range []int{0, c.EncodedLen() - 1, c.EncodedLen() + 1} {
			_, err := decode(t, c, make([]byte, l))
			assert.ErrorIs(t, err, eddsa.ErrInvalidLength)
		}
	}
}

func TestSignFlipNegates(t *testing.T) {
	for _, c := range edwards {
		t.Run(c.Name(), func(t *testing.T) {
			var g eddsa.Point
			g.SetGenerator(c)
			enc := encode(t, c, &g)
			enc[len(enc)-1] ^= 0x80

			p, err := decode(t, c, enc)
			require.NoError(t, err)
			x, y := affine(t, c, p)
			gx, gy := affine(t, c, &g)
			pb := limbsToBig(c.P().Limbs())
			assertIntEqual(t, new(big.Int).Sub(pb, gx), x)
			assertIntEqual(t, gy, y)
			assert.Equal(t, enc, encode(t, c, p))
		})
	}
}

func TestRandomEncodingsRoundTrip(t *testing.T) {
	for _, c := range edwards {
		t.Run(c.Name(), func(t *testing.T) {
			scratch := make([]uint64, eddsa.DecompressItch(c))
			onCurve := make([]uint64, c.OnCurveItch())
			accepted := 0
			for i := 0; i < 500; i++ {
				enc := make([]byte, c.EncodedLen())
				_, err := rand.Read(enc)
				require.NoError(t, err)
				if c == curves.Ed448 {
					enc[56] &= 0x80
				}

				var p eddsa.Point
				if err := eddsa.Decompress(c, &p, enc, scratch); err != nil {
					assert.Equal(t, eddsa.Point{}, p)
					continue
				}
				accepted++
				n := c.P().Size()
				assert.Equal(t, uint64(1), c.OnCurve(p.X[:n], p.Y[:n], onCurve))
				assert.Equal(t, enc, encode(t, c, &p))
			}
			// Roughly half of all y values are valid.
			assert.Greater(t, accepted, 150)
		})
	}
}

func TestMatchesEdwards25519(t *testing.T) {
	c := curves.Ed25519
	oracle := reference.Ed25519{}
	for i := 0; i < 200; i++ {
		enc, _, err := oracle.RandomPoint(rand.Reader)
		require.NoError(t, err)

		p, err := decode(t, c, enc)
		require.NoError(t, err)
		wantX, wantY, err := oracle.Affine(enc)
		require.NoError(t, err)

		x, y := affine(t, c, p)
		gotX, gotY := make([]byte, 32), make([]byte, 32)
		x.FillBytes(gotX)
		y.FillBytes(gotY)
		reverse(gotX)
		reverse(gotY)
		assert.Equal(t, wantX, gotX)
		assert.Equal(t, wantY, gotY)
		assert.Equal(t, enc, encode(t, c, p))

		neg, err := oracle.Negate(enc)
		require.NoError(t, err)
		flipped := append([]byte(nil), enc...)
		flipped[31] ^= 0x80
		assert.Equal(t, neg, flipped)
	}
}

func TestAgreesWithEdwards25519OnArbitraryBytes(t *testing.T) {
	c := curves.Ed25519
	oracle := reference.Ed25519{}
	for i := 0; i < 500; i++ {
		enc := make([]byte, 32)
		_, err := rand.Read(enc)
		require.NoError(t, err)
		enc[31] &= 0x7f

		_, err = decode(t, c, enc)
		// Random y below 2^255 is canonical except with negligible
		// probability, where both libraries agree on validity.
		assert.Equal(t, oracle.Valid(enc), err == nil, "%x", enc)
	}
}

func TestMontgomeryU(t *testing.T) {
	c := curves.Ed25519
	scratch := make([]uint64, eddsa.MontgomeryUItch(c))
	u := make([]byte, 32)

	var g eddsa.Point
	g.SetGenerator(c)
	eddsa.MontgomeryU(c, u, &g, scratch)
	nine := make([]byte, 32)
	nine[0] = 9
	assert.Equal(t, nine, u)

	var id eddsa.Point
	id.SetIdentity(c)
	eddsa.MontgomeryU(c, u, &id, scratch)
	assert.Equal(t, make([]byte, 32), u)

	oracle := reference.Ed25519{}
	for i := 0; i < 50; i++ {
		k := make([]byte, 32)
		_, err := rand.Read(k)
		require.NoError(t, err)

		enc, wantU, err := oracle.MontgomeryBase(k)
		require.NoError(t, err)
		x25519, err := reference.X25519Base(k)
		require.NoError(t, err)
		require.Equal(t, x25519, wantU)

		p, err := decode(t, c, enc)
		require.NoError(t, err)
		eddsa.MontgomeryU(c, u, p, scratch)
		assert.Equal(t, wantU, u)
	}

	assert.Panics(t, func() { eddsa.MontgomeryU(curves.Ed448, make([]byte, 57), &g, make([]uint64, 200)) })
}

func TestSetAffine(t *testing.T) {
	for _, c := range edwards {
		n := c.P().Size()
		var g eddsa.Point
		g.SetGenerator(c)
		x, y := make([]uint64, n), make([]uint64, n)
		g.Affine(c, x, y, make([]uint64, eddsa.AffineItch(c)))

		var p eddsa.Point
		p.SetAffine(c, x, y, make([]uint64, eddsa.SetAffineItch(c)))
		assert.Equal(t, g, p, c.Name())
	}
}

func TestProjectiveInput(t *testing.T) {
	// Scaling all coordinates by the same factor must not change the encoding.
	for _, c := range edwards {
		fp := c.P()
		n := fp.Size()
		scratch := make([]uint64, fp.MulItch())
		var g, s eddsa.Point
		g.SetGenerator(c)
		k := make([]uint64, n)
		k[0] = 12345
		fp.ToRep(k, k, make([]uint64, fp.RepItch()))
		fp.Mul(s.X[:n], g.X[:n], k, scratch)
		fp.Mul(s.Y[:n], g.Y[:n], k, scratch)
		fp.Mul(s.Z[:n], g.Z[:n], k, scratch)
		assert.Equal(t, encode(t, c, &g), encode(t, c, &s), c.Name())
	}
}

func TestItch(t *testing.T) {
	for _, c := range edwards {
		assert.LessOrEqual(t, eddsa.CompressItch(c), eddsa.MaxCompressItch)
		assert.LessOrEqual(t, eddsa.DecompressItch(c), eddsa.MaxDecompressItch)
		assert.LessOrEqual(t, c.EncodedLen(), eddsa.MaxEncodedLen)
	}
	assert.Equal(t, 8*4, eddsa.CompressItch(curves.Ed25519))
}

func TestNoAllocations(t *testing.T) {
	c := curves.Ed25519
	var cs [eddsa.MaxCompressItch]uint64
	var ds [eddsa.MaxDecompressItch]uint64
	var buf [32]byte
	var p eddsa.Point
	p.SetGenerator(c)

	allocs := testing.AllocsPerRun(10, func() {
		eddsa.Compress(c, buf[:], &p, cs[:])
		_ = eddsa.Decompress(c, &p, buf[:], ds[:])
	})
	assert.Zero(t, allocs)
}

// Rejected encodings take exactly the steps an accepted one does, and none
// of them allocate.
func TestDecompressSameSteps(t *testing.T) {
	for _, c := range edwards {
		var g eddsa.Point
		g.SetGenerator(c)
		valid := encode(t, c, &g)

		nonCanonical := make([]byte, c.EncodedLen())
		mpn.PutBytesLE(nonCanonical, c.P().Limbs())

		nonSquare := make([]byte, c.EncodedLen())
		nonSquare[0] = 2

		zeroX := make([]byte, c.EncodedLen())
		zeroX[0] = 1
		zeroX[len(zeroX)-1] |= 0x80

		inputs := []struct {
			name string
			enc  []byte
			err  error
		}{
			{"valid", valid, nil},
			{"non-canonical", nonCanonical, eddsa.ErrNonCanonical},
			{"non-square", nonSquare, eddsa.ErrNotOnCurve},
			{"negative zero", zeroX, eddsa.ErrNotOnCurve},
		}

		var want []string
		for _, in := range inputs {
			steps, stop := eddsa.TraceDecompress()
			_, err := decode(t, c, in.enc)
			stop()
			require.Equal(t, in.err, err, "%s %s", c.Name(), in.name)
			require.NotEmpty(t, steps(), "%s %s", c.Name(), in.name)
			if want == nil {
				want = steps()
				continue
			}
			assert.Equal(t, want, steps(), "%s %s", c.Name(), in.name)
		}

		var p eddsa.Point
		scratch := make([]uint64, eddsa.MaxDecompressItch)
		for _, in := range inputs {
			allocs := testing.AllocsPerRun(10, func() {
				_ = eddsa.Decompress(c, &p, in.enc, scratch)
			})
			assert.Zero(t, allocs, "%s %s", c.Name(), in.name)
		}
	}
}

func TestMisusePanics(t *testing.T) {
	var p eddsa.Point
	p.SetGenerator(curves.Ed25519)
	assert.Panics(t, func() {
		eddsa.Compress(curves.Secp256r1, make([]byte, 32), &p, make([]uint64, 100))
	})
	assert.Panics(t, func() {
		eddsa.Compress(curves.Ed25519, make([]byte, 31), &p, make([]uint64, 100))
	})
	assert.Panics(t, func() {
		eddsa.Compress(curves.Ed25519, make([]byte, 32), &p, make([]uint64, eddsa.CompressItch(curves.Ed25519)-1))
	})
	assert.Panics(t, func() {
		_ = eddsa.Decompress(curves.Ed25519, &p, make([]byte, 32), make([]uint64, 3))
	})
}

func FuzzDecompress(f *testing.F) {
	f.Add(make([]byte, 32))
	f.Add(bytes.Repeat([]byte{0xff}, 32))
	f.Add(append([]byte{1}, make([]byte, 31)...))
	f.Add(make([]byte, 57))
	f.Add(append([]byte{1}, make([]byte, 56)...))

	f.Fuzz(func(t *testing.T, enc []byte) {
		for _, c := range edwards {
			if len(enc) != c.EncodedLen() {
				continue
			}
			p, err := decode(t, c, enc)
			if err != nil {
				if *p != (eddsa.Point{}) {
					t.Fatalf("rejected %x but left a point behind", enc)
				}
				continue
			}
			if got := encode(t, c, p); !bytes.Equal(got, enc) {
				t.Fatalf("%s: %x re-encodes as %x", c.Name(), enc, got)
			}
		}
	})
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
