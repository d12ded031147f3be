package field

import "github.com/smallyu/go-eccore/internal/crypto/mpn"

// SqrtRatio sets rp to a square root of u/v and returns 1 if one exists,
// meaning v*rp^2 = u. Otherwise it returns 0 and rp holds an unspecified
// value. All arguments are in representation; sqrtM1 is a square root of -1
// and is only used when m = 5 mod 8.
//
// The same sequence of operations runs whether or not u/v is a square.
// SqrtRatio panics for moduli that are 1 mod 8.
func (m *Modulus) SqrtRatio(rp, u, v, sqrtM1, scratch []uint64) uint64 {
	n := m.size
	m.need(scratch, m.SqrtRatioItch())
	t0, t1, x := scratch[:n], scratch[n:2*n], scratch[2*n:3*n]
	s := scratch[3*n:]

	var ok uint64
	switch m.sqrt {
	case sqrt5Mod8:
		// x = u v^3 (u v^7)^((p-5)/8)
		m.Sqr(t0, v, s)
		m.Mul(t0, t0, v, s)
		m.Sqr(t1, t0, s)
		m.Mul(t1, t1, v, s)
		m.Mul(t1, t1, u, s)
		m.Pow(x, t1, m.sqrtExp, s)
		m.Mul(x, x, t0, s)
		m.Mul(x, x, u, s)

		m.Sqr(t0, x, s)
		m.Mul(t0, t0, v, s)
		direct := m.Equal(t0, u)
		m.Neg(t1, u)
		flipped := m.Equal(t0, t1)

		// v x^2 = -u: multiply x by sqrt(-1).
		m.Mul(t1, x, sqrtM1, s)
		mpn.CndCopy(flipped, x, t1)
		ok = direct | flipped

	case sqrt3Mod4:
		// x = u^3 v (u^5 v^3)^((p-3)/4)
		m.Sqr(t0, u, s)
		m.Mul(t0, t0, u, s)
		m.Mul(t1, t0, v, s)
		m.Sqr(x, u, s)
		m.Mul(x, x, t0, s)
		m.Sqr(t0, v, s)
		m.Mul(t0, t0, v, s)
		m.Mul(x, x, t0, s)
		m.Pow(t0, x, m.sqrtExp, s)
		m.Mul(x, t1, t0, s)

		m.Sqr(t0, x, s)
		m.Mul(t0, t0, v, s)
		ok = m.Equal(t0, u)

	default:
		panic("field: square root not supported for this modulus")
	}
	copy(rp[:n], x)
	return ok
}
