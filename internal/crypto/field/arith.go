package field

import "github.com/smallyu/go-eccore/internal/crypto/mpn"

// Add sets rp = ap + bp mod m. Inputs must be canonical.
func (m *Modulus) Add(rp, ap, bp []uint64) {
	rp = rp[:m.size]
	carry := mpn.AddN(rp, ap, bp)
	mpn.CndSubN(carry|(mpn.SubBorrow(rp, m.m)^1), rp, m.m)
}

// Sub sets rp = ap - bp mod m. Inputs must be canonical.
func (m *Modulus) Sub(rp, ap, bp []uint64) {
	rp = rp[:m.size]
	borrow := mpn.SubN(rp, ap, bp)
	mpn.CndAddN(borrow, rp, m.m)
}

// Neg sets rp = -ap mod m.
func (m *Modulus) Neg(rp, ap []uint64) {
	rp = rp[:m.size]
	mpn.SubN(rp, m.m, ap)
	m.Normalize(rp)
}

// CndNegItch returns the scratch needed by CndNeg.
func (m *Modulus) CndNegItch() int { return m.size }

// CndNeg sets rp = -ap when cnd is nonzero and rp = ap otherwise.
func (m *Modulus) CndNeg(cnd uint64, rp, ap, scratch []uint64) {
	n := m.size
	m.need(scratch, m.CndNegItch())
	t := scratch[:n]
	m.Neg(t, ap)
	copy(rp[:n], ap[:n])
	mpn.CndCopy(cnd, rp[:n], t)
}

// Mul sets rp = ap * bp in representation. rp may alias either input.
func (m *Modulus) Mul(rp, ap, bp, scratch []uint64) {
	n := m.size
	m.need(scratch, m.MulItch())
	t := scratch[:2*n]
	mpn.Mul(t, ap[:n], bp[:n])
	m.Reduce(t, scratch[2*n:])
	m.Normalize(t)
	copy(rp[:n], t[:n])
}

// Sqr sets rp = ap * ap in representation.
func (m *Modulus) Sqr(rp, ap, scratch []uint64) {
	n := m.size
	m.need(scratch, m.MulItch())
	t := scratch[:2*n]
	mpn.Sqr(t, ap[:n])
	m.Reduce(t, scratch[2*n:])
	m.Normalize(t)
	copy(rp[:n], t[:n])
}

// Pow sets rp = ap^e in representation. The exponent is public: the
// sequence of squarings and multiplications follows its bits.
func (m *Modulus) Pow(rp, ap, e, scratch []uint64) {
	n := m.size
	m.need(scratch, m.PowItch())
	base, s := scratch[:n], scratch[n:]
	copy(base, ap[:n])

	top := bitLen(e)
	if top == 0 {
		copy(rp[:n], m.one)
		return
	}
	copy(rp[:n], base)
	for i := top - 2; i >= 0; i-- {
		m.Sqr(rp, rp, s)
		if e[i/64]>>(i%64)&1 == 1 {
			m.Mul(rp, rp, base, s)
		}
	}
}

func bitLen(e []uint64) int {
	for i := len(e) - 1; i >= 0; i-- {
		for b := 63; b >= 0; b-- {
			if e[i]>>b&1 == 1 {
				return 64*i + b + 1
			}
		}
	}
	return 0
}

// Inv sets rp = ap^-1 in representation, computed as ap^(m-2). The inverse
// of zero is zero.
func (m *Modulus) Inv(rp, ap, scratch []uint64) {
	m.Pow(rp, ap, m.invExp, scratch)
}

// Equal returns 1 if ap and bp are the same canonical element, 0 otherwise.
func (m *Modulus) Equal(ap, bp []uint64) uint64 {
	return mpn.Equal(ap[:m.size], bp[:m.size])
}

// IsZero returns 1 if ap is zero, 0 otherwise.
func (m *Modulus) IsZero(ap []uint64) uint64 {
	return mpn.IsZero(ap[:m.size])
}
