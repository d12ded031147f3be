package field

import "github.com/smallyu/go-eccore/internal/crypto/mpn"

// ReduceFast applies the "p+1" reduction to the 2*Size() limbs of rp in
// place. On return rp[:Size()] holds a value below 2m congruent to
// rp * 2^(-64*Size()). The upper half of rp is clobbered.
//
// ReduceFast panics if the modulus has no fast reduction.
func (m *Modulus) ReduceFast(rp []uint64) {
	if m.redcSize == 0 {
		panic("field: modulus has no fast reduction")
	}
	n, k := m.size, m.redcSize
	rp = rp[:2*n]

	// m+1 = c*B^k, so m = -1 mod B^k and cancelling limb i costs one
	// multiply-accumulate of c at offset i+k. The carry lands in limb i.
	for i := 0; i < n; i++ {
		rp[i] = mpn.AddMul1(rp[i+k:i+n], m.redcConstant, rp[i])
	}
	hi := mpn.AddN(rp[:n], rp[:n], rp[n:])

	if m.shift > 0 {
		top := rp[n-1]
		hi = hi<<m.shift | top>>(64-m.shift)
		rp[n-1] = top&(1<<(64-m.shift)-1) + mpn.AddMul1(rp[:n-1], m.shiftConstant, hi)
		return
	}
	mpn.CndSubN(hi, rp[:n], m.m)
}

// ReduceGeneric computes the same residue as Reduce without using the fast
// reduction constants, and leaves it canonical in rp[:Size()].
//
// For a fast modulus it reproduces the 2^(-64*Size()) scaling by halving
// bit by bit; for any other modulus it is Mod over all 2*Size() limbs.
func (m *Modulus) ReduceGeneric(rp, scratch []uint64) {
	n := m.size
	m.need(scratch, m.ReduceItch())
	rp = rp[:2*n]

	if m.redcSize > 0 {
		for i := 0; i < 64*n; i++ {
			c := mpn.CndAddN(rp[0]&1, rp[:n], m.m)
			c = mpn.Add1(rp[n:], rp[n:], c)
			mpn.Rshift1(rp, c)
		}
		// rp < R + m now, which fits in n+1 limbs.
		m.Mod(rp[:n], rp[:n+1], scratch)
		return
	}
	m.Mod(rp[:n], rp, scratch)
}

// Reduce reduces the 2*Size() limbs of rp in place, using the fast
// reduction when the modulus has one. rp[:Size()] is left below 2m and
// represents the product of two elements in representation.
func (m *Modulus) Reduce(rp, scratch []uint64) {
	if m.redcSize > 0 {
		m.ReduceFast(rp)
		return
	}
	m.ReduceGeneric(rp, scratch)
}

// Mod sets rp[:Size()] = ap mod m for an input of any length. It shifts the
// input in one bit at a time with a conditional subtraction per bit, so its
// running time depends only on len(ap). rp may alias ap.
func (m *Modulus) Mod(rp, ap, scratch []uint64) {
	n := m.size
	m.need(scratch, m.ModItch())
	acc, t := scratch[:n], scratch[n:2*n]

	mpn.Zero(acc)
	for i := 64*len(ap) - 1; i >= 0; i-- {
		hi := mpn.Lshift1(acc, ap[i/64]>>(i%64)&1)
		borrow := mpn.SubN(t, acc, m.m)
		mpn.CndCopy(hi|(borrow^1), acc, t)
	}
	copy(rp[:n], acc)
}

// Normalize brings rp[:Size()], known to be below 2m, into [0, m) with a
// conditional subtraction.
func (m *Modulus) Normalize(rp []uint64) {
	rp = rp[:m.size]
	mpn.CndSubN(mpn.SubBorrow(rp, m.m)^1, rp, m.m)
}
