package mpn

import "math/bits"

// mask returns all ones when cnd is nonzero and zero otherwise.
func mask(cnd uint64) uint64 {
	return -((cnd | -cnd) >> 63)
}

// Select returns a when cnd is nonzero and b otherwise.
func Select(cnd, a, b uint64) uint64 {
	m := mask(cnd)
	return b ^ (m & (a ^ b))
}

// CndAddN adds ap to rp when cnd is nonzero and returns the carry, which is
// zero when cnd is zero. The memory access pattern does not depend on cnd.
func CndAddN(cnd uint64, rp, ap []uint64) uint64 {
	m := mask(cnd)
	n := len(rp)
	ap = ap[:n]
	var c uint64
	for i := 0; i < n; i++ {
		rp[i], c = bits.Add64(rp[i], ap[i]&m, c)
	}
	return c
}

// CndSubN subtracts ap from rp when cnd is nonzero and returns the borrow,
// which is zero when cnd is zero.
func CndSubN(cnd uint64, rp, ap []uint64) uint64 {
	m := mask(cnd)
	n := len(rp)
	ap = ap[:n]
	var b uint64
	for i := 0; i < n; i++ {
		rp[i], b = bits.Sub64(rp[i], ap[i]&m, b)
	}
	return b
}

// CndCopy sets rp = ap when cnd is nonzero.
func CndCopy(cnd uint64, rp, ap []uint64) {
	m := mask(cnd)
	n := len(rp)
	ap = ap[:n]
	for i := 0; i < n; i++ {
		rp[i] ^= m & (rp[i] ^ ap[i])
	}
}

// CndSwap exchanges ap and bp when cnd is nonzero.
func CndSwap(cnd uint64, ap, bp []uint64) {
	m := mask(cnd)
	n := len(ap)
	bp = bp[:n]
	for i := 0; i < n; i++ {
		t := m & (ap[i] ^ bp[i])
		ap[i] ^= t
		bp[i] ^= t
	}
}

// CndZero clears rp when cnd is nonzero.
func CndZero(cnd uint64, rp []uint64) {
	m := ^mask(cnd)
	for i := range rp {
		rp[i] &= m
	}
}

// SubBorrow returns 1 if ap < bp and 0 otherwise, without storing the
// difference. Both slices must have the same length.
func SubBorrow(ap, bp []uint64) uint64 {
	n := len(ap)
	bp = bp[:n]
	var b uint64
	for i := 0; i < n; i++ {
		_, b = bits.Sub64(ap[i], bp[i], b)
	}
	return b
}

// IsZero returns 1 if every limb of ap is zero and 0 otherwise.
func IsZero(ap []uint64) uint64 {
	var acc uint64
	for _, v := range ap {
		acc |= v
	}
	return 1 ^ ((acc | -acc) >> 63)
}

// Equal returns 1 if ap and bp are equal and 0 otherwise.
func Equal(ap, bp []uint64) uint64 {
	n := len(ap)
	bp = bp[:n]
	var acc uint64
	for i := 0; i < n; i++ {
		acc |= ap[i] ^ bp[i]
	}
	return 1 ^ ((acc | -acc) >> 63)
}
