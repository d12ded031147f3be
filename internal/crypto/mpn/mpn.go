// Package mpn implements fixed-length arithmetic on little-endian sequences
// of 64-bit limbs.
//
// Every function works on caller-owned slices of a caller-chosen length and
// never allocates. Loop bounds depend only on slice lengths, never on limb
// values, with the exception of Cmp which is meant for public data.
package mpn

import "math/bits"

// LimbBits is the width of one limb.
const LimbBits = 64

// Zero clears rp.
func Zero(rp []uint64) {
	for i := range rp {
		rp[i] = 0
	}
}

// Copy sets rp = ap[:len(rp)].
func Copy(rp, ap []uint64) {
	copy(rp, ap[:len(rp)])
}

// AddN sets rp = ap + bp over len(rp) limbs and returns the carry.
// rp may alias ap or bp.
func AddN(rp, ap, bp []uint64) uint64 {
	n := len(rp)
	ap, bp = ap[:n], bp[:n]
	var c uint64
	for i := 0; i < n; i++ {
		rp[i], c = bits.Add64(ap[i], bp[i], c)
	}
	return c
}

// SubN sets rp = ap - bp over len(rp) limbs and returns the borrow.
// rp may alias ap or bp.
func SubN(rp, ap, bp []uint64) uint64 {
	n := len(rp)
	ap, bp = ap[:n], bp[:n]
	var b uint64
	for i := 0; i < n; i++ {
		rp[i], b = bits.Sub64(ap[i], bp[i], b)
	}
	return b
}

// Add1 sets rp = ap + b over len(rp) limbs and returns the carry. The carry
// is propagated through every limb.
func Add1(rp, ap []uint64, b uint64) uint64 {
	n := len(rp)
	ap = ap[:n]
	c := b
	for i := 0; i < n; i++ {
		rp[i], c = bits.Add64(ap[i], 0, c)
	}
	return c
}

// Sub1 sets rp = ap - b over len(rp) limbs and returns the borrow.
func Sub1(rp, ap []uint64, b uint64) uint64 {
	n := len(rp)
	ap = ap[:n]
	var borrow uint64
	for i := 0; i < n; i++ {
		var sub uint64
		if i == 0 {
			sub = b
		}
		rp[i], borrow = bits.Sub64(ap[i], sub, borrow)
	}
	return borrow
}

// AddMul1 sets rp[:len(up)] += up * v and returns the carry limb.
func AddMul1(rp, up []uint64, v uint64) uint64 {
	n := len(up)
	rp = rp[:n]
	var c uint64
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul64(up[i], v)
		var cc uint64
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		rp[i], cc = bits.Add64(rp[i], lo, 0)
		c = hi + cc
	}
	return c
}

// Mul1 sets rp[:len(up)] = up * v and returns the carry limb.
func Mul1(rp, up []uint64, v uint64) uint64 {
	n := len(up)
	rp = rp[:n]
	var c uint64
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul64(up[i], v)
		var cc uint64
		rp[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// Mul sets rp = ap * bp. rp must hold len(ap)+len(bp) limbs and must not
// overlap either operand.
func Mul(rp, ap, bp []uint64) {
	an, bn := len(ap), len(bp)
	rp = rp[:an+bn]
	rp[an] = Mul1(rp[:an], ap, bp[0])
	for i := 1; i < bn; i++ {
		rp[an+i] = AddMul1(rp[i:i+an], ap, bp[i])
	}
}

// Sqr sets rp = ap * ap with the same constraints as Mul.
func Sqr(rp, ap []uint64) {
	Mul(rp, ap, ap)
}

// Cmp compares ap and bp, which must have equal length, and returns -1, 0
// or +1. It returns early and must only be used on public values.
func Cmp(ap, bp []uint64) int {
	for i := len(ap) - 1; i >= 0; i-- {
		switch {
		case ap[i] < bp[i]:
			return -1
		case ap[i] > bp[i]:
			return 1
		}
	}
	return 0
}

// Lshift1 shifts rp left by one bit, shifting lo (0 or 1) into the bottom,
// and returns the bit shifted out of the top.
func Lshift1(rp []uint64, lo uint64) uint64 {
	n := len(rp)
	out := rp[n-1] >> 63
	for i := n - 1; i > 0; i-- {
		rp[i] = rp[i]<<1 | rp[i-1]>>63
	}
	rp[0] = rp[0]<<1 | lo
	return out
}

// Rshift1 shifts rp right by one bit, shifting hi (0 or 1) into the top.
func Rshift1(rp []uint64, hi uint64) {
	n := len(rp)
	for i := 0; i < n-1; i++ {
		rp[i] = rp[i]>>1 | rp[i+1]<<63
	}
	rp[n-1] = rp[n-1]>>1 | hi<<63
}
