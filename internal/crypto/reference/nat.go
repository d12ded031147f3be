// Package reference wraps independent third-party implementations so they
// can serve as oracles for the reduction engine and the point codec.
//
// Nothing here is constant time or allocation free. It is used by the
// tests, the self-test and the benchmarks, never by the codec itself.
package reference

import (
	"github.com/cronokirby/saferith"
)

func bytesBE(ap []uint64) []byte {
	n := len(ap)
	b := make([]byte, 8*n)
	for i, v := range ap {
		for j := 0; j < 8; j++ {
			b[8*(n-1-i)+7-j] = byte(v >> (8 * j))
		}
	}
	return b
}

func natFromLimbs(ap []uint64) *saferith.Nat {
	return new(saferith.Nat).SetBytes(bytesBE(ap))
}

func modulusFromLimbs(mp []uint64) *saferith.Modulus {
	return saferith.ModulusFromBytes(bytesBE(mp))
}

// putNat writes x, which must fit, into rp as little-endian limbs.
func putNat(rp []uint64, x *saferith.Nat) {
	b := x.FillBytes(make([]byte, 8*len(rp)))
	n := len(rp)
	for i := range rp {
		var v uint64
		for j := 0; j < 8; j++ {
			v |= uint64(b[8*(n-1-i)+7-j]) << (8 * j)
		}
		rp[i] = v
	}
}

// Oracle answers modular questions about one modulus with saferith's
// general-purpose arithmetic.
type Oracle struct {
	size int
	m    *saferith.Modulus
	rInv *saferith.Nat
}

// NewOracle precomputes an Oracle for the odd modulus mp.
func NewOracle(mp []uint64) *Oracle {
	m := modulusFromLimbs(mp)
	r := make([]uint64, len(mp)+1)
	r[len(mp)] = 1
	rr := new(saferith.Nat).Mod(natFromLimbs(r), m)
	return &Oracle{
		size: len(mp),
		m:    m,
		rInv: new(saferith.Nat).ModInverse(rr, m),
	}
}

// Size returns the limb count of the modulus.
func (o *Oracle) Size() int { return o.size }

// Mod sets rp = ap mod m for an input of any length.
func (o *Oracle) Mod(rp, ap []uint64) {
	putNat(rp[:o.size], new(saferith.Nat).Mod(natFromLimbs(ap), o.m))
}

// MulMod sets rp = ap * bp mod m.
func (o *Oracle) MulMod(rp, ap, bp []uint64) {
	a := new(saferith.Nat).Mod(natFromLimbs(ap), o.m)
	b := new(saferith.Nat).Mod(natFromLimbs(bp), o.m)
	putNat(rp[:o.size], new(saferith.Nat).ModMul(a, b, o.m))
}

// Redc sets rp = ap * 2^(-64*Size()) mod m, the residue a Montgomery
// reduction of ap must be congruent to.
func (o *Oracle) Redc(rp, ap []uint64) {
	a := new(saferith.Nat).Mod(natFromLimbs(ap), o.m)
	putNat(rp[:o.size], new(saferith.Nat).ModMul(a, o.rInv, o.m))
}

// Montgomery sets rp = ap * 2^(64*Size()) mod m.
func (o *Oracle) Montgomery(rp, ap []uint64) {
	wide := make([]uint64, len(ap)+o.size)
	copy(wide[o.size:], ap)
	o.Mod(rp, wide)
}

// Inverse sets rp = ap^-1 mod m.
func (o *Oracle) Inverse(rp, ap []uint64) {
	a := new(saferith.Nat).Mod(natFromLimbs(ap), o.m)
	putNat(rp[:o.size], new(saferith.Nat).ModInverse(a, o.m))
}

// Sqrt sets rp to a square root of ap mod the prime m and reports whether
// one exists.
func (o *Oracle) Sqrt(rp, ap []uint64) bool {
	a := new(saferith.Nat).Mod(natFromLimbs(ap), o.m)
	x := new(saferith.Nat).ModSqrt(a, o.m)
	if new(saferith.Nat).ModMul(x, x, o.m).Eq(a) != 1 {
		return false
	}
	putNat(rp[:o.size], x)
	return true
}
