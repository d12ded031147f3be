// Package field implements modular reduction and arithmetic for the prime
// moduli of the curve table.
//
// A Modulus whose successor m+1 has trailing zero limbs gets the fast "p+1"
// reduction. Folding the low half of a product that way divides by
// R = 2^(64*size), so elements of such a field are kept in Montgomery
// representation x*R mod m. Every other modulus keeps plain representation
// and reduces by constant-time shift and subtract. Callers see the same
// interface either way: ToRep and FromRep convert, Mul and friends work in
// representation, and every exported arithmetic result is canonical.
//
// All operations run on caller-supplied slices. Those that need working
// memory take a scratch slice whose required length is reported by the
// matching Itch method; a short scratch slice is a programming error and
// panics.
package field

import (
	"fmt"

	"github.com/smallyu/go-eccore/internal/crypto/mpn"
)

// MaxSize is the largest limb count of any modulus in the curve table.
const MaxSize = 9

// Modulus describes an odd modulus together with the constants of its fast
// reduction, if it has one. A Modulus is immutable after construction and
// safe for concurrent use.
type Modulus struct {
	m       []uint64
	size    int
	bitSize int

	// redcSize is the number of trailing zero limbs of m+1. Zero means the
	// modulus has no fast reduction.
	redcSize int
	// redcConstant is (m+1) / 2^(64*redcSize), size-redcSize limbs.
	redcConstant []uint64
	// shift is 64*size - bitSize.
	shift int
	// shiftConstant is 2^bitSize - m, size-1 limbs. Only set for fast
	// moduli with shift > 0.
	shiftConstant []uint64

	one     []uint64
	invExp  []uint64
	sqrt    sqrtKind
	sqrtExp []uint64
}

type sqrtKind int

const (
	sqrtNone sqrtKind = iota
	sqrt5Mod8
	sqrt3Mod4
)

// NewModulus builds a Modulus from its little-endian limbs and exact bit
// length. redcSize, redcConstant and shiftConstant describe the fast
// reduction and are taken as given; pass 0 and nil for a modulus without one.
// NewModulus panics on an even modulus or inconsistent sizes.
func NewModulus(limbs []uint64, bitSize, redcSize int, redcConstant, shiftConstant []uint64) *Modulus {
	size := len(limbs)
	switch {
	case size == 0 || size > MaxSize:
		panic(fmt.Sprintf("field: unsupported modulus size %d", size))
	case limbs[0]&1 == 0:
		panic("field: modulus must be odd")
	case bitSize <= 64*(size-1) || bitSize > 64*size:
		panic(fmt.Sprintf("field: bit size %d does not match %d limbs", bitSize, size))
	case redcSize < 0 || redcSize >= size:
		panic(fmt.Sprintf("field: invalid reduction size %d", redcSize))
	case redcSize > 0 && len(redcConstant) != size-redcSize:
		panic("field: reduction constant has wrong length")
	case redcSize > 0 && 64*size > bitSize && len(shiftConstant) != size-1:
		panic("field: shift constant has wrong length")
	}

	m := &Modulus{
		m:        append([]uint64(nil), limbs...),
		size:     size,
		bitSize:  bitSize,
		redcSize: redcSize,
		shift:    64*size - bitSize,
	}
	if redcSize > 0 {
		m.redcConstant = append([]uint64(nil), redcConstant...)
		if m.shift > 0 {
			m.shiftConstant = append([]uint64(nil), shiftConstant...)
		}
	}

	m.invExp = make([]uint64, size)
	mpn.Sub1(m.invExp, m.m, 2)

	switch {
	case m.m[0]&7 == 5:
		m.sqrt = sqrt5Mod8
		m.sqrtExp = rshift(m.m, 3)
	case m.m[0]&3 == 3:
		m.sqrt = sqrt3Mod4
		m.sqrtExp = rshift(m.m, 2)
	}

	m.one = make([]uint64, size)
	unit := make([]uint64, size)
	unit[0] = 1
	m.ToRep(m.one, unit, make([]uint64, m.RepItch()))
	return m
}

// rshift returns ap >> k for 0 < k < 64.
func rshift(ap []uint64, k uint) []uint64 {
	n := len(ap)
	rp := make([]uint64, n)
	for i := 0; i < n-1; i++ {
		rp[i] = ap[i]>>k | ap[i+1]<<(64-k)
	}
	rp[n-1] = ap[n-1] >> k
	return rp
}

// Size returns the number of limbs of the modulus.
func (m *Modulus) Size() int { return m.size }

// BitSize returns the exact bit length of the modulus.
func (m *Modulus) BitSize() int { return m.bitSize }

// ByteLen returns the number of bytes needed to hold a canonical element.
func (m *Modulus) ByteLen() int { return (m.bitSize + 7) / 8 }

// RedcSize returns the number of trailing zero limbs of m+1 the fast
// reduction relies on, or zero.
func (m *Modulus) RedcSize() int { return m.redcSize }

// Shift returns 64*Size() - BitSize().
func (m *Modulus) Shift() int { return m.shift }

// FastPath reports whether Reduce uses the "p+1" reduction.
func (m *Modulus) FastPath() bool { return m.redcSize > 0 }

// The accessors below return internal slices. They must not be modified.

// Limbs returns the modulus.
func (m *Modulus) Limbs() []uint64 { return m.m }

// RedcConstant returns (m+1) / 2^(64*RedcSize()).
func (m *Modulus) RedcConstant() []uint64 { return m.redcConstant }

// ShiftConstant returns 2^BitSize() - m for fast moduli with a nonzero shift.
func (m *Modulus) ShiftConstant() []uint64 { return m.shiftConstant }

// One returns the representation of 1.
func (m *Modulus) One() []uint64 { return m.one }

// need panics if scratch is shorter than n limbs.
func (m *Modulus) need(scratch []uint64, n int) {
	if len(scratch) < n {
		panic(fmt.Sprintf("field: scratch too short: have %d limbs, need %d", len(scratch), n))
	}
}

// ModItch returns the scratch needed by Mod.
func (m *Modulus) ModItch() int { return 2 * m.size }

// ReduceItch returns the scratch needed by Reduce and ReduceGeneric.
func (m *Modulus) ReduceItch() int { return m.ModItch() }

// MulItch returns the scratch needed by Mul and Sqr.
func (m *Modulus) MulItch() int { return 2*m.size + m.ReduceItch() }

// PowItch returns the scratch needed by Pow.
func (m *Modulus) PowItch() int { return m.size + m.MulItch() }

// InvItch returns the scratch needed by Inv.
func (m *Modulus) InvItch() int { return m.PowItch() }

// SqrtRatioItch returns the scratch needed by SqrtRatio.
func (m *Modulus) SqrtRatioItch() int { return 3*m.size + m.PowItch() }

// RepItch returns the scratch needed by ToRep and FromRep.
func (m *Modulus) RepItch() int { return 2*m.size + m.ModItch() }
