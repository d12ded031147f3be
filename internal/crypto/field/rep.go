package field

import "github.com/smallyu/go-eccore/internal/crypto/mpn"

// ToRep sets rp to the representation of the element ap. ap need not be
// canonical.
func (m *Modulus) ToRep(rp, ap, scratch []uint64) {
	n := m.size
	m.need(scratch, m.RepItch())
	if m.redcSize == 0 {
		m.Mod(rp, ap[:n], scratch)
		return
	}
	// x*R mod m
	t := scratch[:2*n]
	mpn.Zero(t[:n])
	copy(t[n:], ap[:n])
	m.Mod(rp, t, scratch[2*n:])
}

// FromRep sets rp to the canonical element represented by ap.
func (m *Modulus) FromRep(rp, ap, scratch []uint64) {
	n := m.size
	m.need(scratch, m.RepItch())
	if m.redcSize == 0 {
		copy(rp[:n], ap[:n])
		m.Normalize(rp)
		return
	}
	t := scratch[:2*n]
	copy(t, ap[:n])
	mpn.Zero(t[n:])
	m.ReduceFast(t)
	m.Normalize(t)
	copy(rp[:n], t[:n])
}

// SetBytes sets rp from the little-endian encoding b and reports whether
// the value is canonical, without branching on it. Bits beyond Size() limbs
// are ignored.
func (m *Modulus) SetBytes(rp []uint64, b []byte) uint64 {
	rp = rp[:m.size]
	mpn.SetBytesLE(rp, b)
	return mpn.SubBorrow(rp, m.m)
}
