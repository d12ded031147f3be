package eddsa

import (
	"fmt"

	"github.com/smallyu/go-eccore/internal/crypto/curves"
	"github.com/smallyu/go-eccore/internal/crypto/mpn"
)

// MontgomeryUItch returns the scratch needed by MontgomeryU.
func MontgomeryUItch(c *curves.Curve) int {
	fp := c.P()
	return 3*fp.Size() + max(fp.InvItch(), fp.RepItch())
}

// MontgomeryU writes the u coordinate of the birationally equivalent
// Montgomery point, u = (1+y)/(1-y), as 32 little-endian bytes. This is the
// X25519 form of an ed25519 point. The identity maps to u = 0.
func MontgomeryU(c *curves.Curve, dst []byte, p *Point, scratch []uint64) {
	if c != curves.Ed25519 {
		panic(fmt.Sprintf("eddsa: no Montgomery form for %s", c.Name()))
	}
	if len(dst) != c.EncodedLen() {
		panic(fmt.Sprintf("eddsa: output is %d bytes, need %d", len(dst), c.EncodedLen()))
	}
	fp := c.P()
	n := fp.Size()
	need(scratch, MontgomeryUItch(c))
	num, den, t := scratch[:n], scratch[n:2*n], scratch[2*n:3*n]
	s := scratch[3*n:]

	// (Z+Y)/(Z-Y) in projective form.
	fp.Add(num, p.Z[:n], p.Y[:n])
	fp.Sub(den, p.Z[:n], p.Y[:n])
	fp.Inv(t, den, s)
	fp.Mul(t, t, num, s)
	fp.FromRep(t, t, s)
	mpn.PutBytesLE(dst, t)
}
