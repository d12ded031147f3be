package mpn

// SetBytesLE sets rp from the little-endian bytes in b. Bytes beyond the
// capacity of rp are ignored; missing high limbs are zeroed.
func SetBytesLE(rp []uint64, b []byte) {
	Zero(rp)
	for i, v := range b {
		if i/8 >= len(rp) {
			return
		}
		rp[i/8] |= uint64(v) << (8 * (i % 8))
	}
}

// PutBytesLE writes ap to b in little-endian order, filling all of b. Bytes
// past the end of ap are written as zero and limb bits past the end of b
// are dropped.
func PutBytesLE(b []byte, ap []uint64) {
	for i := range b {
		var v uint64
		if i/8 < len(ap) {
			v = ap[i/8]
		}
		b[i] = byte(v >> (8 * (i % 8)))
	}
}

// SetBytesBE sets rp from the big-endian bytes in b.
func SetBytesBE(rp []uint64, b []byte) {
	Zero(rp)
	n := len(b)
	for i := 0; i < n; i++ {
		j := n - 1 - i
		if i/8 >= len(rp) {
			return
		}
		rp[i/8] |= uint64(b[j]) << (8 * (i % 8))
	}
}

// PutBytesBE writes ap to b in big-endian order, filling all of b.
func PutBytesBE(b []byte, ap []uint64) {
	n := len(b)
	for i := 0; i < n; i++ {
		var v uint64
		if i/8 < len(ap) {
			v = ap[i/8]
		}
		b[n-1-i] = byte(v >> (8 * (i % 8)))
	}
}
