package curves

import "github.com/smallyu/go-eccore/internal/crypto/field"

// Moduli of the curve table, as little-endian 64-bit limbs. The reduction
// constants are derived offline from the modulus and checked by the tests.
var (
	secp192r1P = field.NewModulus([]uint64{
		0xffffffffffffffff, 0xfffffffffffffffe, 0xffffffffffffffff,
	}, 192, 1, []uint64{
		0xffffffffffffffff, 0xffffffffffffffff,
	}, nil)
	secp192r1Q = field.NewModulus([]uint64{
		0x146bc9b1b4d22831, 0xffffffff99def836, 0xffffffffffffffff,
	}, 192, 0, nil, nil)
	secp256r1P = field.NewModulus([]uint64{
		0xffffffffffffffff, 0x00000000ffffffff, 0x0000000000000000,
		0xffffffff00000001,
	}, 256, 1, []uint64{
		0x0000000100000000, 0x0000000000000000, 0xffffffff00000001,
	}, nil)
	secp256r1Q = field.NewModulus([]uint64{
		0xf3b9cac2fc632551, 0xbce6faada7179e84, 0xffffffffffffffff,
		0xffffffff00000000,
	}, 256, 0, nil, nil)
	secp384r1P = field.NewModulus([]uint64{
		0x00000000ffffffff, 0xffffffff00000000, 0xfffffffffffffffe,
		0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
	}, 384, 0, nil, nil)
	secp384r1Q = field.NewModulus([]uint64{
		0xecec196accc52973, 0x581a0db248b0a77a, 0xc7634d81f4372ddf,
		0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
	}, 384, 0, nil, nil)
	secp521r1P = field.NewModulus([]uint64{
		0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
		0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
		0xffffffffffffffff, 0xffffffffffffffff, 0x00000000000001ff,
	}, 521, 8, []uint64{
		0x0000000000000200,
	}, []uint64{
		0x0000000000000001, 0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0x0000000000000000,
	})
	secp521r1Q = field.NewModulus([]uint64{
		0xbb6fb71e91386409, 0x3bb5c9b8899c47ae, 0x7fcc0148f709a5d0,
		0x51868783bf2f966b, 0xfffffffffffffffa, 0xffffffffffffffff,
		0xffffffffffffffff, 0xffffffffffffffff, 0x00000000000001ff,
	}, 521, 0, nil, nil)
	secp256k1P = field.NewModulus([]uint64{
		0xfffffffefffffc2f, 0xffffffffffffffff, 0xffffffffffffffff,
		0xffffffffffffffff,
	}, 256, 0, nil, nil)
	secp256k1Q = field.NewModulus([]uint64{
		0xbfd25e8cd0364141, 0xbaaedce6af48a03b, 0xfffffffffffffffe,
		0xffffffffffffffff,
	}, 256, 0, nil, nil)
	curve25519P = field.NewModulus([]uint64{
		0xffffffffffffffed, 0xffffffffffffffff, 0xffffffffffffffff,
		0x7fffffffffffffff,
	}, 255, 0, nil, nil)
	curve25519Q = field.NewModulus([]uint64{
		0x5812631a5cf5d3ed, 0x14def9dea2f79cd6, 0x0000000000000000,
		0x1000000000000000,
	}, 253, 0, nil, nil)
	curve448P = field.NewModulus([]uint64{
		0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
		0xfffffffeffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
		0xffffffffffffffff,
	}, 448, 3, []uint64{
		0xffffffff00000000, 0xffffffffffffffff, 0xffffffffffffffff,
		0xffffffffffffffff,
	}, nil)
	curve448Q = field.NewModulus([]uint64{
		0x2378c292ab5844f3, 0x216cc2728dc58f55, 0xc44edb49aed63690,
		0xffffffff7cca23e9, 0xffffffffffffffff, 0xffffffffffffffff,
		0x3fffffffffffffff,
	}, 446, 0, nil, nil)
)
