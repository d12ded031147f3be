package curves

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownCurve is returned by ByName for names outside the table.
var ErrUnknownCurve = errors.New("curves: unknown curve")

var (
	Secp192r1 = newCurve(params{
		name:   "secp192r1",
		family: Weierstrass,
		p:      secp192r1P,
		q:      secp192r1Q,
		a:      -3,
		b:      "64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1",
		gx:     "188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012",
		gy:     "07192b95ffc8da78631011ed6b24cdd573f977a11e794811",
	})

	Secp256r1 = newCurve(params{
		name:   "secp256r1",
		family: Weierstrass,
		p:      secp256r1P,
		q:      secp256r1Q,
		a:      -3,
		b:      "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
		gx:     "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
		gy:     "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
	})

	Secp384r1 = newCurve(params{
		name:   "secp384r1",
		family: Weierstrass,
		p:      secp384r1P,
		q:      secp384r1Q,
		a:      -3,
		b:      "b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef",
		gx:     "aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7",
		gy:     "3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f",
	})

	Secp521r1 = newCurve(params{
		name:   "secp521r1",
		family: Weierstrass,
		p:      secp521r1P,
		q:      secp521r1Q,
		a:      -3,
		b:      "0051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00",
		gx:     "00c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66",
		gy:     "011839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650",
	})

	Secp256k1 = newCurve(params{
		name:   "secp256k1",
		family: Weierstrass,
		p:      secp256k1P,
		q:      secp256k1Q,
		a:      0,
		b:      "07",
		gx:     "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		gy:     "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
	})

	// Ed25519 is the twisted Edwards form of curve25519 used by RFC 8032.
	Ed25519 = newCurve(params{
		name:       "ed25519",
		family:     Edwards,
		p:          curve25519P,
		q:          curve25519Q,
		a:          -1,
		b:          "52036cee2b6ffe738cc740797779e89800700a4d4141d8ab75eb4dca135978a3",
		sqrtM1:     "2b8324804fc1df0b2b4d00993dfbd7a72f431806ad2fe478c4ee1b274a0ea0b0",
		gx:         "216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a",
		gy:         "6666666666666666666666666666666666666666666666666666666666666658",
		encodedLen: 32,
	})

	// Ed448 is the untwisted Edwards curve of RFC 8032, d = -39081.
	Ed448 = newCurve(params{
		name:       "ed448",
		family:     Edwards,
		p:          curve448P,
		q:          curve448Q,
		a:          1,
		b:          "fffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffff6756",
		gx:         "4f1970c66bed0ded221d15a622bf36da9e146570470f1767ea6de324a3d3a46412ae1af72ab66511433b80e18b00938e2626a82bc70cc05e",
		gy:         "693f46716eb6bc248876203756c9c7624bea73736ca3984087789c1e05a0c2d73ad3ff1ce67c39c4fdbd132c4ed7c8ad9808795bf230fa14",
		encodedLen: 57,
	})
)

var all = []*Curve{Secp192r1, Secp256r1, Secp384r1, Secp521r1, Secp256k1, Ed25519, Ed448}

var aliases = map[string]*Curve{
	"p-192":      Secp192r1,
	"prime192v1": Secp192r1,
	"p-256":      Secp256r1,
	"prime256v1": Secp256r1,
	"p-384":      Secp384r1,
	"p-521":      Secp521r1,
	"curve25519": Ed25519,
	"curve448":   Ed448,
}

// All returns every curve of the table in a fixed order.
func All() []*Curve {
	return append([]*Curve(nil), all...)
}

// Names returns the canonical names of the table, sorted.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names
}

// ByName looks up a curve by canonical name or alias, ignoring case.
func ByName(name string) (*Curve, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range all {
		if c.name == key {
			return c, nil
		}
	}
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	return nil, ErrUnknownCurve
}
