package reference

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/curve25519"
)

// X25519 computes the RFC 7748 function with golang.org/x/crypto.
func X25519(scalar, point []byte) ([]byte, error) {
	out, err := curve25519.X25519(scalar, point)
	if err != nil {
		return nil, errors.Wrap(err, "x25519")
	}
	return out, nil
}

// X25519Base computes X25519(scalar, 9).
func X25519Base(scalar []byte) ([]byte, error) {
	return X25519(scalar, curve25519.Basepoint)
}
