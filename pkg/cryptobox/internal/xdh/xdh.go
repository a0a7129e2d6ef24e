// Package xdh provides the elliptic-curve Diffie-Hellman schemes cryptobox can be configured with.
//
// Every scheme works on raw byte strings: private keys are encoded scalars, public keys are encoded
// points, and shared secrets are the scheme's standard agreement output. Schemes are stateless and
// safe for concurrent use.
package xdh

import (
	"crypto/subtle"
	"errors"
	"io"
)

var (
	// ErrInvalidPublicKey is returned when a public key is not a valid encoding of a point on the
	// scheme's curve, or encodes the identity element.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key is not a valid encoding of a scalar.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidSharedSecret is returned when an agreement produces an all-zero or identity result.
	ErrInvalidSharedSecret = errors.New("invalid shared secret")

	// ErrNoValidScalar is returned when a random source fails to produce a valid private key within
	// MaxAttempts tries.
	ErrNoValidScalar = errors.New("random source produced no valid scalar")
)

// MaxAttempts is the number of rejection-sampling attempts GenerateKey makes before giving up.
const MaxAttempts = 64

// Scheme is an elliptic-curve Diffie-Hellman key agreement scheme.
type Scheme interface {
	// Name returns the scheme's canonical name.
	Name() string

	// PublicKeySize returns the length of an encoded public key in bytes.
	PublicKeySize() int

	// PrivateKeySize returns the length of an encoded private key in bytes.
	PrivateKeySize() int

	// GenerateKey returns a new private key, drawing randomness from rand.
	GenerateKey(rand io.Reader) ([]byte, error)

	// PublicKey returns the public key for the given private key.
	PublicKey(priv []byte) ([]byte, error)

	// CheckPublicKey returns nil if pub is a valid public key.
	CheckPublicKey(pub []byte) error

	// CheckPrivateKey returns nil if priv is a valid private key.
	CheckPrivateKey(priv []byte) error

	// SharedSecret returns the agreement output of priv and pub.
	SharedSecret(priv, pub []byte) ([]byte, error)
}

// generate performs rejection sampling: it reads n bytes from rand, applies mask to the first byte,
// and returns the first candidate for which check returns nil.
func generate(rand io.Reader, n int, mask byte, check func([]byte) error) ([]byte, error) {
	buf := make([]byte, n)

	for i := 0; i < MaxAttempts; i++ {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, err
		}

		buf[0] &= mask

		if check(buf) == nil {
			return buf, nil
		}
	}

	return nil, ErrNoValidScalar
}

// isZero returns true if b is all zeros, in constant time.
func isZero(b []byte) bool {
	return subtle.ConstantTimeCompare(b, make([]byte, len(b))) == 1
}
