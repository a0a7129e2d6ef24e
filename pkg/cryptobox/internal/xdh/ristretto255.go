package xdh

import (
	"io"

	"github.com/gtank/ristretto255"
)

const (
	r255ElementSize = 32 // The length of an encoded ristretto255 element.
	r255ScalarSize  = 32 // The length of an encoded ristretto255 scalar.

	// The length of a uniform bytestring which can be mapped to a ristretto255 scalar.
	r255UniformBytestringSize = 64
)

type r255Scheme struct{}

// Ristretto255 is Diffie-Hellman over the ristretto255 prime-order group. The shared secret is the
// encoded shared element.
//
//nolint:gochecknoglobals // immutable scheme
var Ristretto255 Scheme = r255Scheme{}

func (r255Scheme) Name() string {
	return "ristretto255"
}

func (r255Scheme) PublicKeySize() int {
	return r255ElementSize
}

func (r255Scheme) PrivateKeySize() int {
	return r255ScalarSize
}

func (s r255Scheme) GenerateKey(rand io.Reader) ([]byte, error) {
	var r [r255UniformBytestringSize]byte

	for i := 0; i < MaxAttempts; i++ {
		if _, err := io.ReadFull(rand, r[:]); err != nil {
			return nil, err
		}

		d := ristretto255.NewScalar().FromUniformBytes(r[:])
		if d.Equal(ristretto255.NewScalar()) == 0 {
			return d.Encode(nil), nil
		}
	}

	return nil, ErrNoValidScalar
}

func (s r255Scheme) PublicKey(priv []byte) ([]byte, error) {
	d, err := decodeScalar(priv)
	if err != nil {
		return nil, err
	}

	return ristretto255.NewElement().ScalarBaseMult(d).Encode(nil), nil
}

func (r255Scheme) CheckPublicKey(pub []byte) error {
	_, err := decodeElement(pub)

	return err
}

func (r255Scheme) CheckPrivateKey(priv []byte) error {
	_, err := decodeScalar(priv)

	return err
}

func (r255Scheme) SharedSecret(priv, pub []byte) ([]byte, error) {
	d, err := decodeScalar(priv)
	if err != nil {
		return nil, err
	}

	q, err := decodeElement(pub)
	if err != nil {
		return nil, err
	}

	zz := ristretto255.NewElement().ScalarMult(d, q)
	if zz.Equal(ristretto255.NewElement()) == 1 {
		return nil, ErrInvalidSharedSecret
	}

	return zz.Encode(nil), nil
}

// decodeElement decodes a canonical, non-identity ristretto255 element.
func decodeElement(b []byte) (*ristretto255.Element, error) {
	if len(b) != r255ElementSize {
		return nil, ErrInvalidPublicKey
	}

	q := ristretto255.NewElement()
	if err := q.Decode(b); err != nil {
		return nil, ErrInvalidPublicKey
	}

	if q.Equal(ristretto255.NewElement()) == 1 {
		return nil, ErrInvalidPublicKey
	}

	return q, nil
}

// decodeScalar decodes a canonical, non-zero ristretto255 scalar.
func decodeScalar(b []byte) (*ristretto255.Scalar, error) {
	if len(b) != r255ScalarSize {
		return nil, ErrInvalidPrivateKey
	}

	d := ristretto255.NewScalar()
	if err := d.Decode(b); err != nil {
		return nil, ErrInvalidPrivateKey
	}

	if d.Equal(ristretto255.NewScalar()) == 1 {
		return nil, ErrInvalidPrivateKey
	}

	return d, nil
}
