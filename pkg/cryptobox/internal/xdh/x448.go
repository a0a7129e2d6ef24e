package xdh

import (
	"io"

	"github.com/cloudflare/circl/dh/x448"
)

type x448Scheme struct{}

// X448 is the RFC 7748 X448 function.
//
//nolint:gochecknoglobals // immutable scheme
var X448 Scheme = x448Scheme{}

func (x448Scheme) Name() string {
	return "X448"
}

func (x448Scheme) PublicKeySize() int {
	return x448.Size
}

func (x448Scheme) PrivateKeySize() int {
	return x448.Size
}

func (s x448Scheme) GenerateKey(rand io.Reader) ([]byte, error) {
	return generate(rand, x448.Size, 0xff, s.CheckPrivateKey)
}

func (s x448Scheme) PublicKey(priv []byte) ([]byte, error) {
	if err := s.CheckPrivateKey(priv); err != nil {
		return nil, err
	}

	var sk, pk x448.Key

	copy(sk[:], priv)
	x448.KeyGen(&pk, &sk)

	return pk[:], nil
}

func (x448Scheme) CheckPublicKey(pub []byte) error {
	if len(pub) != x448.Size {
		return ErrInvalidPublicKey
	}

	return nil
}

func (x448Scheme) CheckPrivateKey(priv []byte) error {
	if len(priv) != x448.Size {
		return ErrInvalidPrivateKey
	}

	return nil
}

func (s x448Scheme) SharedSecret(priv, pub []byte) ([]byte, error) {
	if err := s.CheckPrivateKey(priv); err != nil {
		return nil, err
	}

	if err := s.CheckPublicKey(pub); err != nil {
		return nil, err
	}

	var sk, pk, zz x448.Key

	copy(sk[:], priv)
	copy(pk[:], pub)

	// Shared returns false for low-order points.
	if !x448.Shared(&zz, &sk, &pk) {
		return nil, ErrInvalidSharedSecret
	}

	return zz[:], nil
}
