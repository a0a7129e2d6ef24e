package xdh

import (
	"crypto/ecdh"
	"fmt"
	"io"
)

// stdScheme adapts a crypto/ecdh curve. NIST public keys are uncompressed points.
type stdScheme struct {
	name  string
	curve ecdh.Curve
	pub   int
	priv  int
	mask  byte
}

//nolint:gochecknoglobals // immutable schemes
var (
	// P256 is ECDH over NIST P-256.
	P256 Scheme = &stdScheme{name: "P-256", curve: ecdh.P256(), pub: 65, priv: 32, mask: 0xff}

	// P384 is ECDH over NIST P-384.
	P384 Scheme = &stdScheme{name: "P-384", curve: ecdh.P384(), pub: 97, priv: 48, mask: 0xff}

	// P521 is ECDH over NIST P-521. The top byte of a scalar carries a single bit.
	P521 Scheme = &stdScheme{name: "P-521", curve: ecdh.P521(), pub: 133, priv: 66, mask: 0x01}

	// X25519 is the RFC 7748 X25519 function.
	X25519 Scheme = &stdScheme{name: "X25519", curve: ecdh.X25519(), pub: 32, priv: 32, mask: 0xff}
)

func (s *stdScheme) Name() string {
	return s.name
}

func (s *stdScheme) PublicKeySize() int {
	return s.pub
}

func (s *stdScheme) PrivateKeySize() int {
	return s.priv
}

func (s *stdScheme) GenerateKey(rand io.Reader) ([]byte, error) {
	return generate(rand, s.priv, s.mask, s.CheckPrivateKey)
}

func (s *stdScheme) PublicKey(priv []byte) ([]byte, error) {
	k, err := s.curve.NewPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPrivateKey, s.name)
	}

	return k.PublicKey().Bytes(), nil
}

func (s *stdScheme) CheckPublicKey(pub []byte) error {
	if _, err := s.curve.NewPublicKey(pub); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPublicKey, s.name)
	}

	return nil
}

func (s *stdScheme) CheckPrivateKey(priv []byte) error {
	if _, err := s.curve.NewPrivateKey(priv); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPrivateKey, s.name)
	}

	return nil
}

func (s *stdScheme) SharedSecret(priv, pub []byte) ([]byte, error) {
	sk, err := s.curve.NewPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPrivateKey, s.name)
	}

	pk, err := s.curve.NewPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublicKey, s.name)
	}

	// X25519 returns an error for low-order points.
	zz, err := sk.ECDH(pk)
	if err != nil || isZero(zz) {
		return nil, ErrInvalidSharedSecret
	}

	return zz, nil
}

// Curve returns the crypto/ecdh curve for schemes backed by the standard library, which are the
// only ones with X.509 and PKCS #8 encodings.
func Curve(s Scheme) (ecdh.Curve, bool) {
	std, ok := s.(*stdScheme)
	if !ok {
		return nil, false
	}

	return std.curve, true
}

// ForCurve returns the scheme backed by the given crypto/ecdh curve.
func ForCurve(c ecdh.Curve) (Scheme, bool) {
	for _, s := range []Scheme{P256, P384, P521, X25519} {
		if s.(*stdScheme).curve == c {
			return s, true
		}
	}

	return nil, false
}
