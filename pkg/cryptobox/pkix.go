package cryptobox

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/x509"
	"fmt"

	"github.com/codahale/cryptobox/pkg/cryptobox/internal/xdh"
)

// MarshalPKIX returns the public key as a DER-encoded X.509 SubjectPublicKeyInfo. Only P-256,
// P-384, P-521, and X25519 keys have this encoding; other curves return ErrUnsupportedAlgorithm.
func (pk *PublicKey) MarshalPKIX() ([]byte, error) {
	c, err := ecdhCurve(pk.curve)
	if err != nil {
		return nil, err
	}

	k, err := c.NewPublicKey(pk.q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	return x509.MarshalPKIXPublicKey(k)
}

// ParsePKIXPublicKey decodes a DER-encoded X.509 SubjectPublicKeyInfo holding an elliptic curve or
// X25519 public key.
func ParsePKIXPublicKey(der []byte) (*PublicKey, error) {
	k, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	var pub *ecdh.PublicKey

	switch k := k.(type) {
	case *ecdh.PublicKey:
		pub = k
	case *ecdsa.PublicKey:
		if pub, err = k.ECDH(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
		}
	default:
		return nil, fmt.Errorf("%w: %T is not a key agreement key", ErrInvalidKeyEncoding, k)
	}

	c, err := curveOf(pub.Curve())
	if err != nil {
		return nil, err
	}

	return NewPublicKey(c, pub.Bytes())
}

// MarshalPKCS8 returns the private key as a DER-encoded PKCS #8 PrivateKeyInfo. Only P-256, P-384,
// P-521, and X25519 keys have this encoding; other curves return ErrUnsupportedAlgorithm.
func (sk *PrivateKey) MarshalPKCS8() ([]byte, error) {
	c, err := ecdhCurve(sk.curve)
	if err != nil {
		return nil, err
	}

	k, err := c.NewPrivateKey(sk.d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	return x509.MarshalPKCS8PrivateKey(k)
}

// ParsePKCS8PrivateKey decodes a DER-encoded PKCS #8 PrivateKeyInfo holding an elliptic curve or
// X25519 private key.
func ParsePKCS8PrivateKey(der []byte) (*PrivateKey, error) {
	k, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	var priv *ecdh.PrivateKey

	switch k := k.(type) {
	case *ecdh.PrivateKey:
		priv = k
	case *ecdsa.PrivateKey:
		if priv, err = k.ECDH(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
		}
	default:
		return nil, fmt.Errorf("%w: %T is not a key agreement key", ErrInvalidKeyEncoding, k)
	}

	c, err := curveOf(priv.Curve())
	if err != nil {
		return nil, err
	}

	d := priv.Bytes()
	defer Wipe(d)

	return NewPrivateKey(c, d)
}

// ReconstructPKIX decodes a P-256 key pair from a DER-encoded X.509 SubjectPublicKeyInfo and a
// DER-encoded PKCS #8 PrivateKeyInfo.
func ReconstructPKIX(pkixPublic, pkcs8Private []byte) (*KeyPair, error) {
	return DefaultConfig().ReconstructPKIX(pkixPublic, pkcs8Private)
}

// ReconstructPKIX decodes a key pair from a DER-encoded X.509 SubjectPublicKeyInfo and a DER-encoded
// PKCS #8 PrivateKeyInfo. As with Reconstruct, the halves need not belong together, but both must
// be on the configured curve.
func (c *Config) ReconstructPKIX(pkixPublic, pkcs8Private []byte) (*KeyPair, error) {
	pk, err := ParsePKIXPublicKey(pkixPublic)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}

	sk, err := ParsePKCS8PrivateKey(pkcs8Private)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}

	return c.pair(pk, sk)
}

// ReconstructPKIXHex is ReconstructPKIX over hex text.
func (c *Config) ReconstructPKIXHex(publicHex, privateHex string) (*KeyPair, error) {
	pub, err := DecodeHex(publicHex)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %w", ErrInvalidKeyEncoding, err)
	}

	priv, err := DecodeHex(privateHex)
	if err != nil {
		return nil, fmt.Errorf("%w: private key: %w", ErrInvalidKeyEncoding, err)
	}

	defer Wipe(priv)

	return c.ReconstructPKIX(pub, priv)
}

func ecdhCurve(c Curve) (ecdh.Curve, error) {
	s, err := c.scheme()
	if err != nil {
		return nil, err
	}

	ec, ok := xdh.Curve(s)
	if !ok {
		return nil, fmt.Errorf("%w: %s keys have no X.509 or PKCS #8 encoding", ErrUnsupportedAlgorithm, c)
	}

	return ec, nil
}

func curveOf(ec ecdh.Curve) (Curve, error) {
	s, ok := xdh.ForCurve(ec)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, ec)
	}

	for c, cs := range schemes {
		if cs == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, s.Name())
}
