package xdh

import (
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
)

type secp256k1Scheme struct{}

// Secp256k1 is ECDH over secp256k1. Public keys are compressed points and the shared secret is the
// x-coordinate of the shared point, per RFC 5903.
//
//nolint:gochecknoglobals // immutable scheme
var Secp256k1 Scheme = secp256k1Scheme{}

func (secp256k1Scheme) Name() string {
	return "secp256k1"
}

func (secp256k1Scheme) PublicKeySize() int {
	return btcec.PubKeyBytesLenCompressed
}

func (secp256k1Scheme) PrivateKeySize() int {
	return btcec.PrivKeyBytesLen
}

func (s secp256k1Scheme) GenerateKey(rand io.Reader) ([]byte, error) {
	return generate(rand, btcec.PrivKeyBytesLen, 0xff, s.CheckPrivateKey)
}

func (s secp256k1Scheme) PublicKey(priv []byte) ([]byte, error) {
	if err := s.CheckPrivateKey(priv); err != nil {
		return nil, err
	}

	_, pk := btcec.PrivKeyFromBytes(priv)

	return pk.SerializeCompressed(), nil
}

func (secp256k1Scheme) CheckPublicKey(pub []byte) error {
	if len(pub) != btcec.PubKeyBytesLenCompressed {
		return ErrInvalidPublicKey
	}

	if _, err := btcec.ParsePubKey(pub); err != nil {
		return ErrInvalidPublicKey
	}

	return nil
}

func (secp256k1Scheme) CheckPrivateKey(priv []byte) error {
	if len(priv) != btcec.PrivKeyBytesLen {
		return ErrInvalidPrivateKey
	}

	// Scalars must be canonical and non-zero; PrivKeyFromBytes would silently reduce them.
	var d btcec.ModNScalar
	if overflow := d.SetByteSlice(priv); overflow || d.IsZero() {
		return ErrInvalidPrivateKey
	}

	return nil
}

func (s secp256k1Scheme) SharedSecret(priv, pub []byte) ([]byte, error) {
	if err := s.CheckPrivateKey(priv); err != nil {
		return nil, err
	}

	pk, err := btcec.ParsePubKey(pub)
	if err != nil || len(pub) != btcec.PubKeyBytesLenCompressed {
		return nil, ErrInvalidPublicKey
	}

	sk, _ := btcec.PrivKeyFromBytes(priv)
	zz := btcec.GenerateSharedSecret(sk, pk)

	if isZero(zz) {
		return nil, ErrInvalidSharedSecret
	}

	return zz, nil
}
