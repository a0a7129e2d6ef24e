package cryptobox

import (
	"bytes"
	"encoding"
	"fmt"
)

// PrivateKey is a key agreement private key for a particular curve.
//
// Its canonical binary encoding carries the curve tag and should never be stored in plaintext.
type PrivateKey struct {
	curve Curve
	d     []byte
	pub   *PublicKey
}

// NewPrivateKey returns a private key from the curve's raw encoding of a scalar. It returns
// ErrInvalidKeyEncoding if the scalar is invalid for the curve.
func NewPrivateKey(c Curve, raw []byte) (*PrivateKey, error) {
	s, err := c.scheme()
	if err != nil {
		return nil, err
	}

	q, err := s.PublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	return &PrivateKey{curve: c, d: bytes.Clone(raw), pub: &PublicKey{curve: c, q: q}}, nil
}

// ParsePrivateKey decodes a private key from its canonical binary encoding.
func ParsePrivateKey(data []byte) (*PrivateKey, error) {
	var sk PrivateKey
	if err := sk.UnmarshalBinary(data); err != nil {
		return nil, err
	}

	return &sk, nil
}

// Curve returns the key's curve.
func (sk *PrivateKey) Curve() Curve {
	return sk.curve
}

// PublicKey returns the corresponding PublicKey for the receiver.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return sk.pub
}

// Bytes returns the curve's raw encoding of the private key.
func (sk *PrivateKey) Bytes() []byte {
	return bytes.Clone(sk.d)
}

// Destroy wipes the private key's scalar. The key must not be used afterwards.
func (sk *PrivateKey) Destroy() {
	Wipe(sk.d)
}

// String returns a safe identifier for the key: its curve and public key.
func (sk *PrivateKey) String() string {
	return fmt.Sprintf("%s private key for %s", sk.curve, sk.pub)
}

// MarshalBinary returns the canonical encoding of the private key.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	return encodeKey(kindPrivate, sk.curve, sk.d), nil
}

// UnmarshalBinary decodes the canonical encoding of a private key. It returns
// ErrInvalidKeyEncoding if the encoding is malformed, is not a private key, or is not a valid
// scalar for its curve.
func (sk *PrivateKey) UnmarshalBinary(data []byte) error {
	c, d, err := decodeKey(kindPrivate, data)
	if err != nil {
		return err
	}

	k, err := NewPrivateKey(c, d)

	Wipe(d)

	if err != nil {
		return err
	}

	*sk = *k

	return nil
}

// MarshalText returns the canonical encoding of the private key as hex text.
func (sk *PrivateKey) MarshalText() ([]byte, error) {
	return []byte(EncodeHex(encodeKey(kindPrivate, sk.curve, sk.d))), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// private key.
func (sk *PrivateKey) UnmarshalText(text []byte) error {
	data, err := DecodeHex(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeyEncoding, err)
	}

	defer Wipe(data)

	return sk.UnmarshalBinary(data)
}

var (
	_ encoding.BinaryMarshaler   = &PrivateKey{}
	_ encoding.BinaryUnmarshaler = &PrivateKey{}
	_ encoding.TextMarshaler     = &PrivateKey{}
	_ encoding.TextUnmarshaler   = &PrivateKey{}
	_ fmt.Stringer               = &PrivateKey{}
)
