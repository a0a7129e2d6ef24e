package cryptobox

import (
	"bytes"
	"encoding"
	"fmt"

	"github.com/mr-tron/base58"
)

// PublicKey is a key agreement public key for a particular curve.
//
// Its canonical binary encoding carries the curve tag; its text encoding is the hex form of that.
type PublicKey struct {
	curve Curve
	q     []byte
}

// NewPublicKey returns a public key from the curve's raw encoding of a point. It returns
// ErrInvalidKeyEncoding if the point is invalid for the curve.
func NewPublicKey(c Curve, raw []byte) (*PublicKey, error) {
	s, err := c.scheme()
	if err != nil {
		return nil, err
	}

	if err := s.CheckPublicKey(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	return &PublicKey{curve: c, q: bytes.Clone(raw)}, nil
}

// ParsePublicKey decodes a public key from its canonical binary encoding.
func ParsePublicKey(data []byte) (*PublicKey, error) {
	var pk PublicKey
	if err := pk.UnmarshalBinary(data); err != nil {
		return nil, err
	}

	return &pk, nil
}

// Curve returns the key's curve.
func (pk *PublicKey) Curve() Curve {
	return pk.curve
}

// Bytes returns the curve's raw encoding of the public key.
func (pk *PublicKey) Bytes() []byte {
	return bytes.Clone(pk.q)
}

// Equal returns true if both keys are the same point on the same curve.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && pk.curve == other.curve && bytes.Equal(pk.q, other.q)
}

// String returns the canonical encoding of the public key as base58 text.
func (pk *PublicKey) String() string {
	return base58.Encode(encodeKey(kindPublic, pk.curve, pk.q))
}

// MarshalBinary returns the canonical encoding of the public key.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return encodeKey(kindPublic, pk.curve, pk.q), nil
}

// UnmarshalBinary decodes the canonical encoding of a public key. It returns ErrInvalidKeyEncoding
// if the encoding is malformed, is not a public key, or is not a valid point on its curve.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	c, q, err := decodeKey(kindPublic, data)
	if err != nil {
		return err
	}

	k, err := NewPublicKey(c, q)
	if err != nil {
		return err
	}

	*pk = *k

	return nil
}

// MarshalText returns the canonical encoding of the public key as hex text.
func (pk *PublicKey) MarshalText() ([]byte, error) {
	return []byte(EncodeHex(encodeKey(kindPublic, pk.curve, pk.q))), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// public key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	data, err := DecodeHex(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeyEncoding, err)
	}

	return pk.UnmarshalBinary(data)
}

var (
	_ encoding.BinaryMarshaler   = &PublicKey{}
	_ encoding.BinaryUnmarshaler = &PublicKey{}
	_ encoding.TextMarshaler     = &PublicKey{}
	_ encoding.TextUnmarshaler   = &PublicKey{}
	_ fmt.Stringer               = &PublicKey{}
)
