package cryptobox

import "fmt"

// Encoded keys are a one-byte kind, a one-byte curve tag, and the curve's raw key encoding.
const (
	kindPublic  byte = 0x01
	kindPrivate byte = 0x02

	keyHeaderSize = 2
)

func encodeKey(kind byte, c Curve, raw []byte) []byte {
	b := make([]byte, 0, keyHeaderSize+len(raw))
	b = append(b, kind, byte(c))

	return append(b, raw...)
}

// decodeKey checks an encoded key's header and length, returning its curve and a copy of its raw
// encoding. It does not check that the raw encoding is a valid point or scalar.
func decodeKey(kind byte, data []byte) (Curve, []byte, error) {
	if len(data) < keyHeaderSize {
		return 0, nil, fmt.Errorf("%w: too short", ErrInvalidKeyEncoding)
	}

	if data[0] != kind {
		return 0, nil, fmt.Errorf("%w: wrong key kind", ErrInvalidKeyEncoding)
	}

	c := Curve(data[1])

	s, err := c.scheme()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: unknown curve %d", ErrInvalidKeyEncoding, data[1])
	}

	size := s.PublicKeySize()
	if kind == kindPrivate {
		size = s.PrivateKeySize()
	}

	if len(data) != keyHeaderSize+size {
		return 0, nil, fmt.Errorf("%w: %s key must be %d bytes, got %d",
			ErrInvalidKeyEncoding, c, keyHeaderSize+size, len(data))
	}

	raw := make([]byte, size)
	copy(raw, data[keyHeaderSize:])

	return c, raw, nil
}
