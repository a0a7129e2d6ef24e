package cryptobox

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// EncodeHex returns b as lowercase hexadecimal, two characters per byte.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes hexadecimal text in either case. It returns ErrInvalidEncoding if s has an odd
// length or contains a non-hex character.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		if errors.Is(err, hex.ErrLength) {
			return nil, fmt.Errorf("%w: odd length", ErrInvalidEncoding)
		}

		return nil, fmt.Errorf("%w: non-hex character", ErrInvalidEncoding)
	}

	return b, nil
}
