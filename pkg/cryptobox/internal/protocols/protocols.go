// Package protocols contains helper functions for writing the STROBE protocols cryptobox uses.
package protocols

import (
	"encoding/binary"

	"github.com/sammyne/strobe"
)

// RatchetSize determines the amount of state to reset during each ratchet.
//
//	Setting L = sec/8 bytes is sufficient when R ≥ sec/8. That is, set L to 16 bytes or 32
//	bytes for Strobe-128/b and Strobe-256/b, respectively.
const RatchetSize = int(strobe.Bit256) / 8

// New instantiates a new STROBE protocol with the given name and a 256-bit security level.
func New(proto string) *strobe.Strobe {
	s, err := strobe.New(proto, strobe.Bit256)
	if err != nil {
		panic(err)
	}

	return s
}

// Must panics if the given error is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// BigEndianU32 returns n as a 32-bit big endian bit string.
func BigEndianU32(n int) []byte {
	var b [4]byte

	binary.BigEndian.PutUint32(b[:], uint32(n))

	return b[:]
}

// BigEndianU64 returns n as a 64-bit big endian bit string.
func BigEndianU64(n int) []byte {
	var b [8]byte

	binary.BigEndian.PutUint64(b[:], uint64(n))

	return b[:]
}

// Copy returns a copy of the given slice for keying protocols without modifying arguments.
func Copy(b []byte) []byte {
	c := make([]byte, len(b))

	copy(c, b)

	return c
}
