// Package rng provides the underlying STROBE protocol for cryptobox's RNG.
//
// At startup, a STROBE protocol is initialized:
//
//	INIT('cryptobox.rng', level=256)
//
// When a block of random data is required, a block B of equivalent size is read from the host
// machine's RNG, and the following operations performed:
//
//	AD(BE_U64(LEN(B)), meta=true)
//	KEY(B)
//	PRF(LEN(B)) -> B
//	RATCHET(32)
//
// This insulates cryptobox somewhat against compromised RNGs, but at the end of the day this is
// still a deterministic process.
package rng

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/codahale/cryptobox/pkg/cryptobox/internal/protocols"
	"github.com/sammyne/strobe"
)

// Read is a helper function that calls Reader.Read using io.ReadFull. On return, n == len(b) if and
// only if err == nil.
func Read(b []byte) (int, error) {
	return io.ReadFull(Reader, b)
}

// Reader is a global, shared instance of a cryptographically secure random number generator. It is
// safe for concurrent use.
//
//nolint:gochecknoglobals // need a singleton
var Reader io.Reader = New(rand.Reader)

// New returns a STROBE-hardened reader which draws its entropy from src.
func New(src io.Reader) io.Reader {
	return &reader{src: src, rng: protocols.New("cryptobox.rng")}
}

type reader struct {
	mu  sync.Mutex
	src io.Reader
	rng *strobe.Strobe
}

func (r *reader) Read(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Read a new block of data from the underlying RNG.
	if _, err := io.ReadFull(r.src, p); err != nil {
		return 0, err
	}

	// Include length of PRF request as associated data.
	protocols.Must(r.rng.AD(protocols.BigEndianU64(len(p)), &strobe.Options{Meta: true}))

	// Re-key the protocol with the block.
	protocols.Must(r.rng.KEY(p, false))

	// Return the results of the PRF.
	protocols.Must(r.rng.PRF(p, false))

	// Ratchet the state of the RNG to prevent rollback.
	protocols.Must(r.rng.RATCHET(protocols.RatchetSize))

	return len(p), nil
}
