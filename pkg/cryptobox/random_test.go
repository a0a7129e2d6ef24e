package cryptobox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestRandomBytes(t *testing.T) {
	t.Parallel()

	a, err := RandomBytes(32)
	if err != nil {
		t.Fatal(err)
	}

	b, err := RandomBytes(32)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "length", 32, len(a))

	if bytes.Equal(a, b) {
		t.Fatal("random values repeated")
	}
}

func TestRandomBytes_InvalidSize(t *testing.T) {
	t.Parallel()

	if _, err := RandomBytes(0); !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters but was %v", err)
	}
}

func TestConfig_RandomBytes_EntropyUnavailable(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Rand = bytes.NewReader(make([]byte, 4))

	if _, err := cfg.RandomBytes(16); !errors.Is(err, ErrEntropyUnavailable) {
		t.Fatalf("expected ErrEntropyUnavailable but was %v", err)
	}
}

func TestConfig_NewNonce(t *testing.T) {
	t.Parallel()

	for _, c := range Ciphers() {
		cfg := DefaultConfig()
		cfg.Cipher = c

		nonce, err := cfg.NewNonce()
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, c.String()+" nonce size", c.NonceSize(), len(nonce))
	}
}
