package cryptobox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestGenerateKeyPair(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "public curve", P256, kp.Public.Curve())
	assert.Equal(t, "private curve", P256, kp.Private.Curve())
	assert.Equal(t, "matched", true, kp.Matched())

	other, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	if kp.Public.Equal(other.Public) {
		t.Fatal("generated the same key pair twice")
	}
}

func TestGenerateKeyPair_EntropyUnavailable(t *testing.T) {
	t.Parallel()

	for _, c := range Curves() {
		cfg := DefaultConfig()
		cfg.Curve = c
		cfg.Rand = bytes.NewReader(make([]byte, 8))

		if _, err := cfg.GenerateKeyPair(); !errors.Is(err, ErrEntropyUnavailable) {
			t.Errorf("%s: expected ErrEntropyUnavailable but was %v", c, err)
		}
	}
}

func TestGenerateKeyPair_Deterministic(t *testing.T) {
	t.Parallel()

	seed := bytes.Repeat([]byte{0x42}, 64)

	cfg := DefaultConfig()
	cfg.Curve = Ristretto255

	cfg.Rand = bytes.NewReader(seed)

	a, err := cfg.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	cfg.Rand = bytes.NewReader(seed)

	b, err := cfg.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "public key", a.Public.String(), b.Public.String())
}

func TestReconstruct(t *testing.T) {
	t.Parallel()

	for _, c := range Curves() {
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Curve = c

			alice := generate(t, c)
			bob := generate(t, c)

			pub, _ := alice.Public.MarshalBinary()
			priv, _ := alice.Private.MarshalBinary()

			kp, err := cfg.Reconstruct(pub, priv)
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, "matched", true, kp.Matched())

			// The reconstructed pair agrees with Bob exactly as the original does.
			original, err := cfg.FromKeyAgreement(alice.Private, bob.Public)
			if err != nil {
				t.Fatal(err)
			}

			reconstructed, err := cfg.FromKeyAgreement(kp.Private, bob.Public)
			if err != nil {
				t.Fatal(err)
			}

			nonce := make([]byte, original.NonceSize())

			ciphertext, err := original.Encrypt(nonce, []byte("welcome to the jungle"))
			if err != nil {
				t.Fatal(err)
			}

			plaintext, err := reconstructed.Decrypt(nonce, ciphertext)
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, "plaintext", []byte("welcome to the jungle"), plaintext)
		})
	}
}

func TestReconstruct_PeerPublicKey(t *testing.T) {
	t.Parallel()

	alice := generate(t, P256)
	bob := generate(t, P256)

	kp, err := ReconstructHex(mustText(t, bob.Public), mustText(t, alice.Private))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "matched", false, kp.Matched())
}

func TestReconstruct_CurveMismatch(t *testing.T) {
	t.Parallel()

	a := generate(t, P256)
	b := generate(t, P384)

	pub, _ := b.Public.MarshalBinary()
	priv, _ := a.Private.MarshalBinary()

	if _, err := Reconstruct(pub, priv); !errors.Is(err, ErrInvalidKeyEncoding) {
		t.Fatalf("expected ErrInvalidKeyEncoding but was %v", err)
	}

	pub, _ = b.Public.MarshalBinary()
	priv, _ = b.Private.MarshalBinary()

	// Both halves agree with each other, but not with the configured curve.
	if _, err := Reconstruct(pub, priv); !errors.Is(err, ErrInvalidKeyEncoding) {
		t.Fatalf("expected ErrInvalidKeyEncoding but was %v", err)
	}
}

func TestReconstruct_Swapped(t *testing.T) {
	t.Parallel()

	kp := generate(t, X25519)

	cfg := DefaultConfig()
	cfg.Curve = X25519

	pub, _ := kp.Public.MarshalBinary()
	priv, _ := kp.Private.MarshalBinary()

	if _, err := cfg.Reconstruct(priv, pub); !errors.Is(err, ErrInvalidKeyEncoding) {
		t.Fatalf("expected ErrInvalidKeyEncoding but was %v", err)
	}
}

func TestReconstructHex_InvalidHex(t *testing.T) {
	t.Parallel()

	kp := generate(t, P256)

	_, err := ReconstructHex("xyz", mustText(t, kp.Private))

	assert.Equal(t, "key encoding error", true, errors.Is(err, ErrInvalidKeyEncoding))
	assert.Equal(t, "encoding error", true, errors.Is(err, ErrInvalidEncoding))
}

func mustText(t *testing.T, m interface{ MarshalText() ([]byte, error) }) string {
	t.Helper()

	text, err := m.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	return string(text)
}
