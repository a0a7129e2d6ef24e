package cryptobox

import (
	"errors"
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestPrivateKey_MarshalBinary(t *testing.T) {
	t.Parallel()

	for _, c := range Curves() {
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()

			kp := generate(t, c)

			data, err := kp.Private.MarshalBinary()
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, "kind", kindPrivate, data[0])
			assert.Equal(t, "curve", byte(c), data[1])

			sk, err := ParsePrivateKey(data)
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, "private key", kp.Private.Bytes(), sk.Bytes())
			assert.Equal(t, "public key", true, kp.Public.Equal(sk.PublicKey()))
		})
	}
}

func TestPrivateKey_MarshalText(t *testing.T) {
	t.Parallel()

	kp := generate(t, Ristretto255)

	text, err := kp.Private.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var sk PrivateKey
	if err := sk.UnmarshalText([]byte(strings.ToUpper(string(text)))); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "private key", kp.Private.Bytes(), sk.Bytes())
}

func TestPrivateKey_String(t *testing.T) {
	t.Parallel()

	kp := generate(t, P256)

	s := kp.Private.String()
	if strings.Contains(s, EncodeHex(kp.Private.Bytes())) {
		t.Fatal("string representation contains the private key")
	}

	assert.Equal(t, "string representation", "P-256 private key for "+kp.Public.String(), s)
}

func TestPrivateKey_Destroy(t *testing.T) {
	t.Parallel()

	kp := generate(t, X448)
	kp.Destroy()

	assert.Equal(t, "destroyed key", make([]byte, 56), kp.Private.Bytes())
}

func TestParsePrivateKey_Invalid(t *testing.T) {
	t.Parallel()

	kp := generate(t, Secp256k1)

	pub, err := kp.Public.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	priv, err := kp.Private.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	zero := append([]byte{}, priv[:2]...)
	zero = append(zero, make([]byte, 32)...)

	tests := map[string][]byte{
		"empty":       nil,
		"truncated":   priv[:len(priv)-1],
		"padded":      append(append([]byte{}, priv...), 0),
		"public key":  pub,
		"zero scalar": zero,
	}

	for name, data := range tests {
		if _, err := ParsePrivateKey(data); !errors.Is(err, ErrInvalidKeyEncoding) {
			t.Errorf("%s: expected ErrInvalidKeyEncoding but was %v", name, err)
		}
	}
}
