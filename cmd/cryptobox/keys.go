package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/codahale/cryptobox/pkg/cryptobox"
	"github.com/tidwall/gjson"
)

var errInvalidKeyPair = errors.New("key pair object must have string publicKey and privateKey fields")

// loadKey decodes a --key value: either a hex-encoded shared secret or a JSON key pair object
// holding the caller's private key and the peer's public key, in either the canonical or the
// X.509/PKCS #8 encoding. If the value is neither, it is treated as the path of a file holding one.
func (s *session) loadKey(v string) (cryptobox.KeyMaterial, error) {
	km, err := s.parseKey(v)
	if err == nil {
		return km, nil
	}

	if _, statErr := os.Stat(v); statErr != nil {
		return nil, err
	}

	b, readErr := os.ReadFile(v)
	if readErr != nil {
		return nil, readErr
	}

	return s.parseKey(string(b))
}

func (s *session) parseKey(v string) (cryptobox.KeyMaterial, error) {
	v = strings.TrimSpace(v)

	if !strings.HasPrefix(v, "{") {
		key, err := cryptobox.DecodeHex(v)
		if err != nil {
			return nil, err
		}

		s.log.Debug().Int("key_size", len(key)).Msg("using shared secret")

		return cryptobox.SharedSecret(key), nil
	}

	if !gjson.Valid(v) {
		return nil, fmt.Errorf("%w: malformed JSON", errInvalidKeyPair)
	}

	pub, priv := gjson.Get(v, "publicKey"), gjson.Get(v, "privateKey")
	if pub.Type != gjson.String || priv.Type != gjson.String {
		return nil, errInvalidKeyPair
	}

	kp, err := s.reconstruct(pub.Str, priv.Str)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Stringer("peer", kp.Public).
		Bool("own_key_pair", kp.Matched()).
		Msg("using key agreement")

	return cryptobox.KeyAgreement{Private: kp.Private, Peer: kp.Public}, nil
}

const derSequence = "30"

// reconstruct decodes hex key halves. DER encodings start with a SEQUENCE tag, canonical ones with a
// key kind.
func (s *session) reconstruct(pub, priv string) (*cryptobox.KeyPair, error) {
	if strings.HasPrefix(pub, derSequence) {
		return s.cfg.ReconstructPKIXHex(pub, priv)
	}

	return s.cfg.ReconstructHex(pub, priv)
}

// newBox builds a Box and destroys the key material it was built from.
func newBox(cfg *cryptobox.Config, km cryptobox.KeyMaterial) (*cryptobox.Box, error) {
	switch km := km.(type) {
	case cryptobox.SharedSecret:
		defer cryptobox.Wipe(km)
	case cryptobox.KeyAgreement:
		defer km.Private.Destroy()
	}

	return cfg.NewBox(km)
}
