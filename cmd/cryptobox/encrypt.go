package main

import (
	"github.com/codahale/cryptobox/pkg/cryptobox"
)

type encryptCmd struct {
	Key  string `required:"" help:"A hex-encoded shared secret, a JSON key pair object, or the path to either."`
	IV   string `name:"iv" help:"The hex-encoded nonce. If omitted, a random nonce is prepended to the ciphertext."`
	AAD  string `name:"aad" help:"Hex-encoded additional data to authenticate."`
	Data string `arg:"" default:"-" help:"The plaintext, or - to read it from stdin."`
}

func (cmd *encryptCmd) Run(s *session) error {
	box, ad, err := openBox(s, cmd.Key, cmd.AAD)
	if err != nil {
		return err
	}

	plaintext, err := s.readData(cmd.Data)
	if err != nil {
		return err
	}

	var ciphertext []byte

	if cmd.IV == "" {
		ciphertext, err = box.Seal(plaintext, ad)
	} else {
		var nonce []byte

		if nonce, err = cryptobox.DecodeHex(cmd.IV); err != nil {
			return err
		}

		ciphertext, err = box.EncryptWithAD(nonce, plaintext, ad)
	}

	if err != nil {
		return err
	}

	s.log.Debug().
		Int("plaintext_size", len(plaintext)).
		Int("ciphertext_size", len(ciphertext)).
		Msg("encrypted")

	return s.println(cryptobox.EncodeHex(ciphertext))
}

// openBox builds a Box from a --key value and decodes the additional data.
func openBox(s *session, key, aad string) (*cryptobox.Box, []byte, error) {
	km, err := s.loadKey(key)
	if err != nil {
		return nil, nil, err
	}

	box, err := newBox(s.cfg, km)
	if err != nil {
		return nil, nil, err
	}

	ad, err := cryptobox.DecodeHex(aad)
	if err != nil {
		return nil, nil, err
	}

	return box, ad, nil
}
