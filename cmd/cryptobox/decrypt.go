package main

import (
	"strings"

	"github.com/codahale/cryptobox/pkg/cryptobox"
)

type decryptCmd struct {
	Key  string `required:"" help:"A hex-encoded shared secret, a JSON key pair object, or the path to either."`
	IV   string `name:"iv" help:"The hex-encoded nonce. If omitted, the nonce is read from the start of the ciphertext."`
	AAD  string `name:"aad" help:"Hex-encoded additional data to authenticate."`
	Data string `arg:"" default:"-" help:"The hex-encoded ciphertext, or - to read it from stdin."`
}

func (cmd *decryptCmd) Run(s *session) error {
	box, ad, err := openBox(s, cmd.Key, cmd.AAD)
	if err != nil {
		return err
	}

	data, err := s.readData(cmd.Data)
	if err != nil {
		return err
	}

	ciphertext, err := cryptobox.DecodeHex(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}

	var plaintext []byte

	if cmd.IV == "" {
		plaintext, err = box.Open(ciphertext, ad)
	} else {
		var nonce []byte

		if nonce, err = cryptobox.DecodeHex(cmd.IV); err != nil {
			return err
		}

		plaintext, err = box.DecryptWithAD(nonce, ciphertext, ad)
	}

	if err != nil {
		return err
	}

	s.log.Debug().Int("plaintext_size", len(plaintext)).Msg("decrypted")

	_, err = s.stdout.Write(plaintext)

	return err
}
