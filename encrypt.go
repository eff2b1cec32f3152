package okencrypt

import (
	"fmt"

	"github.com/okpy/encrypt-go/internal/crypto"
)

// Encrypt encrypts text under key and wraps the result in the container
// format: Header followed by the text-safe encoding of the ciphertext.
//
// Encryption is deterministic: the same key and text always produce the
// same output, and two messages encrypted under one key share a keystream.
// Callers who need repeated encryptions to be unlinkable must use a fresh
// key per message.
//
// With WithPadLength the plaintext is NUL-padded before encryption, so
// shorter messages of the same class come out the same size; Encrypt then
// fails with a *PaddingError when the text exceeds the requested length.
func Encrypt(text, key string, opts ...EncryptOption) (string, error) {
	var cfg encryptConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	payload := []byte(text)
	if cfg.pad {
		var err error
		payload, err = PadText(text, cfg.padLength)
		if err != nil {
			return "", err
		}
	}

	buf := make([]byte, 0, len(sentinel)+len(payload))
	buf = append(buf, sentinel...)
	buf = append(buf, payload...)

	ciphertext, err := applyKeystream(key, buf)
	if err != nil {
		return "", err
	}

	return Header + crypto.ToSafeString(ciphertext), nil
}

// applyKeystream decodes key and runs data through the keyed stream cipher.
// Malformed key material surfaces the primitive's own error, wrapped with
// context; keys accepted by IsValidKey never fail here.
func applyKeystream(key string, data []byte) ([]byte, error) {
	raw, err := crypto.FromSafeString(key)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}

	out, err := crypto.ApplyKeystream(raw, data)
	if err != nil {
		return nil, fmt.Errorf("apply keystream: %w", err)
	}

	return out, nil
}
