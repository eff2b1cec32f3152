package crypto

import (
	"crypto/rand"
	"io"
)

// randReader is the random source used for key generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// GenerateKeyBytes produces KeySize bytes of cryptographically secure
// random key material.
func GenerateKeyBytes() ([]byte, error) {
	r := randReader
	if r == nil {
		r = rand.Reader
	}

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}

	return key, nil
}
