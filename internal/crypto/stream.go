package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// ApplyKeystream XORs data with the AES-256-CTR keystream for key and
// returns the result. The counter block starts at one and is derived from
// nothing but the key, so the format carries no nonce and the same call
// both encrypts and decrypts.
func ApplyKeystream(key, data []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	iv[aes.BlockSize-1] = 1

	out := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(out, data)

	return out, nil
}
