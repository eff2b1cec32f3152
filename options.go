package okencrypt

// encryptConfig holds configuration for a single Encrypt call.
type encryptConfig struct {
	padLength int
	pad       bool
}

// EncryptOption configures Encrypt.
type EncryptOption func(*encryptConfig)

// WithPadLength pads the plaintext with NUL bytes to exactly length bytes
// before encryption, hiding the true length of shorter messages so that
// documents of the same class come out the same size. Encrypt fails with a
// *PaddingError when the text is longer than length.
func WithPadLength(length int) EncryptOption {
	return func(c *encryptConfig) {
		c.padLength = length
		c.pad = true
	}
}
