package crypto

const (
	// KeySize is the size of the raw key material in bytes. The keystream
	// cipher is AES-256, so key material is always exactly 32 bytes.
	KeySize = 32

	// EncodedKeySize is the length of text-safe-encoded key material in
	// characters: 32 bytes encode to 52 base32 characters plus 4 padding
	// characters.
	EncodedKeySize = 56
)
