package okencrypt

import (
	"regexp"

	"github.com/okpy/encrypt-go/internal/crypto"
)

// KeyLength is the length of an encoded key in characters: 32 bytes of key
// material encode to 52 base32 characters plus the fixed "9999" tail.
const KeyLength = crypto.EncodedKeySize

// keyPattern matches exactly one encoded key. The "9999" suffix is not a
// convention but arithmetic: 32 bytes always base32-encode to 52 characters
// followed by four padding characters.
const keyPattern = "[a-z2-7]{52}9999"

var (
	keyRE     = regexp.MustCompile("^" + keyPattern + "$")
	keyScanRE = regexp.MustCompile(keyPattern)
)

// GenerateKey produces a fresh random key in encoded form. The result
// always satisfies IsValidKey.
func GenerateKey() (string, error) {
	raw, err := crypto.GenerateKeyBytes()
	if err != nil {
		return "", err
	}
	return crypto.ToSafeString(raw), nil
}

// IsValidKey reports whether key has the exact lexical form of an encoded
// key. The check is purely syntactic; it does not decode the key.
func IsValidKey(key string) bool {
	return keyRE.MatchString(key)
}

// FindKeys returns every non-overlapping substring of document that has the
// lexical form of a key, in order of appearance. It is meant for scraping
// keys embedded in larger files or messages.
func FindKeys(document string) []string {
	return keyScanRE.FindAllString(document, -1)
}
