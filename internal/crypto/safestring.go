package crypto

import (
	"encoding/base32"
	"strings"
)

// ToSafeString encodes raw bytes into the text-safe alphabet: RFC 4648
// base32, folded to lowercase, with the padding character '=' replaced by
// '9' so the result stays within a single homogeneous character class.
func ToSafeString(data []byte) string {
	encoded := base32.StdEncoding.EncodeToString(data)
	return strings.ToLower(strings.ReplaceAll(encoded, "=", "9"))
}

// FromSafeString decodes a text-safe string back to raw bytes. Input case
// is ignored. The returned error is the underlying base32 error when the
// input contains non-alphabet characters or has the wrong padding length.
func FromSafeString(s string) ([]byte, error) {
	// The stdlib decoder skips \r and \n; the encoding has no whitespace.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, base32.CorruptInputError(i)
	}
	unsafe := strings.ReplaceAll(strings.ToUpper(s), "9", "=")
	return base32.StdEncoding.DecodeString(unsafe)
}
