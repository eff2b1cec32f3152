package okencrypt

import "strings"

// Decrypt reverses Encrypt: it checks for Header, decodes the text-safe
// body, applies the keystream, and verifies the sentinel before un-padding.
//
// It returns ErrNotEncrypted when encoded lacks the header, a
// *DecodingError when the body is not a valid text-safe encoding or the
// recovered plaintext is not valid UTF-8, and ErrWrongKey when the sentinel
// check fails, which is the format's only signal that key is not the key
// the document was encrypted with.
func Decrypt(encoded, key string) (string, error) {
	if !strings.HasPrefix(encoded, Header) {
		return "", ErrNotEncrypted
	}

	body, err := FromSafeString(encoded[len(Header):])
	if err != nil {
		return "", err
	}

	plaintext, err := applyKeystream(key, body)
	if err != nil {
		return "", err
	}

	if len(plaintext) < len(sentinel) || string(plaintext[:len(sentinel)]) != sentinel {
		return "", ErrWrongKey
	}

	return UnpadText(plaintext[len(sentinel):])
}
