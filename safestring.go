package okencrypt

import "github.com/okpy/encrypt-go/internal/crypto"

// ToSafeString encodes raw bytes into the text-safe alphabet used throughout
// the format: lowercase RFC 4648 base32 with '9' standing in for the '='
// padding character. Keys and ciphertext bodies are both encoded this way.
func ToSafeString(data []byte) string {
	return crypto.ToSafeString(data)
}

// FromSafeString is the inverse of ToSafeString, so
// FromSafeString(ToSafeString(b)) returns b for every byte sequence. Input
// case is ignored. It returns a *DecodingError when the input is not a
// valid text-safe encoding.
func FromSafeString(s string) ([]byte, error) {
	data, err := crypto.FromSafeString(s)
	if err != nil {
		return nil, &DecodingError{Stage: "safe-string", Err: err}
	}
	return data, nil
}
