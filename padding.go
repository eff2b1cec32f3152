package okencrypt

import (
	"bytes"
	"unicode/utf8"
)

// PadText UTF-8-encodes text and right-pads it with NUL bytes to exactly
// toLength bytes. It returns a *PaddingError when the encoded text is
// longer than toLength.
func PadText(text string, toLength int) ([]byte, error) {
	if len(text) > toLength {
		return nil, &PaddingError{DataLen: len(text), PadLength: toLength}
	}

	padded := make([]byte, toLength)
	copy(padded, text)
	return padded, nil
}

// UnpadText strips all trailing NUL bytes from padded and decodes the rest
// as UTF-8, returning a *DecodingError when the result is not valid UTF-8.
// Plaintext that legitimately ends in NUL bytes does not survive this round
// trip: the format has no way to tell its NULs from padding.
func UnpadText(padded []byte) (string, error) {
	trimmed := bytes.TrimRight(padded, "\x00")
	if !utf8.Valid(trimmed) {
		return "", &DecodingError{Stage: "utf-8"}
	}
	return string(trimmed), nil
}
