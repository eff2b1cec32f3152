package okencrypt

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrNotEncrypted is returned by Decrypt when the input does not begin
	// with Header and therefore is not in the container format.
	ErrNotEncrypted = errors.New("input does not start with the encryption header")

	// ErrWrongKey is returned by Decrypt when the decrypted sentinel does
	// not match: the key differs from the one the document was encrypted
	// with, or the ciphertext was corrupted. The format cannot tell the two
	// apart.
	ErrWrongKey = errors.New("wrong key or corrupted ciphertext")

	// ErrBadEncoding is matched, via errors.Is, by every DecodingError.
	ErrBadEncoding = errors.New("malformed encoding")
)

// PaddingError is returned by PadText and Encrypt when the UTF-8 encoding of
// the text is longer than the requested padded length.
type PaddingError struct {
	// DataLen is the byte length of the encoded text.
	DataLen int
	// PadLength is the requested padded length.
	PadLength int
}

func (e *PaddingError) Error() string {
	return fmt.Sprintf("cannot pad data of length %d to size %d", e.DataLen, e.PadLength)
}

// DecodingError is returned when a document or decrypted payload cannot be
// decoded, either because the text-safe encoding is malformed or because the
// un-padded plaintext is not valid UTF-8.
type DecodingError struct {
	// Stage identifies the decode step that failed: "safe-string" or "utf-8".
	Stage string
	// Err is the underlying error, if any.
	Err error
}

func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding failed at %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("decoding failed at %s", e.Stage)
}

// Unwrap returns the underlying error.
func (e *DecodingError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodingError) Is(target error) bool {
	return target == ErrBadEncoding
}
