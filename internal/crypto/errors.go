package crypto

import "errors"

// ErrInvalidKeySize is returned when key material is not exactly KeySize bytes.
var ErrInvalidKeySize = errors.New("invalid key size")
