package crypto

import "io"

// SetRandReaderForTesting sets the random reader used by GenerateKeyBytes.
// It is intended for tests that need deterministic key material and returns
// a function that restores the original reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
