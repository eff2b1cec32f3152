// Package crypto implements the primitives behind the encrypted-text
// container format: the text-safe base32 transform used for keys and
// ciphertext bodies, and the fixed-counter AES-256-CTR keystream.
//
// # Text-Safe Encoding
//
// [ToSafeString] and [FromSafeString] map raw bytes to RFC 4648 base32,
// folded to lowercase, with the '=' padding character replaced by '9'. The
// result stays within a single homogeneous alphabet ([a-z2-7] plus '9'),
// which keeps encoded values regex-friendly and safe to embed in larger
// documents. The transform is bijective for all inputs, including empty.
//
// # Keystream
//
// [ApplyKeystream] runs AES-256 in counter mode as a stream cipher. The
// counter block starts at one, so the stream is fully determined by the key
// alone: the format carries no nonce, and applying the keystream a second
// time restores the input. The determinism is a property of the container
// format; its consequences are documented in the root package.
//
// # Key Material
//
// [GenerateKeyBytes] draws KeySize bytes from crypto/rand. Tests may
// substitute the source with [SetRandReaderForTesting].
package crypto
