// Package okencrypt implements a minimal encrypted-text container format:
// plaintext encrypted under a fixed symmetric cipher, wrapped in a
// recognizable banner so encrypted and plain documents are trivially told
// apart, with a built-in check that detects decryption under the wrong key.
//
// Basic usage:
//
//	key, err := okencrypt.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	encrypted, err := okencrypt.Encrypt("attack at dawn", key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Later, possibly after scraping the key out of another document:
//	text, err := okencrypt.Decrypt(encrypted, key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text) // attack at dawn
//
// # Wire Format
//
// An encrypted document is plain text. It starts with [Header], a fixed
// banner line followed by a rule of 100 dashes. The remainder is the
// text-safe encoding (lowercase base32 with '9' as the padding character)
// of the ciphertext. The ciphertext is the AES-256-CTR encryption, counter
// starting at one, of a fixed 16-byte sentinel followed by the plaintext
// bytes. [IsEncrypted] sniffs the banner; [Decrypt] verifies the sentinel
// and returns [ErrWrongKey] when it does not survive decryption.
//
// # Keys
//
// A key is the text-safe encoding of 32 random bytes: 52 characters from
// [a-z2-7] with a fixed "9999" tail, [KeyLength] characters in all. The
// restricted alphabet makes keys easy to match lexically, so they can be
// embedded in and recovered from larger documents: [IsValidKey] checks a
// single candidate and [FindKeys] scrapes every key out of a block of text.
//
// # Padding
//
// Encrypting with [WithPadLength] pads the plaintext with trailing NUL
// bytes to a fixed size before encryption, hiding the length of shorter
// messages. [Decrypt] strips all trailing NUL bytes, which means plaintext
// that itself ends in NUL cannot round-trip: the format has no way to
// distinguish such bytes from padding.
//
// # Security Properties
//
// The format provides confidentiality against parties who lack the key,
// and nothing more. There is no authentication: ciphertext can be modified
// without detection, and the sentinel check catches wrong keys and gross
// corruption only. Encryption is deterministic: the counter always starts
// at one and no per-message nonce exists, so every message encrypted under
// one key reuses the same keystream prefix, and equal messages produce
// equal ciphertexts. Use a fresh key per message when that linkability
// matters. These are properties of the wire format itself and are kept for
// compatibility.
//
// All operations are pure functions of their inputs; the package holds no
// state and is safe for concurrent use. The only I/O is the read from the
// operating system's random source in [GenerateKey].
package okencrypt
