package okencrypt

import "strings"

// Header is the banner that begins every encrypted document. Everything
// after it is the text-safe encoding of the ciphertext.
var Header = "OKPY ENCRYPTED FILE FOLLOWS\n" + strings.Repeat("-", 100) + "\n"

// sentinel is prepended to the plaintext before encryption so Decrypt can
// tell a wrong key from a right one: any decryption that does not reproduce
// it is rejected.
const sentinel = "0000000000000000"

// IsEncrypted reports whether text begins with the encryption header. This
// is a format sniff only; it makes no claim about the rest of the document.
func IsEncrypted(text string) bool {
	return strings.HasPrefix(text, Header)
}
