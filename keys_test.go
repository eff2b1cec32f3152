package okencrypt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/okpy/encrypt-go/internal/crypto"
)

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	if len(key) != KeyLength {
		t.Errorf("key length = %d, want %d", len(key), KeyLength)
	}
	if !IsValidKey(key) {
		t.Errorf("GenerateKey() produced invalid key %q", key)
	}
	if !strings.HasSuffix(key, "9999") {
		t.Errorf("key %q does not end in 9999", key)
	}
}

func TestGenerateKey_Uniqueness(t *testing.T) {
	key1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	key2, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	if key1 == key2 {
		t.Error("generated keys are identical")
	}
}

func TestGenerateKey_Deterministic(t *testing.T) {
	restore := crypto.SetRandReaderForTesting(bytes.NewReader(make([]byte, 32)))
	defer restore()

	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	// 32 zero bytes encode to 52 'a' characters plus the "9999" tail.
	expected := strings.Repeat("a", 52) + "9999"
	if key != expected {
		t.Errorf("GenerateKey() = %q, want %q", key, expected)
	}
}

func TestGenerateKey_SourceFailure(t *testing.T) {
	restore := crypto.SetRandReaderForTesting(bytes.NewReader(nil))
	defer restore()

	if _, err := GenerateKey(); err == nil {
		t.Error("expected error from exhausted random source")
	}
}

func TestGenerateKey_DecodesToKeyMaterial(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	raw, err := FromSafeString(key)
	if err != nil {
		t.Fatalf("FromSafeString() error = %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("decoded key material = %d bytes, want 32", len(raw))
	}
}

func TestIsValidKey(t *testing.T) {
	valid := strings.Repeat("a", 52) + "9999"

	tests := []struct {
		name  string
		key   string
		valid bool
	}{
		{"all a", valid, true},
		{"alphabet mix", strings.Repeat("ab27", 13) + "9999", true},
		{"empty", "", false},
		{"too short", strings.Repeat("a", 51) + "9999", false},
		{"too long", strings.Repeat("a", 53) + "9999", false},
		{"uppercase", strings.ToUpper(valid), false},
		{"digit zero", "0" + strings.Repeat("a", 51) + "9999", false},
		{"digit one", "1" + strings.Repeat("a", 51) + "9999", false},
		{"digit eight", "8" + strings.Repeat("a", 51) + "9999", false},
		{"missing tail", strings.Repeat("a", 56), false},
		{"short tail", strings.Repeat("a", 52) + "999", false},
		{"surrounding spaces", " " + valid + " ", false},
		{"trailing newline", valid + "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidKey(tt.key); got != tt.valid {
				t.Errorf("IsValidKey(%q) = %v, want %v", tt.key, got, tt.valid)
			}
		})
	}
}

func TestFindKeys(t *testing.T) {
	key1 := strings.Repeat("a", 52) + "9999"
	key2 := strings.Repeat("b", 52) + "9999"

	tests := []struct {
		name     string
		document string
		expected []string
	}{
		{"bare key", key1, []string{key1}},
		{"embedded", "prefix " + key1 + " suffix", []string{key1}},
		{"two keys in order", key1 + "\n" + key2, []string{key1, key2}},
		{"adjacent keys", key1 + key2, []string{key1, key2}},
		{"repeated key", key1 + " " + key1, []string{key1, key1}},
		{"oversized run", "a" + key1, []string{key1}},
		{"across lines", "note:\n" + key2 + "\nregards", []string{key2}},
		{"no keys", "nothing to see here", nil},
		{"uppercase ignored", strings.ToUpper(key1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindKeys(tt.document)
			if len(got) != len(tt.expected) {
				t.Fatalf("FindKeys() returned %d keys, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("FindKeys()[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFindKeys_GeneratedKey(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	keys := FindKeys("the key is " + key + ", keep it safe")
	if len(keys) != 1 || keys[0] != key {
		t.Errorf("FindKeys() = %v, want exactly %q", keys, key)
	}
}
