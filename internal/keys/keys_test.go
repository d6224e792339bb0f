package keys

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
)

const testHex = "0123456789ABCDEFFEDCBA9876543210"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"uppercase", testHex, false},
		{"lowercase", "0123456789abcdeffedcba9876543210", false},
		{"mixed case with whitespace", "  0123456789abcdefFEDCBA9876543210\n", false},
		{"too short", "0123456789ABCDEF", true},
		{"too long", testHex + "00", true},
		{"non-hex character", "0123456789ABCDEFFEDCBA987654321G", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, kerrors.ErrInvalidKeyEncoding) {
					t.Errorf("Expected ErrInvalidKeyEncoding, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if FormatHex(key) != testHex {
				t.Errorf("Expected %s, got %s", testHex, FormatHex(key))
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	a, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(a) != 16 {
		t.Errorf("Expected 16 bytes, got %d", len(a))
	}
	if string(a) == string(b) {
		t.Error("Two generated keys should differ")
	}
	if !regexp.MustCompile(`^[0-9A-F]{32}$`).MatchString(FormatHex(a)) {
		t.Errorf("FormatHex should give 32 uppercase hex characters, got %s", FormatHex(a))
	}
}

func TestFingerprint(t *testing.T) {
	key, _ := ParseHex(testHex)
	fp := Fingerprint(key)
	if len(fp) != 16 {
		t.Errorf("Expected 16 hex characters, got %q", fp)
	}
	if fp != Fingerprint(key) {
		t.Error("Fingerprint should be deterministic")
	}
	other := append([]byte(nil), key...)
	other[0] ^= 1
	if Fingerprint(other) == fp {
		t.Error("Different keys should have different fingerprints")
	}
}

func TestSaveAndLoadKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sm4.key")
	key, _ := ParseHex(testHex)

	if err := SaveKeyFile(path, key, false); err != nil {
		t.Fatalf("SaveKeyFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got %o", info.Mode().Perm())
	}

	loaded, err := LoadKeyFile(path)
	if err != nil {
		t.Fatalf("LoadKeyFile failed: %v", err)
	}
	if FormatHex(loaded) != testHex {
		t.Errorf("Expected %s, got %s", testHex, FormatHex(loaded))
	}

	if err := SaveKeyFile(path, key, false); !errors.Is(err, kerrors.ErrOutputExists) {
		t.Errorf("Expected ErrOutputExists, got: %v", err)
	}
	if err := SaveKeyFile(path, key, true); err != nil {
		t.Errorf("Expected overwrite with force, got: %v", err)
	}
}

func TestLoadKeyFile_SkipsCommentsAndBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sm4.key")
	content := "# project key\n\n  " + testHex + "  \n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	key, err := LoadKeyFile(path)
	if err != nil {
		t.Fatalf("LoadKeyFile failed: %v", err)
	}
	if FormatHex(key) != testHex {
		t.Errorf("Expected %s, got %s", testHex, FormatHex(key))
	}
}

func TestLoadKeyFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadKeyFile(filepath.Join(dir, "missing.key")); err == nil {
		t.Error("Expected error for a missing key file")
	}

	empty := filepath.Join(dir, "empty.key")
	if err := os.WriteFile(empty, []byte("# nothing\n"), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}
	if _, err := LoadKeyFile(empty); !errors.Is(err, kerrors.ErrInvalidKeyEncoding) {
		t.Errorf("Expected ErrInvalidKeyEncoding, got: %v", err)
	}
}

func TestSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sm4.key")
	if err := os.WriteFile(path, []byte(testHex), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	tests := []struct {
		name    string
		source  Source
		wantErr error
	}{
		{"hex", Source{Hex: testHex}, nil},
		{"file", Source{File: path}, nil},
		{"none", Source{}, kerrors.ErrNoKeyProvided},
		{"hex and file", Source{Hex: testHex, File: path}, kerrors.ErrConflictingKeySources},
		{"hex and prompt", Source{Hex: testHex, Prompt: true}, kerrors.ErrConflictingKeySources},
		{"bad hex", Source{Hex: "xyz"}, kerrors.ErrInvalidKeyEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := tt.source.Load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if FormatHex(key) != testHex {
				t.Errorf("Expected %s, got %s", testHex, FormatHex(key))
			}
		})
	}
}
