package workflows

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/sm4tool/internal/audit"
	"github.com/PolarWolf314/sm4tool/internal/configs"
	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
	"github.com/PolarWolf314/sm4tool/internal/keys"
)

const testKeyHex = "0123456789ABCDEFFEDCBA9876543210"

func setup(t *testing.T) (string, []byte) {
	t.Helper()
	original := configs.UserSm4Settings
	configs.UserSm4Settings = configs.NewUserSettings(t.TempDir())
	t.Cleanup(func() { configs.UserSm4Settings = original })

	key, err := keys.ParseHex(testKeyHex)
	if err != nil {
		t.Fatalf("Failed to parse key: %v", err)
	}
	return t.TempDir(), key
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	dir, key := setup(t)
	contents := map[string][]byte{
		"empty.txt":   {},
		"short.txt":   []byte("hello"),
		"aligned.bin": bytes.Repeat([]byte{0x42}, 32),
		"big.bin":     bytes.Repeat([]byte("0123456789"), 10000),
	}
	var names []string
	for name, data := range contents {
		writeFile(t, filepath.Join(dir, name), data)
		names = append(names, name)
	}

	enc, err := Encrypt(context.Background(), EncryptOptions{
		Patterns: names, BaseDir: dir, Key: key, Suffix: ".sm4", Workers: 4, Audit: true,
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if len(enc.OutputFiles) != len(contents) {
		t.Fatalf("Expected %d outputs, got %d", len(contents), len(enc.OutputFiles))
	}

	// Decrypt into place after removing the originals.
	for _, name := range names {
		os.Remove(filepath.Join(dir, name))
	}
	dec, err := Decrypt(context.Background(), DecryptOptions{
		Patterns: []string{"."}, BaseDir: dir, Key: key, Suffix: ".sm4", Workers: 4, Audit: true,
	})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if len(dec.OutputFiles) != len(contents) {
		t.Fatalf("Expected %d outputs, got %d", len(contents), len(dec.OutputFiles))
	}

	for name, want := range contents {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s: round trip mismatched", name)
		}
	}

	entries, err := History(context.Background(), HistoryOptions{})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Operation != "encrypt" || entries[1].Operation != "decrypt" {
		t.Errorf("Unexpected audit entries: %+v", entries)
	}
	if entries[0].KeyFingerprint != keys.Fingerprint(key) {
		t.Errorf("Expected key fingerprint in audit entry, got %q", entries[0].KeyFingerprint)
	}
}

func TestEncrypt_OutputSizeAndPermissions(t *testing.T) {
	dir, key := setup(t)
	writeFile(t, filepath.Join(dir, "a.txt"), make([]byte, 16))

	res, err := Encrypt(context.Background(), EncryptOptions{
		Patterns: []string{"a.txt"}, BaseDir: dir, Key: key, Suffix: ".sm4",
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	info, err := os.Stat(res.OutputFiles[0])
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 32 {
		t.Errorf("Expected 32 bytes (one data block plus a pad block), got %d", info.Size())
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got %o", info.Mode().Perm())
	}
}

func TestEncrypt_DryRunWritesNothing(t *testing.T) {
	dir, key := setup(t)
	writeFile(t, filepath.Join(dir, "a.txt"), []byte("a"))

	res, err := Encrypt(context.Background(), EncryptOptions{
		Patterns: []string{"a.txt"}, BaseDir: dir, Key: key, Suffix: ".sm4", DryRun: true, Audit: true,
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !res.DryRun || len(res.OutputFiles) != 1 {
		t.Fatalf("Unexpected result: %+v", res)
	}
	if _, err := os.Stat(res.OutputFiles[0]); !os.IsNotExist(err) {
		t.Error("Dry run should not create output files")
	}
	if entries, _ := audit.ReadEntries(); len(entries) != 0 {
		t.Error("Dry run should not write audit entries")
	}
}

func TestEncrypt_RefusesOverwriteWithoutForce(t *testing.T) {
	dir, key := setup(t)
	writeFile(t, filepath.Join(dir, "a.txt"), []byte("a"))
	writeFile(t, filepath.Join(dir, "a.txt.sm4"), []byte("existing"))

	opts := EncryptOptions{Patterns: []string{"a.txt"}, BaseDir: dir, Key: key, Suffix: ".sm4"}
	if _, err := Encrypt(context.Background(), opts); !errors.Is(err, kerrors.ErrOutputExists) {
		t.Errorf("Expected ErrOutputExists, got: %v", err)
	}

	opts.Force = true
	if _, err := Encrypt(context.Background(), opts); err != nil {
		t.Errorf("Expected success with force, got: %v", err)
	}
}

func TestEncrypt_InvalidKey(t *testing.T) {
	dir, _ := setup(t)
	_, err := Encrypt(context.Background(), EncryptOptions{
		Patterns: []string{"a.txt"}, BaseDir: dir, Key: make([]byte, 8), Suffix: ".sm4",
	})
	if !errors.Is(err, kerrors.ErrInvalidKeyLength) {
		t.Errorf("Expected ErrInvalidKeyLength, got: %v", err)
	}
}

func TestEncrypt_NoPatterns(t *testing.T) {
	dir, key := setup(t)
	_, err := Encrypt(context.Background(), EncryptOptions{BaseDir: dir, Key: key, Suffix: ".sm4"})
	if !errors.Is(err, kerrors.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got: %v", err)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	dir, key := setup(t)
	writeFile(t, filepath.Join(dir, "a.txt"), []byte("secret"))
	if _, err := Encrypt(context.Background(), EncryptOptions{
		Patterns: []string{"a.txt"}, BaseDir: dir, Key: key, Suffix: ".sm4",
	}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	os.Remove(filepath.Join(dir, "a.txt"))

	// Try keys until one yields an out-of-range pad byte; 240 of 256
	// trailing values are rejected, so a handful of keys suffices.
	for i := 0; i < 64; i++ {
		wrong := append([]byte(nil), key...)
		wrong[0] ^= byte(i + 1)

		_, err := Decrypt(context.Background(), DecryptOptions{
			Patterns: []string{"a.txt.sm4"}, BaseDir: dir, Key: wrong, Suffix: ".sm4",
		})
		if err == nil {
			os.Remove(filepath.Join(dir, "a.txt"))
			continue
		}
		if !kerrors.IsWrongKeyOrCorrupt(err) || !errors.Is(err, kerrors.ErrDecryptFailed) {
			t.Fatalf("Expected wrapped ErrInvalidPadding, got: %v", err)
		}
		if _, statErr := os.Stat(filepath.Join(dir, "a.txt")); !os.IsNotExist(statErr) {
			t.Error("No output should be written when decryption fails")
		}
		return
	}
	t.Fatal("No wrong key produced a padding error")
}

func TestDecrypt_InvalidLength(t *testing.T) {
	dir, key := setup(t)
	writeFile(t, filepath.Join(dir, "bad.sm4"), []byte("not a block multiple"))
	writeFile(t, filepath.Join(dir, "empty.sm4"), nil)

	for _, name := range []string{"bad.sm4", "empty.sm4"} {
		_, err := Decrypt(context.Background(), DecryptOptions{
			Patterns: []string{name}, BaseDir: dir, Key: key, Suffix: ".sm4",
		})
		if !errors.Is(err, kerrors.ErrInvalidCiphertextLength) {
			t.Errorf("%s: expected ErrInvalidCiphertextLength, got: %v", name, err)
		}
	}
}

func TestDecrypt_CanceledContext(t *testing.T) {
	dir, key := setup(t)
	writeFile(t, filepath.Join(dir, "a.sm4"), make([]byte, 16))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Decrypt(ctx, DecryptOptions{
		Patterns: []string{"a.sm4"}, BaseDir: dir, Key: key, Suffix: ".sm4",
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
}

func TestKeygen(t *testing.T) {
	dir, _ := setup(t)
	path := filepath.Join(dir, "new.key")

	res, err := Keygen(context.Background(), KeygenOptions{OutputPath: path, Audit: true})
	if err != nil {
		t.Fatalf("Keygen failed: %v", err)
	}
	if len(res.Hex) != 32 || len(res.Key) != 16 {
		t.Errorf("Unexpected key: %+v", res)
	}

	loaded, err := keys.LoadKeyFile(path)
	if err != nil {
		t.Fatalf("LoadKeyFile failed: %v", err)
	}
	if !bytes.Equal(loaded, res.Key) {
		t.Error("Saved key does not match generated key")
	}

	if _, err := Keygen(context.Background(), KeygenOptions{OutputPath: path}); !errors.Is(err, kerrors.ErrOutputExists) {
		t.Errorf("Expected ErrOutputExists, got: %v", err)
	}

	entries, err := History(context.Background(), HistoryOptions{Operation: "keygen"})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 1 || entries[0].KeyFingerprint != res.Fingerprint {
		t.Errorf("Unexpected audit entries: %+v", entries)
	}
}

func TestHistory_LimitAndFilter(t *testing.T) {
	setup(t)
	for _, op := range []string{"keygen", "encrypt", "encrypt", "decrypt", "encrypt"} {
		audit.Log(audit.NewEntry(op))
	}

	all, _ := History(context.Background(), HistoryOptions{})
	if len(all) != 5 {
		t.Errorf("Expected 5 entries, got %d", len(all))
	}
	recent, _ := History(context.Background(), HistoryOptions{Limit: 2})
	if len(recent) != 2 || recent[1].Operation != "encrypt" {
		t.Errorf("Unexpected recent entries: %+v", recent)
	}
	enc, _ := History(context.Background(), HistoryOptions{Operation: "encrypt", Limit: 2})
	if len(enc) != 2 {
		t.Errorf("Expected 2 encrypt entries, got %d", len(enc))
	}
}
