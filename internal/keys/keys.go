package keys

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
	"github.com/PolarWolf314/sm4tool/internal/sm4"
	"github.com/PolarWolf314/sm4tool/internal/utils"

	"golang.org/x/crypto/blake2b"
)

// HexLength is the length of a hex-encoded key.
const HexLength = 2 * sm4.KeySize

// ParseHex decodes a key from 32 hexadecimal characters. Surrounding
// whitespace is ignored.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) != HexLength {
		return nil, fmt.Errorf("%w: got %d characters", kerrors.ErrInvalidKeyEncoding, len(s))
	}

	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidKeyEncoding, err)
	}
	return key, nil
}

// FormatHex encodes key as uppercase hexadecimal.
func FormatHex(key []byte) string {
	return strings.ToUpper(hex.EncodeToString(key))
}

// Generate returns a new random key from crypto/rand.
func Generate() ([]byte, error) {
	key := make([]byte, sm4.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// Fingerprint returns the first 8 bytes of the key's BLAKE2b-256 digest as
// lowercase hex.
func Fingerprint(key []byte) string {
	sum := blake2b.Sum256(key)
	return hex.EncodeToString(sum[:8])
}

// LoadKeyFile reads a hex key from the first non-empty, non-comment line of
// path. A path of "-" reads from stdin.
func LoadKeyFile(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = utils.ReadStdin()
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return ParseHex(line)
	}
	return nil, fmt.Errorf("%w: key file %s is empty", kerrors.ErrInvalidKeyEncoding, path)
}

// SaveKeyFile writes key as one uppercase hex line, readable only by the
// owner. An existing file is kept unless force is set.
func SaveKeyFile(path string, key []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", kerrors.ErrOutputExists, path)
		}
	}
	return os.WriteFile(path, []byte(FormatHex(key)+"\n"), 0600)
}

// PromptKey reads a hex key from the terminal without echo.
func PromptKey(prompt string) ([]byte, error) {
	input, err := utils.ReadPassphrase(prompt)
	if err != nil {
		return nil, err
	}
	return ParseHex(string(input))
}
