package errors

import "errors"

// Key errors indicate a key that cannot be used.
var (
	// ErrInvalidKeyLength indicates the key is not exactly 16 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidKeyEncoding indicates the key text is not 32 hexadecimal characters.
	ErrInvalidKeyEncoding = errors.New("key must be 32 hexadecimal characters")

	// ErrNoKeyProvided indicates none of the key sources was given.
	ErrNoKeyProvided = errors.New("no key provided")

	// ErrConflictingKeySources indicates more than one key source was given.
	ErrConflictingKeySources = errors.New("more than one key source provided")
)

// Cipher errors indicate input the cipher rejects. They are terminal for the
// requested operation and no partial output is produced.
var (
	// ErrInvalidCiphertextLength indicates the ciphertext is empty or not a
	// whole number of 16-byte blocks.
	ErrInvalidCiphertextLength = errors.New("invalid ciphertext length")

	// ErrInvalidPadding indicates the decrypted pad length is 0 or above 16.
	// This happens with a wrong key or corrupted ciphertext; the two cannot
	// be told apart.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrEncryptFailed indicates file encryption failed.
	ErrEncryptFailed = errors.New("failed to encrypt file")

	// ErrDecryptFailed indicates file decryption failed.
	ErrDecryptFailed = errors.New("failed to decrypt file")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrOutputExists indicates the output file exists and overwriting was not requested.
	ErrOutputExists = errors.New("output file already exists")
)

// Config errors indicate an unusable configuration file.
var (
	// ErrInvalidConfig indicates the configuration is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrConfigExists indicates a configuration file is already present.
	ErrConfigExists = errors.New("configuration file already exists")
)

// IsWrongKeyOrCorrupt reports whether err means the ciphertext could not be
// decrypted with the given key, either because the key is wrong or because
// the data is damaged.
func IsWrongKeyOrCorrupt(err error) bool {
	return errors.Is(err, ErrInvalidPadding)
}
