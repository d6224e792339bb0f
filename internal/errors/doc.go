// Package errors provides typed error values for sm4tool.
//
// Sentinel errors let callers handle specific conditions with errors.Is()
// rather than string matching.
//
// # Error Categories
//
//   - Key errors: ErrInvalidKeyLength, ErrInvalidKeyEncoding, ErrNoKeyProvided
//   - Cipher errors: ErrInvalidCiphertextLength, ErrInvalidPadding
//   - File errors: ErrNoFilesFound, ErrFileNotFound, ErrOutputExists
//   - Config errors: ErrInvalidConfig, ErrConfigExists
//
// # Usage
//
// Wrap errors with detail:
//
//	return fmt.Errorf("%w: expected 16 bytes, got %d", errors.ErrInvalidKeyLength, n)
//
// Handle them in the CLI layer:
//
//	if kerrors.IsWrongKeyOrCorrupt(err) {
//	    // "wrong key or corrupted file"
//	}
//
// ErrInvalidPadding covers both a wrong key and a damaged file. Messages
// must name both.
package errors
