// Package workflows provides high-level orchestration for sm4tool commands.
//
// Workflows tie the cipher, file resolution, key handling and audit log
// together. They know nothing about flags, spinners or colors.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Resolving files, directories and globs
//   - Reading whole files and running the SM4 codec
//   - Writing outputs without clobbering existing files
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Encrypt: encrypts files to <name><suffix>
//   - Decrypt: decrypts <name><suffix> back to <name>
//   - Keygen: generates a random key and optionally saves it
//   - History: reads the audit trail
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	_, err := workflows.Decrypt(ctx, opts)
//	if kerrors.IsWrongKeyOrCorrupt(err) {
//	    // wrong key or corrupted file
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Cancellation is checked between files; a single file is never left half
// written by cancellation.
package workflows
