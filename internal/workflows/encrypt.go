package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/sm4tool/internal/audit"
	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
	"github.com/PolarWolf314/sm4tool/internal/files"
	"github.com/PolarWolf314/sm4tool/internal/keys"
	"github.com/PolarWolf314/sm4tool/internal/sm4"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Patterns are the files, directories and globs to encrypt.
	Patterns []string

	// BaseDir resolves relative patterns. Empty means the working directory.
	BaseDir string

	// Key is the 16-byte SM4 key.
	Key []byte

	// Suffix is appended to each output file name.
	Suffix string

	// Workers is the number of goroutines used per file.
	Workers int

	// Force overwrites existing output files.
	Force bool

	// DryRun lists what would be written without touching the filesystem.
	DryRun bool

	// Audit appends an entry to the audit log on success.
	Audit bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// SourceFiles lists the files that were encrypted, in order.
	SourceFiles []string

	// OutputFiles lists the files written, parallel to SourceFiles.
	OutputFiles []string

	// Bytes is the total plaintext size.
	Bytes int64

	// KeyFingerprint identifies the key used.
	KeyFingerprint string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool
}

// Encrypt encrypts every matched file with SM4-ECB and writes the
// ciphertext next to it with Suffix appended.
//
// Returns ErrNoFilesFound or ErrFileNotFound if the patterns match nothing,
// ErrInvalidKeyLength for a bad key and ErrOutputExists when an output file
// is present without Force. Files written before a failure are listed in
// the returned result.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if len(opts.Key) != sm4.KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", kerrors.ErrInvalidKeyLength, sm4.KeySize, len(opts.Key))
	}

	sources, err := resolve(opts.Patterns, opts.BaseDir, opts.Suffix, true)
	if err != nil {
		return nil, err
	}

	result := &EncryptResult{
		KeyFingerprint: keys.Fingerprint(opts.Key),
		DryRun:         opts.DryRun,
	}

	if opts.DryRun {
		for _, src := range sources {
			result.SourceFiles = append(result.SourceFiles, src)
			result.OutputFiles = append(result.OutputFiles, files.EncryptedPath(src, opts.Suffix))
		}
		return result, nil
	}

	codec := sm4.NewCodec(sm4.WithWorkers(opts.Workers))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		plaintext, err := os.ReadFile(src)
		if err != nil {
			return result, fmt.Errorf("%w: reading %s: %w", kerrors.ErrEncryptFailed, src, err)
		}

		ciphertext, err := codec.Encrypt(plaintext, opts.Key)
		if err != nil {
			return result, fmt.Errorf("%w: %s: %w", kerrors.ErrEncryptFailed, src, err)
		}

		out := files.EncryptedPath(src, opts.Suffix)
		if err := files.WriteOutput(out, ciphertext, 0600, opts.Force); err != nil {
			return result, err
		}

		result.SourceFiles = append(result.SourceFiles, src)
		result.OutputFiles = append(result.OutputFiles, out)
		result.Bytes += int64(len(plaintext))
	}

	if opts.Audit {
		entry := audit.NewEntry("encrypt")
		entry.Files = result.OutputFiles
		entry.KeyFingerprint = result.KeyFingerprint
		entry.Bytes = result.Bytes
		audit.Log(entry)
	}

	return result, nil
}

// resolve finds the input files relative to baseDir or the working directory.
func resolve(patterns []string, baseDir, suffix string, forEncryption bool) ([]string, error) {
	if len(patterns) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		baseDir = wd
	}

	return files.Resolve(patterns, baseDir, suffix, forEncryption)
}
