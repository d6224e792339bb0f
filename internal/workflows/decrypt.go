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

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Patterns are the files, directories and globs to decrypt.
	Patterns []string

	// BaseDir resolves relative patterns. Empty means the working directory.
	BaseDir string

	// Key is the 16-byte SM4 key.
	Key []byte

	// Suffix is stripped from each output file name.
	Suffix string

	// Workers is the number of goroutines used per file.
	Workers int

	// StrictPadding checks every padding byte instead of only the last.
	StrictPadding bool

	// Force overwrites existing output files.
	Force bool

	// DryRun lists what would be written without touching the filesystem.
	DryRun bool

	// Audit appends an entry to the audit log on success.
	Audit bool
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// SourceFiles lists the files that were decrypted, in order.
	SourceFiles []string

	// OutputFiles lists the files written, parallel to SourceFiles.
	OutputFiles []string

	// Bytes is the total ciphertext size.
	Bytes int64

	// KeyFingerprint identifies the key used.
	KeyFingerprint string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool
}

// Decrypt decrypts every matched file and writes the plaintext with the
// suffix removed.
//
// A file is fully decrypted and its padding checked before its output is
// written. Returns ErrInvalidCiphertextLength for a file that is empty or
// not whole blocks, and ErrInvalidPadding for a wrong key or corrupted
// file; both are wrapped with ErrDecryptFailed and the file name.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if len(opts.Key) != sm4.KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", kerrors.ErrInvalidKeyLength, sm4.KeySize, len(opts.Key))
	}

	sources, err := resolve(opts.Patterns, opts.BaseDir, opts.Suffix, false)
	if err != nil {
		return nil, err
	}

	result := &DecryptResult{
		KeyFingerprint: keys.Fingerprint(opts.Key),
		DryRun:         opts.DryRun,
	}

	if opts.DryRun {
		for _, src := range sources {
			result.SourceFiles = append(result.SourceFiles, src)
			result.OutputFiles = append(result.OutputFiles, files.DecryptedPath(src, opts.Suffix))
		}
		return result, nil
	}

	codecOpts := []sm4.Option{sm4.WithWorkers(opts.Workers)}
	if opts.StrictPadding {
		codecOpts = append(codecOpts, sm4.WithStrictPadding())
	}
	codec := sm4.NewCodec(codecOpts...)

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		ciphertext, err := os.ReadFile(src)
		if err != nil {
			return result, fmt.Errorf("%w: reading %s: %w", kerrors.ErrDecryptFailed, src, err)
		}

		plaintext, err := codec.Decrypt(ciphertext, opts.Key)
		if err != nil {
			return result, fmt.Errorf("%w: %s: %w", kerrors.ErrDecryptFailed, src, err)
		}

		out := files.DecryptedPath(src, opts.Suffix)
		// #nosec G306 -- decrypted files are ordinary user files
		if err := files.WriteOutput(out, plaintext, 0644, opts.Force); err != nil {
			return result, err
		}

		result.SourceFiles = append(result.SourceFiles, src)
		result.OutputFiles = append(result.OutputFiles, out)
		result.Bytes += int64(len(ciphertext))
	}

	if opts.Audit {
		entry := audit.NewEntry("decrypt")
		entry.Files = result.OutputFiles
		entry.KeyFingerprint = result.KeyFingerprint
		entry.Bytes = result.Bytes
		audit.Log(entry)
	}

	return result, nil
}
