package workflows

import (
	"context"

	"github.com/PolarWolf314/sm4tool/internal/audit"
	"github.com/PolarWolf314/sm4tool/internal/keys"
)

// KeygenOptions configures the keygen workflow.
type KeygenOptions struct {
	// OutputPath, when set, receives the key as a one-line hex file.
	OutputPath string

	// Force overwrites an existing key file.
	Force bool

	// Audit appends an entry to the audit log.
	Audit bool
}

// KeygenResult contains a freshly generated key.
type KeygenResult struct {
	Key         []byte
	Hex         string
	Fingerprint string
	OutputPath  string
}

// Keygen generates a random 16-byte key and optionally saves it.
func Keygen(ctx context.Context, opts KeygenOptions) (*KeygenResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := keys.Generate()
	if err != nil {
		return nil, err
	}

	result := &KeygenResult{
		Key:         key,
		Hex:         keys.FormatHex(key),
		Fingerprint: keys.Fingerprint(key),
	}

	if opts.OutputPath != "" {
		if err := keys.SaveKeyFile(opts.OutputPath, key, opts.Force); err != nil {
			return nil, err
		}
		result.OutputPath = opts.OutputPath
	}

	if opts.Audit {
		entry := audit.NewEntry("keygen")
		entry.KeyFingerprint = result.Fingerprint
		entry.OutputPath = result.OutputPath
		audit.Log(entry)
	}

	return result, nil
}
