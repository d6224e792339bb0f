package keys

import (
	"fmt"

	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
)

// Source describes where a command takes its key from. Exactly one field
// must be set.
type Source struct {
	Hex    string
	File   string
	Prompt bool
}

// Load resolves the source into key bytes.
func (s Source) Load() ([]byte, error) {
	set := 0
	if s.Hex != "" {
		set++
	}
	if s.File != "" {
		set++
	}
	if s.Prompt {
		set++
	}

	switch {
	case set == 0:
		return nil, kerrors.ErrNoKeyProvided
	case set > 1:
		return nil, fmt.Errorf("%w: use only one of --key, --key-file and --prompt", kerrors.ErrConflictingKeySources)
	case s.Hex != "":
		return ParseHex(s.Hex)
	case s.File != "":
		return LoadKeyFile(s.File)
	default:
		return PromptKey("Enter key (32 hex characters): ")
	}
}
