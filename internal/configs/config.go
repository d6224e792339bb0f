package configs

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
)

// DefaultSuffix is appended to encrypted file names.
const DefaultSuffix = ".sm4"

type UserConfig struct {
	Cipher CipherConfig `toml:"cipher"`
	Output OutputConfig `toml:"output"`
	Audit  AuditConfig  `toml:"audit"`
}

type CipherConfig struct {
	// Suffix is appended on encrypt and stripped on decrypt.
	Suffix string `toml:"suffix"`
	// Workers is the number of goroutines per file; 0 means one per CPU.
	Workers int `toml:"workers"`
	// StrictPadding checks every padding byte on decrypt.
	StrictPadding bool `toml:"strict_padding"`
}

type OutputConfig struct {
	Force bool `toml:"force"`
}

type AuditConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultUserConfig returns the configuration used when no file exists.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Cipher: CipherConfig{Suffix: DefaultSuffix},
		Audit:  AuditConfig{Enabled: true},
	}
}

// LoadUserConfig loads the user configuration, falling back to defaults for
// a missing file. Unknown keys are returned alongside the config.
func LoadUserConfig() (*UserConfig, []string, error) {
	config := DefaultUserConfig()

	if _, err := os.Stat(UserSm4Settings.ConfigPath); os.IsNotExist(err) {
		return config, nil, nil
	}

	unknown, err := LoadTOML(UserSm4Settings.ConfigPath, config)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, nil, err
	}

	return config, unknown, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := SaveTOML(UserSm4Settings.ConfigPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// Validate rejects values the commands cannot use.
func (c *UserConfig) Validate() error {
	if c.Cipher.Suffix == "" || !strings.HasPrefix(c.Cipher.Suffix, ".") {
		return fmt.Errorf("%w: cipher.suffix %q must start with a dot", kerrors.ErrInvalidConfig, c.Cipher.Suffix)
	}
	if strings.ContainsAny(c.Cipher.Suffix, `/\`) {
		return fmt.Errorf("%w: cipher.suffix %q must not contain a path separator", kerrors.ErrInvalidConfig, c.Cipher.Suffix)
	}
	if c.Cipher.Workers < 0 {
		return fmt.Errorf("%w: cipher.workers must not be negative, got %d", kerrors.ErrInvalidConfig, c.Cipher.Workers)
	}
	return nil
}

// EffectiveWorkers resolves the zero value to the number of CPUs.
func (c *UserConfig) EffectiveWorkers() int {
	if c.Cipher.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Cipher.Workers
}
