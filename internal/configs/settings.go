package configs

import (
	"log"
	"os"
	"path/filepath"
)

// ConfigDirEnv overrides the directory holding config.toml and audit.jsonl.
const ConfigDirEnv = "SM4TOOL_CONFIG_DIR"

type UserSettings struct {
	ConfigDir    string
	ConfigPath   string
	AuditLogPath string
}

var UserSm4Settings *UserSettings

func init() {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("error getting config directory: %s", err)
		}
		dir = filepath.Join(configDir, "sm4tool")
	}

	UserSm4Settings = NewUserSettings(dir)
}

// NewUserSettings lays out the settings paths under dir.
func NewUserSettings(dir string) *UserSettings {
	return &UserSettings{
		ConfigDir:    dir,
		ConfigPath:   filepath.Join(dir, "config.toml"),
		AuditLogPath: filepath.Join(dir, "audit.jsonl"),
	}
}
