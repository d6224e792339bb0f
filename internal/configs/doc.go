// Package configs manages the sm4tool user configuration.
//
// Configuration is a TOML file in the user config directory
// (for example ~/.config/sm4tool/config.toml), or in the directory named
// by SM4TOOL_CONFIG_DIR:
//
//	[cipher]
//	suffix = ".sm4"
//	workers = 0
//	strict_padding = false
//
//	[output]
//	force = false
//
//	[audit]
//	enabled = true
//
// A missing file means defaults. Command-line flags override the file.
//
// # Settings
//
// UserSm4Settings holds the resolved paths and is initialized at startup.
// Tests replace it with NewUserSettings(t.TempDir()).
package configs
