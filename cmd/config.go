package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sm4tool configuration",
	Long: `Provides commands for managing the user configuration file.

The file sets defaults for the encrypted file suffix, worker count, strict
padding checks, overwriting and audit logging. Flags always win over it.

Examples:
  # Write a config file with the defaults
  sm4tool config init

  # Show the effective configuration
  sm4tool config show`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}
