package cmd

import (
	"fmt"

	logger "github.com/PolarWolf314/sm4tool/internal/logging"
	"github.com/PolarWolf314/sm4tool/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "sm4tool",
		Short: "sm4tool - encrypt and decrypt files with the SM4 block cipher",
		Long: `sm4tool encrypts and decrypts files with SM4 (GB/T 32907-2016) in ECB mode
with PKCS#7 padding.

Keys are 16 bytes, written as 32 hexadecimal characters. Generate one with
'sm4tool keygen' and keep it safe: there is no way to recover a file without it.

Usage:
  sm4tool <command> [flags]

Available Commands:
  keygen     Generate a random key
  encrypt    Encrypt files
  decrypt    Decrypt files
  log        Show the audit log
  config     Manage configuration

Run 'sm4tool help <command>' for more details on a specific command.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if ui.ColorEnabled() {
				figure.NewColorFigure("sm4tool", "slant", "green", true).Print()
			} else {
				figure.NewFigure("sm4tool", "slant", true).Print()
			}
			fmt.Println()
			fmt.Println("Run " + ui.Code.Sprint("sm4tool --help") + " to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables and flag state between tests.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetFlagState(RootCmd)
}

// resetFlagState restores every flag of cmd and its children to its default.
func resetFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		if flag.Changed {
			_ = flag.Value.Set(flag.DefValue)
			flag.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlagState(child)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
