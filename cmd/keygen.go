package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/sm4tool/internal/ui"
	"github.com/PolarWolf314/sm4tool/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	keygenOutput string
	keygenForce  bool
	keygenQuiet  bool
	keygenAudit  = true
)

func init() {
	keygenCmd.Flags().StringVarP(&keygenOutput, "output", "o", "", "also write the key to this file (mode 0600)")
	keygenCmd.Flags().BoolVar(&keygenForce, "force", false, "overwrite an existing key file")
	keygenCmd.Flags().BoolVarP(&keygenQuiet, "quiet", "q", false, "print only the key")
	keygenCmd.Flags().BoolVar(&keygenAudit, "audit", true, "record the key fingerprint in the audit log")
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a random SM4 key",
	Long: `Generates 16 random bytes from the operating system's secure random source
and prints them as 32 uppercase hexadecimal characters.

Examples:
  sm4tool keygen
  sm4tool keygen --output ~/.sm4.key
  KEY=$(sm4tool keygen -q)`,
	Args: cobra.NoArgs,
	RunE: runKeygen,
}

func runKeygen(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting keygen command")

	config, err := loadConfig()
	if err != nil {
		return printFailure(err)
	}

	result, err := workflows.Keygen(context.Background(), workflows.KeygenOptions{
		OutputPath: keygenOutput,
		Force:      keygenForce,
		Audit:      keygenAudit && config.Audit.Enabled,
	})
	if err != nil {
		Logger.Errorf("Keygen failed: %v", err)
		return printFailure(err)
	}

	if keygenQuiet {
		fmt.Println(result.Hex)
		return nil
	}

	msg := ui.Success.Sprint("✓") + " Generated a new SM4 key\n" +
		"    Key:         " + ui.Key.Sprint(result.Hex) + "\n" +
		"    Fingerprint: " + ui.Highlight.Sprint(result.Fingerprint) + "\n"
	if result.OutputPath != "" {
		msg += "    Saved to:    " + ui.Path.Sprint(result.OutputPath) + "\n"
	}
	msg += ui.Info.Sprint("→") + " Keep this key safe: files encrypted with it cannot be recovered without it"
	fmt.Println(msg)
	return nil
}
