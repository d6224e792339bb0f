package cmd

import (
	"context"
	"strconv"

	"github.com/PolarWolf314/sm4tool/internal/keys"
	"github.com/PolarWolf314/sm4tool/internal/ui"
	"github.com/PolarWolf314/sm4tool/internal/utils"
	"github.com/PolarWolf314/sm4tool/internal/workflows"

	"github.com/spf13/cobra"
)

var decryptFlags cipherFlags

func init() {
	decryptFlags.register(decryptCmd)
	decryptCmd.Flags().BoolVar(&decryptFlags.strictPadding, "strict-padding", false, "check every padding byte, not only the last")
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <file|dir|glob>...",
	Short: "Decrypt SM4 encrypted files",
	Long: `Decrypts each file and writes the result with the .sm4 suffix removed.
Directories and globs only pick up files ending in the suffix.

A failed padding check means either the key is wrong or the file is
corrupted; the two cannot be told apart.

Examples:
  sm4tool decrypt report.pdf.sm4 --key 0123456789ABCDEFFEDCBA9876543210
  sm4tool decrypt docs/ --key-file ~/.sm4.key --force`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecrypt,
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting decrypt command")

	config, err := loadConfig()
	if err != nil {
		return printFailure(err)
	}
	if err := decryptFlags.apply(cmd, config); err != nil {
		return printFailure(err)
	}

	source := keys.Source{Hex: decryptFlags.keyHex, File: decryptFlags.keyFile, Prompt: decryptFlags.prompt}
	key, err := source.Load()
	if err != nil {
		return printFailure(err)
	}
	Logger.Debugf("Loaded key with fingerprint %s", keys.Fingerprint(key))

	spinner, cleanup := startSpinner("Decrypting files...", verbose)
	defer cleanup()

	opts := workflows.DecryptOptions{
		Patterns:      args,
		Key:           key,
		Suffix:        config.Cipher.Suffix,
		Workers:       config.EffectiveWorkers(),
		StrictPadding: config.Cipher.StrictPadding,
		Force:         config.Output.Force,
		DryRun:        decryptFlags.dryRun,
		Audit:         config.Audit.Enabled,
	}
	Logger.Debugf("Decrypt options: suffix=%s workers=%d strict=%t force=%t dry-run=%t",
		opts.Suffix, opts.Workers, opts.StrictPadding, opts.Force, opts.DryRun)

	result, err := workflows.Decrypt(context.Background(), opts)
	if err != nil {
		Logger.Errorf("Decrypt failed: %v", err)
		msg := formatFailure(err)
		if result != nil && len(result.OutputFiles) > 0 {
			msg += "\nFiles written before the failure:" + utils.FormatPaths(result.OutputFiles)
		}
		spinner.FinalMSG = msg
		return reportedError{err}
	}

	if result.DryRun {
		spinner.FinalMSG = ui.Warning.Sprint("[dry-run]") + " Would decrypt " + strconv.Itoa(len(result.SourceFiles)) +
			" file(s) into:" + utils.FormatPaths(result.OutputFiles)
		return nil
	}

	Logger.Infof("Decrypted %d files (%d bytes)", len(result.OutputFiles), result.Bytes)
	spinner.FinalMSG = ui.Success.Sprint("✓") + " Decrypted " + strconv.Itoa(len(result.OutputFiles)) +
		" file(s) " + ui.Muted.Sprint(utils.FormatBytes(result.Bytes)) +
		"\nThe following files were created:" + utils.FormatPaths(result.OutputFiles)
	return nil
}
