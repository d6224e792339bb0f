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

var encryptFlags cipherFlags

func init() {
	encryptFlags.register(encryptCmd)
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <file|dir|glob>...",
	Short: "Encrypt files with SM4",
	Long: `Encrypts each file with SM4-ECB and PKCS#7 padding, writing <file>.sm4
next to it. The original file is left in place.

Examples:
  sm4tool encrypt report.pdf --key 0123456789ABCDEFFEDCBA9876543210
  sm4tool encrypt docs/ --key-file ~/.sm4.key
  sm4tool encrypt 'photos/**/*.jpg' --prompt
  sm4tool encrypt notes.txt --key-file - < key.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncrypt,
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting encrypt command")

	config, err := loadConfig()
	if err != nil {
		return printFailure(err)
	}
	if err := encryptFlags.apply(cmd, config); err != nil {
		return printFailure(err)
	}

	// Read the key before the spinner starts so a prompt stays visible.
	source := keys.Source{Hex: encryptFlags.keyHex, File: encryptFlags.keyFile, Prompt: encryptFlags.prompt}
	key, err := source.Load()
	if err != nil {
		return printFailure(err)
	}
	Logger.Debugf("Loaded key with fingerprint %s", keys.Fingerprint(key))

	spinner, cleanup := startSpinner("Encrypting files...", verbose)
	defer cleanup()

	opts := workflows.EncryptOptions{
		Patterns: args,
		Key:      key,
		Suffix:   config.Cipher.Suffix,
		Workers:  config.EffectiveWorkers(),
		Force:    config.Output.Force,
		DryRun:   encryptFlags.dryRun,
		Audit:    config.Audit.Enabled,
	}
	Logger.Debugf("Encrypt options: suffix=%s workers=%d force=%t dry-run=%t", opts.Suffix, opts.Workers, opts.Force, opts.DryRun)

	result, err := workflows.Encrypt(context.Background(), opts)
	if err != nil {
		Logger.Errorf("Encrypt failed: %v", err)
		msg := formatFailure(err)
		if result != nil && len(result.OutputFiles) > 0 {
			msg += "\nFiles written before the failure:" + utils.FormatPaths(result.OutputFiles)
		}
		spinner.FinalMSG = msg
		return reportedError{err}
	}

	if result.DryRun {
		spinner.FinalMSG = ui.Warning.Sprint("[dry-run]") + " Would encrypt " + strconv.Itoa(len(result.SourceFiles)) +
			" file(s) into:" + utils.FormatPaths(result.OutputFiles)
		return nil
	}

	Logger.Infof("Encrypted %d files (%d bytes)", len(result.OutputFiles), result.Bytes)
	spinner.FinalMSG = ui.Success.Sprint("✓") + " Encrypted " + strconv.Itoa(len(result.OutputFiles)) +
		" file(s) " + ui.Muted.Sprint(utils.FormatBytes(result.Bytes)) + " with key " + ui.Highlight.Sprint(result.KeyFingerprint) +
		"\nThe following files were created:" + utils.FormatPaths(result.OutputFiles) +
		ui.Info.Sprint("→") + " Decrypt them with " + ui.Code.Sprint("sm4tool decrypt") + " and the same key"
	return nil
}
