package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/sm4tool/internal/configs"
	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
	"github.com/PolarWolf314/sm4tool/internal/ui"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// reportedError marks an error whose message has already been printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user, so main
// only needs to set the exit code.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines; cleanup adds one.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Printed to stdout so tests can capture it.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// printFailure prints the user-facing message for err and marks it reported.
func printFailure(err error) error {
	fmt.Print(ui.EnsureNewline(formatFailure(err)))
	return reportedError{err}
}

// formatFailure turns a workflow error into a message for the user.
func formatFailure(err error) string {
	cross := ui.Error.Sprint("✗")
	arrow := ui.Info.Sprint("→")

	switch {
	case errors.Is(err, kerrors.ErrNoKeyProvided):
		return cross + " No key provided\n" +
			arrow + " Pass " + ui.Flag.Sprint("--key") + ", " + ui.Flag.Sprint("--key-file") + " or " + ui.Flag.Sprint("--prompt") +
			", or run " + ui.Code.Sprint("sm4tool keygen") + " to create one"

	case errors.Is(err, kerrors.ErrConflictingKeySources):
		return cross + " Use only one of " + ui.Flag.Sprint("--key") + ", " + ui.Flag.Sprint("--key-file") + " and " + ui.Flag.Sprint("--prompt")

	case errors.Is(err, kerrors.ErrInvalidKeyEncoding), errors.Is(err, kerrors.ErrInvalidKeyLength):
		return cross + " Malformed key: a key is exactly 32 hexadecimal characters (16 bytes)\n" +
			ui.Muted.Sprint(err.Error())

	case kerrors.IsWrongKeyOrCorrupt(err):
		return cross + " Decryption failed: wrong key or corrupted file\n" +
			ui.Muted.Sprint(err.Error())

	case errors.Is(err, kerrors.ErrInvalidCiphertextLength):
		return cross + " Not an SM4 ciphertext: length must be a positive multiple of 16 bytes\n" +
			ui.Muted.Sprint(err.Error())

	case errors.Is(err, kerrors.ErrOutputExists):
		return cross + " " + err.Error() + "\n" +
			arrow + " Use " + ui.Flag.Sprint("--force") + " to overwrite"

	case errors.Is(err, kerrors.ErrFileNotFound), errors.Is(err, kerrors.ErrNoFilesFound):
		return cross + " " + capitalize(err.Error())

	case errors.Is(err, kerrors.ErrInvalidConfig):
		return cross + " Invalid configuration in " + ui.Path.Sprint(configs.UserSm4Settings.ConfigPath) + "\n" +
			ui.Muted.Sprint(err.Error())

	default:
		return cross + " " + capitalize(err.Error())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// loadConfig loads the user config and warns about keys it does not know.
func loadConfig() (*configs.UserConfig, error) {
	Logger.Debugf("Loading config from %s", configs.UserSm4Settings.ConfigPath)
	config, unknown, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}
	for _, key := range unknown {
		Logger.WarnfAlways("Unknown config key %q in %s", key, configs.UserSm4Settings.ConfigPath)
	}
	return config, nil
}

// cipherFlags holds the flags shared by encrypt and decrypt.
type cipherFlags struct {
	keyHex        string
	keyFile       string
	prompt        bool
	suffix        string
	workers       int
	force         bool
	dryRun        bool
	noAudit       bool
	strictPadding bool
}

func (f *cipherFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.keyHex, "key", "k", "", "key as 32 hexadecimal characters")
	cmd.Flags().StringVarP(&f.keyFile, "key-file", "f", "", "read the key from a file ('-' for stdin)")
	cmd.Flags().BoolVarP(&f.prompt, "prompt", "p", false, "prompt for the key without echo")
	cmd.Flags().StringVar(&f.suffix, "suffix", configs.DefaultSuffix, "suffix for encrypted files")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "goroutines per file (0 = one per CPU)")
	cmd.Flags().BoolVar(&f.force, "force", false, "overwrite existing output files")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "show what would be written without writing")
	cmd.Flags().BoolVar(&f.noAudit, "no-audit", false, "do not record this run in the audit log")
}

// apply overrides config values with the flags the user set explicitly.
func (f *cipherFlags) apply(cmd *cobra.Command, config *configs.UserConfig) error {
	flags := cmd.Flags()
	if flags.Changed("suffix") {
		config.Cipher.Suffix = f.suffix
	}
	if flags.Changed("workers") {
		config.Cipher.Workers = f.workers
	}
	if flags.Changed("force") {
		config.Output.Force = f.force
	}
	if flags.Changed("no-audit") && f.noAudit {
		config.Audit.Enabled = false
	}
	if flags.Lookup("strict-padding") != nil && flags.Changed("strict-padding") {
		config.Cipher.StrictPadding = f.strictPadding
	}
	return config.Validate()
}
