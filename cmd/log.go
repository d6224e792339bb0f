package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/sm4tool/internal/audit"
	"github.com/PolarWolf314/sm4tool/internal/ui"
	"github.com/PolarWolf314/sm4tool/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logOperation string
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 20, "show the last N entries (0 for all)")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "only show one operation (encrypt, decrypt, keygen)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the audit log",
	Long: `Displays recent sm4tool operations from the local audit log.

Entries record the operation, user, host, files written and a fingerprint
of the key. Keys themselves are never logged.

Examples:
  sm4tool log
  sm4tool log -n 0 --operation decrypt
  sm4tool log --json`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	entries, err := workflows.History(context.Background(), workflows.HistoryOptions{
		Limit:     logLimit,
		Operation: logOperation,
	})
	if err != nil {
		return printFailure(err)
	}
	Logger.Debugf("Read %d entries from %s", len(entries), audit.LogPath())

	if logJSON {
		if entries == nil {
			entries = []audit.Entry{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No audit log entries found.")
		return nil
	}

	for _, e := range entries {
		fmt.Println(formatEntry(e))
	}
	return nil
}

// formatEntry renders one entry on a single line.
func formatEntry(e audit.Entry) string {
	var b strings.Builder
	b.WriteString(ui.Muted.Sprint(e.Timestamp))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%-7s", e.Operation))
	b.WriteString(" ")
	b.WriteString(e.User + "@" + e.Host)
	if e.KeyFingerprint != "" {
		b.WriteString(" key " + ui.Highlight.Sprint(e.KeyFingerprint))
	}
	switch {
	case len(e.Files) == 1:
		b.WriteString(" " + ui.Path.Sprint(e.Files[0]))
	case len(e.Files) > 1:
		b.WriteString(fmt.Sprintf(" %d files", len(e.Files)))
	}
	if e.OutputPath != "" {
		b.WriteString(" -> " + ui.Path.Sprint(e.OutputPath))
	}
	return b.String()
}
