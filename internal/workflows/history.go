package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/sm4tool/internal/audit"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit keeps only the most recent entries; 0 keeps all.
	Limit int

	// Operation keeps only entries for one operation when set.
	Operation string
}

// History returns audit log entries, oldest first.
func History(ctx context.Context, opts HistoryOptions) ([]audit.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	if opts.Operation != "" {
		var filtered []audit.Entry
		for _, e := range entries {
			if e.Operation == opts.Operation {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	return audit.Tail(entries, opts.Limit), nil
}
