package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/sm4tool/internal/configs"
	"github.com/PolarWolf314/sm4tool/internal/utils"

	"github.com/google/uuid"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`   // Random UUID of this entry.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // OS user running the command.
	Host      string `json:"host"` // Machine the command ran on.
	Operation string `json:"op"`   // encrypt, decrypt or keygen.

	// Optional fields depending on operation.
	Files          []string `json:"files,omitempty"`           // Output files written.
	KeyFingerprint string   `json:"key_fingerprint,omitempty"` // Never the key itself.
	Bytes          int64    `json:"bytes,omitempty"`           // Total input size.
	OutputPath     string   `json:"output_path,omitempty"`     // For keygen with --output.
}

// Log appends an entry to the audit log.
// Failures are ignored; operations should not fail because auditing did.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// NewEntry returns an entry for op with user and host filled in.
func NewEntry(op string) Entry {
	return Entry{
		Operation: op,
		User:      utils.GetUsername(),
		Host:      utils.GetHostname(),
	}
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return configs.UserSm4Settings.AuditLogPath
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines, such as a partial final write, are skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries
}

// Tail returns the last n entries, or all of them when n <= 0.
func Tail(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
