package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Operation names recorded in the trail.
const (
	OpInit   = "init"
	OpAdd    = "add"
	OpUpdate = "update"
	OpRemove = "rm"
	OpImport = "import"
	OpExport = "export"
	OpShow   = "show"
)

// Entry represents a single audit log entry. It never carries secret values,
// services or accounts.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"`
	VaultID   string `json:"vault_id,omitempty"`

	// Optional fields depending on operation.
	EntryID    uint64 `json:"entry_id,omitempty"`    // For add/update/rm/show.
	Count      int    `json:"count,omitempty"`       // For import/export.
	Mode       string `json:"mode,omitempty"`        // For import (append/merge/replace).
	OutputPath string `json:"output_path,omitempty"` // For export.
}

// LogPath returns the audit log for the vault at vaultPath. It lives next to
// the vault so that each vault keeps its own trail.
func LogPath(vaultPath string) string {
	return filepath.Join(filepath.Dir(vaultPath), "audit.jsonl")
}

// Log appends an entry to the audit log of the vault at vaultPath.
// If logging fails it returns silently. Operations should not fail just
// because audit logging failed.
func Log(vaultPath string, entry Entry) {
	if vaultPath == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	f, err := os.OpenFile(LogPath(vaultPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
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

// ReadEntries reads all entries from the audit log of the vault at vaultPath.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(vaultPath string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(vaultPath))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

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
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
