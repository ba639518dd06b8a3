package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func vaultIn(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "vault.cndo")
}

func TestLogPath(t *testing.T) {
	got := LogPath("/data/candado/vault.cndo")
	if got != "/data/candado/audit.jsonl" {
		t.Errorf("Expected audit log next to the vault, got %q", got)
	}
}

func TestLog_CreatesPrivateFile(t *testing.T) {
	vaultPath := vaultIn(t)

	Log(vaultPath, Entry{Operation: OpInit, VaultID: "vault-uuid"})

	info, err := os.Stat(LogPath(vaultPath))
	if err != nil {
		t.Fatalf("Audit log file was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	vaultPath := vaultIn(t)

	Log(vaultPath, Entry{Operation: OpAdd, EntryID: 1})
	Log(vaultPath, Entry{Operation: OpUpdate, EntryID: 1})
	Log(vaultPath, Entry{Operation: OpRemove, EntryID: 1})

	data, err := os.ReadFile(LogPath(vaultPath))
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}
}

func TestLog_ValidJSON(t *testing.T) {
	vaultPath := vaultIn(t)

	Log(vaultPath, Entry{
		Operation:  OpExport,
		VaultID:    "vault-uuid",
		Count:      3,
		OutputPath: "/tmp/export.json",
	})

	data, err := os.ReadFile(LogPath(vaultPath))
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Audit entry is not valid JSON: %v", err)
	}

	for _, key := range []string{"ts", "op", "vault_id", "count", "output_path"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("Expected key %q in audit entry", key)
		}
	}
	for _, key := range []string{"entry_id", "mode"} {
		if _, ok := parsed[key]; ok {
			t.Errorf("Expected empty key %q to be omitted", key)
		}
	}
}

func TestLog_SetsTimestamp(t *testing.T) {
	vaultPath := vaultIn(t)
	Log(vaultPath, Entry{Operation: OpAdd})

	entries, err := ReadEntries(vaultPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if !strings.HasSuffix(entries[0].Timestamp, "Z") || len(entries[0].Timestamp) != len("2006-01-02T15:04:05.000000Z") {
		t.Errorf("Unexpected timestamp format %q", entries[0].Timestamp)
	}
}

func TestLog_FailureIsSilent(t *testing.T) {
	// The parent directory does not exist, so the log cannot be opened.
	Log(filepath.Join(t.TempDir(), "missing", "vault.cndo"), Entry{Operation: OpAdd})
	Log("", Entry{Operation: OpAdd})
}

func TestReadEntries_Missing(t *testing.T) {
	entries, err := ReadEntries(vaultIn(t))
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestParseEntries_SkipsMalformed(t *testing.T) {
	data := []byte(`{"ts":"2026-01-01T00:00:00.000000Z","op":"add","entry_id":1}
not json
{"ts":"2026-01-01T00:00:01.000000Z","op":"import","count":3,"mode":"merge"}

{"ts":"2026-01-01T00:00:02.0`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Mode != "merge" || entries[1].Count != 3 {
		t.Errorf("Unexpected second entry %+v", entries[1])
	}
}
