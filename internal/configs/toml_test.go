package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadTOML(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.toml")

	type TestStruct struct {
		Name   string
		Length int
		Path   string
	}

	originalData := TestStruct{
		Name:   "personal",
		Length: 24,
		Path:   "/tmp/vault.cndo",
	}

	if err := SaveTOML(testFile, originalData); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loadedData := TestStruct{}
	if err := LoadTOML(testFile, &loadedData); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loadedData != originalData {
		t.Errorf("Expected %+v, got %+v", originalData, loadedData)
	}
}

func TestSaveTOMLIsPrivate(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "subdir", "test.toml")

	if err := SaveTOML(testFile, struct{ Name string }{"x"}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("File was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "nonexistent.toml")

	data := struct{ Name string }{}
	if err := LoadTOML(testFile, &data); err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestLoadTOMLRejectsUnknownKeys(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.toml")
	if err := os.WriteFile(testFile, []byte("Name = \"x\"\nNmae = \"typo\"\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	data := struct{ Name string }{}
	if err := LoadTOML(testFile, &data); err == nil {
		t.Fatal("Expected error for unknown key, got nil")
	}
}
