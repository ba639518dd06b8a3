package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/candado/internal/errors"
)

func TestGenCommands(t *testing.T) {
	setupTestEnvironment(t)

	tests := []struct {
		name   string
		args   []string
		length int
	}{
		{"password default length", []string{"gen", "password"}, 20},
		{"password custom length", []string{"gen", "password", "-l", "32"}, 32},
		{"token", []string{"gen", "token", "-l", "8"}, 16},
		{"key", []string{"gen", "key", "-l", "12"}, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			output, err := runCLI("", tc.args...)
			if err != nil {
				t.Fatalf("Command failed: %v", err)
			}
			secret := strings.TrimRight(output, "\n")
			if len(secret) != tc.length {
				t.Errorf("Expected %d characters, got %d (%q)", tc.length, len(secret), secret)
			}
		})
	}
}

func TestGenPassphraseWordlist(t *testing.T) {
	setupTestEnvironment(t)

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0600); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}

	output, err := runCLI("", "gen", "passphrase", "-l", "5", "-c", path)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	words := strings.Fields(output)
	if len(words) != 5 {
		t.Fatalf("Expected 5 words, got %v", words)
	}
	for _, w := range words {
		if w != "alpha" && w != "beta" {
			t.Errorf("Unexpected word %q", w)
		}
	}
}

func TestGenRejectsBadLength(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI("", "gen", "password", "-l", "2")
	if !errors.Is(err, kerrors.ErrInvalidLength) {
		t.Errorf("Expected ErrInvalidLength, got %v", err)
	}
	if code := kerrors.ExitCode(err); code != kerrors.ExitInvalidInput {
		t.Errorf("Expected exit code %d, got %d", kerrors.ExitInvalidInput, code)
	}
}
