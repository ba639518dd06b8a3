package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain error", errors.New("boom"), ExitGeneric},
		{"io", ErrIO, ExitIO},
		{"vault not found", fmt.Errorf("reading vault: %w", ErrVaultNotFound), ExitIO},
		{"format", fmt.Errorf("parsing header: %w", ErrFormat), ExitFormat},
		{"kdf", fmt.Errorf("loading keyfile: %w", ErrKDF), ExitKDF},
		{"auth", ErrAuth, ExitAuth},
		{"not found", fmt.Errorf("entry 3: %w", ErrNotFound), ExitNotFound},
		{"exists", ErrAlreadyExists, ExitExists},
		{"locked", ErrVaultLocked, ExitLocked},
		{"invalid entry", ErrInvalidEntry, ExitInvalidInput},
		{"invalid file type", ErrInvalidFileType, ExitInvalidInput},
		{"invalid import mode", fmt.Errorf("mode %q: %w", "upsert", ErrInvalidImportMode), ExitInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodesAreDistinct(t *testing.T) {
	seen := make(map[int]error)
	for _, err := range []error{ErrIO, ErrFormat, ErrKDF, ErrAuth, ErrNotFound, ErrAlreadyExists} {
		code := ExitCode(err)
		if prev, ok := seen[code]; ok {
			t.Fatalf("%v and %v share exit code %d", prev, err, code)
		}
		seen[code] = err
	}
}
