package codec

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/candado/internal/errors"
)

// ImportMode decides how imported records combine with existing entries.
type ImportMode string

const (
	// ModeAppend adds every record as a new entry.
	ModeAppend ImportMode = "append"
	// ModeMerge overwrites entries whose id matches a record and appends the rest.
	ModeMerge ImportMode = "merge"
	// ModeReplace drops all existing entries before appending the records.
	ModeReplace ImportMode = "replace"
)

// ParseImportMode parses s. An empty string selects ModeAppend.
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAppend:
		return ModeAppend, nil
	case ModeMerge:
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	default:
		return "", fmt.Errorf("%w: %q (expected append, merge or replace)", kerrors.ErrInvalidImportMode, s)
	}
}

func (m ImportMode) String() string {
	return string(m)
}
