package utils

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/ui"
)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// ParseID parses an entry id given on the command line.
func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q is not a valid entry id", kerrors.ErrInvalidEntry, s)
	}
	return id, nil
}
