package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/candado/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPath replaces a leading ~ with the home directory and returns an
// absolute, cleaned path. An empty path stays empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// ResolveFiles expands import arguments into transfer files. Each pattern is
// a file, a directory (searched recursively) or a doublestar glob such as
// "backups/**/*.toml". Relative patterns are resolved against baseDir.
// Only .json and .toml files are returned, deduplicated, in argument order.
func ResolveFiles(patterns []string, baseDir string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, baseDir)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, strings.Join(patterns, " "))
	}

	return files, nil
}

func resolvePattern(pattern string, baseDir string) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(baseDir, pattern)
	}

	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return findFilesInDir(absPattern)
	}

	if strings.ContainsAny(pattern, "*?[{") {
		return expandGlob(pattern, absPattern)
	}

	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, pattern)
		}
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrIO, pattern, err)
	}

	// An explicit file with the wrong extension is reported, not skipped.
	if !isTransferFile(absPattern) {
		return nil, fmt.Errorf("%w: %s (expected .json or .toml)", kerrors.ErrInvalidFileType, pattern)
	}

	return []string{absPattern}, nil
}

func expandGlob(pattern, absPattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid glob pattern %q: %v", kerrors.ErrNoFilesFound, pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if isTransferFile(m) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func findFilesInDir(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if isTransferFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %v", kerrors.ErrIO, dir, err)
	}

	return files, nil
}

func isTransferFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".toml":
		return true
	}
	return false
}
