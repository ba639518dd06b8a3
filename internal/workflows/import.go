package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/candado/internal/audit"
	"github.com/PolarWolf314/candado/internal/codec"
	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/secrets"
	"github.com/PolarWolf314/candado/internal/utils"
)

// ImportOptions configures the import workflow.
type ImportOptions struct {
	Credentials

	// Patterns are files, directories or doublestar globs naming .json and
	// .toml import files.
	Patterns []string

	// BaseDir resolves relative patterns. Empty means the working directory.
	BaseDir string

	Mode codec.ImportMode

	// DryRun parses the files and reports what would be imported without
	// opening the vault.
	DryRun bool
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	Files   []string
	Records int
	Added   int
	Updated int
	Mode    codec.ImportMode
	DryRun  bool
}

// Import reads records from every matched file and applies them to the vault
// in one step. If any file or record is invalid, nothing is imported.
//
// Returns ErrNoFilesFound if no pattern matches a transfer file.
// Returns ErrFormat if a file cannot be parsed.
// Returns ErrInvalidEntry if a record lacks a service or secret.
func Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	defer secrets.Wipe(opts.Password)

	mode := opts.Mode
	if mode == "" {
		mode = codec.ModeAppend
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		baseDir = wd
	}

	files, err := utils.ResolveFiles(opts.Patterns, baseDir)
	if err != nil {
		return nil, err
	}

	var records []codec.Record
	for _, f := range files {
		recs, err := readRecords(f)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	result := &ImportResult{
		Files:   files,
		Records: len(records),
		Mode:    mode,
		DryRun:  opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	s, err := openSession(opts.Credentials)
	if err != nil {
		return nil, err
	}
	defer s.Abort()

	res, err := s.ImportRecords(records, mode)
	if err != nil {
		return nil, err
	}

	if err := finish(ctx, s); err != nil {
		return nil, err
	}

	opts.audit(audit.Entry{
		Operation: audit.OpImport,
		VaultID:   s.VaultID(),
		Count:     len(records),
		Mode:      mode.String(),
	})

	result.Added = res.Added
	result.Updated = res.Updated
	return result, nil
}

func readRecords(path string) ([]codec.Record, error) {
	format, err := codec.FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrIO, path, err)
	}

	records, err := codec.DecodeRecords(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
