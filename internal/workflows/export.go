package workflows

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/PolarWolf314/candado/internal/audit"
	"github.com/PolarWolf314/candado/internal/codec"
	"github.com/PolarWolf314/candado/internal/container"
	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/secrets"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	Credentials

	// OutputPath is the export file; its extension picks JSON or TOML.
	// If empty, defaults to candado-export-YYYY-MM-DD.json.
	OutputPath string

	// Force allows replacing an existing file.
	Force bool
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	OutputPath string
	Format     codec.Format
	Count      int
}

// Export writes every entry, secrets and ids included, to a plaintext file
// readable only by the owner. The vault file is not modified.
//
// Returns ErrInvalidFileType if the output extension is not .json or .toml.
// Returns ErrAlreadyExists if the output exists and Force is not set.
func Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	defer secrets.Wipe(opts.Password)

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = fmt.Sprintf("candado-export-%s.json", time.Now().Format("2006-01-02"))
	}

	format, err := codec.FormatFor(outputPath)
	if err != nil {
		return nil, err
	}

	if !opts.Force {
		if _, err := os.Lstat(outputPath); err == nil {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrAlreadyExists, outputPath)
		}
	}

	s, err := openSession(opts.Credentials)
	if err != nil {
		return nil, err
	}
	defer s.Abort()

	records, err := s.ExportRecords()
	if err != nil {
		return nil, err
	}

	data, err := codec.EncodeRecords(format, records)
	if err != nil {
		return nil, err
	}
	defer secrets.Wipe(data)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := container.WriteFileAtomic(outputPath, data); err != nil {
		return nil, err
	}

	if err := finish(ctx, s); err != nil {
		return nil, err
	}

	opts.audit(audit.Entry{
		Operation:  audit.OpExport,
		VaultID:    s.VaultID(),
		Count:      len(records),
		OutputPath: outputPath,
	})

	return &ExportResult{OutputPath: outputPath, Format: format, Count: len(records)}, nil
}
