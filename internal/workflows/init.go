package workflows

import (
	"context"

	"github.com/PolarWolf314/candado/internal/audit"
	"github.com/PolarWolf314/candado/internal/secrets"
	"github.com/PolarWolf314/candado/internal/vault"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	Credentials

	// Params overrides the key derivation cost. Nil uses the format defaults.
	Params *secrets.KDFParams
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// VaultPath is the created vault file.
	VaultPath string

	// VaultID is the unique identifier generated for the vault.
	VaultID string

	// UsesKeyfile reports whether the vault requires a keyfile.
	UsesKeyfile bool
}

// Init creates a new empty vault.
//
// Returns ErrAlreadyExists if a file exists at the vault path.
// Returns ErrKDF if the configured keyfile cannot be read.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	defer secrets.Wipe(opts.Password)

	keyfile, err := loadKeyfile(opts.KeyfilePath)
	if err != nil {
		return nil, err
	}
	defer secrets.Wipe(keyfile)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := vault.Init(opts.VaultPath, opts.Password, vault.InitOptions{
		Keyfile: keyfile,
		Params:  opts.Params,
	})
	if err != nil {
		return nil, err
	}

	opts.audit(audit.Entry{Operation: audit.OpInit, VaultID: id})

	return &InitResult{
		VaultPath:   opts.VaultPath,
		VaultID:     id,
		UsesKeyfile: keyfile != nil,
	}, nil
}
