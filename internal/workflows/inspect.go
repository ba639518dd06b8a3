package workflows

import (
	"context"

	"github.com/PolarWolf314/candado/internal/audit"
	"github.com/PolarWolf314/candado/internal/entries"
	"github.com/PolarWolf314/candado/internal/secrets"
)

// InspectOptions configures the inspect workflow.
type InspectOptions struct {
	Credentials

	ID uint64
}

// InspectResult contains the requested entry, secret included.
type InspectResult struct {
	Entry entries.Entry
}

// Inspect returns one entry. The vault file is not modified.
//
// Returns ErrNotFound if no entry has the id.
func Inspect(ctx context.Context, opts InspectOptions) (*InspectResult, error) {
	defer secrets.Wipe(opts.Password)

	s, err := openSession(opts.Credentials)
	if err != nil {
		return nil, err
	}
	defer s.Abort()

	e, err := s.Get(opts.ID)
	if err != nil {
		return nil, err
	}

	if err := finish(ctx, s); err != nil {
		return nil, err
	}

	opts.audit(audit.Entry{Operation: audit.OpShow, VaultID: s.VaultID(), EntryID: opts.ID})

	return &InspectResult{Entry: e}, nil
}
