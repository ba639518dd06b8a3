package workflows

import (
	"context"

	"github.com/PolarWolf314/candado/internal/audit"
	"github.com/PolarWolf314/candado/internal/secrets"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	Credentials

	ID uint64
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	ID uint64

	// Service of the removed entry, for the confirmation message.
	Service string
}

// Remove deletes one entry.
//
// Returns ErrNotFound if no entry has the id.
func Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
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
	if err := s.Remove(opts.ID); err != nil {
		return nil, err
	}

	if err := finish(ctx, s); err != nil {
		return nil, err
	}

	opts.audit(audit.Entry{Operation: audit.OpRemove, VaultID: s.VaultID(), EntryID: opts.ID})

	return &RemoveResult{ID: opts.ID, Service: e.Service}, nil
}
