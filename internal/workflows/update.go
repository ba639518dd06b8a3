package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/candado/internal/audit"
	"github.com/PolarWolf314/candado/internal/entries"
	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/secrets"
)

// UpdateOptions configures the update workflow.
type UpdateOptions struct {
	Credentials

	ID    uint64
	Patch entries.Patch
}

// UpdateResult contains the outcome of an update operation.
type UpdateResult struct {
	Entry entries.Entry
}

// Update changes the supplied fields of one entry.
//
// Returns ErrInvalidEntry if the patch is empty or would blank a required field.
// Returns ErrNotFound if no entry has the id.
func Update(ctx context.Context, opts UpdateOptions) (*UpdateResult, error) {
	defer secrets.Wipe(opts.Password)

	if opts.Patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", kerrors.ErrInvalidEntry)
	}

	s, err := openSession(opts.Credentials)
	if err != nil {
		return nil, err
	}
	defer s.Abort()

	if err := s.Update(opts.ID, opts.Patch); err != nil {
		return nil, err
	}
	e, err := s.Get(opts.ID)
	if err != nil {
		return nil, err
	}

	if err := finish(ctx, s); err != nil {
		return nil, err
	}

	opts.audit(audit.Entry{Operation: audit.OpUpdate, VaultID: s.VaultID(), EntryID: opts.ID})

	return &UpdateResult{Entry: e}, nil
}
