package workflows

import (
	"context"

	"github.com/PolarWolf314/candado/internal/audit"
	"github.com/PolarWolf314/candado/internal/entries"
	"github.com/PolarWolf314/candado/internal/secrets"
)

// ListOptions configures the list workflow, used by both ls and find.
type ListOptions struct {
	Credentials

	// Query filters by service, account or url. Empty lists everything.
	Query string

	// ShowSecrets records in the audit trail that secrets were revealed.
	// The entries always carry their secrets; masking is left to the caller.
	ShowSecrets bool
}

// ListResult contains the matching entries in insertion order.
type ListResult struct {
	Entries []entries.Entry

	// Total is the number of entries in the vault.
	Total int
}

// List returns the entries matching opts.Query. The vault file is not modified.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	defer secrets.Wipe(opts.Password)

	s, err := openSession(opts.Credentials)
	if err != nil {
		return nil, err
	}
	defer s.Abort()

	all, err := s.List()
	if err != nil {
		return nil, err
	}
	matched, err := s.Find(opts.Query)
	if err != nil {
		return nil, err
	}

	if err := finish(ctx, s); err != nil {
		return nil, err
	}

	if opts.ShowSecrets && len(matched) > 0 {
		opts.audit(audit.Entry{Operation: audit.OpShow, VaultID: s.VaultID(), Count: len(matched)})
	}

	return &ListResult{Entries: matched, Total: len(all)}, nil
}
