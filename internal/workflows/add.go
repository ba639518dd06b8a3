package workflows

import (
	"context"

	"github.com/PolarWolf314/candado/internal/audit"
	"github.com/PolarWolf314/candado/internal/entries"
	"github.com/PolarWolf314/candado/internal/generators"
	"github.com/PolarWolf314/candado/internal/secrets"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	Credentials

	Fields entries.Fields

	// Generate fills an empty secret with a random password of
	// PasswordLength characters.
	Generate       bool
	PasswordLength int
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	ID uint64

	// Generated is the generated secret, empty when one was supplied.
	Generated string
}

// Add stores a new entry.
//
// Returns ErrInvalidEntry if service or secret is empty and no secret is
// generated.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	defer secrets.Wipe(opts.Password)

	result := &AddResult{}

	fields := opts.Fields
	if fields.Secret == "" && opts.Generate {
		length := opts.PasswordLength
		if length == 0 {
			length = generators.DefaultPasswordLength
		}
		secret, err := generators.Password(length)
		if err != nil {
			return nil, err
		}
		fields.Secret = secret
		result.Generated = secret
	}

	s, err := openSession(opts.Credentials)
	if err != nil {
		return nil, err
	}
	defer s.Abort()

	id, err := s.Add(fields)
	if err != nil {
		return nil, err
	}

	if err := finish(ctx, s); err != nil {
		return nil, err
	}

	opts.audit(audit.Entry{Operation: audit.OpAdd, VaultID: s.VaultID(), EntryID: id})

	result.ID = id
	return result, nil
}
