package vault

import (
	"fmt"

	"github.com/PolarWolf314/candado/internal/codec"
	"github.com/PolarWolf314/candado/internal/container"
	"github.com/PolarWolf314/candado/internal/entries"
	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/secrets"
)

// Session is an unlocked vault. It holds the key and the decrypted entries
// until Close or Abort, and is not safe for concurrent use.
type Session struct {
	path    string
	hdr     container.Header
	key     *secrets.Key
	lock    *container.FileLock
	vaultID string
	repo    *entries.Repository

	dirty  bool
	closed bool
}

// ImportResult reports what an import changed.
type ImportResult struct {
	Added   int
	Updated int
	// IDs lists the id of every record in input order, new or merged.
	IDs []uint64
}

// Path returns the vault file path.
func (s *Session) Path() string {
	return s.path
}

// VaultID returns the id generated when the vault was created.
func (s *Session) VaultID() string {
	return s.vaultID
}

// Mutated reports whether Close will write the vault.
func (s *Session) Mutated() bool {
	return s.dirty
}

// Add stores a new entry and returns its id.
func (s *Session) Add(f entries.Fields) (uint64, error) {
	if s.closed {
		return 0, kerrors.ErrSessionClosed
	}
	id, err := s.repo.Add(f)
	if err != nil {
		return 0, err
	}
	s.dirty = true
	return id, nil
}

// Update applies p to the entry with id.
func (s *Session) Update(id uint64, p entries.Patch) error {
	if s.closed {
		return kerrors.ErrSessionClosed
	}
	if err := s.repo.Update(id, p); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// Remove deletes the entry with id.
func (s *Session) Remove(id uint64) error {
	if s.closed {
		return kerrors.ErrSessionClosed
	}
	if err := s.repo.Remove(id); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// Get returns the entry with id.
func (s *Session) Get(id uint64) (entries.Entry, error) {
	if s.closed {
		return entries.Entry{}, kerrors.ErrSessionClosed
	}
	return s.repo.Get(id)
}

// Find returns entries matching query.
func (s *Session) Find(query string) ([]entries.Entry, error) {
	if s.closed {
		return nil, kerrors.ErrSessionClosed
	}
	return s.repo.Find(query), nil
}

// List returns every entry in insertion order.
func (s *Session) List() ([]entries.Entry, error) {
	if s.closed {
		return nil, kerrors.ErrSessionClosed
	}
	return s.repo.List(), nil
}

// ImportRecords combines records with the existing entries according to
// mode. Either every record is applied or, on error, none is.
func (s *Session) ImportRecords(records []codec.Record, mode codec.ImportMode) (ImportResult, error) {
	if s.closed {
		return ImportResult{}, kerrors.ErrSessionClosed
	}

	snapshot := s.repo.List()
	nextID := s.repo.NextID()

	res, err := s.importRecords(records, mode)
	if err != nil {
		s.repo = entries.New(nextID, snapshot)
		return ImportResult{}, err
	}

	if len(records) > 0 || (mode == codec.ModeReplace && len(snapshot) > 0) {
		s.dirty = true
	}
	return res, nil
}

func (s *Session) importRecords(records []codec.Record, mode codec.ImportMode) (ImportResult, error) {
	var res ImportResult

	switch mode {
	case codec.ModeAppend:
		for i, r := range records {
			id, err := s.repo.Add(r.Fields())
			if err != nil {
				return res, fmt.Errorf("record %d: %w", i+1, err)
			}
			res.IDs = append(res.IDs, id)
			res.Added++
		}

	case codec.ModeMerge:
		for i, r := range records {
			if r.ID != 0 {
				if _, err := s.repo.Get(r.ID); err == nil {
					if err := s.repo.Update(r.ID, r.Patch()); err != nil {
						return res, fmt.Errorf("record %d: %w", i+1, err)
					}
					res.IDs = append(res.IDs, r.ID)
					res.Updated++
					continue
				}
			}
			id, err := s.repo.Add(r.Fields())
			if err != nil {
				return res, fmt.Errorf("record %d: %w", i+1, err)
			}
			res.IDs = append(res.IDs, id)
			res.Added++
		}

	case codec.ModeReplace:
		fields := make([]entries.Fields, 0, len(records))
		for _, r := range records {
			fields = append(fields, r.Fields())
		}
		ids, err := s.repo.Replace(fields)
		if err != nil {
			return res, err
		}
		res.IDs = ids
		res.Added = len(ids)

	default:
		return res, fmt.Errorf("%w: %q", kerrors.ErrInvalidImportMode, mode)
	}

	return res, nil
}

// ExportRecords returns every entry as a transfer record, ids included.
func (s *Session) ExportRecords() ([]codec.Record, error) {
	if s.closed {
		return nil, kerrors.ErrSessionClosed
	}
	list := s.repo.List()
	records := make([]codec.Record, 0, len(list))
	for _, e := range list {
		records = append(records, codec.RecordFromEntry(e))
	}
	return records, nil
}

// Close writes the vault if it was mutated, then wipes the key and releases
// the lock. A pure read never touches the file. Calling Close again is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	defer s.release()

	if !s.dirty {
		return nil
	}
	return s.persist()
}

// Abort discards any changes, wipes the key and releases the lock. It is safe
// to defer right after Open and to call after Close.
func (s *Session) Abort() {
	if s.closed {
		return
	}
	s.release()
}

func (s *Session) persist() error {
	plaintext, err := codec.EncodeVault(codec.Vault{
		ID:      s.vaultID,
		NextID:  s.repo.NextID(),
		Entries: s.repo.List(),
	})
	if err != nil {
		return err
	}
	defer secrets.Wipe(plaintext)

	sealed, ct, err := container.Seal(s.key.Bytes(), s.hdr, plaintext)
	if err != nil {
		return err
	}
	if err := container.Write(s.path, sealed, ct); err != nil {
		return err
	}
	s.hdr = sealed
	s.dirty = false
	return nil
}

func (s *Session) release() {
	s.key.Destroy()
	_ = s.lock.Unlock()
	s.repo = nil
	s.closed = true
}
