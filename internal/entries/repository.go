package entries

import (
	"fmt"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/candado/internal/errors"
)

// Entry is a single credential record.
type Entry struct {
	ID        uint64
	Service   string
	Account   string
	Secret    string
	Alias     string
	URL       string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fields are the user-supplied values of a new entry.
type Fields struct {
	Service string
	Account string
	Secret  string
	Alias   string
	URL     string
	Notes   string
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Service *string
	Account *string
	Secret  *string
	Alias   *string
	URL     *string
	Notes   *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Service == nil && p.Account == nil && p.Secret == nil &&
		p.Alias == nil && p.URL == nil && p.Notes == nil
}

// Repository is the decrypted, ordered entry set of one open vault. It is not
// safe for concurrent use.
type Repository struct {
	entries []Entry
	nextID  uint64
	now     func() time.Time
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// New returns a repository holding entries in the given order. nextID is the
// id the next Add assigns; it is raised past the highest existing id if needed.
func New(nextID uint64, entries []Entry, opts ...Option) *Repository {
	r := &Repository{
		entries: append([]Entry(nil), entries...),
		nextID:  nextID,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.nextID == 0 {
		r.nextID = 1
	}
	for _, e := range r.entries {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	return r
}

// NextID returns the id the next Add will assign.
func (r *Repository) NextID() uint64 {
	return r.nextID
}

// Len returns the number of entries.
func (r *Repository) Len() int {
	return len(r.entries)
}

// Add appends a new entry and returns its id.
func (r *Repository) Add(f Fields) (uint64, error) {
	if err := validate(f.Service, f.Secret); err != nil {
		return 0, err
	}

	now := r.timestamp()
	e := Entry{
		ID:        r.nextID,
		Service:   f.Service,
		Account:   f.Account,
		Secret:    f.Secret,
		Alias:     f.Alias,
		URL:       f.URL,
		Notes:     f.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.entries = append(r.entries, e)
	r.nextID++
	return e.ID, nil
}

// Update applies the non-nil fields of p to the entry with id.
func (r *Repository) Update(id uint64, p Patch) error {
	i := r.index(id)
	if i < 0 {
		return fmt.Errorf("entry %d: %w", id, kerrors.ErrNotFound)
	}

	e := r.entries[i]
	apply(&e.Service, p.Service)
	apply(&e.Account, p.Account)
	apply(&e.Secret, p.Secret)
	apply(&e.Alias, p.Alias)
	apply(&e.URL, p.URL)
	apply(&e.Notes, p.Notes)

	if err := validate(e.Service, e.Secret); err != nil {
		return err
	}

	// updated_at must strictly increase even when the clock has not moved.
	now := r.timestamp()
	if !now.After(e.UpdatedAt) {
		now = e.UpdatedAt.Add(time.Nanosecond)
	}
	e.UpdatedAt = now

	r.entries[i] = e
	return nil
}

// Remove deletes the entry with id, keeping the order of the rest.
func (r *Repository) Remove(id uint64) error {
	i := r.index(id)
	if i < 0 {
		return fmt.Errorf("entry %d: %w", id, kerrors.ErrNotFound)
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return nil
}

// Get returns the entry with id.
func (r *Repository) Get(id uint64) (Entry, error) {
	i := r.index(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("entry %d: %w", id, kerrors.ErrNotFound)
	}
	return r.entries[i], nil
}

// Find returns entries whose service, account or url contains query,
// ignoring case, in insertion order. An empty query returns every entry.
func (r *Repository) Find(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.List()
	}

	var out []Entry
	for _, e := range r.entries {
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

// List returns a copy of all entries in insertion order.
func (r *Repository) List() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Reset drops every entry. The id counter is kept so ids are never reused.
func (r *Repository) Reset() {
	r.entries = nil
}

// Replace drops every entry and adds fields in order with new ids. Nothing
// changes unless every item is valid.
func (r *Repository) Replace(fields []Fields) ([]uint64, error) {
	for i, f := range fields {
		if err := validate(f.Service, f.Secret); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	r.Reset()
	ids := make([]uint64, 0, len(fields))
	for _, f := range fields {
		id, err := r.Add(f)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Repository) index(id uint64) int {
	for i, e := range r.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) timestamp() time.Time {
	return r.now().UTC()
}

func matches(e Entry, q string) bool {
	return strings.Contains(strings.ToLower(e.Service), q) ||
		strings.Contains(strings.ToLower(e.Account), q) ||
		strings.Contains(strings.ToLower(e.URL), q)
}

func apply(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func validate(service, secret string) error {
	if strings.TrimSpace(service) == "" {
		return fmt.Errorf("%w: service is required", kerrors.ErrInvalidEntry)
	}
	if secret == "" {
		return fmt.Errorf("%w: secret must not be empty", kerrors.ErrInvalidEntry)
	}
	return nil
}
