package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PolarWolf314/candado/internal/entries"
	kerrors "github.com/PolarWolf314/candado/internal/errors"
)

// PayloadFormat is the revision of the plaintext document sealed in a vault.
const PayloadFormat = 1

// Vault is the decrypted working set stored inside the container.
type Vault struct {
	ID      string
	NextID  uint64
	Entries []entries.Entry
}

type payload struct {
	Format  int            `json:"format"`
	VaultID string         `json:"vault_id"`
	NextID  uint64         `json:"next_id"`
	Entries []payloadEntry `json:"entries"`
}

type payloadEntry struct {
	ID        uint64    `json:"id"`
	Service   string    `json:"service"`
	Account   string    `json:"account"`
	Secret    string    `json:"secret"`
	Alias     string    `json:"alias,omitempty"`
	URL       string    `json:"url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EncodeVault serializes v. Timestamps are written as RFC 3339 in UTC with
// nanosecond precision.
func EncodeVault(v Vault) ([]byte, error) {
	p := payload{
		Format:  PayloadFormat,
		VaultID: v.ID,
		NextID:  v.NextID,
		Entries: make([]payloadEntry, 0, len(v.Entries)),
	}
	for _, e := range v.Entries {
		p.Entries = append(p.Entries, payloadEntry{
			ID:        e.ID,
			Service:   e.Service,
			Account:   e.Account,
			Secret:    e.Secret,
			Alias:     e.Alias,
			URL:       e.URL,
			Notes:     e.Notes,
			CreatedAt: e.CreatedAt.UTC(),
			UpdatedAt: e.UpdatedAt.UTC(),
		})
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding vault payload: %w", err)
	}
	return data, nil
}

// DecodeVault parses and validates a payload produced by EncodeVault.
func DecodeVault(data []byte) (Vault, error) {
	var p payload
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Vault{}, fmt.Errorf("%w: decoding vault payload", kerrors.ErrFormat)
	}

	if p.Format != PayloadFormat {
		return Vault{}, fmt.Errorf("%w: unsupported payload format %d", kerrors.ErrFormat, p.Format)
	}

	v := Vault{
		ID:      p.VaultID,
		NextID:  p.NextID,
		Entries: make([]entries.Entry, 0, len(p.Entries)),
	}
	seen := make(map[uint64]struct{}, len(p.Entries))
	for _, pe := range p.Entries {
		if pe.ID == 0 {
			return Vault{}, fmt.Errorf("%w: entry with id 0", kerrors.ErrFormat)
		}
		if _, dup := seen[pe.ID]; dup {
			return Vault{}, fmt.Errorf("%w: duplicate entry id %d", kerrors.ErrFormat, pe.ID)
		}
		if pe.ID >= p.NextID {
			return Vault{}, fmt.Errorf("%w: entry id %d not below next_id %d", kerrors.ErrFormat, pe.ID, p.NextID)
		}
		seen[pe.ID] = struct{}{}

		v.Entries = append(v.Entries, entries.Entry{
			ID:        pe.ID,
			Service:   pe.Service,
			Account:   pe.Account,
			Secret:    pe.Secret,
			Alias:     pe.Alias,
			URL:       pe.URL,
			Notes:     pe.Notes,
			CreatedAt: pe.CreatedAt.UTC(),
			UpdatedAt: pe.UpdatedAt.UTC(),
		})
	}
	if v.NextID == 0 {
		return Vault{}, fmt.Errorf("%w: next_id must be at least 1", kerrors.ErrFormat)
	}

	return v, nil
}
