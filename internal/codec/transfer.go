package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PolarWolf314/candado/internal/entries"
	kerrors "github.com/PolarWolf314/candado/internal/errors"

	"github.com/BurntSushi/toml"
)

// Format identifies an import/export file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFor picks the transfer format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s (expected .json or .toml)", kerrors.ErrInvalidFileType, filepath.Base(path))
	}
}

// Record is one entry in an import or export file. ID is only honoured by a
// merge import.
type Record struct {
	ID      uint64 `json:"id,omitempty" toml:"id,omitempty"`
	Service string `json:"service" toml:"service"`
	Account string `json:"account" toml:"account"`
	Secret  string `json:"secret" toml:"secret"`
	Alias   string `json:"alias,omitempty" toml:"alias,omitempty"`
	URL     string `json:"url,omitempty" toml:"url,omitempty"`
	Notes   string `json:"notes,omitempty" toml:"notes,omitempty"`
}

// RecordFromEntry converts an entry for export.
func RecordFromEntry(e entries.Entry) Record {
	return Record{
		ID:      e.ID,
		Service: e.Service,
		Account: e.Account,
		Secret:  e.Secret,
		Alias:   e.Alias,
		URL:     e.URL,
		Notes:   e.Notes,
	}
}

// Fields returns the record values as repository input.
func (r Record) Fields() entries.Fields {
	return entries.Fields{
		Service: r.Service,
		Account: r.Account,
		Secret:  r.Secret,
		Alias:   r.Alias,
		URL:     r.URL,
		Notes:   r.Notes,
	}
}

// Patch returns a patch that overwrites every field of an entry with r.
func (r Record) Patch() entries.Patch {
	f := r.Fields()
	return entries.Patch{
		Service: &f.Service,
		Account: &f.Account,
		Secret:  &f.Secret,
		Alias:   &f.Alias,
		URL:     &f.URL,
		Notes:   &f.Notes,
	}
}

// legacyRecord also carries the field names used by older exports.
type legacyRecord struct {
	Record
	ID       recordID `json:"id,omitempty"`
	Email    string   `json:"email,omitempty"`
	Password string   `json:"password,omitempty"`
	Username string   `json:"username,omitempty"`
}

// recordID accepts numeric ids and the random string ids of older exports.
// Ids that are not numbers decode as 0, so the record is added as new.
type recordID uint64

func (id *recordID) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*id = 0
	switch v := raw.(type) {
	case float64:
		if v >= 1 && v == float64(uint64(v)) {
			*id = recordID(v)
		}
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			*id = recordID(n)
		}
	}
	return nil
}

func (l legacyRecord) normalize() Record {
	r := l.Record
	r.ID = uint64(l.ID)
	if r.Account == "" {
		r.Account = l.Email
	}
	if r.Secret == "" {
		r.Secret = l.Password
	}
	if r.Alias == "" {
		r.Alias = l.Username
	}
	return r
}

type tomlDocument struct {
	Entry []Record `toml:"entry"`
}

// EncodeRecords serializes records in the given format.
func EncodeRecords(format Format, records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json records: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(tomlDocument{Entry: records}); err != nil {
			return nil, fmt.Errorf("encoding toml records: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", kerrors.ErrInvalidFileType, format)
	}
}

// DecodeRecords parses an import file. Malformed content is ErrFormat.
func DecodeRecords(format Format, data []byte) ([]Record, error) {
	switch format {
	case FormatJSON:
		var raw []legacyRecord
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: invalid json import file", kerrors.ErrFormat)
		}
		records := make([]Record, 0, len(raw))
		for _, l := range raw {
			records = append(records, l.normalize())
		}
		return records, nil
	case FormatTOML:
		var doc tomlDocument
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("%w: invalid toml import file", kerrors.ErrFormat)
		}
		return doc.Entry, nil
	default:
		return nil, fmt.Errorf("%w: %q", kerrors.ErrInvalidFileType, format)
	}
}
