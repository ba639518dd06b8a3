package entries

import (
	"testing"
	"time"

	kerrors "github.com/PolarWolf314/candado/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

// fixedClock returns the same instant on every call.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seeded(t *testing.T) *Repository {
	t.Helper()
	r := New(1, nil)
	for _, f := range []Fields{
		{Service: "GitHub", Account: "me@x.com", Secret: "gh", URL: "https://github.com"},
		{Service: "gitlab", Account: "work@corp.io", Secret: "gl"},
		{Service: "bank", Account: "1234", Secret: "pin", URL: "https://bank.example"},
	} {
		_, err := r.Add(f)
		require.NoError(t, err)
	}
	return r
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	r := New(1, nil)

	id1, err := r.Add(Fields{Service: "github", Account: "me@x.com", Secret: "s3cr3t"})
	require.NoError(t, err)
	id2, err := r.Add(Fields{Service: "github", Account: "me@x.com", Secret: "other"})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2, "duplicate service/account is allowed")
	assert.Equal(t, 2, r.Len())
}

func TestAddSetsTimestamps(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	r := New(1, nil, WithClock(fixedClock(at)))

	id, err := r.Add(Fields{Service: "github", Secret: "s"})
	require.NoError(t, err)

	e, err := r.Get(id)
	require.NoError(t, err)
	assert.True(t, e.CreatedAt.Equal(at))
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)
	assert.Equal(t, time.UTC, e.CreatedAt.Location())
}

func TestAddValidates(t *testing.T) {
	r := New(1, nil)

	_, err := r.Add(Fields{Service: "", Secret: "s"})
	assert.ErrorIs(t, err, kerrors.ErrInvalidEntry)

	_, err = r.Add(Fields{Service: "github", Secret: ""})
	assert.ErrorIs(t, err, kerrors.ErrInvalidEntry)

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, uint64(1), r.NextID(), "failed adds must not consume ids")
}

func TestFindAfterAdd(t *testing.T) {
	r := seeded(t)

	id, err := r.Add(Fields{Service: "Mastodon", Account: "@me", Secret: "toot", Notes: "fediverse"})
	require.NoError(t, err)

	got := r.Find("mastodon")
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "Mastodon", got[0].Service)
	assert.Equal(t, "@me", got[0].Account)
	assert.Equal(t, "toot", got[0].Secret)
	assert.Equal(t, "fediverse", got[0].Notes)
}

func TestFind(t *testing.T) {
	r := seeded(t)

	tests := []struct {
		query string
		want  []uint64
	}{
		{"", []uint64{1, 2, 3}},
		{"   ", []uint64{1, 2, 3}},
		{"git", []uint64{1, 2}},
		{"GITHUB", []uint64{1}},
		{"corp.io", []uint64{2}},
		{"example", []uint64{3}},
		{"https", []uint64{1, 3}},
		{"pin", nil}, // secrets are never searched
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var ids []uint64
			for _, e := range r.Find(tt.query) {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFindDoesNotSearchNotesOrAlias(t *testing.T) {
	r := New(1, nil)
	_, err := r.Add(Fields{Service: "svc", Secret: "s", Alias: "hidden-alias", Notes: "hidden-note"})
	require.NoError(t, err)

	assert.Empty(t, r.Find("hidden"))
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	r := seeded(t)
	before, err := r.Get(2)
	require.NoError(t, err)

	require.NoError(t, r.Update(2, Patch{Account: str("new@corp.io"), Notes: str("rotated")}))

	after, err := r.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "new@corp.io", after.Account)
	assert.Equal(t, "rotated", after.Notes)
	assert.Equal(t, before.Service, after.Service)
	assert.Equal(t, before.Secret, after.Secret)
	assert.Equal(t, before.URL, after.URL)
	assert.Equal(t, before.Alias, after.Alias)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUpdateTimestampsStrictlyIncrease(t *testing.T) {
	at := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	r := New(1, nil, WithClock(fixedClock(at)))

	id, err := r.Add(Fields{Service: "svc", Secret: "s"})
	require.NoError(t, err)
	created, _ := r.Get(id)

	prev := created.UpdatedAt
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Update(id, Patch{Secret: str("s2")}))
		e, _ := r.Get(id)
		assert.True(t, e.UpdatedAt.After(prev), "updated_at must strictly increase")
		assert.Equal(t, created.CreatedAt, e.CreatedAt)
		prev = e.UpdatedAt
	}
}

func TestUpdateRejectsBlankingRequiredFields(t *testing.T) {
	r := seeded(t)

	assert.ErrorIs(t, r.Update(1, Patch{Service: str("")}), kerrors.ErrInvalidEntry)
	assert.ErrorIs(t, r.Update(1, Patch{Secret: str("")}), kerrors.ErrInvalidEntry)

	e, _ := r.Get(1)
	assert.Equal(t, "GitHub", e.Service, "failed update must not change the entry")
	assert.Equal(t, "gh", e.Secret)
}

func TestUnknownIDIsNotFound(t *testing.T) {
	r := seeded(t)

	assert.ErrorIs(t, r.Update(99, Patch{Secret: str("x")}), kerrors.ErrNotFound)
	assert.ErrorIs(t, r.Remove(99), kerrors.ErrNotFound)
	_, err := r.Get(99)
	assert.ErrorIs(t, err, kerrors.ErrNotFound)
}

func TestRemove(t *testing.T) {
	r := seeded(t)

	require.NoError(t, r.Remove(2))

	assert.ErrorIs(t, r.Update(2, Patch{Secret: str("x")}), kerrors.ErrNotFound)
	assert.ErrorIs(t, r.Remove(2), kerrors.ErrNotFound)

	var ids []uint64
	for _, e := range r.List() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []uint64{1, 3}, ids, "order of remaining entries is preserved")

	id, err := r.Add(Fields{Service: "new", Secret: "s"})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), id, "ids are never reused")
}

func TestListReturnsCopy(t *testing.T) {
	r := seeded(t)
	list := r.List()
	list[0].Secret = "mutated"

	e, _ := r.Get(1)
	assert.Equal(t, "gh", e.Secret)
}

func TestNewRaisesNextIDPastExisting(t *testing.T) {
	r := New(0, []Entry{{ID: 7, Service: "a", Secret: "s"}, {ID: 3, Service: "b", Secret: "s"}})
	assert.Equal(t, uint64(8), r.NextID())

	r = New(20, []Entry{{ID: 7, Service: "a", Secret: "s"}})
	assert.Equal(t, uint64(20), r.NextID())
}

func TestResetKeepsCounter(t *testing.T) {
	r := seeded(t)
	r.Reset()
	assert.Equal(t, 0, r.Len())

	id, err := r.Add(Fields{Service: "x", Secret: "s"})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), id)
}

func TestReplace(t *testing.T) {
	r := seeded(t)

	ids, err := r.Replace([]Fields{{Service: "a", Secret: "1"}, {Service: "b", Secret: "2"}})
	require.NoError(t, err)
	assert.Equal(t, []uint64{4, 5}, ids)
	assert.Equal(t, 2, r.Len())

	_, err = r.Replace([]Fields{{Service: "c", Secret: "3"}, {Service: "", Secret: "4"}})
	assert.ErrorIs(t, err, kerrors.ErrInvalidEntry)
	assert.Equal(t, 2, r.Len(), "an invalid record must leave the repository untouched")
}

func TestPatchIsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{URL: str("")}.IsEmpty())
}
