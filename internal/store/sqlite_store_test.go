package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillclouds/goquill/pkg/mentions"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore()
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEntityCRUD(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().Unix()

	e := &Entity{
		ID:        "e1",
		Name:      "Alice",
		Type:      "CHARACTER",
		Aliases:   []string{"Ali", "the Countess"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.UpsertEntity(e))

	got, err := s.GetEntity("e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, []string{"Ali", "the Countess"}, got.Aliases)

	byName, err := s.GetEntityByName("ALICE")
	require.NoError(t, err)
	require.NotNil(t, byName, "name lookup should be case-insensitive")
	assert.Equal(t, "e1", byName.ID)

	e.Aliases = []string{"Ali"}
	require.NoError(t, s.UpsertEntity(e))
	got, err = s.GetEntity("e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ali"}, got.Aliases)

	count, err := s.CountEntities()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.DeleteEntity("e1"))
	got, err = s.GetEntity("e1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEntitySnapshots(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertEntity(&Entity{ID: "e1", Name: "Alice", Type: "CHARACTER", Aliases: []string{"Ali"}}))
	require.NoError(t, s.UpsertEntity(&Entity{ID: "e2", Name: "The Shire", Type: "LOCATION"}))

	snaps, err := s.EntitySnapshots()
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	assert.Equal(t, mentions.TypeCharacter, snaps[0].Type)
	assert.Equal(t, mentions.TypeLocation, snaps[1].Type)
	assert.Equal(t, []string{"Ali"}, snaps[0].Aliases)
}

func TestIgnoreListRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertDocument(&Document{ID: "d1", Title: "Chapter 1", Content: "Alice waved."}))

	require.NoError(t, s.SetIgnored("d1", []string{"Alice", "Bob"}))
	names, err := s.GetIgnored("d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)

	// Replacing the list drops old entries.
	require.NoError(t, s.SetIgnored("d1", []string{"Bob"}))
	names, err = s.GetIgnored("d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob"}, names)

	// Deleting the document clears its ignore list.
	require.NoError(t, s.DeleteDocument("d1"))
	names, err = s.GetIgnored("d1")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestExportImport(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertEntity(&Entity{ID: "e1", Name: "Alice", Type: "CHARACTER", Aliases: []string{"Ali"}}))
	require.NoError(t, s.UpsertDocument(&Document{ID: "d1", Title: "Chapter 1", Content: "Alice waved."}))
	require.NoError(t, s.SetIgnored("d1", []string{"Alice"}))

	data, err := s.Export()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Fresh store to simulate reload.
	s2 := newTestStore(t)
	require.NoError(t, s2.Import(data))

	entity, err := s2.GetEntity("e1")
	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Equal(t, []string{"Ali"}, entity.Aliases)

	doc, err := s2.GetDocument("d1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Alice waved.", doc.Content)

	names, err := s2.GetIgnored("d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, names)
}
