package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillclouds/goquill/pkg/highlight"
)

func TestHydrateAndGet(t *testing.T) {
	s := New()

	n := s.Hydrate([]Document{
		{ID: "d1", Leaves: highlight.LeavesFromText("Alice waved."), Version: 1},
		{ID: "d2", Leaves: highlight.LeavesFromText("李雷走了"), Version: 3},
	})
	require.Equal(t, 2, n)
	require.Equal(t, 2, s.Count())

	doc := s.Get("d2")
	require.NotNil(t, doc)
	assert.Equal(t, int64(3), doc.Version)
	assert.Equal(t, "李雷走了", doc.Leaves[0].Text)

	assert.Nil(t, s.Get("missing"))
	assert.Nil(t, s.Leaves("missing"))
}

func TestUpsertCopiesLeaves(t *testing.T) {
	s := New()

	leaves := []highlight.Leaf{{Text: "Alice", Start: 0}}
	s.Upsert("d1", leaves, 1)

	// Caller mutation after Upsert must not leak into the store.
	leaves[0].Text = "mutated"
	assert.Equal(t, "Alice", s.Leaves("d1")[0].Text)

	s.UpsertText("d1", "Alice left.\nBob stayed.", 2)
	doc := s.Get("d1")
	require.Len(t, doc.Leaves, 2)
	assert.Equal(t, int64(2), doc.Version)
	assert.Equal(t, 12, doc.Leaves[1].Start)
}

func TestRemoveAndClear(t *testing.T) {
	s := New()
	s.UpsertText("d1", "one", 1)
	s.UpsertText("d2", "two", 1)

	s.Remove("d1")
	assert.Equal(t, 1, s.Count())
	assert.ElementsMatch(t, []string{"d2"}, s.AllIDs())

	s.Clear()
	assert.Equal(t, 0, s.Count())
}
