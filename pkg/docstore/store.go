// Package docstore provides in-memory session storage for open documents.
// Documents are hydrated once when the host attaches, then rescanned
// on-demand from Go memory instead of crossing the JS boundary per edit.
package docstore

import (
	"sync"

	"github.com/quillclouds/goquill/pkg/highlight"
)

// Store holds the leaf snapshots of open documents.
// Thread-safe for concurrent access from WASM callbacks.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// Document is one open document's current leaf snapshot.
type Document struct {
	ID      string           // Document ID (matches the host editor's ID)
	Leaves  []highlight.Leaf // Text-bearing leaves with absolute rune offsets
	Version int64            // For change detection
}

// New creates an empty document store.
func New() *Store {
	return &Store{
		docs: make(map[string]*Document),
	}
}

// Hydrate bulk-loads documents into the store.
// Called once when the host attaches with all open documents.
func (s *Store) Hydrate(docs []Document) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range docs {
		leaves := make([]highlight.Leaf, len(doc.Leaves))
		copy(leaves, doc.Leaves)
		s.docs[doc.ID] = &Document{
			ID:      doc.ID,
			Leaves:  leaves,
			Version: doc.Version,
		}
	}
	return len(docs)
}

// Upsert replaces a single document's leaf snapshot.
// Called on every content-changing transaction.
func (s *Store) Upsert(id string, leaves []highlight.Leaf, version int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]highlight.Leaf, len(leaves))
	copy(snapshot, leaves)
	s.docs[id] = &Document{
		ID:      id,
		Leaves:  snapshot,
		Version: version,
	}
}

// UpsertText stores flat text as line leaves.
func (s *Store) UpsertText(id, text string, version int64) {
	s.Upsert(id, highlight.LeavesFromText(text), version)
}

// Remove deletes a document from the store.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, id)
}

// Get retrieves a document by ID.
// Returns nil if not found.
func (s *Store) Get(id string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.docs[id]
}

// Leaves retrieves just the leaf snapshot by ID.
// Returns nil if not found.
func (s *Store) Leaves(id string) []highlight.Leaf {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if doc, ok := s.docs[id]; ok {
		return doc.Leaves
	}
	return nil
}

// Count returns the number of documents in the store.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.docs)
}

// AllIDs returns all document IDs.
func (s *Store) AllIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	return ids
}

// Clear removes all documents.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = make(map[string]*Document)
}
