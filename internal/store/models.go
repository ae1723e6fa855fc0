// Package store provides SQLite-backed persistence for GoQuill.
// It is the supply side of the engine's inbound interface: entity snapshots
// and per-document ignore lists are loaded here and handed to the highlight
// controller as plain values. Match results are never stored.
package store

import "github.com/quillclouds/goquill/pkg/mentions"

// Entity is a persisted entity record.
type Entity struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"` // "CHARACTER" | "LOCATION" | "ITEM"
	Aliases   []string `json:"aliases"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

// Snapshot converts the record to the engine's read-only entity value.
func (e *Entity) Snapshot() mentions.Entity {
	return mentions.Entity{
		ID:      e.ID,
		Name:    e.Name,
		Aliases: e.Aliases,
		Type:    mentions.ParseType(e.Type),
	}
}

// Document is a persisted plain-text document.
type Document struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Storer defines the interface for data persistence.
// SQLiteStore is the sole implementation.
type Storer interface {
	// Entities
	UpsertEntity(entity *Entity) error
	GetEntity(id string) (*Entity, error)
	GetEntityByName(name string) (*Entity, error)
	DeleteEntity(id string) error
	ListEntities(typ string) ([]*Entity, error)
	CountEntities() (int, error)

	// EntitySnapshots loads every entity as engine values, ready for the
	// pattern index.
	EntitySnapshots() ([]mentions.Entity, error)

	// Documents
	UpsertDocument(doc *Document) error
	GetDocument(id string) (*Document, error)
	DeleteDocument(id string) error
	ListDocuments() ([]*Document, error)

	// Per-document ignore lists (entity names, not ids)
	SetIgnored(docID string, names []string) error
	GetIgnored(docID string) ([]string, error)

	// Export/Import (database serialization for OPFS sync)
	Export() ([]byte, error)
	Import(data []byte) error

	// Lifecycle
	Close() error
}
