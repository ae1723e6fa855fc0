package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/quillclouds/goquill/pkg/mentions"
)

// SQLiteStore is the SQLite-backed data store.
// Thread-safe for concurrent WASM callbacks.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// schema defines all tables for the highlight data layer.
const schema = `
-- Entities (the per-project named-entity registry)
CREATE TABLE IF NOT EXISTS entities (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    aliases TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entities_name ON entities(name);
CREATE INDEX IF NOT EXISTS idx_entities_type ON entities(type);

-- Documents (plain-text content for headless scanning)
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

-- Ignore lists (entity NAMES per document; ignoring a name suppresses
-- the entity's aliases too, so only the name is stored)
CREATE TABLE IF NOT EXISTS ignores (
    doc_id TEXT NOT NULL,
    entity_name TEXT NOT NULL,
    PRIMARY KEY (doc_id, entity_name)
);

CREATE INDEX IF NOT EXISTS idx_ignores_doc ON ignores(doc_id);
`

// NewSQLiteStore creates a new in-memory SQLite store.
func NewSQLiteStore() (*SQLiteStore, error) {
	return NewSQLiteStoreWithDSN(":memory:")
}

// NewSQLiteStoreWithDSN creates a store with a specific data source name.
// Use ":memory:" for in-memory or a file path for persistent storage.
func NewSQLiteStoreWithDSN(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// =============================================================================
// Entity CRUD
// =============================================================================

// UpsertEntity inserts or updates an entity.
func (s *SQLiteStore) UpsertEntity(entity *Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	aliasesJSON, err := json.Marshal(entity.Aliases)
	if err != nil {
		return fmt.Errorf("failed to marshal aliases: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO entities (id, name, type, aliases, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			aliases = excluded.aliases,
			updated_at = excluded.updated_at
	`, entity.ID, entity.Name, entity.Type, string(aliasesJSON),
		entity.CreatedAt, entity.UpdatedAt)

	return err
}

func scanEntity(row interface{ Scan(...any) error }) (*Entity, error) {
	var entity Entity
	var aliasesJSON string

	err := row.Scan(&entity.ID, &entity.Name, &entity.Type, &aliasesJSON,
		&entity.CreatedAt, &entity.UpdatedAt)
	if err != nil {
		return nil, err
	}

	entity.Aliases = []string{}
	if aliasesJSON != "" {
		if err := json.Unmarshal([]byte(aliasesJSON), &entity.Aliases); err != nil {
			entity.Aliases = []string{}
		}
	}
	return &entity, nil
}

// GetEntity retrieves an entity by ID.
func (s *SQLiteStore) GetEntity(id string) (*Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, err := scanEntity(s.db.QueryRow(`
		SELECT id, name, type, aliases, created_at, updated_at
		FROM entities WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return entity, err
}

// GetEntityByName finds an entity by its name (case-insensitive).
func (s *SQLiteStore) GetEntityByName(name string) (*Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, err := scanEntity(s.db.QueryRow(`
		SELECT id, name, type, aliases, created_at, updated_at
		FROM entities WHERE LOWER(name) = LOWER(?)
	`, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return entity, err
}

// DeleteEntity removes an entity by ID.
func (s *SQLiteStore) DeleteEntity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM entities WHERE id = ?", id)
	return err
}

// ListEntities returns all entities, optionally filtered by type.
func (s *SQLiteStore) ListEntities(typ string) ([]*Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows *sql.Rows
	var err error

	if typ != "" {
		rows, err = s.db.Query(`
			SELECT id, name, type, aliases, created_at, updated_at
			FROM entities WHERE type = ? ORDER BY name
		`, typ)
	} else {
		rows, err = s.db.Query(`
			SELECT id, name, type, aliases, created_at, updated_at
			FROM entities ORDER BY name
		`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []*Entity
	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, rows.Err()
}

// CountEntities returns the total number of entities.
func (s *SQLiteStore) CountEntities() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM entities").Scan(&count)
	return count, err
}

// EntitySnapshots loads all entities as engine values.
func (s *SQLiteStore) EntitySnapshots() ([]mentions.Entity, error) {
	records, err := s.ListEntities("")
	if err != nil {
		return nil, err
	}

	snapshots := make([]mentions.Entity, 0, len(records))
	for _, r := range records {
		snapshots = append(snapshots, r.Snapshot())
	}
	return snapshots, nil
}

// =============================================================================
// Document CRUD
// =============================================================================

// UpsertDocument inserts or updates a document.
func (s *SQLiteStore) UpsertDocument(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO documents (id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			updated_at = excluded.updated_at
	`, doc.ID, doc.Title, doc.Content, doc.CreatedAt, doc.UpdatedAt)

	return err
}

// GetDocument retrieves a document by ID.
func (s *SQLiteStore) GetDocument(id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc Document
	err := s.db.QueryRow(`
		SELECT id, title, content, created_at, updated_at
		FROM documents WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Title, &doc.Content, &doc.CreatedAt, &doc.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// DeleteDocument removes a document and its ignore list.
func (s *SQLiteStore) DeleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM ignores WHERE doc_id = ?", id); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM documents WHERE id = ?", id)
	return err
}

// ListDocuments returns all documents ordered by title.
func (s *SQLiteStore) ListDocuments() ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, title, content, created_at, updated_at
		FROM documents ORDER BY title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content,
			&doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// =============================================================================
// Ignore lists
// =============================================================================

// SetIgnored replaces a document's ignore list.
func (s *SQLiteStore) SetIgnored(docID string, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM ignores WHERE doc_id = ?", docID); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := s.db.Exec(`
			INSERT OR IGNORE INTO ignores (doc_id, entity_name) VALUES (?, ?)
		`, docID, name); err != nil {
			return err
		}
	}
	return nil
}

// GetIgnored returns a document's ignore list.
func (s *SQLiteStore) GetIgnored(docID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT entity_name FROM ignores WHERE doc_id = ? ORDER BY entity_name
	`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// =============================================================================
// Export/Import
// =============================================================================

type exportData struct {
	Entities  []*Entity           `json:"entities"`
	Documents []*Document         `json:"documents"`
	Ignores   map[string][]string `json:"ignores"`
}

// Export serializes all tables to JSON bytes.
// Portable: does not depend on sqlite3 serialization APIs.
func (s *SQLiteStore) Export() ([]byte, error) {
	entities, err := s.ListEntities("")
	if err != nil {
		return nil, fmt.Errorf("export entities: %w", err)
	}
	docs, err := s.ListDocuments()
	if err != nil {
		return nil, fmt.Errorf("export documents: %w", err)
	}

	data := exportData{
		Entities:  entities,
		Documents: docs,
		Ignores:   make(map[string][]string),
	}
	for _, doc := range docs {
		names, err := s.GetIgnored(doc.ID)
		if err != nil {
			return nil, fmt.Errorf("export ignores for %s: %w", doc.ID, err)
		}
		if len(names) > 0 {
			data.Ignores[doc.ID] = names
		}
	}

	return json.Marshal(data)
}

// Import restores the database state from an exported JSON byte slice.
// Clears all existing data and re-inserts from the export.
func (s *SQLiteStore) Import(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	var importData exportData
	if err := json.Unmarshal(data, &importData); err != nil {
		return fmt.Errorf("import unmarshal: %w", err)
	}

	s.mu.Lock()
	for _, table := range []string{"ignores", "documents", "entities"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	s.mu.Unlock()

	for _, e := range importData.Entities {
		if err := s.UpsertEntity(e); err != nil {
			return fmt.Errorf("import entity %s: %w", e.ID, err)
		}
	}
	for _, d := range importData.Documents {
		if err := s.UpsertDocument(d); err != nil {
			return fmt.Errorf("import document %s: %w", d.ID, err)
		}
	}
	for docID, names := range importData.Ignores {
		if err := s.SetIgnored(docID, names); err != nil {
			return fmt.Errorf("import ignores %s: %w", docID, err)
		}
	}

	return nil
}

// Compile-time interface check
var _ Storer = (*SQLiteStore)(nil)
