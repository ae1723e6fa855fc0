// Package mentions implements multi-pattern entity mention matching over
// free-form prose. A compiled Index finds every occurrence of every entity
// name and alias via Aho-Corasick, then resolves overlapping candidates
// deterministically: longest term wins, first-registered wins on ties.
package mentions

import (
	"strings"
	"unicode"
)

// EntityType classifies a story entity.
type EntityType int

const (
	TypeCharacter EntityType = iota
	TypeLocation
	TypeItem
)

func (t EntityType) String() string {
	switch t {
	case TypeCharacter:
		return "CHARACTER"
	case TypeLocation:
		return "LOCATION"
	case TypeItem:
		return "ITEM"
	default:
		return "CHARACTER"
	}
}

// CSSClass returns the fixed inline style class for decorations of this type.
func (t EntityType) CSSClass() string {
	switch t {
	case TypeLocation:
		return "entity-location"
	case TypeItem:
		return "entity-item"
	default:
		return "entity-character"
	}
}

// ParseType parses a type string. Unknown values fall back to CHARACTER,
// matching how the host app treats untyped entries.
func ParseType(s string) EntityType {
	switch strings.ToUpper(s) {
	case "LOCATION", "PLACE":
		return TypeLocation
	case "ITEM", "OBJECT":
		return TypeItem
	default:
		return TypeCharacter
	}
}

// UnmarshalJSON accepts string type values from the JS host.
func (t *EntityType) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*t = ParseType(s)
	return nil
}

// MarshalJSON emits the string form so the host sees "CHARACTER" etc.
func (t EntityType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Entity is a read-only snapshot of a named story element. The persistence
// layer owns the record; the engine never mutates it.
type Entity struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Aliases []string   `json:"aliases"`
	Type    EntityType `json:"type"`
}

// MatchResult is one accepted, non-overlapping occurrence of a term.
// Offsets are half-open rune offsets into the scanned text. Results are
// produced fresh per scan and never persisted.
type MatchResult struct {
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Text       string     `json:"text"`
	EntityID   string     `json:"entityId"`
	EntityName string     `json:"entityName"`
	EntityType EntityType `json:"entityType"`
}

// IgnoreSet is a case-insensitive set of entity names. An ignored entity is
// skipped entirely, aliases included.
type IgnoreSet map[string]struct{}

// NewIgnoreSet builds an IgnoreSet from entity names.
func NewIgnoreSet(names []string) IgnoreSet {
	if len(names) == 0 {
		return nil
	}
	set := make(IgnoreSet, len(names))
	for _, n := range names {
		set[lowerRunes(n)] = struct{}{}
	}
	return set
}

// Has reports whether the entity name is ignored.
func (s IgnoreSet) Has(name string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[lowerRunes(name)]
	return ok
}

// lowerRunes lowercases rune by rune. Both patterns and scanned text go
// through this so offsets stay 1:1 per rune.
func lowerRunes(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		out.WriteRune(unicode.ToLower(r))
	}
	return out.String()
}
