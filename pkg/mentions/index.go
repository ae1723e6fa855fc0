package mentions

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// SearchTerm is one lower-cased search pattern and the entity that owns it.
// Derived at index build time, never persisted.
type SearchTerm struct {
	Term   string
	Entity *Entity
}

// Index is the compiled pattern structure for one entity snapshot.
// Terms are ordered by descending rune length, encounter order on ties;
// the automaton's pattern IDs index into that ordering.
type Index struct {
	terms       []SearchTerm
	needsBounds []bool
	ac          *ahocorasick.Automaton
	fingerprint string
}

// Build compiles an Index from an entity snapshot. Deterministic for a given
// snapshot. If two entities (or an entity and its own aliases) yield the same
// lower-cased term, the first registered wins and later duplicates are
// silently dropped. An empty entity list yields a valid empty index.
func Build(entities []Entity) (*Index, error) {
	idx := &Index{fingerprint: Fingerprint(entities)}

	// Copy the snapshot so the index never aliases caller-owned memory.
	snap := make([]Entity, len(entities))
	copy(snap, entities)

	seen := make(map[string]struct{})
	for i := range snap {
		e := &snap[i]
		surfaces := append([]string{e.Name}, e.Aliases...)
		for _, surface := range surfaces {
			term := lowerRunes(surface)
			if term == "" {
				continue
			}
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			idx.terms = append(idx.terms, SearchTerm{Term: term, Entity: e})
		}
	}

	// Longest-first; stable keeps encounter order on equal lengths.
	sort.SliceStable(idx.terms, func(a, b int) bool {
		return utf8.RuneCountInString(idx.terms[a].Term) > utf8.RuneCountInString(idx.terms[b].Term)
	})

	if len(idx.terms) == 0 {
		return idx, nil
	}

	patterns := make([]string, len(idx.terms))
	idx.needsBounds = make([]bool, len(idx.terms))
	for i, st := range idx.terms {
		patterns[i] = st.Term
		idx.needsBounds[i] = termNeedsBoundary(st.Term)
	}

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	idx.ac = automaton

	return idx, nil
}

// Terms returns the index's search terms in match-priority order.
func (idx *Index) Terms() []SearchTerm {
	return idx.terms
}

// Fingerprint hashes an entity snapshot order-independently: same entities in
// any order produce the same value, any change to an id, name, or alias list
// produces a different one.
func Fingerprint(entities []Entity) string {
	lines := make([]string, 0, len(entities))
	for _, e := range entities {
		line := e.ID + "\x1f" + e.Name
		for _, a := range e.Aliases {
			line += "\x1f" + a
		}
		lines = append(lines, line)
	}
	sort.Strings(lines)

	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{0x1e})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Cache memoizes the most recent Index by entity-set fingerprint. One cache
// per document session; single writer, no locking needed.
type Cache struct {
	fingerprint string
	index       *Index
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// GetOrBuild returns the cached index when the snapshot's fingerprint matches,
// otherwise rebuilds. Cache hits return the identical *Index so downstream
// callers can skip work on reference equality.
func (c *Cache) GetOrBuild(entities []Entity) (*Index, error) {
	fp := Fingerprint(entities)
	if c.index != nil && c.fingerprint == fp {
		return c.index, nil
	}

	idx, err := Build(entities)
	if err != nil {
		return nil, err
	}
	c.fingerprint = fp
	c.index = idx
	return idx, nil
}
