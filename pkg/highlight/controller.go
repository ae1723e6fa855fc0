// Package highlight keeps a live decoration layer over a mutable rich-text
// document in sync with every edit, entity-set change, and ignore-list
// change. The controller observes the host document as a sequence of
// immutable text-leaf snapshots with absolute offsets; it never holds a
// reference into host-owned mutable structures.
package highlight

import (
	"github.com/quillclouds/goquill/pkg/mentions"
)

// Leaf is one text-bearing node of the host document. Start is the leaf's
// absolute rune offset in the document.
type Leaf struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
}

// Transaction is one host change notification. DocChanged is false for
// transactions that do not touch content (selection moves and the like).
type Transaction struct {
	DocChanged bool
	Leaves     []Leaf
}

// Decoration is one positioned inline annotation, rendered by the host as
// non-editable markup styled by Class.
type Decoration struct {
	Start      int                 `json:"start"`
	End        int                 `json:"end"`
	Class      string              `json:"cssClassName"`
	EntityID   string              `json:"entityId"`
	EntityName string              `json:"entityName"`
	EntityType mentions.EntityType `json:"entityType"`
}

// Rect is the bounding box of a decorated span, supplied by the host on
// pointer-enter.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PointerEvent carries the host pointer state for click and context-menu
// dispatch.
type PointerEvent struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Button int     `json:"button"`
}

// Events is the callback surface to the host UI. Nil callbacks are skipped.
type Events struct {
	OnEntityHover       func(entity *mentions.Entity, rect *Rect)
	OnEntityClick       func(entity *mentions.Entity, ev PointerEvent)
	OnEntityContextMenu func(entity *mentions.Entity, ev PointerEvent)
}

// Controller owns the decoration state for one document session. All methods
// run synchronously on the host's transaction loop; every recompute replaces
// the decoration slice wholesale, so the host never observes a partial
// update.
type Controller struct {
	cache    *mentions.Cache
	index    *mentions.Index
	entities []mentions.Entity
	byID     map[string]*mentions.Entity

	ignored      mentions.IgnoreSet
	ignoredNames []string

	leaves      []Leaf
	decorations []Decoration

	// Per-leaf match memo, keyed by leaf text. Valid only for the current
	// (index, ignore set) pair; rebuilt every recompute so stale leaf texts
	// do not accumulate.
	leafMemo map[string][]mentions.MatchResult

	events Events
}

// NewController creates an idle controller with no entities loaded.
func NewController(events Events) *Controller {
	return &Controller{
		cache:  mentions.NewCache(),
		byID:   make(map[string]*mentions.Entity),
		events: events,
	}
}

// SetEntities replaces the entity snapshot and recomputes decorations
// regardless of whether the document changed. The index is rebuilt only when
// the snapshot's fingerprint actually changed.
func (c *Controller) SetEntities(entities []mentions.Entity) error {
	idx, err := c.cache.GetOrBuild(entities)
	if err != nil {
		return err
	}

	c.entities = make([]mentions.Entity, len(entities))
	copy(c.entities, entities)
	c.byID = make(map[string]*mentions.Entity, len(c.entities))
	for i := range c.entities {
		c.byID[c.entities[i].ID] = &c.entities[i]
	}

	if idx != c.index {
		c.index = idx
		c.leafMemo = nil
	}
	c.recompute()
	return nil
}

// SetIgnoredEntities replaces the ignore set (entity names, case-insensitive)
// and recomputes. Ignoring a name suppresses the entity's aliases too.
func (c *Controller) SetIgnoredEntities(names []string) {
	c.ignoredNames = append([]string(nil), names...)
	c.ignored = mentions.NewIgnoreSet(names)
	c.leafMemo = nil
	c.recompute()
}

// IgnoredEntities returns the current ignore list as supplied.
func (c *Controller) IgnoredEntities() []string {
	return c.ignoredNames
}

// Apply processes one host transaction. Content changes replace the leaf
// snapshot and recompute; anything else returns the prior decorations
// unchanged, so cursor movement never triggers a rescan.
func (c *Controller) Apply(tx Transaction) []Decoration {
	if !tx.DocChanged {
		return c.decorations
	}

	c.leaves = make([]Leaf, len(tx.Leaves))
	copy(c.leaves, tx.Leaves)
	c.recompute()
	return c.decorations
}

// Decorations returns the decorations from the most recently completed
// recompute.
func (c *Controller) Decorations() []Decoration {
	return c.decorations
}

// recompute rescans the leaf snapshot and swaps in a fresh decoration slice.
// Leaves whose text was already matched under the current index and ignore
// set reuse the memoized local matches; output is identical to a full rescan
// because matching is per leaf either way.
func (c *Controller) recompute() {
	if c.index == nil {
		c.decorations = nil
		return
	}

	memo := make(map[string][]mentions.MatchResult, len(c.leaves))
	decorations := make([]Decoration, 0, len(c.decorations))

	for _, leaf := range c.leaves {
		local, ok := memo[leaf.Text]
		if !ok {
			if prev, hit := c.leafMemo[leaf.Text]; hit {
				local = prev
			} else {
				local = c.index.Match(leaf.Text, c.ignored)
			}
			memo[leaf.Text] = local
		}

		for _, m := range local {
			decorations = append(decorations, Decoration{
				Start:      leaf.Start + m.Start,
				End:        leaf.Start + m.End,
				Class:      m.EntityType.CSSClass(),
				EntityID:   m.EntityID,
				EntityName: m.EntityName,
				EntityType: m.EntityType,
			})
		}
	}

	c.leafMemo = memo
	c.decorations = decorations
}

// resolve maps a decoration index to the entity in the *current* snapshot.
// Returns nil for out-of-range indexes and for entities deleted since the
// decoration was built; both are harmless races with the host.
func (c *Controller) resolve(i int) *mentions.Entity {
	if i < 0 || i >= len(c.decorations) {
		return nil
	}
	return c.byID[c.decorations[i].EntityID]
}

// PointerEnter dispatches a hover for the decoration at index i with its
// bounding rect. Stale decorations fire nothing.
func (c *Controller) PointerEnter(i int, rect Rect) {
	entity := c.resolve(i)
	if entity == nil || c.events.OnEntityHover == nil {
		return
	}
	c.events.OnEntityHover(entity, &rect)
}

// PointerLeave clears the hover.
func (c *Controller) PointerLeave() {
	if c.events.OnEntityHover == nil {
		return
	}
	c.events.OnEntityHover(nil, nil)
}

// Click dispatches a click on the decoration at index i.
func (c *Controller) Click(i int, ev PointerEvent) {
	entity := c.resolve(i)
	if entity == nil || c.events.OnEntityClick == nil {
		return
	}
	c.events.OnEntityClick(entity, ev)
}

// ContextMenu dispatches a context-menu event on the decoration at index i.
// Returns true when the host should suppress the platform default menu;
// stale decorations fire nothing and leave the default menu alone.
func (c *Controller) ContextMenu(i int, ev PointerEvent) bool {
	entity := c.resolve(i)
	if entity == nil {
		return false
	}
	if c.events.OnEntityContextMenu != nil {
		c.events.OnEntityContextMenu(entity, ev)
	}
	return true
}

// Related returns the distinct entities currently decorated in the document,
// in first-appearance order. This is the "related entities" payload the
// host's prompt layer consumes.
func (c *Controller) Related() []mentions.Entity {
	seen := make(map[string]struct{}, len(c.decorations))
	var out []mentions.Entity
	for _, d := range c.decorations {
		if _, dup := seen[d.EntityID]; dup {
			continue
		}
		seen[d.EntityID] = struct{}{}
		if e := c.byID[d.EntityID]; e != nil {
			out = append(out, *e)
		}
	}
	return out
}
