package mentions

import (
	"reflect"
	"testing"
)

func mustBuild(t *testing.T, entities []Entity) *Index {
	t.Helper()
	idx, err := Build(entities)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return idx
}

func TestMatchCaseInsensitive(t *testing.T) {
	idx := mustBuild(t, []Entity{{ID: "a", Name: "Alice", Type: TypeCharacter}})

	for _, text := range []string{"ALICE waved.", "alice waved.", "Alice waved."} {
		matches := idx.Match(text, nil)
		if len(matches) != 1 {
			t.Fatalf("Match(%q) got %d matches, want 1", text, len(matches))
		}
		if matches[0].Start != 0 || matches[0].End != 5 {
			t.Errorf("Match(%q) span [%d,%d), want [0,5)", text, matches[0].Start, matches[0].End)
		}
		if matches[0].Text != text[:5] {
			t.Errorf("matched text should preserve original casing, got %q", matches[0].Text)
		}
	}
}

func TestMatchLongestWinsOverSubstringEntity(t *testing.T) {
	// "Li" is a substring of "Li Wei"; the longer entity claims the span.
	idx := mustBuild(t, []Entity{
		{ID: "li", Name: "Li", Type: TypeCharacter},
		{ID: "liwei", Name: "Li Wei", Type: TypeCharacter},
	})

	matches := idx.Match("Li Wei entered.", nil)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(matches), matches)
	}
	if matches[0].EntityID != "liwei" || matches[0].Text != "Li Wei" {
		t.Errorf("longest match should win, got %+v", matches[0])
	}
}

func TestMatchBoundaryRejectsEmbeddedLatinTerm(t *testing.T) {
	idx := mustBuild(t, []Entity{{ID: "ann", Name: "Ann", Type: TypeCharacter}})

	if got := idx.Match("Anna is here.", nil); len(got) != 0 {
		t.Errorf("boundary rule should reject 'Ann' inside 'Anna', got %v", got)
	}
	if got := idx.Match("Ann is here.", nil); len(got) != 1 {
		t.Errorf("standalone 'Ann' should match, got %v", got)
	}
}

func TestMatchBoundaryRejectionIsPerOccurrence(t *testing.T) {
	idx := mustBuild(t, []Entity{{ID: "ann", Name: "Ann", Type: TypeCharacter}})

	// First occurrence embedded in "Anna" is rejected; the later standalone
	// occurrence is still found.
	matches := idx.Match("Anna waved at Ann.", nil)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(matches), matches)
	}
	if matches[0].Start != 14 || matches[0].End != 17 {
		t.Errorf("span [%d,%d), want [14,17)", matches[0].Start, matches[0].End)
	}
}

func TestMatchCJKNeedsNoBoundary(t *testing.T) {
	idx := mustBuild(t, []Entity{{ID: "wind", Name: "风", Type: TypeItem}})

	matches := idx.Match("狂风暴雨", nil)
	if len(matches) != 1 {
		t.Fatalf("embedded CJK term should match, got %v", matches)
	}
	if matches[0].Start != 1 || matches[0].End != 2 {
		t.Errorf("span [%d,%d), want [1,2)", matches[0].Start, matches[0].End)
	}
}

func TestMatchScenarioLiLei(t *testing.T) {
	// Spec scenario: the full name beats its own alias inside it.
	idx := mustBuild(t, []Entity{
		{ID: "lilei", Name: "李雷", Aliases: []string{"雷"}, Type: TypeCharacter},
	})

	matches := idx.Match("李雷走进了房间", nil)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(matches), matches)
	}
	m := matches[0]
	if m.Start != 0 || m.End != 2 || m.Text != "李雷" {
		t.Errorf("got {start:%d,end:%d,text:%q}, want {0,2,李雷}", m.Start, m.End, m.Text)
	}
}

func TestMatchScenarioLongSword(t *testing.T) {
	idx := mustBuild(t, []Entity{
		{ID: "sword", Name: "剑", Type: TypeItem},
		{ID: "longsword", Name: "长剑", Type: TypeItem},
	})

	matches := idx.Match("他拔出长剑", nil)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(matches), matches)
	}
	if matches[0].EntityID != "longsword" || matches[0].Start != 3 || matches[0].End != 5 {
		t.Errorf("want 长剑 at [3,5), got %+v", matches[0])
	}
}

func TestMatchIgnoreSuppressesAllAliases(t *testing.T) {
	idx := mustBuild(t, []Entity{
		{ID: "a", Name: "Alice", Aliases: []string{"Ali", "the Countess"}, Type: TypeCharacter},
		{ID: "b", Name: "Bob", Type: TypeCharacter},
	})

	ignore := NewIgnoreSet([]string{"alice"})
	matches := idx.Match("Alice, called Ali or the Countess, met Bob.", ignore)

	for _, m := range matches {
		if m.EntityID == "a" {
			t.Errorf("ignored entity surfaced via %q", m.Text)
		}
	}
	if len(matches) != 1 || matches[0].EntityName != "Bob" {
		t.Errorf("expected only Bob, got %v", matches)
	}
}

func TestMatchScenarioIgnoredAlice(t *testing.T) {
	idx := mustBuild(t, []Entity{{ID: "a", Name: "Alice", Type: TypeCharacter}})

	if got := idx.Match("Alice smiled.", NewIgnoreSet([]string{"Alice"})); len(got) != 0 {
		t.Errorf("expected zero matches, got %v", got)
	}
}

func TestMatchNonOverlap(t *testing.T) {
	idx := mustBuild(t, []Entity{
		{ID: "a", Name: "Alice", Aliases: []string{"Alice Liddell", "Liddell"}, Type: TypeCharacter},
		{ID: "w", Name: "Wonderland", Type: TypeLocation},
		{ID: "l", Name: "Land", Type: TypeLocation},
	})

	matches := idx.Match("Alice Liddell left Wonderland. Alice never returned to that Land.", nil)
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	for i := 0; i < len(matches); i++ {
		for j := i + 1; j < len(matches); j++ {
			a, b := matches[i], matches[j]
			if a.Start < b.End && b.Start < a.End {
				t.Errorf("overlapping matches %+v and %+v", a, b)
			}
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Start > matches[i].Start {
			t.Errorf("results not sorted by start: %v", matches)
		}
	}
}

func TestMatchIdempotent(t *testing.T) {
	idx := mustBuild(t, []Entity{
		{ID: "a", Name: "Alice", Aliases: []string{"Al"}, Type: TypeCharacter},
		{ID: "s", Name: "长剑", Type: TypeItem},
	})
	text := "Alice 拔出长剑, and Al followed."
	ignore := NewIgnoreSet(nil)

	first := idx.Match(text, ignore)
	second := idx.Match(text, ignore)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Match diverged:\n%v\n%v", first, second)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	idx := mustBuild(t, []Entity{{ID: "a", Name: "Alice", Type: TypeCharacter}})

	if got := idx.Match("", nil); got != nil {
		t.Errorf("empty text should match nothing, got %v", got)
	}

	var nilIdx *Index
	if got := nilIdx.Match("Alice", nil); got != nil {
		t.Errorf("nil index should match nothing, got %v", got)
	}
}

func TestMatchOffsetsAreRuneOffsets(t *testing.T) {
	idx := mustBuild(t, []Entity{{ID: "a", Name: "Alice", Type: TypeCharacter}})

	// Multi-byte runes before the mention must not skew offsets.
	text := "“你好” Alice!"
	matches := idx.Match(text, nil)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	runes := []rune(text)
	if string(runes[matches[0].Start:matches[0].End]) != "Alice" {
		t.Errorf("rune span [%d,%d) = %q, want Alice",
			matches[0].Start, matches[0].End, string(runes[matches[0].Start:matches[0].End]))
	}
}

func TestMatchEqualLengthTieFirstRegisteredWins(t *testing.T) {
	// Same length, distinct terms both matching the same span is impossible;
	// instead both entities share length and appear separately.
	idx := mustBuild(t, []Entity{
		{ID: "x", Name: "Mira", Type: TypeCharacter},
		{ID: "y", Name: "Nora", Type: TypeCharacter},
	})

	matches := idx.Match("Mira met Nora.", nil)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %v", len(matches), matches)
	}
	if matches[0].EntityID != "x" || matches[1].EntityID != "y" {
		t.Errorf("unexpected attribution: %v", matches)
	}
}
