package mentions

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// termNeedsBoundary reports whether occurrences of the term must sit on a
// token boundary. Pure-CJK terms match anywhere (CJK prose has no whitespace
// word boundaries); a term containing any Latin letter or digit requires
// boundaries. The rule is deliberately coarse for mixed-script terms.
func termNeedsBoundary(term string) bool {
	for _, r := range term {
		if isLatinOrDigit(r) {
			return true
		}
	}
	return false
}

func isLatinOrDigit(r rune) bool {
	return unicode.Is(unicode.Latin, r) || unicode.IsDigit(r)
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// isWordRune classifies the neighbor runes of a candidate: a boundary-checked
// match may not touch a Latin letter, digit, or CJK rune on either side.
func isWordRune(r rune) bool {
	return isLatinOrDigit(r) || isCJK(r)
}

type span struct {
	start, end int
}

func overlapsAny(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// lowerOffsets lowercases rune by rune and maps every byte offset of the
// lowered string back to a rune offset in the original. Lowering is 1:1 per
// rune, so lowered rune offsets equal original rune offsets; only the byte
// widths can differ.
func lowerOffsets(orig []rune) (string, []int) {
	var buf []byte
	byteToRune := make([]int, 0, len(orig)+1)

	for i, r := range orig {
		lr := unicode.ToLower(r)
		w := utf8.RuneLen(lr)
		for j := 0; j < w; j++ {
			byteToRune = append(byteToRune, i)
		}
		buf = utf8.AppendRune(buf, lr)
	}
	byteToRune = append(byteToRune, len(orig))

	return string(buf), byteToRune
}

// Match scans text and returns the ordered, non-overlapping mention list.
// Pure function of (index, text, ignore): candidate occurrences come from the
// automaton, then are resolved longest-term-first (encounter order on equal
// lengths, left to right per term). A candidate is dropped if it overlaps an
// already-accepted span or fails its boundary check; rejection is
// per-occurrence, so the same term can still be accepted elsewhere. Results
// are sorted ascending by start. Empty text or an empty index yield nil.
func (idx *Index) Match(text string, ignore IgnoreSet) []MatchResult {
	if idx == nil || idx.ac == nil || text == "" {
		return nil
	}

	orig := []rune(text)
	lowered, byteToRune := lowerOffsets(orig)

	cands := idx.ac.FindAllOverlapping([]byte(lowered))
	if len(cands) == 0 {
		return nil
	}

	// Pattern IDs follow the index's longest-first term order, so this sort
	// reproduces the reference iteration: per term, occurrences left to right.
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].PatternID != cands[b].PatternID {
			return cands[a].PatternID < cands[b].PatternID
		}
		return cands[a].Start < cands[b].Start
	})

	var accepted []span
	var results []MatchResult

	for _, m := range cands {
		owner := idx.terms[m.PatternID].Entity
		if ignore.Has(owner.Name) {
			continue
		}

		start := byteToRune[m.Start]
		end := byteToRune[m.End]

		if overlapsAny(accepted, start, end) {
			continue
		}
		if idx.needsBounds[m.PatternID] {
			if start > 0 && isWordRune(orig[start-1]) {
				continue
			}
			if end < len(orig) && isWordRune(orig[end]) {
				continue
			}
		}

		accepted = append(accepted, span{start, end})
		results = append(results, MatchResult{
			Start:      start,
			End:        end,
			Text:       string(orig[start:end]),
			EntityID:   owner.ID,
			EntityName: owner.Name,
			EntityType: owner.Type,
		})
	}

	sort.Slice(results, func(a, b int) bool {
		return results[a].Start < results[b].Start
	})

	return results
}
