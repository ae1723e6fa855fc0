package mentions

import (
	"strings"

	"github.com/orsinium-labs/stopwords"
)

var englishStopwords = stopwords.MustGet("en")

// honorifics that should never become aliases on their own.
var honorifics = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sir": true, "lady": true, "lord": true,
}

// SuggestAliases derives alias candidates from an entity name: the last name
// and first name for characters, the leading token for locations. Suggestions
// are offered to the host when an entity is created; they never enter the
// index unless the host registers them as real aliases.
func SuggestAliases(name string, typ EntityType) []string {
	tokens := nameTokens(name)
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) == 1 {
		// "The Shire" filters down to "shire"; the bare token is the alias.
		if len(strings.Fields(name)) > 1 && tokens[0] != lowerRunes(name) {
			return []string{tokens[0]}
		}
		return nil
	}

	first := tokens[0]
	last := tokens[len(tokens)-1]
	var out []string

	switch typ {
	case TypeCharacter:
		if len(last) >= 3 {
			out = append(out, last)
		}
		if len(tokens) >= 3 && first != last {
			out = append(out, first+" "+last)
		}
		if len(first) >= 4 && first != last {
			out = append(out, first)
		}
	case TypeLocation:
		if len(first) >= 4 {
			out = append(out, first)
		}
	}

	return out
}

// nameTokens lowercases and splits a name, dropping stop words and honorifics
// so "The Shire" suggests from "shire", not "the".
func nameTokens(name string) []string {
	fields := strings.Fields(lowerRunes(name))
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		w = strings.Trim(w, ".,'\"")
		if w == "" || honorifics[w] {
			continue
		}
		// Single letters are initials ("Monkey D. Luffy"), not stop words,
		// even though the English list contains entries like "d".
		if len(w) > 1 && englishStopwords != nil && englishStopwords.Contains(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
