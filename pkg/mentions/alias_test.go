package mentions

import "testing"

func TestSuggestAliasesCharacter(t *testing.T) {
	aliases := SuggestAliases("Monkey D. Luffy", TypeCharacter)

	found := map[string]bool{}
	for _, a := range aliases {
		found[a] = true
	}
	if !found["luffy"] {
		t.Errorf("should suggest last name 'luffy', got %v", aliases)
	}
	if !found["monkey luffy"] {
		t.Errorf("should suggest first+last, got %v", aliases)
	}
}

func TestSuggestAliasesKeepsMiddleInitial(t *testing.T) {
	// "d" is on the English stop-word list, but here it is an initial and
	// must survive tokenization so the first+last form can be derived.
	tokens := nameTokens("Monkey D. Luffy")
	if len(tokens) != 3 || tokens[1] != "d" {
		t.Fatalf("middle initial dropped from tokens: %v", tokens)
	}

	for _, a := range SuggestAliases("Monkey D. Luffy", TypeCharacter) {
		if a == "d" {
			t.Error("bare initial must not become an alias")
		}
	}
}

func TestSuggestAliasesLocationSkipsStopwords(t *testing.T) {
	aliases := SuggestAliases("The Shire", TypeLocation)

	for _, a := range aliases {
		if a == "the" {
			t.Errorf("stop word leaked into suggestions: %v", aliases)
		}
	}
	if len(aliases) != 1 || aliases[0] != "shire" {
		t.Errorf("want [shire], got %v", aliases)
	}
}

func TestSuggestAliasesSingleTokenName(t *testing.T) {
	if got := SuggestAliases("Gandalf", TypeCharacter); got != nil {
		t.Errorf("single-token names have no derivable aliases, got %v", got)
	}
}
