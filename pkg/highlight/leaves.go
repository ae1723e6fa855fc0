package highlight

import "strings"

// LeavesFromText decomposes plain text into line leaves with absolute rune
// offsets. Hosts with a real document tree supply their own leaves; this is
// the decomposition the CLI and docstore use for flat text.
func LeavesFromText(text string) []Leaf {
	var leaves []Leaf
	offset := 0

	for _, line := range strings.Split(text, "\n") {
		n := len([]rune(line))
		if n > 0 {
			leaves = append(leaves, Leaf{Text: line, Start: offset})
		}
		offset += n + 1 // the newline
	}

	return leaves
}
