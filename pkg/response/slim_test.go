package response

import (
	"encoding/json"
	"testing"

	"github.com/quillclouds/goquill/pkg/highlight"
	"github.com/quillclouds/goquill/pkg/mentions"
)

func TestMarshalSlimResponse(t *testing.T) {
	decos := []highlight.Decoration{
		{Start: 0, End: 5, Class: "entity-character", EntityID: "e1", EntityName: "Alice", EntityType: mentions.TypeCharacter},
	}

	data, err := MarshalSlimResponse(decos, 42)
	if err != nil {
		t.Fatalf("MarshalSlimResponse failed: %v", err)
	}

	var resp SlimScanResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(resp.Decorations) != 1 {
		t.Fatalf("got %d decorations, want 1", len(resp.Decorations))
	}
	d := resp.Decorations[0]
	if d.EntityType != "CHARACTER" || d.Class != "entity-character" || d.End != 5 {
		t.Errorf("unexpected slim decoration: %+v", d)
	}
	if resp.TimingUS != 42 {
		t.Errorf("timing not carried: %d", resp.TimingUS)
	}
}

func TestFromDecorationsEmpty(t *testing.T) {
	if got := FromDecorations(nil); len(got) != 0 {
		t.Errorf("want empty slice, got %v", got)
	}
}
