// Package response provides optimized JSON response builders
// that only serialize fields actually used by the editor host.
package response

import (
	"encoding/json"

	"github.com/quillclouds/goquill/pkg/highlight"
)

// SlimDecoration contains only the fields the host renderer uses.
type SlimDecoration struct {
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Class      string `json:"cssClassName"`
	EntityID   string `json:"entityId"`
	EntityName string `json:"entityName"`
	EntityType string `json:"entityType"`
}

// SlimScanResponse is the minimal recompute response for the host.
type SlimScanResponse struct {
	Decorations []SlimDecoration `json:"decorations"`
	TimingUS    int64            `json:"timing_us"`
}

// FromDecorations converts controller decorations to the slim form.
func FromDecorations(decos []highlight.Decoration) []SlimDecoration {
	out := make([]SlimDecoration, 0, len(decos))
	for _, d := range decos {
		out = append(out, SlimDecoration{
			Start:      d.Start,
			End:        d.End,
			Class:      d.Class,
			EntityID:   d.EntityID,
			EntityName: d.EntityName,
			EntityType: d.EntityType.String(),
		})
	}
	return out
}

// MarshalSlimResponse creates a minimal JSON response.
func MarshalSlimResponse(decos []highlight.Decoration, timingUS int64) ([]byte, error) {
	resp := SlimScanResponse{
		Decorations: FromDecorations(decos),
		TimingUS:    timingUS,
	}
	return json.Marshal(resp)
}
