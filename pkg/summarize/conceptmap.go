package summarize

import (
	"encoding/json"
	"fmt"

	"github.com/videobrief/backend/pkg/ai"
)

// fallbackConceptMap is the fixed substitute used when the model's concept
// map cannot be parsed: one root node with two generic subtopics.
var fallbackConceptMap = ConceptMap{
	Nodes: []ConceptNode{
		{ID: "root", Label: "Summary"},
		{ID: "topic-1", Label: "Key Topic 1"},
		{ID: "topic-2", Label: "Key Topic 2"},
	},
	Edges: []ConceptEdge{
		{Source: "root", Target: "topic-1"},
		{Source: "root", Target: "topic-2"},
	},
}

// FallbackConceptMap returns the fixed fallback graph as JSON.
func FallbackConceptMap() json.RawMessage {
	raw, _ := json.Marshal(fallbackConceptMap)
	return raw
}

// parseConceptMap validates model output as JSON and returns it verbatim.
// Only the syntax is checked; the shape of the object is the model's
// responsibility and is not validated against the schema.
func parseConceptMap(raw string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := ai.UnmarshalModelJSON(raw, &out); err != nil {
		return nil, fmt.Errorf("concept map: %w", err)
	}
	return out, nil
}
