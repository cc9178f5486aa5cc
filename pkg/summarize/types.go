package summarize

import (
	"encoding/json"
)

// Length selects the target size of a summary. Unrecognized values resolve
// to the medium budget.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// ConceptNode is a single concept extracted from a summary.
type ConceptNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ConceptEdge connects two concepts by node id.
type ConceptEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ConceptMap is the node/edge graph the concept-map prompt asks the model
// for. It is only used to derive the prompt schema and to build the fallback
// value; model output that parses as JSON is passed through without being
// forced into this shape.
type ConceptMap struct {
	Nodes []ConceptNode `json:"nodes"`
	Edges []ConceptEdge `json:"edges"`
}

// Result is the outcome of a successful summarization run. ConceptMap holds
// the model's JSON verbatim, or the fixed fallback when the model output
// could not be parsed.
type Result struct {
	Summary    string          `json:"summary"`
	ConceptMap json.RawMessage `json:"conceptMap"`
}
