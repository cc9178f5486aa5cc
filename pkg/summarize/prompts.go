package summarize

import (
	"encoding/json"
	"fmt"

	"github.com/videobrief/backend/pkg/ai"
)

const summarySystemPrompt = `
# Task Context
You are an assistant that writes concise, well-structured summaries of video transcripts.

# Detailed Task Description & Rules
- Write the entire summary in %s.
- Structure the summary with markdown headings ("##" for sections).
- Start each section heading with a fitting emoji.
- Open with a short overview paragraph, then cover the main points in the order they appear in the transcript.
- Target length: %s.
- Only state what the transcript supports. Do not invent facts, names, or numbers.
- The transcript is auto-generated captions: ignore filler words, repeated fragments, and transcription noise.

# Output Formatting
Return only the markdown summary, with no preamble and no closing remarks.
`

const conceptMapSystemPrompt = `
# Task Context
You are an assistant that extracts a concept map from a text summary. A concept map is a small graph of the key ideas and how they relate.

# Detailed Task Description & Rules
- Identify the central topic and the key concepts of the summary.
- Use short lowercase slugs as node ids and human-readable names as labels.
- Every edge must reference ids that appear in the nodes array.
- Keep the map small: roughly 5 to 12 nodes.

# Output Formatting
Return a STRICT JSON object following this schema, with no surrounding text and no markdown fence:
%s

Example:
{
  "nodes": [
    {"id": "goroutines", "label": "Goroutines"},
    {"id": "channels", "label": "Channels"}
  ],
  "edges": [
    {"source": "goroutines", "target": "channels"}
  ]
}
`

const detectLanguageSystemPrompt = `
# Task Context
You are a language identifier.

# Detailed Task Description & Rules
- Identify the language the given text is written in.
- Reply with only the two-letter ISO 639-1 code of that language (e.g. "en", "de", "it").
- Do not add punctuation, explanations, or any other text.
`

// lengthHints translates a requested length into the wording of the summary
// prompt. The token budget is what actually bounds the output; the hint only
// steers the model toward it.
var lengthHints = map[string]string{
	LengthShort:  "a short summary of about 150 words",
	LengthMedium: "a summary of about 300 words",
	LengthLong:   "a detailed summary of about 500 words",
}

func summaryPrompt(language, length string) string {
	hint, ok := lengthHints[length]
	if !ok {
		hint = lengthHints[LengthMedium]
	}
	return fmt.Sprintf(summarySystemPrompt, language, hint)
}

func conceptMapPrompt() string {
	schema, _ := json.MarshalIndent(ai.GenerateSchema(ConceptMap{}), "", "  ")
	return fmt.Sprintf(conceptMapSystemPrompt, string(schema))
}
