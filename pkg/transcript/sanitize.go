package transcript

import (
	"html"
	"regexp"
	"strings"
)

// cueNoise matches bracketed caption annotations like [Music] or [Applause].
var cueNoise = regexp.MustCompile(`\[[^\]\n]*\]`)

// whitespaceRuns matches any run of whitespace, including newlines inside a
// caption unit.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// CleanCaption normalizes one caption unit: entities are decoded, bracketed
// cue annotations dropped, and whitespace collapsed to single spaces.
func CleanCaption(text string) string {
	text = html.UnescapeString(text)
	text = cueNoise.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
