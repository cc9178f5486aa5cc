package ai

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// StripCodeFence removes a wrapping markdown code fence (``` or ```json)
// from model output. Input without a fence is returned trimmed.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag on the opening fence line
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// GenerateSchema creates a JSON Schema from the given Go type, suitable for
// embedding in a prompt or passing as a structured-output format.
func GenerateSchema(value any) any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	v := reflect.New(t).Interface()
	return reflector.Reflect(v)
}

// UnmarshalModelJSON parses model-generated JSON into out, tolerating the
// packaging noise models add around otherwise valid JSON: markdown code
// fences and double-encoded JSON strings. The JSON itself must be
// syntactically valid; no repair is attempted.
func UnmarshalModelJSON(input string, out any) error {
	input = StripCodeFence(input)

	var asString string
	if err := json.Unmarshal([]byte(input), &asString); err == nil {
		inner := StripCodeFence(asString)
		if json.Valid([]byte(inner)) {
			input = inner
		}
	}

	if err := json.Unmarshal([]byte(input), out); err != nil {
		return fmt.Errorf("model output is not valid JSON: %s", input)
	}
	return nil
}
