package ai

import (
	"testing"
)

func TestUnmarshalModelJSON_ObjectVariants(t *testing.T) {
	type person struct {
		Name string `json:"name"`
		Age  int    `json:"age,omitempty"`
	}

	tests := []struct {
		name  string
		input string
		want  person
	}{
		{
			name:  "valid json object",
			input: `{"name":"John"}`,
			want:  person{Name: "John"},
		},
		{
			name:  "fenced json object",
			input: "```json\n{\"name\":\"John\"}\n```",
			want:  person{Name: "John"},
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"name\":\"John\"}\n```",
			want:  person{Name: "John"},
		},
		{
			name:  "surrounding whitespace",
			input: "\n  {\"name\":\"John\"}\n",
			want:  person{Name: "John"},
		},
		{
			name:  "stringified json object",
			input: `"{\"name\": \"John\"}"`,
			want:  person{Name: "John"},
		},
		{
			name:  "stringified fenced object",
			input: `"` + "```json\\n" + `{\"name\": \"John\"}` + "\\n```" + `"`,
			want:  person{Name: "John"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got person
			if err := UnmarshalModelJSON(tc.input, &got); err != nil {
				t.Fatalf("UnmarshalModelJSON() error = %v", err)
			}
			if got.Name != tc.want.Name || got.Age != tc.want.Age {
				t.Fatalf("UnmarshalModelJSON() got = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUnmarshalModelJSON_Invalid(t *testing.T) {
	type person struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name  string
		input string
	}{
		{name: "plain prose", input: "hello"},
		{name: "truncated braces", input: `{"name":"John`},
		{name: "unquoted keys", input: `{name: "John"}`},
		{name: "trailing prose", input: `{"name":"John"} and that is all`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got person
			if err := UnmarshalModelJSON(tc.input, &got); err == nil {
				t.Fatalf("UnmarshalModelJSON(%q) expected error", tc.input)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no fence", input: "  plain text ", want: "plain text"},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\ntext\n```", want: "text"},
		{name: "markdown fence", input: "```markdown\n## Heading\nbody\n```", want: "## Heading\nbody"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.input); got != tc.want {
				t.Fatalf("StripCodeFence(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
