package summarize

import "testing"

func TestTokenBudget(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name   string
		length string
		want   int
	}{
		{name: "short", length: LengthShort, want: 300},
		{name: "medium", length: LengthMedium, want: 500},
		{name: "long", length: LengthLong, want: 800},
		{name: "unrecognized", length: "gigantic", want: 500},
		{name: "missing", length: "", want: 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.TokenBudget(tc.length); got != tc.want {
				t.Fatalf("TokenBudget(%q) = %d, want %d", tc.length, got, tc.want)
			}
			// same input, same budget
			if got := policy.TokenBudget(tc.length); got != tc.want {
				t.Fatalf("TokenBudget(%q) second call = %d, want %d", tc.length, got, tc.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "below limit", input: "hello", limit: 10, want: "hello"},
		{name: "at limit", input: "hello", limit: 5, want: "hello"},
		{name: "above limit", input: "hello world", limit: 5, want: "hello"},
		{name: "zero limit keeps all", input: "hello", limit: 0, want: "hello"},
		{name: "multibyte safe", input: "héllö wörld", limit: 4, want: "héll"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncateText(tc.input, tc.limit); got != tc.want {
				t.Fatalf("truncateText(%q, %d) = %q, want %q", tc.input, tc.limit, got, tc.want)
			}
		})
	}
}
