package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/videobrief/backend/pkg/ai"
	"github.com/videobrief/backend/pkg/transcript"
)

type stubCall struct {
	prompt  string
	options ai.GenerateOptions
}

// stubClient replays canned replies (or errors) in call order and records
// every prompt it receives.
type stubClient struct {
	replies []string
	errs    []error
	calls   []stubCall
}

func (s *stubClient) GenerateCompletion(
	_ context.Context,
	prompt string,
	opts ...ai.GenerateOption,
) (string, error) {
	options := ai.GenerateOptions{}
	for _, o := range opts {
		o(&options)
	}
	idx := len(s.calls)
	s.calls = append(s.calls, stubCall{prompt: prompt, options: options})

	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.replies) {
		return s.replies[idx], nil
	}
	return "", ai.ErrEmptyGeneration
}

func (s *stubClient) ResetMetrics() {}

func (s *stubClient) GetMetrics() ai.ModelMetrics { return ai.ModelMetrics{} }

func segmentsOf(texts ...string) []transcript.Segment {
	segments := make([]transcript.Segment, 0, len(texts))
	for _, t := range texts {
		segments = append(segments, transcript.Segment{Text: t})
	}
	return segments
}

func TestSummarize_HappyPath(t *testing.T) {
	conceptJSON := `{"nodes":[{"id":"root","label":"Greeting"}],"edges":[]}`
	stub := &stubClient{replies: []string{"## Overview\nA greeting.", conceptJSON}}
	p := NewPipeline(stub, DefaultPolicy())

	result, err := p.Summarize(context.Background(), segmentsOf("Hello", "world"), "english", LengthShort)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if len(stub.calls) != 2 {
		t.Fatalf("Summarize() issued %d calls, want 2", len(stub.calls))
	}
	if got := stub.calls[0].prompt; got != "Hello world" {
		t.Fatalf("summary call prompt = %q, want %q", got, "Hello world")
	}
	if got := stub.calls[0].options.MaxTokens; got != 300 {
		t.Fatalf("summary call max tokens = %d, want 300", got)
	}
	if got := stub.calls[0].options.Temperature; got != 0.4 {
		t.Fatalf("summary call temperature = %v, want 0.4", got)
	}
	if result.Summary != "## Overview\nA greeting." {
		t.Fatalf("Summary = %q", result.Summary)
	}
	if got := stub.calls[1].prompt; got != result.Summary {
		t.Fatalf("concept map call prompt = %q, want the produced summary %q", got, result.Summary)
	}
	if got := stub.calls[1].options.MaxTokens; got != 1200 {
		t.Fatalf("concept map call max tokens = %d, want 1200", got)
	}
	if string(result.ConceptMap) != conceptJSON {
		t.Fatalf("ConceptMap = %s, want verbatim %s", result.ConceptMap, conceptJSON)
	}
}

func TestSummarize_EmptyTranscriptRejectedBeforeUpstream(t *testing.T) {
	tests := []struct {
		name     string
		segments []transcript.Segment
	}{
		{name: "nil segments", segments: nil},
		{name: "no segments", segments: []transcript.Segment{}},
		{name: "whitespace only", segments: segmentsOf("  ", "\n")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubClient{}
			p := NewPipeline(stub, DefaultPolicy())

			_, err := p.Summarize(context.Background(), tc.segments, "english", LengthMedium)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Summarize() error = %v, want ErrInvalidInput", err)
			}
			if len(stub.calls) != 0 {
				t.Fatalf("Summarize() issued %d upstream calls, want 0", len(stub.calls))
			}
		})
	}
}

func TestSummarize_TruncatesFullText(t *testing.T) {
	policy := DefaultPolicy()
	policy.TruncateChars = 40

	stub := &stubClient{replies: []string{"summary", `{}`}}
	p := NewPipeline(stub, policy)

	long := strings.Repeat("word ", 50)
	_, err := p.Summarize(context.Background(), segmentsOf(long), "english", LengthMedium)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if got := len([]rune(stub.calls[0].prompt)); got != 40 {
		t.Fatalf("summary call prompt length = %d, want 40", got)
	}
}

func TestSummarize_FallbackOnMalformedConceptMap(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "truncated braces", reply: `{"nodes": [{"id": "a"`},
		{name: "trailing prose", reply: `{"nodes": []} That's the map, hope it helps!`},
		{name: "plain prose", reply: "I could not produce a concept map."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubClient{replies: []string{"a summary", tc.reply}}
			p := NewPipeline(stub, DefaultPolicy())

			result, err := p.Summarize(context.Background(), segmentsOf("Hello"), "english", LengthShort)
			if err != nil {
				t.Fatalf("Summarize() error = %v, want success with fallback", err)
			}
			if string(result.ConceptMap) != string(FallbackConceptMap()) {
				t.Fatalf("ConceptMap = %s, want fallback %s", result.ConceptMap, FallbackConceptMap())
			}
		})
	}
}

func TestSummarize_ConceptMapArbitraryShapePassesThrough(t *testing.T) {
	reply := `{"topics": ["a", "b"], "mood": "upbeat"}`
	stub := &stubClient{replies: []string{"a summary", reply}}
	p := NewPipeline(stub, DefaultPolicy())

	result, err := p.Summarize(context.Background(), segmentsOf("Hello"), "english", LengthShort)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if string(result.ConceptMap) != reply {
		t.Fatalf("ConceptMap = %s, want verbatim %s", result.ConceptMap, reply)
	}
}

func TestSummarize_UpstreamErrorFailsOperation(t *testing.T) {
	upstream := errors.New("connection refused")
	stub := &stubClient{errs: []error{upstream}}
	p := NewPipeline(stub, DefaultPolicy())

	_, err := p.Summarize(context.Background(), segmentsOf("Hello"), "english", LengthShort)
	if !errors.Is(err, upstream) {
		t.Fatalf("Summarize() error = %v, want wrapped upstream error", err)
	}
	if len(stub.calls) != 1 {
		t.Fatalf("Summarize() issued %d calls after failure, want 1", len(stub.calls))
	}
}

func TestSummarize_EmptyGenerationIsFatal(t *testing.T) {
	stub := &stubClient{replies: []string{"   \n"}}
	p := NewPipeline(stub, DefaultPolicy())

	_, err := p.Summarize(context.Background(), segmentsOf("Hello"), "english", LengthShort)
	if !errors.Is(err, ai.ErrEmptyGeneration) {
		t.Fatalf("Summarize() error = %v, want ErrEmptyGeneration", err)
	}
}

func TestSummarize_ConceptMapUpstreamErrorFailsOperation(t *testing.T) {
	upstream := errors.New("rate limited")
	stub := &stubClient{
		replies: []string{"a summary"},
		errs:    []error{nil, upstream},
	}
	p := NewPipeline(stub, DefaultPolicy())

	_, err := p.Summarize(context.Background(), segmentsOf("Hello"), "english", LengthShort)
	if !errors.Is(err, upstream) {
		t.Fatalf("Summarize() error = %v, want wrapped upstream error", err)
	}
}

func TestDetectLanguage_TrimsAndLowercases(t *testing.T) {
	stub := &stubClient{replies: []string{" EN\n"}}
	p := NewPipeline(stub, DefaultPolicy())

	code, err := p.DetectLanguage(context.Background(), "Hello there, how are you?")
	if err != nil {
		t.Fatalf("DetectLanguage() error = %v", err)
	}
	if code != "en" {
		t.Fatalf("DetectLanguage() = %q, want %q", code, "en")
	}
	if got := stub.calls[0].options.Temperature; got != 0 {
		t.Fatalf("detect call temperature = %v, want 0", got)
	}
}

func TestDetectLanguage_SendsOnlyPrefix(t *testing.T) {
	stub := &stubClient{replies: []string{"de"}}
	p := NewPipeline(stub, DefaultPolicy())

	text := strings.Repeat("x", 500)
	if _, err := p.DetectLanguage(context.Background(), text); err != nil {
		t.Fatalf("DetectLanguage() error = %v", err)
	}
	if got := len(stub.calls[0].prompt); got != 200 {
		t.Fatalf("detect call prompt length = %d, want 200", got)
	}
}

func TestDetectLanguage_EmptyTextRejected(t *testing.T) {
	stub := &stubClient{}
	p := NewPipeline(stub, DefaultPolicy())

	_, err := p.DetectLanguage(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("DetectLanguage() error = %v, want ErrInvalidInput", err)
	}
	if len(stub.calls) != 0 {
		t.Fatalf("DetectLanguage() issued %d upstream calls, want 0", len(stub.calls))
	}
}

func TestFallbackConceptMap_Shape(t *testing.T) {
	var cm ConceptMap
	if err := json.Unmarshal(FallbackConceptMap(), &cm); err != nil {
		t.Fatalf("fallback is not valid JSON: %v", err)
	}
	if len(cm.Nodes) != 3 {
		t.Fatalf("fallback has %d nodes, want 3", len(cm.Nodes))
	}
	if len(cm.Edges) != 2 {
		t.Fatalf("fallback has %d edges, want 2", len(cm.Edges))
	}
	for _, edge := range cm.Edges {
		if edge.Source != cm.Nodes[0].ID {
			t.Fatalf("fallback edge source = %q, want root %q", edge.Source, cm.Nodes[0].ID)
		}
	}
}
