package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/videobrief/backend/pkg/ai"
	"github.com/videobrief/backend/pkg/logger"
	"github.com/videobrief/backend/pkg/transcript"
)

// Pipeline derives a summary and a concept map from a video transcript. It
// is stateless between requests; a single Pipeline is shared by all
// handlers.
type Pipeline struct {
	client ai.ChatAIClient
	policy Policy
}

// NewPipeline creates a Pipeline on top of the given generation capability.
func NewPipeline(client ai.ChatAIClient, policy Policy) *Pipeline {
	return &Pipeline{
		client: client,
		policy: policy,
	}
}

// Summarize joins the transcript into one text, generates a markdown summary
// in the requested language, then derives a concept map from that summary.
// The two model calls are strictly sequential since the second consumes the
// first's output.
//
// A failing summary call fails the whole operation. A concept-map reply that
// is not valid JSON does not: the fixed fallback graph is substituted and
// the operation still succeeds.
func (p *Pipeline) Summarize(
	ctx context.Context,
	segments []transcript.Segment,
	language string,
	length string,
) (Result, error) {
	fullText := joinSegments(segments)
	if fullText == "" {
		return Result{}, fmt.Errorf("%w: transcript is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(language) == "" {
		return Result{}, fmt.Errorf("%w: language is required", ErrInvalidInput)
	}

	truncated := truncateText(fullText, p.policy.TruncateChars)
	budget := p.policy.TokenBudget(length)

	raw, err := p.client.GenerateCompletion(
		ctx,
		truncated,
		ai.WithSystemPrompts(summaryPrompt(language, length)),
		ai.WithTemperature(p.policy.SummaryTemperature),
		ai.WithMaxTokens(budget),
	)
	if err != nil {
		return Result{}, fmt.Errorf("summary generation: %w", err)
	}

	summary := ai.StripCodeFence(raw)
	if summary == "" {
		return Result{}, fmt.Errorf("summary generation: %w", ai.ErrEmptyGeneration)
	}

	conceptRaw, err := p.client.GenerateCompletion(
		ctx,
		summary,
		ai.WithSystemPrompts(conceptMapPrompt()),
		ai.WithTemperature(p.policy.ConceptMapTemperature),
		ai.WithMaxTokens(p.policy.ConceptMapTokens),
	)
	if err != nil {
		return Result{}, fmt.Errorf("concept map generation: %w", err)
	}

	conceptMap, err := parseConceptMap(conceptRaw)
	if err != nil {
		logger.Warn("Concept map output unparseable, using fallback", "err", err)
		conceptMap = FallbackConceptMap()
	}

	return Result{
		Summary:    summary,
		ConceptMap: conceptMap,
	}, nil
}

// DetectLanguage identifies the language of text and returns its lower-case
// ISO 639-1 code. Only a short prefix is sent upstream. Errors propagate;
// there is no fallback code.
func (p *Pipeline) DetectLanguage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is empty", ErrInvalidInput)
	}

	prefix := truncateText(text, p.policy.DetectPrefixChars)

	raw, err := p.client.GenerateCompletion(
		ctx,
		prefix,
		ai.WithSystemPrompts(detectLanguageSystemPrompt),
		ai.WithTemperature(p.policy.DetectTemperature),
		ai.WithMaxTokens(8),
	)
	if err != nil {
		return "", fmt.Errorf("language detection: %w", err)
	}

	code := strings.ToLower(strings.TrimSpace(raw))
	if code == "" {
		return "", fmt.Errorf("language detection: %w", ai.ErrEmptyGeneration)
	}
	return code, nil
}

// IsInvalidInput reports whether err was caused by rejected input rather
// than an upstream failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// joinSegments concatenates segment texts with single spaces, preserving
// order. Blank segments are skipped.
func joinSegments(segments []transcript.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}
