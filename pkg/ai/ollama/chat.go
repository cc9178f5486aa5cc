package ollama

import (
	"context"
	"strings"

	"github.com/videobrief/backend/pkg/ai"

	"github.com/ollama/ollama/api"
	"github.com/pkoukk/tiktoken-go"
)

// GenerateCompletion sends a single-turn prompt and returns assistant text.
// System prompts from the options are prepended as system messages. MaxTokens
// maps to num_predict; the context window is widened when the prompt alone
// exceeds the Ollama default.
func (c *ChatOllamaClient) GenerateCompletion(
	ctx context.Context,
	prompt string,
	opts ...ai.GenerateOption,
) (string, error) {
	options := ai.GenerateOptions{
		Model:       c.chatModel,
		Temperature: 0.3,
	}
	for _, o := range opts {
		o(&options)
	}

	if err := c.reqLock.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.reqLock.Release(1)

	msgs := make([]api.Message, 0, len(options.SystemPrompts)+1)
	for _, sp := range options.SystemPrompts {
		msgs = append(msgs, api.Message{Role: "system", Content: sp})
	}
	msgs = append(msgs, api.Message{Role: "user", Content: prompt})

	stream := false
	req := &api.ChatRequest{
		Model:    options.Model,
		Messages: msgs,
		Stream:   &stream,
		Options:  map[string]any{"temperature": options.Temperature},
	}
	if options.MaxTokens > 0 {
		req.Options["num_predict"] = options.MaxTokens
	}

	enc, err := tiktoken.GetEncoding(ai.TokenEncoding)
	if err != nil {
		return "", err
	}
	promptTokens := 0
	for _, sp := range options.SystemPrompts {
		promptTokens += len(enc.Encode(sp, nil, nil))
	}
	promptTokens += len(enc.Encode(prompt, nil, nil))
	if promptTokens+options.MaxTokens > 4096 {
		req.Options["num_ctx"] = promptTokens + options.MaxTokens
	}

	var final api.ChatResponse
	if err := c.Client.Chat(ctx, req, func(cr api.ChatResponse) error {
		final.Message.Content += cr.Message.Content
		if cr.Done {
			final.Done = true
			final.Metrics = cr.Metrics
		}
		return nil
	}); err != nil {
		return "", err
	}

	durationMs := final.Metrics.TotalDuration.Milliseconds()

	metrics := ai.ModelMetrics{
		InputTokens:  final.Metrics.PromptEvalCount,
		OutputTokens: final.Metrics.EvalCount,
		TotalTokens:  final.Metrics.PromptEvalCount + final.Metrics.EvalCount,
		DurationMs:   durationMs,
	}
	c.modifyMetrics(metrics)

	if strings.TrimSpace(final.Message.Content) == "" {
		return "", ai.ErrEmptyGeneration
	}

	return final.Message.Content, nil
}
