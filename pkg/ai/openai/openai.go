package openai

import (
	"sync"

	"github.com/videobrief/backend/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ChatOpenAIClient implements ai.ChatAIClient against any OpenAI-compatible
// chat-completion endpoint (OpenAI itself, DeepSeek, or a local gateway via
// base URL override).
//
// A ChatOpenAIClient should be created using NewChatOpenAIClient.
type ChatOpenAIClient struct {
	chatModel string
	chatURL   string
	chatKey   string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewChatOpenAIClientParams defines the configuration for creating a new
// ChatOpenAIClient.
//
// ChatModel is the default model when a request does not override it.
// ChatURL may be empty to use the upstream default endpoint.
type NewChatOpenAIClientParams struct {
	ChatModel string
	ChatURL   string
	ChatKey   string
}

// NewChatOpenAIClient creates a ChatOpenAIClient configured with the given
// parameters.
//
// Example:
//
//	client := openai.NewChatOpenAIClient(openai.NewChatOpenAIClientParams{
//		ChatModel: "gpt-4o-mini",
//		ChatURL:   "https://api.openai.com/v1",
//		ChatKey:   os.Getenv("AI_CHAT_KEY"),
//	})
func NewChatOpenAIClient(
	params NewChatOpenAIClientParams,
) *ChatOpenAIClient {
	return &ChatOpenAIClient{
		chatModel: params.ChatModel,
		chatURL:   params.ChatURL,
		chatKey:   params.ChatKey,

		metricsLock: sync.Mutex{},
		metrics:     ai.ModelMetrics{},

		ChatClient: newOpenaiClient(params.ChatURL, params.ChatKey),
	}
}

func newOpenaiClient(
	baseURL string,
	apiKey string,
) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}
