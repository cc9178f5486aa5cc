package ollama

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/videobrief/backend/pkg/ai"

	"github.com/ollama/ollama/api"
	"golang.org/x/sync/semaphore"
)

// ChatOllamaClient implements ai.ChatAIClient using an Ollama server as the
// backend. Concurrent requests are bounded so a locally-hosted model is not
// flooded when the HTTP layer dispatches many requests at once.
type ChatOllamaClient struct {
	chatModel string

	reqLock *semaphore.Weighted

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client

	Client *api.Client
}

// NewChatOllamaClientParams contains configuration options for creating a new
// ChatOllamaClient.
type NewChatOllamaClientParams struct {
	ChatModel string

	BaseURL string
	ApiKey  string

	MaxConcurrentRequests int64
}

type headerTransport struct {
	headers map[string]string
	rt      http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so original request isn't modified
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		// don't overwrite if already set
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return t.rt.RoundTrip(r)
}

// NewChatOllamaClient creates a new Ollama-backed AI client. It connects to
// the Ollama server at BaseURL (or the default if empty) and uses ChatModel
// for all completions unless a request overrides it.
func NewChatOllamaClient(
	params NewChatOllamaClientParams,
) (*ChatOllamaClient, error) {
	var (
		u   *url.URL
		err error
	)

	if params.BaseURL != "" {
		u, err = url.Parse(params.BaseURL)
		if err != nil {
			return nil, err
		}
	}

	httpClient := &http.Client{
		Transport: &headerTransport{
			headers: map[string]string{
				"Authorization": "Bearer " + params.ApiKey,
			},
			rt: http.DefaultTransport,
		},
	}

	cli := api.NewClient(u, httpClient)

	maxReq := params.MaxConcurrentRequests
	if maxReq <= 0 {
		maxReq = 1
	}

	return &ChatOllamaClient{
		chatModel: params.ChatModel,

		reqLock: semaphore.NewWeighted(maxReq),

		metricsLock: sync.Mutex{},
		metrics:     ai.ModelMetrics{},

		baseURL:    u,
		apiKey:     params.ApiKey,
		httpClient: httpClient,

		Client: cli,
	}, nil
}
