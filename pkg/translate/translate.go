package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api-free.deepl.com/v2"

// DefaultLanguageCode is used when a requested language name has no mapping.
const DefaultLanguageCode = "EN"

// languageCodes maps the human-readable language names the frontend sends to
// upstream target codes.
var languageCodes = map[string]string{
	"english":    "EN",
	"italian":    "IT",
	"spanish":    "ES",
	"french":     "FR",
	"german":     "DE",
	"portuguese": "PT",
}

// LanguageCode resolves a human-readable language name to its upstream
// target code. Unrecognized names resolve to DefaultLanguageCode.
func LanguageCode(name string) string {
	if code, ok := languageCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}
	return DefaultLanguageCode
}

// Client is a thin passthrough to the translation API. One request, one
// translation, no retries.
type Client struct {
	baseURL string
	apiKey  string

	httpClient *http.Client
}

// NewClientParams contains configuration for creating a translation Client.
// A zero Timeout defaults to 15 seconds. BaseURL overrides the upstream
// endpoint, used in tests.
type NewClientParams struct {
	APIKey  string
	Timeout time.Duration
	BaseURL string
}

// NewClient creates a translation client.
func NewClient(params NewClientParams) *Client {
	timeout := params.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     params.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type translateResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate sends text upstream and returns the first translation. The
// target language is a human-readable name resolved via LanguageCode.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("target_lang", LanguageCode(targetLanguage))

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/translate",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	var parsed translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("translate response: %w", err)
	}
	if len(parsed.Translations) == 0 {
		return "", fmt.Errorf("translate response contained no translations")
	}

	return parsed.Translations[0].Text, nil
}
