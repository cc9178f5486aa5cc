package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimedtextURL = "https://www.youtube.com/api/timedtext"
	defaultDataAPIURL   = "https://www.googleapis.com/youtube/v3"
)

// Client fetches video transcripts from the YouTube timedtext endpoint and
// video metadata from the YouTube Data API. Both are thin passthroughs with
// a bounded timeout and no retries.
type Client struct {
	timedtextURL string
	dataAPIURL   string
	apiKey       string

	httpClient *http.Client
}

// NewClientParams contains configuration for creating a Client.
//
// APIKey is only needed for GetVideoInfo; transcript fetching works without
// it. A zero Timeout defaults to 15 seconds.
type NewClientParams struct {
	APIKey  string
	Timeout time.Duration

	// TimedtextURL and DataAPIURL override the upstream endpoints, used in
	// tests.
	TimedtextURL string
	DataAPIURL   string
}

// NewClient creates a transcript client.
func NewClient(params NewClientParams) *Client {
	timeout := params.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	timedtextURL := params.TimedtextURL
	if timedtextURL == "" {
		timedtextURL = defaultTimedtextURL
	}
	dataAPIURL := params.DataAPIURL
	if dataAPIURL == "" {
		dataAPIURL = defaultDataAPIURL
	}

	return &Client{
		timedtextURL: timedtextURL,
		dataAPIURL:   dataAPIURL,
		apiKey:       params.APIKey,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

type timedtextResponse struct {
	XMLName xml.Name        `xml:"transcript"`
	Texts   []timedtextLine `xml:"text"`
}

type timedtextLine struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Text     string  `xml:",chardata"`
}

// FetchTranscript returns the ordered caption segments of a video in the
// given language. It returns ErrNotFound when the video has no captions for
// that language; the timedtext endpoint signals this with an empty body.
func (c *Client) FetchTranscript(ctx context.Context, videoID, lang string) ([]Segment, error) {
	if lang == "" {
		lang = "en"
	}

	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", lang)
	params.Set("fmt", "srv1")

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.timedtextURL+"?"+params.Encode(), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("timedtext response: %w", err)
	}
	if len(body) == 0 {
		return nil, ErrNotFound
	}

	var parsed timedtextResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("timedtext parse: %w", err)
	}

	segments := make([]Segment, 0, len(parsed.Texts))
	for _, line := range parsed.Texts {
		text := CleanCaption(line.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    line.Start,
			Duration: line.Duration,
		})
	}
	if len(segments) == 0 {
		return nil, ErrNotFound
	}

	return segments, nil
}
