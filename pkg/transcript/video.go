package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrNoAPIKey is returned from GetVideoInfo when the client was created
// without a YouTube Data API key.
var ErrNoAPIKey = errors.New("youtube data api key not configured")

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelID    string `json:"channelId"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
			LikeCount string `json:"likeCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// GetVideoInfo fetches title, description, channel, and stats for a video
// from the YouTube Data API. Returns ErrNotFound for unknown video ids.
func (c *Client) GetVideoInfo(ctx context.Context, videoID string) (*VideoInfo, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", videoID)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.dataAPIURL+"/videos?"+params.Encode(), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("videos request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("videos endpoint returned status %d", resp.StatusCode)
	}

	var parsed videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("videos response: %w", err)
	}
	if len(parsed.Items) == 0 {
		return nil, ErrNotFound
	}

	item := parsed.Items[0]
	return &VideoInfo{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelID:    item.Snippet.ChannelID,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  item.Snippet.PublishedAt,
		ViewCount:    item.Statistics.ViewCount,
		LikeCount:    item.Statistics.LikeCount,
	}, nil
}
