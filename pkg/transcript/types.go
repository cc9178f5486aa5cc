package transcript

// Segment is one caption unit of a video transcript. Ordering is
// chronological and meaningful.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// VideoInfo is the metadata of a video as reported by the YouTube Data API.
type VideoInfo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
	ViewCount    string `json:"view_count"`
	LikeCount    string `json:"like_count"`
}
