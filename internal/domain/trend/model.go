package trend

import (
	"time"
)

// Record sources.
const (
	SourceYouTube       = "youtube"
	SourceYouTubeSearch = "youtube-search"
	SourceReddit        = "reddit"
)

// Record is one scored candidate topic/video. Records are ephemeral:
// recomputed on every discovery call and never persisted.
type Record struct {
	Title        string    `json:"title"`
	VideoID      string    `json:"videoId"`
	ChannelTitle string    `json:"channelTitle,omitempty"`
	URL          string    `json:"url,omitempty"`
	Source       string    `json:"source"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	PublishedAt  time.Time `json:"publishedAt"`

	// EngagementRate and TrendScore are derived by the analyzer, both
	// rounded to two decimals.
	EngagementRate float64 `json:"engagementRate"`
	TrendScore     float64 `json:"trendScore"`
}

// SearchOptions narrow a keyword search against the trend source.
type SearchOptions struct {
	MaxResults int64
	Order      string
	Region     string
}
