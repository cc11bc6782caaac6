// internal/adapter/youtube/client.go

package youtube

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"clipforge/internal/domain/content"
	"clipforge/internal/domain/trend"
)

const watchURL = "https://www.youtube.com/watch?v="

// Client fetches trending and searched videos from the YouTube Data API
// using an API key (public data only, no OAuth flow).
type Client struct {
	svc    *youtube.Service
	logger *zap.Logger
}

// New creates the YouTube Data API client.
func New(ctx context.Context, apiKey string, logger *zap.Logger) (*Client, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}
	return &Client{svc: svc, logger: logger}, nil
}

// Trending returns the region's current most-popular videos with full
// statistics.
func (c *Client) Trending(ctx context.Context, region string, maxResults int64) ([]trend.Record, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	resp, err := c.svc.Videos.List([]string{"snippet", "statistics"}).
		Chart("mostPopular").
		RegionCode(region).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, content.NewUpstreamError("youtube", err)
	}

	records := make([]trend.Record, 0, len(resp.Items))
	for _, item := range resp.Items {
		records = append(records, videoRecord(item))
	}

	c.logger.Debug("fetched trending videos",
		zap.String("region", region),
		zap.Int("count", len(records)))

	return records, nil
}

// Search returns videos matching the query. Search responses carry no
// statistics; the discovery layer substitutes placeholder metrics.
func (c *Client) Search(ctx context.Context, query string, opts trend.SearchOptions) ([]trend.Record, error) {
	order := opts.Order
	if order == "" {
		order = "viewCount"
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	call := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order(order).
		MaxResults(maxResults).
		Context(ctx)
	if opts.Region != "" {
		call = call.RegionCode(opts.Region)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, content.NewUpstreamError("youtube", err)
	}

	records := make([]trend.Record, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		records = append(records, trend.Record{
			Title:        item.Snippet.Title,
			VideoID:      item.Id.VideoId,
			ChannelTitle: item.Snippet.ChannelTitle,
			URL:          watchURL + item.Id.VideoId,
			Source:       trend.SourceYouTubeSearch,
			PublishedAt:  publishedAt,
		})
	}

	c.logger.Debug("searched videos",
		zap.String("query", query),
		zap.Int("count", len(records)))

	return records, nil
}

func videoRecord(v *youtube.Video) trend.Record {
	publishedAt, _ := time.Parse(time.RFC3339, v.Snippet.PublishedAt)
	record := trend.Record{
		Title:        v.Snippet.Title,
		VideoID:      v.Id,
		ChannelTitle: v.Snippet.ChannelTitle,
		URL:          watchURL + v.Id,
		Source:       trend.SourceYouTube,
		PublishedAt:  publishedAt,
	}
	if v.Statistics != nil {
		record.ViewCount = int64(v.Statistics.ViewCount)
		record.LikeCount = int64(v.Statistics.LikeCount)
		record.CommentCount = int64(v.Statistics.CommentCount)
	}
	return record
}
