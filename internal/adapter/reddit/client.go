// internal/adapter/reddit/client.go

package reddit

import (
	"context"
	"fmt"

	"github.com/vartanbeno/go-reddit/v2/reddit"
	"go.uber.org/zap"

	"clipforge/internal/domain/content"
	"clipforge/internal/domain/trend"
)

// Client reads top posts from Reddit as a secondary trend source. Uses the
// unauthenticated read-only API.
type Client struct {
	client *reddit.Client
	logger *zap.Logger
}

// New creates the read-only Reddit client.
func New(logger *zap.Logger) (*Client, error) {
	c, err := reddit.NewReadonlyClient()
	if err != nil {
		return nil, fmt.Errorf("creating reddit client: %w", err)
	}
	return &Client{client: c, logger: logger}, nil
}

// TopPosts returns the subreddit's top posts for the window (hour, day,
// week, month, year, all). Reddit exposes no view counts, so ViewCount is
// left zero for the discovery layer to substitute.
func (c *Client) TopPosts(ctx context.Context, subreddit string, limit int, window string) ([]trend.Record, error) {
	if subreddit == "" {
		subreddit = "popular"
	}
	if limit <= 0 {
		limit = 25
	}
	if window == "" {
		window = "day"
	}

	posts, _, err := c.client.Subreddit.TopPosts(ctx, subreddit, &reddit.ListPostOptions{
		ListOptions: reddit.ListOptions{Limit: limit},
		Time:        window,
	})
	if err != nil {
		return nil, content.NewUpstreamError("reddit", err)
	}

	records := make([]trend.Record, 0, len(posts))
	for _, post := range posts {
		record := trend.Record{
			Title:        post.Title,
			VideoID:      post.ID,
			ChannelTitle: "r/" + post.SubredditName,
			URL:          "https://www.reddit.com" + post.Permalink,
			Source:       trend.SourceReddit,
			LikeCount:    int64(post.Score),
			CommentCount: int64(post.NumberOfComments),
		}
		if post.Created != nil {
			record.PublishedAt = post.Created.Time
		}
		records = append(records, record)
	}

	c.logger.Debug("fetched reddit posts",
		zap.String("subreddit", subreddit),
		zap.Int("count", len(records)))

	return records, nil
}
