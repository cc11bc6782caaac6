// internal/service/discovery/service.go

package discovery

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/domain/trend"
)

// Placeholder metrics for records whose source exposes no real statistics
// (keyword search results, reddit posts without view counts). Values are
// fixed so placeholder records score comparably to organic ones. This is a
// deliberate, labeled approximation; replacing it means adding a real
// per-video statistics fetch, not changing the constants quietly.
const (
	placeholderViews    = 10000
	placeholderLikes    = 500
	placeholderComments = 50
)

const (
	nicheSearchResults = 25
	nicheTopResults    = 10
)

// RedditSource is the slice of the reddit adapter the service uses.
type RedditSource interface {
	TopPosts(ctx context.Context, subreddit string, limit int, window string) ([]trend.Record, error)
}

// Service discovers and ranks trending topics across sources.
type Service struct {
	source    trend.Source
	reddit    RedditSource
	analyzer  trend.Analyzer
	tuning    *config.Tuning
	region    string
	subreddit string
	logger    *zap.Logger
}

// New creates the discovery service. reddit may be nil, which disables the
// secondary source.
func New(source trend.Source, reddit RedditSource, analyzer trend.Analyzer, cfg config.Config, logger *zap.Logger) *Service {
	return &Service{
		source:    source,
		reddit:    reddit,
		analyzer:  analyzer,
		tuning:    cfg.Tuning,
		region:    cfg.YouTube.Region,
		subreddit: cfg.Reddit.Subreddit,
		logger:    logger,
	}
}

// TrendingVideos returns scored platform-wide trending videos.
func (s *Service) TrendingVideos(ctx context.Context, region string, maxResults int64) ([]trend.Record, error) {
	if region == "" {
		region = s.region
	}

	records, err := s.source.Trending(ctx, region, maxResults)
	if err != nil {
		return nil, err
	}

	return s.analyzer.Analyze(records), nil
}

// SearchTrends returns scored results for a keyword query. Search results
// carry the placeholder metrics above.
func (s *Service) SearchTrends(ctx context.Context, keywords string, opts trend.SearchOptions) ([]trend.Record, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, content.NewValidationError("keywords are required")
	}
	if opts.Region == "" {
		opts.Region = s.region
	}

	records, err := s.source.Search(ctx, keywords, opts)
	if err != nil {
		return nil, err
	}
	applyPlaceholderMetrics(records)

	return s.analyzer.Analyze(records), nil
}

// TrendingTopicsForNiche maps the niche to its keyword set, searches, and
// returns the top scored results.
func (s *Service) TrendingTopicsForNiche(ctx context.Context, niche string) ([]trend.Record, error) {
	keywords := s.keywordsForNiche(niche)
	query := strings.Join(keywords, " ")

	s.logger.Debug("discovering niche trends",
		zap.String("niche", niche),
		zap.String("query", query))

	records, err := s.source.Search(ctx, query, trend.SearchOptions{
		MaxResults: nicheSearchResults,
		Order:      "viewCount",
		Region:     s.region,
	})
	if err != nil {
		return nil, err
	}
	applyPlaceholderMetrics(records)

	scored := s.analyzer.Analyze(records)
	if len(scored) > nicheTopResults {
		scored = scored[:nicheTopResults]
	}
	return scored, nil
}

// RedditTrends returns scored top posts from the secondary source.
func (s *Service) RedditTrends(ctx context.Context, subreddit string, limit int, window string) ([]trend.Record, error) {
	if s.reddit == nil {
		return nil, content.NewUpstreamError("reddit", fmt.Errorf("secondary trend source is not configured"))
	}
	if subreddit == "" {
		subreddit = s.subreddit
	}

	records, err := s.reddit.TopPosts(ctx, subreddit, limit, window)
	if err != nil {
		return nil, err
	}
	applyPlaceholderMetrics(records)

	return s.analyzer.Analyze(records), nil
}

// applyPlaceholderMetrics fills the gaps sources leave: search results
// have no statistics at all, reddit posts have real likes and comments but
// no views.
func applyPlaceholderMetrics(records []trend.Record) {
	for i := range records {
		if records[i].ViewCount != 0 {
			continue
		}
		records[i].ViewCount = placeholderViews
		if records[i].LikeCount == 0 && records[i].CommentCount == 0 {
			records[i].LikeCount = placeholderLikes
			records[i].CommentCount = placeholderComments
		}
	}
}
