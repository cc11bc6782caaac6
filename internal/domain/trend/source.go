// internal/domain/trend/source.go

package trend

import (
	"context"
)

// Source defines the interface for an external trend provider.
type Source interface {
	// Trending returns the provider's current most-popular videos
	Trending(ctx context.Context, region string, maxResults int64) ([]Record, error)

	// Search returns videos matching the keyword query
	Search(ctx context.Context, query string, opts SearchOptions) ([]Record, error)
}

// Analyzer defines the interface for scoring and ranking trend records.
type Analyzer interface {
	// Analyze derives engagement and trend scores and returns the records
	// sorted by descending score, ties keeping input order
	Analyze(records []Record) []Record
}

// Discoverer defines the interface for niche-driven topic discovery.
type Discoverer interface {
	// TrendingVideos returns scored platform-wide trending videos
	TrendingVideos(ctx context.Context, region string, maxResults int64) ([]Record, error)

	// SearchTrends returns scored results for a keyword query
	SearchTrends(ctx context.Context, keywords string, opts SearchOptions) ([]Record, error)

	// TrendingTopicsForNiche maps the niche to its keyword set, searches,
	// and returns the top scored results
	TrendingTopicsForNiche(ctx context.Context, niche string) ([]Record, error)
}
