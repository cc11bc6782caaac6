package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipforge/internal/domain/trend"
)

func fixedAnalyzer(now time.Time) *Analyzer {
	return &Analyzer{now: func() time.Time { return now }}
}

func TestAnalyzeReferenceRecord(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := fixedAnalyzer(now)

	out := a.Analyze([]trend.Record{{
		Title:        "reference",
		ViewCount:    1_000_000,
		LikeCount:    50_000,
		CommentCount: 5_000,
		PublishedAt:  now,
	}})

	require.Len(t, out, 1)
	assert.Equal(t, 5.5, out[0].EngagementRate)
	// 100 * (0.3*log10(1e6)/10 + 0.4*0.055 + 0.3*1)
	assert.Equal(t, 50.2, out[0].TrendScore)
}

func TestAnalyzeZeroViewsScoresZero(t *testing.T) {
	a := fixedAnalyzer(time.Now())

	out := a.Analyze([]trend.Record{{
		Title:        "sparse",
		LikeCount:    10,
		CommentCount: 5,
	}})

	require.Len(t, out, 1)
	assert.Zero(t, out[0].EngagementRate)
	assert.Zero(t, out[0].TrendScore)
}

func TestAnalyzeSortsDescendingStable(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := fixedAnalyzer(now)

	records := []trend.Record{
		{Title: "old small", ViewCount: 1000, LikeCount: 10, CommentCount: 1, PublishedAt: now.AddDate(0, 0, -60)},
		{Title: "tie A", ViewCount: 10000, LikeCount: 500, CommentCount: 50, PublishedAt: now},
		{Title: "tie B", ViewCount: 10000, LikeCount: 500, CommentCount: 50, PublishedAt: now},
		{Title: "big fresh", ViewCount: 1_000_000, LikeCount: 50_000, CommentCount: 5_000, PublishedAt: now},
	}

	out := a.Analyze(records)

	require.Len(t, out, 4)
	assert.Equal(t, "big fresh", out[0].Title)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].TrendScore, out[i].TrendScore)
	}
	// equal scores keep input order
	assert.Equal(t, "tie A", out[1].Title)
	assert.Equal(t, "tie B", out[2].Title)

	// input slice untouched
	assert.Equal(t, "old small", records[0].Title)
	assert.Zero(t, records[0].TrendScore)
}

func TestAnalyzeRecencyDecaysToZero(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := fixedAnalyzer(now)

	fresh := a.Analyze([]trend.Record{{ViewCount: 10000, LikeCount: 100, CommentCount: 10, PublishedAt: now}})
	stale := a.Analyze([]trend.Record{{ViewCount: 10000, LikeCount: 100, CommentCount: 10, PublishedAt: now.AddDate(0, 0, -31)}})

	assert.Greater(t, fresh[0].TrendScore, stale[0].TrendScore)
	// past 30 days the recency term contributes nothing: pure popularity
	// plus engagement remains
	assert.InDelta(t, 12.44, stale[0].TrendScore, 0.01)
}
