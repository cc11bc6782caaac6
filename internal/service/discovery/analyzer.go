// internal/service/discovery/analyzer.go

package discovery

import (
	"math"
	"sort"
	"time"

	"clipforge/internal/domain/trend"
)

// Scoring blend: log-scaled popularity to compress outliers, normalized
// engagement, and linear recency decay to zero over thirty days.
const (
	weightPopularity = 0.3
	weightEngagement = 0.4
	weightRecency    = 0.3
	recencyDays      = 30.0
)

// Analyzer scores and ranks trend records.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an analyzer on wall-clock time.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// Analyze derives engagement rate and trend score for each record and
// returns them sorted by descending score; ties keep input order. Records
// with zero views score zero rather than dividing by zero.
func (a *Analyzer) Analyze(records []trend.Record) []trend.Record {
	now := time.Now()
	if a.now != nil {
		now = a.now()
	}

	out := make([]trend.Record, len(records))
	copy(out, records)
	for i := range out {
		out[i].EngagementRate = engagementRate(out[i])
		out[i].TrendScore = trendScore(out[i], now)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TrendScore > out[j].TrendScore
	})

	return out
}

func engagementRate(r trend.Record) float64 {
	if r.ViewCount <= 0 {
		return 0
	}
	return round2(float64(r.LikeCount+r.CommentCount) / float64(r.ViewCount) * 100)
}

func trendScore(r trend.Record, now time.Time) float64 {
	if r.ViewCount <= 0 {
		return 0
	}

	views := float64(r.ViewCount)
	engagement := float64(r.LikeCount+r.CommentCount) / views
	days := now.Sub(r.PublishedAt).Hours() / 24
	recency := math.Max(0, 1-days/recencyDays)

	score := 100 * (weightPopularity*math.Log10(views)/10 +
		weightEngagement*engagement +
		weightRecency*recency)

	return round2(score)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
