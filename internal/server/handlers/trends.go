// internal/server/handlers/trends.go

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"clipforge/internal/domain/trend"
)

// TrendService is the slice of the discovery service the trends handler
// uses.
type TrendService interface {
	TrendingVideos(ctx context.Context, region string, maxResults int64) ([]trend.Record, error)
	SearchTrends(ctx context.Context, keywords string, opts trend.SearchOptions) ([]trend.Record, error)
	TrendingTopicsForNiche(ctx context.Context, niche string) ([]trend.Record, error)
	RedditTrends(ctx context.Context, subreddit string, limit int, window string) ([]trend.Record, error)
}

// TrendsHandler serves the trend discovery endpoints.
type TrendsHandler struct {
	service TrendService
	respond *Responder
}

// NewTrendsHandler creates the trends handler.
func NewTrendsHandler(service TrendService, respond *Responder) *TrendsHandler {
	return &TrendsHandler{service: service, respond: respond}
}

// YouTube returns scored platform-wide trending videos.
func (h *TrendsHandler) YouTube(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	maxResults := queryInt64(r, "maxResults", 10)

	records, err := h.service.TrendingVideos(r.Context(), region, maxResults)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.List(w, http.StatusOK, records, len(records))
}

// Search returns scored keyword search results.
func (h *TrendsHandler) Search(w http.ResponseWriter, r *http.Request) {
	keywords := r.URL.Query().Get("keywords")

	records, err := h.service.SearchTrends(r.Context(), keywords, trend.SearchOptions{
		MaxResults: queryInt64(r, "maxResults", 10),
		Order:      r.URL.Query().Get("order"),
	})
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.List(w, http.StatusOK, records, len(records))
}

// Niche returns the top scored results for a niche's keyword set.
func (h *TrendsHandler) Niche(w http.ResponseWriter, r *http.Request) {
	niche := chi.URLParam(r, "niche")

	records, err := h.service.TrendingTopicsForNiche(r.Context(), niche)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.List(w, http.StatusOK, records, len(records))
}

// Reddit returns scored top posts from the secondary source.
func (h *TrendsHandler) Reddit(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.RedditTrends(r.Context(),
		r.URL.Query().Get("subreddit"),
		int(queryInt64(r, "limit", 25)),
		r.URL.Query().Get("t"))
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.List(w, http.StatusOK, records, len(records))
}

func queryInt64(r *http.Request, key string, fallback int64) int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
