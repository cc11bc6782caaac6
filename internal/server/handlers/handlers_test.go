package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clipforge/internal/domain/content"
	"clipforge/internal/domain/platform"
	"clipforge/internal/domain/trend"
	"clipforge/internal/service/scheduling"
)

type stubContentService struct {
	artifact *content.Artifact
	err      error
	results  []platform.PublishResult
}

func (s *stubContentService) GenerateCompleteContent(context.Context, content.GenerateOptions) (*content.Artifact, error) {
	return s.artifact, s.err
}

func (s *stubContentService) RepurposeContent(_ *content.Artifact, platforms []string) map[string]platform.Payload {
	out := make(map[string]platform.Payload)
	for _, tag := range platforms {
		if tag == "instagram" {
			out[tag] = platform.Payload{Platform: tag, Caption: "c"}
		}
	}
	return out
}

func (s *stubContentService) PublishContent(context.Context, *content.Artifact, []string) ([]platform.PublishResult, error) {
	return s.results, s.err
}

type stubHistory struct{ artifacts []*content.Artifact }

func (s *stubHistory) History() []*content.Artifact { return s.artifacts }

type stubJobRunner struct {
	summary scheduling.RunSummary
	err     error
}

func (s *stubJobRunner) RunJob(context.Context, string) (scheduling.RunSummary, error) {
	return s.summary, s.err
}
func (s *stubJobRunner) Status() []scheduling.JobStatus { return nil }
func (s *stubJobRunner) Running() bool                  { return true }

type stubTrendService struct {
	records []trend.Record
	err     error
}

func (s *stubTrendService) TrendingVideos(context.Context, string, int64) ([]trend.Record, error) {
	return s.records, s.err
}

func (s *stubTrendService) SearchTrends(_ context.Context, keywords string, _ trend.SearchOptions) ([]trend.Record, error) {
	if keywords == "" {
		return nil, content.NewValidationError("keywords are required")
	}
	return s.records, s.err
}

func (s *stubTrendService) TrendingTopicsForNiche(context.Context, string) ([]trend.Record, error) {
	return s.records, s.err
}

func (s *stubTrendService) RedditTrends(context.Context, string, int, string) ([]trend.Record, error) {
	return s.records, s.err
}

func testResponder() *Responder {
	return NewResponder(false, zap.NewNop())
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestContentGenerateCreated(t *testing.T) {
	artifact := content.NewArtifact("X", "technology", 120, []string{"youtube"})
	h := NewContentHandler(&stubContentService{artifact: artifact}, &stubHistory{}, testResponder())

	rec := postJSON(t, h.Generate, map[string]interface{}{"topic": "X"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "success", envelope["status"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "X", data["topic"])
}

func TestContentGenerateMissingTopicBadRequest(t *testing.T) {
	h := NewContentHandler(&stubContentService{err: &content.MissingTopicError{}}, &stubHistory{}, testResponder())

	rec := postJSON(t, h.Generate, map[string]interface{}{"autoDiscoverTrend": false})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "error", envelope["status"])
	assert.Contains(t, envelope["message"], "no topic")
}

func TestContentGenerateUpstreamSanitized(t *testing.T) {
	h := NewContentHandler(&stubContentService{
		err: content.NewUpstreamError("text generation", errors.New("api key sk-secret rejected")),
	}, &stubHistory{}, testResponder())

	rec := postJSON(t, h.Generate, map[string]interface{}{"topic": "X"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.NotContains(t, envelope["message"], "sk-secret")
}

func TestContentGenerateUpstreamDetailedInDevelopment(t *testing.T) {
	h := NewContentHandler(&stubContentService{
		err: content.NewUpstreamError("text generation", errors.New("status 503")),
	}, &stubHistory{}, NewResponder(true, zap.NewNop()))

	rec := postJSON(t, h.Generate, map[string]interface{}{"topic": "X"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope["message"], "503")
}

func TestContentRepurposeRequiresContent(t *testing.T) {
	h := NewContentHandler(&stubContentService{}, &stubHistory{}, testResponder())

	rec := postJSON(t, h.Repurpose, map[string]interface{}{"platforms": []string{"instagram"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContentPublishReturnsCount(t *testing.T) {
	h := NewContentHandler(&stubContentService{results: []platform.PublishResult{
		{Platform: "instagram", Success: true},
		{Platform: "facebook", Success: false, Error: "token expired"},
	}}, &stubHistory{}, testResponder())

	rec := postJSON(t, h.Publish, map[string]interface{}{
		"content":   map[string]interface{}{"topic": "X"},
		"platforms": []string{"instagram", "facebook"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.EqualValues(t, 2, envelope["count"])
}

func TestContentHistory(t *testing.T) {
	h := NewContentHandler(&stubContentService{}, &stubHistory{artifacts: []*content.Artifact{
		content.NewArtifact("a", "technology", 120, nil),
	}}, testResponder())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.History(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.EqualValues(t, 1, envelope["count"])
}

func TestTrendsSearchMissingKeywords(t *testing.T) {
	h := NewTrendsHandler(&stubTrendService{}, testResponder())

	req := httptest.NewRequest(http.MethodGet, "/api/trends/search", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrendsNicheURLParam(t *testing.T) {
	h := NewTrendsHandler(&stubTrendService{records: []trend.Record{{Title: "t"}}}, testResponder())

	router := chi.NewRouter()
	router.Get("/api/trends/niche/{niche}", h.Niche)

	req := httptest.NewRequest(http.MethodGet, "/api/trends/niche/finance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.EqualValues(t, 1, envelope["count"])
}

func TestJobsRunUnknownNotFound(t *testing.T) {
	h := NewJobsHandler(&stubJobRunner{
		err: content.NewNotFoundError("unknown job %q", "bogus"),
	}, testResponder())

	router := chi.NewRouter()
	router.Post("/api/jobs/run/{jobName}", h.Run)

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/run/bogus", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope["message"], "bogus")
}

func TestJobsStatusShape(t *testing.T) {
	h := NewJobsHandler(&stubJobRunner{}, testResponder())

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/status", nil)
	rec := httptest.NewRecorder()
	h.Status(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["schedulerRunning"])
}

func TestHealthBareEnvelope(t *testing.T) {
	h := NewHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotContains(t, body, "data")
	assert.Contains(t, body, "timestamp")
	assert.Contains(t, body, "uptime")
}

func TestQueryInt64(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?maxResults=25&bad=zero&neg=-3", nil)

	assert.EqualValues(t, 25, queryInt64(req, "maxResults", 10))
	assert.EqualValues(t, 10, queryInt64(req, "bad", 10))
	assert.EqualValues(t, 10, queryInt64(req, "neg", 10))
	assert.EqualValues(t, 10, queryInt64(req, "absent", 10))
}
