// internal/server/handlers/content.go

package handlers

import (
	"context"
	"net/http"

	"clipforge/internal/domain/content"
	"clipforge/internal/domain/platform"
)

// ContentService is the slice of the pipeline the content handler uses.
type ContentService interface {
	GenerateCompleteContent(ctx context.Context, opts content.GenerateOptions) (*content.Artifact, error)
	RepurposeContent(artifact *content.Artifact, platforms []string) map[string]platform.Payload
	PublishContent(ctx context.Context, artifact *content.Artifact, platforms []string) ([]platform.PublishResult, error)
}

// HistoryStore exposes the scheduler's artifact ring buffer.
type HistoryStore interface {
	History() []*content.Artifact
}

// ContentHandler serves the content generation, repurposing, and publishing
// endpoints.
type ContentHandler struct {
	service ContentService
	history HistoryStore
	respond *Responder
}

// NewContentHandler creates the content handler.
func NewContentHandler(service ContentService, history HistoryStore, respond *Responder) *ContentHandler {
	return &ContentHandler{service: service, history: history, respond: respond}
}

// Generate runs the full pipeline and returns the artifact.
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var opts content.GenerateOptions
	if err := decodeBody(r, &opts); err != nil {
		h.respond.Error(w, err)
		return
	}

	artifact, err := h.service.GenerateCompleteContent(r.Context(), opts)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.JSON(w, http.StatusCreated, artifact)
}

type artifactRequest struct {
	Content   *content.Artifact `json:"content"`
	Platforms []string          `json:"platforms"`
}

func (req artifactRequest) validate() error {
	if req.Content == nil {
		return content.NewValidationError("content is required")
	}
	if len(req.Platforms) == 0 {
		return content.NewValidationError("platforms are required")
	}
	return nil
}

// Repurpose returns the per-platform payload map for an artifact.
func (h *ContentHandler) Repurpose(w http.ResponseWriter, r *http.Request) {
	var req artifactRequest
	if err := decodeBody(r, &req); err != nil {
		h.respond.Error(w, err)
		return
	}
	if err := req.validate(); err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.JSON(w, http.StatusOK, h.service.RepurposeContent(req.Content, req.Platforms))
}

// Publish posts the artifact to each requested platform and returns the
// ordered outcome list.
func (h *ContentHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req artifactRequest
	if err := decodeBody(r, &req); err != nil {
		h.respond.Error(w, err)
		return
	}
	if err := req.validate(); err != nil {
		h.respond.Error(w, err)
		return
	}

	results, err := h.service.PublishContent(r.Context(), req.Content, req.Platforms)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.List(w, http.StatusOK, results, len(results))
}

// History returns the scheduler's retained artifacts.
func (h *ContentHandler) History(w http.ResponseWriter, r *http.Request) {
	artifacts := h.history.History()
	h.respond.List(w, http.StatusOK, artifacts, len(artifacts))
}
