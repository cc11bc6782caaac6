// internal/server/handlers/respond.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"clipforge/internal/domain/content"
)

// Responder writes the service's JSON envelopes and maps domain errors to
// HTTP status codes in one place.
type Responder struct {
	development bool
	logger      *zap.Logger
}

// NewResponder creates the responder. development controls whether upstream
// error detail reaches clients.
func NewResponder(development bool, logger *zap.Logger) *Responder {
	return &Responder{development: development, logger: logger}
}

type successEnvelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
	Count  *int        `json:"count,omitempty"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JSON writes a success envelope.
func (r *Responder) JSON(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, successEnvelope{Status: "success", Data: data})
}

// List writes a success envelope with a count, for list endpoints.
func (r *Responder) List(w http.ResponseWriter, code int, data interface{}, count int) {
	writeJSON(w, code, successEnvelope{Status: "success", Data: data, Count: &count})
}

// Error maps a domain error to its status code and writes the error
// envelope. Upstream failures are sanitized outside development.
func (r *Responder) Error(w http.ResponseWriter, err error) {
	var (
		validationErr   *content.ValidationError
		missingTopicErr *content.MissingTopicError
		notFoundErr     *content.NotFoundError
		rateLimitErr    *content.RateLimitError
		upstreamErr     *content.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &missingTopicErr):
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Status: "error", Message: err.Error()})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, errorEnvelope{Status: "error", Message: err.Error()})
	case errors.As(err, &rateLimitErr):
		writeJSON(w, http.StatusTooManyRequests, errorEnvelope{Status: "error", Message: err.Error()})
	case errors.As(err, &upstreamErr):
		r.logger.Error("upstream failure", zap.Error(err))
		message := "an external service request failed"
		if r.development {
			message = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Status: "error", Message: message})
	default:
		r.logger.Error("request failed", zap.Error(err))
		message := "internal server error"
		if r.development {
			message = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Status: "error", Message: message})
	}
}

// NotFound is the router's unknown-route handler.
func (r *Responder) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, errorEnvelope{Status: "error", Message: "route not found"})
}

// RateLimited is invoked by the rate-limit middleware.
func (r *Responder) RateLimited(w http.ResponseWriter, _ *http.Request) {
	r.Error(w, &content.RateLimitError{})
}

// decodeBody parses a JSON request body into out.
func decodeBody(req *http.Request, out interface{}) error {
	if err := json.NewDecoder(req.Body).Decode(out); err != nil {
		return content.NewValidationError("invalid request body: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
