// internal/server/handlers/script.go

package handlers

import (
	"net/http"

	"clipforge/internal/domain/content"
	"clipforge/internal/service/generation"
)

// ScriptHandler serves the standalone script endpoints: single script,
// voiceover text derivation, and script variations.
type ScriptHandler struct {
	scripts content.ScriptGenerator
	voice   content.VoiceoverSynthesizer
	respond *Responder
}

// NewScriptHandler creates the script handler.
func NewScriptHandler(scripts content.ScriptGenerator, voice content.VoiceoverSynthesizer, respond *Responder) *ScriptHandler {
	return &ScriptHandler{scripts: scripts, voice: voice, respond: respond}
}

type scriptRequest struct {
	Topic          string `json:"topic"`
	Duration       int    `json:"duration"`
	TargetAudience string `json:"targetAudience"`
	Count          int    `json:"count"`
}

// Generate produces one script for a topic.
func (h *ScriptHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req scriptRequest
	if err := decodeBody(r, &req); err != nil {
		h.respond.Error(w, err)
		return
	}
	if req.Topic == "" {
		h.respond.Error(w, content.NewValidationError("topic is required"))
		return
	}
	if req.Duration <= 0 {
		req.Duration = 120
	}
	if req.TargetAudience == "" {
		req.TargetAudience = "general"
	}

	script, err := h.scripts.Generate(r.Context(), req.Topic, req.Duration, req.TargetAudience)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.JSON(w, http.StatusOK, script)
}

// Variations produces several scripts for the same topic from different
// angles.
func (h *ScriptHandler) Variations(w http.ResponseWriter, r *http.Request) {
	var req scriptRequest
	if err := decodeBody(r, &req); err != nil {
		h.respond.Error(w, err)
		return
	}
	if req.Topic == "" {
		h.respond.Error(w, content.NewValidationError("topic is required"))
		return
	}
	if req.Duration <= 0 {
		req.Duration = 120
	}

	scripts, err := h.scripts.Variations(r.Context(), req.Topic, req.Count, req.Duration)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.List(w, http.StatusOK, scripts, len(scripts))
}

type voiceoverRequest struct {
	Script     *content.Script `json:"script"`
	FullScript string          `json:"fullScript"`
	Synthesize bool            `json:"synthesize"`
}

type voiceoverResponse struct {
	Text  string             `json:"text"`
	Audio *content.Voiceover `json:"audio,omitempty"`
}

// Voiceover derives TTS-ready narration from a script and optionally
// synthesizes it.
func (h *ScriptHandler) Voiceover(w http.ResponseWriter, r *http.Request) {
	var req voiceoverRequest
	if err := decodeBody(r, &req); err != nil {
		h.respond.Error(w, err)
		return
	}

	script := req.Script
	if script == nil {
		script = &content.Script{FullScript: req.FullScript}
	}
	text := generation.VoiceoverText(script)
	if text == "" {
		h.respond.Error(w, content.NewValidationError("script or fullScript is required"))
		return
	}

	resp := voiceoverResponse{Text: text}
	if req.Synthesize {
		audio, err := h.voice.Synthesize(r.Context(), text)
		if err != nil {
			h.respond.Error(w, err)
			return
		}
		resp.Audio = audio
	}

	h.respond.JSON(w, http.StatusOK, resp)
}
