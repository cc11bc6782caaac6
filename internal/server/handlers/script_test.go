package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipforge/internal/domain/content"
)

type stubScriptGenerator struct{}

func (stubScriptGenerator) Generate(_ context.Context, topic string, _ int, _ string) (*content.Script, error) {
	return &content.Script{Hook: "h", FullScript: "script about " + topic}, nil
}

func (stubScriptGenerator) Variations(_ context.Context, topic string, count, _ int) ([]*content.Script, error) {
	scripts := make([]*content.Script, count)
	for i := range scripts {
		scripts[i] = &content.Script{FullScript: topic}
	}
	return scripts, nil
}

type stubSynthesizer struct{ called bool }

func (s *stubSynthesizer) Synthesize(context.Context, string) (*content.Voiceover, error) {
	s.called = true
	return &content.Voiceover{FilePath: "out/v.mp3", Size: 10, Provider: "stub"}, nil
}

func TestScriptGenerateRequiresTopic(t *testing.T) {
	h := NewScriptHandler(stubScriptGenerator{}, &stubSynthesizer{}, testResponder())

	rec := postJSON(t, h.Generate, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScriptGenerateOK(t *testing.T) {
	h := NewScriptHandler(stubScriptGenerator{}, &stubSynthesizer{}, testResponder())

	rec := postJSON(t, h.Generate, map[string]interface{}{"topic": "X"})

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "script about X", data["fullScript"])
}

func TestScriptVariationsCount(t *testing.T) {
	h := NewScriptHandler(stubScriptGenerator{}, &stubSynthesizer{}, testResponder())

	rec := postJSON(t, h.Variations, map[string]interface{}{"topic": "X", "count": 2})

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.EqualValues(t, 2, envelope["count"])
}

func TestVoiceoverTextOnly(t *testing.T) {
	synth := &stubSynthesizer{}
	h := NewScriptHandler(stubScriptGenerator{}, synth, testResponder())

	rec := postJSON(t, h.Voiceover, map[string]interface{}{"fullScript": "HOOK: Hello there."})

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Hello there.", data["text"])
	assert.False(t, synth.called)
	assert.NotContains(t, data, "audio")
}

func TestVoiceoverSynthesize(t *testing.T) {
	synth := &stubSynthesizer{}
	h := NewScriptHandler(stubScriptGenerator{}, synth, testResponder())

	rec := postJSON(t, h.Voiceover, map[string]interface{}{
		"fullScript": "Say this.",
		"synthesize": true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.True(t, synth.called)
	audio := data["audio"].(map[string]interface{})
	assert.Equal(t, "stub", audio["provider"])
}

func TestVoiceoverEmptyScript(t *testing.T) {
	h := NewScriptHandler(stubScriptGenerator{}, &stubSynthesizer{}, testResponder())

	rec := postJSON(t, h.Voiceover, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
