// internal/adapter/speech/elevenlabs.go

package speech

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/httpx"
)

const elevenLabsBaseURL = "https://api.elevenlabs.io/v1"

// ElevenLabs synthesizes voiceovers with the ElevenLabs API.
type ElevenLabs struct {
	apiKey    string
	voiceID   string
	modelID   string
	outputDir string
	http      *httpx.Client
	logger    *zap.Logger
}

// NewElevenLabs creates the ElevenLabs TTS provider.
func NewElevenLabs(cfg config.TTSConfig, httpClient *httpx.Client, logger *zap.Logger) *ElevenLabs {
	return &ElevenLabs{
		apiKey:    cfg.ElevenLabsAPIKey,
		voiceID:   cfg.Voice,
		modelID:   cfg.ElevenLabsModel,
		outputDir: cfg.OutputDir,
		http:      httpClient,
		logger:    logger,
	}
}

type elevenLabsRequest struct {
	Text          string             `json:"text"`
	ModelID       string             `json:"model_id"`
	VoiceSettings elevenLabsSettings `json:"voice_settings"`
}

type elevenLabsSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize renders text to audio and stores it under the output dir.
func (e *ElevenLabs) Synthesize(ctx context.Context, text string) (*content.Voiceover, error) {
	var audio []byte
	err := e.http.Do(ctx, httpx.Request{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("%s/text-to-speech/%s", elevenLabsBaseURL, e.voiceID),
		Header: http.Header{
			"Xi-Api-Key": {e.apiKey},
			"Accept":     {"audio/mpeg"},
		},
		Body: elevenLabsRequest{
			Text:    text,
			ModelID: e.modelID,
			VoiceSettings: elevenLabsSettings{
				Stability:       0.5,
				SimilarityBoost: 0.75,
			},
		},
		RawOut: &audio,
	})
	if err != nil {
		return nil, content.NewUpstreamError("elevenlabs tts", err)
	}

	voiceover, err := writeAudio(e.outputDir, "elevenlabs", audio)
	if err != nil {
		return nil, err
	}

	e.logger.Info("voiceover synthesized",
		zap.String("provider", "elevenlabs"),
		zap.String("file", voiceover.FilePath),
		zap.Int64("bytes", voiceover.Size))

	return voiceover, nil
}
