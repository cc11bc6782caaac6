// internal/adapter/speech/openai.go

package speech

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/httpx"
)

const openaiSpeechURL = "https://api.openai.com/v1/audio/speech"

// OpenAI synthesizes voiceovers with the OpenAI speech API.
type OpenAI struct {
	apiKey    string
	voice     string
	outputDir string
	http      *httpx.Client
	logger    *zap.Logger
}

// NewOpenAI creates the OpenAI TTS provider.
func NewOpenAI(apiKey string, cfg config.TTSConfig, httpClient *httpx.Client, logger *zap.Logger) *OpenAI {
	return &OpenAI{
		apiKey:    apiKey,
		voice:     cfg.Voice,
		outputDir: cfg.OutputDir,
		http:      httpClient,
		logger:    logger,
	}
}

type openaiSpeechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

// Synthesize renders text to audio and stores it under the output dir.
func (o *OpenAI) Synthesize(ctx context.Context, text string) (*content.Voiceover, error) {
	var audio []byte
	err := o.http.Do(ctx, httpx.Request{
		Method: http.MethodPost,
		URL:    openaiSpeechURL,
		Header: http.Header{"Authorization": {"Bearer " + o.apiKey}},
		Body: openaiSpeechRequest{
			Model: "tts-1",
			Voice: o.voice,
			Input: text,
		},
		RawOut: &audio,
	})
	if err != nil {
		return nil, content.NewUpstreamError("openai tts", err)
	}

	voiceover, err := writeAudio(o.outputDir, "openai", audio)
	if err != nil {
		return nil, err
	}

	o.logger.Info("voiceover synthesized",
		zap.String("provider", "openai"),
		zap.String("file", voiceover.FilePath),
		zap.Int64("bytes", voiceover.Size))

	return voiceover, nil
}
