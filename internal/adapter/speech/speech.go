// internal/adapter/speech/speech.go

package speech

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/httpx"
)

// NewSynthesizer selects the configured TTS provider.
func NewSynthesizer(cfg config.Config, httpClient *httpx.Client, logger *zap.Logger) (content.VoiceoverSynthesizer, error) {
	switch cfg.TTS.Provider {
	case "openai":
		return NewOpenAI(cfg.OpenAI.APIKey, cfg.TTS, httpClient, logger), nil
	case "elevenlabs":
		return NewElevenLabs(cfg.TTS, httpClient, logger), nil
	default:
		return nil, fmt.Errorf("unsupported TTS provider %q", cfg.TTS.Provider)
	}
}

// writeAudio stores synthesized audio under dir and returns the asset
// reference.
func writeAudio(dir, provider string, data []byte) (*content.Voiceover, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("voiceover_%s.mp3", uuid.New().String()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing audio file: %w", err)
	}

	return &content.Voiceover{
		FilePath: path,
		Size:     int64(len(data)),
		Provider: provider,
	}, nil
}
