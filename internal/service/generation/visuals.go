// internal/service/generation/visuals.go

package generation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clipforge/internal/domain/content"
)

// VisualService turns a finished script into ordered scene prompts.
type VisualService struct {
	llm    Completer
	logger *zap.Logger
}

// NewVisualService creates the visual planner.
func NewVisualService(llm Completer, logger *zap.Logger) *VisualService {
	return &VisualService{llm: llm, logger: logger}
}

// Scenes breaks the script into visual beats sized so the defaults roughly
// cover the requested duration.
func (v *VisualService) Scenes(ctx context.Context, fullScript string, durationSec int) ([]content.Scene, error) {
	if fullScript == "" {
		return nil, content.NewValidationError("script is required")
	}

	sceneCount := durationSec / defaultSceneDuration
	if sceneCount < 3 {
		sceneCount = 3
	}
	if sceneCount > 12 {
		sceneCount = 12
	}

	raw, err := v.llm.Complete(ctx, visualsSystemPrompt, buildVisualsPrompt(fullScript, sceneCount))
	if err != nil {
		return nil, err
	}

	scenes := parseScenes(raw)
	if len(scenes) == 0 {
		return nil, content.NewUpstreamError("text generation", fmt.Errorf("model returned no scenes"))
	}

	v.logger.Info("visual scenes generated", zap.Int("scenes", len(scenes)))

	return scenes, nil
}
