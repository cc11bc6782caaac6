// internal/service/generation/thumbnails.go

package generation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clipforge/internal/domain/content"
)

// ThumbnailService produces thumbnail concept descriptions. Output stays a
// freeform text block; nothing downstream needs it structured.
type ThumbnailService struct {
	llm    Completer
	logger *zap.Logger
}

// NewThumbnailService creates the thumbnail designer.
func NewThumbnailService(llm Completer, logger *zap.Logger) *ThumbnailService {
	return &ThumbnailService{llm: llm, logger: logger}
}

// Concepts returns a block of thumbnail ideas for the topic.
func (t *ThumbnailService) Concepts(ctx context.Context, topic string) (string, error) {
	if topic == "" {
		return "", content.NewValidationError("topic is required")
	}

	raw, err := t.llm.Complete(ctx, thumbnailSystemPrompt, buildThumbnailPrompt(topic))
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", content.NewUpstreamError("text generation", fmt.Errorf("model returned no thumbnail concepts"))
	}

	t.logger.Info("thumbnail concepts generated", zap.String("topic", topic))

	return raw, nil
}
