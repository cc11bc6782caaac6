// internal/service/generation/broll.go

package generation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clipforge/internal/domain/content"
)

// BRollService proposes supplementary footage for a finished script.
type BRollService struct {
	llm    Completer
	logger *zap.Logger
}

// NewBRollService creates the b-roll suggester.
func NewBRollService(llm Completer, logger *zap.Logger) *BRollService {
	return &BRollService{llm: llm, logger: logger}
}

// Suggestions returns ordered b-roll clip descriptions.
func (b *BRollService) Suggestions(ctx context.Context, fullScript string) ([]string, error) {
	if fullScript == "" {
		return nil, content.NewValidationError("script is required")
	}

	raw, err := b.llm.Complete(ctx, brollSystemPrompt, buildBRollPrompt(fullScript))
	if err != nil {
		return nil, err
	}

	suggestions := parseList(raw)
	if len(suggestions) == 0 {
		return nil, content.NewUpstreamError("text generation", fmt.Errorf("model returned no b-roll suggestions"))
	}

	b.logger.Info("b-roll suggestions generated", zap.Int("count", len(suggestions)))

	return suggestions, nil
}
