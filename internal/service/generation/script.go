// internal/service/generation/script.go

package generation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clipforge/internal/domain/content"
)

// Words of narration per minute of video, used to size scripts.
const defaultWordsPerMinute = 130

// Completer is the slice of the text-generation client the generators use.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// variationAngles steer each script variation toward a different framing.
var variationAngles = []string{
	"contrarian take that challenges the common view",
	"personal story framing with a lesson at the end",
	"data-driven breakdown with concrete numbers",
	"beginner-friendly explainer built around one vivid analogy",
	"myth-busting countdown",
}

// ScriptService generates structured scripts through the text-generation
// API.
type ScriptService struct {
	llm    Completer
	wpm    int
	logger *zap.Logger
}

// NewScriptService creates the script generator. wordsPerMinute <= 0 keeps
// the default pacing.
func NewScriptService(llm Completer, wordsPerMinute int, logger *zap.Logger) *ScriptService {
	if wordsPerMinute <= 0 {
		wordsPerMinute = defaultWordsPerMinute
	}
	return &ScriptService{llm: llm, wpm: wordsPerMinute, logger: logger}
}

// Generate writes a script sized for durationSec seconds of speech.
func (s *ScriptService) Generate(ctx context.Context, topic string, durationSec int, audience string) (*content.Script, error) {
	return s.generate(ctx, topic, durationSec, audience, "")
}

// Variations produces count alternative scripts for the same topic, each
// from a different angle. Count is clamped to the available angle list.
func (s *ScriptService) Variations(ctx context.Context, topic string, count, durationSec int) ([]*content.Script, error) {
	if count <= 0 {
		count = 3
	}
	if count > len(variationAngles) {
		count = len(variationAngles)
	}

	scripts := make([]*content.Script, 0, count)
	for i := 0; i < count; i++ {
		script, err := s.generate(ctx, topic, durationSec, "general", variationAngles[i])
		if err != nil {
			return nil, fmt.Errorf("variation %d: %w", i+1, err)
		}
		scripts = append(scripts, script)
	}
	return scripts, nil
}

func (s *ScriptService) generate(ctx context.Context, topic string, durationSec int, audience, angle string) (*content.Script, error) {
	if topic == "" {
		return nil, content.NewValidationError("topic is required")
	}

	targetWords := durationSec * s.wpm / 60
	raw, err := s.llm.Complete(ctx, scriptSystemPrompt, buildScriptPrompt(topic, durationSec, targetWords, audience, angle))
	if err != nil {
		return nil, err
	}

	script := parseScript(raw)
	if script.FullScript == "" {
		return nil, content.NewUpstreamError("text generation", fmt.Errorf("model returned an empty script"))
	}

	s.logger.Info("script generated",
		zap.String("topic", topic),
		zap.Int("segments", len(script.MainContent)),
		zap.Int("targetWords", targetWords))

	return script, nil
}
