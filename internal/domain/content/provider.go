// internal/domain/content/provider.go

package content

import (
	"context"
)

// ScriptGenerator produces structured scripts for a topic.
type ScriptGenerator interface {
	// Generate writes a script sized for durationSec seconds of speech
	Generate(ctx context.Context, topic string, durationSec int, audience string) (*Script, error)

	// Variations produces count alternative scripts for the same topic
	Variations(ctx context.Context, topic string, count, durationSec int) ([]*Script, error)
}

// VoiceoverSynthesizer turns voiceover-ready text into an audio asset.
type VoiceoverSynthesizer interface {
	// Synthesize renders text to audio and returns the stored asset reference
	Synthesize(ctx context.Context, text string) (*Voiceover, error)
}

// VisualPlanner turns a finished script into ordered scene prompts.
type VisualPlanner interface {
	// Scenes breaks the script into visual beats with overlays and durations
	Scenes(ctx context.Context, fullScript string, durationSec int) ([]Scene, error)
}

// ThumbnailDesigner produces thumbnail concept descriptions for a topic.
type ThumbnailDesigner interface {
	// Concepts returns a freeform block of thumbnail ideas
	Concepts(ctx context.Context, topic string) (string, error)
}

// MetadataGenerator produces SEO metadata from a finished script.
type MetadataGenerator interface {
	// Metadata builds the discoverability bundle for the script
	Metadata(ctx context.Context, topic, niche, fullScript string) (*SEOMetadata, error)
}

// BRollSuggester proposes supplementary footage for a finished script.
type BRollSuggester interface {
	// Suggestions returns ordered b-roll clip descriptions
	Suggestions(ctx context.Context, fullScript string) ([]string, error)
}
