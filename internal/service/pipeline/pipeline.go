// internal/service/pipeline/pipeline.go

package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/domain/platform"
	"clipforge/internal/domain/trend"
	"clipforge/internal/notify"
	"clipforge/internal/service/generation"
)

// Discoverer is the slice of the discovery service the pipeline uses for
// topic resolution.
type Discoverer interface {
	TrendingTopicsForNiche(ctx context.Context, niche string) ([]trend.Record, error)
}

// Service runs the content pipeline: seven strictly sequential generation
// steps assembling one artifact, plus the repurpose and publish operations
// over the platform registry.
type Service struct {
	script    content.ScriptGenerator
	voiceover content.VoiceoverSynthesizer
	visuals   content.VisualPlanner
	thumbs    content.ThumbnailDesigner
	seo       content.MetadataGenerator
	broll     content.BRollSuggester
	discovery Discoverer
	registry  *platform.Registry
	webhook   *notify.Webhook
	bus       *notify.Bus
	defaults  config.ContentConfig
	logger    *zap.Logger
}

// Deps collects the pipeline's collaborators.
type Deps struct {
	Script    content.ScriptGenerator
	Voiceover content.VoiceoverSynthesizer
	Visuals   content.VisualPlanner
	Thumbs    content.ThumbnailDesigner
	SEO       content.MetadataGenerator
	BRoll     content.BRollSuggester
	Discovery Discoverer
	Registry  *platform.Registry
	Webhook   *notify.Webhook
	Bus       *notify.Bus
}

// New creates the pipeline service.
func New(deps Deps, defaults config.ContentConfig, logger *zap.Logger) *Service {
	return &Service{
		script:    deps.Script,
		voiceover: deps.Voiceover,
		visuals:   deps.Visuals,
		thumbs:    deps.Thumbs,
		seo:       deps.SEO,
		broll:     deps.BRoll,
		discovery: deps.Discovery,
		registry:  deps.Registry,
		webhook:   deps.Webhook,
		bus:       deps.Bus,
		defaults:  defaults,
		logger:    logger,
	}
}

// GenerateCompleteContent runs the full pipeline once and returns the
// assembled artifact. The first failing step aborts the run; no partial
// artifact is ever returned.
func (s *Service) GenerateCompleteContent(ctx context.Context, opts content.GenerateOptions) (*content.Artifact, error) {
	opts = s.applyDefaults(opts)

	topic, err := s.resolveTopic(ctx, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pipeline started",
		zap.String("topic", topic),
		zap.String("niche", opts.Niche),
		zap.Int("duration", opts.Duration))

	artifact := content.NewArtifact(topic, opts.Niche, opts.Duration, opts.Platforms)

	script, err := s.script.Generate(ctx, topic, opts.Duration, opts.TargetAudience)
	if err != nil {
		return nil, fmt.Errorf("generating script: %w", err)
	}
	artifact.Script = script

	voiceoverText := generation.VoiceoverText(script)
	voiceover, err := s.voiceover.Synthesize(ctx, voiceoverText)
	if err != nil {
		return nil, fmt.Errorf("synthesizing voiceover: %w", err)
	}
	artifact.Voiceover = voiceover

	scenes, err := s.visuals.Scenes(ctx, script.FullScript, opts.Duration)
	if err != nil {
		return nil, fmt.Errorf("planning visuals: %w", err)
	}
	artifact.Visuals = scenes

	thumbnails, err := s.thumbs.Concepts(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("generating thumbnails: %w", err)
	}
	artifact.Thumbnails = thumbnails

	seoMeta, err := s.seo.Metadata(ctx, topic, opts.Niche, script.FullScript)
	if err != nil {
		return nil, fmt.Errorf("generating seo metadata: %w", err)
	}
	artifact.SEOMetadata = seoMeta

	suggestions, err := s.broll.Suggestions(ctx, script.FullScript)
	if err != nil {
		return nil, fmt.Errorf("suggesting b-roll: %w", err)
	}
	artifact.BRollSuggestions = suggestions

	s.logger.Info("pipeline finished",
		zap.String("id", artifact.ID),
		zap.String("topic", artifact.Topic),
		zap.Int("scenes", len(artifact.Visuals)))

	// Best-effort side effects; pipeline success does not depend on them.
	s.webhook.Notify(notify.SubjectContentGenerated, artifact)
	s.bus.Publish(notify.SubjectContentGenerated, map[string]string{
		"id":    artifact.ID,
		"topic": artifact.Topic,
	})

	return artifact, nil
}

// RepurposeContent applies each requested platform's registered transform.
// Unknown platform names are skipped silently; the result holds one entry
// per recognized platform.
func (s *Service) RepurposeContent(artifact *content.Artifact, platforms []string) map[string]platform.Payload {
	results := make(map[string]platform.Payload)
	for _, tag := range platforms {
		capability, ok := s.registry.Lookup(tag)
		if !ok || capability.Repurpose == nil {
			continue
		}
		results[tag] = capability.Repurpose.Repurpose(artifact)
	}
	return results
}

// PublishContent repurposes the artifact and publishes each non-empty
// payload. Per-platform failures become outcome records; the returned list
// follows the requested platform order regardless of completion order.
func (s *Service) PublishContent(ctx context.Context, artifact *content.Artifact, platforms []string) ([]platform.PublishResult, error) {
	if artifact == nil {
		return nil, content.NewValidationError("content is required")
	}

	payloads := s.RepurposeContent(artifact, platforms)

	type slot struct {
		tag     string
		payload platform.Payload
		pub     platform.Publisher
	}

	var slots []slot
	for _, tag := range platforms {
		payload, ok := payloads[tag]
		if !ok || payload.IsZero() {
			continue
		}
		capability, _ := s.registry.Lookup(tag)
		slots = append(slots, slot{tag: tag, payload: payload, pub: capability.Publish})
	}

	results := make([]platform.PublishResult, len(slots))
	var wg sync.WaitGroup
	for i, sl := range slots {
		wg.Add(1)
		go func(i int, sl slot) {
			defer wg.Done()
			results[i] = s.publishOne(ctx, sl.tag, sl.pub, sl.payload)
		}(i, sl)
	}
	wg.Wait()

	s.bus.Publish(notify.SubjectContentPublished, results)

	return results, nil
}

func (s *Service) publishOne(ctx context.Context, tag string, pub platform.Publisher, payload platform.Payload) platform.PublishResult {
	if pub == nil {
		return platform.PublishResult{
			Platform: tag,
			Error:    "no publisher registered",
		}
	}

	ref, err := pub.Publish(ctx, payload)
	if err != nil {
		s.logger.Warn("platform publish failed",
			zap.String("platform", tag),
			zap.Error(err))
		return platform.PublishResult{
			Platform: tag,
			Error:    err.Error(),
		}
	}

	return platform.PublishResult{
		Platform: tag,
		Success:  true,
		PostID:   ref.ID,
		URL:      ref.URL,
	}
}

// resolveTopic implements step one: a caller topic wins; otherwise discovery
// runs when enabled, taking the top-ranked title and degrading to a generic
// placeholder topic when discovery yields nothing usable. With discovery
// disabled and no topic, the run fails before any generation step.
func (s *Service) resolveTopic(ctx context.Context, opts content.GenerateOptions) (string, error) {
	if opts.Topic != "" {
		return opts.Topic, nil
	}
	if !opts.DiscoverEnabled() {
		return "", &content.MissingTopicError{}
	}

	records, err := s.discovery.TrendingTopicsForNiche(ctx, opts.Niche)
	if err != nil {
		s.logger.Warn("trend discovery failed, using placeholder topic",
			zap.String("niche", opts.Niche),
			zap.Error(err))
	}
	if len(records) > 0 && records[0].Title != "" {
		return records[0].Title, nil
	}

	return fmt.Sprintf("Latest %s trends you need to know", opts.Niche), nil
}

func (s *Service) applyDefaults(opts content.GenerateOptions) content.GenerateOptions {
	if opts.Niche == "" {
		opts.Niche = s.defaults.DefaultNiche
	}
	if opts.Duration <= 0 {
		opts.Duration = s.defaults.DefaultDuration
	}
	if opts.Duration < s.defaults.MinDuration {
		opts.Duration = s.defaults.MinDuration
	}
	if s.defaults.MaxDuration > 0 && opts.Duration > s.defaults.MaxDuration {
		opts.Duration = s.defaults.MaxDuration
	}
	if len(opts.Platforms) == 0 {
		opts.Platforms = []string{"youtube"}
	}
	if opts.TargetAudience == "" {
		opts.TargetAudience = s.defaults.TargetAudience
	}
	return opts
}
