package content

import (
	"time"

	"github.com/google/uuid"
)

// Artifact lifecycle states. Generation is currently the only terminal
// state; publishing bookkeeping lives with the publisher, not the artifact.
const (
	StatusGenerated = "generated"
)

// Script is the structured script produced for a topic. FullScript is the
// source of truth consumed by every downstream step.
type Script struct {
	Hook         string   `json:"hook"`
	MainContent  []string `json:"mainContent"`
	CallToAction string   `json:"callToAction"`
	FullScript   string   `json:"fullScript"`
}

// Scene is one visual beat of the video: what to show, what to overlay,
// and for how long.
type Scene struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
	TextOverlay string `json:"textOverlay"`
	Duration    int    `json:"duration"`
	Notes       string `json:"notes,omitempty"`
}

// Voiceover references a synthesized audio asset on disk.
type Voiceover struct {
	FilePath string `json:"filePath"`
	Size     int64  `json:"size"`
	Provider string `json:"provider"`
}

// SEOMetadata is the platform-agnostic discoverability bundle generated
// from the finished script.
type SEOMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Hashtags    []string `json:"hashtags"`
	Category    string   `json:"category"`
	Keywords    string   `json:"keywords"`
	Chapters    []string `json:"chapters,omitempty"`
}

// Metadata carries run-level bookkeeping for an artifact.
type Metadata struct {
	CreatedAt time.Time `json:"createdAt"`
	Duration  int       `json:"duration"`
	Platforms []string  `json:"platforms"`
	Status    string    `json:"status"`
}

// Artifact is the unit produced by one full pipeline run. ID and Topic are
// fixed at creation; the remaining fields are filled in by pipeline steps
// and never retracted. Artifacts live in process memory only.
type Artifact struct {
	ID               string       `json:"id"`
	Topic            string       `json:"topic"`
	Niche            string       `json:"niche"`
	Script           *Script      `json:"script,omitempty"`
	Voiceover        *Voiceover   `json:"voiceover,omitempty"`
	Visuals          []Scene      `json:"visuals,omitempty"`
	Thumbnails       string       `json:"thumbnails,omitempty"`
	SEOMetadata      *SEOMetadata `json:"seoMetadata,omitempty"`
	BRollSuggestions []string     `json:"brollSuggestions,omitempty"`

	// VideoURL is never set by the pipeline. Caller-supplied artifacts may
	// carry it so media-requiring platforms have something to post.
	VideoURL string `json:"videoUrl,omitempty"`

	Metadata Metadata `json:"metadata"`
}

// NewArtifact creates an empty artifact for one pipeline run.
func NewArtifact(topic, niche string, duration int, platforms []string) *Artifact {
	return &Artifact{
		ID:    uuid.New().String(),
		Topic: topic,
		Niche: niche,
		Metadata: Metadata{
			CreatedAt: time.Now().UTC(),
			Duration:  duration,
			Platforms: platforms,
			Status:    StatusGenerated,
		},
	}
}

// GenerateOptions control one pipeline run. Zero values fall back to the
// configured content defaults; AutoDiscoverTrend defaults to true when nil
// so an absent JSON field keeps discovery on.
type GenerateOptions struct {
	Topic             string   `json:"topic,omitempty"`
	Niche             string   `json:"niche,omitempty"`
	Duration          int      `json:"duration,omitempty"`
	AutoDiscoverTrend *bool    `json:"autoDiscoverTrend,omitempty"`
	Platforms         []string `json:"platforms,omitempty"`
	TargetAudience    string   `json:"targetAudience,omitempty"`
}

// DiscoverEnabled reports whether trend discovery may run for these options.
func (o GenerateOptions) DiscoverEnabled() bool {
	return o.AutoDiscoverTrend == nil || *o.AutoDiscoverTrend
}
