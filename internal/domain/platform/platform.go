// internal/domain/platform/platform.go

package platform

import (
	"context"
	"sort"
	"sync"

	"clipforge/internal/domain/content"
)

// Registered platform tags.
const (
	Instagram = "instagram"
	TikTok    = "tiktok"
	Facebook  = "facebook"
	LinkedIn  = "linkedin"
	X         = "x"
)

// Payload is a platform-shaped rendering of an artifact. Different
// platforms use different primary text fields (caption, message, text),
// matching what their publish APIs expect; unused fields stay empty.
type Payload struct {
	Platform    string   `json:"platform"`
	Caption     string   `json:"caption,omitempty"`
	Message     string   `json:"message,omitempty"`
	Text        string   `json:"text,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Hashtags    []string `json:"hashtags,omitempty"`
	AspectRatio string   `json:"aspectRatio,omitempty"`
	Tone        string   `json:"tone,omitempty"`
	MediaURL    string   `json:"mediaUrl,omitempty"`
}

// IsZero reports whether the transform produced no postable text.
func (p Payload) IsZero() bool {
	return p.Caption == "" && p.Message == "" && p.Text == ""
}

// PostRef identifies a successfully created post.
type PostRef struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

// PublishResult is one per-platform outcome record. Failures are data,
// never propagated as errors past the publish call.
type PublishResult struct {
	Platform string `json:"platform"`
	Success  bool   `json:"success"`
	PostID   string `json:"postId,omitempty"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Repurposer converts an artifact into this platform's payload shape.
// Implementations must be pure: same artifact in, same payload out.
type Repurposer interface {
	Repurpose(a *content.Artifact) Payload
}

// RepurposeFunc adapts a plain function to the Repurposer interface.
type RepurposeFunc func(a *content.Artifact) Payload

func (f RepurposeFunc) Repurpose(a *content.Artifact) Payload { return f(a) }

// Publisher posts a payload to the platform's API.
type Publisher interface {
	Publish(ctx context.Context, p Payload) (PostRef, error)
}

// Capability pairs what the service can do for one platform tag.
type Capability struct {
	Repurpose Repurposer
	Publish   Publisher
}

// Registry maps platform tags to capability pairs. Adding a platform means
// registering a pair, not editing a dispatch branch.
type Registry struct {
	mu   sync.RWMutex
	caps map[string]Capability
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{caps: make(map[string]Capability)}
}

// Register adds or replaces the capability pair for a tag.
func (r *Registry) Register(tag string, c Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caps[tag] = c
}

// Lookup returns the capability pair for a tag.
func (r *Registry) Lookup(tag string) (Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[tag]
	return c, ok
}

// Tags returns the registered platform tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.caps))
	for tag := range r.caps {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
