// internal/service/generation/seo.go

package generation

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"clipforge/internal/domain/content"
)

const maxTitleLength = 100

// nicheCategories maps niches to upload categories. Closed lookup; unknown
// niches take the fallback.
var nicheCategories = map[string]string{
	"technology":    "Science & Technology",
	"finance":       "Education",
	"health":        "Howto & Style",
	"entertainment": "Entertainment",
	"education":     "Education",
}

const fallbackCategory = "People & Blogs"

type seoResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Hashtags    []string `json:"hashtags"`
	Keywords    string   `json:"keywords"`
	Chapters    []string `json:"chapters"`
}

// SEOService builds the discoverability bundle from a finished script.
type SEOService struct {
	llm    Completer
	logger *zap.Logger
}

// NewSEOService creates the metadata generator.
func NewSEOService(llm Completer, logger *zap.Logger) *SEOService {
	return &SEOService{llm: llm, logger: logger}
}

// Metadata generates SEO metadata for the script. A reply that fails to
// parse as JSON degrades to metadata derived from the topic and script
// instead of failing the step.
func (s *SEOService) Metadata(ctx context.Context, topic, niche, fullScript string) (*content.SEOMetadata, error) {
	if fullScript == "" {
		return nil, content.NewValidationError("script is required")
	}

	raw, err := s.llm.Complete(ctx, seoSystemPrompt, buildSEOPrompt(topic, niche, fullScript))
	if err != nil {
		return nil, err
	}

	var parsed seoResponse
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &parsed); err != nil {
		s.logger.Warn("seo reply was not valid JSON, falling back to derived metadata",
			zap.Error(err))
		parsed = seoResponse{}
	}

	meta := &content.SEOMetadata{
		Title:       truncateText(firstNonEmpty(parsed.Title, topic), maxTitleLength),
		Description: firstNonEmpty(parsed.Description, excerpt(fullScript, 160)),
		Tags:        parsed.Tags,
		Hashtags:    normalizeHashtags(parsed.Hashtags),
		Category:    categoryForNiche(niche),
		Keywords:    parsed.Keywords,
		Chapters:    parsed.Chapters,
	}
	if len(meta.Tags) == 0 {
		meta.Tags = defaultTags(topic, niche)
	}
	if len(meta.Hashtags) == 0 {
		meta.Hashtags = normalizeHashtags(meta.Tags)
	}
	if meta.Keywords == "" {
		meta.Keywords = strings.Join(meta.Tags, ", ")
	}

	s.logger.Info("seo metadata generated",
		zap.String("title", meta.Title),
		zap.Int("tags", len(meta.Tags)),
		zap.Int("hashtags", len(meta.Hashtags)))

	return meta, nil
}

func categoryForNiche(niche string) string {
	if category, ok := nicheCategories[strings.ToLower(niche)]; ok {
		return category
	}
	return fallbackCategory
}

// normalizeHashtags lowercases, strips internal whitespace, and guarantees
// a single leading '#'. Order is preserved; empties are dropped.
func normalizeHashtags(hashtags []string) []string {
	out := make([]string, 0, len(hashtags))
	for _, tag := range hashtags {
		cleaned := strings.ToLower(strings.TrimSpace(tag))
		cleaned = strings.TrimLeft(cleaned, "#")
		cleaned = strings.Join(strings.Fields(cleaned), "")
		if cleaned == "" {
			continue
		}
		out = append(out, "#"+cleaned)
	}
	return out
}

func defaultTags(topic, niche string) []string {
	tags := []string{}
	for _, word := range strings.Fields(strings.ToLower(topic)) {
		word = strings.Trim(word, ".,!?:;\"'")
		if len(word) > 3 {
			tags = append(tags, word)
		}
		if len(tags) == 5 {
			break
		}
	}
	if niche != "" {
		tags = append(tags, strings.ToLower(niche))
	}
	return append(tags, "shorts")
}

func excerpt(s string, max int) string {
	return truncateText(collapseWhitespace(s), max)
}

func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
