// internal/service/repurpose/repurpose.go

package repurpose

import (
	"strings"

	"clipforge/internal/domain/content"
	"clipforge/internal/domain/platform"
)

// Per-platform limits, fixed by each platform's publishing rules.
const (
	instagramMaxCaption   = 2200
	instagramMaxHashtags  = 30
	instagramCaptionTags  = 10
	tiktokMaxCaption      = 150
	tiktokMaxHashtags     = 10
	facebookMaxMessage    = 5000
	facebookMaxHashtags   = 15
	linkedinMaxText       = 3000
	linkedinMaxHashtags   = 5
	linkedinDescLines     = 3
	xMaxText              = 280
	xMaxHashtags          = 4
)

const ellipsis = "..."

// Instagram builds the caption from the first description line plus up to
// ten hashtags, 9:16 vertical.
func Instagram(a *content.Artifact) platform.Payload {
	_, description, hashtags := seoFields(a)

	caption := firstLines(description, 1)
	if tags := strings.Join(capSlice(hashtags, instagramCaptionTags), " "); tags != "" {
		caption = strings.TrimSpace(caption + "\n\n" + tags)
	}

	return platform.Payload{
		Platform:    platform.Instagram,
		Caption:     truncate(caption, instagramMaxCaption),
		Hashtags:    capSlice(hashtags, instagramMaxHashtags),
		AspectRatio: "9:16",
		MediaURL:    a.VideoURL,
	}
}

// TikTok uses the SEO title (or the topic) as the caption, 9:16 vertical.
func TikTok(a *content.Artifact) platform.Payload {
	title, _, hashtags := seoFields(a)

	return platform.Payload{
		Platform:    platform.TikTok,
		Caption:     truncate(title, tiktokMaxCaption),
		Hashtags:    capSlice(hashtags, tiktokMaxHashtags),
		AspectRatio: "9:16",
		MediaURL:    a.VideoURL,
	}
}

// Facebook posts the full description as the message, square format.
func Facebook(a *content.Artifact) platform.Payload {
	_, description, hashtags := seoFields(a)

	return platform.Payload{
		Platform:    platform.Facebook,
		Message:     truncate(description, facebookMaxMessage),
		Hashtags:    capSlice(hashtags, facebookMaxHashtags),
		AspectRatio: "1:1",
	}
}

// LinkedIn combines the title with the first three description lines in a
// professional register; no aspect ratio applies.
func LinkedIn(a *content.Artifact) platform.Payload {
	title, description, hashtags := seoFields(a)

	text := title
	if lines := firstLines(description, linkedinDescLines); lines != "" {
		text = strings.TrimSpace(text + "\n\n" + lines)
	}

	return platform.Payload{
		Platform: platform.LinkedIn,
		Text:     truncate(text, linkedinMaxText),
		Hashtags: capSlice(hashtags, linkedinMaxHashtags),
		Tone:     "professional",
	}
}

// X posts the title (or topic) with a few hashtags inline.
func X(a *content.Artifact) platform.Payload {
	title, _, hashtags := seoFields(a)

	text := title
	if tags := strings.Join(capSlice(hashtags, xMaxHashtags), " "); tags != "" {
		text = strings.TrimSpace(text + " " + tags)
	}

	return platform.Payload{
		Platform: platform.X,
		Text:     truncate(text, xMaxText),
		Hashtags: capSlice(hashtags, xMaxHashtags),
	}
}

// seoFields pulls the text sources out of an artifact, falling back to the
// topic when no SEO title exists. Caller-supplied artifacts may be sparse;
// transforms degrade to emptier payloads rather than failing.
func seoFields(a *content.Artifact) (title, description string, hashtags []string) {
	title = a.Topic
	if a.SEOMetadata != nil {
		if a.SEOMetadata.Title != "" {
			title = a.SEOMetadata.Title
		}
		description = a.SEOMetadata.Description
		hashtags = a.SEOMetadata.Hashtags
	}
	return title, description, hashtags
}

// truncate enforces a rune-count limit, replacing the tail with an
// ellipsis marker when the source exceeds it. The marker is never split
// and the result always leaves room for it.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string(runes[:max])
	}
	return strings.TrimRight(string(runes[:max-len(ellipsis)]), " \n\t") + ellipsis
}

func capSlice(values []string, max int) []string {
	if len(values) <= max {
		return values
	}
	return values[:max]
}

// firstLines returns the first n non-empty lines joined with newlines.
func firstLines(s string, n int) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
		if len(lines) == n {
			break
		}
	}
	return strings.Join(lines, "\n")
}
