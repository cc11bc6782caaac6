package repurpose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipforge/internal/domain/content"
)

func sampleArtifact() *content.Artifact {
	hashtags := make([]string, 40)
	for i := range hashtags {
		hashtags[i] = "#tag" + strings.Repeat("x", i%5)
	}

	return &content.Artifact{
		ID:    "a-1",
		Topic: "Why batteries degrade",
		SEOMetadata: &content.SEOMetadata{
			Title:       "Why Your Battery Dies So Fast",
			Description: "Line one explains the hook.\nLine two adds detail.\nLine three wraps up.\nLine four is extra.",
			Hashtags:    hashtags,
		},
		VideoURL: "https://cdn.example.com/v.mp4",
	}
}

func oversizedArtifact() *content.Artifact {
	return &content.Artifact{
		Topic: strings.Repeat("topic ", 100),
		SEOMetadata: &content.SEOMetadata{
			Title:       strings.Repeat("T", 600),
			Description: strings.Repeat("D", 12000),
			Hashtags:    make([]string, 100),
		},
	}
}

func TestInstagramPayload(t *testing.T) {
	p := Instagram(sampleArtifact())

	assert.Equal(t, "instagram", p.Platform)
	assert.Equal(t, "9:16", p.AspectRatio)
	assert.Equal(t, "https://cdn.example.com/v.mp4", p.MediaURL)
	assert.LessOrEqual(t, len([]rune(p.Caption)), 2200)
	assert.LessOrEqual(t, len(p.Hashtags), 30)
	// caption leads with the first description line
	assert.True(t, strings.HasPrefix(p.Caption, "Line one explains the hook."))
}

func TestTikTokPayload(t *testing.T) {
	p := TikTok(sampleArtifact())

	assert.Equal(t, "Why Your Battery Dies So Fast", p.Caption)
	assert.LessOrEqual(t, len(p.Hashtags), 10)
	assert.Equal(t, "9:16", p.AspectRatio)
}

func TestFacebookPayload(t *testing.T) {
	p := Facebook(sampleArtifact())

	assert.Contains(t, p.Message, "Line four is extra.")
	assert.LessOrEqual(t, len(p.Hashtags), 15)
	assert.Equal(t, "1:1", p.AspectRatio)
}

func TestLinkedInPayload(t *testing.T) {
	p := LinkedIn(sampleArtifact())

	assert.True(t, strings.HasPrefix(p.Text, "Why Your Battery Dies So Fast"))
	assert.Contains(t, p.Text, "Line three wraps up.")
	assert.NotContains(t, p.Text, "Line four is extra.")
	assert.LessOrEqual(t, len(p.Hashtags), 5)
	assert.Equal(t, "professional", p.Tone)
}

func TestCapsHoldUnderOversizedInput(t *testing.T) {
	a := oversizedArtifact()

	assert.LessOrEqual(t, len([]rune(Instagram(a).Caption)), 2200)
	assert.LessOrEqual(t, len([]rune(TikTok(a).Caption)), 150)
	assert.LessOrEqual(t, len([]rune(Facebook(a).Message)), 5000)
	assert.LessOrEqual(t, len([]rune(LinkedIn(a).Text)), 3000)
	assert.LessOrEqual(t, len([]rune(X(a).Text)), 280)
}

func TestTransformsArePure(t *testing.T) {
	a := sampleArtifact()

	first := Instagram(a)
	second := Instagram(a)
	assert.Equal(t, first, second)

	assert.Equal(t, LinkedIn(a), LinkedIn(a))
}

func TestFallbackToTopicWithoutMetadata(t *testing.T) {
	a := &content.Artifact{Topic: "Bare topic"}

	assert.Equal(t, "Bare topic", TikTok(a).Caption)
	assert.Equal(t, "Bare topic", X(a).Text)
	assert.True(t, Facebook(a).IsZero())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"under limit", "short", 10, "short"},
		{"exact limit", "exactly10!", 10, "exactly10!"},
		{"over limit gets ellipsis", "this is far too long", 10, "this is..."},
		{"limit smaller than marker", "abcdef", 2, "ab"},
		{"no trailing space before marker", "word abcdefg", 8, "word..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			require.LessOrEqual(t, len([]rune(got)), tt.max)
		})
	}
}

func TestFirstLines(t *testing.T) {
	s := "one\n\n  two  \nthree\nfour"
	assert.Equal(t, "one\ntwo", firstLines(s, 2))
	assert.Equal(t, "one\ntwo\nthree\nfour", firstLines(s, 10))
	assert.Equal(t, "", firstLines("", 3))
}
