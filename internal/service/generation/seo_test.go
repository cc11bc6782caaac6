package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(context.Context, string, string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestMetadataParsesModelJSON(t *testing.T) {
	llm := &stubCompleter{reply: "```json\n" + `{
		"title": "Why Batteries Die",
		"description": "A quick explainer.",
		"tags": ["battery", "phones"],
		"hashtags": ["Battery Life", "#tech"],
		"keywords": "battery, phone",
		"chapters": ["0:00 - Intro"]
	}` + "\n```"}

	svc := NewSEOService(llm, zap.NewNop())
	meta, err := svc.Metadata(context.Background(), "topic", "technology", "the script")

	require.NoError(t, err)
	assert.Equal(t, "Why Batteries Die", meta.Title)
	assert.Equal(t, []string{"#batterylife", "#tech"}, meta.Hashtags)
	assert.Equal(t, "Science & Technology", meta.Category)
	assert.Equal(t, []string{"0:00 - Intro"}, meta.Chapters)
}

func TestMetadataFallsBackOnBadJSON(t *testing.T) {
	llm := &stubCompleter{reply: "Sure! Here is your metadata: title=..."}

	svc := NewSEOService(llm, zap.NewNop())
	meta, err := svc.Metadata(context.Background(), "Solar panels explained simply", "energy", "the full script text")

	require.NoError(t, err)
	assert.Equal(t, "Solar panels explained simply", meta.Title)
	assert.NotEmpty(t, meta.Description)
	assert.NotEmpty(t, meta.Tags)
	assert.NotEmpty(t, meta.Hashtags)
	assert.Equal(t, fallbackCategory, meta.Category)
}

func TestMetadataRequiresScript(t *testing.T) {
	svc := NewSEOService(&stubCompleter{}, zap.NewNop())

	_, err := svc.Metadata(context.Background(), "topic", "technology", "")
	assert.Error(t, err)
}

func TestNormalizeHashtags(t *testing.T) {
	out := normalizeHashtags([]string{"#Tech", "AI Tools", "  ", "##double"})
	assert.Equal(t, []string{"#tech", "#aitools", "#double"}, out)
}

func TestCategoryForNiche(t *testing.T) {
	assert.Equal(t, "Education", categoryForNiche("Finance"))
	assert.Equal(t, fallbackCategory, categoryForNiche("gardening"))
}

func TestScriptServiceParsesReply(t *testing.T) {
	llm := &stubCompleter{reply: `HOOK: Stop scrolling.
BODY:
Something worth knowing.

CTA: Follow for more.`}

	svc := NewScriptService(llm, 0, zap.NewNop())
	script, err := svc.Generate(context.Background(), "a topic", 60, "general")

	require.NoError(t, err)
	assert.Equal(t, "Stop scrolling.", script.Hook)
	assert.Equal(t, "Follow for more.", script.CallToAction)
	assert.NotEmpty(t, script.FullScript)
}

func TestScriptServiceRequiresTopic(t *testing.T) {
	svc := NewScriptService(&stubCompleter{}, 0, zap.NewNop())

	_, err := svc.Generate(context.Background(), "", 60, "general")
	assert.Error(t, err)
}

func TestVariationsClampCount(t *testing.T) {
	llm := &stubCompleter{reply: "HOOK: h\nBODY:\nbody text\nCTA: c"}
	svc := NewScriptService(llm, 0, zap.NewNop())

	scripts, err := svc.Variations(context.Background(), "a topic", 99, 60)

	require.NoError(t, err)
	assert.Len(t, scripts, len(variationAngles))
	assert.Equal(t, len(variationAngles), llm.calls)
}
