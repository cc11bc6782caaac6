package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArtifact(t *testing.T) {
	a := NewArtifact("topic", "technology", 90, []string{"youtube"})

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "topic", a.Topic)
	assert.Equal(t, StatusGenerated, a.Metadata.Status)
	assert.Equal(t, 90, a.Metadata.Duration)
	assert.False(t, a.Metadata.CreatedAt.IsZero())

	b := NewArtifact("topic", "technology", 90, nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDiscoverEnabledDefaultsTrue(t *testing.T) {
	var opts GenerateOptions
	assert.True(t, opts.DiscoverEnabled())

	// an absent JSON field keeps discovery on, an explicit false turns it off
	require.NoError(t, json.Unmarshal([]byte(`{"topic":"x"}`), &opts))
	assert.True(t, opts.DiscoverEnabled())

	require.NoError(t, json.Unmarshal([]byte(`{"autoDiscoverTrend":false}`), &opts))
	assert.False(t, opts.DiscoverEnabled())
}

func TestErrorTaxonomy(t *testing.T) {
	validation := NewValidationError("field %s is required", "topic")
	assert.Equal(t, "field topic is required", validation.Error())

	notFound := NewNotFoundError("unknown job %q", "bogus")
	assert.Contains(t, notFound.Error(), "bogus")

	upstream := NewUpstreamError("youtube", assert.AnError)
	assert.Contains(t, upstream.Error(), "youtube")
	assert.ErrorIs(t, upstream, assert.AnError)
}
