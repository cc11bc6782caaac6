package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "openai", cfg.TTS.Provider)
	assert.Equal(t, "US", cfg.YouTube.Region)
	assert.Equal(t, "technology", cfg.Content.DefaultNiche)
	assert.Equal(t, 120, cfg.Content.DefaultDuration)
	assert.Equal(t, 60, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 30*time.Second, cfg.HTTPClient.Timeout)
	assert.False(t, cfg.Webhook.Enabled)
	assert.Equal(t, []string{"youtube"}, cfg.Scheduler.PostingPlatforms)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TTS_PROVIDER", "elevenlabs")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("POSTING_PLATFORMS", "facebook, linkedin")
	t.Setenv("WEBHOOK_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "elevenlabs", cfg.TTS.Provider)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"facebook", "linkedin"}, cfg.Scheduler.PostingPlatforms)
	assert.True(t, cfg.Webhook.Enabled)
}

func TestValidateRejectsBadProvider(t *testing.T) {
	t.Setenv("TTS_PROVIDER", "robotvoice")

	_, err := Load()
	assert.ErrorContains(t, err, "robotvoice")
}

func TestValidateRequiresKeyOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "OPENAI_API_KEY")
}

func TestValidateDurationBounds(t *testing.T) {
	t.Setenv("MIN_DURATION", "200")
	t.Setenv("MAX_DURATION", "100")

	_, err := Load()
	assert.ErrorContains(t, err, "MIN_DURATION")
}

func TestLoadTuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
niches:
  cooking: ["recipes", "meal prep"]
wordsPerMinute: 150
`), 0o644))
	t.Setenv("TUNING_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Tuning)
	keywords, ok := cfg.Tuning.NicheKeywords("cooking")
	require.True(t, ok)
	assert.Equal(t, []string{"recipes", "meal prep"}, keywords)
	assert.Equal(t, 150, cfg.Tuning.WordsPerMinute)
}

func TestLoadTuningFileMissing(t *testing.T) {
	t.Setenv("TUNING_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestNicheKeywordsNilSafe(t *testing.T) {
	var tuning *Tuning
	_, ok := tuning.NicheKeywords("anything")
	assert.False(t, ok)
}
