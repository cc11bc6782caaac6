// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	OpenAI      OpenAIConfig
	TTS         TTSConfig
	YouTube     YouTubeConfig
	Reddit      RedditConfig
	Platforms   PlatformsConfig
	Scheduler   SchedulerConfig
	Content     ContentConfig
	RateLimit   RateLimitConfig
	HTTPClient  HTTPClientConfig
	Webhook     WebhookConfig
	NATS        NATSConfig
	Tuning      *Tuning
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// OpenAIConfig holds text-generation API configuration
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

// TTSConfig holds text-to-speech configuration
type TTSConfig struct {
	Provider         string
	Voice            string
	ElevenLabsAPIKey string
	ElevenLabsModel  string
	OutputDir        string
}

// YouTubeConfig holds trend source configuration
type YouTubeConfig struct {
	APIKey string
	Region string
}

// RedditConfig holds the secondary trend source configuration
type RedditConfig struct {
	Subreddit string
}

// PlatformsConfig holds per-platform publishing credentials
type PlatformsConfig struct {
	Instagram InstagramConfig
	TikTok    TikTokConfig
	Facebook  FacebookConfig
	LinkedIn  LinkedInConfig
	X         XConfig
}

// InstagramConfig holds Instagram Graph API credentials
type InstagramConfig struct {
	AccessToken string
	AccountID   string
}

// TikTokConfig holds TikTok open API credentials
type TikTokConfig struct {
	AccessToken string
}

// FacebookConfig holds Facebook Graph API credentials
type FacebookConfig struct {
	AccessToken string
	PageID      string
}

// LinkedInConfig holds LinkedIn API credentials
type LinkedInConfig struct {
	AccessToken string
	AuthorURN   string
}

// XConfig holds X (Twitter) OAuth1 user-context credentials
type XConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// SchedulerConfig holds cron job configuration
type SchedulerConfig struct {
	Enabled               bool
	TrendDiscoveryCron    string
	ContentGenerationCron string
	ContentPostingCron    string
	PostingPlatforms      []string
}

// ContentConfig holds content generation defaults
type ContentConfig struct {
	DefaultNiche    string
	DefaultDuration int
	MinDuration     int
	MaxDuration     int
	TargetAudience  string
}

// RateLimitConfig holds API rate limiting configuration
type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// HTTPClientConfig holds shared outbound HTTP configuration
type HTTPClientConfig struct {
	Timeout time.Duration
}

// WebhookConfig holds the notification webhook configuration
type WebhookConfig struct {
	URL     string
	Enabled bool
}

// NATSConfig holds event bus configuration; an empty URL disables it
type NATSConfig struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat("OPENAI_TEMPERATURE", 0.7),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 2000),
		},
		TTS: TTSConfig{
			Provider:         getEnv("TTS_PROVIDER", "openai"),
			Voice:            getEnv("TTS_VOICE", "alloy"),
			ElevenLabsAPIKey: getEnv("ELEVENLABS_API_KEY", ""),
			ElevenLabsModel:  getEnv("ELEVENLABS_MODEL", "eleven_multilingual_v2"),
			OutputDir:        getEnv("OUTPUT_DIR", "./output"),
		},
		YouTube: YouTubeConfig{
			APIKey: getEnv("YOUTUBE_API_KEY", ""),
			Region: getEnv("YOUTUBE_REGION", "US"),
		},
		Reddit: RedditConfig{
			Subreddit: getEnv("REDDIT_SUBREDDIT", "popular"),
		},
		Platforms: PlatformsConfig{
			Instagram: InstagramConfig{
				AccessToken: getEnv("INSTAGRAM_ACCESS_TOKEN", ""),
				AccountID:   getEnv("INSTAGRAM_ACCOUNT_ID", ""),
			},
			TikTok: TikTokConfig{
				AccessToken: getEnv("TIKTOK_ACCESS_TOKEN", ""),
			},
			Facebook: FacebookConfig{
				AccessToken: getEnv("FACEBOOK_ACCESS_TOKEN", ""),
				PageID:      getEnv("FACEBOOK_PAGE_ID", ""),
			},
			LinkedIn: LinkedInConfig{
				AccessToken: getEnv("LINKEDIN_ACCESS_TOKEN", ""),
				AuthorURN:   getEnv("LINKEDIN_AUTHOR_URN", ""),
			},
			X: XConfig{
				ConsumerKey:    getEnv("X_CONSUMER_KEY", ""),
				ConsumerSecret: getEnv("X_CONSUMER_SECRET", ""),
				AccessToken:    getEnv("X_ACCESS_TOKEN", ""),
				AccessSecret:   getEnv("X_ACCESS_SECRET", ""),
			},
		},
		Scheduler: SchedulerConfig{
			Enabled:               getEnvAsBool("SCHEDULER_ENABLED", true),
			TrendDiscoveryCron:    getEnv("TREND_DISCOVERY_CRON", "0 */6 * * *"),
			ContentGenerationCron: getEnv("CONTENT_GENERATION_CRON", "0 9 * * *"),
			ContentPostingCron:    getEnv("CONTENT_POSTING_CRON", "0 18 * * *"),
			PostingPlatforms:      getEnvAsSlice("POSTING_PLATFORMS", []string{"youtube"}),
		},
		Content: ContentConfig{
			DefaultNiche:    getEnv("DEFAULT_NICHE", "technology"),
			DefaultDuration: getEnvAsInt("DEFAULT_DURATION", 120),
			MinDuration:     getEnvAsInt("MIN_DURATION", 30),
			MaxDuration:     getEnvAsInt("MAX_DURATION", 180),
			TargetAudience:  getEnv("TARGET_AUDIENCE", "general"),
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvAsInt("RATE_LIMIT_MAX", 60),
			Window: getEnvAsDuration("RATE_LIMIT_WINDOW", 1*time.Minute),
		},
		HTTPClient: HTTPClientConfig{
			Timeout: getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),
		},
		Webhook: WebhookConfig{
			URL:     getEnv("WEBHOOK_URL", ""),
			Enabled: getEnvAsBool("WEBHOOK_ENABLED", false),
		},
		NATS: NATSConfig{
			URL:            getEnv("NATS_URL", ""),
			MaxReconnects:  getEnvAsInt("NATS_MAX_RECONNECTS", 10),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 1*time.Second),
			ConnectTimeout: getEnvAsDuration("NATS_CONNECT_TIMEOUT", 2*time.Second),
		},
	}

	if path := getEnv("TUNING_FILE", ""); path != "" {
		tuning, err := LoadTuning(path)
		if err != nil {
			return config, fmt.Errorf("loading tuning file: %w", err)
		}
		config.Tuning = tuning
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.OpenAI.APIKey == "" && config.Environment != "development" {
		return fmt.Errorf("OPENAI_API_KEY must be set in non-development environments")
	}

	switch config.TTS.Provider {
	case "openai", "elevenlabs":
	default:
		return fmt.Errorf("unsupported TTS provider %q (want openai or elevenlabs)", config.TTS.Provider)
	}

	if config.Content.MinDuration > config.Content.MaxDuration {
		return fmt.Errorf("MIN_DURATION %d exceeds MAX_DURATION %d", config.Content.MinDuration, config.Content.MaxDuration)
	}

	if config.RateLimit.Max <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
