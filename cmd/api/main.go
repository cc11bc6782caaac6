// cmd/api/main.go

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"clipforge/internal/adapter/llm"
	"clipforge/internal/adapter/reddit"
	"clipforge/internal/adapter/speech"
	"clipforge/internal/adapter/youtube"
	"clipforge/internal/config"
	"clipforge/internal/httpx"
	"clipforge/internal/logging"
	"clipforge/internal/notify"
	"clipforge/internal/server"
	"clipforge/internal/server/handlers"
	"clipforge/internal/service/discovery"
	"clipforge/internal/service/generation"
	"clipforge/internal/service/pipeline"
	"clipforge/internal/service/publish"
	"clipforge/internal/service/scheduling"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Shared outbound HTTP policy: per-call timeout, 3 attempts,
	// exponential backoff.
	httpClient := httpx.New(cfg.HTTPClient.Timeout)

	// Optional event bus. An empty URL runs the service without it.
	var natsConn *nats.Conn
	if cfg.NATS.URL != "" {
		natsConn, err = initNATS(cfg.NATS, logger)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsConn.Close()
	}
	bus := notify.NewBus(natsConn, logger)
	webhook := notify.NewWebhook(cfg.Webhook, httpClient, logger)

	// External collaborators.
	llmClient := llm.New(cfg.OpenAI, httpClient, logger)

	synthesizer, err := speech.NewSynthesizer(cfg, httpClient, logger)
	if err != nil {
		logger.Fatal("Failed to create TTS provider", zap.Error(err))
	}

	youtubeClient, err := youtube.New(ctx, cfg.YouTube.APIKey, logger)
	if err != nil {
		logger.Fatal("Failed to create YouTube client", zap.Error(err))
	}

	var redditClient discovery.RedditSource
	if rc, err := reddit.New(logger); err != nil {
		logger.Warn("Reddit source disabled", zap.Error(err))
	} else {
		redditClient = rc
	}

	// Domain services.
	wpm := 0
	if cfg.Tuning != nil {
		wpm = cfg.Tuning.WordsPerMinute
	}
	scriptService := generation.NewScriptService(llmClient, wpm, logger)
	visualService := generation.NewVisualService(llmClient, logger)
	thumbnailService := generation.NewThumbnailService(llmClient, logger)
	seoService := generation.NewSEOService(llmClient, logger)
	brollService := generation.NewBRollService(llmClient, logger)

	discoveryService := discovery.New(youtubeClient, redditClient, discovery.NewAnalyzer(), cfg, logger)

	registry := publish.BuildRegistry(cfg.Platforms, httpClient, logger)

	pipelineService := pipeline.New(pipeline.Deps{
		Script:    scriptService,
		Voiceover: synthesizer,
		Visuals:   visualService,
		Thumbs:    thumbnailService,
		SEO:       seoService,
		BRoll:     brollService,
		Discovery: discoveryService,
		Registry:  registry,
		Webhook:   webhook,
		Bus:       bus,
	}, cfg.Content, logger)

	state := scheduling.NewState()
	scheduler := scheduling.New(pipelineService, discoveryService, state, bus, cfg.Scheduler, cfg.Content, logger)
	if cfg.Scheduler.Enabled {
		if err := scheduler.Start(); err != nil {
			logger.Fatal("Failed to start scheduler", zap.Error(err))
		}
	}

	// HTTP surface.
	respond := handlers.NewResponder(cfg.Environment == "development", logger)
	httpServer := server.New(cfg, server.Deps{
		Content: handlers.NewContentHandler(pipelineService, state, respond),
		Trends:  handlers.NewTrendsHandler(discoveryService, respond),
		Scripts: handlers.NewScriptHandler(scriptService, synthesizer, respond),
		Jobs:    handlers.NewJobsHandler(scheduler, respond),
		Health:  handlers.NewHealthHandler(),
		Respond: respond,
		NATS:    natsConn,
	}, logger)

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("host", cfg.Server.Host),
			zap.Int("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Error("Scheduler shutdown error", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}

func initNATS(cfg config.NATSConfig, logger *zap.Logger) (*nats.Conn, error) {
	return nats.Connect(cfg.URL,
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	)
}
