// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/server/handlers"
)

// Deps collects everything the router serves.
type Deps struct {
	Content *handlers.ContentHandler
	Trends  *handlers.TrendsHandler
	Scripts *handlers.ScriptHandler
	Jobs    *handlers.JobsHandler
	Health  *handlers.HealthHandler
	Respond *handlers.Responder

	// NATS enables the /ws/events stream when non-nil.
	NATS *nats.Conn
}

// Server is the HTTP front of the service.
type Server struct {
	server *http.Server
	router *chi.Mux
}

// New builds the router and the underlying http.Server.
func New(cfg config.Config, deps Deps, logger *zap.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.NotFound(deps.Respond.NotFound)

	router.Get("/health", deps.Health.Check)

	router.Route("/api", func(r chi.Router) {
		r.Use(httprate.Limit(
			cfg.RateLimit.Max,
			cfg.RateLimit.Window,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(deps.Respond.RateLimited),
		))

		r.Route("/content", func(r chi.Router) {
			r.Post("/generate", deps.Content.Generate)
			r.Post("/repurpose", deps.Content.Repurpose)
			r.Post("/publish", deps.Content.Publish)
			r.Get("/history", deps.Content.History)
		})

		r.Route("/trends", func(r chi.Router) {
			r.Get("/youtube", deps.Trends.YouTube)
			r.Get("/search", deps.Trends.Search)
			r.Get("/niche/{niche}", deps.Trends.Niche)
			r.Get("/reddit", deps.Trends.Reddit)
		})

		r.Route("/script", func(r chi.Router) {
			r.Post("/generate", deps.Scripts.Generate)
			r.Post("/voiceover", deps.Scripts.Voiceover)
			r.Post("/variations", deps.Scripts.Variations)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/status", deps.Jobs.Status)
			r.Post("/run/{jobName}", deps.Jobs.Run)
		})
	})

	if deps.NATS != nil {
		router.Get("/ws/events", handlers.EventStreamHandler(deps.NATS, logger))
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// Router exposes the chi mux, mainly for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
