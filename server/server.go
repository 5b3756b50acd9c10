// Package server implements the HTTP API: enriched news pages, streamed summaries, topic analysis,
// cache administration and RSS output.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/dm601990/syntheticwisdom/pkg/analysis"
	"github.com/dm601990/syntheticwisdom/pkg/cache"
	"github.com/dm601990/syntheticwisdom/pkg/config"
	"github.com/dm601990/syntheticwisdom/pkg/feed"
	"github.com/dm601990/syntheticwisdom/pkg/news"
	"github.com/dm601990/syntheticwisdom/pkg/stream"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsService
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . TopicAnalyzer
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . CacheAdmin

const maxBodySize = 1024 * 1024 // 1MB

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	news       NewsService
	summarizer Summarizer
	analyzer   TopicAnalyzer
	cache      CacheAdmin
	generator  *feed.Generator
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() config.ServerConfig
	GetNewsConfig() config.NewsConfig
}

// NewsService serves enriched news pages
type NewsService interface {
	GetNews(ctx context.Context, req news.Request) (*news.Response, error)
}

// Summarizer streams detailed summaries of articles
type Summarizer interface {
	Available() bool
	Serve(ctx context.Context, w http.ResponseWriter, a stream.Article) stream.Session
}

// TopicAnalyzer runs cross-article topic analysis
type TopicAnalyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Response, error)
}

// CacheAdmin exposes cache stats, keys and clearing
type CacheAdmin interface {
	Stats() cache.Stats
	Keys() []string
	Clear() int
}

// Params defines dependencies of Server
type Params struct {
	Config     ConfigProvider
	News       NewsService
	Summarizer Summarizer
	Analyzer   TopicAnalyzer
	Cache      CacheAdmin
	Version    string
	Debug      bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:     p.Config,
		news:       p.News,
		summarizer: p.Summarizer,
		analyzer:   p.Analyzer,
		cache:      p.Cache,
		generator:  feed.NewGenerator(p.Config.GetServerConfig().BaseURL),
		version:    p.Version,
		debug:      p.Debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	cfg := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", cfg.Listen)

	// no write timeout, summary streams stay open for as long as the provider generates
	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("syntheticwisdom", "dm601990", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	if throttle := s.config.GetServerConfig().Throttle; throttle > 0 {
		s.router.Use(rest.Throttle(int64(throttle)))
	}
	s.router.Use(rest.SizeLimit(maxBodySize))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /getDetails", s.detailsHandler)
		// method checks are done by the handlers to answer with json errors
		r.HandleFunc("/news", s.newsHandler)
		r.HandleFunc("/cache-stats", s.cacheStatsHandler)
		r.HandleFunc("/topicAnalysis", s.topicAnalysisHandler)
	})

	s.router.HandleFunc("GET /rss/{topic}", s.rssHandler)
	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// errorResponse is the body of all json error responses
type errorResponse struct {
	Error      string       `json:"error"`
	Details    string       `json:"details,omitempty"`
	CacheStats *cache.Stats `json:"cacheStats,omitempty"`
}

// renderError sends error response as JSON, details are omitted if empty
func renderError(w http.ResponseWriter, r *http.Request, code int, msg, details string) {
	renderJSON(w, r, code, errorResponse{Error: msg, Details: details})
}
