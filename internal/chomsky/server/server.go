package server

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	cklog "github.com/msto63/chomsky/foundation/core/log"
	"github.com/msto63/chomsky/internal/chomsky/service"
	"github.com/msto63/chomsky/pkg/core/health"
	"github.com/msto63/chomsky/pkg/core/logging"
	"github.com/msto63/chomsky/pkg/core/version"
)

// Server is the recognition API server
type Server struct {
	httpServer *http.Server
	handler    *Handler
	service    *service.Service
	health     *health.Registry
	logger     *cklog.Logger
	config     Config
}

// Config holds server configuration
type Config struct {
	Host         string
	HTTPPort     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Version      string
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		HTTPPort:     8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		Version:      version.Server,
	}
}

// New creates a new recognition API server around an existing service.
// The server does not own the service; the caller closes it.
func New(cfg Config, svc *service.Service) *Server {
	logger := logging.NewSimpleLogger("chomsky-server")

	// Health registry with grammar and store checks
	healthRegistry := health.NewRegistry("chomsky", cfg.Version)
	healthRegistry.Register(health.CountCheck("grammars", func() int {
		return len(svc.Grammars())
	}))
	if svc.Store() != nil {
		healthRegistry.Register(health.PingCheck("store", svc.Store().Ping))
	}

	h := NewHandler(cfg.Version, svc, healthRegistry)
	wsHandler := NewWebSocketHandler(svc)

	mux := http.NewServeMux()

	// WebSocket route
	mux.Handle("/api/v1/recognize/ws", wsHandler)

	// API routes
	mux.Handle("/", h)
	mux.Handle("/api/", h)
	mux.Handle("/api/v1/", h)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.HTTPPort),
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    h,
		service:    svc,
		health:     healthRegistry,
		logger:     logger,
		config:     cfg,
	}
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *cklog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Info("http request", cklog.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapper.statusCode,
			"duration": time.Since(start).String(),
		})
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Flush implements http.Flusher for streaming support
func (w *responseWrapper) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack lets WebSocket upgrades take over the underlying connection
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("response writer does not support hijacking")
}

// Start starts the server
func (s *Server) Start() error {
	s.logger.Info("starting recognition api server", cklog.Fields{
		"host": s.config.Host,
		"port": s.config.HTTPPort,
	})
	return s.httpServer.ListenAndServe()
}

// StartAsync starts the server asynchronously
func (s *Server) StartAsync() error {
	s.logger.Info("starting recognition api server (async)", cklog.Fields{
		"host": s.config.Host,
		"port": s.config.HTTPPort,
	})

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.ErrorWithErr("http server error", err)
		}
	}()

	return nil
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping recognition api server")
	return s.httpServer.Shutdown(ctx)
}

// Address returns the server address
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.HTTPPort)
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Service returns the underlying recognition service
func (s *Server) Service() *service.Service {
	return s.service
}
