// Package httpapi serves the assessment operations and tool registry over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/tools"
	"github.com/doeshing/healthdesk-go/internal/ports"
)

// Options configures a Server.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Version      string
}

// Server routes /api/v1 requests to the assessment service and tool registry.
type Server struct {
	assessor tools.Assessor
	registry *tools.Registry
	logger   ports.Logger
	opts     Options
	router   *mux.Router
	started  time.Time
}

// NewServer builds the router. Zero-valued options fall back to defaults.
func NewServer(assessor tools.Assessor, registry *tools.Registry, logger ports.Logger, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = domain.DefaultServerAddr
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = domain.DefaultReadTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = domain.DefaultWriteTimeout
	}
	s := &Server{
		assessor: assessor,
		registry: registry,
		logger:   logger,
		opts:     opts,
		router:   mux.NewRouter(),
		started:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.Use(s.loggingMiddleware)
	api.Use(recoverMiddleware(s.logger))

	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api.HandleFunc("/tools", s.handleListTools).Methods(http.MethodGet)
	api.HandleFunc("/tools/{name}", s.handleExecuteTool).Methods(http.MethodPost)

	api.HandleFunc("/severity", s.handleSeverity).Methods(http.MethodPost)
	api.HandleFunc("/duration", s.handleDuration).Methods(http.MethodPost)
	api.HandleFunc("/interactions", s.handleInteractions).Methods(http.MethodPost)
	api.HandleFunc("/medications/{name}", s.handleMedication).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", map[string]interface{}{"addr": listener.Addr().String()})
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), domain.DefaultShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
