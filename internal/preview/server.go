// Package preview serves a live HTML preview of a neumorphic element and a
// JSON API for derived styles.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/neumorph/internal/editor"
	"github.com/opencode-ai/neumorph/internal/neumorph"
)

const (
	// DefaultPort is used when Options.Port is zero.
	DefaultPort     = 7410
	shutdownTimeout = 5 * time.Second
)

// Options configure the preview server.
type Options struct {
	Host     string
	Port     int
	Defaults neumorph.ParameterSet
	Version  string
}

// Server renders previews over HTTP.
type Server struct {
	logger  zerolog.Logger
	opts    Options
	handler http.Handler
}

// New constructs a server. The defaults seed every request before query
// parameters are applied.
func New(logger zerolog.Logger, opts Options) (*Server, error) {
	if opts.Host == "" {
		opts.Host = "127.0.0.1"
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.Defaults == (neumorph.ParameterSet{}) {
		opts.Defaults = neumorph.DefaultParameterSet()
	}
	if _, err := editor.NormalizeColor(opts.Defaults.Color); err != nil {
		return nil, fmt.Errorf("default color: %w", err)
	}

	s := &Server{logger: logger, opts: opts}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the HTTP handler. Useful for testing.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.pageHandler)
	r.Get("/healthz", healthzHandler)
	r.Get("/api/v1/style", s.styleHandler)

	return r
}

// Run listens and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	bindAddr := s.bindAddr()
	listener, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", bindAddr, err)
	}

	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info().
		Str("bind", bindAddr).
		Str("version", s.opts.Version).
		Msg("preview server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("preview server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown preview server: %w", err)
		}
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("preview server error: %w", err)
		}
	}

	s.logger.Info().Msg("preview server shutdown complete")
	return nil
}

func (s *Server) bindAddr() string {
	return net.JoinHostPort(s.opts.Host, strconv.Itoa(s.opts.Port))
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(started)).
			Msg("request")
	})
}
