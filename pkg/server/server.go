package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/assets"
	"github.com/viewy-dev/viewy/pkg/middleware"
)

// Server serves pages and compiled assets.
type Server struct {
	config *Config
	router chi.Router
	assets atomic.Pointer[assetSet]
	log    *logger.Logger
}

// New creates a server serving a.
func New(a assets.Assets, opts ...Option) *Server {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.Logger == nil {
		config.Logger = logger.Default()
	}

	s := &Server{
		config: config,
		log:    config.Logger.WithField("component", "server"),
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)
	if config.Tracing {
		r.Use(middleware.OpenTelemetry(middleware.WithTracerProvider(config.TracerProvider)))
	}
	if config.MetricsPath != "" {
		r.Use(middleware.Prometheus(middleware.WithRegistry(config.Registry)))
		r.Handle(config.MetricsPath, metricsHandler(config.Registry))
	}

	r.Get("/"+assets.StylesheetName, s.serveAsset)
	r.Head("/"+assets.StylesheetName, s.serveAsset)
	r.Get("/"+assets.ScriptName, s.serveAsset)
	r.Head("/"+assets.ScriptName, s.serveAsset)
	r.Get(`/{file:app\.[0-9a-f]+\.(?:css|js)}`, s.serveAsset)
	r.Head(`/{file:app\.[0-9a-f]+\.(?:css|js)}`, s.serveAsset)

	s.router = r
	s.SetAssets(a)
	return s
}

func metricsHandler(reg prometheus.Registerer) http.Handler {
	if g, ok := reg.(prometheus.Gatherer); ok && reg != prometheus.DefaultRegisterer {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// Config returns the server configuration.
func (s *Server) Config() *Config {
	return s.config
}

// Router returns the underlying chi router.
func (s *Server) Router() chi.Router {
	return s.router
}

// Page serves the page built by fn at pattern. Pages link the served
// assets by their plain names in dev mode and by fingerprint otherwise.
func (s *Server) Page(pattern string, fn PageFunc) {
	h := &pageHandler{build: fn, log: s.config.Logger, dev: s.config.DevMode}
	if !s.config.DevMode {
		h.resolver = func() assets.Resolver {
			return s.assets.Load().resolver
		}
	}
	s.router.Method(http.MethodGet, pattern, h)
	s.router.Method(http.MethodHead, pattern, h)
}

// Handle registers h for all methods at pattern.
func (s *Server) Handle(pattern string, h http.Handler) {
	s.router.Handle(pattern, h)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return errors.New("E401").WithField("addr", s.config.Addr).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()
	s.log.WithField("addr", ln.Addr().String()).Info("server listening")

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.New("E401").WithField("addr", ln.Addr().String()).Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.New("E401").Wrap(err)
	}
	s.log.Info("server stopped")
	return nil
}

// requestLogger logs every request at debug level, and failures at error.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log := s.log.WithFields(map[string]any{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     status,
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": chimw.GetReqID(r.Context()),
		})
		if status >= http.StatusInternalServerError {
			log.Error(nil, "request failed")
			return
		}
		log.Debug("request")
	})
}
