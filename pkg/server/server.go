package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/attrs/internal/errors"
	"github.com/vango-dev/attrs/pkg/middleware"
	"github.com/vango-dev/attrs/pkg/render"
)

// Server is the attribute preview HTTP service.
type Server struct {
	config   *ServerConfig
	router   chi.Router
	renderer *render.Renderer
	metrics  *middleware.Metrics

	// HTTP server, set by Serve.
	httpServer *http.Server

	logger *slog.Logger
}

// New creates a new Server with the given configuration.
// A nil config uses DefaultServerConfig.
func New(config *ServerConfig) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}
	config = config.withDefaults()

	s := &Server{
		config:   config,
		renderer: render.NewRenderer(render.RendererConfig{Normalizer: config.Normalizer}),
		logger:   config.Logger,
	}
	if config.EnableMetrics {
		s.metrics = middleware.NewMetrics(
			middleware.WithNamespace(config.MetricsNamespace),
			middleware.WithRegistry(config.Registry),
		)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Recover(s.logger))
	r.Use(middleware.Logger(s.logger))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}
	if s.config.EnableTracing {
		r.Use(middleware.OpenTelemetry(
			middleware.WithTracerName(s.config.TracerName),
			middleware.WithTracerProvider(s.config.TracerProvider),
			middleware.WithRequestFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != s.config.MetricsPath
			}),
		))
	}

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/normalize", s.handleNormalize)
	r.Post("/v1/render", s.handleRender)
	if s.metrics != nil {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return errors.New("S001").
			WithDetail("Could not listen on " + s.config.Address).
			Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("S001").Wrap(err)

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return errors.New("S002").Wrap(err)
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Config returns the server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}
