// Package server exposes the exposure-time calculator over HTTP.
//
// Routes:
//
//	GET  /health      liveness
//	GET  /v1/catalog  configured filters, grisms and templates
//	POST /v1/snr      run a request document, returns a sweep report
//	GET  /metrics     Prometheus exposition of the private registry
package server

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/logging"
	"github.com/cwbudde/algo-etc/internal/metrics"
	"github.com/cwbudde/algo-etc/observe/request"
	"github.com/cwbudde/algo-etc/observe/sweep"
)

// Runner executes a validated request.
type Runner interface {
	Do(ctx context.Context, req request.Request) (sweep.Report, error)
}

// Server holds the handlers' collaborators.
type Server struct {
	runner  Runner
	store   *curve.Store
	metrics *metrics.Manager
	log     logging.Logger
	origins []string
}

// Option configures a Server.
type Option func(*Server)

// WithCatalog serves the contents of store at /v1/catalog.
func WithCatalog(store *curve.Store) Option {
	return func(s *Server) { s.store = store }
}

// WithMetrics records request metrics on m and serves its registry.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the access logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAllowedOrigins restricts CORS to origins. No origins allows all.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// New returns a Server backed by runner.
func New(runner Runner, opts ...Option) *Server {
	s := &Server{runner: runner, log: logging.Noop()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.log = s.log.Named("http")
	return s
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.observe())

	corsConfig := cors.DefaultConfig()
	if len(s.origins) > 0 {
		corsConfig.AllowOrigins = s.origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddExposeHeaders(headerRequestID)
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.health)

	v1 := router.Group("/v1")
	v1.POST("/snr", s.snr)
	if s.store != nil {
		v1.GET("/catalog", s.catalog)
	}

	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))
	}

	return router
}
