// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/racechart/internal/adapters/render"
	service "github.com/okian/racechart/internal/app"
	"github.com/okian/racechart/pkg/logger"
	"github.com/okian/racechart/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// ChartSource hands out the chart built at startup.
type ChartSource interface {
	Chart(ctx context.Context) (*service.Chart, error)
}

// Server wires HTTP routes for the chart.
type Server struct {
	source  ChartSource
	limiter *ipLimiter
	cors    *cors.Cors

	gatherer prometheus.Gatherer
	metrics  *metrics.Manager
	logger   logger.Logger

	status       *StatusHandler
	chartHandler *ChartHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(source ChartSource, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{source: source}
	cfg := options{origins: []string{"*"}}
	for _, opt := range opts {
		opt(&cfg)
	}

	s.logger = cfg.logger
	if s.logger == nil {
		s.logger = logger.Get().Named("http")
	}
	s.metrics = cfg.metrics
	if s.metrics == nil {
		s.metrics = metrics.Default()
	}
	s.gatherer = cfg.gatherer
	if s.gatherer == nil {
		s.gatherer = metrics.GetRegistry()
	}
	if cfg.rps > 0 {
		s.limiter = newIPLimiter(cfg.rps, cfg.burst)
	}
	s.cors = cors.New(cors.Options{
		AllowedOrigins:   cfg.origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "If-None-Match"},
		ExposedHeaders:   []string{requestIDHeader, "ETag"},
		AllowCredentials: false,
	})

	s.status = NewStatusHandler(source, statsProvider)
	s.chartHandler = NewChartHandler(source, s.logger)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("GET /{$}", s.route("page", s.chartHandler.HandlePage))
	mux.Handle("/chart.svg", s.cors.Handler(s.route("chart", getOnly(s.chartHandler.HandleGraph))))
	mux.Handle("/legend.svg", s.cors.Handler(s.route("legend", getOnly(s.chartHandler.HandleLegend))))
	mux.Handle("/data", s.cors.Handler(s.route("data", getOnly(s.chartHandler.HandleData))))
	mux.HandleFunc("GET /stats", s.route("stats", s.status.HandleStats))
	mux.Handle("GET /static/", s.route("static",
		http.StripPrefix("/static/", http.FileServerFS(render.StaticFS())).ServeHTTP))

	// Probes and scrapes bypass the rate limiter.
	mux.HandleFunc("GET /healthz", s.MetricsMiddleware(s.status.HandleHealth, "healthz"))
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
}

// Handler returns mux wrapped in the server-wide middleware.
func (s *Server) Handler(mux *http.ServeMux) http.Handler {
	return RequestID(s.logger)(mux)
}

func (s *Server) route(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	if s.limiter != nil {
		next = s.RateLimitMiddleware(next, endpoint)
	}
	return s.MetricsMiddleware(next, endpoint)
}

func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		next(w, r)
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
