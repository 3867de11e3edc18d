package api

import (
	"github.com/okian/racechart/pkg/logger"
	"github.com/okian/racechart/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	rps      float64
	burst    int
	origins  []string
	gatherer prometheus.Gatherer
	metrics  *metrics.Manager
	logger   logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*options)

// WithRateLimit limits each client IP to rps requests per second with the given burst.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		o.rps = rps
		o.burst = burst
	}
}

// WithCORSOrigins sets the origins allowed to embed the chart and data.
func WithCORSOrigins(origins []string) Option {
	return func(o *options) {
		if len(origins) > 0 {
			o.origins = origins
		}
	}
}

// WithGatherer sets the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(o *options) {
		o.gatherer = g
	}
}

// WithMetrics sets the metrics manager requests are recorded on.
func WithMetrics(m *metrics.Manager) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithLogger sets a custom logger for the server.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
