package loader

import (
	"net/http"
	"time"

	"github.com/okian/racechart/pkg/logger"
	"github.com/okian/racechart/pkg/metrics"
)

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithTimeout bounds the single fetch.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		if timeout > 0 {
			l.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithLogger sets a custom logger for the loader.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithMetrics sets the metrics manager fetches are recorded on.
func WithMetrics(m *metrics.Manager) Option {
	return func(l *Loader) {
		if m != nil {
			l.metrics = m
		}
	}
}
