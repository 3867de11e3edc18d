package metrics

import (
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Option tunes a Manager before its collectors are registered.
type Option func(*Manager)

// WithNamespace replaces the "racechart" metric name prefix. Blank values are ignored.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if ns := strings.TrimSpace(namespace); ns != "" {
			m.namespace = ns
		}
	}
}

// WithSubsystem replaces the "chart" segment of every metric name.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if sub := strings.TrimSpace(subsystem); sub != "" {
			m.subsystem = sub
		}
	}
}

// WithFetchBuckets sets the millisecond buckets of the dataset fetch histogram.
func WithFetchBuckets(buckets ...float64) Option {
	return func(m *Manager) {
		if b := normalizeBuckets(buckets); b != nil {
			m.fetchBuckets = b
		}
	}
}

// WithRenderBuckets sets the millisecond buckets of the layout and draw histogram.
func WithRenderBuckets(buckets ...float64) Option {
	return func(m *Manager) {
		if b := normalizeBuckets(buckets); b != nil {
			m.renderBuckets = b
		}
	}
}

// WithHTTPBuckets sets the millisecond buckets of the request duration histogram.
func WithHTTPBuckets(buckets ...float64) Option {
	return func(m *Manager) {
		if b := normalizeBuckets(buckets); b != nil {
			m.httpBuckets = b
		}
	}
}

// WithDisabled registers the collectors but turns every Record and Update call into a no-op.
func WithDisabled() Option {
	return func(m *Manager) {
		m.enabled = false
	}
}

// WithConstLabels adds constant labels to every collector. Later calls
// override earlier keys; labels with a blank name are dropped.
func WithConstLabels(labels map[string]string) Option {
	return func(m *Manager) {
		for k, v := range labels {
			if strings.TrimSpace(k) == "" {
				continue
			}
			m.constLabels[k] = v
		}
	}
}

// WithRegistry registers the collectors on reg instead of the default registerer.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(m *Manager) {
		if reg != nil {
			m.registry = reg
		}
	}
}

// normalizeBuckets returns a sorted copy of buckets without duplicates, or nil
// when none are positive. Prometheus panics on unsorted bucket bounds.
func normalizeBuckets(buckets []float64) []float64 {
	out := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		if b > 0 {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}
