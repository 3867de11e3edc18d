package service

import (
	"github.com/okian/racechart/internal/adapters/interaction"
	"github.com/okian/racechart/internal/adapters/render"
	"github.com/okian/racechart/pkg/logger"
	"github.com/okian/racechart/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader sets the dataset source.
func WithLoader(l Loader) Option {
	return func(s *Service) {
		s.loader = l
	}
}

// WithRenderOptions replaces the default drawing surface.
func WithRenderOptions(o render.Options) Option {
	return func(s *Service) {
		s.opts = o
	}
}

// WithTooltipOffset sets the tooltip offset from the pointer.
func WithTooltipOffset(dx, dy float64) Option {
	return func(s *Service) {
		s.handler = interaction.NewHandler(nil, interaction.WithOffset(dx, dy))
	}
}

// WithMetrics sets the metrics manager the pipeline reports to.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}
