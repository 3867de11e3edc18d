// Package service wires the chart pipeline: load, normalize, scale, lay out
// and draw. The chart is built once and served from memory afterwards.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/racechart/internal/adapters/interaction"
	"github.com/okian/racechart/internal/adapters/render"
	"github.com/okian/racechart/internal/domain/model"
	"github.com/okian/racechart/internal/domain/scale"
	"github.com/okian/racechart/pkg/logger"
	"github.com/okian/racechart/pkg/metrics"
)

// Loader supplies the raw dataset.
type Loader interface {
	Load(ctx context.Context) ([]model.RawRecord, error)
}

// Chart is one fully rendered chart and the data behind it.
type Chart struct {
	RenderID string
	Records  []model.Record
	Scales   scale.Scales
	Plot     render.Plot
	Page     []byte
	Graph    []byte
	Legend   []byte
	BuiltAt  time.Time
}

// Service builds the chart and hands it to the outer surfaces.
type Service struct {
	mu sync.RWMutex

	loader  Loader
	opts    render.Options
	handler *interaction.Handler
	metrics *metrics.Manager

	chart   *Chart
	started bool

	logger logger.Logger
}

// New constructs a Service. A loader must be supplied with WithLoader before Start.
func New(opts ...Option) *Service {
	s := &Service{
		opts: render.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.metrics == nil {
		s.metrics = metrics.Default()
	}
	if s.handler == nil {
		s.handler = interaction.NewHandler(nil, interaction.WithLogger(s.logger.Named("interaction")))
	}
	return s
}

// Start builds the chart once. Calling it again is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "building chart...")
	c, err := s.Build(ctx)
	if err != nil {
		return err
	}

	s.chart = c
	s.started = true
	s.logger.Info(ctx, "chart ready",
		logger.String("render_id", c.RenderID),
		logger.Int("records", len(c.Records)),
		logger.Int("page_bytes", len(c.Page)),
	)
	return nil
}

// Stop drops the cached chart.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.chart = nil
	s.started = false
	s.logger.Info(context.Background(), "chart service stopped")
}

// Build runs the whole pipeline without touching the cached chart.
func (s *Service) Build(ctx context.Context) (*Chart, error) {
	if s.loader == nil {
		return nil, ErrNoLoader
	}

	raw, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.RecordError("loader", "fetch")
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	records, err := model.Normalize(raw)
	if err != nil {
		var recErr *model.RecordError
		if errors.As(err, &recErr) {
			s.metrics.RecordRecordRejected()
			s.logger.Error(ctx, "record rejected",
				logger.Int("index", recErr.Index),
				logger.String("field", recErr.Field),
				logger.String("value", recErr.Value),
				logger.Error(recErr.Err),
			)
		}
		s.metrics.RecordError("normalizer", "invalid_record")
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}
	s.metrics.UpdateRecordsLoaded(len(records))

	start := time.Now()

	scales, err := scale.Build(records, s.opts.InnerWidth(), s.opts.InnerHeight())
	if err != nil {
		s.metrics.RecordError("scale", "build")
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	plot := render.Layout(records, scales, s.opts, s.handler)
	plot.RenderID = uuid.NewString()
	ctx = logger.WithFields(ctx, logger.String("render_id", plot.RenderID))

	var page, graph, legend bytes.Buffer
	if err := render.DrawPage(&page, plot); err != nil {
		s.metrics.RecordError("renderer", "page")
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}
	if err := render.Draw(&graph, plot); err != nil {
		s.metrics.RecordError("renderer", "graph")
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}
	if err := render.DrawLegend(&legend, plot); err != nil {
		s.metrics.RecordError("renderer", "legend")
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	latencyMs := float64(time.Since(start).Microseconds()) / 1000
	doping, clean := plot.Counts()
	s.metrics.RecordRender(latencyMs)
	s.metrics.UpdateMarksRendered(metrics.CategoryAllegation, doping)
	s.metrics.UpdateMarksRendered(metrics.CategoryClean, clean)

	lo, hi := scales.Extent()
	s.logger.Debug(ctx, "chart rendered",
		logger.Int("allegation_marks", doping),
		logger.Int("clean_marks", clean),
		logger.String("fastest", lo.Format("04:05")),
		logger.String("slowest", hi.Format("04:05")),
		logger.Float64("latency_ms", latencyMs),
	)

	return &Chart{
		RenderID: plot.RenderID,
		Records:  records,
		Scales:   scales,
		Plot:     plot,
		Page:     page.Bytes(),
		Graph:    graph.Bytes(),
		Legend:   legend.Bytes(),
		BuiltAt:  time.Now().UTC(),
	}, nil
}

// Chart returns the chart built by Start.
func (s *Service) Chart(_ context.Context) (*Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.chart == nil {
		return nil, ErrNotBuilt
	}
	return s.chart, nil
}

// Handler returns the interaction handler bound into every mark.
func (s *Service) Handler() *interaction.Handler {
	return s.handler
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started": s.started,
	}
	if s.chart != nil {
		doping, clean := s.chart.Plot.Counts()
		stats["renderId"] = s.chart.RenderID
		stats["records"] = len(s.chart.Records)
		stats["allegationMarks"] = doping
		stats["cleanMarks"] = clean
		stats["builtAt"] = s.chart.BuiltAt.Format(time.RFC3339)
	}
	return stats
}
