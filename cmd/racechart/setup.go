package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/okian/racechart/internal/adapters/loader"
	"github.com/okian/racechart/internal/adapters/render"
	app "github.com/okian/racechart/internal/app"
	"github.com/okian/racechart/internal/config"
	"github.com/okian/racechart/pkg/logger"
	"github.com/okian/racechart/pkg/metrics"
)

const systemMetricsInterval = 10 * time.Second

// setup initializes logging on w and loads configuration (defaults -> optional file -> env -> flags).
func setup(ctx context.Context, w io.Writer, f *flags) (*config.Config, error) {
	if err := logger.InitWithWriter(w); err != nil {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if f.dataURL != "" {
		cfg.DataURL = f.dataURL
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return cfg, nil
}

// renderOptions maps the configured surface onto the renderer.
func renderOptions(cfg *config.Config) render.Options {
	opts := render.DefaultOptions()
	opts.Width = float64(cfg.Width)
	opts.Height = float64(cfg.Height)
	opts.Margin = render.Margin{
		Top:    float64(cfg.MarginTop),
		Right:  float64(cfg.MarginRight),
		Bottom: float64(cfg.MarginBottom),
		Left:   float64(cfg.MarginLeft),
	}
	opts.Radius = cfg.DotRadius
	opts.DopingColor = cfg.DopingColor
	opts.CleanColor = cfg.CleanColor
	opts.LegendWidth = float64(cfg.LegendWidth)
	opts.LegendHeight = float64(cfg.LegendHeight)
	opts.Title = cfg.Title
	return opts
}

// newService wires the loader and renderer into the chart service.
func newService(cfg *config.Config) *app.Service {
	ld := loader.New(cfg.DataURL,
		loader.WithTimeout(time.Duration(cfg.FetchTimeoutMS)*time.Millisecond),
		loader.WithLogger(logger.Named("loader")),
	)
	return app.New(
		app.WithLogger(logger.Named("service")),
		app.WithLoader(ld),
		app.WithRenderOptions(renderOptions(cfg)),
		app.WithTooltipOffset(float64(cfg.TooltipOffsetX), float64(cfg.TooltipOffsetY)),
	)
}

// startSystemMetricsUpdater updates system metrics until ctx is done.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	updateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystem(m.Alloc, runtime.NumGoroutine())
}
