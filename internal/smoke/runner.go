// Package smoke checks a running racechart server end to end: the chart it
// serves must match its data, and the chart route must hold up under
// concurrent requests.
package smoke

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/racechart/pkg/logger"
)

// Run executes the complete smoke check.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	base := strings.TrimRight(config.BaseURL, "/")
	client := newHTTPClient(config.Timeout)

	logger.Get().Info(ctx, "starting racechart smoke check",
		logger.String("baseURL", base),
		logger.Int("requests", config.Requests),
		logger.Int("workers", config.Workers),
		logger.Duration("timeout", config.Timeout),
	)

	// Step 1: Check service health
	if _, err := client.getOK(ctx, base+"/healthz"); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	// Step 2: Compare the chart with its data
	data, err := client.getData(ctx, base)
	if err != nil {
		return stats, fmt.Errorf("data retrieval failed: %w", err)
	}
	svg, err := client.getOK(ctx, base+"/chart.svg")
	if err != nil {
		return stats, fmt.Errorf("chart retrieval failed: %w", err)
	}
	marks, err := VerifyChart(svg, data)
	stats.Marks = marks
	if err != nil {
		return stats, err
	}
	logger.Get().Info(ctx, "chart matches data",
		logger.String("render_id", data.RenderID),
		logger.Int("marks", marks),
	)

	// Step 3: Probe the chart route concurrently
	if config.Requests > 0 {
		probeChart(ctx, client, base+"/chart.svg", config.Requests, config.Workers, stats)
	}

	stats.Duration = time.Since(stats.StartTime)
	if stats.ProbesFailed > 0 {
		return stats, fmt.Errorf("%w: %d of %d probes failed", ErrStatus, stats.ProbesFailed, stats.Probes)
	}
	return stats, nil
}
