package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	app "github.com/okian/racechart/internal/app"
	"github.com/okian/racechart/pkg/logger"
	"github.com/spf13/cobra"
)

// Surfaces the render command can write.
const (
	surfacePage   = "page"
	surfaceSVG    = "svg"
	surfaceLegend = "legend"
)

func renderCmd(f *flags) *cobra.Command {
	var output, surface string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build the chart once and write it to a file or stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// Logs go to stderr so the chart can be piped from stdout.
			cfg, err := setup(ctx, cmd.ErrOrStderr(), f)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.OutputPath = output
			}
			return renderTo(ctx, newService(cfg), surface, cfg.OutputPath, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output path, "-" for stdout (overrides RACECHART_OUTPUT_PATH)`)
	cmd.Flags().StringVar(&surface, "surface", surfacePage, "what to write: page, svg or legend")
	return cmd
}

// renderTo builds the chart with svc and writes the chosen surface to path.
func renderTo(ctx context.Context, svc *app.Service, surface, path string, stdout io.Writer) error {
	chart, err := svc.Build(ctx)
	if err != nil {
		return err
	}

	var body []byte
	switch surface {
	case surfacePage:
		body = chart.Page
	case surfaceSVG:
		body = chart.Graph
	case surfaceLegend:
		body = chart.Legend
	default:
		return fmt.Errorf("unknown surface %q", surface)
	}

	if path == "" || path == "-" {
		_, err := stdout.Write(body)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, body, 0o644); err != nil { //nolint:gosec // chart output is public
		return fmt.Errorf("write output: %w", err)
	}
	logger.Get().Info(ctx, "chart written",
		logger.String("path", path),
		logger.String("surface", surface),
		logger.String("render_id", chart.RenderID),
		logger.Int("bytes", len(body)),
	)
	return nil
}
