package main

import (
	"os"
	"time"

	"github.com/okian/racechart/internal/smoke"
	"github.com/okian/racechart/pkg/logger"
	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	cfg := smoke.Config{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a running server: chart matches data, chart route holds under load",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.InitWithWriter(os.Stdout); err != nil {
				return err
			}
			ctx := cmd.Context()
			stats, err := smoke.Run(ctx, &cfg)
			if err != nil {
				return err
			}
			logger.Get().Info(ctx, "smoke check passed",
				logger.Int("marks", stats.Marks),
				logger.Int("probes", stats.Probes),
				logger.Int("rate_limited", stats.RateLimited),
				logger.Duration("duration", stats.Duration),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.BaseURL, "url", "http://localhost:9080", "base URL of the racechart server")
	cmd.Flags().IntVar(&cfg.Requests, "requests", 100, "probe requests against /chart.svg")
	cmd.Flags().IntVar(&cfg.Workers, "workers", 4, "concurrent probe workers")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "per-request timeout")
	return cmd
}
