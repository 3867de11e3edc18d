package smoke

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/okian/racechart/pkg/logger"
)

// Probe outcomes.
const (
	outcomeOK          = "ok"
	outcomeRateLimited = "rate_limited"
	outcomeFailed      = "failed"
)

// workerChannelMultiplier sizes the job channel relative to the worker count.
const workerChannelMultiplier = 2

// probeChart hits url n times from a pool of workers and tallies the outcomes.
func probeChart(ctx context.Context, client *httpClient, url string, n, workers int, stats *Stats) {
	if workers < 1 {
		workers = 1
	}

	var ok, limited, failed int64
	jobs := make(chan struct{}, workers*workerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				switch probeOnce(ctx, client, url) {
				case outcomeOK:
					atomic.AddInt64(&ok, 1)
				case outcomeRateLimited:
					atomic.AddInt64(&limited, 1)
				default:
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- struct{}{}:
			}
		}
	}()

	wg.Wait()

	stats.ProbesOK = int(ok)
	stats.RateLimited = int(limited)
	stats.ProbesFailed = int(failed)
	stats.Probes = stats.ProbesOK + stats.RateLimited + stats.ProbesFailed

	logger.Get().Info(ctx, "probe completed",
		logger.Int("ok", stats.ProbesOK),
		logger.Int("rate_limited", stats.RateLimited),
		logger.Int("failed", stats.ProbesFailed),
	)
}

func probeOnce(ctx context.Context, client *httpClient, url string) string {
	status, _, err := client.get(ctx, url)
	switch {
	case err != nil:
		return outcomeFailed
	case status == http.StatusOK:
		return outcomeOK
	case status == http.StatusTooManyRequests:
		return outcomeRateLimited
	default:
		return outcomeFailed
	}
}
