// Package loader fetches the cyclist dataset exactly once.
//
// http(s) URLs are fetched with a single GET; file:// URLs and plain paths
// are read from disk. There is no retry: any failure aborts the load.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/okian/racechart/internal/domain/model"
	"github.com/okian/racechart/pkg/logger"
	"github.com/okian/racechart/pkg/metrics"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
	userAgent      = "racechart/1.0"
)

// Loader retrieves and decodes the raw dataset.
type Loader struct {
	source  string
	client  *http.Client
	timeout time.Duration
	logger  logger.Logger
	metrics *metrics.Manager
}

// New creates a loader for source.
func New(source string, opts ...Option) *Loader {
	l := &Loader{
		source:  source,
		timeout: defaultTimeout,
		logger:  logger.Get().Named("loader"),
		metrics: metrics.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.client == nil {
		l.client = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Source returns the configured dataset location.
func (l *Loader) Source() string {
	return l.source
}

// Load fetches the dataset and decodes it into raw records.
func (l *Loader) Load(ctx context.Context) ([]model.RawRecord, error) {
	start := time.Now()

	body, err := l.fetch(ctx)
	latencyMs := float64(time.Since(start).Milliseconds())
	if err != nil {
		l.metrics.RecordDatasetFetch(metrics.OutcomeError, latencyMs, 0)
		l.logger.Error(ctx, "dataset fetch failed", logger.String("source", l.source), logger.Error(err))
		return nil, err
	}

	records, err := Decode(bytes.NewReader(body))
	if err != nil {
		l.metrics.RecordDatasetFetch(metrics.OutcomeError, latencyMs, len(body))
		l.logger.Error(ctx, "dataset decode failed", logger.String("source", l.source), logger.Error(err))
		return nil, err
	}

	l.metrics.RecordDatasetFetch(metrics.OutcomeSuccess, latencyMs, len(body))
	l.logger.Info(ctx, "dataset loaded",
		logger.String("source", l.source),
		logger.Int("records", len(records)),
		logger.Int("bytes", len(body)),
		logger.Float64("latency_ms", latencyMs),
	)
	return records, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	u, err := url.Parse(l.source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSource, l.source, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l.fetchHTTP(ctx)
	case "file":
		return readFile(u.Path)
	case "":
		return readFile(l.source)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrSource, u.Scheme)
	}
}

func (l *Loader) fetchHTTP(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned %d", ErrStatus, l.source, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	return body, nil
}

func readFile(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return body, nil
}

// Decode parses a JSON array of raw records. Unknown fields are ignored.
func Decode(r io.Reader) ([]model.RawRecord, error) {
	var records []model.RawRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after array", ErrDecode)
	}
	return records, nil
}
