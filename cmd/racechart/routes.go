package main

import (
	"context"
	"net/http"

	"github.com/okian/racechart/internal/adapters/http/api"
	"github.com/okian/racechart/internal/adapters/http/swagger"
	app "github.com/okian/racechart/internal/app"
	"github.com/okian/racechart/internal/config"
	"github.com/okian/racechart/pkg/logger"
)

// chartHTTP pairs the chart service with the handler serving it.
type chartHTTP struct {
	svc     *app.Service
	handler http.Handler
}

// newHTTPHandler registers the docs and chart routes on a fresh mux.
func newHTTPHandler(ctx context.Context, cfg *config.Config) *chartHTTP {
	svc := newService(cfg)

	mux := http.NewServeMux()
	swagger.Register(ctx, mux)

	apiServer := api.NewServer(svc, svc,
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		api.WithCORSOrigins(cfg.Origins()),
		api.WithLogger(logger.Named("http")),
	)
	apiServer.Register(ctx, mux)

	return &chartHTTP{svc: svc, handler: apiServer.Handler(mux)}
}
