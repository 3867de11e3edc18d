// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// StatsProvider reports a snapshot of the chart service for GET /stats.
type StatsProvider interface {
	GetStats() map[string]any
}

// StatusHandler answers the liveness and stats probes.
type StatusHandler struct {
	source ChartSource
	stats  StatsProvider
}

// NewStatusHandler wires the probes to the chart source and its stats.
func NewStatusHandler(source ChartSource, stats StatsProvider) *StatusHandler {
	return &StatusHandler{source: source, stats: stats}
}

type healthResponse struct {
	Status   string `json:"status"`
	RenderID string `json:"render_id,omitempty"`
	Records  int    `json:"records"`
}

// HandleHealth handles GET /healthz. It reports 503 until the chart is built.
func (h *StatusHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	chart, err := h.source.Chart(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "starting"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		RenderID: chart.RenderID,
		Records:  len(chart.Records),
	})
}

// HandleStats handles GET /stats. The snapshot changes with every rebuild so
// it is never cached.
func (h *StatusHandler) HandleStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if h.stats == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, h.stats.GetStats())
}
