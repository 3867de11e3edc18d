package api

import (
	"net/http"
	"strconv"
	"time"

	service "github.com/okian/racechart/internal/app"
	"github.com/okian/racechart/internal/domain/racetime"
	"github.com/okian/racechart/pkg/logger"
)

// ChartHandler serves the rendered chart and its data.
type ChartHandler struct {
	source ChartSource
	logger logger.Logger
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(source ChartSource, l logger.Logger) *ChartHandler {
	return &ChartHandler{source: source, logger: l}
}

// dataRecord is the wire shape of one record on /data.
type dataRecord struct {
	Year        int    `json:"year"`
	Time        string `json:"time"`         // ISO-8601 on the 1970-01-01 reference date
	Display     string `json:"display_time"` // M:SS
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Doping      string `json:"doping"`
	URL         string `json:"url,omitempty"`
}

type dataResponse struct {
	RenderID string       `json:"render_id"`
	Count    int          `json:"count"`
	Records  []dataRecord `json:"records"`
}

// HandlePage handles GET / with the full chart page.
func (h *ChartHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "text/html; charset=utf-8", func(c *service.Chart) []byte { return c.Page })
}

// HandleGraph handles GET /chart.svg.
func (h *ChartHandler) HandleGraph(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "image/svg+xml", func(c *service.Chart) []byte { return c.Graph })
}

// HandleLegend handles GET /legend.svg.
func (h *ChartHandler) HandleLegend(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "image/svg+xml", func(c *service.Chart) []byte { return c.Legend })
}

// HandleData handles GET /data with the normalized records.
func (h *ChartHandler) HandleData(w http.ResponseWriter, r *http.Request) {
	chart, ok := h.chart(w, r)
	if !ok {
		return
	}
	if notModified(w, r, chart) {
		return
	}

	resp := dataResponse{
		RenderID: chart.RenderID,
		Count:    len(chart.Records),
		Records:  make([]dataRecord, 0, len(chart.Records)),
	}
	for _, rec := range chart.Records {
		resp.Records = append(resp.Records, dataRecord{
			Year:        rec.Year,
			Time:        racetime.ISO(rec.Time),
			Display:     racetime.Format(rec.Time),
			Name:        rec.Name,
			Nationality: rec.Nationality,
			Doping:      rec.Doping,
			URL:         rec.URL,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ChartHandler) serve(w http.ResponseWriter, r *http.Request, contentType string, body func(*service.Chart) []byte) {
	chart, ok := h.chart(w, r)
	if !ok {
		return
	}
	if notModified(w, r, chart) {
		return
	}

	b := body(chart)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(b); err != nil {
		h.logger.Warn(r.Context(), "failed to write response", logger.Error(err))
	}
}

func (h *ChartHandler) chart(w http.ResponseWriter, r *http.Request) (*service.Chart, bool) {
	chart, err := h.source.Chart(r.Context())
	if err != nil {
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, "unavailable", ErrUnavailable)
		return nil, false
	}
	return chart, true
}

// notModified answers conditional requests using the render id as entity tag.
func notModified(w http.ResponseWriter, r *http.Request, chart *service.Chart) bool {
	etag := `"` + chart.RenderID + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Last-Modified", chart.BuiltAt.UTC().Format(http.TimeFormat))
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(time.Hour.Seconds())))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}
