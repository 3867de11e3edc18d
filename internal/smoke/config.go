package smoke

import "time"

// Config holds configuration for a smoke run against a live server.
type Config struct {
	BaseURL  string        // Base URL of the service
	Requests int           // Number of probe requests against /chart.svg
	Workers  int           // Number of concurrent probe workers
	Timeout  time.Duration // HTTP request timeout
}

// DataRecord mirrors one entry of GET /data.
type DataRecord struct {
	Year        int    `json:"year"`
	Time        string `json:"time"`
	Display     string `json:"display_time"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Doping      string `json:"doping"`
}

// DataResponse mirrors the GET /data body.
type DataResponse struct {
	RenderID string       `json:"render_id"`
	Count    int          `json:"count"`
	Records  []DataRecord `json:"records"`
}

// Stats holds run statistics.
type Stats struct {
	Marks        int
	Probes       int
	ProbesOK     int
	RateLimited  int
	ProbesFailed int
	StartTime    time.Time
	Duration     time.Duration
}
