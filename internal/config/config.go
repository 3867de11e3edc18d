// Package config defines racechart configuration and its loading hooks.
//
// Conventions:
//   - New returns a Config holding every default.
//   - Load layers an optional YAML file and RACECHART_* env vars on top.
//   - Validate reports inconsistent values wrapped in ErrInvalidConfig.
package config

import (
	"fmt"
	"strings"
)

// DefaultDataURL is the published cyclist dataset.
const DefaultDataURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/cyclist-data.json"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DataURL is fetched once at startup. http(s), file:// and plain paths are accepted.
	DataURL string `koanf:"data_url"`

	// FetchTimeoutMS bounds the single dataset fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// Width and Height are the outer drawing surface size in pixels.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`

	MarginTop    int `koanf:"margin_top"`
	MarginRight  int `koanf:"margin_right"`
	MarginBottom int `koanf:"margin_bottom"`
	MarginLeft   int `koanf:"margin_left"`

	// DotRadius is the radius of every mark.
	DotRadius float64 `koanf:"dot_radius"`

	// DopingColor fills marks with an allegation, CleanColor the rest.
	DopingColor string `koanf:"doping_color"`
	CleanColor  string `koanf:"clean_color"`

	LegendWidth  int `koanf:"legend_width"`
	LegendHeight int `koanf:"legend_height"`

	// TooltipOffsetX/Y are added to the pointer page coordinates.
	TooltipOffsetX int `koanf:"tooltip_offset_x"`
	TooltipOffsetY int `koanf:"tooltip_offset_y"`

	// Title is shown above the chart.
	Title string `koanf:"title"`

	// RateLimitRPS and RateLimitBurst bound per-client request rates. Zero disables.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`

	// CORSOrigins is a comma separated allow-list for the embeddable endpoints.
	CORSOrigins string `koanf:"cors_origins"`

	// OutputPath is where `racechart render` writes the page. "-" means stdout.
	OutputPath string `koanf:"output_path"`
}

// New creates a Config holding the defaults: an 800x500 surface with 60px margins.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		DataURL:        DefaultDataURL,
		FetchTimeoutMS: 10_000,
		Width:          800,
		Height:         500,
		MarginTop:      60,
		MarginRight:    60,
		MarginBottom:   60,
		MarginLeft:     60,
		DotRadius:      6,
		DopingColor:    "#ff4444",
		CleanColor:     "#4444ff",
		LegendWidth:    200,
		LegendHeight:   50,
		TooltipOffsetX: 10,
		TooltipOffsetY: -28,
		Title:          "Doping in Professional Bicycle Racing",
		RateLimitRPS:   20,
		RateLimitBurst: 40,
		CORSOrigins:    "*",
		OutputPath:     "-",
	}
}

// InnerWidth is the plotting width left after horizontal margins.
func (c *Config) InnerWidth() int {
	return c.Width - c.MarginLeft - c.MarginRight
}

// InnerHeight is the plotting height left after vertical margins.
func (c *Config) InnerHeight() int {
	return c.Height - c.MarginTop - c.MarginBottom
}

// Origins splits CORSOrigins into a trimmed allow-list.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.DataURL) == "":
		return fmt.Errorf("%w: data_url must not be empty", ErrInvalidConfig)
	case c.FetchTimeoutMS <= 0:
		return fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	case c.MarginTop < 0 || c.MarginRight < 0 || c.MarginBottom < 0 || c.MarginLeft < 0:
		return fmt.Errorf("%w: margins must not be negative", ErrInvalidConfig)
	case c.InnerWidth() <= 0:
		return fmt.Errorf("%w: width %d leaves no room inside margins", ErrInvalidConfig, c.Width)
	case c.InnerHeight() <= 0:
		return fmt.Errorf("%w: height %d leaves no room inside margins", ErrInvalidConfig, c.Height)
	case c.DotRadius <= 0:
		return fmt.Errorf("%w: dot_radius must be positive", ErrInvalidConfig)
	case c.LegendWidth <= 0 || c.LegendHeight <= 0:
		return fmt.Errorf("%w: legend size must be positive", ErrInvalidConfig)
	case c.RateLimitRPS < 0 || c.RateLimitBurst < 0:
		return fmt.Errorf("%w: rate limits must not be negative", ErrInvalidConfig)
	}
	return nil
}
