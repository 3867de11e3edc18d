package render

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"math"
	"strconv"
)

const (
	scriptAsset = "chart.js"
	styleAsset  = "chart.css"
)

var funcMap = template.FuncMap{
	"num":  formatNum,
	"half": func(v float64) float64 { return v / 2 },
}

var templates = template.Must(template.New("chart").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl"))

// formatNum prints v with at most two decimals and no trailing zeros.
func formatNum(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

type pageData struct {
	Plot Plot
	CSS  template.CSS
	JS   template.JS
}

// Draw writes the chart surface: title, both axes and every mark.
func Draw(w io.Writer, p Plot) error {
	return execute(w, "graph", p)
}

// DrawLegend writes the two-entry color legend.
func DrawLegend(w io.Writer, p Plot) error {
	return execute(w, "legend", p)
}

// DrawPage writes a self-contained HTML page with the graph, legend,
// tooltip container, inline stylesheet and hover script.
func DrawPage(w io.Writer, p Plot) error {
	css, err := fs.ReadFile(StaticFS(), styleAsset)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAsset, styleAsset, err)
	}
	js, err := fs.ReadFile(StaticFS(), scriptAsset)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAsset, scriptAsset, err)
	}
	return execute(w, "page", pageData{
		Plot: p,
		CSS:  template.CSS(css), //nolint:gosec // embedded asset
		JS:   template.JS(js),   //nolint:gosec // embedded asset
	})
}

func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDraw, name, err)
	}
	return nil
}
