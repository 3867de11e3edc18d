// Package swagger serves the API reference for the chart routes.
package swagger

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/knadh/koanf/parsers/yaml"
)

// OpenAPI is the embedded OpenAPI 3 document describing the chart routes.
//
//go:embed openapi.yaml
var OpenAPI []byte

// redocURL is the published ReDoc standalone bundle.
const redocURL = "https://cdn.redoc.ly/redoc/v2.1.5/bundles/redoc.standalone.js"

// Info is the info block of the embedded document.
type Info struct {
	Title   string
	Version string
}

// DocumentInfo parses the embedded document and returns its title and version.
func DocumentInfo() (Info, error) {
	doc, err := yaml.Parser().Unmarshal(OpenAPI)
	if err != nil {
		return Info{}, fmt.Errorf("parse openapi document: %w", err)
	}
	info, _ := doc["info"].(map[string]any)
	out := Info{Title: "API", Version: ""}
	if t, ok := info["title"].(string); ok && t != "" {
		out.Title = t
	}
	if v, ok := info["version"]; ok && v != nil {
		out.Version = fmt.Sprint(v)
	}
	return out, nil
}

var docsPage = template.Must(template.New("docs").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Info.Title}} API Docs{{with .Info.Version}} v{{.}}{{end}}</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="{{.Bundle}}"></script>
    <script>Redoc.init({{.SpecURL}}, { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`))

// Register attaches the docs page and the OpenAPI document to mux.
//
//	GET /api-docs      -> ReDoc page titled from the document
//	GET /openapi.yaml  -> the embedded document
//
// It panics on a nil mux or an embedded document that does not parse.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	info, err := DocumentInfo()
	if err != nil {
		panic(err)
	}

	var page bytes.Buffer
	if err := docsPage.Execute(&page, map[string]any{
		"Info":    info,
		"Bundle":  redocURL,
		"SpecURL": "/openapi.yaml",
	}); err != nil {
		panic(err)
	}
	html := page.Bytes()
	etag := strconv.Quote(info.Version)

	mux.HandleFunc("GET /api-docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(html)
	})

	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(OpenAPI)
	})
}
