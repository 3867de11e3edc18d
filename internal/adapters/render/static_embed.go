package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static/*
var assetFS embed.FS

// StaticFS exposes the chart script and stylesheet rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(assetFS, "static")
	if err != nil {
		return assetFS
	}
	return sub
}
