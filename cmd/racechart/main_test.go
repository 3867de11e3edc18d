package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/okian/racechart/internal/config"
	"github.com/okian/racechart/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func testConfig() *config.Config {
	cfg := config.New()
	cfg.DataURL = filepath.Join("testdata", "cyclists.json")
	return cfg
}

func TestSetup(t *testing.T) {
	convey.Convey("Given environment and flag overrides", t, func() {
		_ = os.Setenv("RACECHART_ADDR", ":8088")
		_ = os.Setenv("RACECHART_DATA_URL", "https://example.com/env.json")
		defer func() {
			_ = os.Unsetenv("RACECHART_ADDR")
			_ = os.Unsetenv("RACECHART_DATA_URL")
		}()

		var logs bytes.Buffer
		cfg, err := setup(context.Background(), &logs, &flags{dataURL: "./local.json", logLevel: "debug"})

		convey.Convey("Then env fills the config and flags win over env", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8088")
			convey.So(cfg.DataURL, convey.ShouldEqual, "./local.json")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
		})
	})

	convey.Convey("Given a surface too small for its margins", t, func() {
		_ = os.Setenv("RACECHART_WIDTH", "100")
		defer func() { _ = os.Unsetenv("RACECHART_WIDTH") }()

		_, err := setup(context.Background(), &bytes.Buffer{}, &flags{})

		convey.Convey("Then setup fails", func() {
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestRenderOptions(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		opts := renderOptions(config.New())

		convey.Convey("Then the renderer gets the same surface", func() {
			convey.So(opts.Width, convey.ShouldEqual, 800)
			convey.So(opts.Height, convey.ShouldEqual, 500)
			convey.So(opts.InnerWidth(), convey.ShouldEqual, 680)
			convey.So(opts.InnerHeight(), convey.ShouldEqual, 380)
			convey.So(opts.Radius, convey.ShouldEqual, 6)
			convey.So(opts.Title, convey.ShouldEqual, "Doping in Professional Bicycle Racing")
		})
	})
}

func TestRenderTo(t *testing.T) {
	convey.Convey("Given a local dataset", t, func() {
		cfg := testConfig()
		ctx := context.Background()

		convey.Convey("When rendering the page to stdout", func() {
			var out bytes.Buffer
			err := renderTo(ctx, newService(cfg), surfacePage, "-", &out)

			convey.Convey("Then the page holds one dot per record", func() {
				convey.So(err, convey.ShouldBeNil)
				doc, err := goquery.NewDocumentFromReader(&out)
				convey.So(err, convey.ShouldBeNil)
				convey.So(doc.Find("circle.dot").Length(), convey.ShouldEqual, 6)
				convey.So(doc.Find("#legend svg").Length(), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When rendering the SVG to a file", func() {
			path := filepath.Join(t.TempDir(), "out", "chart.svg")
			err := renderTo(ctx, newService(cfg), surfaceSVG, path, &bytes.Buffer{})

			convey.Convey("Then the file is a standalone SVG", func() {
				convey.So(err, convey.ShouldBeNil)
				body, err := os.ReadFile(path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(strings.HasPrefix(strings.TrimSpace(string(body)), "<svg"), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When asking for an unknown surface", func() {
			err := renderTo(ctx, newService(cfg), "png", "-", &bytes.Buffer{})

			convey.Convey("Then it is refused", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})

	convey.Convey("Given a dataset that does not exist", t, func() {
		cfg := testConfig()
		cfg.DataURL = filepath.Join("testdata", "missing.json")

		err := renderTo(context.Background(), newService(cfg), surfacePage, "-", &bytes.Buffer{})

		convey.Convey("Then rendering fails", func() {
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestHTTPHandler(t *testing.T) {
	convey.Convey("Given the wired HTTP handler over a built chart", t, func() {
		ctx := context.Background()
		h := newHTTPHandler(ctx, testConfig())
		convey.So(h.svc.Start(ctx), convey.ShouldBeNil)
		defer h.svc.Stop()

		srv := httptest.NewServer(h.handler)
		defer srv.Close()

		convey.Convey("Then chart, docs and metrics routes answer", func() {
			for _, path := range []string{"/", "/chart.svg", "/legend.svg", "/data", "/healthz", "/stats", "/metrics", "/api-docs", "/openapi.yaml", "/static/chart.css"} {
				resp, err := http.Get(srv.URL + path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				_ = resp.Body.Close()
			}
		})

		convey.Convey("Then unknown paths are not found", func() {
			resp, err := http.Get(srv.URL + "/nope")
			convey.So(err, convey.ShouldBeNil)
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusNotFound)
			_ = resp.Body.Close()
		})
	})
}
