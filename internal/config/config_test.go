package config_test

import (
	"errors"
	"testing"

	"github.com/okian/racechart/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should describe the 800x500 chart with 60px margins", func() {
			convey.So(cfg.Width, convey.ShouldEqual, 800)
			convey.So(cfg.Height, convey.ShouldEqual, 500)
			convey.So(cfg.MarginTop, convey.ShouldEqual, 60)
			convey.So(cfg.MarginLeft, convey.ShouldEqual, 60)
			convey.So(cfg.DotRadius, convey.ShouldEqual, 6)
			convey.So(cfg.DopingColor, convey.ShouldEqual, "#ff4444")
			convey.So(cfg.CleanColor, convey.ShouldEqual, "#4444ff")
			convey.So(cfg.TooltipOffsetX, convey.ShouldEqual, 10)
			convey.So(cfg.TooltipOffsetY, convey.ShouldEqual, -28)
		})
	})
}

func TestConfigValidate(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		cfg := config.New()

		convey.Convey("Then it is valid", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When fields are broken one at a time", func() {
			cases := map[string]func(c *config.Config){
				"addr":     func(c *config.Config) { c.Addr = " " },
				"data_url": func(c *config.Config) { c.DataURL = "" },
				"timeout":  func(c *config.Config) { c.FetchTimeoutMS = 0 },
				"margin":   func(c *config.Config) { c.MarginLeft = -1 },
				"height":   func(c *config.Config) { c.Height = 120 },
				"radius":   func(c *config.Config) { c.DotRadius = 0 },
				"legend":   func(c *config.Config) { c.LegendWidth = 0 },
				"rate":     func(c *config.Config) { c.RateLimitRPS = -1 },
			}

			convey.Convey("Then each is rejected as invalid", func() {
				for _, mutate := range cases {
					c := config.New()
					mutate(c)
					err := c.Validate()
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				}
			})
		})

		convey.Convey("When splitting CORS origins", func() {
			cfg.CORSOrigins = " https://a.example , ,https://b.example"

			convey.Convey("Then blanks are dropped", func() {
				convey.So(cfg.Origins(), convey.ShouldResemble, []string{"https://a.example", "https://b.example"})
			})
		})
	})
}
