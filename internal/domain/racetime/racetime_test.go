package racetime_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/racechart/internal/domain/racetime"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given a well-formed race time", t, func() {
		got, err := racetime.Parse("36:50")

		Convey("Then it lands on the reference date with minutes and seconds set", func() {
			So(err, ShouldBeNil)
			So(got.Year(), ShouldEqual, 1970)
			So(got.YearDay(), ShouldEqual, 1)
			So(got.Hour(), ShouldEqual, 0)
			So(got.Minute(), ShouldEqual, 36)
			So(got.Second(), ShouldEqual, 50)
			So(racetime.Elapsed(got), ShouldEqual, 36*time.Minute+50*time.Second)
		})
	})

	Convey("Given times that must be rejected", t, func() {
		cases := map[string]error{
			"":        racetime.ErrMalformed,
			"3650":    racetime.ErrMalformed,
			"1:2:3":   racetime.ErrMalformed,
			"ab:10":   racetime.ErrMalformed,
			"36:xx":   racetime.ErrMalformed,
			":10":     racetime.ErrMalformed,
			"36:":     racetime.ErrMalformed,
			"-1:10":   racetime.ErrMalformed,
			"36:60":   racetime.ErrOutOfRange,
			"61:00":   racetime.ErrOutOfRange,
			"36.5:10": racetime.ErrMalformed,
		}

		Convey("Then each fails with a descriptive sentinel", func() {
			for input, want := range cases {
				_, err := racetime.Parse(input)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, want), ShouldBeTrue)
			}
		})
	})

	Convey("Given a time with surrounding whitespace", t, func() {
		got, err := racetime.Parse(" 5:07 ")

		Convey("Then it still parses", func() {
			So(err, ShouldBeNil)
			So(racetime.Format(got), ShouldEqual, "5:07")
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Given well-formed inputs", t, func() {
		inputs := []string{"36:50", "35:10", "39:09", "5:00", "0:05", "59:59", "37:00"}

		Convey("Then parsing and formatting reproduces the text", func() {
			for _, in := range inputs {
				parsed, err := racetime.Parse(in)
				So(err, ShouldBeNil)
				So(racetime.Format(parsed), ShouldEqual, in)
			}
		})
	})

	Convey("Given components", t, func() {
		Convey("Then FromComponents matches Parse", func() {
			parsed, _ := racetime.Parse("38:01")
			So(racetime.FromComponents(38, 1).Equal(parsed), ShouldBeTrue)
		})
	})
}

func TestISO(t *testing.T) {
	Convey("Given a normalized time", t, func() {
		parsed, _ := racetime.Parse("36:50")

		Convey("Then ISO renders millisecond UTC text", func() {
			So(racetime.ISO(parsed), ShouldEqual, "1970-01-01T00:36:50.000Z")
		})
	})
}
