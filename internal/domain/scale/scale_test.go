package scale_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/racechart/internal/domain/model"
	"github.com/okian/racechart/internal/domain/racetime"
	"github.com/okian/racechart/internal/domain/scale"
	. "github.com/smartystreets/goconvey/convey"
)

func rec(year int, t string) model.Record {
	parsed, err := racetime.Parse(t)
	if err != nil {
		panic(err)
	}
	return model.Record{Year: year, Time: parsed, Name: "rider"}
}

func TestLinear(t *testing.T) {
	Convey("Given a linear scale over [1993, 1997] -> [0, 680]", t, func() {
		s := scale.NewLinear(1993, 1997, 0, 680)

		Convey("Then the ends and midpoint map proportionally", func() {
			So(s.Map(1993), ShouldEqual, 0)
			So(s.Map(1997), ShouldEqual, 680)
			So(s.Map(1995), ShouldEqual, 340)
			So(s.Invert(170), ShouldEqual, 1994)
		})

		Convey("Then ticks are whole years inside the domain", func() {
			So(s.Ticks(10), ShouldResemble, []float64{1993, 1993.5, 1994, 1994.5, 1995, 1995.5, 1996, 1996.5, 1997})
			So(s.Ticks(4), ShouldResemble, []float64{1993, 1994, 1995, 1996, 1997})
		})
	})

	Convey("Given the published dataset's year domain", t, func() {
		s := scale.NewLinear(1993, 2016, 0, 680)

		Convey("Then ticks step by two years", func() {
			ticks := s.Ticks(scale.DefaultTickCount)
			So(ticks[0], ShouldEqual, 1994)
			So(ticks[len(ticks)-1], ShouldEqual, 2016)
			So(ticks, ShouldHaveLength, 12)
		})
	})

	Convey("Given a zero-width domain", t, func() {
		s := scale.NewLinear(2000, 2000, 0, 100)

		Convey("Then every value maps to the range midpoint", func() {
			So(s.Map(2000), ShouldEqual, 50)
			So(s.Map(1990), ShouldEqual, 50)
			So(s.Ticks(10), ShouldResemble, []float64{2000})
		})
	})

	Convey("Given a non-positive tick count", t, func() {
		So(scale.NewLinear(0, 10, 0, 1).Ticks(0), ShouldBeNil)
	})
}

func TestTime(t *testing.T) {
	Convey("Given a time scale over 36:50..39:50 -> [0, 380]", t, func() {
		lo, _ := racetime.Parse("36:50")
		hi, _ := racetime.Parse("39:50")
		s := scale.NewTime(lo, hi, 0, 380)

		Convey("Then the fastest time is at the top and the slowest at the bottom", func() {
			So(s.Map(lo), ShouldEqual, 0)
			So(s.Map(hi), ShouldEqual, 380)
			mid, _ := racetime.Parse("38:20")
			So(s.Map(mid), ShouldAlmostEqual, 190, 1e-9)
			So(s.Invert(190).Equal(mid), ShouldBeTrue)
		})

		Convey("Then ticks fall on 15 second boundaries", func() {
			ticks := s.Ticks(scale.DefaultTickCount)
			So(racetime.Format(ticks[0]), ShouldEqual, "37:00")
			So(racetime.Format(ticks[1]), ShouldEqual, "37:15")
			So(racetime.Format(ticks[len(ticks)-1]), ShouldEqual, "39:45")
			So(ticks, ShouldHaveLength, 12)
		})
	})

	Convey("Given tick interval selection", t, func() {
		So(scale.TickInterval(180*time.Second, 10), ShouldEqual, 15*time.Second)
		So(scale.TickInterval(10*time.Minute, 10), ShouldEqual, time.Minute)
		So(scale.TickInterval(2*time.Second, 10), ShouldEqual, time.Second)
		So(scale.TickInterval(50*time.Minute, 10), ShouldEqual, 5*time.Minute)
		So(scale.TickInterval(20*time.Hour, 10), ShouldEqual, time.Hour)
	})

	Convey("Given a single-instant domain", t, func() {
		at, _ := racetime.Parse("37:00")
		s := scale.NewTime(at, at, 0, 380)

		Convey("Then it maps to the midpoint and yields one tick", func() {
			So(s.Map(at), ShouldEqual, 190)
			So(s.Ticks(10), ShouldHaveLength, 1)
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given the two rider dataset", t, func() {
		records := []model.Record{rec(1994, "36:50"), rec(1996, "35:10")}

		Convey("When scales are built for a 680x380 plot", func() {
			scales, err := scale.Build(records, 680, 380)

			Convey("Then the year domain is padded by one on both sides", func() {
				So(err, ShouldBeNil)
				So(scales.X.Domain, ShouldResemble, [2]float64{1993, 1997})
				So(scales.X.Range, ShouldResemble, [2]float64{0, 680})
			})

			Convey("And the time domain spans exactly the two durations", func() {
				So(racetime.Format(scales.Y.Domain[0]), ShouldEqual, "35:10")
				So(racetime.Format(scales.Y.Domain[1]), ShouldEqual, "36:50")
				fastest, slowest := scales.Extent()
				So(fastest.Before(slowest), ShouldBeTrue)
			})

			Convey("And no mark falls outside the horizontal range", func() {
				for _, r := range records {
					x := scales.X.Map(float64(r.Year))
					So(x, ShouldBeGreaterThanOrEqualTo, 0)
					So(x, ShouldBeLessThanOrEqualTo, 680)
				}
			})

			Convey("And building again yields the same mapping", func() {
				again, err := scale.Build(records, 680, 380)
				So(err, ShouldBeNil)
				for _, r := range records {
					So(again.X.Map(float64(r.Year)), ShouldEqual, scales.X.Map(float64(r.Year)))
					So(again.Y.Map(r.Time), ShouldEqual, scales.Y.Map(r.Time))
				}
				So(again, ShouldResemble, scales)
			})
		})
	})

	Convey("Given an empty dataset", t, func() {
		_, err := scale.Build(nil, 680, 380)

		Convey("Then it is rejected", func() {
			So(errors.Is(err, model.ErrEmptyDataset), ShouldBeTrue)
		})
	})

	Convey("Given a collapsed pixel range", t, func() {
		_, err := scale.Build([]model.Record{rec(2000, "37:00")}, 0, 380)

		Convey("Then it is rejected", func() {
			So(errors.Is(err, scale.ErrInvalidRange), ShouldBeTrue)
		})
	})
}
