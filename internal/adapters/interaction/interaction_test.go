package interaction_test

import (
	"context"
	"testing"

	"github.com/okian/racechart/internal/adapters/interaction"
	"github.com/okian/racechart/internal/domain/model"
	"github.com/okian/racechart/internal/domain/racetime"
	"github.com/okian/racechart/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func record(year int, t, name, nat, doping string) model.Record {
	parsed, err := racetime.Parse(t)
	if err != nil {
		panic(err)
	}
	return model.Record{Year: year, Time: parsed, Name: name, Nationality: nat, Doping: doping}
}

func TestContent(t *testing.T) {
	Convey("Given a clean rider", t, func() {
		c := interaction.ContentFor(record(1994, "36:50", "A", "X", ""))

		Convey("Then the tooltip has two lines and no allegation", func() {
			So(c.Lines(), ShouldResemble, []string{"A: X", "Year: 1994, Time: 36:50"})
			So(c.HTML(), ShouldEqual, "A: X<br/>Year: 1994, Time: 36:50")
		})
	})

	Convey("Given a rider with an allegation", t, func() {
		c := interaction.ContentFor(record(1996, "35:10", "B", "Y", "Admitted doping"))

		Convey("Then the allegation follows a blank separator line", func() {
			So(c.Text(), ShouldEqual, "B: Y\nYear: 1996, Time: 35:10\n\nAdmitted doping")
			So(c.HTML(), ShouldEndWith, "<br/><br/>Admitted doping")
		})
	})

	Convey("Given text with markup", t, func() {
		c := interaction.ContentFor(record(2000, "37:00", "<b>C</b>", "Z&Z", ""))

		Convey("Then HTML escapes it", func() {
			So(c.HTML(), ShouldStartWith, "&lt;b&gt;C&lt;/b&gt;: Z&amp;Z")
		})
	})
}

func TestHandler(t *testing.T) {
	Convey("Given a handler on a fresh tooltip", t, func() {
		ctx := context.Background()
		tooltip := interaction.NewTooltip()
		h := interaction.NewHandler(tooltip)
		b := record(1996, "35:10", "B", "Y", "Admitted doping")

		Convey("Then the tooltip starts hidden", func() {
			So(tooltip.Snapshot().Visible, ShouldBeFalse)
			So(tooltip.Snapshot().Opacity, ShouldEqual, 0)
		})

		Convey("When the pointer enters mark B", func() {
			h.Enter(ctx, b, interaction.Position{X: 300, Y: 200})
			s := tooltip.Snapshot()

			Convey("Then the tooltip is visible, stamped and offset from the pointer", func() {
				So(s.Visible, ShouldBeTrue)
				So(s.Opacity, ShouldEqual, 1)
				So(s.Year, ShouldEqual, 1996)
				So(s.Position, ShouldResemble, interaction.Position{X: 310, Y: 172})
				So(s.Content.Text(), ShouldContainSubstring, "Admitted doping")
				So(s.Content.Time, ShouldEqual, "35:10")
			})

			Convey("And when it leaves, only visibility changes", func() {
				h.Leave(ctx)
				after := tooltip.Snapshot()
				So(after.Visible, ShouldBeFalse)
				So(after.Opacity, ShouldEqual, 0)
				So(after.Content, ShouldResemble, s.Content)
				So(after.Position, ShouldResemble, s.Position)
			})

			Convey("And a second enter overwrites the first", func() {
				h.Enter(ctx, record(1994, "36:50", "A", "X", ""), interaction.Position{X: 0, Y: 0})
				So(tooltip.Snapshot().Year, ShouldEqual, 1994)
				So(tooltip.Snapshot().Content.Allegation, ShouldEqual, "")
			})
		})

		Convey("When a binding is precomputed", func() {
			bind := h.Binding(b)

			Convey("Then it mirrors Enter's content and offset", func() {
				So(bind.Year, ShouldEqual, 1996)
				So(bind.HTML, ShouldContainSubstring, "Admitted doping")
				So(bind.OffsetX, ShouldEqual, 10)
				So(bind.OffsetY, ShouldEqual, -28)
			})
		})
	})

	Convey("Given a handler with a custom offset and no tooltip", t, func() {
		h := interaction.NewHandler(nil, interaction.WithOffset(5, 5), interaction.WithLogger(logger.Named("test")))
		h.Enter(context.Background(), record(2001, "38:00", "C", "Z", ""), interaction.Position{X: 1, Y: 1})

		Convey("Then it owns a tooltip and applies the offset", func() {
			So(h.Tooltip(), ShouldNotBeNil)
			So(h.Tooltip().Snapshot().Position, ShouldResemble, interaction.Position{X: 6, Y: 6})
		})
	})
}
