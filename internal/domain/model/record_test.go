package model_test

import (
	"errors"
	"testing"

	"github.com/okian/racechart/internal/domain/model"
	"github.com/okian/racechart/internal/domain/racetime"
	"github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	convey.Convey("Given the two rider dataset", t, func() {
		raw := []model.RawRecord{
			{Year: 1994, Time: "36:50", Doping: "", Name: "A", Nationality: "X"},
			{Year: 1996, Time: "35:10", Doping: "Admitted doping", Name: "B", Nationality: "Y"},
		}

		convey.Convey("When it is normalized", func() {
			recs, err := model.Normalize(raw)

			convey.Convey("Then every record keeps its fields and gains a parsed time", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(recs, convey.ShouldHaveLength, 2)
				convey.So(recs[0].Name, convey.ShouldEqual, "A")
				convey.So(racetime.Format(recs[0].Time), convey.ShouldEqual, "36:50")
				convey.So(recs[1].Time.Minute(), convey.ShouldEqual, 35)
				convey.So(recs[1].Time.Second(), convey.ShouldEqual, 10)
			})

			convey.Convey("And the allegation flag follows the Doping text", func() {
				convey.So(recs[0].HasAllegation(), convey.ShouldBeFalse)
				convey.So(recs[1].HasAllegation(), convey.ShouldBeTrue)
			})

			convey.Convey("And the raw input is left untouched", func() {
				convey.So(raw[0].Time, convey.ShouldEqual, "36:50")
			})
		})
	})

	convey.Convey("Given a dataset with a malformed time in the middle", t, func() {
		raw := []model.RawRecord{
			{Year: 1994, Time: "36:50", Name: "A"},
			{Year: 1995, Time: "36-50", Name: "B"},
			{Year: 1996, Time: "35:10", Name: "C"},
		}

		convey.Convey("When it is normalized", func() {
			recs, err := model.Normalize(raw)

			convey.Convey("Then it fails fast naming the record and field", func() {
				convey.So(recs, convey.ShouldBeNil)
				convey.So(errors.Is(err, model.ErrInvalidRecord), convey.ShouldBeTrue)
				convey.So(errors.Is(err, racetime.ErrMalformed), convey.ShouldBeTrue)

				var recErr *model.RecordError
				convey.So(errors.As(err, &recErr), convey.ShouldBeTrue)
				convey.So(recErr.Index, convey.ShouldEqual, 1)
				convey.So(recErr.Field, convey.ShouldEqual, "Time")
				convey.So(err.Error(), convey.ShouldContainSubstring, `"36-50"`)
			})
		})
	})

	convey.Convey("Given entries missing identity fields", t, func() {
		convey.Convey("Then a zero year is rejected", func() {
			_, err := model.Normalize([]model.RawRecord{{Time: "36:50", Name: "A"}})
			var recErr *model.RecordError
			convey.So(errors.As(err, &recErr), convey.ShouldBeTrue)
			convey.So(recErr.Field, convey.ShouldEqual, "Year")
		})

		convey.Convey("And a blank name is rejected", func() {
			_, err := model.Normalize([]model.RawRecord{{Year: 2000, Time: "36:50", Name: "  "}})
			var recErr *model.RecordError
			convey.So(errors.As(err, &recErr), convey.ShouldBeTrue)
			convey.So(recErr.Field, convey.ShouldEqual, "Name")
		})
	})

	convey.Convey("Given an empty dataset", t, func() {
		_, err := model.Normalize(nil)

		convey.Convey("Then it is rejected", func() {
			convey.So(errors.Is(err, model.ErrEmptyDataset), convey.ShouldBeTrue)
		})
	})
}
