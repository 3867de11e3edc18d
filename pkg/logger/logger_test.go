package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When it is initialized with the default writer", func() {
			err := Init()

			Convey("Then Get returns a usable logger", func() {
				So(err, ShouldBeNil)
				So(Get(), ShouldNotBeNil)
			})
		})

		Convey("When it is initialized with a nil writer", func() {
			err := InitWithWriter(nil)

			Convey("Then it should fail", func() {
				So(errors.Is(err, ErrNilWriter), ShouldBeTrue)
			})
		})
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging an info record with fields", func() {
			Get().Info(ctx, "dataset loaded", Int("records", 35), String("url", "file://x"))

			Convey("Then the record carries message, fields and source", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "dataset loaded")
				So(out, ShouldContainSubstring, "records=35")
				So(out, ShouldContainSubstring, "url=file://x")
				So(out, ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When logging through a named logger", func() {
			Named("loader").Warn(ctx, "slow fetch", Error(errors.New("boom")))

			Convey("Then the component name is attached", func() {
				So(buf.String(), ShouldContainSubstring, "component=loader")
				So(buf.String(), ShouldContainSubstring, "error=boom")
			})
		})

		Convey("When the context carries fields", func() {
			scoped := WithFields(ctx, String("request_id", "req-1"))
			scoped = WithFields(scoped, String("render_id", "r-9"))
			Get().Info(scoped, "chart served", Int("status", 200))

			Convey("Then every attached field is written before the record's own", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "request_id=req-1 render_id=r-9 status=200")
				So(FieldsFrom(ctx), ShouldBeEmpty)
			})
		})

		Convey("When debug is logged at the default level", func() {
			Get().Debug(ctx, "hidden")

			Convey("Then nothing is written", func() {
				So(buf.String(), ShouldNotContainSubstring, "hidden")
			})
		})

		Convey("When the level is lowered to debug", func() {
			So(SetLevelString("DEBUG"), ShouldBeNil)
			Get().Debug(ctx, "visible")
			_ = SetLevelString("info")

			Convey("Then debug records are written", func() {
				So(buf.String(), ShouldContainSubstring, "visible")
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(SetLevelString("warn"), ShouldBeNil)
		So(SetLevelString("warning"), ShouldBeNil)
		So(SetLevelString("error"), ShouldBeNil)
		So(SetLevelString(""), ShouldBeNil)
		So(SetLevelString("verbose"), ShouldNotBeNil)
	})
}
