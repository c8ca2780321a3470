package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestInitAndGet(t *testing.T) {
	convey.Convey("Given an initialized logger", t, func() {
		convey.So(Init(), convey.ShouldBeNil)

		convey.Convey("Then Get returns a usable logger", func() {
			l := Get()
			convey.So(l, convey.ShouldNotBeNil)

			ctx := context.Background()
			convey.So(func() {
				l.Info(ctx, "derivation started", String("athlete_id", "jo-rider"))
				l.Warn(ctx, "profile incomplete", Int("warnings", 2))
				l.Debug(ctx, "tier floors loaded", Float64("podium_min", 18))
				l.Error(ctx, "store failure", Error(errors.New("disk full")))
			}, convey.ShouldNotPanic)
		})

		convey.Convey("And Named returns a scoped logger", func() {
			named := Named("store")
			convey.So(named, convey.ShouldNotBeNil)
			convey.So(func() {
				named.Info(context.Background(), "profile saved")
			}, convey.ShouldNotPanic)
		})

		convey.Convey("And Sync is a no-op", func() {
			convey.So(Sync(), convey.ShouldBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	convey.Convey("Given level names", t, func() {
		convey.So(Init(), convey.ShouldBeNil)

		convey.Convey("Then known names parse", func() {
			for _, name := range []string{"debug", "info", "WARN", "warning", "Error", ""} {
				convey.So(SetLevelString(name), convey.ShouldBeNil)
			}
		})

		convey.Convey("And unknown names are rejected", func() {
			err := SetLevelString("verbose")
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "unknown log level")
		})

		convey.Convey("And SetLevel accepts slog levels directly", func() {
			convey.So(func() { SetLevel(slog.LevelInfo) }, convey.ShouldNotPanic)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	convey.Convey("Given the field constructors", t, func() {
		convey.So(String("k", "v"), convey.ShouldResemble, Field{Key: "k", Value: "v"})
		convey.So(Int("n", 7), convey.ShouldResemble, Field{Key: "n", Value: 7})
		convey.So(Float64("f", 1.5), convey.ShouldResemble, Field{Key: "f", Value: 1.5})
		convey.So(Any("a", true), convey.ShouldResemble, Field{Key: "a", Value: true})

		err := errors.New("boom")
		convey.So(Error(err), convey.ShouldResemble, Field{Key: "error", Value: err})
	})
}
