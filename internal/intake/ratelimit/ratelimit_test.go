package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestAllowAndRecord(t *testing.T) {
	convey.Convey("Given a limiter with a three-per-day cap", t, func() {
		ctx := context.Background()
		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		l := New(WithMaxPerDay(3), WithClock(func() time.Time { return now }))

		convey.Convey("Then the cap applies per email per day", func() {
			for i := 0; i < 3; i++ {
				convey.So(l.AllowAndRecord(ctx, "jo@example.com"), convey.ShouldBeTrue)
			}
			convey.So(l.AllowAndRecord(ctx, "jo@example.com"), convey.ShouldBeFalse)
			convey.So(l.AllowAndRecord(ctx, "other@example.com"), convey.ShouldBeTrue)
		})

		convey.Convey("And email matching ignores case and whitespace", func() {
			for i := 0; i < 3; i++ {
				convey.So(l.AllowAndRecord(ctx, "Jo@Example.com "), convey.ShouldBeTrue)
			}
			convey.So(l.AllowAndRecord(ctx, "jo@example.com"), convey.ShouldBeFalse)
		})

		convey.Convey("And the counter resets the next day", func() {
			for i := 0; i < 3; i++ {
				l.AllowAndRecord(ctx, "jo@example.com")
			}
			convey.So(l.AllowAndRecord(ctx, "jo@example.com"), convey.ShouldBeFalse)

			now = now.Add(24 * time.Hour)
			convey.So(l.AllowAndRecord(ctx, "jo@example.com"), convey.ShouldBeTrue)
		})
	})
}

func TestRemaining(t *testing.T) {
	convey.Convey("Given a limiter with the default cap", t, func() {
		ctx := context.Background()
		l := New()

		convey.Convey("Then Remaining counts down and floors at zero", func() {
			convey.So(l.Remaining(ctx, "jo@example.com"), convey.ShouldEqual, 5)
			l.AllowAndRecord(ctx, "jo@example.com")
			convey.So(l.Remaining(ctx, "jo@example.com"), convey.ShouldEqual, 4)
		})
	})
}

func TestRetentionSweep(t *testing.T) {
	convey.Convey("Given a limiter with old day buckets", t, func() {
		ctx := context.Background()
		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		l := New(WithRetention(48*time.Hour), WithClock(func() time.Time { return now }))

		l.AllowAndRecord(ctx, "jo@example.com")
		convey.So(l.Size(), convey.ShouldEqual, 1)

		convey.Convey("When time passes beyond retention", func() {
			now = now.Add(96 * time.Hour)
			l.AllowAndRecord(ctx, "fresh@example.com")

			convey.Convey("Then the stale email bucket is swept", func() {
				convey.So(l.Size(), convey.ShouldEqual, 1)
			})
		})
	})
}
