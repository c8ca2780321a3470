package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/domain/profile"
	"github.com/gravelgod/agf/internal/domain/types"
	"github.com/gravelgod/agf/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestProfileRoundTrip(t *testing.T) {
	convey.Convey("Given a store rooted in a temp directory", t, func() {
		ctx := context.Background()
		s := New(WithRoot(t.TempDir()))

		a := &profile.Athlete{Name: "Jo Rider", Email: "jo@example.com", AthleteID: "jo-rider"}
		a.FitnessMarkers.FTPWatts = 250

		convey.Convey("When saving and reloading a profile", func() {
			convey.So(s.SaveProfile(ctx, a), convey.ShouldBeNil)

			got, err := s.LoadProfile(ctx, "jo-rider")
			convey.So(err, convey.ShouldBeNil)
			convey.So(got.Name, convey.ShouldEqual, "Jo Rider")
			convey.So(float64(got.FitnessMarkers.FTPWatts), convey.ShouldEqual, 250)

			convey.Convey("Then the file lands in the per-athlete layout", func() {
				_, err := os.Stat(filepath.Join(s.Root(), "jo-rider", "profile.yaml"))
				convey.So(err, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading an unknown athlete", func() {
			_, err := s.LoadProfile(ctx, "nobody")
			convey.So(errors.Is(err, ErrNotFound), convey.ShouldBeTrue)
		})

		convey.Convey("When the stored profile has no embedded id", func() {
			convey.So(os.MkdirAll(filepath.Join(s.Root(), "bare"), 0o755), convey.ShouldBeNil)
			convey.So(os.WriteFile(filepath.Join(s.Root(), "bare", "profile.yaml"),
				[]byte("name: No ID\n"), 0o644), convey.ShouldBeNil)

			got, err := s.LoadProfile(ctx, "bare")
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the directory name backfills the id", func() {
				convey.So(got.AthleteID, convey.ShouldEqual, "bare")
			})
		})

		convey.Convey("When saving without an athlete id", func() {
			convey.So(s.SaveProfile(ctx, &profile.Athlete{Name: "Anon"}), convey.ShouldNotBeNil)
		})
	})
}

func TestDerivedRoundTrip(t *testing.T) {
	convey.Convey("Given a store rooted in a temp directory", t, func() {
		ctx := context.Background()
		s := New(WithRoot(t.TempDir()))

		d := &model.DerivedParameters{
			AthleteID: "jo-rider",
			Tier:      types.TierCompete,
			RiskLevel: types.RiskLow,
			PlanWeeks: 12,
		}

		convey.Convey("When saving and reloading derived parameters", func() {
			convey.So(s.SaveDerived(ctx, d), convey.ShouldBeNil)

			got, err := s.LoadDerived(ctx, "jo-rider")
			convey.So(err, convey.ShouldBeNil)
			convey.So(got.Tier, convey.ShouldEqual, types.TierCompete)
			convey.So(got.PlanWeeks, convey.ShouldEqual, 12)
		})

		convey.Convey("When derived parameters were never computed", func() {
			_, err := s.LoadDerived(ctx, "jo-rider")
			convey.So(errors.Is(err, ErrNotFound), convey.ShouldBeTrue)
		})
	})
}

func TestList(t *testing.T) {
	convey.Convey("Given a store with several athletes", t, func() {
		ctx := context.Background()
		s := New(WithRoot(t.TempDir()))

		for _, id := range []string{"zed", "anna", "mike"} {
			convey.So(s.SaveProfile(ctx, &profile.Athlete{AthleteID: id}), convey.ShouldBeNil)
		}
		// A directory without a profile file is not an athlete.
		convey.So(os.MkdirAll(filepath.Join(s.Root(), "empty-dir"), 0o755), convey.ShouldBeNil)

		convey.Convey("Then List returns profile-bearing directories sorted", func() {
			ids, err := s.List(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(ids, convey.ShouldResemble, []string{"anna", "mike", "zed"})
		})
	})

	convey.Convey("Given a store whose root does not exist yet", t, func() {
		s := New(WithRoot(filepath.Join(t.TempDir(), "missing")))
		ids, err := s.List(context.Background())
		convey.So(err, convey.ShouldBeNil)
		convey.So(ids, convey.ShouldBeEmpty)
	})
}
