package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	convey.Convey("Given the default configuration", t, func() {
		cfg := New()

		convey.Convey("Then the business defaults are wired", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
			convey.So(cfg.DefaultPlanWeeks, convey.ShouldEqual, 12)
			convey.So(cfg.MaxSubmissionsPerDay, convey.ShouldEqual, 5)
			convey.So(cfg.TierHours["podium"].Min, convey.ShouldEqual, 18)
			convey.So(cfg.Ability.MastersAge, convey.ShouldEqual, 40)
			convey.So(cfg.Nutrition.CarbBuckets, convey.ShouldHaveLength, 4)
		})

		convey.Convey("And they validate", func() {
			convey.So(cfg.validate(), convey.ShouldBeNil)
		})
	})
}

func TestLoad(t *testing.T) {
	convey.Convey("Given the layered loader", t, func() {
		ctx := context.Background()

		convey.Convey("When nothing overrides, defaults come back", func() {
			cfg, err := Load(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.DefaultPlanWeeks, convey.ShouldEqual, 12)
		})

		convey.Convey("When an env var overrides a key", func() {
			t.Setenv("AGF_DEFAULT_PLAN_WEEKS", "16")
			cfg, err := Load(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.DefaultPlanWeeks, convey.ShouldEqual, 16)
		})

		convey.Convey("When a config file overrides a key", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			convey.So(os.WriteFile(path, []byte("addr: \":9000\"\nathletes_dir: /tmp/athletes\n"), 0o600), convey.ShouldBeNil)
			t.Setenv("AGF_CONFIG", path)

			cfg, err := Load(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":9000")
			convey.So(cfg.AthletesDir, convey.ShouldEqual, "/tmp/athletes")
		})

		convey.Convey("When the config file is missing, loading fails", func() {
			t.Setenv("AGF_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
			_, err := Load(ctx)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestValidate(t *testing.T) {
	convey.Convey("Given broken configurations", t, func() {
		convey.Convey("An empty addr is rejected", func() {
			cfg := New()
			cfg.Addr = ""
			convey.So(cfg.validate(), convey.ShouldNotBeNil)
		})

		convey.Convey("A non-positive plan length is rejected", func() {
			cfg := New()
			cfg.DefaultPlanWeeks = 0
			convey.So(cfg.validate(), convey.ShouldNotBeNil)
		})

		convey.Convey("A non-ascending tier range is rejected", func() {
			cfg := New()
			cfg.TierHours["compete"] = HourRange{Min: 12, Max: 12}
			convey.So(cfg.validate(), convey.ShouldNotBeNil)
		})
	})
}
