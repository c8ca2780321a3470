package profile_test

import (
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gravelgod/agf/internal/domain/profile"
)

var testNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func TestDecode(t *testing.T) {
	Convey("Given a loosely typed intake YAML", t, func() {
		doc := `
name: Jo Rider
email: jo@example.com
athlete_id: jo-rider
fitness_markers:
  ftp_watts: "245"
  weight_kg: 68.5
  height_cm: ""
training_history:
  years_cycling: "6-10"
  years_structured: "3"
  highest_weekly_hours: not-a-number
weekly_availability:
  cycling_hours_target: 12
health_factors:
  age: "41"
  sleep_quality: good
`
		a, err := profile.Decode(strings.NewReader(doc))

		Convey("Then quoted and broken scalars coerce instead of failing", func() {
			So(err, ShouldBeNil)
			So(float64(a.FitnessMarkers.FTPWatts), ShouldEqual, 245)
			So(float64(a.FitnessMarkers.WeightKg), ShouldEqual, 68.5)
			So(float64(a.FitnessMarkers.HeightCm), ShouldEqual, 0)
			So(float64(a.TrainingHistory.HighestWeeklyHours), ShouldEqual, 0)
			So(int(a.HealthFactors.Age), ShouldEqual, 41)
		})

		Convey("And structurally broken YAML does fail", func() {
			_, err := profile.Decode(strings.NewReader("name: [unclosed"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "decode athlete profile")
		})
	})
}

func TestAccessors(t *testing.T) {
	Convey("Given the defaulting accessors", t, func() {
		Convey("Age prefers the explicit value, then birthday, then default", func() {
			a := &profile.Athlete{}
			a.HealthFactors.Age = 44
			So(a.Age(testNow), ShouldEqual, 44)

			b := &profile.Athlete{Birthday: "1990-06-15"}
			So(b.Age(testNow), ShouldEqual, 35)

			c := &profile.Athlete{Birthday: "whenever"}
			So(c.Age(testNow), ShouldEqual, profile.DefaultAgeYears)
		})

		Convey("Sex normalizes to male or female", func() {
			So((&profile.Athlete{HealthFactors: profile.HealthFactors{Sex: "Female"}}).Sex(), ShouldEqual, "female")
			So((&profile.Athlete{HealthFactors: profile.HealthFactors{Sex: "M"}}).Sex(), ShouldEqual, "male")
			So((&profile.Athlete{}).Sex(), ShouldEqual, "male")
		})

		Convey("WKg prefers the explicit marker and falls back to ftp over weight", func() {
			a := &profile.Athlete{FitnessMarkers: profile.FitnessMarkers{WKg: 3.9}}
			So(a.WKg(), ShouldEqual, 3.9)

			b := &profile.Athlete{FitnessMarkers: profile.FitnessMarkers{FTPWatts: 280, WeightKg: 70}}
			So(b.WKg(), ShouldEqual, 4.0)

			So((&profile.Athlete{}).WKg(), ShouldEqual, 0)
		})

		Convey("AvailableHours walks target, total, current", func() {
			a := &profile.Athlete{}
			a.WeeklyAvailability.CyclingHoursTarget = 10
			a.WeeklyAvailability.TotalHoursAvailable = 14
			So(a.AvailableHours(), ShouldEqual, 10)

			b := &profile.Athlete{}
			b.WeeklyAvailability.TotalHoursAvailable = 14
			So(b.AvailableHours(), ShouldEqual, 14)

			c := &profile.Athlete{}
			c.TrainingHistory.CurrentWeeklyHours = 7
			So(c.AvailableHours(), ShouldEqual, 7)
		})

		Convey("ExerciseExclusions dedupes across injuries case-insensitively", func() {
			a := &profile.Athlete{}
			a.InjuryHistory.CurrentInjuries = []profile.Injury{{ExercisesToAvoid: []string{"Deadlift", "box jumps"}}}
			a.InjuryHistory.PastInjuries = []profile.Injury{{ExercisesToAvoid: []string{"deadlift", " ", "Overhead press"}}}
			So(a.ExerciseExclusions(), ShouldResemble, []string{"Deadlift", "box jumps", "Overhead press"})
		})

		Convey("FuelsDuringRides defaults to sometimes", func() {
			So((&profile.Athlete{}).FuelsDuringRides(), ShouldEqual, "sometimes")
			a := &profile.Athlete{Nutrition: profile.Nutrition{FuelsDuringRides: "Rarely"}}
			So(a.FuelsDuringRides(), ShouldEqual, "rarely")
		})
	})
}

func TestWarnings(t *testing.T) {
	Convey("Given an empty profile", t, func() {
		w := (&profile.Athlete{}).Warnings(testNow)

		Convey("Then every defaulted field is flagged", func() {
			So(w, ShouldHaveLength, 5)
			So(strings.Join(w, "; "), ShouldContainSubstring, "no FTP on file")
			So(strings.Join(w, "; "), ShouldContainSubstring, "no weekly availability")
		})
	})

	Convey("Given a complete profile", t, func() {
		a := &profile.Athlete{}
		a.FitnessMarkers = profile.FitnessMarkers{FTPWatts: 250, WeightKg: 70, HeightCm: 178}
		a.HealthFactors.Age = 38
		a.WeeklyAvailability.CyclingHoursTarget = 10

		Convey("Then no warnings are raised", func() {
			So(a.Warnings(testNow), ShouldBeEmpty)
		})
	})
}
