package plan_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gravelgod/agf/internal/domain/plan"
	"github.com/gravelgod/agf/internal/domain/types"
)

func TestBuild(t *testing.T) {
	Convey("Given plan lengths across all three templates", t, func() {
		Convey("When building a 24 week plan", func() {
			weeks, err := plan.Build(24)

			So(err, ShouldBeNil)
			So(weeks, ShouldHaveLength, 24)

			Convey("Then phases follow the long template", func() {
				So(weeks[0].Phase, ShouldEqual, types.PhaseBase)
				So(weeks[3].Phase, ShouldEqual, types.PhaseBase)
				So(weeks[4].Phase, ShouldEqual, types.PhaseBuild)
				So(weeks[11].Phase, ShouldEqual, types.PhaseBuild)
				So(weeks[12].Phase, ShouldEqual, types.PhasePeak)
				So(weeks[17].Phase, ShouldEqual, types.PhasePeak)
				So(weeks[18].Phase, ShouldEqual, types.PhaseTaper)
				So(weeks[23].Phase, ShouldEqual, types.PhaseTaper)
			})

			Convey("And week numbers are contiguous from 1", func() {
				for i, w := range weeks {
					So(w.Number, ShouldEqual, i+1)
				}
			})

			Convey("And strength phases run the long ladder", func() {
				So(weeks[5].StrengthPhase, ShouldEqual, types.StrengthLearnToLift)
				So(weeks[6].StrengthPhase, ShouldEqual, types.StrengthLiftHeavy)
				So(weeks[12].StrengthPhase, ShouldEqual, types.StrengthLiftFast)
				So(weeks[18].StrengthPhase, ShouldEqual, types.StrengthMaintain)
			})
		})

		Convey("When building a 12 week plan", func() {
			weeks, err := plan.Build(12)

			So(err, ShouldBeNil)
			So(weeks, ShouldHaveLength, 12)

			Convey("Then phases follow the standard template", func() {
				So(weeks[2].Phase, ShouldEqual, types.PhaseBase)
				So(weeks[3].Phase, ShouldEqual, types.PhaseBuild)
				So(weeks[7].Phase, ShouldEqual, types.PhasePeak)
				So(weeks[10].Phase, ShouldEqual, types.PhaseTaper)
			})

			Convey("And week 8 recovers even though it sits in Peak", func() {
				So(weeks[7].IsRecoveryWeek, ShouldBeTrue)
				So(weeks[7].VolumeLabel, ShouldEqual, "Recovery")
			})

			Convey("And week 12 does not recover because it is Taper", func() {
				So(weeks[11].IsRecoveryWeek, ShouldBeFalse)
			})
		})

		Convey("When building an 8 week plan", func() {
			weeks, err := plan.Build(8)

			So(err, ShouldBeNil)
			So(weeks[1].Phase, ShouldEqual, types.PhaseBase)
			So(weeks[2].Phase, ShouldEqual, types.PhaseBuild)
			So(weeks[5].Phase, ShouldEqual, types.PhasePeak)
			So(weeks[7].Phase, ShouldEqual, types.PhaseTaper)
		})

		Convey("When building a non-positive plan", func() {
			_, err := plan.Build(0)

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "plan weeks must be positive")
		})
	})
}

func TestRecoveryCadence(t *testing.T) {
	Convey("Given a 24 week plan", t, func() {
		Convey("Then a week recovers exactly when divisible by four outside the taper", func() {
			for w := 1; w <= 24; w++ {
				want := w%4 == 0 && plan.PhaseFor(w, 24) != types.PhaseTaper
				So(plan.IsRecoveryWeek(w, 24), ShouldEqual, want)
			}
		})

		Convey("And recovery weeks carry the Recovery volume label", func() {
			weeks, err := plan.Build(24)
			So(err, ShouldBeNil)
			for _, w := range weeks {
				if w.IsRecoveryWeek {
					So(w.VolumeLabel, ShouldEqual, "Recovery")
				} else {
					So(w.VolumeLabel, ShouldBeIn, "Low", "Medium", "High", "Peak")
				}
			}
		})
	})
}

func TestFocusFor(t *testing.T) {
	Convey("Given the focus rotation", t, func() {
		Convey("Then the first week of a phase gets that phase's first focus", func() {
			So(plan.FocusFor(1, 24), ShouldEqual, "Building aerobic foundation. Long Z2 rides establish mitochondrial density.")
			So(plan.FocusFor(5, 24), ShouldEqual, "Adding race-specific intensity. G-Spot intervals introduce discomfort.")
			So(plan.FocusFor(13, 24), ShouldEqual, "Highest intensity, slightly reduced volume.")
			So(plan.FocusFor(19, 24), ShouldEqual, "Volume drops significantly. Intensity stays sharp.")
		})

		Convey("And the rotation wraps within long phases", func() {
			// Build runs 5..12 in the long template with six focus lines.
			So(plan.FocusFor(11, 24), ShouldEqual, "Adding race-specific intensity. G-Spot intervals introduce discomfort.")
			So(plan.FocusFor(12, 24), ShouldEqual, "Strength shifts to heavier loads. Building max strength.")
		})

		Convey("And every built week carries a non-empty focus", func() {
			for _, n := range []int{6, 12, 24} {
				weeks, err := plan.Build(n)
				So(err, ShouldBeNil)
				for _, w := range weeks {
					So(w.Focus, ShouldNotBeEmpty)
				}
			}
		})
	})
}
