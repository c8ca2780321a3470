// Package plan builds the week-by-week periodization schedule.
//
// The schedule is a pure function of the plan length. Three templates
// cover long (>=20 weeks), standard (>=12) and compressed plans; every
// other property (focus text, recovery cadence, volume label, strength
// phase) derives from the week number within its template.
package plan

import (
	"errors"
	"fmt"

	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/domain/types"
)

// ErrInvalidPlanWeeks is returned for non-positive plan lengths.
var ErrInvalidPlanWeeks = errors.New("plan weeks must be positive")

type phaseRange struct {
	start, end int
	phase      types.Phase
}

func phaseRanges(planWeeks int) []phaseRange {
	switch {
	case planWeeks >= 20:
		return []phaseRange{
			{1, 4, types.PhaseBase},
			{5, 12, types.PhaseBuild},
			{13, 18, types.PhasePeak},
			{19, planWeeks, types.PhaseTaper},
		}
	case planWeeks >= 12:
		return []phaseRange{
			{1, 3, types.PhaseBase},
			{4, 7, types.PhaseBuild},
			{8, 10, types.PhasePeak},
			{11, planWeeks, types.PhaseTaper},
		}
	default:
		return []phaseRange{
			{1, 2, types.PhaseBase},
			{3, 5, types.PhaseBuild},
			{6, planWeeks - 1, types.PhasePeak},
			{planWeeks, planWeeks, types.PhaseTaper},
		}
	}
}

// PhaseFor places a week in its training phase. Weeks outside every
// template range (possible only in degenerate short plans) land in Build.
func PhaseFor(week, planWeeks int) types.Phase {
	for _, r := range phaseRanges(planWeeks) {
		if week >= r.start && week <= r.end {
			return r.phase
		}
	}
	return types.PhaseBuild
}

// StrengthPhaseFor maps a week to its strength-training phase. The gym
// progression runs ahead of the bike: load before power, power before
// maintenance, maintenance through the taper.
func StrengthPhaseFor(week, planWeeks int) types.StrengthPhase {
	switch {
	case planWeeks >= 20:
		switch {
		case week <= 6:
			return types.StrengthLearnToLift
		case week <= 12:
			return types.StrengthLiftHeavy
		case week <= 18:
			return types.StrengthLiftFast
		default:
			return types.StrengthMaintain
		}
	case planWeeks >= 12:
		switch {
		case week <= 4:
			return types.StrengthLearnToLift
		case week <= 8:
			return types.StrengthLiftHeavy
		case week <= 10:
			return types.StrengthLiftFast
		default:
			return types.StrengthMaintain
		}
	default:
		switch {
		case week <= 2:
			return types.StrengthLearnToLift
		case week <= 4:
			return types.StrengthLiftHeavy
		case week <= planWeeks-1:
			return types.StrengthLiftFast
		default:
			return types.StrengthMaintain
		}
	}
}

var weekFocuses = map[types.Phase][]string{
	types.PhaseBase: {
		"Building aerobic foundation. Long Z2 rides establish mitochondrial density.",
		"Movement quality in strength. Learn the patterns before adding load.",
		"Establishing rhythm and consistency. Show up, do the work.",
		"Progressive volume increase. Each week slightly more than the last.",
	},
	types.PhaseBuild: {
		"Adding race-specific intensity. G-Spot intervals introduce discomfort.",
		"Strength shifts to heavier loads. Building max strength.",
		"Volume peaks. This is the hardest training block.",
		"Recovery week every 3-4 weeks. Absorb the training.",
		"Race simulation workouts. Practice execution under fatigue.",
		"Final volume push before taper begins.",
	},
	types.PhasePeak: {
		"Highest intensity, slightly reduced volume.",
		"Race pace work. Dialing in the exact effort you'll use.",
		"Strength shifts to power. Fast, explosive movements.",
		"Last hard weeks. Trust the fitness you've built.",
	},
	types.PhaseTaper: {
		"Volume drops significantly. Intensity stays sharp.",
		"Strength maintains, doesn't build. Don't lose adaptations.",
		"Freshening up. The hay is in the barn.",
		"Race week. Execute the plan.",
	},
}

var volumeLabels = [4]string{"Low", "Medium", "High", "Peak"}

// FocusFor returns the focus line for a week, cycling through the phase's
// focus list from the phase's first week.
func FocusFor(week, planWeeks int) string {
	phase := PhaseFor(week, planWeeks)
	start := 1
	for _, r := range phaseRanges(planWeeks) {
		if r.phase == phase {
			start = r.start
			break
		}
	}
	focuses := weekFocuses[phase]
	if len(focuses) == 0 {
		return "Progressive training."
	}
	idx := (week - start) % len(focuses)
	if idx < 0 {
		idx += len(focuses)
	}
	return focuses[idx]
}

// IsRecoveryWeek reports whether a week is a scheduled absorption week.
// Every fourth week recovers except inside the taper, which is already a
// volume reduction.
func IsRecoveryWeek(week, planWeeks int) bool {
	return week%4 == 0 && PhaseFor(week, planWeeks) != types.PhaseTaper
}

// Build produces the full week schedule for a plan.
func Build(planWeeks int) ([]model.Week, error) {
	if planWeeks <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlanWeeks, planWeeks)
	}
	weeks := make([]model.Week, 0, planWeeks)
	for w := 1; w <= planWeeks; w++ {
		recovery := IsRecoveryWeek(w, planWeeks)
		volume := volumeLabels[w%4]
		if recovery {
			volume = "Recovery"
		}
		weeks = append(weeks, model.Week{
			Number:         w,
			Phase:          PhaseFor(w, planWeeks),
			StrengthPhase:  StrengthPhaseFor(w, planWeeks),
			VolumeLabel:    volume,
			IsRecoveryWeek: recovery,
			Focus:          FocusFor(w, planWeeks),
		})
	}
	return weeks, nil
}
