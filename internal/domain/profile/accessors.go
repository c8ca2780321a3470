package profile

import (
	"strings"
	"time"
)

// Default anthropometrics used when intake data is absent. Nutrition math
// needs something to run on; these mirror the form's documented fallbacks.
const (
	DefaultWeightKg = 70.0
	DefaultHeightCm = 175.0
	DefaultFTPWatts = 200.0
	DefaultAgeYears = 35
)

// Age resolves athlete age: explicit health_factors.age wins, then the
// birthday field, then DefaultAgeYears.
func (a *Athlete) Age(now time.Time) int {
	if v := int(a.HealthFactors.Age); v > 0 {
		return v
	}
	for _, layout := range []string{"2006-01-02", "01/02/2006", "January 2, 2006"} {
		bd, err := time.Parse(layout, strings.TrimSpace(a.Birthday))
		if err != nil {
			continue
		}
		age := now.Year() - bd.Year()
		if now.YearDay() < bd.YearDay() {
			age--
		}
		if age > 0 {
			return age
		}
	}
	return DefaultAgeYears
}

// Sex returns the normalized biological sex ("male" or "female"),
// defaulting to male when unknown.
func (a *Athlete) Sex() string {
	s := strings.ToLower(strings.TrimSpace(a.HealthFactors.Sex))
	if strings.HasPrefix(s, "f") {
		return "female"
	}
	return "male"
}

// WeightKg returns body mass with the documented default.
func (a *Athlete) WeightKg() float64 {
	return a.FitnessMarkers.WeightKg.Value(DefaultWeightKg)
}

// HeightCm returns height with the documented default.
func (a *Athlete) HeightCm() float64 {
	return a.FitnessMarkers.HeightCm.Value(DefaultHeightCm)
}

// FTPWatts returns current FTP with the documented default.
func (a *Athlete) FTPWatts() float64 {
	return a.FitnessMarkers.FTPWatts.Value(DefaultFTPWatts)
}

// HasFTP reports whether a real FTP value was supplied.
func (a *Athlete) HasFTP() bool {
	return a.FitnessMarkers.FTPWatts > 0
}

// WKg returns watts per kilogram, preferring the explicit marker and
// falling back to ftp/weight when both are present.
func (a *Athlete) WKg() float64 {
	if v := float64(a.FitnessMarkers.WKg); v > 0 {
		return v
	}
	if a.HasFTP() && a.FitnessMarkers.WeightKg > 0 {
		return float64(a.FitnessMarkers.FTPWatts) / float64(a.FitnessMarkers.WeightKg)
	}
	return 0
}

// AvailableHours is the weekly cycling time budget used for tier placement:
// the explicit cycling target, else total availability, else current volume.
func (a *Athlete) AvailableHours() float64 {
	if v := float64(a.WeeklyAvailability.CyclingHoursTarget); v > 0 {
		return v
	}
	if v := float64(a.WeeklyAvailability.TotalHoursAvailable); v > 0 {
		return v
	}
	return float64(a.TrainingHistory.CurrentWeeklyHours)
}

// CurrentHours is the present weekly training volume.
func (a *Athlete) CurrentHours() float64 {
	return float64(a.TrainingHistory.CurrentWeeklyHours)
}

// ExerciseExclusions collects every exercises_to_avoid entry across current
// and past injuries, deduplicated, order preserved.
func (a *Athlete) ExerciseExclusions() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range [][]Injury{a.InjuryHistory.CurrentInjuries, a.InjuryHistory.PastInjuries} {
		for _, inj := range list {
			for _, ex := range inj.ExercisesToAvoid {
				ex = strings.TrimSpace(ex)
				if ex == "" {
					continue
				}
				key := strings.ToLower(ex)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, ex)
			}
		}
	}
	return out
}

// FuelsDuringRides normalizes the fueling-habit answer, defaulting to
// "sometimes" when the field was left blank.
func (a *Athlete) FuelsDuringRides() string {
	s := strings.ToLower(strings.TrimSpace(a.Nutrition.FuelsDuringRides))
	if s == "" {
		return "sometimes"
	}
	return s
}

// RaceDates returns the athlete's race entries grouped by priority letter.
// The target race is synthesized as an A event only when the athlete
// supplied no explicit A list.
func (a *Athlete) RaceDates() map[string][]Race {
	out := map[string][]Race{}
	if len(a.AEvents) == 0 && a.TargetRace != nil && a.TargetRace.Name != "" {
		out["A"] = append(out["A"], *a.TargetRace)
	}
	out["A"] = append(out["A"], a.AEvents...)
	out["B"] = append(out["B"], a.BEvents...)
	out["C"] = append(out["C"], a.CEvents...)
	return out
}
