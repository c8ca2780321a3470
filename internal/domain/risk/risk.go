// Package risk derives the athlete's risk level, blindspot cards and
// near-term coaching priorities from the intake profile.
package risk

import (
	"fmt"
	"strings"
	"time"

	"github.com/gravelgod/agf/internal/config"
	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/domain/profile"
	"github.com/gravelgod/agf/internal/domain/types"
)

// Assessor applies the risk rules using configured thresholds.
type Assessor struct {
	cfg *config.Config
}

// New builds an Assessor over the given configuration.
func New(cfg *config.Config) *Assessor {
	return &Assessor{cfg: cfg}
}

// Level grades overall athlete risk. A current injury of moderate or
// worse severity is HIGH on its own; any single softer flag is MODERATE.
func (r *Assessor) Level(a *profile.Athlete) types.RiskLevel {
	injuries := a.InjuryHistory.CurrentInjuries
	for _, inj := range injuries {
		switch types.Severity(strings.ToLower(inj.Severity)) {
		case types.SeverityModerate, types.SeveritySignificant:
			return types.RiskHigh
		}
	}
	if len(injuries) > 0 {
		return types.RiskModerate
	}
	switch a.HealthFactors.StressLevel {
	case "high", "very_high":
		return types.RiskModerate
	}
	if a.HealthFactors.SleepQuality == "poor" {
		return types.RiskModerate
	}
	for k, v := range a.MovementLimitations {
		if k == "notes" {
			continue
		}
		switch v {
		case "limited", "significantly_limited", "painful":
			return types.RiskModerate
		}
	}
	if a.ScheduleConstraints.TravelFrequency == "frequent" {
		return types.RiskModerate
	}
	if float64(a.Lifestyle.AlcoholDrinksPerWeek) > float64(r.cfg.Risk.AlcoholRiskPerWeek) {
		return types.RiskModerate
	}
	if a.FuelsDuringRides() == "rarely" {
		return types.RiskModerate
	}
	return types.RiskLow
}

// underfuelSignals counts independent indicators of chronic underfueling.
func (r *Assessor) underfuelSignals(a *profile.Athlete) []string {
	var signals []string
	if carbs := float64(a.Nutrition.DailyCarbsGPerKg); carbs > 0 && carbs < r.cfg.Risk.UnderfuelCarbsGPerKg {
		signals = append(signals, fmt.Sprintf("daily carbs around %.1fg/kg", carbs))
	}
	if a.FuelsDuringRides() == "rarely" {
		signals = append(signals, "rarely fuels during rides")
	}
	if a.Nutrition.DisorderedEatingHistory {
		signals = append(signals, "disordered eating history")
	}
	if types.ParseWeightGoal(a.Nutrition.WeightGoal).IsLoss() {
		signals = append(signals, "weight loss goal during training")
	}
	if a.AvailableHours() >= float64(r.cfg.Risk.HighVolumeHours) && strings.TrimSpace(a.Nutrition.FuelingStrategy) == "" {
		signals = append(signals, "high volume with no fueling strategy")
	}
	return signals
}

// Blindspots builds the personalized risk cards. The list is never
// empty; a clean profile gets the explicit all-clear card.
func (r *Assessor) Blindspots(a *profile.Athlete, equipment types.EquipmentTier, now time.Time) []model.Blindspot {
	var out []model.Blindspot

	sleepQuality := a.HealthFactors.SleepQuality
	sleepHours := float64(a.HealthFactors.SleepHoursAvg)
	if sleepQuality == "poor" || sleepQuality == "fair" || (sleepHours > 0 && sleepHours < float64(r.cfg.Risk.SleepShortHours)) {
		out = append(out, model.Blindspot{
			Severity: types.SeverityHigh,
			Title:    "Recovery Deficit",
			Issue:    fmt.Sprintf("You reported %s sleep quality and ~%g hours/night.", sleepQuality, sleepHours),
			Risk:     "Poor sleep limits adaptation and increases injury risk. You'll accumulate fatigue faster than you recover from it.",
			Action:   "Prioritize sleep above all else. Consider reducing training volume by 10-15% until sleep improves. No amount of training overcomes poor recovery.",
		})
	}

	if stress := a.HealthFactors.StressLevel; stress == "high" || stress == "very_high" {
		out = append(out, model.Blindspot{
			Severity: types.SeverityHigh,
			Title:    "Life Stress Overload",
			Issue:    fmt.Sprintf("You reported %s stress levels.", strings.ReplaceAll(stress, "_", " ")),
			Risk:     "Training is a stressor. Life stress + training stress = total stress. High total stress leads to overtraining, illness, and burnout.",
			Action:   "Monitor HRV and resting heart rate closely. Be willing to skip hard sessions during stressful weeks. The plan adapts to you, not vice versa.",
		})
	}

	if bg := a.TrainingHistory.StrengthBackground; bg == "none" || bg == "beginner" {
		out = append(out, model.Blindspot{
			Severity: types.SeverityMedium,
			Title:    "Movement Quality Gap",
			Issue:    fmt.Sprintf("You're new to structured strength training (%s).", bg),
			Risk:     "Poor movement patterns lead to injury, especially under fatigue. Strength exercises performed incorrectly do more harm than good.",
			Action:   "Watch EVERY video demo before attempting exercises. Start lighter than you think necessary. Master movement before adding load. If something hurts, stop.",
		})
	}

	current := a.InjuryHistory.CurrentInjuries
	past := a.InjuryHistory.PastInjuries
	if len(current)+len(past) > 0 {
		areas := injuryAreas(current, past)
		severity := types.SeverityMedium
		if len(current) > 0 {
			severity = types.SeverityHigh
		}
		out = append(out, model.Blindspot{
			Severity: severity,
			Title:    "Injury Management Required",
			Issue:    fmt.Sprintf("History of issues with: %s.", strings.Join(areas, ", ")),
			Risk:     "Past injuries often become recurring injuries. The tissue is weaker and the movement pattern may be compromised.",
			Action:   "Modified exercises are provided in your plan. If pain returns, stop immediately and consult a professional. Prevention >>> treatment.",
		})
	}

	if signals := r.underfuelSignals(a); len(signals) > 0 {
		severity := types.SeverityMedium
		if a.Nutrition.DisorderedEatingHistory || len(signals) >= 2 {
			severity = types.SeverityHigh
		}
		out = append(out, model.Blindspot{
			Severity: severity,
			Title:    "Underfueling Risk",
			Issue:    fmt.Sprintf("Signals: %s.", strings.Join(signals, "; ")),
			Risk:     "Chronic underfueling caps adaptation, wrecks hormones, and turns big training weeks into a hole you dig instead of fitness you build.",
			Action:   "Eat carbs during every ride over 90 minutes. Do not restrict on training days. If this pattern is familiar, talk to us before we load volume.",
		})
	}

	if alcohol := float64(a.Lifestyle.AlcoholDrinksPerWeek); alcohol > float64(r.cfg.Risk.AlcoholModeratePerWeek) {
		severity := types.SeverityMedium
		if alcohol >= float64(r.cfg.Risk.AlcoholHighPerWeek) {
			severity = types.SeverityHigh
		}
		target := alcohol - 3
		if target < 0 {
			target = 0
		}
		out = append(out, model.Blindspot{
			Severity: severity,
			Title:    "Alcohol Load",
			Issue:    fmt.Sprintf("You reported %g drinks/week.", alcohol),
			Risk:     "Alcohol suppresses recovery hormones and fragments sleep. Training stress lands on a body that never fully repairs.",
			Action:   fmt.Sprintf("Reduce to under %g/week during training blocks. Avoid alcohol within 3 hours of sleep.", target),
		})
	}

	if caffeine := float64(a.Lifestyle.CaffeineMgPerDay); caffeine > float64(r.cfg.Risk.CaffeineHighMgPerDay) {
		out = append(out, model.Blindspot{
			Severity: types.SeverityMedium,
			Title:    "Caffeine Dependence",
			Issue:    fmt.Sprintf("You reported ~%gmg caffeine/day.", caffeine),
			Risk:     "Heavy habitual caffeine masks accumulating fatigue and blunts its race-day effect. You lose your most useful legal ergogenic aid.",
			Action:   "Cycle off periodically. Use strategically on race and key session days only.",
		})
	}

	if equipment == types.EquipmentMinimal {
		out = append(out, model.Blindspot{
			Severity: types.SeverityLow,
			Title:    "Equipment Limitations",
			Issue:    "You have minimal strength equipment available.",
			Risk:     "Some exercises will require substitutions. Progression may plateau earlier without heavier loads.",
			Action:   "Bodyweight progressions can take you far. Consider adding a single kettlebell or adjustable dumbbells for more options. Resistance bands are cheap and versatile.",
		})
	}

	if total := float64(a.WeeklyAvailability.TotalHoursAvailable); total > 0 && total < float64(r.cfg.Risk.TimeCrunchedHours) {
		out = append(out, model.Blindspot{
			Severity: types.SeverityMedium,
			Title:    "Time-Crunched Reality",
			Issue:    fmt.Sprintf("You have ~%g hours/week available for training.", total),
			Risk:     "Limited time means every session must count. There's less margin for error or missed workouts.",
			Action:   "Prioritize ruthlessly. Never skip a key session. Be willing to shorten easy rides. Indoor training is your friend for time efficiency.",
		})
	}

	if age := a.Age(now); age >= r.cfg.Risk.MastersBlindspotAge {
		out = append(out, model.Blindspot{
			Severity: types.SeverityMedium,
			Title:    "Masters Recovery Window",
			Issue:    fmt.Sprintf("At %d, recovery physiology has changed.", age),
			Risk:     "What worked at 25 doesn't work at 45+. Ignoring this leads to persistent fatigue, illness, and injury.",
			Action:   "Extra rest day every 2-3 weeks. Sleep becomes even more critical. Strength training is mandatory for maintaining fast-twitch fibers.",
		})
	}

	if len(out) == 0 {
		out = append(out, model.Blindspot{
			Severity: types.SeverityLow,
			Title:    "No Major Blindspots Identified",
			Issue:    "Your profile doesn't reveal obvious risk factors.",
			Risk:     "This doesn't mean you're invincible. Stay vigilant for the unexpected.",
			Action:   "Monitor your body's signals. If something feels off, investigate before it becomes a problem.",
		})
	}
	return out
}

func injuryAreas(lists ...[]profile.Injury) []string {
	seen := make(map[string]struct{})
	var areas []string
	for _, list := range lists {
		for _, inj := range list {
			area := inj.Area
			if area == "" {
				area = "unknown"
			}
			if _, ok := seen[area]; ok {
				continue
			}
			seen[area] = struct{}{}
			areas = append(areas, area)
		}
	}
	return areas
}

// Priorities lists the next block's coaching priorities in fixed order,
// capped at the configured maximum.
func (r *Assessor) Priorities(a *profile.Athlete, exclusions []string, now time.Time) []string {
	var out []string

	if age := ftpAgeWeeks(a.FitnessMarkers.FTPDate, now); age > 0 && age > r.cfg.Risk.FTPStaleWeeks {
		out = append(out, fmt.Sprintf("Retest FTP (current test is %d weeks old)", age))
	} else if !a.HasFTP() {
		out = append(out, "Establish FTP baseline (no current test)")
	}

	if a.FuelsDuringRides() == "rarely" {
		out = append(out, "Establish fueling protocol (inconsistent flagged)")
	}

	if !a.HasFTP() {
		out = append(out, "Build long ride duration (currently unknown max)")
	}

	if alcohol := float64(a.Lifestyle.AlcoholDrinksPerWeek); alcohol > float64(r.cfg.Risk.AlcoholModeratePerWeek) {
		out = append(out, fmt.Sprintf("Address alcohol impact on recovery (currently %g/week)", alcohol))
	}

	sleepQuality := a.HealthFactors.SleepQuality
	sleepHours := float64(a.HealthFactors.SleepHoursAvg)
	if sleepQuality == "poor" || (sleepHours > 0 && sleepHours < float64(r.cfg.Risk.SleepShortHours)) {
		out = append(out, fmt.Sprintf("Optimize sleep (quality: %s, hours: %g)", sleepQuality, sleepHours))
	}

	if n := len(exclusions); n > 0 {
		out = append(out, fmt.Sprintf("Verify exercise substitutions working (%d exclusions)", n))
	}

	if max := r.cfg.Risk.MaxPriorities; len(out) > max {
		out = out[:max]
	}
	return out
}

func ftpAgeWeeks(ftpDate string, now time.Time) int {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(ftpDate))
	if err != nil {
		return 0
	}
	return int(now.Sub(d).Hours() / 24 / 7)
}
