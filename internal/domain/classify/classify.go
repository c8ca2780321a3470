// Package classify places an athlete in a volume tier, assigns rider
// ability, recommends a training system and names the primary limiter.
package classify

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gravelgod/agf/internal/config"
	"github.com/gravelgod/agf/internal/domain/profile"
	"github.com/gravelgod/agf/internal/domain/types"
)

// Classifier applies the tier and ability rules using configured
// thresholds. The zero value is not usable; construct with New.
type Classifier struct {
	cfg *config.Config
}

// New builds a Classifier over the given configuration.
func New(cfg *config.Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Tier places the athlete in a volume tier from their weekly cycling
// hours: the highest tier whose floor the hours clear. Athletes below
// the lowest floor still land in the lowest tier.
func (c *Classifier) Tier(a *profile.Athlete) types.Tier {
	hours := a.AvailableHours()
	order := []types.Tier{types.TierPodium, types.TierCompete, types.TierFinisher, types.TierAyahuasca}
	for _, t := range order {
		r, ok := c.cfg.TierHours[string(t)]
		if ok && hours >= float64(r.Min) {
			return t
		}
	}
	return types.TierAyahuasca
}

// TierReasoning explains a tier placement in one line.
func (c *Classifier) TierReasoning(a *profile.Athlete, tier types.Tier) string {
	hours := a.AvailableHours()
	reasoning := fmt.Sprintf("%gh available", hours)
	if cur := a.CurrentHours(); cur > 0 {
		reasoning += fmt.Sprintf(", %gh current", cur)
	}
	if peak := float64(a.TrainingHistory.HighestWeeklyHours); peak > 0 {
		reasoning += fmt.Sprintf(", can sustain %gh", peak)
	}
	goal := types.GoalFinish
	if a.TargetRace != nil {
		goal = types.ParseGoalType(a.TargetRace.GoalType)
	}
	if goal != types.GoalFinish && (tier == types.TierAyahuasca || tier == types.TierFinisher) {
		reasoning += fmt.Sprintf(" (goal mismatch: %s with %s tier)", goal, tier)
	}
	return reasoning
}

// Ability classifies rider ability. Athletes at or past the masters age
// get the masters ladder; everyone else is placed by career length,
// structured years and W/kg.
func (c *Classifier) Ability(a *profile.Athlete, now time.Time) types.Ability {
	ab := c.cfg.Ability
	age := a.Age(now)
	ys := float64(a.TrainingHistory.YearsStructured)
	wkg := a.WKg()

	if age >= ab.MastersAge {
		switch {
		case ys >= float64(ab.AdvancedYearsStructured) && wkg >= ab.MastersWKg:
			return types.AbilityMastersAdvanced
		case ys >= float64(ab.MastersIntermediateYears):
			return types.AbilityMastersIntermediate
		default:
			return types.AbilityMastersBeginner
		}
	}

	consistency := strings.TrimSpace(a.RecentTraining.Last12Weeks)
	longCareer := false
	for _, bucket := range ab.LongCareerBuckets {
		if strings.TrimSpace(a.TrainingHistory.YearsCycling) == bucket {
			longCareer = true
			break
		}
	}
	switch {
	case longCareer && ys >= float64(ab.AdvancedYearsStructured) && wkg >= ab.AdvancedWKg:
		return types.AbilityAdvanced
	case ys >= float64(ab.IntermediateYearsStructured) && wkg >= ab.MastersWKg:
		return types.AbilityIntermediate
	case ys >= 1 || consistency == "consistent":
		return types.AbilityIntermediate
	default:
		return types.AbilityBeginner
	}
}

// System recommends a training system from tier, structured experience
// and stated methodology preference.
func (c *Classifier) System(a *profile.Athlete, tier types.Tier) types.TrainingSystem {
	ys := float64(a.TrainingHistory.YearsStructured)
	pref := strings.ToLower(a.Methodology.PreferredApproach)

	switch {
	case tier == types.TierPodium && ys >= 5:
		return types.SystemBlock
	case (tier == types.TierCompete || tier == types.TierPodium) && ys >= 3:
		if strings.Contains(pref, "polarized") {
			return types.SystemPolarizedToBlock
		}
		return types.SystemPolarized
	case tier == types.TierFinisher:
		return types.SystemPolarized
	default:
		return types.SystemPolarizedFoundation
	}
}

// Limiter names the primary constraint holding the athlete back. Checks
// run in a fixed priority order and the first hit wins: durability, then
// power, then recovery, then consistency.
func (c *Classifier) Limiter(a *profile.Athlete) types.Limiter {
	if a.FuelsDuringRides() == "rarely" {
		return types.LimiterDurabilityFueling
	}
	if !a.HasFTP() {
		return types.LimiterDurabilityLongRide
	}
	if a.WKg() < 3.0 {
		return types.LimiterPower
	}
	if a.HealthFactors.SleepQuality == "poor" {
		return types.LimiterRecoverySleep
	}
	if float64(a.Lifestyle.AlcoholDrinksPerWeek) > float64(c.cfg.Risk.AlcoholRiskPerWeek) {
		return types.LimiterRecoveryAlcohol
	}
	if a.RecentTraining.Last12Weeks == "sporadic" {
		return types.LimiterConsistency
	}
	return types.LimiterNone
}

// EquipmentTier grades the training setup. A smart trainer, a power
// meter and loaded strength gear together make "high"; any two signals
// make "moderate".
func (c *Classifier) EquipmentTier(a *profile.Athlete) types.EquipmentTier {
	signals := 0
	if a.CyclingEquipment.SmartTrainer {
		signals++
	}
	if a.CyclingEquipment.PowerMeterBike {
		signals++
	}
	if hasLoadedStrengthGear(a.StrengthEquipment) {
		signals++
	}
	switch {
	case signals >= 3:
		return types.EquipmentHigh
	case signals >= 2:
		return types.EquipmentModerate
	default:
		return types.EquipmentMinimal
	}
}

func hasLoadedStrengthGear(equipment []string) bool {
	for _, e := range equipment {
		e = strings.ToLower(e)
		if strings.Contains(e, "barbell") || strings.Contains(e, "rack") || strings.Contains(e, "full gym") {
			return true
		}
	}
	return false
}

// StrengthFrequency chooses weekly gym sessions: the athlete's stated
// maximum, clamped to 1..3, defaulting to 2. A zero sessions answer is
// indistinguishable from an absent field in the YAML profile and reads
// as "not stated"; every plan carries at least one strength session.
func (c *Classifier) StrengthFrequency(a *profile.Athlete) int {
	f := a.WeeklyAvailability.StrengthSessionsMax.Value(2)
	if f < 1 {
		f = 1
	}
	if f > 3 {
		f = 3
	}
	return f
}

var weekdayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// KeyDayCandidates lists days suitable for the week's key sessions:
// available days the athlete flagged as key-day capable, in week order.
func (c *Classifier) KeyDayCandidates(a *profile.Athlete) []string {
	var out []string
	for _, day := range weekdayOrder {
		d, ok := dayFor(a.PreferredDays, day)
		if !ok {
			continue
		}
		if d.IsKeyDayOK && d.Availability != "unavailable" {
			out = append(out, titleCase(day))
		}
	}
	return out
}

// StrengthDayCandidates lists available days not reserved for key
// sessions, in week order. When everything is key-capable the key days
// double as strength days.
func (c *Classifier) StrengthDayCandidates(a *profile.Athlete) []string {
	var out, fallback []string
	for _, day := range weekdayOrder {
		d, ok := dayFor(a.PreferredDays, day)
		if !ok || d.Availability == "unavailable" {
			continue
		}
		fallback = append(fallback, titleCase(day))
		if !d.IsKeyDayOK {
			out = append(out, titleCase(day))
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func dayFor(days map[string]profile.DayAvailability, name string) (profile.DayAvailability, bool) {
	for k, v := range days {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return profile.DayAvailability{}, false
}

func titleCase(day string) string {
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + day[1:]
}

// SortDays orders day names Monday through Sunday; unknown names sink
// to the end keeping their relative order.
func SortDays(days []string) {
	idx := func(d string) int {
		for i, w := range weekdayOrder {
			if strings.EqualFold(d, w) {
				return i
			}
		}
		return len(weekdayOrder)
	}
	sort.SliceStable(days, func(i, j int) bool { return idx(days[i]) < idx(days[j]) })
}
