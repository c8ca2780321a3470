// Package types contains the closed vocabularies shared across the engine.
// The intake layer produces free-form strings; everything past the profile
// boundary works with these types so a typo'd value cannot travel silently.
package types

import "strings"

// Tier is the weekly-hour-volume bucket an athlete is planned at.
type Tier string

// Tier values, ordered by volume.
const (
	TierAyahuasca Tier = "ayahuasca"
	TierFinisher  Tier = "finisher"
	TierCompete   Tier = "compete"
	TierPodium    Tier = "podium"
)

// ParseTier maps a raw profile string onto a Tier, defaulting to compete.
func ParseTier(s string) Tier {
	switch t := Tier(strings.ToLower(strings.TrimSpace(s))); t {
	case TierAyahuasca, TierFinisher, TierCompete, TierPodium:
		return t
	default:
		return TierCompete
	}
}

// Ability is the experience/fitness classification of a rider.
type Ability string

// Ability labels. Masters variants apply from age 40 up.
const (
	AbilityBeginner            Ability = "BEGINNER"
	AbilityIntermediate        Ability = "INTERMEDIATE"
	AbilityAdvanced            Ability = "ADVANCED"
	AbilityMastersBeginner     Ability = "MASTERS BEGINNER"
	AbilityMastersIntermediate Ability = "MASTERS INTERMEDIATE"
	AbilityMastersAdvanced     Ability = "MASTERS ADVANCED"
)

// IsMasters reports whether the label is one of the masters variants.
func (a Ability) IsMasters() bool {
	return strings.HasPrefix(string(a), "MASTERS")
}

// RiskLevel is the overall athlete risk classification.
type RiskLevel string

// Risk levels. The worst single signal wins.
const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// Severity grades an individual blindspot or injury.
type Severity string

// Severity values. Injuries use minor/moderate/significant; blindspots use
// low/medium/high.
const (
	SeverityLow         Severity = "low"
	SeverityMedium      Severity = "medium"
	SeverityHigh        Severity = "high"
	SeverityMinor       Severity = "minor"
	SeverityModerate    Severity = "moderate"
	SeveritySignificant Severity = "significant"
)

// Phase is a cycling periodization segment.
type Phase string

// Cycling phases in plan order.
const (
	PhaseBase  Phase = "Base"
	PhaseBuild Phase = "Build"
	PhasePeak  Phase = "Peak"
	PhaseTaper Phase = "Taper"
)

// StrengthPhase is the strength segment running parallel to a cycling phase.
type StrengthPhase string

// Strength phases in plan order.
const (
	StrengthLearnToLift StrengthPhase = "Learn to Lift"
	StrengthLiftHeavy   StrengthPhase = "Lift Heavy Sh*t"
	StrengthLiftFast    StrengthPhase = "Lift Fast"
	StrengthMaintain    StrengthPhase = "Don't Lose It"
)

// GoalType describes what the athlete wants from the target race.
type GoalType string

// Goal types accepted on a race entry.
const (
	GoalFinish  GoalType = "finish"
	GoalCompete GoalType = "compete"
	GoalPodium  GoalType = "podium"
	GoalPR      GoalType = "pr"
)

// ParseGoalType maps a raw string to a GoalType, defaulting to finish.
func ParseGoalType(s string) GoalType {
	switch g := GoalType(strings.ToLower(strings.TrimSpace(s))); g {
	case GoalFinish, GoalCompete, GoalPodium, GoalPR:
		return g
	default:
		return GoalFinish
	}
}

// WeightGoal describes the body-composition goal driving nutrition targets.
type WeightGoal string

// Weight goals.
const (
	WeightMaintain WeightGoal = "maintain"
	WeightLoseSlow WeightGoal = "lose_slow"
	WeightLoseFast WeightGoal = "lose_fast"
	WeightGain     WeightGoal = "gain"
)

// IsLoss reports whether the goal is a weight-loss goal.
func (w WeightGoal) IsLoss() bool {
	return w == WeightLoseSlow || w == WeightLoseFast
}

// ParseWeightGoal maps a raw string to a WeightGoal, defaulting to maintain.
func ParseWeightGoal(s string) WeightGoal {
	switch w := WeightGoal(strings.ToLower(strings.TrimSpace(s))); w {
	case WeightMaintain, WeightLoseSlow, WeightLoseFast, WeightGain:
		return w
	default:
		return WeightMaintain
	}
}

// TrainingSystem is the recommended methodology for the plan.
type TrainingSystem string

// Training system recommendations.
const (
	SystemBlock               TrainingSystem = "BLOCK PERIODIZATION"
	SystemPolarized           TrainingSystem = "POLARIZED"
	SystemPolarizedToBlock    TrainingSystem = "POLARIZED → BLOCK (transition)"
	SystemPolarizedFoundation TrainingSystem = "POLARIZED (foundation)"
)

// EquipmentTier buckets the strength equipment available to the athlete.
type EquipmentTier string

// Equipment tiers.
const (
	EquipmentMinimal  EquipmentTier = "minimal"
	EquipmentModerate EquipmentTier = "moderate"
	EquipmentHigh     EquipmentTier = "high"
)

// EventPriority is the A/B/C race classification governing taper depth.
type EventPriority string

// Event priorities.
const (
	PriorityA EventPriority = "A"
	PriorityB EventPriority = "B"
	PriorityC EventPriority = "C"
)

// ParseEventPriority maps a raw string to an EventPriority, defaulting to C.
func ParseEventPriority(s string) EventPriority {
	switch p := EventPriority(strings.ToUpper(strings.TrimSpace(s))); p {
	case PriorityA, PriorityB, PriorityC:
		return p
	default:
		return PriorityC
	}
}

// TaperPolicy is derived from an event's priority.
type TaperPolicy string

// Taper policies.
const (
	TaperFull TaperPolicy = "full_2_week"
	TaperMini TaperPolicy = "mini_1_week"
	TaperNone TaperPolicy = "none"
)

// TaperFor returns the taper policy an event priority demands.
func TaperFor(p EventPriority) TaperPolicy {
	switch p {
	case PriorityA:
		return TaperFull
	case PriorityB:
		return TaperMini
	default:
		return TaperNone
	}
}

// Limiter is the single factor judged most limiting to performance.
type Limiter string

// Limiter values. LimiterNone means nothing stood out.
const (
	LimiterDurabilityFueling  Limiter = "DURABILITY (fueling)"
	LimiterDurabilityLongRide Limiter = "DURABILITY (no long ride data)"
	LimiterPower              Limiter = "POWER (low W/kg)"
	LimiterRecoverySleep      Limiter = "RECOVERY (sleep)"
	LimiterRecoveryAlcohol    Limiter = "RECOVERY (alcohol)"
	LimiterConsistency        Limiter = "CONSISTENCY"
	LimiterNone               Limiter = "NONE IDENTIFIED"
)
