// Package model contains domain records passed between layers.
package model

import "github.com/gravelgod/agf/internal/domain/types"

// Week is one row of the periodization schedule.
type Week struct {
	Number         int                 `yaml:"week" json:"week"`
	Phase          types.Phase         `yaml:"phase" json:"phase"`
	StrengthPhase  types.StrengthPhase `yaml:"strength_phase" json:"strength_phase"`
	VolumeLabel    string              `yaml:"volume" json:"volume"`
	IsRecoveryWeek bool                `yaml:"is_recovery_week" json:"is_recovery_week"`
	Focus          string              `yaml:"focus" json:"focus"`
}

// RaceEvent is a normalized calendar entry. Date keeps the raw ISO string so
// an unparseable value survives round-trips; WeeksOut and Taper are derived.
type RaceEvent struct {
	Name         string              `yaml:"name" json:"name"`
	Date         string              `yaml:"date,omitempty" json:"date,omitempty"`
	Distance     float64             `yaml:"distance,omitempty" json:"distance,omitempty"`
	DistanceUnit string              `yaml:"distance_unit,omitempty" json:"distance_unit,omitempty"`
	GoalType     types.GoalType      `yaml:"goal_type,omitempty" json:"goal_type,omitempty"`
	Priority     types.EventPriority `yaml:"priority" json:"priority"`
	WeeksOut     int                 `yaml:"weeks_out" json:"weeks_out"`
	Taper        types.TaperPolicy   `yaml:"taper" json:"taper"`
}

// Blindspot is a profile-derived risk factor with a recommended action.
type Blindspot struct {
	Severity types.Severity `yaml:"severity" json:"severity"`
	Title    string         `yaml:"title" json:"title"`
	Issue    string         `yaml:"issue" json:"issue"`
	Risk     string         `yaml:"risk" json:"risk"`
	Action   string         `yaml:"action" json:"action"`
}

// DayTargets is the macro prescription for one day type.
type DayTargets struct {
	Calories int `yaml:"calories" json:"calories"`
	CarbsG   int `yaml:"carbs_g" json:"carbs_g"`
	ProteinG int `yaml:"protein_g" json:"protein_g"`
	FatG     int `yaml:"fat_g" json:"fat_g"`
}

// NutritionTargets is the daily baseline plus day-type adjustments.
type NutritionTargets struct {
	Calories   int        `yaml:"calories" json:"calories"`
	CarbsG     int        `yaml:"carbs_g" json:"carbs_g"`
	ProteinG   int        `yaml:"protein_g" json:"protein_g"`
	FatG       int        `yaml:"fat_g" json:"fat_g"`
	CarbsPct   int        `yaml:"carbs_pct" json:"carbs_pct"`
	ProteinPct int        `yaml:"protein_pct" json:"protein_pct"`
	FatPct     int        `yaml:"fat_pct" json:"fat_pct"`
	HardDay    DayTargets `yaml:"hard_day" json:"hard_day"`
	EasyDay    DayTargets `yaml:"easy_day" json:"easy_day"`
	RestDay    DayTargets `yaml:"rest_day" json:"rest_day"`
}

// DerivedParameters is the engine output: everything the plan generators,
// dashboard and guide renderers need, computed from the profile alone.
type DerivedParameters struct {
	AthleteID string `yaml:"athlete_id" json:"athlete_id"`

	Tier          types.Tier           `yaml:"tier" json:"tier"`
	TierReasoning string               `yaml:"tier_reasoning" json:"tier_reasoning"`
	RiderAbility  types.Ability        `yaml:"rider_ability" json:"rider_ability"`
	RiskLevel     types.RiskLevel      `yaml:"risk_level" json:"risk_level"`
	Limiter       types.Limiter        `yaml:"limiter" json:"limiter"`
	System        types.TrainingSystem `yaml:"training_system" json:"training_system"`

	PlanWeeks         int                 `yaml:"plan_weeks" json:"plan_weeks"`
	StrengthFrequency int                 `yaml:"strength_frequency" json:"strength_frequency"`
	EquipmentTier     types.EquipmentTier `yaml:"equipment_tier" json:"equipment_tier"`

	KeyDayCandidates      []string `yaml:"key_day_candidates" json:"key_day_candidates"`
	StrengthDayCandidates []string `yaml:"strength_day_candidates" json:"strength_day_candidates"`
	ExerciseExclusions    []string `yaml:"exercise_exclusions" json:"exercise_exclusions"`

	PhaseSchedule []Week           `yaml:"phase_schedule" json:"phase_schedule"`
	Nutrition     NutritionTargets `yaml:"nutrition_targets" json:"nutrition_targets"`

	Blindspots         []Blindspot `yaml:"blindspots" json:"blindspots"`
	CoachingPriorities []string    `yaml:"coaching_priorities" json:"coaching_priorities"`
	RaceCalendar       []RaceEvent `yaml:"race_calendar" json:"race_calendar"`

	// Warnings lists intake fields that fell back to defaults during
	// derivation.
	Warnings []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}
