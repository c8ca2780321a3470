// Package config defines engine configuration and loading hooks.
//
// Every threshold the classifiers use lives here rather than inline in the
// rule code: the numbers are coaching heuristics, not physiology, and they
// get retuned without touching control flow. Defaults reproduce the values
// the coaching business has been running with.
package config

// HourRange bounds a tier's weekly training hours.
type HourRange struct {
	Min int `koanf:"min"`
	Max int `koanf:"max"`
}

// Ability holds the classifier thresholds for experience/fitness labels.
type Ability struct {
	// MastersAge is the age at which the masters branch applies.
	MastersAge int `koanf:"masters_age"`

	// Years of structured training gating each label.
	AdvancedYearsStructured     int `koanf:"advanced_years_structured"`
	IntermediateYearsStructured int `koanf:"intermediate_years_structured"`
	MastersIntermediateYears    int `koanf:"masters_intermediate_years"`

	// W/kg gates. Advanced requires the higher bar outside the masters branch.
	AdvancedWKg float64 `koanf:"advanced_w_kg"`
	MastersWKg  float64 `koanf:"masters_w_kg"`

	// LongCareerBuckets are the years-cycling answers counted as a long career.
	LongCareerBuckets []string `koanf:"long_career_buckets"`
}

// Risk holds the assessor thresholds.
type Risk struct {
	AlcoholHighPerWeek     int     `koanf:"alcohol_high_per_week"`     // blindspot escalates to high severity
	AlcoholModeratePerWeek int     `koanf:"alcohol_moderate_per_week"` // blindspot at medium severity; also a coaching priority
	AlcoholRiskPerWeek     int     `koanf:"alcohol_risk_per_week"`     // contributes to MODERATE risk level
	CaffeineHighMgPerDay   int     `koanf:"caffeine_high_mg_per_day"`
	SleepShortHours        float64 `koanf:"sleep_short_hours"`
	UnderfuelCarbsGPerKg   float64 `koanf:"underfuel_carbs_g_per_kg"`
	HighVolumeHours        float64 `koanf:"high_volume_hours"` // weekly hours above which missing fueling strategy is a signal
	FTPStaleWeeks          int     `koanf:"ftp_stale_weeks"`
	TimeCrunchedHours      float64 `koanf:"time_crunched_hours"`
	MastersBlindspotAge    int     `koanf:"masters_blindspot_age"`
	MaxPriorities          int     `koanf:"max_priorities"`
}

// CarbBucket selects a carbohydrate g/kg rate by weekly training hours.
type CarbBucket struct {
	MaxHours float64 `koanf:"max_hours"`
	GPerKg   float64 `koanf:"g_per_kg"`
}

// Nutrition holds the macro calculator constants.
type Nutrition struct {
	DefaultWeightKg float64 `koanf:"default_weight_kg"`
	DefaultHeightCm float64 `koanf:"default_height_cm"`
	DefaultFTPWatts float64 `koanf:"default_ftp_watts"`

	// ActivityMultipliers maps daily activity level to a TDEE multiplier.
	ActivityMultipliers map[string]float64 `koanf:"activity_multipliers"`

	// GoalAdjustments maps weight goal to a daily calorie delta.
	GoalAdjustments map[string]float64 `koanf:"goal_adjustments"`

	// CarbBuckets is scanned in order; the first bucket whose MaxHours covers
	// the athlete's weekly hours wins. A trailing bucket with MaxHours 0
	// means "everything above".
	CarbBuckets []CarbBucket `koanf:"carb_buckets"`

	ProteinGPerKg       float64 `koanf:"protein_g_per_kg"`
	ProteinRaisedGPerKg float64 `koanf:"protein_raised_g_per_kg"`
	ProteinRaiseAge     int     `koanf:"protein_raise_age"`
	FatMinGPerKg        float64 `koanf:"fat_min_g_per_kg"`

	HardDayCalories float64 `koanf:"hard_day_calories"`
	HardDayCarbs    float64 `koanf:"hard_day_carbs"`
	EasyDayCalories float64 `koanf:"easy_day_calories"`
	EasyDayCarbs    float64 `koanf:"easy_day_carbs"`
	RestDayCalories float64 `koanf:"rest_day_calories"`
	RestDayCarbs    float64 `koanf:"rest_day_carbs"`
}

// Config contains process configuration plus the rule tables.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the intake server listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// AthletesDir is the root of the per-athlete directory layout.
	AthletesDir string `koanf:"athletes_dir"`

	// DefaultPlanWeeks is used when neither the profile nor the caller
	// supplies a plan length.
	DefaultPlanWeeks int `koanf:"default_plan_weeks"`

	// MaxSubmissionsPerDay caps intake submissions per email per day.
	MaxSubmissionsPerDay int `koanf:"max_submissions_per_day"`

	// TierHours maps tier names to their weekly hour ranges.
	TierHours map[string]HourRange `koanf:"tier_hours"`

	Ability   Ability   `koanf:"ability"`
	Risk      Risk      `koanf:"risk"`
	Nutrition Nutrition `koanf:"nutrition"`
}

// New creates a Config with the business defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":8090",
		AthletesDir:          "athletes",
		DefaultPlanWeeks:     12,
		MaxSubmissionsPerDay: 5,
		TierHours: map[string]HourRange{
			"ayahuasca": {Min: 4, Max: 8},
			"finisher":  {Min: 8, Max: 12},
			"compete":   {Min: 12, Max: 18},
			"podium":    {Min: 18, Max: 25},
		},
		Ability: Ability{
			MastersAge:                  40,
			AdvancedYearsStructured:     5,
			IntermediateYearsStructured: 3,
			MastersIntermediateYears:    2,
			AdvancedWKg:                 4.0,
			MastersWKg:                  3.5,
			LongCareerBuckets:           []string{"10+", "6-10"},
		},
		Risk: Risk{
			AlcoholHighPerWeek:     14,
			AlcoholModeratePerWeek: 7,
			AlcoholRiskPerWeek:     10,
			CaffeineHighMgPerDay:   400,
			SleepShortHours:        7,
			UnderfuelCarbsGPerKg:   3.0,
			HighVolumeHours:        12,
			FTPStaleWeeks:          8,
			TimeCrunchedHours:      8,
			MastersBlindspotAge:    45,
			MaxPriorities:          5,
		},
		Nutrition: Nutrition{
			DefaultWeightKg: 70,
			DefaultHeightCm: 175,
			DefaultFTPWatts: 200,
			ActivityMultipliers: map[string]float64{
				"sedentary":         1.2,
				"lightly_active":    1.375,
				"moderately_active": 1.55,
				"very_active":       1.725,
			},
			GoalAdjustments: map[string]float64{
				"maintain":  0,
				"lose_slow": -300,
				"lose_fast": -500,
				"gain":      300,
			},
			CarbBuckets: []CarbBucket{
				{MaxHours: 6, GPerKg: 4.5},
				{MaxHours: 10, GPerKg: 5.5},
				{MaxHours: 15, GPerKg: 6.5},
				{MaxHours: 0, GPerKg: 7.5},
			},
			ProteinGPerKg:       1.8,
			ProteinRaisedGPerKg: 2.0,
			ProteinRaiseAge:     50,
			FatMinGPerKg:        0.8,
			HardDayCalories:     1.15,
			HardDayCarbs:        1.20,
			EasyDayCalories:     0.9,
			EasyDayCarbs:        0.8,
			RestDayCalories:     0.8,
			RestDayCarbs:        0.6,
		},
	}
}
