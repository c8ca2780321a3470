// Package profile defines the typed athlete intake record.
//
// The upstream form pipeline produces loosely-typed YAML: every field is
// optional and numbers frequently arrive quoted. This package is the only
// place that deals with that; everything downstream sees typed, pre-defaulted
// data and never repeats a get-with-default chain.
package profile

// Race is a race entry as it appears in the profile, before normalization.
type Race struct {
	Name         string `yaml:"name"`
	Date         string `yaml:"date"`
	Distance     Float  `yaml:"distance"`
	DistanceMi   Float  `yaml:"distance_miles"`
	DistanceUnit string `yaml:"distance_unit"`
	GoalType     string `yaml:"goal_type"`
	TargetTime   string `yaml:"target_time"`
}

// TrainingHistory covers long-term background.
type TrainingHistory struct {
	YearsCycling       string `yaml:"years_cycling"`
	YearsStructured    Float  `yaml:"years_structured"`
	StrengthBackground string `yaml:"strength_background"`
	HighestWeeklyHours Float  `yaml:"highest_weekly_hours"`
	CurrentWeeklyHours Float  `yaml:"current_weekly_hours"`
}

// FitnessMarkers holds current test data.
type FitnessMarkers struct {
	FTPWatts  Float  `yaml:"ftp_watts"`
	FTPDate   string `yaml:"ftp_date"`
	WeightKg  Float  `yaml:"weight_kg"`
	HeightCm  Float  `yaml:"height_cm"`
	WKg       Float  `yaml:"w_kg"`
	RestingHR Float  `yaml:"resting_hr"`
	MaxHR     Float  `yaml:"max_hr"`
}

// RecentTraining captures the last training block.
type RecentTraining struct {
	Last12Weeks       string `yaml:"last_12_weeks"`
	CurrentPhase      string `yaml:"current_phase"`
	ComingOffInjury   bool   `yaml:"coming_off_injury"`
	DaysSinceLastRide Int    `yaml:"days_since_last_ride"`
}

// WeeklyAvailability is the athlete's time budget.
type WeeklyAvailability struct {
	TotalHoursAvailable Float `yaml:"total_hours_available"`
	CyclingHoursTarget  Float `yaml:"cycling_hours_target"`
	StrengthSessionsMax Int   `yaml:"strength_sessions_max"`
}

// DayAvailability is one weekday's training window.
type DayAvailability struct {
	Availability   string   `yaml:"availability"`
	TimeSlots      []string `yaml:"time_slots"`
	MaxDurationMin Int      `yaml:"max_duration_min"`
	IsKeyDayOK     bool     `yaml:"is_key_day_ok"`
}

// ScheduleConstraints lists scheduling pressure outside training.
type ScheduleConstraints struct {
	WorkSchedule      string   `yaml:"work_schedule"`
	TravelFrequency   string   `yaml:"travel_frequency"`
	FamilyCommitments string   `yaml:"family_commitments"`
	PreferredOffDays  []string `yaml:"preferred_off_days"`
	PreferredLongDay  string   `yaml:"preferred_long_day"`
}

// CyclingEquipment lists the bike setup.
type CyclingEquipment struct {
	SmartTrainer   bool   `yaml:"smart_trainer"`
	PowerMeterBike bool   `yaml:"power_meter_bike"`
	HRMonitor      bool   `yaml:"hr_monitor"`
	IndoorSetup    string `yaml:"indoor_setup"`
}

// Injury is one entry of the injury history.
type Injury struct {
	Area             string   `yaml:"area"`
	Severity         string   `yaml:"severity"`
	AffectsCycling   bool     `yaml:"affects_cycling"`
	AffectsStrength  bool     `yaml:"affects_strength"`
	ExercisesToAvoid []string `yaml:"exercises_to_avoid"`
	Notes            string   `yaml:"notes"`
	Year             Int      `yaml:"year"`
	FullyResolved    *bool    `yaml:"fully_resolved"`
}

// InjuryHistory splits current from past injuries.
type InjuryHistory struct {
	CurrentInjuries []Injury `yaml:"current_injuries"`
	PastInjuries    []Injury `yaml:"past_injuries"`
}

// HealthFactors covers recovery-relevant health data.
type HealthFactors struct {
	Age              Int    `yaml:"age"`
	Sex              string `yaml:"sex"`
	SleepQuality     string `yaml:"sleep_quality"`
	SleepHoursAvg    Float  `yaml:"sleep_hours_avg"`
	StressLevel      string `yaml:"stress_level"`
	RecoveryCapacity string `yaml:"recovery_capacity"`
}

// Lifestyle covers habits that compete with recovery.
type Lifestyle struct {
	AlcoholDrinksPerWeek Float  `yaml:"alcohol_drinks_per_week"`
	CaffeineMgPerDay     Float  `yaml:"caffeine_mg_per_day"`
	ActivityLevel        string `yaml:"activity_level"`
	FamilySupport        string `yaml:"family_support"`
}

// Nutrition covers fueling habits and body-composition goals.
type Nutrition struct {
	FuelsDuringRides        string `yaml:"fuels_during_rides"`
	DailyCarbsGPerKg        Float  `yaml:"daily_carbs_g_per_kg"`
	FuelingStrategy         string `yaml:"fueling_strategy"`
	DisorderedEatingHistory bool   `yaml:"disordered_eating_history"`
	WeightGoal              string `yaml:"weight_goal"`
	DietStyles              []string `yaml:"diet_styles"`
}

// MethodologyPreferences captures stated training-approach preferences.
type MethodologyPreferences struct {
	PreferredApproach string `yaml:"preferred_approach"`
	PastSuccessWith   string `yaml:"past_success_with"`
}

// Athlete is the full intake record. Every field is optional; derived
// helpers in accessors.go resolve absence to documented defaults.
type Athlete struct {
	Name      string `yaml:"name"`
	Email     string `yaml:"email"`
	AthleteID string `yaml:"athlete_id"`
	Birthday  string `yaml:"birthday"`

	PrimaryGoal string `yaml:"primary_goal"`

	TargetRace *Race  `yaml:"target_race"`
	AEvents    []Race `yaml:"a_events"`
	BEvents    []Race `yaml:"b_events"`
	CEvents    []Race `yaml:"c_events"`

	PlanWeeks Int `yaml:"plan_weeks"`

	TrainingHistory     TrainingHistory        `yaml:"training_history"`
	FitnessMarkers      FitnessMarkers         `yaml:"fitness_markers"`
	RecentTraining      RecentTraining         `yaml:"recent_training"`
	WeeklyAvailability  WeeklyAvailability     `yaml:"weekly_availability"`
	PreferredDays       map[string]DayAvailability `yaml:"preferred_days"`
	ScheduleConstraints ScheduleConstraints    `yaml:"schedule_constraints"`
	CyclingEquipment    CyclingEquipment       `yaml:"cycling_equipment"`
	StrengthEquipment   []string               `yaml:"strength_equipment"`
	InjuryHistory       InjuryHistory          `yaml:"injury_history"`
	MovementLimitations map[string]string      `yaml:"movement_limitations"`
	HealthFactors       HealthFactors          `yaml:"health_factors"`
	Lifestyle           Lifestyle              `yaml:"lifestyle"`
	Nutrition           Nutrition              `yaml:"nutrition"`
	Methodology         MethodologyPreferences `yaml:"methodology_preferences"`
}
