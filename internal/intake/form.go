// Package intake validates raw coaching-form submissions and converts
// them into athlete profiles.
package intake

// Form is the raw intake submission as posted by the form frontend.
// Field names follow the form's flat key scheme.
type Form struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Age      FlexInt `json:"age"`

	PrimaryGoal string `json:"primary_goal"`

	RaceName         string  `json:"race_name"`
	RaceDate         string  `json:"race_date"`
	RaceDistance     FlexInt `json:"race_distance"`
	RaceDistanceUnit string  `json:"race_distance_unit"`
	RaceList         string  `json:"race_list"`
	BPriorityEvents  string  `json:"b_priority_events"`
	HasRacingGoals   string  `json:"has_racing_goals"`

	WeeklyVolume    string  `json:"weekly_volume"`
	YearsCycling    string  `json:"years_cycling"`
	YearsStructured FlexInt `json:"years_structured"`

	StrengthTrains   string `json:"strength_trains"`
	StrengthInterest string `json:"strength_interest"`

	CurrentFTP FlexInt `json:"current_ftp"`

	Equipment FlexStrings `json:"equipment"`
	Devices   FlexStrings `json:"devices"`

	Works            string      `json:"works"`
	TimeCommitments  string      `json:"time_commitments"`
	PreferredOffDays FlexStrings `json:"preferred_off_days"`
	PreferredLongDay string      `json:"preferred_long_day"`

	CurrentInjuries string `json:"current_injuries"`

	SleepQuality  string  `json:"sleep_quality"`
	SleepHours    FlexInt `json:"sleep_hours"`
	StressLevel   string  `json:"stress_level"`
	AlcoholPerWeek FlexInt `json:"alcohol_per_week"`
	ActivityLevel string  `json:"activity_level"`

	FuelsDuringRides string      `json:"fuels_during_rides"`
	WeightGoal       string      `json:"weight_goal"`
	DietStyles       FlexStrings `json:"diet_styles"`

	MondayAvailable    FlexBool `json:"monday_available"`
	MondayTime         string   `json:"monday_time"`
	MondayDuration     FlexInt  `json:"monday_duration"`
	TuesdayAvailable   FlexBool `json:"tuesday_available"`
	TuesdayTime        string   `json:"tuesday_time"`
	TuesdayDuration    FlexInt  `json:"tuesday_duration"`
	WednesdayAvailable FlexBool `json:"wednesday_available"`
	WednesdayTime      string   `json:"wednesday_time"`
	WednesdayDuration  FlexInt  `json:"wednesday_duration"`
	ThursdayAvailable  FlexBool `json:"thursday_available"`
	ThursdayTime       string   `json:"thursday_time"`
	ThursdayDuration   FlexInt  `json:"thursday_duration"`
	FridayAvailable    FlexBool `json:"friday_available"`
	FridayTime         string   `json:"friday_time"`
	FridayDuration     FlexInt  `json:"friday_duration"`
	SaturdayAvailable  FlexBool `json:"saturday_available"`
	SaturdayTime       string   `json:"saturday_time"`
	SaturdayDuration   FlexInt  `json:"saturday_duration"`
	SundayAvailable    FlexBool `json:"sunday_available"`
	SundayTime         string   `json:"sunday_time"`
	SundayDuration     FlexInt  `json:"sunday_duration"`
}

type dayForm struct {
	available bool
	time      string
	duration  int
}

func (f *Form) days() map[string]dayForm {
	return map[string]dayForm{
		"monday":    {bool(f.MondayAvailable), f.MondayTime, int(f.MondayDuration)},
		"tuesday":   {bool(f.TuesdayAvailable), f.TuesdayTime, int(f.TuesdayDuration)},
		"wednesday": {bool(f.WednesdayAvailable), f.WednesdayTime, int(f.WednesdayDuration)},
		"thursday":  {bool(f.ThursdayAvailable), f.ThursdayTime, int(f.ThursdayDuration)},
		"friday":    {bool(f.FridayAvailable), f.FridayTime, int(f.FridayDuration)},
		"saturday":  {bool(f.SaturdayAvailable), f.SaturdayTime, int(f.SaturdayDuration)},
		"sunday":    {bool(f.SundayAvailable), f.SundayTime, int(f.SundayDuration)},
	}
}

func (f *Form) availableDays() int {
	n := 0
	for _, d := range f.days() {
		if d.available {
			n++
		}
	}
	return n
}
