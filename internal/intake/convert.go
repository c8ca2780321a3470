package intake

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gravelgod/agf/internal/domain/profile"
)

const kmToMiles = 0.621371

var goalMapping = map[string]string{
	"Specific race(s)":        "specific_race",
	"General fitness":         "general_fitness",
	"Base building":           "base_building",
	"Off-season maintenance":  "off_season",
	"Return from injury":      "return_from_injury",
	"Performance improvement": "performance_improvement",
}

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9-]`)
	slugHyphens  = regexp.MustCompile(`-+`)
	dateParen    = regexp.MustCompile(`\(([A-Za-z]+ \d+)\)`)
	dateISO      = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
	dateWithYear = regexp.MustCompile(`([A-Za-z]+ \d{1,2},? \d{4})`)
)

// AthleteID slugs a name into a directory-safe identifier, falling back
// to a random UUID for names that slug to nothing.
func AthleteID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	id = strings.ReplaceAll(id, " ", "-")
	id = slugInvalid.ReplaceAllString(id, "")
	id = slugHyphens.ReplaceAllString(id, "-")
	id = strings.Trim(id, "-")
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// normalizeGoal maps the form's display answer to the profile value.
func normalizeGoal(formGoal string) string {
	if g, ok := goalMapping[formGoal]; ok {
		return g
	}
	return strings.ReplaceAll(strings.ToLower(formGoal), " ", "_")
}

// parseWeeklyVolume splits a volume answer into current and peak hours.
func parseWeeklyVolume(volume string) (min, max int) {
	volume = strings.TrimSpace(volume)
	if volume == "" {
		return 0, 0
	}
	if strings.HasSuffix(volume, "+") {
		if v, err := strconv.Atoi(strings.TrimSuffix(volume, "+")); err == nil {
			return v, 40
		}
		return 0, 40
	}
	if i := strings.Index(volume, "-"); i >= 0 {
		lo, err1 := strconv.Atoi(strings.TrimSpace(volume[:i]))
		hi, err2 := strconv.Atoi(strings.TrimSpace(volume[i+1:]))
		if err1 == nil && err2 == nil {
			return lo, hi
		}
		return 0, 0
	}
	if v, err := strconv.Atoi(volume); err == nil {
		return v, v
	}
	return 0, 0
}

// parseRaceList splits free-text race lines into entries, pulling any
// recognizable date out of each line.
func parseRaceList(raceList string) []profile.Race {
	var races []profile.Race
	for _, line := range strings.Split(raceList, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name := line
		var date string
		for _, pattern := range []*regexp.Regexp{dateParen, dateISO, dateWithYear} {
			if m := pattern.FindStringSubmatch(line); m != nil {
				date = m[1]
				name = strings.TrimSpace(strings.Trim(pattern.ReplaceAllString(line, ""), "()"))
				break
			}
		}
		races = append(races, profile.Race{Name: name, Date: date})
	}
	return races
}

func dayAvailability(d dayForm) profile.DayAvailability {
	if !d.available {
		return profile.DayAvailability{
			Availability: "unavailable",
			TimeSlots:    []string{},
		}
	}
	var slots []string
	switch d.time {
	case "early_morning", "morning":
		slots = []string{"am"}
	case "afternoon", "evening":
		slots = []string{"pm"}
	case "flexible":
		slots = []string{"am", "pm"}
	default:
		slots = []string{"am"}
	}
	duration := d.duration
	if duration == 0 {
		duration = 60
	}
	return profile.DayAvailability{
		Availability:   "available",
		TimeSlots:      slots,
		MaxDurationMin: profile.Int(duration),
		IsKeyDayOK:     true,
	}
}

var strengthEquipmentMap = map[string]string{
	"smart_trainer":    "smart_trainer",
	"dumb_trainer_pm":  "power_meter_bike",
	"outdoor_pm":       "power_meter_bike",
	"gym_membership":   "gym_membership",
	"home_gym":         "dumbbells",
	"pull_up_bar":      "pull_up_bar",
	"resistance_bands": "resistance_bands",
}

func strengthEquipment(equipment FlexStrings) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, eq := range equipment {
		mapped, ok := strengthEquipmentMap[eq]
		if !ok {
			continue
		}
		if _, dup := seen[mapped]; dup {
			continue
		}
		seen[mapped] = struct{}{}
		out = append(out, mapped)
	}
	return out
}

// Convert builds an athlete profile from a validated form submission.
func (f *Form) Convert(now time.Time) *profile.Athlete {
	minHours, maxHours := parseWeeklyVolume(f.WeeklyVolume)

	races := parseRaceList(f.RaceList)
	var target *profile.Race
	switch {
	case len(races) > 0:
		r := races[0]
		target = &r
	case f.RaceName != "":
		distance := float64(f.RaceDistance)
		if f.RaceDistanceUnit == "km" {
			distance *= kmToMiles
		}
		target = &profile.Race{
			Name:       f.RaceName,
			Date:       f.RaceDate,
			DistanceMi: profile.Float(distance),
			GoalType:   "compete",
		}
	}
	if target != nil && target.GoalType == "" {
		target.GoalType = "compete"
	}

	var bEvents []profile.Race
	for _, line := range strings.Split(f.BPriorityEvents, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			bEvents = append(bEvents, profile.Race{Name: line})
		}
	}
	if len(races) > 1 {
		bEvents = append(bEvents, races[1:]...)
	}

	strengthBackground := "intermediate"
	if f.StrengthTrains == "no" {
		strengthBackground = "beginner"
	}

	var strengthSessions int
	switch f.StrengthInterest {
	case "eager":
		strengthSessions = 2
	case "willing":
		strengthSessions = 1
	}

	days := make(map[string]profile.DayAvailability, 7)
	for name, d := range f.days() {
		days[name] = dayAvailability(d)
	}

	workSchedule := "flexible"
	if f.Works == "yes" {
		workSchedule = "9-5"
	}

	fm := profile.FitnessMarkers{}
	if ftp := int(f.CurrentFTP); ftp > 0 {
		fm.FTPWatts = profile.Float(ftp)
		fm.FTPDate = now.Format("2006-01-02")
	}

	a := &profile.Athlete{
		Name:      f.Name,
		Email:     f.Email,
		AthleteID: AthleteID(f.Name),
		Birthday:  f.Birthday,

		PrimaryGoal: normalizeGoal(f.PrimaryGoal),
		TargetRace:  target,
		BEvents:     bEvents,

		TrainingHistory: profile.TrainingHistory{
			YearsCycling:       f.YearsCycling,
			YearsStructured:    profile.Float(int(f.YearsStructured)),
			StrengthBackground: strengthBackground,
			HighestWeeklyHours: profile.Float(maxHours),
			CurrentWeeklyHours: profile.Float(minHours),
		},
		FitnessMarkers: fm,
		RecentTraining: profile.RecentTraining{
			Last12Weeks:     "consistent",
			CurrentPhase:    "base",
			ComingOffInjury: f.CurrentInjuries != "",
		},
		WeeklyAvailability: profile.WeeklyAvailability{
			TotalHoursAvailable: profile.Float(maxHours + 2),
			CyclingHoursTarget:  profile.Float(maxHours),
			StrengthSessionsMax: profile.Int(strengthSessions),
		},
		PreferredDays: days,
		ScheduleConstraints: profile.ScheduleConstraints{
			WorkSchedule:      workSchedule,
			TravelFrequency:   "none",
			FamilyCommitments: f.TimeCommitments,
			PreferredOffDays:  f.PreferredOffDays,
			PreferredLongDay:  f.PreferredLongDay,
		},
		CyclingEquipment: profile.CyclingEquipment{
			SmartTrainer:   f.Equipment.contains("smart_trainer"),
			PowerMeterBike: f.Equipment.contains("dumb_trainer_pm") || f.Equipment.contains("outdoor_pm"),
			HRMonitor:      f.Devices.contains("hr_monitor"),
			IndoorSetup:    indoorSetup(f.Equipment),
		},
		StrengthEquipment: strengthEquipment(f.Equipment),
		HealthFactors: profile.HealthFactors{
			Age:           profile.Int(f.Age),
			SleepQuality:  f.SleepQuality,
			SleepHoursAvg: profile.Float(int(f.SleepHours)),
			StressLevel:   f.StressLevel,
		},
		Lifestyle: profile.Lifestyle{
			AlcoholDrinksPerWeek: profile.Float(int(f.AlcoholPerWeek)),
			ActivityLevel:        f.ActivityLevel,
		},
		Nutrition: profile.Nutrition{
			FuelsDuringRides: f.FuelsDuringRides,
			WeightGoal:       f.WeightGoal,
			DietStyles:       f.DietStyles,
		},
	}
	return a
}

func indoorSetup(equipment FlexStrings) string {
	if equipment.contains("smart_trainer") {
		return "basic"
	}
	return "none"
}
