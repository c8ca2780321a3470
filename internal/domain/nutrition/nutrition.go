// Package nutrition computes daily calorie and macro targets from body
// metrics, training load and body-composition goal.
//
// The model is Mifflin-St Jeor BMR, an activity multiplier, and a
// training surcharge estimated from FTP and weekly hours. Macros are
// set per kilogram (carbs by volume bucket, protein by age and goal,
// fat from what remains) and calories are then rebuilt from the macros
// so the two never drift apart.
package nutrition

import (
	"math"
	"time"

	"github.com/gravelgod/agf/internal/config"
	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/domain/profile"
	"github.com/gravelgod/agf/internal/domain/types"
)

// Calculator derives nutrition targets using configured constants.
type Calculator struct {
	cfg *config.Config
}

// New builds a Calculator over the given configuration.
func New(cfg *config.Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// BMR is Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(weightKg, heightCm float64, age int, sex string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "female" {
		return bmr - 161
	}
	return bmr + 5
}

// trainingCalories estimates the average daily energy cost of riding.
// Work at ~70% of FTP, ~5 kcal per liter of O2 equivalent via the
// standard 75W-per-liter conversion, spread over the week.
func trainingCalories(ftpWatts, weeklyHours float64) float64 {
	return (ftpWatts * 0.70 / 75) * 5 * (weeklyHours / 7) * 60
}

func (c *Calculator) carbsGPerKg(weeklyHours float64) float64 {
	buckets := c.cfg.Nutrition.CarbBuckets
	for _, b := range buckets {
		if b.MaxHours > 0 && weeklyHours <= b.MaxHours {
			return b.GPerKg
		}
	}
	if n := len(buckets); n > 0 {
		return buckets[n-1].GPerKg
	}
	return 5.5
}

// Targets computes the athlete's daily nutrition targets.
func (c *Calculator) Targets(a *profile.Athlete, now time.Time) model.NutritionTargets {
	n := c.cfg.Nutrition

	weight := a.FitnessMarkers.WeightKg.Value(n.DefaultWeightKg)
	height := a.FitnessMarkers.HeightCm.Value(n.DefaultHeightCm)
	ftp := a.FitnessMarkers.FTPWatts.Value(n.DefaultFTPWatts)
	age := a.Age(now)
	hours := a.AvailableHours()
	goal := types.ParseWeightGoal(a.Nutrition.WeightGoal)

	bmr := BMR(weight, height, age, a.Sex())
	mult, ok := n.ActivityMultipliers[a.Lifestyle.ActivityLevel]
	if !ok {
		mult = n.ActivityMultipliers["moderately_active"]
	}
	calories := bmr*mult + trainingCalories(ftp, hours) + n.GoalAdjustments[string(goal)]

	carbsG := c.carbsGPerKg(hours) * weight

	proteinPerKg := n.ProteinGPerKg
	if goal.IsLoss() || age >= n.ProteinRaiseAge {
		proteinPerKg = n.ProteinRaisedGPerKg
	}
	proteinG := proteinPerKg * weight

	fatG := (calories - 4*carbsG - 4*proteinG) / 9
	if min := n.FatMinGPerKg * weight; fatG < min {
		fatG = min
	}

	carbsG = math.Round(carbsG)
	proteinG = math.Round(proteinG)
	fatG = math.Round(fatG)

	// Calories follow the macros so the published numbers always add up.
	calories = 4*carbsG + 4*proteinG + 9*fatG

	t := model.NutritionTargets{
		Calories:   int(math.Round(calories)),
		CarbsG:     int(carbsG),
		ProteinG:   int(proteinG),
		FatG:       int(fatG),
		CarbsPct:   pct(4*carbsG, calories),
		ProteinPct: pct(4*proteinG, calories),
		FatPct:     pct(9*fatG, calories),
	}
	t.HardDay = dayTargets(calories, carbsG, proteinG, n.HardDayCalories, n.HardDayCarbs)
	t.EasyDay = dayTargets(calories, carbsG, proteinG, n.EasyDayCalories, n.EasyDayCarbs)
	t.RestDay = dayTargets(calories, carbsG, proteinG, n.RestDayCalories, n.RestDayCarbs)
	return t
}

// dayTargets scales the baseline for hard, easy and rest days. Protein
// holds steady, carbs drive the difference, fat absorbs the remainder.
func dayTargets(calories, carbsG, proteinG, calMult, carbMult float64) model.DayTargets {
	dayCal := math.Round(calories * calMult)
	dayCarbs := math.Round(carbsG * carbMult)
	dayFat := math.Round((dayCal - 4*dayCarbs - 4*proteinG) / 9)
	if dayFat < 0 {
		dayFat = 0
	}
	return model.DayTargets{
		Calories: int(dayCal),
		CarbsG:   int(dayCarbs),
		ProteinG: int(proteinG),
		FatG:     int(dayFat),
	}
}

func pct(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}
