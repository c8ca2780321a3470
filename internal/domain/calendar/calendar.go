// Package calendar normalizes the athlete's race list into a sorted
// schedule with countdowns and taper policies.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/domain/profile"
	"github.com/gravelgod/agf/internal/domain/types"
)

// farFuture is the sort key for unparseable or missing race dates:
// undated races sink to the bottom instead of failing the derivation.
var farFuture = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// ParseDate resolves a raw race date string. Month-day forms without a
// year ("June 7") get the next occurrence relative to now. The second
// return reports whether the date was usable.
func ParseDate(raw string, now time.Time) (time.Time, bool) {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "()"))
	if s == "" {
		return farFuture, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	for _, layout := range []string{"January 2", "Jan 2"} {
		d, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d = time.Date(now.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(now.Truncate(24 * time.Hour)) {
			d = d.AddDate(1, 0, 0)
		}
		return d, true
	}
	return farFuture, false
}

// WeeksOut counts whole weeks from now until the race, floored at zero.
func WeeksOut(race, now time.Time) int {
	days := int(race.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 7
}

// Build merges the target race and the prioritized event lists into one
// schedule sorted by date ascending. The target race rides under A
// priority even when the athlete listed it nowhere else.
func Build(a *profile.Athlete, now time.Time) []model.RaceEvent {
	var out []model.RaceEvent
	for _, prio := range []types.EventPriority{types.PriorityA, types.PriorityB, types.PriorityC} {
		for _, r := range a.RaceDates()[string(prio)] {
			if strings.TrimSpace(r.Name) == "" {
				continue
			}
			out = append(out, newEvent(r, prio, now))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, _ := ParseDate(out[i].Date, now)
		dj, _ := ParseDate(out[j].Date, now)
		return di.Before(dj)
	})
	return out
}

func newEvent(r profile.Race, prio types.EventPriority, now time.Time) model.RaceEvent {
	ev := model.RaceEvent{
		Name:     r.Name,
		Date:     strings.TrimSpace(r.Date),
		GoalType: types.ParseGoalType(r.GoalType),
		Priority: prio,
		Taper:    types.TaperFor(prio),
	}
	if d := float64(r.Distance); d > 0 {
		ev.Distance = d
		ev.DistanceUnit = r.DistanceUnit
	} else if mi := float64(r.DistanceMi); mi > 0 {
		ev.Distance = mi
		ev.DistanceUnit = "miles"
	}
	if ev.DistanceUnit == "" && ev.Distance > 0 {
		ev.DistanceUnit = "miles"
	}
	if d, ok := ParseDate(r.Date, now); ok {
		ev.WeeksOut = WeeksOut(d, now)
	}
	return ev
}

// Describe renders a one-line summary for logs.
func Describe(ev model.RaceEvent) string {
	return fmt.Sprintf("%s [%s] %s (%d weeks out)", ev.Name, ev.Priority, ev.Date, ev.WeeksOut)
}
