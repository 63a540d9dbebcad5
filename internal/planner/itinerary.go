package planner

import (
	"fmt"

	"backend-tripplanner/internal/events"
	"backend-tripplanner/internal/poi"
)

// Generic activities used when the POI set is too small to fill a slot.
const (
	placeholderMorning   = "Neighborhood walk"
	placeholderAfternoon = "Museum or gallery"
	placeholderEvening   = "Food market & riverfront"
)

// buildDayPlan fills the three activity blocks for the 0-based day index.
// Small POI sets are rotated modulo their size, so repetition across days is
// expected. Events are consumed one per day in order, never wrapped.
func buildDayPlan(dayIdx int, date string, pois []poi.POI, evs []events.Event) DayPlan {
	n := len(pois)
	wrap := n
	if wrap < 1 {
		wrap = 1
	}

	morning := placeholderMorning
	if n > 0 {
		morning = pois[(dayIdx*3+0)%wrap].Name
	}

	afternoon := placeholderAfternoon
	if n > 1 {
		afternoon = pois[(dayIdx*3+1)%wrap].Name
	}

	var evening string
	switch {
	case dayIdx < len(evs):
		ev := evs[dayIdx]
		if ev.Venue != "" {
			evening = fmt.Sprintf("Attend: %s @ %s", ev.Title, ev.Venue)
		} else {
			evening = fmt.Sprintf("Attend: %s", ev.Title)
		}
	case n > 2:
		evening = pois[(dayIdx*3+2)%wrap].Name
	default:
		evening = placeholderEvening
	}

	return DayPlan{
		Day:       dayIdx + 1,
		Date:      date,
		Morning:   "Explore: " + morning,
		Afternoon: "Visit: " + afternoon,
		Evening:   evening,
		Meals: []string{
			"Local bakery breakfast",
			"Regional specialty lunch",
			"Well-reviewed dinner spot",
		},
	}
}
