package planner

import (
	"backend-tripplanner/internal/events"
	"backend-tripplanner/internal/forecast"
	"backend-tripplanner/internal/geocode"
	"backend-tripplanner/internal/poi"
)

type PlanRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
}

type DayPlan struct {
	Day       int      `json:"day"`
	Date      string   `json:"date"`
	Morning   string   `json:"morning"`
	Afternoon string   `json:"afternoon"`
	Evening   string   `json:"evening"`
	Meals     []string `json:"meals"`
}

// Context is the raw normalized upstream data that fed the plan, kept on the
// response for debugging and traceability.
type Context struct {
	PlanID   string         `json:"plan_id"`
	Geo      geocode.Place  `json:"geo"`
	Forecast []forecast.Day `json:"forecast"`
	POIs     []poi.POI      `json:"pois"`
	Events   []events.Event `json:"events"`
}

type Result struct {
	Destination    string              `json:"destination"`
	Days           int                 `json:"days"`
	Summary        string              `json:"summary"`
	DailyItinerary []DayPlan           `json:"daily_itinerary"`
	PackingList    map[string][]string `json:"packing_list"`
	Context        Context             `json:"context"`
}
