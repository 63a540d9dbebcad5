package planner

import (
	"fmt"
	"strings"

	"backend-tripplanner/internal/forecast"
)

// composeSummary builds the raw narrative line fed to the polisher: the
// destination label, a first-day weather sentence, and the sight/event counts.
func composeSummary(label string, fc []forecast.Day, numPOIs, numEvents int) string {
	weatherLine := "Weather: (not available)"
	if len(fc) > 0 {
		first := fc[0]
		weatherLine = fmt.Sprintf("First day looks %s, %.0f/%.0f°C with %.0fmm precip",
			strings.ToLower(first.Condition), first.TempDayC, first.TempNightC, first.PrecipitationMm)
	}
	return fmt.Sprintf("%s: %s. %d sights nearby, %d events found.", label, weatherLine, numPOIs, numEvents)
}
