package planner

import "backend-tripplanner/internal/forecast"

const (
	heatThresholdC  = 27.0
	coldThresholdC  = 10.0
	rainThresholdMm = 2.0
	heatItem        = "Hat & sunglasses; light fabrics"
	coldItem        = "Warm layer / light jacket"
	rainItem        = "Compact umbrella / rain jacket"
)

// buildPackingList derives a categorized packing list from the whole weather
// sequence. Each climate-driven extra is added at most once no matter how
// many days trigger it; an empty sequence yields just the base categories.
func buildPackingList(days []forecast.Day) map[string][]string {
	essentials := []string{"Passport/ID", "Wallet", "Phone + charger", "Meds", "Reusable bottle"}
	clothing := []string{"Walking shoes", "Socks/underwear", "Tops/bottoms"}
	toiletries := []string{"Toothbrush/toothpaste", "Deodorant", "Sunscreen"}
	electronics := []string{"Power adapter", "Power bank"}

	var hot, cold, wet bool
	for _, d := range days {
		if d.TempDayC >= heatThresholdC {
			hot = true
		}
		if d.TempDayC <= coldThresholdC {
			cold = true
		}
		if d.PrecipitationMm >= rainThresholdMm {
			wet = true
		}
	}
	if hot {
		clothing = append(clothing, heatItem)
	}
	if cold {
		clothing = append(clothing, coldItem)
	}
	if wet {
		essentials = append(essentials, rainItem)
	}

	return map[string][]string{
		"essentials":  essentials,
		"clothing":    clothing,
		"toiletries":  toiletries,
		"electronics": electronics,
	}
}
