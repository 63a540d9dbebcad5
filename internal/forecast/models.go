package forecast

// Day is one normalized daily forecast entry. Index i of a sequence
// corresponds to trip day i+1.
type Day struct {
	Date            string  `json:"date"`
	TempDayC        float64 `json:"temp_day_c"`
	TempNightC      float64 `json:"temp_night_c"`
	Condition       string  `json:"condition"`
	PrecipitationMm float64 `json:"precipitation_mm"`
}
