package geocode

// Place is the resolved destination. Produced once per request and immutable
// afterward; coordinates and timezone drive every downstream lookup.
type Place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Timezone  string  `json:"timezone"`
}
