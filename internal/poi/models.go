package poi

// POI is a nearby sight normalized from the encyclopedia upstream. DistanceKm
// is nil when neither the geo search nor the page coordinates provided one.
type POI struct {
	Name       string   `json:"name"`
	Summary    string   `json:"summary,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	URL        string   `json:"url,omitempty"`
}
