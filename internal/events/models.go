package events

// Event is a normalized upstream event, ordered ascending by start time as
// delivered by the provider.
type Event struct {
	Title      string `json:"title"`
	StartLocal string `json:"start_local"`
	Venue      string `json:"venue,omitempty"`
	URL        string `json:"url,omitempty"`
}
