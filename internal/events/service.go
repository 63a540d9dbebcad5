package events

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"backend-tripplanner/internal/fetch"
)

const (
	defaultBaseURL  = "https://app.ticketmaster.com/discovery/v2/events.json"
	defaultRadiusKm = 25
	pageSize        = 20
)

// Service queries the events discovery upstream. The provider requires an API
// key; with no key configured the service is a no-op that returns an empty
// sequence without touching the network.
type Service struct {
	client   *fetch.Client
	apiKey   string
	baseURL  string
	radiusKm int
}

func NewService(client *fetch.Client, apiKey string) *Service {
	return &Service{
		client:   client,
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		radiusKm: defaultRadiusKm,
	}
}

type discoveryResponse struct {
	Embedded struct {
		Events []struct {
			Name  string `json:"name"`
			URL   string `json:"url"`
			Dates struct {
				Start struct {
					LocalDate string `json:"localDate"`
					DateTime  string `json:"dateTime"`
				} `json:"start"`
			} `json:"dates"`
			Embedded struct {
				Venues []struct {
					Name string `json:"name"`
				} `json:"venues"`
			} `json:"_embedded"`
		} `json:"events"`
	} `json:"_embedded"`
}

// Window lists events around the coordinates within [start, end], sorted
// ascending by date.
func (s *Service) Window(ctx context.Context, lat, lon float64, start, end time.Time) ([]Event, error) {
	if s.apiKey == "" {
		return []Event{}, nil
	}

	params := url.Values{}
	params.Set("apikey", s.apiKey)
	params.Set("latlong", fmt.Sprintf("%v,%v", lat, lon))
	params.Set("radius", strconv.Itoa(s.radiusKm))
	params.Set("unit", "km")
	params.Set("locale", "*")
	params.Set("startDateTime", start.UTC().Format("2006-01-02T15:04:05Z"))
	params.Set("endDateTime", end.UTC().Format("2006-01-02T15:04:05Z"))
	params.Set("size", strconv.Itoa(pageSize))
	params.Set("sort", "date,asc")

	var resp discoveryResponse
	if err := s.client.GetJSON(ctx, s.baseURL, nil, params, &resp); err != nil {
		return nil, fmt.Errorf("events: %w", err)
	}

	out := make([]Event, 0, len(resp.Embedded.Events))
	for _, e := range resp.Embedded.Events {
		startLocal := e.Dates.Start.LocalDate
		if startLocal == "" {
			startLocal = e.Dates.Start.DateTime
		}
		var venue string
		if len(e.Embedded.Venues) > 0 {
			venue = e.Embedded.Venues[0].Name
		}
		out = append(out, Event{
			Title:      e.Name,
			StartLocal: startLocal,
			Venue:      venue,
			URL:        e.URL,
		})
	}
	return out, nil
}
