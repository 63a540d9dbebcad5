package geocode

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"backend-tripplanner/internal/cache"
	"backend-tripplanner/internal/fetch"
)

const defaultBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

type Service struct {
	client  *fetch.Client
	cache   *cache.Cache
	baseURL string
}

func NewService(client *fetch.Client, c *cache.Cache) *Service {
	return &Service{client: client, cache: c, baseURL: defaultBaseURL}
}

type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// Lookup resolves a free-text place name to a single Place. An empty result
// set is a permanent failure: the destination does not exist as far as the
// geocoder is concerned.
func (s *Service) Lookup(ctx context.Context, place string) (Place, error) {
	key := "geocode:" + strings.ToLower(place)

	var cached Place
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	params := url.Values{}
	params.Set("name", place)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	var resp searchResponse
	if err := s.client.GetJSON(ctx, s.baseURL, nil, params, &resp); err != nil {
		return Place{}, fmt.Errorf("geocode %q: %w", place, err)
	}
	if len(resp.Results) == 0 {
		return Place{}, fmt.Errorf("destination %q: %w", place, fetch.ErrNotFound)
	}

	top := resp.Results[0]
	out := Place{
		Name:      top.Name,
		Country:   top.Country,
		Latitude:  top.Latitude,
		Longitude: top.Longitude,
		Timezone:  top.Timezone,
	}
	if out.Timezone == "" {
		out.Timezone = "UTC"
	}

	s.cache.Set(ctx, key, out)
	return out, nil
}
