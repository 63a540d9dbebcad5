package poi

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"backend-tripplanner/internal/fetch"
	"backend-tripplanner/internal/shared/geo"
)

const (
	defaultRadiusM  = 3000
	defaultMaxItems = 8
	defaultLang     = "en"

	summaryMaxLen = 600

	userAgent = "TripPlanner/1.0 (github.com/example)"
)

type Service struct {
	client   *fetch.Client
	baseURL  string
	radiusM  int
	maxItems int
}

func NewService(client *fetch.Client) *Service {
	return &Service{
		client:   client,
		baseURL:  fmt.Sprintf("https://%s.wikipedia.org/w/api.php", defaultLang),
		radiusM:  defaultRadiusM,
		maxItems: defaultMaxItems,
	}
}

type geosearchResponse struct {
	Query struct {
		Geosearch []struct {
			PageID int     `json:"pageid"`
			Title  string  `json:"title"`
			Dist   float64 `json:"dist"`
		} `json:"geosearch"`
	} `json:"query"`
}

type pagesResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID      int    `json:"pageid"`
			Title       string `json:"title"`
			Extract     string `json:"extract"`
			FullURL     string `json:"fullurl"`
			Coordinates []struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"coordinates"`
		} `json:"pages"`
	} `json:"query"`
}

// Nearby finds encyclopedia pages around the coordinates in two steps: a geo
// search for page ids within the radius, then a detail fetch for summaries
// and URLs of exactly those pages. No pages nearby short-circuits to an empty
// result without the second call.
func (s *Service) Nearby(ctx context.Context, lat, lon float64) ([]POI, error) {
	headers := map[string]string{"User-Agent": userAgent}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "geosearch")
	params.Set("gscoord", fmt.Sprintf("%v|%v", lat, lon))
	params.Set("gsradius", strconv.Itoa(s.radiusM))
	params.Set("gslimit", strconv.Itoa(s.maxItems))
	params.Set("format", "json")

	var search geosearchResponse
	if err := s.client.GetJSON(ctx, s.baseURL, headers, params, &search); err != nil {
		return nil, fmt.Errorf("poi search: %w", err)
	}
	pages := search.Query.Geosearch
	if len(pages) == 0 {
		return []POI{}, nil
	}

	distByPage := make(map[int]float64, len(pages))
	ids := make([]string, 0, len(pages))
	for _, p := range pages {
		distByPage[p.PageID] = p.Dist
		ids = append(ids, strconv.Itoa(p.PageID))
	}

	params = url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts|info|coordinates")
	params.Set("pageids", strings.Join(ids, "|"))
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("inprop", "url")
	params.Set("format", "json")

	var details pagesResponse
	if err := s.client.GetJSON(ctx, s.baseURL, headers, params, &details); err != nil {
		return nil, fmt.Errorf("poi details: %w", err)
	}

	out := make([]POI, 0, len(details.Query.Pages))
	for _, p := range details.Query.Pages {
		summary := strings.TrimSpace(p.Extract)
		if r := []rune(summary); len(r) > summaryMaxLen {
			summary = string(r[:summaryMaxLen])
		}

		var distKm *float64
		if distM, ok := distByPage[p.PageID]; ok {
			distKm = ptr(roundKm(distM / 1000))
		} else if len(p.Coordinates) > 0 {
			c := p.Coordinates[0]
			distKm = ptr(roundKm(geo.HaversineKm(lat, lon, c.Lat, c.Lon)))
		}

		out = append(out, POI{
			Name:       p.Title,
			Summary:    summary,
			DistanceKm: distKm,
			URL:        p.FullURL,
		})
	}
	return out, nil
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func ptr(f float64) *float64 { return &f }
