package forecast

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"backend-tripplanner/internal/fetch"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

type Service struct {
	client  *fetch.Client
	baseURL string
}

func NewService(client *fetch.Client) *Service {
	return &Service{client: client, baseURL: defaultBaseURL}
}

type dailyResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WeatherCode      []int     `json:"weathercode"`
	} `json:"daily"`
}

// Daily returns up to days normalized forecast entries for the location.
// The upstream may return fewer days than requested; the shorter sequence
// propagates and callers must tolerate it.
func (s *Service) Daily(ctx context.Context, lat, lon float64, days int, timezone string) ([]Day, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("daily", "weathercode,temperature_2m_max,temperature_2m_min,precipitation_sum")
	params.Set("timezone", timezone)

	var resp dailyResponse
	if err := s.client.GetJSON(ctx, s.baseURL, nil, params, &resp); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	d := resp.Daily
	n := len(d.Time)
	if days < n {
		n = days
	}
	out := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		if i >= len(d.TemperatureMax) || i >= len(d.TemperatureMin) || i >= len(d.PrecipitationSum) || i >= len(d.WeatherCode) {
			break
		}
		out = append(out, Day{
			Date:            d.Time[i],
			TempDayC:        d.TemperatureMax[i],
			TempNightC:      d.TemperatureMin[i],
			Condition:       codeToCondition(d.WeatherCode[i]),
			PrecipitationMm: d.PrecipitationSum[i],
		})
	}
	return out, nil
}

// codeToCondition maps Open-Meteo WMO weather codes to a small fixed set of
// textual conditions.
func codeToCondition(code int) string {
	switch code {
	case 0:
		return "Clear"
	case 1, 2, 3:
		return "Partly cloudy"
	case 45, 48:
		return "Fog"
	case 51, 53, 55, 56, 57:
		return "Drizzle"
	case 61, 63, 65, 66, 67:
		return "Rain"
	case 71, 73, 75, 77:
		return "Snow"
	case 80, 81, 82:
		return "Rain showers"
	case 85, 86:
		return "Snow showers"
	case 95, 96, 99:
		return "Thunderstorm"
	default:
		return "Mixed"
	}
}
