package planner

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"backend-tripplanner/internal/events"
	"backend-tripplanner/internal/fetch"
	"backend-tripplanner/internal/forecast"
	"backend-tripplanner/internal/geocode"
	"backend-tripplanner/internal/poi"
)

type stubGeocoder struct {
	place geocode.Place
	err   error
	calls int32
}

func (s *stubGeocoder) Lookup(_ context.Context, _ string) (geocode.Place, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.place, s.err
}

type stubForecaster struct {
	days  []forecast.Day
	err   error
	calls int32
}

func (s *stubForecaster) Daily(_ context.Context, _, _ float64, _ int, _ string) ([]forecast.Day, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.days, s.err
}

type stubPOIFinder struct {
	pois  []poi.POI
	err   error
	calls int32
}

func (s *stubPOIFinder) Nearby(_ context.Context, _, _ float64) ([]poi.POI, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.pois, s.err
}

type stubEventFinder struct {
	events []events.Event
	err    error
	calls  int32
	start  time.Time
	end    time.Time
}

func (s *stubEventFinder) Window(_ context.Context, _, _ float64, start, end time.Time) ([]events.Event, error) {
	atomic.AddInt32(&s.calls, 1)
	s.start, s.end = start, end
	return s.events, s.err
}

type upperPolisher struct{}

func (upperPolisher) Polish(_ context.Context, text string) string {
	return strings.ToUpper(text)
}

var paris = geocode.Place{Name: "Paris", Country: "France", Latitude: 48.85, Longitude: 2.35, Timezone: "Europe/Paris"}

func fixedNow() time.Time {
	return time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
}

func newPlanService(geo *stubGeocoder, fc *stubForecaster, pf *stubPOIFinder, ef *stubEventFinder) *Service {
	svc := NewService(geo, fc, pf, ef, nil)
	svc.now = fixedNow
	return svc
}

func TestPlanAssemblesResult(t *testing.T) {
	geo := &stubGeocoder{place: paris}
	fc := &stubForecaster{days: []forecast.Day{
		{Date: "2026-08-29", TempDayC: 28, TempNightC: 18, Condition: "Clear"},
		{Date: "2026-08-30", TempDayC: 9, TempNightC: 4, Condition: "Rain", PrecipitationMm: 5},
		{Date: "2026-08-31", TempDayC: 15, TempNightC: 8, Condition: "Partly cloudy", PrecipitationMm: 5},
	}}
	pf := &stubPOIFinder{pois: []poi.POI{{Name: "Louvre"}, {Name: "Notre-Dame"}, {Name: "Pantheon"}}}
	ef := &stubEventFinder{events: []events.Event{{Title: "Jazz Night", Venue: "Blue Hall"}}}

	svc := newPlanService(geo, fc, pf, ef)
	result, err := svc.Plan(context.Background(), "Paris, France", 3)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	if result.Destination != "Paris, France" {
		t.Fatalf("unexpected destination label: %q", result.Destination)
	}
	if result.Days != 3 || len(result.DailyItinerary) != 3 {
		t.Fatalf("expected 3 day plans, got %d", len(result.DailyItinerary))
	}
	for i, dp := range result.DailyItinerary {
		if dp.Day != i+1 {
			t.Fatalf("expected consecutive day numbers, got %+v", dp)
		}
	}
	if result.DailyItinerary[0].Date != "2026-08-29" ||
		result.DailyItinerary[1].Date != "2026-08-30" ||
		result.DailyItinerary[2].Date != "2026-08-31" {
		t.Fatalf("expected consecutive dates from today, got %+v", result.DailyItinerary)
	}
	if result.DailyItinerary[0].Evening != "Attend: Jazz Night @ Blue Hall" {
		t.Fatalf("expected event evening on day 1, got %q", result.DailyItinerary[0].Evening)
	}

	// 28C day, 9C day and a 5mm day: heat, cold and rain items all present.
	if countItem(result.PackingList["clothing"], heatItem) != 1 ||
		countItem(result.PackingList["clothing"], coldItem) != 1 ||
		countItem(result.PackingList["essentials"], rainItem) != 1 {
		t.Fatalf("expected climate items: %+v", result.PackingList)
	}

	if !strings.HasPrefix(result.Summary, "Paris, France: First day looks clear") {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}
	if result.Context.PlanID == "" {
		t.Fatalf("expected plan id in context")
	}
	if result.Context.Geo != paris || len(result.Context.Forecast) != 3 || len(result.Context.POIs) != 3 || len(result.Context.Events) != 1 {
		t.Fatalf("unexpected context bag: %+v", result.Context)
	}
}

func TestPlanGeocodeNotFoundSkipsProviders(t *testing.T) {
	geo := &stubGeocoder{err: fetch.ErrNotFound}
	fc := &stubForecaster{}
	pf := &stubPOIFinder{}
	ef := &stubEventFinder{}

	svc := newPlanService(geo, fc, pf, ef)
	_, err := svc.Plan(context.Background(), "Nowhereistan123xyz", 3)
	if !errors.Is(err, fetch.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if fc.calls != 0 || pf.calls != 0 || ef.calls != 0 {
		t.Fatalf("expected no provider calls after geocode failure")
	}
}

func TestPlanBranchFailureAborts(t *testing.T) {
	geo := &stubGeocoder{place: paris}
	fc := &stubForecaster{err: fetch.ErrUpstream}
	pf := &stubPOIFinder{}
	ef := &stubEventFinder{}

	svc := newPlanService(geo, fc, pf, ef)
	_, err := svc.Plan(context.Background(), "Paris", 2)
	if !errors.Is(err, fetch.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestPlanEmptyProvidersUsePlaceholders(t *testing.T) {
	geo := &stubGeocoder{place: paris}
	svc := newPlanService(geo, &stubForecaster{}, &stubPOIFinder{}, &stubEventFinder{})

	result, err := svc.Plan(context.Background(), "Paris", 4)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	first := result.DailyItinerary[0]
	for _, dp := range result.DailyItinerary {
		if dp.Morning != first.Morning || dp.Afternoon != first.Afternoon || dp.Evening != first.Evening {
			t.Fatalf("expected identical placeholder days, got %+v vs %+v", dp, first)
		}
	}
	if first.Morning != "Explore: Neighborhood walk" {
		t.Fatalf("unexpected placeholder: %q", first.Morning)
	}
	if !strings.Contains(result.Summary, "Weather: (not available)") {
		t.Fatalf("expected missing-weather marker: %q", result.Summary)
	}
	if len(result.PackingList["clothing"]) != 3 {
		t.Fatalf("expected base clothing only: %+v", result.PackingList["clothing"])
	}
}

func TestPlanEventsWindowCoversTrip(t *testing.T) {
	geo := &stubGeocoder{place: paris}
	ef := &stubEventFinder{}
	svc := newPlanService(geo, &stubForecaster{}, &stubPOIFinder{}, ef)

	if _, err := svc.Plan(context.Background(), "Paris", 3); err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !ef.start.Equal(fixedNow()) {
		t.Fatalf("unexpected window start: %v", ef.start)
	}
	if want := fixedNow().Add(4 * 24 * time.Hour); !ef.end.Equal(want) {
		t.Fatalf("unexpected window end: %v, want %v", ef.end, want)
	}
}

func TestPlanPolishesSummaryOnly(t *testing.T) {
	geo := &stubGeocoder{place: paris}
	svc := NewService(geo, &stubForecaster{}, &stubPOIFinder{pois: []poi.POI{{Name: "Louvre"}}}, &stubEventFinder{}, upperPolisher{})
	svc.now = fixedNow

	result, err := svc.Plan(context.Background(), "Paris", 1)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if result.Summary != strings.ToUpper(result.Summary) {
		t.Fatalf("expected polished summary: %q", result.Summary)
	}
	if result.DailyItinerary[0].Morning != "Explore: Louvre" {
		t.Fatalf("expected itinerary text untouched by polish: %q", result.DailyItinerary[0].Morning)
	}
}

func TestPlanDayCountRange(t *testing.T) {
	geo := &stubGeocoder{place: paris}
	svc := newPlanService(geo, &stubForecaster{}, &stubPOIFinder{}, &stubEventFinder{})

	for _, days := range []int{1, 7, 21} {
		result, err := svc.Plan(context.Background(), "Paris", days)
		if err != nil {
			t.Fatalf("plan %d days: %v", days, err)
		}
		if len(result.DailyItinerary) != days {
			t.Fatalf("expected %d day plans, got %d", days, len(result.DailyItinerary))
		}
	}
}
