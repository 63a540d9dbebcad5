package planner

import (
	"context"
	"fmt"
	"time"

	"backend-tripplanner/internal/events"
	"backend-tripplanner/internal/forecast"
	"backend-tripplanner/internal/geocode"
	"backend-tripplanner/internal/poi"
	"backend-tripplanner/internal/polish"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Geocoder interface {
	Lookup(ctx context.Context, place string) (geocode.Place, error)
}

type Forecaster interface {
	Daily(ctx context.Context, lat, lon float64, days int, timezone string) ([]forecast.Day, error)
}

type POIFinder interface {
	Nearby(ctx context.Context, lat, lon float64) ([]poi.POI, error)
}

type EventFinder interface {
	Window(ctx context.Context, lat, lon float64, start, end time.Time) ([]events.Event, error)
}

// Service runs the aggregation pipeline: geocode first, then forecast, POIs
// and events concurrently, then deterministic synthesis of the itinerary,
// packing list and summary.
type Service struct {
	geo      Geocoder
	weather  Forecaster
	pois     POIFinder
	events   EventFinder
	polisher polish.Polisher
	now      func() time.Time
}

func NewService(geo Geocoder, weather Forecaster, pois POIFinder, evs EventFinder, polisher polish.Polisher) *Service {
	if polisher == nil {
		polisher = polish.Noop{}
	}
	return &Service{
		geo:      geo,
		weather:  weather,
		pois:     pois,
		events:   evs,
		polisher: polisher,
		now:      time.Now,
	}
}

// Plan assembles a trip plan for the destination. Geocoding is a hard
// prerequisite; once it resolves, the three provider fetches run concurrently
// and any failure aborts the whole request. Partial success is not a thing
// here: the response either has all its inputs or is an error.
func (s *Service) Plan(ctx context.Context, destination string, days int) (Result, error) {
	place, err := s.geo.Lookup(ctx, destination)
	if err != nil {
		return Result{}, err
	}
	label := fmt.Sprintf("%s, %s", place.Name, place.Country)

	now := s.now().UTC()
	windowEnd := now.Add(time.Duration(days+1) * 24 * time.Hour)

	var (
		fc  []forecast.Day
		ps  []poi.POI
		evs []events.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fc, err = s.weather.Daily(gctx, place.Latitude, place.Longitude, days, place.Timezone)
		return err
	})
	g.Go(func() error {
		var err error
		ps, err = s.pois.Nearby(gctx, place.Latitude, place.Longitude)
		return err
	})
	g.Go(func() error {
		var err error
		evs, err = s.events.Window(gctx, place.Latitude, place.Longitude, now, windowEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	today := now.Truncate(24 * time.Hour)
	daily := make([]DayPlan, 0, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i).Format("2006-01-02")
		daily = append(daily, buildDayPlan(i, date, ps, evs))
	}

	summary := s.polisher.Polish(ctx, composeSummary(label, fc, len(ps), len(evs)))

	return Result{
		Destination:    label,
		Days:           days,
		Summary:        summary,
		DailyItinerary: daily,
		PackingList:    buildPackingList(fc),
		Context: Context{
			PlanID:   uuid.NewString(),
			Geo:      place,
			Forecast: fc,
			POIs:     ps,
			Events:   evs,
		},
	}, nil
}
