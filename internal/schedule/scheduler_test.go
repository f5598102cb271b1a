package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/routing"
	"tripdesk/pkg/utils"
)

// stubResolver returns the same leg for every pair of points.
type stubResolver struct {
	res   routing.Result
	calls int
}

func (s *stubResolver) Resolve(_ context.Context, _, _ routing.Point, _ routing.Config) routing.Result {
	s.calls++
	return s.res
}

func testPlaces() map[string]*Place {
	return map[string]*Place{
		"museum": {
			ID: "museum", Name: "City Museum",
			Longitude: 77.2090, Latitude: 28.6139,
			AvgDurationMin: 60, OpensAt: "09:00", ClosesAt: "18:00", Active: true,
		},
		"fort": {
			ID: "fort", Name: "Old Fort",
			Longitude: 77.2410, Latitude: 28.6096,
			AvgDurationMin: 90, OpensAt: "08:00", ClosesAt: "20:00", Active: true,
		},
		"garden": {
			ID: "garden", Name: "Lake Garden",
			Longitude: 77.2195, Latitude: 28.5933,
			AvgDurationMin: 45, OpensAt: "06:00", ClosesAt: "22:00", Active: true,
		},
	}
}

func testContext(resolver RouteResolver) Context {
	return Context{
		Date:     monday,
		Places:   testPlaces(),
		Closures: map[string]*Closure{},
		Resolver: resolver,
		Config: Config{
			DayStartTime:        "09:00",
			TransitionBufferMin: 10,
			Timezone:            "Asia/Kolkata",
		},
	}
}

func TestScheduleDaySingleStop(t *testing.T) {
	sctx := testContext(&stubResolver{})

	result, err := ScheduleDay(context.Background(), []InputEvent{{PlaceID: "museum", Order: 1}}, sctx)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)

	ev := result.Events[0]
	assert.Equal(t, "09:00", ev.StartTime)
	assert.Equal(t, "10:00", ev.EndTime)
	assert.Zero(t, ev.TravelTimeMin)
	assert.Empty(t, ev.Provider)
	assert.Equal(t, StatusValid, ev.Status)
	assert.Empty(t, result.Warnings)
}

func TestScheduleDayAppliesTravelAndBuffer(t *testing.T) {
	resolver := &stubResolver{res: routing.Result{DistanceKm: 12, TravelTimeMin: 20, Provider: routing.ProviderOSRM}}
	sctx := testContext(resolver)

	events := []InputEvent{
		{PlaceID: "museum", Order: 1},
		{PlaceID: "fort", Order: 2},
	}
	result, err := ScheduleDay(context.Background(), events, sctx)
	require.NoError(t, err)
	require.Len(t, result.Events, 2)

	first, second := result.Events[0], result.Events[1]
	assert.Equal(t, "09:00", first.StartTime)
	assert.Equal(t, "10:00", first.EndTime)

	// 10:00 end, plus 10 min buffer and 20 min travel.
	assert.Equal(t, "10:30", second.StartTime)
	assert.Equal(t, "12:00", second.EndTime)
	assert.Equal(t, 20, second.TravelTimeMin)
	assert.Equal(t, 12.0, second.DistanceKm)
	assert.Equal(t, routing.ProviderOSRM, second.Provider)
	assert.Equal(t, 1, resolver.calls)
}

func TestScheduleDaySortsByOrderStable(t *testing.T) {
	sctx := testContext(&stubResolver{})

	events := []InputEvent{
		{PlaceID: "garden", Order: 3},
		{PlaceID: "museum", Order: 1},
		{PlaceID: "fort", Order: 1},
	}
	result, err := ScheduleDay(context.Background(), events, sctx)
	require.NoError(t, err)
	require.Len(t, result.Events, 3)

	// Equal orders keep input sequence: museum came before fort.
	assert.Equal(t, "museum", result.Events[0].PlaceID)
	assert.Equal(t, "fort", result.Events[1].PlaceID)
	assert.Equal(t, "garden", result.Events[2].PlaceID)
}

func TestScheduleDayMissingPlaceKeepsCursor(t *testing.T) {
	resolver := &stubResolver{res: routing.Result{TravelTimeMin: 20, Provider: routing.ProviderHaversine}}
	sctx := testContext(resolver)

	events := []InputEvent{
		{PlaceID: "museum", Order: 1},
		{PlaceID: "ghost", Order: 2},
		{PlaceID: "fort", Order: 3},
	}
	result, err := ScheduleDay(context.Background(), events, sctx)
	require.NoError(t, err)
	require.Len(t, result.Events, 3)

	ghost := result.Events[1]
	assert.Equal(t, StatusInvalid, ghost.Status)
	assert.Equal(t, ReasonPlaceNotFound, ghost.Reason)
	assert.Empty(t, ghost.StartTime)

	// The leg for the fort is routed from the museum, skipping the
	// unresolvable stop entirely.
	fort := result.Events[2]
	assert.Equal(t, "10:30", fort.StartTime)
	assert.Equal(t, 1, resolver.calls)

	assert.Contains(t, result.Warnings, "PLACE_NOT_FOUND:ghost")
	assert.Contains(t, result.Warnings, "INVALID_EVENTS:1")
}

func TestScheduleDayInvalidStopsStillAdvanceCursor(t *testing.T) {
	sctx := testContext(&stubResolver{res: routing.Result{TravelTimeMin: 15, Provider: routing.ProviderStatic}})
	sctx.Closures["museum"] = &Closure{PlaceID: "museum", Date: monday, IsClosedFullDay: true}

	events := []InputEvent{
		{PlaceID: "museum", Order: 1},
		{PlaceID: "fort", Order: 2},
	}
	result, err := ScheduleDay(context.Background(), events, sctx)
	require.NoError(t, err)

	museum := result.Events[0]
	assert.Equal(t, StatusInvalid, museum.Status)
	assert.Equal(t, ReasonFullDayClosure, museum.Reason)
	assert.Equal(t, "09:00", museum.StartTime, "invalid stops still get times")

	// The walk is not re-planned around the conflict.
	assert.Equal(t, "10:25", result.Events[1].StartTime)
	assert.Contains(t, result.Warnings, "INVALID_EVENTS:1")
}

func TestScheduleDayInvalidDate(t *testing.T) {
	sctx := testContext(&stubResolver{})
	sctx.Date = "02-06-2025"

	_, err := ScheduleDay(context.Background(), nil, sctx)
	assert.ErrorIs(t, err, utils.ErrInvalidDate)
}

func TestScheduleDayEmptyInput(t *testing.T) {
	result, err := ScheduleDay(context.Background(), nil, testContext(&stubResolver{}))
	require.NoError(t, err)
	assert.Empty(t, result.Events)
	assert.Empty(t, result.Warnings)
}

func TestScheduleDayDeterministic(t *testing.T) {
	resolver := &stubResolver{res: routing.Result{DistanceKm: 3.2, TravelTimeMin: 8, Provider: routing.ProviderOSRM}}
	events := []InputEvent{
		{PlaceID: "fort", Order: 2},
		{PlaceID: "museum", Order: 1},
		{PlaceID: "garden", Order: 3},
	}

	first, err := ScheduleDay(context.Background(), events, testContext(resolver))
	require.NoError(t, err)
	second, err := ScheduleDay(context.Background(), events, testContext(resolver))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScheduleDayWrapsPastMidnight(t *testing.T) {
	sctx := testContext(&stubResolver{})
	sctx.Config.DayStartTime = "23:00"

	result, err := ScheduleDay(context.Background(), []InputEvent{{PlaceID: "fort", Order: 1}}, sctx)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)

	ev := result.Events[0]
	assert.Equal(t, "23:00", ev.StartTime)
	assert.Equal(t, "00:30", ev.EndTime)
}

func TestScheduleDayDefaultsApplied(t *testing.T) {
	sctx := testContext(&stubResolver{})
	sctx.Config = Config{}

	result, err := ScheduleDay(context.Background(), []InputEvent{{PlaceID: "museum", Order: 1}}, sctx)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, DefaultDayStartTime, result.Events[0].StartTime)
}
