package schedule

import (
	"context"
	"fmt"
	"sort"

	"tripdesk/internal/routing"
	"tripdesk/pkg/utils"
)

// ScheduleDay computes arrival/departure times for one day's stops.
//
// Stops are stable-sorted by Order and walked sequentially: a minute cursor
// starts at the configured day start, travel time plus the transition
// buffer is added between consecutive resolvable stops, and each stop is
// validated against its opening pattern and closure. Validation never stops
// the walk; the cursor advances through invalid stops so later stops stay
// chronologically ordered and the conflict is surfaced, not corrected.
//
// The only hard failure is an unparseable target date or timezone
// (utils.ErrInvalidDate). The cursor is monotonic in minutes internally;
// rendered clock strings wrap across midnight.
func ScheduleDay(ctx context.Context, events []InputEvent, sctx Context) (*DayResult, error) {
	cfg := sctx.Config.withDefaults()

	if _, err := utils.ParseDateInZone(sctx.Date, cfg.Timezone); err != nil {
		return nil, utils.ErrInvalidDate
	}

	cursor, err := utils.ParseClock(cfg.DayStartTime)
	if err != nil {
		cursor, _ = utils.ParseClock(DefaultDayStartTime)
	}

	sorted := make([]InputEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	routeCfg := routing.Config{BaseURL: cfg.RoutingBaseURL}

	out := make([]Event, 0, len(sorted))
	warnings := make([]string, 0)
	invalid := 0

	var prev *Place
	for _, in := range sorted {
		place := sctx.Places[in.PlaceID]
		if place == nil {
			// No geometry to route against: flag it and leave the
			// cursor where it is.
			warnings = append(warnings, "PLACE_NOT_FOUND:"+in.PlaceID)
			out = append(out, Event{
				PlaceID: in.PlaceID,
				Order:   in.Order,
				Status:  StatusInvalid,
				Reason:  ReasonPlaceNotFound,
			})
			invalid++
			continue
		}

		ev := Event{PlaceID: in.PlaceID, Order: in.Order}

		if prev != nil {
			var leg routing.Result
			if sctx.Resolver != nil {
				leg = sctx.Resolver.Resolve(ctx,
					routing.Point{Lon: prev.Longitude, Lat: prev.Latitude},
					routing.Point{Lon: place.Longitude, Lat: place.Latitude},
					routeCfg)
			}
			cursor += cfg.TransitionBufferMin + leg.TravelTimeMin
			ev.TravelTimeMin = leg.TravelTimeMin
			ev.DistanceKm = leg.DistanceKm
			ev.Provider = leg.Provider
		}

		start := cursor
		end := cursor + place.AvgDurationMin
		ev.StartTime = utils.FormatClock(start)
		ev.EndTime = utils.FormatClock(end)

		ev.Status, ev.Reason = ValidateEvent(place, sctx.Date, ev.StartTime, ValidateOptions{
			Closure:  sctx.Closures[place.ID],
			Timezone: cfg.Timezone,
		})
		if ev.Status == StatusInvalid {
			invalid++
		}

		cursor = end
		prev = place
		out = append(out, ev)
	}

	if invalid > 0 {
		warnings = append(warnings, fmt.Sprintf("INVALID_EVENTS:%d", invalid))
	}

	return &DayResult{Events: out, Warnings: warnings}, nil
}
