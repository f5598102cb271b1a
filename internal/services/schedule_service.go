package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/internal/routing"
	"tripdesk/internal/schedule"
	"tripdesk/pkg/utils"
)

type ScheduleServiceInterface interface {
	PreviewDaySchedule(ctx context.Context, dayID string) (*response_models.DaySchedule, error)
	SaveDaySchedule(ctx context.Context, dayID string) (*response_models.DaySchedule, error)
	ValidateStop(ctx context.Context, placeID, date, startTime string) (*response_models.StopValidation, error)
	EstimateRoute(ctx context.Context, origin, destination routing.Point) (*response_models.RouteEstimate, error)
}

// ScheduleService is the caller shell around the schedule core: it gathers
// read-only snapshots from persistence, resolves the effective config and
// hands everything to the scheduler. Persistence of computed times happens
// only through SaveDaySchedule.
type ScheduleService struct {
	tripRepo    repositories.TripRepository
	placeRepo   repositories.PlaceRepository
	closureRepo repositories.ClosureRepository
	settings    SettingsServiceInterface
	resolver    schedule.RouteResolver
	logger      *zap.Logger
}

func NewScheduleService(
	tripRepo repositories.TripRepository,
	placeRepo repositories.PlaceRepository,
	closureRepo repositories.ClosureRepository,
	settings SettingsServiceInterface,
	resolver schedule.RouteResolver,
	logger *zap.Logger,
) ScheduleServiceInterface {
	return &ScheduleService{
		tripRepo:    tripRepo,
		placeRepo:   placeRepo,
		closureRepo: closureRepo,
		settings:    settings,
		resolver:    resolver,
		logger:      logger,
	}
}

func (s *ScheduleService) PreviewDaySchedule(ctx context.Context, dayID string) (*response_models.DaySchedule, error) {
	day, _, result, names, err := s.buildDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	return dayScheduleResponse(dayID, day.Date, result, names), nil
}

// SaveDaySchedule recomputes the day and writes the computed times back to
// the stops. Orders are persisted as computed; any renumbering is the
// dashboard's concern.
func (s *ScheduleService) SaveDaySchedule(ctx context.Context, dayID string) (*response_models.DaySchedule, error) {
	day, sortedStops, result, names, err := s.buildDay(ctx, dayID)
	if err != nil {
		return nil, err
	}

	// buildDay feeds stops to the scheduler in sorted order, so events
	// zip 1:1 with sortedStops.
	for i := range sortedStops {
		ev := result.Events[i]
		sortedStops[i].StartTime = ev.StartTime
		sortedStops[i].EndTime = ev.EndTime
		sortedStops[i].TravelTimeMin = ev.TravelTimeMin
		sortedStops[i].DistanceKm = ev.DistanceKm
		sortedStops[i].RouteProvider = string(ev.Provider)
		sortedStops[i].ValidationStatus = string(ev.Status)
		sortedStops[i].ValidationReason = string(ev.Reason)
	}

	if err := s.tripRepo.SaveStops(ctx, sortedStops); err != nil {
		s.logger.Error("saving day schedule", zap.String("day_id", dayID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return dayScheduleResponse(dayID, day.Date, result, names), nil
}

func (s *ScheduleService) ValidateStop(ctx context.Context, placeID, date, startTime string) (*response_models.StopValidation, error) {
	cfg, err := s.settings.ScheduleConfig(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := utils.ParseDateInZone(date, cfg.Timezone); err != nil {
		return nil, utils.ErrInvalidDate
	}
	if _, err := utils.ParseClock(startTime); err != nil {
		return nil, utils.ErrInvalidInput
	}

	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		s.logger.Error("fetching place", zap.String("place_id", placeID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	var snapshot *schedule.Place
	var closure *schedule.Closure
	if place != nil {
		snapshot = placeSnapshot(place)

		closures, err := s.closureRepo.GetForDate(ctx, []uuid.UUID{place.ID}, date)
		if err != nil {
			s.logger.Error("fetching closures", zap.String("place_id", placeID), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		if c, ok := closures[place.ID]; ok {
			closure = closureSnapshot(&c)
		}
	}

	status, reason := schedule.ValidateEvent(snapshot, date, startTime, schedule.ValidateOptions{
		Closure:  closure,
		Timezone: cfg.Timezone,
	})

	return &response_models.StopValidation{
		Status: string(status),
		Reason: string(reason),
	}, nil
}

func (s *ScheduleService) EstimateRoute(ctx context.Context, origin, destination routing.Point) (*response_models.RouteEstimate, error) {
	cfg, err := s.settings.ScheduleConfig(ctx)
	if err != nil {
		return nil, err
	}

	result := s.resolver.Resolve(ctx, origin, destination, routing.Config{BaseURL: cfg.RoutingBaseURL})
	if result.Provider != routing.ProviderOSRM {
		s.logger.Warn("route estimate degraded", zap.String("provider", string(result.Provider)))
	}
	return &response_models.RouteEstimate{
		DistanceKm:    result.DistanceKm,
		TravelTimeMin: result.TravelTimeMin,
		Provider:      string(result.Provider),
	}, nil
}

// buildDay loads a trip day with its stops, assembles the core's snapshot
// inputs and runs the scheduler. Stops are returned in the order the
// scheduler walked them.
func (s *ScheduleService) buildDay(ctx context.Context, dayID string) (*db_models.TripDay, []db_models.TripStop, *schedule.DayResult, map[string]string, error) {
	day, err := s.tripRepo.GetDayByID(ctx, dayID)
	if err != nil {
		s.logger.Error("fetching trip day", zap.String("day_id", dayID), zap.Error(err))
		return nil, nil, nil, nil, utils.ErrDatabaseError
	}
	if day == nil {
		return nil, nil, nil, nil, utils.ErrTripDayNotFound
	}

	sortedStops := make([]db_models.TripStop, len(day.Stops))
	copy(sortedStops, day.Stops)
	sort.SliceStable(sortedStops, func(i, j int) bool {
		return sortedStops[i].StopOrder < sortedStops[j].StopOrder
	})

	placeIDs := make([]uuid.UUID, 0, len(sortedStops))
	seen := make(map[uuid.UUID]struct{}, len(sortedStops))
	for _, stop := range sortedStops {
		if _, ok := seen[stop.PlaceID]; ok {
			continue
		}
		seen[stop.PlaceID] = struct{}{}
		placeIDs = append(placeIDs, stop.PlaceID)
	}

	places, err := s.placeRepo.GetMapByIDs(ctx, placeIDs)
	if err != nil {
		s.logger.Error("fetching places", zap.Error(err))
		return nil, nil, nil, nil, utils.ErrDatabaseError
	}

	closures, err := s.closureRepo.GetForDate(ctx, placeIDs, day.Date)
	if err != nil {
		s.logger.Error("fetching closures", zap.Error(err))
		return nil, nil, nil, nil, utils.ErrDatabaseError
	}

	cfg, err := s.settings.ScheduleConfig(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	snapshots := make(map[string]*schedule.Place, len(places))
	names := make(map[string]string, len(places))
	for id, place := range places {
		p := place
		snapshots[id.String()] = placeSnapshot(&p)
		names[id.String()] = p.Name
	}

	closureSnapshots := make(map[string]*schedule.Closure, len(closures))
	for id, closure := range closures {
		c := closure
		closureSnapshots[id.String()] = closureSnapshot(&c)
	}

	inputs := make([]schedule.InputEvent, 0, len(sortedStops))
	for _, stop := range sortedStops {
		inputs = append(inputs, schedule.InputEvent{
			PlaceID: stop.PlaceID.String(),
			Order:   stop.StopOrder,
		})
	}

	result, err := schedule.ScheduleDay(ctx, inputs, schedule.Context{
		Date:     day.Date,
		Places:   snapshots,
		Closures: closureSnapshots,
		Resolver: s.resolver,
		Config:   cfg,
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return day, sortedStops, result, names, nil
}

func dayScheduleResponse(dayID, date string, result *schedule.DayResult, names map[string]string) *response_models.DaySchedule {
	stops := make([]response_models.ScheduledStop, 0, len(result.Events))
	for _, ev := range result.Events {
		stops = append(stops, response_models.ScheduledStop{
			PlaceID:          ev.PlaceID,
			PlaceName:        names[ev.PlaceID],
			Order:            ev.Order,
			StartTime:        ev.StartTime,
			EndTime:          ev.EndTime,
			TravelTimeMin:    ev.TravelTimeMin,
			DistanceKm:       ev.DistanceKm,
			RouteProvider:    string(ev.Provider),
			ValidationStatus: string(ev.Status),
			ValidationReason: string(ev.Reason),
		})
	}

	return &response_models.DaySchedule{
		TripDayID: dayID,
		Date:      date,
		Stops:     stops,
		Warnings:  result.Warnings,
	}
}

func placeSnapshot(p *db_models.Place) *schedule.Place {
	return &schedule.Place{
		ID:             p.ID.String(),
		Name:           p.Name,
		Category:       p.Category,
		Longitude:      p.Longitude,
		Latitude:       p.Latitude,
		AvgDurationMin: p.AvgDurationMin,
		OpensAt:        p.OpensAt,
		ClosesAt:       p.ClosesAt,
		ClosedDays:     []string(p.ClosedDays),
		Active:         p.IsActive,
	}
}

func closureSnapshot(c *db_models.Closure) *schedule.Closure {
	ranges := make([]schedule.TimeRange, 0, len(c.Ranges))
	for _, r := range c.Ranges {
		ranges = append(ranges, schedule.TimeRange{
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	return &schedule.Closure{
		PlaceID:         c.PlaceID.String(),
		Date:            c.Date,
		IsClosedFullDay: c.IsClosedFullDay,
		ClosedRanges:    ranges,
	}
}
