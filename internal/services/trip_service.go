package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (string, error)
	GetTripByID(ctx context.Context, id string) (*response_models.TripDetail, error)
	ListTrips(ctx context.Context, page, pageSize int) ([]response_models.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	AddDay(ctx context.Context, tripID string, req request_models.AddTripDayRequest) (string, error)
	AddStop(ctx context.Context, dayID string, req request_models.AddStopRequest) (string, error)
	RemoveStop(ctx context.Context, dayID, stopID uuid.UUID) error
}

type TripService struct {
	tripRepo  repositories.TripRepository
	placeRepo repositories.PlaceRepository
	logger    *zap.Logger
}

func NewTripService(
	tripRepo repositories.TripRepository,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		placeRepo: placeRepo,
		logger:    logger,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (string, error) {
	if _, err := utils.ParseDateInZone(req.StartDate, "UTC"); err != nil {
		return "", utils.ErrInvalidDate
	}

	trip := &db_models.Trip{
		Title:     req.Title,
		Customer:  req.Customer,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}

	id, err := t.tripRepo.CreateTrip(ctx, trip)
	if err != nil {
		t.logger.Error("creating trip", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (t *TripService) GetTripByID(ctx context.Context, id string) (*response_models.TripDetail, error) {
	trip, err := t.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		t.logger.Error("fetching trip", zap.String("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	days := make([]response_models.TripDay, 0, len(trip.Days))
	for _, day := range trip.Days {
		stops := make([]response_models.ScheduledStop, 0, len(day.Stops))
		for _, stop := range day.Stops {
			stops = append(stops, response_models.ScheduledStop{
				PlaceID:          stop.PlaceID.String(),
				Order:            stop.StopOrder,
				StartTime:        stop.StartTime,
				EndTime:          stop.EndTime,
				TravelTimeMin:    stop.TravelTimeMin,
				DistanceKm:       stop.DistanceKm,
				RouteProvider:    stop.RouteProvider,
				ValidationStatus: stop.ValidationStatus,
				ValidationReason: stop.ValidationReason,
			})
		}
		days = append(days, response_models.TripDay{
			ID:        day.ID.String(),
			DayNumber: day.DayNumber,
			Date:      day.Date,
			Stops:     stops,
		})
	}

	return &response_models.TripDetail{
		Trip: response_models.Trip{
			ID:        trip.ID.String(),
			Title:     trip.Title,
			Customer:  trip.Customer,
			StartDate: trip.StartDate,
			EndDate:   trip.EndDate,
			Notes:     trip.Notes,
		},
		Days: days,
	}, nil
}

func (t *TripService) ListTrips(ctx context.Context, page, pageSize int) ([]response_models.Trip, error) {
	trips, err := t.tripRepo.ListTrips(ctx, page, pageSize)
	if err != nil {
		t.logger.Error("listing trips", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Trip, 0, len(trips))
	for _, trip := range trips {
		out = append(out, response_models.Trip{
			ID:        trip.ID.String(),
			Title:     trip.Title,
			Customer:  trip.Customer,
			StartDate: trip.StartDate,
			EndDate:   trip.EndDate,
			Notes:     trip.Notes,
		})
	}
	return out, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	trip, err := t.tripRepo.GetTripByID(ctx, id.String())
	if err != nil {
		t.logger.Error("fetching trip", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	if err := t.tripRepo.DeleteTrip(ctx, id); err != nil {
		t.logger.Error("deleting trip", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) AddDay(ctx context.Context, tripID string, req request_models.AddTripDayRequest) (string, error) {
	if _, err := utils.ParseDateInZone(req.Date, "UTC"); err != nil {
		return "", utils.ErrInvalidDate
	}

	trip, err := t.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		t.logger.Error("fetching trip", zap.String("id", tripID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if trip == nil {
		return "", utils.ErrTripNotFound
	}

	dayID, err := t.tripRepo.AddDay(ctx, trip.ID, req.Date)
	if err != nil {
		t.logger.Error("adding trip day", zap.String("trip_id", tripID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	return dayID.String(), nil
}

func (t *TripService) AddStop(ctx context.Context, dayID string, req request_models.AddStopRequest) (string, error) {
	day, err := t.tripRepo.GetDayByID(ctx, dayID)
	if err != nil {
		t.logger.Error("fetching trip day", zap.String("id", dayID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if day == nil {
		return "", utils.ErrTripDayNotFound
	}

	place, err := t.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		t.logger.Error("fetching place", zap.String("id", req.PlaceID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if place == nil {
		return "", utils.ErrPlaceNotFound
	}

	order := req.StopOrder
	if order == 0 {
		// Append after the current last stop.
		for _, stop := range day.Stops {
			if stop.StopOrder >= order {
				order = stop.StopOrder + 10
			}
		}
		if order == 0 {
			order = 10
		}
	}

	stop := &db_models.TripStop{
		TripDayID: day.ID,
		PlaceID:   place.ID,
		StopOrder: order,
		Notes:     req.Notes,
	}

	stopID, err := t.tripRepo.AddStop(ctx, stop)
	if err != nil {
		t.logger.Error("adding stop", zap.String("day_id", dayID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	return stopID.String(), nil
}

func (t *TripService) RemoveStop(ctx context.Context, dayID, stopID uuid.UUID) error {
	if err := t.tripRepo.RemoveStop(ctx, dayID, stopID); err != nil {
		t.logger.Error("removing stop", zap.String("stop_id", stopID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}
