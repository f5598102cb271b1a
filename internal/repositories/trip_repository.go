package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error)
	GetTripByID(ctx context.Context, id string) (*db_models.Trip, error)
	ListTrips(ctx context.Context, page, pageSize int) ([]db_models.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	AddDay(ctx context.Context, tripID uuid.UUID, date string) (uuid.UUID, error)
	GetDayByID(ctx context.Context, id string) (*db_models.TripDay, error)

	AddStop(ctx context.Context, stop *db_models.TripStop) (uuid.UUID, error)
	RemoveStop(ctx context.Context, dayID, stopID uuid.UUID) error
	SaveStops(ctx context.Context, stops []db_models.TripStop) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return uuid.Nil, err
	}
	return trip.ID, nil
}

func (r *tripRepository) GetTripByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_days.day_number asc")
		}).
		Preload("Days.Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_stops.stop_order asc")
		}).
		First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListTrips(ctx context.Context, page, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("created_at desc").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *tripRepository) AddDay(ctx context.Context, tripID uuid.UUID, date string) (uuid.UUID, error) {
	var dayID uuid.UUID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db_models.TripDay{}).
			Where("trip_id = ?", tripID).
			Count(&count).Error; err != nil {
			return err
		}

		day := db_models.TripDay{
			TripID:    tripID,
			DayNumber: int(count) + 1,
			Date:      date,
		}
		if err := tx.Create(&day).Error; err != nil {
			return err
		}
		dayID = day.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return dayID, nil
}

func (r *tripRepository) GetDayByID(ctx context.Context, id string) (*db_models.TripDay, error) {
	var day db_models.TripDay
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_stops.stop_order asc")
		}).
		First(&day, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

func (r *tripRepository) AddStop(ctx context.Context, stop *db_models.TripStop) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(stop).Error; err != nil {
		return uuid.Nil, err
	}
	return stop.ID, nil
}

func (r *tripRepository) RemoveStop(ctx context.Context, dayID, stopID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("trip_day_id = ?", dayID).
		Delete(&db_models.TripStop{}, "id = ?", stopID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// SaveStops persists the schedule builder's computed times in one
// transaction.
func (r *tripRepository) SaveStops(ctx context.Context, stops []db_models.TripStop) error {
	if len(stops) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range stops {
			if err := tx.Save(&stops[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
