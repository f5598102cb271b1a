package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

type ClosureRepository interface {
	Create(ctx context.Context, closure *db_models.Closure) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]db_models.Closure, error)
	GetForDate(ctx context.Context, placeIDs []uuid.UUID, date string) (map[uuid.UUID]db_models.Closure, error)
}

type closureRepository struct {
	db *gorm.DB
}

func NewClosureRepository(db *gorm.DB) ClosureRepository {
	return &closureRepository{db: db}
}

func (r *closureRepository) Create(ctx context.Context, closure *db_models.Closure) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(closure).Error; err != nil {
		return uuid.Nil, err
	}
	return closure.ID, nil
}

func (r *closureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Closure{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *closureRepository) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]db_models.Closure, error) {
	var closures []db_models.Closure
	err := r.db.WithContext(ctx).
		Preload("Ranges").
		Where("place_id = ?", placeID).
		Order("date asc").
		Find(&closures).Error
	if err != nil {
		return nil, err
	}
	return closures, nil
}

// GetForDate returns at most one closure per place for the given date.
// Rows come back newest first, so the first record seen per place wins
// (most-recently-created resolves duplicates).
func (r *closureRepository) GetForDate(ctx context.Context, placeIDs []uuid.UUID, date string) (map[uuid.UUID]db_models.Closure, error) {
	if len(placeIDs) == 0 {
		return map[uuid.UUID]db_models.Closure{}, nil
	}

	var closures []db_models.Closure
	err := r.db.WithContext(ctx).
		Preload("Ranges").
		Where("place_id IN ? AND date = ?", placeIDs, date).
		Order("created_at desc").
		Find(&closures).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]db_models.Closure, len(closures))
	for _, c := range closures {
		if _, ok := out[c.PlaceID]; ok {
			continue
		}
		out[c.PlaceID] = c
	}
	return out, nil
}
