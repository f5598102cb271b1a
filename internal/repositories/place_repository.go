package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

type PlaceRepository interface {
	Create(ctx context.Context, place *db_models.Place) (uuid.UUID, error)
	Update(ctx context.Context, place *db_models.Place) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Place, error)
	GetMapByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *db_models.Place) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		return uuid.Nil, err
	}
	return place.ID, nil
}

func (r *placeRepository) Update(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(place)
		if result.Error != nil {
			return fmt.Errorf("failed to update place: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Place{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Read helpers return default value + nil error when no rows are found.

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		First(&place, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("name asc").
		Find(&places).Error

	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) GetMapByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]db_models.Place, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]db_models.Place{}, nil
	}

	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&places).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]db_models.Place, len(places))
	for _, p := range places {
		out[p.ID] = p
	}
	return out, nil
}
