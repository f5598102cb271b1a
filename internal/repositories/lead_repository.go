package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *db_models.Lead) (uuid.UUID, error)
	Update(ctx context.Context, lead *db_models.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Lead, error)
	List(ctx context.Context, status string, page, pageSize int) ([]db_models.Lead, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *db_models.Lead) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return uuid.Nil, err
	}
	return lead.ID, nil
}

func (r *leadRepository) Update(ctx context.Context, lead *db_models.Lead) error {
	result := r.db.WithContext(ctx).Save(lead)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Lead{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*db_models.Lead, error) {
	var lead db_models.Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) List(ctx context.Context, status string, page, pageSize int) ([]db_models.Lead, error) {
	var leads []db_models.Lead
	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}
