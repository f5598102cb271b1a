package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type PlaceServiceInterface interface {
	GetPlaceByID(ctx context.Context, id string) (response_models.Place, error)
	ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.Place, error)
	CreatePlace(ctx context.Context, req request_models.CreatePlaceRequest) (string, error)
	UpdatePlace(ctx context.Context, req request_models.UpdatePlaceRequest) error
	DeletePlace(ctx context.Context, id uuid.UUID) error

	CreateClosure(ctx context.Context, placeID string, req request_models.CreateClosureRequest) (string, error)
	ListClosures(ctx context.Context, placeID string) ([]response_models.Closure, error)
	DeleteClosure(ctx context.Context, id uuid.UUID) error
}

type PlaceService struct {
	placeRepo   repositories.PlaceRepository
	closureRepo repositories.ClosureRepository
	logger      *zap.Logger
}

func NewPlaceService(
	placeRepo repositories.PlaceRepository,
	closureRepo repositories.ClosureRepository,
	logger *zap.Logger,
) PlaceServiceInterface {
	return &PlaceService{
		placeRepo:   placeRepo,
		closureRepo: closureRepo,
		logger:      logger,
	}
}

func (p *PlaceService) GetPlaceByID(ctx context.Context, id string) (response_models.Place, error) {
	place, err := p.placeRepo.GetByID(ctx, id)
	if err != nil {
		p.logger.Error("fetching place", zap.String("id", id), zap.Error(err))
		return response_models.Place{}, utils.ErrDatabaseError
	}
	if place == nil {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}
	return placeResponse(place), nil
}

func (p *PlaceService) ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.Place, error) {
	places, err := p.placeRepo.List(ctx, page, pageSize)
	if err != nil {
		p.logger.Error("listing places", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Place, 0, len(places))
	for i := range places {
		out = append(out, placeResponse(&places[i]))
	}
	return out, nil
}

func (p *PlaceService) CreatePlace(ctx context.Context, req request_models.CreatePlaceRequest) (string, error) {
	if err := validateClocks(req.OpensAt, req.ClosesAt); err != nil {
		return "", err
	}

	place := &db_models.Place{
		Name:           req.Name,
		Category:       req.Category,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AvgDurationMin: req.AvgDurationMin,
		OpensAt:        req.OpensAt,
		ClosesAt:       req.ClosesAt,
		ClosedDays:     pq.StringArray(req.ClosedDays),
		Address:        req.Address,
		ContactInfo:    req.ContactInfo,
		IsActive:       true,
	}

	id, err := p.placeRepo.Create(ctx, place)
	if err != nil {
		p.logger.Error("creating place", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (p *PlaceService) UpdatePlace(ctx context.Context, req request_models.UpdatePlaceRequest) error {
	if err := validateClocks(req.OpensAt, req.ClosesAt); err != nil {
		return err
	}

	existing, err := p.placeRepo.GetByID(ctx, req.ID.String())
	if err != nil {
		p.logger.Error("fetching place", zap.String("id", req.ID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPlaceNotFound
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude
	existing.AvgDurationMin = req.AvgDurationMin
	existing.OpensAt = req.OpensAt
	existing.ClosesAt = req.ClosesAt
	existing.ClosedDays = pq.StringArray(req.ClosedDays)
	existing.Address = req.Address
	existing.ContactInfo = req.ContactInfo
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := p.placeRepo.Update(ctx, existing); err != nil {
		p.logger.Error("updating place", zap.String("id", req.ID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlaceService) DeletePlace(ctx context.Context, id uuid.UUID) error {
	existing, err := p.placeRepo.GetByID(ctx, id.String())
	if err != nil {
		p.logger.Error("fetching place", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPlaceNotFound
	}

	if err := p.placeRepo.Delete(ctx, id); err != nil {
		p.logger.Error("deleting place", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlaceService) CreateClosure(ctx context.Context, placeID string, req request_models.CreateClosureRequest) (string, error) {
	if _, err := utils.ParseDateInZone(req.Date, "UTC"); err != nil {
		return "", utils.ErrInvalidDate
	}
	if !req.IsClosedFullDay && len(req.Ranges) == 0 {
		return "", utils.ErrInvalidInput
	}
	for _, r := range req.Ranges {
		if err := validateClocks(r.StartTime, r.EndTime); err != nil {
			return "", err
		}
	}

	place, err := p.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		p.logger.Error("fetching place", zap.String("id", placeID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if place == nil {
		return "", utils.ErrPlaceNotFound
	}

	closure := &db_models.Closure{
		PlaceID:         place.ID,
		Date:            req.Date,
		IsClosedFullDay: req.IsClosedFullDay,
		Reason:          req.Reason,
	}
	for _, r := range req.Ranges {
		closure.Ranges = append(closure.Ranges, db_models.ClosureRange{
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}

	id, err := p.closureRepo.Create(ctx, closure)
	if err != nil {
		p.logger.Error("creating closure", zap.String("place_id", placeID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (p *PlaceService) ListClosures(ctx context.Context, placeID string) ([]response_models.Closure, error) {
	place, err := p.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		p.logger.Error("fetching place", zap.String("id", placeID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	closures, err := p.closureRepo.ListByPlace(ctx, place.ID)
	if err != nil {
		p.logger.Error("listing closures", zap.String("place_id", placeID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Closure, 0, len(closures))
	for _, c := range closures {
		ranges := make([]response_models.ClosureRange, 0, len(c.Ranges))
		for _, r := range c.Ranges {
			ranges = append(ranges, response_models.ClosureRange{
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
			})
		}
		out = append(out, response_models.Closure{
			ID:              c.ID.String(),
			PlaceID:         c.PlaceID.String(),
			Date:            c.Date,
			IsClosedFullDay: c.IsClosedFullDay,
			Reason:          c.Reason,
			Ranges:          ranges,
		})
	}
	return out, nil
}

func (p *PlaceService) DeleteClosure(ctx context.Context, id uuid.UUID) error {
	if err := p.closureRepo.Delete(ctx, id); err != nil {
		p.logger.Error("deleting closure", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func validateClocks(clocks ...string) error {
	for _, c := range clocks {
		if _, err := utils.ParseClock(c); err != nil {
			return utils.ErrInvalidInput
		}
	}
	return nil
}

func placeResponse(p *db_models.Place) response_models.Place {
	return response_models.Place{
		ID:             p.ID.String(),
		Name:           p.Name,
		Category:       p.Category,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		AvgDurationMin: p.AvgDurationMin,
		OpensAt:        p.OpensAt,
		ClosesAt:       p.ClosesAt,
		ClosedDays:     []string(p.ClosedDays),
		Address:        p.Address,
		ContactInfo:    p.ContactInfo,
		IsActive:       p.IsActive,
	}
}
