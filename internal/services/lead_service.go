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

type LeadServiceInterface interface {
	CreateLead(ctx context.Context, req request_models.CreateLeadRequest) (string, error)
	UpdateLead(ctx context.Context, id uuid.UUID, req request_models.UpdateLeadRequest) error
	DeleteLead(ctx context.Context, id uuid.UUID) error
	GetLeadByID(ctx context.Context, id string) (response_models.Lead, error)
	ListLeads(ctx context.Context, status string, page, pageSize int) ([]response_models.Lead, error)
}

type LeadService struct {
	leadRepo repositories.LeadRepository
	logger   *zap.Logger
}

func NewLeadService(leadRepo repositories.LeadRepository, logger *zap.Logger) LeadServiceInterface {
	return &LeadService{
		leadRepo: leadRepo,
		logger:   logger,
	}
}

func (l *LeadService) CreateLead(ctx context.Context, req request_models.CreateLeadRequest) (string, error) {
	lead := &db_models.Lead{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Destination: req.Destination,
		BudgetMinor: req.BudgetMinor,
		Currency:    req.Currency,
		Status:      "NEW",
		Notes:       req.Notes,
	}

	id, err := l.leadRepo.Create(ctx, lead)
	if err != nil {
		l.logger.Error("creating lead", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (l *LeadService) UpdateLead(ctx context.Context, id uuid.UUID, req request_models.UpdateLeadRequest) error {
	existing, err := l.leadRepo.GetByID(ctx, id.String())
	if err != nil {
		l.logger.Error("fetching lead", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrLeadNotFound
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Destination = req.Destination
	existing.BudgetMinor = req.BudgetMinor
	existing.Currency = req.Currency
	existing.Notes = req.Notes
	if req.Status != "" {
		existing.Status = req.Status
	}

	if err := l.leadRepo.Update(ctx, existing); err != nil {
		l.logger.Error("updating lead", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (l *LeadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	existing, err := l.leadRepo.GetByID(ctx, id.String())
	if err != nil {
		l.logger.Error("fetching lead", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrLeadNotFound
	}

	if err := l.leadRepo.Delete(ctx, id); err != nil {
		l.logger.Error("deleting lead", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (l *LeadService) GetLeadByID(ctx context.Context, id string) (response_models.Lead, error) {
	lead, err := l.leadRepo.GetByID(ctx, id)
	if err != nil {
		l.logger.Error("fetching lead", zap.String("id", id), zap.Error(err))
		return response_models.Lead{}, utils.ErrDatabaseError
	}
	if lead == nil {
		return response_models.Lead{}, utils.ErrLeadNotFound
	}
	return leadResponse(lead), nil
}

func (l *LeadService) ListLeads(ctx context.Context, status string, page, pageSize int) ([]response_models.Lead, error) {
	leads, err := l.leadRepo.List(ctx, status, page, pageSize)
	if err != nil {
		l.logger.Error("listing leads", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Lead, 0, len(leads))
	for i := range leads {
		out = append(out, leadResponse(&leads[i]))
	}
	return out, nil
}

func leadResponse(lead *db_models.Lead) response_models.Lead {
	return response_models.Lead{
		ID:          lead.ID.String(),
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Destination: lead.Destination,
		BudgetMinor: lead.BudgetMinor,
		Currency:    lead.Currency,
		Status:      lead.Status,
		Notes:       lead.Notes,
	}
}
