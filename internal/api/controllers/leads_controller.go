package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type LeadsController struct {
	leadService services.LeadServiceInterface
}

func NewLeadsController(leadService services.LeadServiceInterface) *LeadsController {
	return &LeadsController{
		leadService: leadService,
	}
}

func (l *LeadsController) CreateLead(c *gin.Context) {
	var req request_models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := l.leadService.CreateLead(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Lead created successfully")
}

func (l *LeadsController) UpdateLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	var req request_models.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := l.leadService.UpdateLead(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Lead updated successfully")
}

func (l *LeadsController) DeleteLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	if err := l.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Lead deleted successfully")
}

func (l *LeadsController) GetLeadByID(c *gin.Context) {
	leadID := c.Param("id")
	if leadID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Lead ID is required")
		return
	}

	lead, err := l.leadService.GetLeadByID(c.Request.Context(), leadID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lead, "Lead fetched successfully")
}

func (l *LeadsController) ListLeads(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	status := c.Query("status")

	leads, err := l.leadService.ListLeads(c.Request.Context(), status, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leads, "Leads fetched successfully")
}
