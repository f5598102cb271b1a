package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

func (s *SettingsController) ListSettings(c *gin.Context) {
	settings, err := s.settingsService.ListSettings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings fetched successfully")
}

func (s *SettingsController) UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.RespondError(c, http.StatusBadRequest, "Setting key is required")
		return
	}

	var req request_models.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.settingsService.UpdateSetting(c.Request.Context(), key, req.Value); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Setting updated successfully")
}
