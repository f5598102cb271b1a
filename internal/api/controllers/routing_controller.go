package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/routing"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

// RoutingController exposes the standalone estimate and what-if validation
// endpoints outside a full day schedule.
type RoutingController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewRoutingController(scheduleService services.ScheduleServiceInterface) *RoutingController {
	return &RoutingController{
		scheduleService: scheduleService,
	}
}

func (r *RoutingController) EstimateRoute(c *gin.Context) {
	var req request_models.EstimateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	estimate, err := r.scheduleService.EstimateRoute(c.Request.Context(),
		routing.Point{Lon: req.Origin.Longitude, Lat: req.Origin.Latitude},
		routing.Point{Lon: req.Destination.Longitude, Lat: req.Destination.Latitude})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, estimate, "Route estimated")
}

func (r *RoutingController) ValidateStop(c *gin.Context) {
	var req request_models.ValidateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := r.scheduleService.ValidateStop(c.Request.Context(), req.PlaceID, req.Date, req.StartTime)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Stop validated")
}
