package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type TripsController struct {
	tripService     services.TripServiceInterface
	scheduleService services.ScheduleServiceInterface
}

func NewTripsController(
	tripService services.TripServiceInterface,
	scheduleService services.ScheduleServiceInterface,
) *TripsController {
	return &TripsController{
		tripService:     tripService,
		scheduleService: scheduleService,
	}
}

func (t *TripsController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := t.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Trip created successfully")
}

func (t *TripsController) GetTripByID(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func (t *TripsController) ListTrips(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (t *TripsController) DeleteTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

func (t *TripsController) AddDay(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.AddTripDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := t.tripService.AddDay(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Day added successfully")
}

func (t *TripsController) AddStop(c *gin.Context) {
	dayID := c.Param("dayId")
	if dayID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Day ID is required")
		return
	}

	var req request_models.AddStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := t.tripService.AddStop(c.Request.Context(), dayID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Stop added successfully")
}

func (t *TripsController) RemoveStop(c *gin.Context) {
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day ID")
		return
	}

	stopID, err := uuid.Parse(c.Param("stopId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid stop ID")
		return
	}

	if err := t.tripService.RemoveStop(c.Request.Context(), dayID, stopID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Stop removed successfully")
}

func (t *TripsController) PreviewDaySchedule(c *gin.Context) {
	dayID := c.Param("dayId")
	if dayID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Day ID is required")
		return
	}

	result, err := t.scheduleService.PreviewDaySchedule(c.Request.Context(), dayID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Day schedule computed")
}

func (t *TripsController) SaveDaySchedule(c *gin.Context) {
	dayID := c.Param("dayId")
	if dayID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Day ID is required")
		return
	}

	result, err := t.scheduleService.SaveDaySchedule(c.Request.Context(), dayID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Day schedule saved")
}
