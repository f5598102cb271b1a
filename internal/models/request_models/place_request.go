package request_models

import "github.com/google/uuid"

type CreatePlaceRequest struct {
	Name           string   `json:"name" binding:"required"`
	Category       string   `json:"category"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	AvgDurationMin int      `json:"avg_duration_min" binding:"required,gt=0"`
	OpensAt        string   `json:"opens_at" binding:"required"`
	ClosesAt       string   `json:"closes_at" binding:"required"`
	ClosedDays     []string `json:"closed_days"`
	Address        string   `json:"address"`
	ContactInfo    string   `json:"contact_info"`
}

type UpdatePlaceRequest struct {
	ID             uuid.UUID `json:"id" binding:"required"`
	Name           string    `json:"name" binding:"required"`
	Category       string    `json:"category"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AvgDurationMin int       `json:"avg_duration_min" binding:"required,gt=0"`
	OpensAt        string    `json:"opens_at" binding:"required"`
	ClosesAt       string    `json:"closes_at" binding:"required"`
	ClosedDays     []string  `json:"closed_days"`
	Address        string    `json:"address"`
	ContactInfo    string    `json:"contact_info"`
	IsActive       *bool     `json:"is_active"`
}

type CreateClosureRequest struct {
	Date            string                `json:"date" binding:"required"`
	IsClosedFullDay bool                  `json:"is_closed_full_day"`
	Reason          string                `json:"reason"`
	Ranges          []ClosureRangeRequest `json:"ranges"`
}

type ClosureRangeRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
