package db_models

import "github.com/google/uuid"

type Trip struct {
	BaseModel
	Title     string
	Customer  string
	StartDate string // "YYYY-MM-DD"
	EndDate   string
	Notes     string

	Days []TripDay `gorm:"foreignKey:TripID"`
}

type TripDay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"index"`
	DayNumber int
	Date      string // "YYYY-MM-DD"

	Stops []TripStop `gorm:"foreignKey:TripDayID"`
}

// TripStop is one stop in a day. The computed fields are written back by
// the schedule builder when a day schedule is persisted.
type TripStop struct {
	BaseModel
	TripDayID uuid.UUID `gorm:"index"`
	PlaceID   uuid.UUID `gorm:"index"`
	StopOrder int

	StartTime        string // "HH:MM", computed
	EndTime          string // "HH:MM", computed
	TravelTimeMin    int
	DistanceKm       float64
	RouteProvider    string
	ValidationStatus string
	ValidationReason string
	Notes            string
}
