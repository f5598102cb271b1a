package db_models

import "github.com/google/uuid"

// Closure is a date-specific override of a place's weekly opening pattern.
// When IsClosedFullDay is false the closed windows live in Ranges.
type Closure struct {
	BaseModel
	PlaceID         uuid.UUID `gorm:"index"`
	Date            string    `gorm:"index"` // "YYYY-MM-DD"
	IsClosedFullDay bool
	Reason          string

	Ranges []ClosureRange `gorm:"foreignKey:ClosureID"`
}

type ClosureRange struct {
	BaseModel
	ClosureID uuid.UUID `gorm:"index"`
	StartTime string    // "HH:MM"
	EndTime   string    // "HH:MM"
}
