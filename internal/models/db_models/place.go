package db_models

import "github.com/lib/pq"

type Place struct {
	BaseModel
	Name           string
	Category       string
	Latitude       float64
	Longitude      float64
	AvgDurationMin int
	OpensAt        string         // "HH:MM", 24h
	ClosesAt       string         // "HH:MM", 24h
	ClosedDays     pq.StringArray `gorm:"type:text[]"` // "MONDAY", ...
	Address        string
	ContactInfo    string
	IsActive       bool `gorm:"default:true"`

	Closures []Closure `gorm:"foreignKey:PlaceID"`
	Stops    []TripStop `gorm:"foreignKey:PlaceID"`
}
