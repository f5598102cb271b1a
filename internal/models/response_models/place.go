package response_models

type Place struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	AvgDurationMin int      `json:"avg_duration_min"`
	OpensAt        string   `json:"opens_at"`
	ClosesAt       string   `json:"closes_at"`
	ClosedDays     []string `json:"closed_days"`
	Address        string   `json:"address"`
	ContactInfo    string   `json:"contact_info"`
	IsActive       bool     `json:"is_active"`
}

type Closure struct {
	ID              string         `json:"id"`
	PlaceID         string         `json:"place_id"`
	Date            string         `json:"date"`
	IsClosedFullDay bool           `json:"is_closed_full_day"`
	Reason          string         `json:"reason,omitempty"`
	Ranges          []ClosureRange `json:"ranges,omitempty"`
}

type ClosureRange struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
