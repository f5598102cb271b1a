package response_models

type ScheduledStop struct {
	PlaceID          string  `json:"place_id"`
	PlaceName        string  `json:"place_name,omitempty"`
	Order            int     `json:"order"`
	StartTime        string  `json:"start_time,omitempty"`
	EndTime          string  `json:"end_time,omitempty"`
	TravelTimeMin    int     `json:"travel_time_min"`
	DistanceKm       float64 `json:"distance_km"`
	RouteProvider    string  `json:"route_provider,omitempty"`
	ValidationStatus string  `json:"validation_status"`
	ValidationReason string  `json:"validation_reason,omitempty"`
}

type DaySchedule struct {
	TripDayID string          `json:"trip_day_id,omitempty"`
	Date      string          `json:"date"`
	Stops     []ScheduledStop `json:"stops"`
	Warnings  []string        `json:"warnings"`
}

type RouteEstimate struct {
	DistanceKm    float64 `json:"distance_km"`
	TravelTimeMin int     `json:"travel_time_min"`
	Provider      string  `json:"provider"`
}

type StopValidation struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
