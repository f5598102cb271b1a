package request_models

type CreateTripRequest struct {
	Title     string `json:"title" binding:"required"`
	Customer  string `json:"customer"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

type AddTripDayRequest struct {
	Date string `json:"date" binding:"required"`
}

type AddStopRequest struct {
	PlaceID   string `json:"place_id" binding:"required,uuid4"`
	StopOrder int    `json:"stop_order"`
	Notes     string `json:"notes"`
}
