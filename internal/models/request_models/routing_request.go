package request_models

type CoordinateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type EstimateRouteRequest struct {
	Origin      CoordinateRequest `json:"origin" binding:"required"`
	Destination CoordinateRequest `json:"destination" binding:"required"`
}

// ValidateStopRequest is a standalone "what-if" check before committing a
// stop to a day.
type ValidateStopRequest struct {
	PlaceID   string `json:"place_id" binding:"required,uuid4"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}
