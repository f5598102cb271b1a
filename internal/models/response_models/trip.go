package response_models

type Trip struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Customer  string `json:"customer,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type TripDetail struct {
	Trip
	Days []TripDay `json:"days"`
}

type TripDay struct {
	ID        string          `json:"id"`
	DayNumber int             `json:"day_number"`
	Date      string          `json:"date"`
	Stops     []ScheduledStop `json:"stops"`
}

type Lead struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Destination string `json:"destination,omitempty"`
	BudgetMinor int64  `json:"budget_minor,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
