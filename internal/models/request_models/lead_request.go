package request_models

type CreateLeadRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Destination string `json:"destination"`
	BudgetMinor int64  `json:"budget_minor"`
	Currency    string `json:"currency"`
	Notes       string `json:"notes"`
}

type UpdateLeadRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Destination string `json:"destination"`
	BudgetMinor int64  `json:"budget_minor"`
	Currency    string `json:"currency"`
	Status      string `json:"status" binding:"omitempty,oneof=NEW CONTACTED QUOTED WON LOST"`
	Notes       string `json:"notes"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
