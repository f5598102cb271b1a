package db_models

type Lead struct {
	BaseModel
	Name        string
	Email       string
	Phone       string
	Destination string
	BudgetMinor int64
	Currency    string
	Status      string `gorm:"default:'NEW'"` // NEW, CONTACTED, QUOTED, WON, LOST
	Notes       string
}
