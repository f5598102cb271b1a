package db_models

// Setting is one key/value row of back-office configuration
// (day_start_time, default_transition_buffer_min, logic_timezone,
// routing_base_url). Values are stored as strings and parsed by the
// settings service, which falls back to hard-coded defaults when unset.
type Setting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex"`
	Value string
}
