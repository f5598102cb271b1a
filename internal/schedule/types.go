package schedule

import (
	"context"

	"tripdesk/internal/routing"
)

// Place is a read-only snapshot of a visitable place, supplied by the
// caller for the duration of a scheduling run.
type Place struct {
	ID             string
	Name           string
	Category       string
	Longitude      float64
	Latitude       float64
	AvgDurationMin int
	OpensAt        string // "HH:MM", 24h
	ClosesAt       string // "HH:MM", 24h
	ClosedDays     []string
	Active         bool
}

// TimeRange is a closed interval of clock time within one day.
type TimeRange struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Closure is a date-specific override of a place's weekly opening pattern.
// At most one closure is considered per place per date; the caller resolves
// duplicates before a run.
type Closure struct {
	PlaceID         string
	Date            string // "YYYY-MM-DD"
	IsClosedFullDay bool
	ClosedRanges    []TimeRange
}

// InputEvent is one requested stop in a day, positioned by Order.
// Equal orders are allowed; ties keep input sequence.
type InputEvent struct {
	PlaceID string
	Order   int
}

type ValidationStatus string

const (
	StatusValid   ValidationStatus = "VALID"
	StatusInvalid ValidationStatus = "INVALID"
)

// ValidationReason is the closed set of reasons a stop can be flagged
// invalid. Empty means valid.
type ValidationReason string

const (
	ReasonPlaceNotFound  ValidationReason = "PLACE_NOT_FOUND"
	ReasonFullDayClosure ValidationReason = "FULL_DAY_CLOSURE"
	ReasonClosureRange   ValidationReason = "CLOSURE_RANGE"
	ReasonClosedDay      ValidationReason = "CLOSED_DAY"
	ReasonOutsideHours   ValidationReason = "OUTSIDE_HOURS"
)

// Event is one scheduled stop. The leg fields describe travel from the
// previous resolvable stop and are zero (with empty provider) for the first.
type Event struct {
	PlaceID       string
	Order         int
	StartTime     string
	EndTime       string
	TravelTimeMin int
	DistanceKm    float64
	Provider      routing.Provider
	Status        ValidationStatus
	Reason        ValidationReason
}

// DayResult is the output of a scheduling run.
type DayResult struct {
	Events   []Event
	Warnings []string
}

// Config holds the per-call scheduling settings.
type Config struct {
	DayStartTime        string
	TransitionBufferMin int
	Timezone            string
	RoutingBaseURL      string
}

const (
	DefaultDayStartTime        = "09:00"
	DefaultTransitionBufferMin = 10
	DefaultTimezone            = "Asia/Kolkata"
)

// RouteResolver produces a route leg between two coordinates. It must be
// total: infrastructure failures degrade the result, never error out.
type RouteResolver interface {
	Resolve(ctx context.Context, origin, destination routing.Point, cfg routing.Config) routing.Result
}

// Context supplies everything a scheduling run reads: the target date,
// pre-fetched snapshots keyed by place id, closures already filtered to the
// target date, a route resolver and the effective config.
type Context struct {
	Date     string // "YYYY-MM-DD"
	Places   map[string]*Place
	Closures map[string]*Closure
	Resolver RouteResolver
	Config   Config
}

func (c Config) withDefaults() Config {
	if c.DayStartTime == "" {
		c.DayStartTime = DefaultDayStartTime
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.RoutingBaseURL == "" {
		c.RoutingBaseURL = routing.DefaultBaseURL
	}
	return c
}
