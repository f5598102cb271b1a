package schedule

import (
	"strings"

	"tripdesk/pkg/utils"
)

// ValidateOptions carries the optional inputs of a validation check.
type ValidateOptions struct {
	Closure  *Closure
	Timezone string
}

// ValidateEvent checks one stop at startTime on date against the place's
// opening pattern and any date-specific closure. Decision order, first
// match wins: missing place, full-day closure, closure range overlap,
// weekly closed day, opening hours. A date override always beats the weekly
// pattern. Malformed clock fields on the place are treated as unbounded;
// normalization is the API boundary's job.
func ValidateEvent(place *Place, date string, startTime string, opts ValidateOptions) (ValidationStatus, ValidationReason) {
	if place == nil {
		return StatusInvalid, ReasonPlaceNotFound
	}

	if opts.Closure != nil && opts.Closure.IsClosedFullDay {
		return StatusInvalid, ReasonFullDayClosure
	}

	start, startErr := utils.ParseClock(startTime)
	end := start + place.AvgDurationMin

	if opts.Closure != nil && startErr == nil {
		for _, r := range opts.Closure.ClosedRanges {
			rangeStart, err := utils.ParseClock(r.StartTime)
			if err != nil {
				continue
			}
			rangeEnd, err := utils.ParseClock(r.EndTime)
			if err != nil {
				continue
			}
			if rangeStart < end && rangeEnd > start {
				return StatusInvalid, ReasonClosureRange
			}
		}
	}

	zone := opts.Timezone
	if zone == "" {
		zone = DefaultTimezone
	}
	if weekday, err := utils.WeekdayInZone(date, zone); err == nil {
		for _, d := range place.ClosedDays {
			if strings.EqualFold(d, weekday) {
				return StatusInvalid, ReasonClosedDay
			}
		}
	}

	if startErr == nil {
		if opens, err := utils.ParseClock(place.OpensAt); err == nil && start < opens {
			return StatusInvalid, ReasonOutsideHours
		}
		if closes, err := utils.ParseClock(place.ClosesAt); err == nil && end > closes {
			return StatusInvalid, ReasonOutsideHours
		}
	}

	return StatusValid, ""
}
