// Package schedule decides whether a proposed counseling slot is legal to book.
// It is a pure policy over time values; conflict checking against stored
// appointments lives with the appointment controller and the partial unique
// index on appointments(appointment_date_time).
package schedule

import (
	"errors"
	"log"
	"time"
)

var (
	ErrNotOnHour           = errors.New("appointments must start exactly on the hour")
	ErrWeekend             = errors.New("appointments cannot be booked on weekends")
	ErrOutsideWorkingHours = errors.New("appointments must fall within guidance office hours")
)

// Guidance office hours, local time, half-open [From, To).
// 12:00 is the lunch break, 19:00 the evening break; 20:00 is the last
// bookable start. The legacy create/reschedule paths disagreed on hour 21,
// this unifies both to exclude it.
type hourBand struct {
	From, To int
}

var openBands = []hourBand{
	{8, 12},
	{13, 19},
	{20, 21},
}

// SlotStale is how long past its start a pending appointment may sit
// before the sweep closes it.
const SlotStale = time.Hour

type Policy struct {
	Location *time.Location
}

// NewPolicy builds a policy evaluating candidates in the given IANA timezone.
// An unknown name falls back to UTC, same as time.LoadLocation behaviour
// the rest of the app relies on.
func NewPolicy(tz string) Policy {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("[WARN] unknown timezone %q, falling back to UTC", tz)
		loc = time.UTC
	}
	return Policy{Location: loc}
}

// ValidateSlot reports why the candidate instant is not a bookable slot,
// or nil when it is. Conflict with existing bookings is not checked here.
func (p Policy) ValidateSlot(candidate time.Time) error {
	local := candidate.In(p.Location)

	if local.Minute() != 0 || local.Second() != 0 {
		return ErrNotOnHour
	}

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return ErrWeekend
	}

	hour := local.Hour()
	for _, b := range openBands {
		if hour >= b.From && hour < b.To {
			return nil
		}
	}
	return ErrOutsideWorkingHours
}

// StaleCutoff returns the instant before which a still-pending appointment
// counts as stale. now is explicit so the sweep is testable.
func StaleCutoff(now time.Time) time.Time {
	return now.Add(-SlotStale)
}
