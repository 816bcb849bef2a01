// Package timegrid generates the bookable slot grid for a day and classifies
// each slot against the set of already-booked times.
package timegrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidTime     = errors.New("time must be HH:MM with 0-23 hours and 0-59 minutes")
	ErrInvalidInterval = errors.New("interval must be positive")
	ErrInvalidRange    = errors.New("start must not be after end")
)

// TimeOfDay is a wall-clock time within a single day. Values are ordered by
// total minutes since midnight.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Parse converts "HH:MM" (a single leading digit is accepted for hours) into
// a TimeOfDay.
func Parse(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, ErrInvalidTime
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTime
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTime
	}
	t := TimeOfDay{Hour: h, Minute: m}
	if !t.Valid() {
		return TimeOfDay{}, ErrInvalidTime
	}
	return t, nil
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Minutes returns the total minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Minutes() < u.Minutes()
}

func (t TimeOfDay) After(u TimeOfDay) bool {
	return t.Minutes() > u.Minutes()
}

// String formats the time as zero-padded "HH:MM", the same representation the
// booking ledger keys on.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// fromMinutes is the inverse of Minutes for in-day values.
func fromMinutes(m int) TimeOfDay {
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// Generate produces every slot start reachable from start by whole multiples
// of intervalMinutes, up to and including end when it is exactly reachable.
// When the interval does not divide the span evenly the grid simply stops at
// the last in-bounds multiple.
func Generate(start, end TimeOfDay, intervalMinutes int) ([]TimeOfDay, error) {
	if intervalMinutes <= 0 {
		return nil, ErrInvalidInterval
	}
	if !start.Valid() || !end.Valid() {
		return nil, ErrInvalidTime
	}
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	var slots []TimeOfDay
	for m := start.Minutes(); m <= end.Minutes(); m += intervalMinutes {
		slots = append(slots, fromMinutes(m))
	}
	return slots, nil
}
