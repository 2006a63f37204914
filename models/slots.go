package models

import (
	"fmt"
	"time"
)

// Slot is one fixed-width bookable unit on a tutor's calendar day.
// Times are local wall-clock "HH:MM" strings; Booked is the sole source
// of truth for whether the unit is reserved.
type Slot struct {
	StartTime string `bson:"startTime" json:"startTime"` // e.g., "09:00"
	EndTime   string `bson:"endTime" json:"endTime"`     // e.g., "10:00"
	Booked    bool   `bson:"isBooked" json:"isBooked"`
}

// DayAvailability holds the ordered slot list a tutor declared for one date.
// A day with no slots is removed from the grid rather than kept empty.
type DayAvailability struct {
	Date  string `bson:"date" json:"date"` // "2006-01-02"
	Slots []Slot `bson:"slots" json:"slots"`
}

// AvailabilityEntry is one incoming edit in an availability update payload.
// An empty Slots list deletes the date from the grid; a non-empty list
// replaces that date's slots wholesale.
type AvailabilityEntry struct {
	Date  string `json:"date" binding:"required"`
	Slots []Slot `json:"slots"`
}

const dateLayout = "2006-01-02"

// NormalizeDate reduces a date string to its UTC calendar-day form.
// Both plain "2006-01-02" dates and full RFC3339 timestamps are accepted;
// timestamps are converted to UTC before truncation, so two inputs naming
// the same UTC day always normalize identically.
func NormalizeDate(s string) (string, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC().Format(dateLayout), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC().Format(dateLayout), nil
}

// FindDay returns the index of the grid entry for the given normalized
// date, or -1 when the tutor declared nothing for that day.
func FindDay(grid []DayAvailability, date string) int {
	for i, day := range grid {
		norm, err := NormalizeDate(day.Date)
		if err != nil {
			continue
		}
		if norm == date {
			return i
		}
	}
	return -1
}

// SlotsInRange returns the indices of slots fully contained in
// [start, end]. "HH:MM" strings compare correctly lexicographically.
func SlotsInRange(slots []Slot, start, end string) []int {
	var idx []int
	for i, s := range slots {
		if s.StartTime >= start && s.EndTime <= end {
			idx = append(idx, i)
		}
	}
	return idx
}

// MinuteOfDay parses an "HH:MM" wall-clock string into minutes from midnight.
func MinuteOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// HoursBetween computes the duration of [start, end] in hours.
func HoursBetween(start, end string) (float64, error) {
	s, err := MinuteOfDay(start)
	if err != nil {
		return 0, err
	}
	e, err := MinuteOfDay(end)
	if err != nil {
		return 0, err
	}
	return float64(e-s) / 60, nil
}

// CombineDateTime joins a normalized date and an "HH:MM" wall-clock time
// into a single UTC instant.
func CombineDateTime(date, hm string) (time.Time, error) {
	return time.Parse(dateLayout+" 15:04", date+" "+hm)
}
