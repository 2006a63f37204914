package models

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain date", in: "2025-07-20", want: "2025-07-20"},
		{name: "rfc3339 midnight utc", in: "2025-07-20T00:00:00Z", want: "2025-07-20"},
		{name: "rfc3339 late evening with offset", in: "2025-07-20T23:30:00+02:00", want: "2025-07-20"},
		{name: "offset crossing midnight", in: "2025-07-21T01:30:00+03:00", want: "2025-07-20"},
		{name: "garbage", in: "July 20th", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("NormalizeDate(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDate(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFindDay(t *testing.T) {
	grid := []DayAvailability{
		{Date: "2025-07-20"},
		{Date: "2025-07-21T00:00:00Z"},
	}

	if got := FindDay(grid, "2025-07-20"); got != 0 {
		t.Errorf("FindDay plain = %d, want 0", got)
	}
	// Stored dates are normalized before comparing.
	if got := FindDay(grid, "2025-07-21"); got != 1 {
		t.Errorf("FindDay rfc3339-stored = %d, want 1", got)
	}
	if got := FindDay(grid, "2025-07-22"); got != -1 {
		t.Errorf("FindDay missing = %d, want -1", got)
	}
}

func TestSlotsInRange(t *testing.T) {
	slots := []Slot{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "10:00", EndTime: "11:00"},
		{StartTime: "11:00", EndTime: "12:00"},
	}

	tests := []struct {
		name       string
		start, end string
		want       []int
	}{
		{name: "whole range", start: "09:00", end: "12:00", want: []int{0, 1, 2}},
		{name: "middle slot only", start: "10:00", end: "11:00", want: []int{1}},
		{name: "two slots", start: "09:00", end: "11:00", want: []int{0, 1}},
		{name: "misaligned start excludes first slot", start: "09:30", end: "11:00", want: []int{1}},
		{name: "outside grid", start: "13:00", end: "14:00", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SlotsInRange(slots, tc.start, tc.end)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SlotsInRange(%s, %s) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
		wantErr    bool
	}{
		{start: "09:00", end: "11:00", want: 2},
		{start: "09:00", end: "09:30", want: 0.5},
		{start: "11:00", end: "09:00", want: -2},
		{start: "09:00", end: "09:00", want: 0},
		{start: "9am", end: "10:00", wantErr: true},
	}

	for _, tc := range tests {
		got, err := HoursBetween(tc.start, tc.end)
		if tc.wantErr {
			if err == nil {
				t.Errorf("HoursBetween(%s, %s) = %v, want error", tc.start, tc.end, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("HoursBetween(%s, %s) error: %v", tc.start, tc.end, err)
			continue
		}
		if got != tc.want {
			t.Errorf("HoursBetween(%s, %s) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2025-07-20", "10:30")
	if err != nil {
		t.Fatalf("CombineDateTime error: %v", err)
	}
	want := time.Date(2025, 7, 20, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("CombineDateTime = %v, want %v", got, want)
	}

	if _, err := CombineDateTime("2025-07-20", "25:00"); err == nil {
		t.Error("CombineDateTime accepted hour 25")
	}
}

func TestBookingEndsBefore(t *testing.T) {
	b := Booking{Date: "2025-07-20", EndTime: "10:00"}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "before end", now: time.Date(2025, 7, 20, 9, 59, 0, 0, time.UTC), want: false},
		{name: "exactly at end", now: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC), want: false},
		{name: "after end", now: time.Date(2025, 7, 20, 10, 0, 1, 0, time.UTC), want: true},
		{name: "next day", now: time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC), want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.EndsBefore(tc.now); got != tc.want {
				t.Errorf("EndsBefore(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestBookingEndsBeforeUnparseable(t *testing.T) {
	b := Booking{Date: "someday", EndTime: "10:00"}
	if b.EndsBefore(time.Now()) {
		t.Error("unparseable schedule should never count as elapsed")
	}
}
