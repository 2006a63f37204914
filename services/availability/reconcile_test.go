package availability

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
)

// fakeTutorRepo is a minimal in-memory TutorRepository holding a single
// tutor, with the same version-guard semantics as the mongo implementation.
type fakeTutorRepo struct {
	mu    sync.Mutex
	tutor *models.Tutor
}

func (f *fakeTutorRepo) Create(t *models.Tutor) error { return nil }

func (f *fakeTutorRepo) GetByID(id string) (*models.Tutor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tutor == nil || f.tutor.ID != id {
		return nil, nil
	}
	cp := *f.tutor
	cp.Availability = append([]models.DayAvailability(nil), f.tutor.Availability...)
	return &cp, nil
}

func (f *fakeTutorRepo) GetByEmail(email string) (*models.Tutor, error)        { return nil, nil }
func (f *fakeTutorRepo) UpdateProfile(id string, upd models.TutorUpdate) error { return nil }
func (f *fakeTutorRepo) Delete(id string) error                                { return nil }
func (f *fakeTutorRepo) AddSession(tutorID string, s models.Session) error     { return nil }
func (f *fakeTutorRepo) RemoveSession(tutorID, sessionID string) error         { return nil }

func (f *fakeTutorRepo) ReplaceAvailability(tutorID string, grid []models.DayAvailability, expectedVersion int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tutor == nil || f.tutor.ID != tutorID {
		return errors.New("tutor not found")
	}
	if f.tutor.AvailabilityVersion != expectedVersion {
		return tutorRepo.ErrVersionConflict
	}
	f.tutor.Availability = grid
	f.tutor.AvailabilityVersion++
	return nil
}

func newFakeRepo(grid []models.DayAvailability) *fakeTutorRepo {
	return &fakeTutorRepo{tutor: &models.Tutor{ID: "tutor-1", Availability: grid}}
}

func slots(times ...string) []models.Slot {
	if len(times)%2 != 0 {
		panic("slots wants start/end pairs")
	}
	out := make([]models.Slot, 0, len(times)/2)
	for i := 0; i < len(times); i += 2 {
		out = append(out, models.Slot{StartTime: times[i], EndTime: times[i+1]})
	}
	return out
}

func TestSetAvailabilityReplacesWholeDay(t *testing.T) {
	repo := newFakeRepo([]models.DayAvailability{
		{Date: "2025-07-20", Slots: slots("09:00", "10:00")},
	})
	svc := &DefaultAvailabilityService{Tutors: repo}

	got, err := svc.SetAvailability("tutor-1", []models.AvailabilityEntry{
		{Date: "2025-07-20", Slots: slots("14:00", "15:00", "15:00", "16:00")},
	})
	if err != nil {
		t.Fatalf("SetAvailability failed: %v", err)
	}

	want := []models.DayAvailability{
		{Date: "2025-07-20", Slots: slots("14:00", "15:00", "15:00", "16:00")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("grid = %+v, want %+v", got, want)
	}
}

func TestSetAvailabilityEmptyListDeletesDay(t *testing.T) {
	repo := newFakeRepo([]models.DayAvailability{
		{Date: "2025-07-20", Slots: slots("09:00", "10:00")},
		{Date: "2025-07-21", Slots: slots("09:00", "10:00")},
	})
	svc := &DefaultAvailabilityService{Tutors: repo}

	got, err := svc.SetAvailability("tutor-1", []models.AvailabilityEntry{
		{Date: "2025-07-20", Slots: []models.Slot{}},
	})
	if err != nil {
		t.Fatalf("SetAvailability failed: %v", err)
	}
	if len(got) != 1 || got[0].Date != "2025-07-21" {
		t.Errorf("grid = %+v, want only 2025-07-21", got)
	}
}

func TestSetAvailabilityLeavesUnmentionedDatesUntouched(t *testing.T) {
	monday := models.DayAvailability{
		Date:  "2025-07-21",
		Slots: []models.Slot{{StartTime: "09:00", EndTime: "10:00", Booked: true}},
	}
	repo := newFakeRepo([]models.DayAvailability{
		{Date: "2025-07-20", Slots: slots("09:00", "10:00")},
		monday,
	})
	svc := &DefaultAvailabilityService{Tutors: repo}

	got, err := svc.SetAvailability("tutor-1", []models.AvailabilityEntry{
		{Date: "2025-07-20", Slots: slots("11:00", "12:00")},
	})
	if err != nil {
		t.Fatalf("SetAvailability failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("grid has %d days, want 2", len(got))
	}
	if !reflect.DeepEqual(got[1], monday) {
		t.Errorf("unmentioned day changed: %+v, want %+v", got[1], monday)
	}
}

func TestSetAvailabilityRejectsDroppingBookedSlot(t *testing.T) {
	repo := newFakeRepo([]models.DayAvailability{
		{Date: "2025-07-20", Slots: []models.Slot{
			{StartTime: "09:00", EndTime: "10:00", Booked: true},
			{StartTime: "10:00", EndTime: "11:00"},
		}},
	})
	svc := &DefaultAvailabilityService{Tutors: repo}

	_, err := svc.SetAvailability("tutor-1", []models.AvailabilityEntry{
		{Date: "2025-07-20", Slots: slots("14:00", "15:00")},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}

	// The stored grid is untouched after the rejected edit.
	tutor, _ := repo.GetByID("tutor-1")
	if !tutor.Availability[0].Slots[0].Booked {
		t.Error("booked slot lost after rejected edit")
	}
}

func TestSetAvailabilityKeepsRetainedBookedSlot(t *testing.T) {
	repo := newFakeRepo([]models.DayAvailability{
		{Date: "2025-07-20", Slots: []models.Slot{
			{StartTime: "09:00", EndTime: "10:00", Booked: true},
		}},
	})
	svc := &DefaultAvailabilityService{Tutors: repo}

	got, err := svc.SetAvailability("tutor-1", []models.AvailabilityEntry{
		{Date: "2025-07-20", Slots: []models.Slot{
			{StartTime: "09:00", EndTime: "10:00", Booked: true},
			{StartTime: "10:00", EndTime: "11:00"},
		}},
	})
	if err != nil {
		t.Fatalf("edit retaining booked slot should succeed, got %v", err)
	}
	if len(got[0].Slots) != 2 || !got[0].Slots[0].Booked {
		t.Errorf("grid = %+v, want booked 09:00 slot plus a free 10:00 slot", got)
	}
}

func TestSetAvailabilityValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.AvailabilityEntry
	}{
		{name: "nil entries", entries: nil},
		{
			name:    "bad date",
			entries: []models.AvailabilityEntry{{Date: "July 20th", Slots: slots("09:00", "10:00")}},
		},
		{
			name:    "bad slot time",
			entries: []models.AvailabilityEntry{{Date: "2025-07-20", Slots: slots("9am", "10:00")}},
		},
		{
			name:    "slot ends before it starts",
			entries: []models.AvailabilityEntry{{Date: "2025-07-20", Slots: slots("10:00", "09:00")}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &DefaultAvailabilityService{Tutors: newFakeRepo(nil)}
			_, err := svc.SetAvailability("tutor-1", tc.entries)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestSetAvailabilityUnknownTutor(t *testing.T) {
	svc := &DefaultAvailabilityService{Tutors: newFakeRepo(nil)}
	_, err := svc.SetAvailability("nobody", []models.AvailabilityEntry{
		{Date: "2025-07-20", Slots: slots("09:00", "10:00")},
	})
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestSetAvailabilityIsIdempotent(t *testing.T) {
	repo := newFakeRepo(nil)
	svc := &DefaultAvailabilityService{Tutors: repo}
	entries := []models.AvailabilityEntry{
		{Date: "2025-07-20", Slots: slots("09:00", "10:00", "10:00", "11:00")},
	}

	first, err := svc.SetAvailability("tutor-1", entries)
	if err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	second, err := svc.SetAvailability("tutor-1", entries)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated apply diverged: %+v vs %+v", first, second)
	}
}

func TestNormalizeEntriesAcceptsRFC3339Dates(t *testing.T) {
	out, err := normalizeEntries([]models.AvailabilityEntry{
		{Date: "2025-07-20T00:00:00Z", Slots: slots("09:00", "10:00")},
	})
	if err != nil {
		t.Fatalf("normalizeEntries failed: %v", err)
	}
	if out[0].Date != "2025-07-20" {
		t.Errorf("normalized date = %q, want 2025-07-20", out[0].Date)
	}
}
