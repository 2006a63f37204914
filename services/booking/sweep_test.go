package booking

import (
	"testing"
	"time"

	"tutorhive/models"
)

func TestSweepFinishesElapsedConfirmed(t *testing.T) {
	tutors := newMemTutorRepo(testTutor())
	bookings := newMemBookingRepo()
	svc := newTestService(tutors, bookings, time.Date(2025, 7, 20, 8, 0, 0, 0, time.UTC))

	b, err := svc.Create("student-1", createReq("09:00", "10:00"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Confirm("tutor-1", b.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	// The sweep runs before the session ends; nothing moves.
	svc.Now = func() time.Time { return time.Date(2025, 7, 20, 9, 59, 0, 0, time.UTC) }
	finished, expired, err := svc.SweepOnce()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if finished != 0 || expired != 0 {
		t.Errorf("premature sweep = (%d finished, %d expired), want (0, 0)", finished, expired)
	}

	after := time.Date(2025, 7, 20, 10, 1, 0, 0, time.UTC)
	svc.Now = func() time.Time { return after }
	finished, expired, err = svc.SweepOnce()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if finished != 1 || expired != 0 {
		t.Errorf("sweep = (%d finished, %d expired), want (1, 0)", finished, expired)
	}

	got, _ := bookings.GetByID(b.ID)
	if got.Status != models.BookingFinished {
		t.Errorf("status = %q, want finished", got.Status)
	}
	end, err := models.CombineDateTime(got.Date, got.EndTime)
	if err != nil {
		t.Fatalf("bad end instant: %v", err)
	}
	if got.FinishedAt == nil || got.FinishedAt.Before(end) {
		t.Errorf("finishedAt = %v, want at or after scheduled end %v", got.FinishedAt, end)
	}

	// Finishing never touches the slot grid.
	if flags := bookedFlags(tutors.grid("tutor-1"), "2025-07-20"); !flags[0] {
		t.Error("finished booking's slot was released")
	}
}

func TestSweepExpiresElapsedPendingAndReleasesSlots(t *testing.T) {
	tutors := newMemTutorRepo(testTutor())
	bookings := newMemBookingRepo()
	svc := newTestService(tutors, bookings, time.Date(2025, 7, 20, 8, 0, 0, 0, time.UTC))

	b, err := svc.Create("student-1", createReq("09:00", "11:00"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	svc.Now = func() time.Time { return time.Date(2025, 7, 20, 11, 30, 0, 0, time.UTC) }
	finished, expired, err := svc.SweepOnce()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if finished != 0 || expired != 1 {
		t.Errorf("sweep = (%d finished, %d expired), want (0, 1)", finished, expired)
	}

	got, _ := bookings.GetByID(b.ID)
	if got.Status != models.BookingExpired {
		t.Errorf("status = %q, want expired", got.Status)
	}
	for i, booked := range bookedFlags(tutors.grid("tutor-1"), "2025-07-20") {
		if booked {
			t.Errorf("slot %d still locked after expiry", i)
		}
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	tutors := newMemTutorRepo(testTutor())
	bookings := newMemBookingRepo()
	svc := newTestService(tutors, bookings, time.Date(2025, 7, 20, 8, 0, 0, 0, time.UTC))

	pending, err := svc.Create("student-1", createReq("09:00", "10:00"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	confirmed, err := svc.Create("student-2", createReq("10:00", "11:00"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Confirm("tutor-1", confirmed.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	svc.Now = func() time.Time { return time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC) }
	finished, expired, err := svc.SweepOnce()
	if err != nil {
		t.Fatalf("first sweep failed: %v", err)
	}
	if finished != 1 || expired != 1 {
		t.Errorf("first sweep = (%d, %d), want (1, 1)", finished, expired)
	}

	finished, expired, err = svc.SweepOnce()
	if err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}
	if finished != 0 || expired != 0 {
		t.Errorf("second sweep = (%d, %d), want (0, 0)", finished, expired)
	}

	if got, _ := bookings.GetByID(pending.ID); got.Status != models.BookingExpired {
		t.Errorf("pending booking status = %q, want expired", got.Status)
	}
	if got, _ := bookings.GetByID(confirmed.ID); got.Status != models.BookingFinished {
		t.Errorf("confirmed booking status = %q, want finished", got.Status)
	}
}
