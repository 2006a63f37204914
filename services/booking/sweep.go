package booking

import (
	"context"

	"tutorhive/models"
	"tutorhive/utils"

	"go.uber.org/zap"
)

// SweepOnce scans every pending or confirmed booking and advances the
// ones whose scheduled end has passed: confirmed becomes finished,
// pending becomes expired with its slots released. Selection is purely
// the status-filtered query and every transition is status-guarded, so
// overlapping or repeated sweeps never double-apply.
func (s *DefaultBookingService) SweepOnce() (finished, expired int, err error) {
	logger := utils.GetLogger()
	now := s.now()

	inflight, err := s.Bookings.ListInFlight()
	if err != nil {
		return 0, 0, err
	}

	for _, b := range inflight {
		if !b.EndsBefore(now) {
			continue
		}

		switch b.Status {
		case models.BookingConfirmed:
			ok, terr := s.Bookings.FinishConfirmed(b.ID, now)
			if terr != nil {
				logger.Error("sweep failed to finish booking",
					zap.String("bookingId", b.ID), zap.Error(terr))
				continue
			}
			if ok {
				finished++
				if s.Notifier != nil {
					b.Status = models.BookingFinished
					s.Notifier.NotifyBookingEvent(context.Background(), models.EventBookingFinished, b)
				}
			}
		case models.BookingPending:
			ok, terr := s.Bookings.ExpirePending(b.ID, now)
			if terr != nil {
				logger.Error("sweep failed to expire booking",
					zap.String("bookingId", b.ID), zap.Error(terr))
				continue
			}
			if !ok {
				continue
			}
			expired++
			// An expired booking will never be honored; free its slots
			// so the time is not locked away forever.
			if relErr := s.releaseSlots(b.TutorID, b.Date, b.StartTime, b.EndTime); relErr != nil {
				logger.Error("sweep failed to release slots of expired booking",
					zap.String("bookingId", b.ID), zap.Error(relErr))
			}
			if s.Notifier != nil {
				b.Status = models.BookingExpired
				s.Notifier.NotifyBookingEvent(context.Background(), models.EventBookingExpired, b)
			}
		}
	}
	return finished, expired, nil
}
