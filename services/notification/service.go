package notification

import (
	"context"
	"encoding/json"
	"time"

	"tutorhive/models"
	"tutorhive/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeSessionReminder is the asynq task type for upcoming-session reminders.
const TypeSessionReminder = "session:reminder"

// How long before the session start the reminder should fire.
const reminderLead = time.Hour

// DefaultNotificationService logs every transition and, when a booking is
// confirmed, schedules a session reminder on the asynq queue.
type DefaultNotificationService struct {
	Queue *asynq.Client
}

func (s *DefaultNotificationService) NotifyBookingEvent(ctx context.Context, event string, b models.Booking) {
	logger := utils.GetLogger()
	logger.Info("booking event",
		zap.String("event", event),
		zap.String("bookingId", b.ID),
		zap.String("tutorId", b.TutorID),
		zap.String("studentId", b.StudentID),
	)

	if event != models.EventBookingConfirmed || s.Queue == nil {
		return
	}

	start, err := models.CombineDateTime(b.Date, b.StartTime)
	if err != nil {
		logger.Warn("cannot schedule reminder for booking with bad times",
			zap.String("bookingId", b.ID), zap.Error(err))
		return
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: b.ID,
		StudentID: b.StudentID,
		TutorID:   b.TutorID,
		Date:      b.Date,
		StartTime: b.StartTime,
	})
	if err != nil {
		logger.Error("failed to marshal reminder payload", zap.Error(err))
		return
	}

	task := asynq.NewTask(TypeSessionReminder, payload)
	fireAt := start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}
	if _, err := s.Queue.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		logger.Error("failed to enqueue session reminder",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}
