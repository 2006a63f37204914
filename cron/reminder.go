package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tutorhive/config"
	"tutorhive/models"
	"tutorhive/services/notification"
	"tutorhive/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeSessionReminder, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask surfaces the due reminder; actual delivery belongs to
// the messaging collaborator observing these logs/events.
func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] invalid payload: %v", err)
		return err
	}

	utils.GetLogger().Info("session reminder due",
		zap.String("bookingId", p.BookingID),
		zap.String("studentId", p.StudentID),
		zap.String("tutorId", p.TutorID),
		zap.String("date", p.Date),
		zap.String("startTime", p.StartTime),
	)
	return nil
}
