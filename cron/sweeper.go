package cron

import (
	"context"
	"time"

	"tutorhive/config"
	"tutorhive/services/booking"
	"tutorhive/utils"

	"github.com/go-redis/redis/v8"
	cronv3 "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepLeaseKey = "booking:sweep:lease"

// A tick holds the lease slightly shorter than the per-minute cadence so
// a crashed holder never blocks more than one cycle.
const sweepLeaseTTL = 50 * time.Second

// StartSweeper schedules the booking status sweep on the configured
// cadence and returns the scheduler for shutdown. The redis lease keeps
// horizontally scaled instances from sweeping simultaneously; losing
// redis degrades to concurrent sweeps, which stay safe because every
// transition is status-guarded.
func StartSweeper(svc booking.BookingService, lease *redis.Client) *cronv3.Cron {
	logger := utils.GetLogger()

	c := cronv3.New()
	_, err := c.AddFunc(config.AppConfig.SweepSchedule, func() {
		runSweep(svc, lease)
	})
	if err != nil {
		logger.Sugar().Fatalf("sweeper: invalid schedule %q: %v", config.AppConfig.SweepSchedule, err)
	}
	c.Start()
	logger.Info("booking sweep scheduled", zap.String("schedule", config.AppConfig.SweepSchedule))
	return c
}

func runSweep(svc booking.BookingService, lease *redis.Client) {
	logger := utils.GetLogger()

	if lease != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		acquired, err := lease.SetNX(ctx, sweepLeaseKey, "1", sweepLeaseTTL).Result()
		if err != nil {
			logger.Warn("sweep lease unavailable, proceeding without it", zap.Error(err))
		} else if !acquired {
			return
		}
	}

	finished, expired, err := svc.SweepOnce()
	if err != nil {
		logger.Error("booking sweep failed", zap.Error(err))
		return
	}
	if finished > 0 || expired > 0 {
		logger.Info("booking sweep advanced bookings",
			zap.Int("finished", finished), zap.Int("expired", expired))
	}
}
