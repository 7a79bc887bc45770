package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExpirySweeper periodically cancels pending bookings whose payment
// window elapsed. It is the safety net behind the auto-cancel setting:
// capacity held by abandoned checkouts flows back to the pool.
type ExpirySweeper struct {
	bookings  BookingService
	interval  time.Duration
	batchSize int
	log       *zap.Logger
}

func NewExpirySweeper(bookings BookingService, interval time.Duration, batchSize int, log *zap.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		bookings:  bookings,
		interval:  interval,
		batchSize: batchSize,
		log:       log.With(zap.String("service", "expiry_sweeper")),
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. A sweep
// that fails is logged and retried on the next tick.
func (s *ExpirySweeper) Run(ctx context.Context) {
	s.log.Info("Expiry sweeper started",
		zap.Duration("interval", s.interval),
		zap.Int("batch_size", s.batchSize),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	expired, err := s.bookings.ExpireOverdue(ctx, s.batchSize)
	if err != nil {
		s.log.Error("Expiry sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		s.log.Info("Expired bookings cancelled", zap.Int("count", expired))
	}
}
