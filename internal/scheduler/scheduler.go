package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type startSweeper interface {
	SweepStarting(ctx context.Context, now time.Time) ([]int64, error)
}

type uploadPurger interface {
	PurgeOlderThan(ctx context.Context, age time.Duration) (int, error)
}

type Options struct {
	Interval  time.Duration
	PurgeHour int
	MaxAge    time.Duration
	Now       func() time.Time
}

type Scheduler struct {
	sweeper   startSweeper
	purger    uploadPurger
	interval  time.Duration
	purgeHour int
	maxAge    time.Duration
	now       func() time.Time
	lastPurge time.Time
	done      chan struct{}
	logger    logger.Logger
}

func New(
	sweeper startSweeper,
	purger uploadPurger,
	opts Options,
	logger logger.Logger,
) *Scheduler {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Scheduler{
		sweeper:   sweeper,
		purger:    purger,
		interval:  opts.Interval,
		purgeHour: opts.PurgeHour,
		maxAge:    opts.MaxAge,
		now:       now,
		done:      make(chan struct{}),
		logger:    logger,
	}
}

// Start runs until ctx is cancelled and the tick in progress has finished.
// It must be called once.
func (s *Scheduler) Start(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Int("purge_hour", s.purgeHour),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// Done is closed when Start has returned.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) tick(ctx context.Context) {
	now := s.now().UTC()

	if s.purgeDue(now) {
		s.purge(ctx, now)
	}

	notified, err := s.sweeper.SweepStarting(ctx, now)
	if err != nil {
		s.logger.Error("failed to sweep starting events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, id := range notified {
		s.logger.Info("event start announced",
			logger.Int64("event_id", id),
		)
	}
}

// purgeDue is true on the first tick at or after purgeHour each UTC day.
func (s *Scheduler) purgeDue(now time.Time) bool {
	if now.Hour() < s.purgeHour {
		return false
	}
	y, m, d := now.Date()
	ly, lm, ld := s.lastPurge.Date()
	return y != ly || m != lm || d != ld
}

func (s *Scheduler) purge(ctx context.Context, now time.Time) {
	s.lastPurge = now

	removed, err := s.purger.PurgeOlderThan(ctx, s.maxAge)
	if err != nil {
		s.logger.Error("failed to purge uploads",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("uploads purged",
		logger.Int("removed", removed),
		logger.Duration("max_age", s.maxAge),
	)
}
