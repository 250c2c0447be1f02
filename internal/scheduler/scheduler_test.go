package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestScheduler_Tick_SweepsStartingEvents(t *testing.T) {
	sweeper := mocks.NewMockStartSweeper(t)
	purger := mocks.NewMockUploadPurger(t)
	now := time.Date(2026, 11, 1, 2, 0, 0, 0, time.UTC)

	s := New(sweeper, purger, Options{Interval: 50 * time.Millisecond, PurgeHour: 4, Now: fixedClock(now)}, newTestLogger(t))

	sweeper.EXPECT().SweepStarting(mock.Anything, now).Return([]int64{1, 2}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
	assert.Empty(t, purger.Calls)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	sweeper := mocks.NewMockStartSweeper(t)
	purger := mocks.NewMockUploadPurger(t)

	s := New(sweeper, purger, Options{Interval: 50 * time.Millisecond, PurgeHour: 23,
		Now: fixedClock(time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC))}, newTestLogger(t))

	sweeper.EXPECT().SweepStarting(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_PurgesOncePerDay(t *testing.T) {
	sweeper := mocks.NewMockStartSweeper(t)
	purger := mocks.NewMockUploadPurger(t)
	now := time.Date(2026, 11, 1, 5, 0, 0, 0, time.UTC)

	s := New(sweeper, purger, Options{
		Interval:  30 * time.Millisecond,
		PurgeHour: 4,
		MaxAge:    72 * time.Hour,
		Now:       fixedClock(now),
	}, newTestLogger(t))

	purger.EXPECT().PurgeOlderThan(mock.Anything, 72*time.Hour).Return(3, nil).Once()
	sweeper.EXPECT().SweepStarting(mock.Anything, now).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 3)
}

func TestScheduler_PurgeDue(t *testing.T) {
	s := New(nil, nil, Options{Interval: time.Second, PurgeHour: 4}, newTestLogger(t))

	day := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, s.purgeDue(day.Add(3*time.Hour)))
	assert.True(t, s.purgeDue(day.Add(4*time.Hour)))

	s.lastPurge = day.Add(4 * time.Hour)
	assert.False(t, s.purgeDue(day.Add(23*time.Hour)))
	assert.False(t, s.purgeDue(day.Add(27*time.Hour)))
	assert.True(t, s.purgeDue(day.Add(28*time.Hour)))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockStartSweeper(t)
	purger := mocks.NewMockUploadPurger(t)

	s := New(sweeper, purger, Options{Interval: time.Second}, newTestLogger(t)) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	go s.Start(ctx)

	cancel()

	select {
	case <-s.Done():
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_DoneWaitsForRunningTick(t *testing.T) {
	sweeper := mocks.NewMockStartSweeper(t)
	purger := mocks.NewMockUploadPurger(t)

	s := New(sweeper, purger, Options{Interval: 10 * time.Millisecond, PurgeHour: 23,
		Now: fixedClock(time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC))}, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	entered := make(chan struct{})
	release := make(chan struct{})

	sweeper.EXPECT().SweepStarting(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) ([]int64, error) {
			select {
			case <-entered:
			default:
				close(entered)
			}
			<-release
			return nil, nil
		}).Maybe()

	go s.Start(ctx)

	<-entered
	cancel()

	select {
	case <-s.Done():
		t.Fatal("scheduler reported done while a sweep was running")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after the sweep finished")
	}
}
