package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testWindow = ReminderWindow{Lookback: 2 * time.Minute, Lookahead: time.Minute}

func startingEvent(id int64, date time.Time, subscribers ...string) *domain.EventRecord {
	e := announcedEvent(id)
	e.EventDate = date
	e.Subscribers = subscribers
	return e
}

func TestReminderWindow_Contains(t *testing.T) {
	tests := []struct {
		offset time.Duration
		want   bool
	}{
		{0, true},
		{30 * time.Second, true},
		{time.Minute, true},
		{61 * time.Second, false},
		{-2 * time.Minute, true},
		{-121 * time.Second, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, testWindow.Contains(tt.offset), tt.offset.String())
	}
}

func TestReminderService_SweepStarting_NotifiesSubscribers(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	platform := mocks.NewMockPlatform(t)
	svc := NewReminderService(eventRepo, platform, newTestMetrics(), testWindow, newTestLogger(t))

	now := time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC)
	e := startingEvent(1, now.Add(30*time.Second), "a", "b")

	eventRepo.EXPECT().ListAwaitingStart(mock.Anything, now.Add(-2*time.Minute), now.Add(time.Minute)).
		Return([]*domain.EventRecord{e}, nil)
	eventRepo.EXPECT().MarkStartNotified(mock.Anything, int64(1)).Return(true, nil)
	platform.EXPECT().AnnounceStart(mock.Anything, e).Return(nil)
	platform.EXPECT().DirectMessage(mock.Anything, "a", mock.Anything).Return(domain.DeliveryDelivered)
	platform.EXPECT().DirectMessage(mock.Anything, "b", mock.Anything).Return(domain.DeliverySkipped)

	notified, err := svc.SweepStarting(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, notified)
}

func TestReminderService_SweepStarting_SkipsClaimedEvents(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	platform := mocks.NewMockPlatform(t)
	svc := NewReminderService(eventRepo, platform, newTestMetrics(), testWindow, newTestLogger(t))

	now := time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC)
	e := startingEvent(1, now, "a")

	eventRepo.EXPECT().ListAwaitingStart(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.EventRecord{e}, nil)
	eventRepo.EXPECT().MarkStartNotified(mock.Anything, int64(1)).Return(false, nil)

	notified, err := svc.SweepStarting(context.Background(), now)

	require.NoError(t, err)
	assert.Empty(t, notified)
}

func TestReminderService_SweepStarting_IgnoresOutsideWindow(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	platform := mocks.NewMockPlatform(t)
	svc := NewReminderService(eventRepo, platform, newTestMetrics(), testWindow, newTestLogger(t))

	now := time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC)
	late := startingEvent(1, now.Add(-5*time.Minute))

	eventRepo.EXPECT().ListAwaitingStart(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.EventRecord{late}, nil)

	notified, err := svc.SweepStarting(context.Background(), now)

	require.NoError(t, err)
	assert.Empty(t, notified)
}

func TestReminderService_SweepStarting_AnnounceFailureStillClaims(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	platform := mocks.NewMockPlatform(t)
	svc := NewReminderService(eventRepo, platform, newTestMetrics(), testWindow, newTestLogger(t))

	now := time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC)
	e := startingEvent(2, now.Add(-time.Minute), "a")

	eventRepo.EXPECT().ListAwaitingStart(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.EventRecord{e}, nil)
	eventRepo.EXPECT().MarkStartNotified(mock.Anything, int64(2)).Return(true, nil)
	platform.EXPECT().AnnounceStart(mock.Anything, e).Return(errors.New("channel gone"))
	platform.EXPECT().DirectMessage(mock.Anything, "a", mock.Anything).Return(domain.DeliveryFailed)

	notified, err := svc.SweepStarting(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, []int64{2}, notified)
}

func TestReminderService_SweepStarting_ClaimErrorContinues(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	platform := mocks.NewMockPlatform(t)
	svc := NewReminderService(eventRepo, platform, newTestMetrics(), testWindow, newTestLogger(t))

	now := time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC)
	first := startingEvent(1, now)
	second := startingEvent(2, now.Add(10*time.Second))

	eventRepo.EXPECT().ListAwaitingStart(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.EventRecord{first, second}, nil)
	eventRepo.EXPECT().MarkStartNotified(mock.Anything, int64(1)).Return(false, errors.New("conn reset"))
	eventRepo.EXPECT().MarkStartNotified(mock.Anything, int64(2)).Return(true, nil)
	platform.EXPECT().AnnounceStart(mock.Anything, second).Return(nil)

	notified, err := svc.SweepStarting(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, []int64{2}, notified)
}

func TestReminderService_SweepStarting_ListError(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewReminderService(eventRepo, nil, newTestMetrics(), testWindow, newTestLogger(t))

	eventRepo.EXPECT().ListAwaitingStart(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db error"))

	_, err := svc.SweepStarting(context.Background(), time.Now())

	require.Error(t, err)
}

func TestReminderService_SweepStarting_ClaimedEventSurvivesCancel(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	platform := mocks.NewMockPlatform(t)
	svc := NewReminderService(eventRepo, platform, newTestMetrics(), testWindow, newTestLogger(t))

	now := time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC)
	e := startingEvent(1, now, "a")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })

	eventRepo.EXPECT().ListAwaitingStart(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.EventRecord{e}, nil)
	eventRepo.EXPECT().MarkStartNotified(mock.Anything, int64(1)).
		Run(func(context.Context, int64) { cancel() }).
		Return(true, nil)
	platform.EXPECT().AnnounceStart(live, e).Return(nil)
	platform.EXPECT().DirectMessage(live, "a", mock.Anything).Return(domain.DeliveryDelivered)

	notified, err := svc.SweepStarting(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, notified)
}
