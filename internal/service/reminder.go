package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	deliveryStartNotice = "start_notice"
	deliveryStartDM     = "start_dm"
)

// ReminderWindow bounds the start offsets at which a start notice fires:
// from Lookback after the start to Lookahead before it.
type ReminderWindow struct {
	Lookback  time.Duration
	Lookahead time.Duration
}

func (w ReminderWindow) Contains(offset time.Duration) bool {
	return offset >= -w.Lookback && offset <= w.Lookahead
}

type ReminderService struct {
	eventRepo ports.EventRepo
	platform  ports.Platform
	metrics   ports.Metrics
	window    ReminderWindow
	logger    logger.Logger
}

func NewReminderService(
	eventRepo ports.EventRepo,
	platform ports.Platform,
	metrics ports.Metrics,
	window ReminderWindow,
	logger logger.Logger,
) *ReminderService {
	return &ReminderService{
		eventRepo: eventRepo,
		platform:  platform,
		metrics:   metrics,
		window:    window,
		logger:    logger,
	}
}

// SweepStarting sends one start notice per approved event whose start falls
// inside the window around now, and returns the ids it notified.
func (s *ReminderService) SweepStarting(ctx context.Context, now time.Time) ([]int64, error) {
	events, err := s.eventRepo.ListAwaitingStart(ctx, now.Add(-s.window.Lookback), now.Add(s.window.Lookahead))
	if err != nil {
		return nil, fmt.Errorf("list awaiting start: %w", err)
	}

	var notified []int64
	for _, e := range events {
		if ctx.Err() != nil {
			break
		}

		if !s.window.Contains(e.StartOffset(now)) {
			continue
		}

		// claim first: a notice is sent only by the sweep that flipped the flag
		claimed, err := s.eventRepo.MarkStartNotified(ctx, e.ID)
		if err != nil {
			s.logger.Error("failed to mark event start notified",
				logger.Int64("event_id", e.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !claimed {
			continue
		}

		// the claim is final, so the notices outlive a shutdown
		s.notifyStart(context.WithoutCancel(ctx), e)
		notified = append(notified, e.ID)
	}

	s.metrics.RecordSweep(len(notified))

	return notified, nil
}

func (s *ReminderService) notifyStart(ctx context.Context, e *domain.EventRecord) {
	if err := s.platform.AnnounceStart(ctx, e); err != nil {
		s.metrics.RecordDelivery(deliveryStartNotice, domain.DeliveryFailed)
		s.logger.Error("failed to announce event start",
			logger.Int64("event_id", e.ID),
			logger.String("error", err.Error()),
		)
	} else {
		s.metrics.RecordDelivery(deliveryStartNotice, domain.DeliveryDelivered)
	}

	text := fmt.Sprintf("📣 **%s** está comenzando ahora. ¡Te esperamos!", e.Title)

	delivered := 0
	for _, userID := range e.Subscribers {
		outcome := s.platform.DirectMessage(ctx, userID, text)
		s.metrics.RecordDelivery(deliveryStartDM, outcome)
		if outcome == domain.DeliveryDelivered {
			delivered++
		}
	}

	s.logger.Info("event start notified",
		logger.Int64("event_id", e.ID),
		logger.Int("subscribers", len(e.Subscribers)),
		logger.Int("delivered", delivered),
	)
}
