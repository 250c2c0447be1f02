package service

import (
	"context"
	"fmt"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const deliveryInterestCounter = "interest_counter"

type InterestService struct {
	eventRepo ports.EventRepo
	platform  ports.Platform
	metrics   ports.Metrics
	logger    logger.Logger
}

func NewInterestService(
	eventRepo ports.EventRepo,
	platform ports.Platform,
	metrics ports.Metrics,
	logger logger.Logger,
) *InterestService {
	return &InterestService{
		eventRepo: eventRepo,
		platform:  platform,
		metrics:   metrics,
		logger:    logger,
	}
}

// Subscribe registers userID as interested in an announced event. A repeated
// click returns Added=false and leaves the subscriber set untouched.
func (s *InterestService) Subscribe(ctx context.Context, eventID int64, userID string) (*domain.InterestResult, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if e.Status != domain.EventStatusApproved || !e.Announced() {
		return nil, domain.ErrEventNotAnnounced
	}

	count, added, err := s.eventRepo.AddSubscriber(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("add subscriber: %w", err)
	}

	res := &domain.InterestResult{EventID: eventID, Count: count, Added: added}
	if !added {
		return res, nil
	}

	s.logger.Debug("subscriber added",
		logger.Int64("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("count", count),
	)

	// Concurrent clicks may finish out of order; the next edit corrects the counter.
	if err = s.platform.UpdateInterestCounter(ctx, *e.PublicMessageID, count); err != nil {
		s.metrics.RecordDelivery(deliveryInterestCounter, domain.DeliveryFailed)
		s.logger.Warn("failed to update interest counter",
			logger.Int64("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return res, nil
	}
	s.metrics.RecordDelivery(deliveryInterestCounter, domain.DeliveryDelivered)

	return res, nil
}
