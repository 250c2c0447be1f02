package ports

import (
	"context"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.EventRecord) error
	GetByID(ctx context.Context, id int64) (*domain.EventRecord, error)
	SetModerationMessage(ctx context.Context, id int64, messageID string) error
	Approve(ctx context.Context, id int64, moderatorID string) error
	Reject(ctx context.Context, id int64, moderatorID, reason string) error
	SetAnnouncement(ctx context.Context, id int64, messageID, flyerURL string) error
	SetTicketChannel(ctx context.Context, id int64, channelID string) error
	AddSubscriber(ctx context.Context, id int64, userID string) (int, bool, error)
	ListAwaitingStart(ctx context.Context, from, until time.Time) ([]*domain.EventRecord, error)
	MarkStartNotified(ctx context.Context, id int64) (bool, error)
}
