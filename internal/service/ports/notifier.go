package ports

import (
	"context"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
)

// Platform is the chat platform the workflow talks to.
type Platform interface {
	PostModerationSummary(ctx context.Context, e *domain.EventRecord, creator *domain.User) (string, error)
	ClearModerationControls(ctx context.Context, messageID, note string) error
	PublishAnnouncement(ctx context.Context, e *domain.EventRecord, creator *domain.User) (messageID, flyerURL string, err error)
	UpdateInterestCounter(ctx context.Context, messageID string, count int) error
	CreateSupportChannel(ctx context.Context, e *domain.EventRecord, creator *domain.User, moderatorID string) (string, error)
	DeleteChannel(ctx context.Context, channelID string) error
	AnnounceStart(ctx context.Context, e *domain.EventRecord) error
	DirectMessage(ctx context.Context, userID, content string) domain.DeliveryOutcome
}

// StaffAlerter mirrors notable workflow events to staff. Best-effort.
type StaffAlerter interface {
	AlertSubmission(ctx context.Context, e *domain.EventRecord, creator *domain.User)
	AlertApprovalFailure(ctx context.Context, e *domain.EventRecord, report *domain.ApprovalReport)
}

type Metrics interface {
	RecordDelivery(kind string, outcome domain.DeliveryOutcome)
	RecordTransition(status domain.EventStatus)
	RecordSweep(notified int)
}

type MediaStore interface {
	Save(ctx context.Context, upload domain.Upload) (string, error)
}
