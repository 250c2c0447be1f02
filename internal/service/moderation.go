package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const maxReasonLen = 1000

const (
	stepCreator        = "creator lookup"
	stepAnnouncement   = "announcement"
	stepSupportChannel = "support channel"
	stepControls       = "moderation controls"
)

const (
	deliveryAnnouncement   = "announcement"
	deliverySupportChannel = "support_channel"
	deliveryControls       = "moderation_controls"
)

type ModerationService struct {
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	platform  ports.Platform
	alerter   ports.StaffAlerter
	metrics   ports.Metrics
	logger    logger.Logger
}

func NewModerationService(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	platform ports.Platform,
	alerter ports.StaffAlerter,
	metrics ports.Metrics,
	logger logger.Logger,
) *ModerationService {
	return &ModerationService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		platform:  platform,
		alerter:   alerter,
		metrics:   metrics,
		logger:    logger,
	}
}

// Approve moves a PENDING event to APPROVED and then runs the publication
// steps. Each step is skipped when its result is already persisted, so calling
// Approve again on an APPROVED event finishes a partially failed approval.
// The status is never rolled back.
func (s *ModerationService) Approve(ctx context.Context, eventID int64, moderatorID string) (*domain.ApprovalReport, error) {
	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	switch e.Status {
	case domain.EventStatusPending:
		if err = s.eventRepo.Approve(ctx, eventID, moderatorID); err != nil {
			return nil, fmt.Errorf("approve event: %w", err)
		}
		e.Status = domain.EventStatusApproved
		e.ReviewedBy = &moderatorID
		s.metrics.RecordTransition(domain.EventStatusApproved)

		s.logger.Info("event approved",
			logger.Int64("event_id", eventID),
			logger.String("moderator_id", moderatorID),
		)
	case domain.EventStatusApproved:
		s.logger.Info("resuming approval steps",
			logger.Int64("event_id", eventID),
			logger.String("moderator_id", moderatorID),
		)
	default:
		return nil, domain.ErrInvalidTransition
	}

	report := &domain.ApprovalReport{EventID: e.ID}
	if e.HasTicketChannel() {
		report.TicketChannelID = *e.TicketChannelID
	}

	creator, err := s.userRepo.GetByID(ctx, e.CreatorID)
	if err != nil {
		report.Add(stepCreator, domain.DeliveryFailed, err.Error())
		return s.partial(ctx, e, report, fmt.Errorf("get creator: %w", err))
	}

	if err = s.announce(ctx, e, creator, report); err != nil {
		return s.partial(ctx, e, report, err)
	}

	if err = s.provisionSupport(ctx, e, creator, moderatorID, report); err != nil {
		return s.partial(ctx, e, report, err)
	}

	s.clearControls(ctx, e, fmt.Sprintf("✅ Aprobado por <@%s>", moderatorID), report)

	return report, nil
}

// Reject moves a PENDING event to REJECTED with the moderator's reason.
func (s *ModerationService) Reject(ctx context.Context, eventID int64, moderatorID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(reason) > maxReasonLen {
		return fmt.Errorf("%w: rejection reason is longer than %d characters", domain.ErrValidation, maxReasonLen)
	}

	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if !e.Status.CanTransition(domain.EventStatusRejected) {
		return domain.ErrInvalidTransition
	}

	if err = s.eventRepo.Reject(ctx, eventID, moderatorID, reason); err != nil {
		return fmt.Errorf("reject event: %w", err)
	}
	e.Status = domain.EventStatusRejected
	e.RejectionReason = &reason
	s.metrics.RecordTransition(domain.EventStatusRejected)

	s.logger.Info("event rejected",
		logger.Int64("event_id", eventID),
		logger.String("moderator_id", moderatorID),
	)

	var report domain.ApprovalReport
	s.clearControls(ctx, e, fmt.Sprintf("❌ Rechazado por <@%s>: %s", moderatorID, reason), &report)

	return nil
}

// CloseSupportChannel deletes the private support channel of an event.
// Moderators and the event creator may close it.
func (s *ModerationService) CloseSupportChannel(ctx context.Context, eventID int64, actorID string, isModerator bool) error {
	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if !e.HasTicketChannel() {
		return domain.ErrNoTicketChannel
	}

	if !isModerator {
		creator, err := s.userRepo.GetByID(ctx, e.CreatorID)
		if err != nil {
			return fmt.Errorf("get creator: %w", err)
		}
		if creator.DiscordID != actorID {
			return domain.ErrForbidden
		}
	}

	if err = s.platform.DeleteChannel(ctx, *e.TicketChannelID); err != nil {
		return fmt.Errorf("delete support channel: %w", err)
	}

	s.logger.Info("support channel closed",
		logger.Int64("event_id", eventID),
		logger.String("channel_id", *e.TicketChannelID),
		logger.String("actor_id", actorID),
	)

	return nil
}

func (s *ModerationService) announce(
	ctx context.Context,
	e *domain.EventRecord,
	creator *domain.User,
	report *domain.ApprovalReport,
) error {
	if e.Announced() {
		report.Add(stepAnnouncement, domain.DeliverySkipped, "already published")
		return nil
	}

	messageID, flyerURL, err := s.platform.PublishAnnouncement(ctx, e, creator)
	if err != nil {
		s.metrics.RecordDelivery(deliveryAnnouncement, domain.DeliveryFailed)
		report.Add(stepAnnouncement, domain.DeliveryFailed, err.Error())
		return fmt.Errorf("publish announcement: %w", err)
	}
	s.metrics.RecordDelivery(deliveryAnnouncement, domain.DeliveryDelivered)

	if err = s.eventRepo.SetAnnouncement(ctx, e.ID, messageID, flyerURL); err != nil {
		report.Add(stepAnnouncement, domain.DeliveryFailed, "published as "+messageID+" but not stored")
		return fmt.Errorf("store announcement: %w", err)
	}
	e.PublicMessageID = &messageID
	e.FlyerURL = &flyerURL

	report.Add(stepAnnouncement, domain.DeliveryDelivered, messageID)
	return nil
}

func (s *ModerationService) provisionSupport(
	ctx context.Context,
	e *domain.EventRecord,
	creator *domain.User,
	moderatorID string,
	report *domain.ApprovalReport,
) error {
	if !e.Support.Requested() {
		return nil
	}

	if e.HasTicketChannel() {
		report.Add(stepSupportChannel, domain.DeliverySkipped, "already created")
		return nil
	}

	channelID, err := s.platform.CreateSupportChannel(ctx, e, creator, moderatorID)
	if err != nil {
		s.metrics.RecordDelivery(deliverySupportChannel, domain.DeliveryFailed)
		report.Add(stepSupportChannel, domain.DeliveryFailed, err.Error())
		return fmt.Errorf("create support channel: %w", err)
	}
	s.metrics.RecordDelivery(deliverySupportChannel, domain.DeliveryDelivered)

	if err = s.eventRepo.SetTicketChannel(ctx, e.ID, channelID); err != nil {
		report.Add(stepSupportChannel, domain.DeliveryFailed, "created as "+channelID+" but not stored")
		return fmt.Errorf("store support channel: %w", err)
	}
	e.TicketChannelID = &channelID

	report.TicketChannelID = channelID
	report.Add(stepSupportChannel, domain.DeliveryDelivered, channelID)
	return nil
}

// clearControls strips the accept/reject buttons from the moderation summary.
func (s *ModerationService) clearControls(
	ctx context.Context,
	e *domain.EventRecord,
	note string,
	report *domain.ApprovalReport,
) {
	if e.ModerationMessageID == nil || *e.ModerationMessageID == "" {
		report.Add(stepControls, domain.DeliverySkipped, "no moderation message")
		return
	}

	if err := s.platform.ClearModerationControls(ctx, *e.ModerationMessageID, note); err != nil {
		s.metrics.RecordDelivery(deliveryControls, domain.DeliveryFailed)
		s.logger.Warn("failed to clear moderation controls",
			logger.Int64("event_id", e.ID),
			logger.String("error", err.Error()),
		)
		report.Add(stepControls, domain.DeliveryFailed, err.Error())
		return
	}

	s.metrics.RecordDelivery(deliveryControls, domain.DeliveryDelivered)
	report.Add(stepControls, domain.DeliveryDelivered, "")
}

func (s *ModerationService) partial(
	ctx context.Context,
	e *domain.EventRecord,
	report *domain.ApprovalReport,
	cause error,
) (*domain.ApprovalReport, error) {
	s.logger.Error("approval finished partially",
		logger.Int64("event_id", e.ID),
		logger.String("error", cause.Error()),
	)

	go s.alerter.AlertApprovalFailure(context.WithoutCancel(ctx), e, report)

	return report, fmt.Errorf("%w: %w", domain.ErrPartialApproval, cause)
}
