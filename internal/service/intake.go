package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Discord embed limits.
const (
	maxTitleLen       = 256
	maxDescriptionLen = 4096
	maxMappingImages  = 10
)

const deliveryModeration = "moderation_summary"

type SubmissionService struct {
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	media     ports.MediaStore
	platform  ports.Platform
	alerter   ports.StaffAlerter
	metrics   ports.Metrics
	logger    logger.Logger
}

func NewSubmissionService(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	media ports.MediaStore,
	platform ports.Platform,
	alerter ports.StaffAlerter,
	metrics ports.Metrics,
	logger logger.Logger,
) *SubmissionService {
	return &SubmissionService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		media:     media,
		platform:  platform,
		alerter:   alerter,
		metrics:   metrics,
		logger:    logger,
	}
}

// Submit stores a new PENDING event request and relays it to moderators.
// Only the database write can fail the call.
func (s *SubmissionService) Submit(ctx context.Context, input domain.SubmitEventInput) (*domain.EventRecord, error) {
	if input.DiscordUserID == "" {
		return nil, domain.ErrUnauthorized
	}

	creator, err := s.userRepo.GetByDiscordID(ctx, input.DiscordUserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown account", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("resolve creator: %w", err)
	}

	if err = validateSubmission(&input); err != nil {
		return nil, err
	}

	flyerPath, err := s.media.Save(ctx, *input.Flyer)
	if err != nil {
		return nil, fmt.Errorf("save flyer: %w", err)
	}

	mapping := make([]string, 0, len(input.MappingImages))
	for _, img := range input.MappingImages {
		path, err := s.media.Save(ctx, img)
		if err != nil {
			return nil, fmt.Errorf("save mapping image: %w", err)
		}
		mapping = append(mapping, path)
	}

	record := &domain.EventRecord{
		CreatorID:     creator.ID,
		Title:         input.Title,
		Description:   input.Description,
		EventDate:     input.EventDate.UTC(),
		FlyerPath:     flyerPath,
		MappingImages: mapping,
		Support:       input.Support,
	}
	if err = s.eventRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event submitted",
		logger.Int64("event_id", record.ID),
		logger.String("creator_id", creator.ID),
		logger.Any("support_requested", record.Support.Requested()),
	)

	_ = s.postForModeration(ctx, record, creator)

	go s.alerter.AlertSubmission(context.WithoutCancel(ctx), record, creator)

	return record, nil
}

func (s *SubmissionService) Get(ctx context.Context, eventID int64) (*domain.EventRecord, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

// NotifyModerators (re)posts the moderation summary of an existing PENDING event.
func (s *SubmissionService) NotifyModerators(ctx context.Context, eventID int64) error {
	record, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if record.Status != domain.EventStatusPending {
		return domain.ErrInvalidTransition
	}

	creator, err := s.userRepo.GetByID(ctx, record.CreatorID)
	if err != nil {
		return fmt.Errorf("get creator: %w", err)
	}

	if err = s.postForModeration(ctx, record, creator); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, err)
	}

	return nil
}

func (s *SubmissionService) postForModeration(ctx context.Context, e *domain.EventRecord, creator *domain.User) error {
	messageID, err := s.platform.PostModerationSummary(ctx, e, creator)
	if err != nil {
		s.metrics.RecordDelivery(deliveryModeration, domain.DeliveryFailed)
		s.logger.Error("failed to post moderation summary",
			logger.Int64("event_id", e.ID),
			logger.String("error", err.Error()),
		)
		return err
	}
	s.metrics.RecordDelivery(deliveryModeration, domain.DeliveryDelivered)

	if err = s.eventRepo.SetModerationMessage(ctx, e.ID, messageID); err != nil {
		s.logger.Error("failed to store moderation message id",
			logger.Int64("event_id", e.ID),
			logger.String("message_id", messageID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	e.ModerationMessageID = &messageID

	return nil
}

func validateSubmission(input *domain.SubmitEventInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	switch {
	case input.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case utf8.RuneCountInString(input.Title) > maxTitleLen:
		return fmt.Errorf("%w: title is longer than %d characters", domain.ErrValidation, maxTitleLen)
	case input.Description == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	case utf8.RuneCountInString(input.Description) > maxDescriptionLen:
		return fmt.Errorf("%w: description is longer than %d characters", domain.ErrValidation, maxDescriptionLen)
	case input.EventDate.IsZero():
		return fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	case input.Flyer == nil || input.Flyer.Reader == nil:
		return fmt.Errorf("%w: flyer is required", domain.ErrValidation)
	case len(input.MappingImages) > maxMappingImages:
		return fmt.Errorf("%w: at most %d mapping images", domain.ErrValidation, maxMappingImages)
	}

	// descriptions only make sense next to their flag
	if !input.Support.NeedsVehicles {
		input.Support.VehiclesDescription = ""
	}
	if !input.Support.NeedsMapping {
		input.Support.MappingDescription = ""
	}

	return nil
}
