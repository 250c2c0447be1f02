package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type intakeDeps struct {
	eventRepo *mocks.MockEventRepo
	userRepo  *mocks.MockUserRepo
	media     *mocks.MockMediaStore
	platform  *mocks.MockPlatform
	alerter   *mocks.MockStaffAlerter
}

func newIntake(t *testing.T) (*SubmissionService, intakeDeps) {
	d := intakeDeps{
		eventRepo: mocks.NewMockEventRepo(t),
		userRepo:  mocks.NewMockUserRepo(t),
		media:     mocks.NewMockMediaStore(t),
		platform:  mocks.NewMockPlatform(t),
		alerter:   mocks.NewMockStaffAlerter(t),
	}
	svc := NewSubmissionService(d.eventRepo, d.userRepo, d.media, d.platform, d.alerter, newTestMetrics(), newTestLogger(t))
	return svc, d
}

func validInput() domain.SubmitEventInput {
	return domain.SubmitEventInput{
		DiscordUserID: "111",
		Title:         " Carrera nocturna ",
		Description:   "Vuelta por Vinewood",
		EventDate:     time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC),
		Flyer:         &domain.Upload{Name: "flyer.png", Reader: strings.NewReader("png")},
	}
}

func TestSubmissionService_Submit_Success(t *testing.T) {
	svc, d := newIntake(t)
	creator := &domain.User{ID: "u1", Username: "alice", DiscordID: "111"}

	d.userRepo.EXPECT().GetByDiscordID(mock.Anything, "111").Return(creator, nil)
	d.media.EXPECT().Save(mock.Anything, mock.Anything).Return("stored-flyer.png", nil).Once()
	d.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *domain.EventRecord) {
			e.ID = 7
			e.Status = domain.EventStatusPending
		}).
		Return(nil)
	d.platform.EXPECT().PostModerationSummary(mock.Anything, mock.Anything, creator).Return("mod-7", nil)
	d.eventRepo.EXPECT().SetModerationMessage(mock.Anything, int64(7), "mod-7").Return(nil)
	d.alerter.EXPECT().AlertSubmission(mock.Anything, mock.Anything, creator).Return()

	e, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(7), e.ID)
	assert.Equal(t, domain.EventStatusPending, e.Status)
	assert.Equal(t, "Carrera nocturna", e.Title)
	assert.Equal(t, "u1", e.CreatorID)
	assert.Equal(t, "stored-flyer.png", e.FlyerPath)
	require.NotNil(t, e.ModerationMessageID)
	assert.Equal(t, "mod-7", *e.ModerationMessageID)

	time.Sleep(50 * time.Millisecond) // goroutine alert
}

func TestSubmissionService_Submit_SavesMappingImages(t *testing.T) {
	svc, d := newIntake(t)
	creator := &domain.User{ID: "u1", DiscordID: "111"}

	input := validInput()
	input.Support = domain.SupportRequest{NeedsMapping: true, MappingDescription: "rampa"}
	input.MappingImages = []domain.Upload{
		{Name: "a.png", Reader: strings.NewReader("a")},
		{Name: "b.png", Reader: strings.NewReader("b")},
	}

	d.userRepo.EXPECT().GetByDiscordID(mock.Anything, "111").Return(creator, nil)
	d.media.EXPECT().Save(mock.Anything, mock.Anything).Return("f.png", nil).Once()
	d.media.EXPECT().Save(mock.Anything, mock.Anything).Return("m1.png", nil).Once()
	d.media.EXPECT().Save(mock.Anything, mock.Anything).Return("m2.png", nil).Once()
	d.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.platform.EXPECT().PostModerationSummary(mock.Anything, mock.Anything, creator).Return("mod-1", nil)
	d.eventRepo.EXPECT().SetModerationMessage(mock.Anything, mock.Anything, "mod-1").Return(nil)
	d.alerter.EXPECT().AlertSubmission(mock.Anything, mock.Anything, creator).Return()

	e, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, []string{"m1.png", "m2.png"}, e.MappingImages)
	assert.True(t, e.Support.NeedsMapping)
	assert.Equal(t, "rampa", e.Support.MappingDescription)

	time.Sleep(50 * time.Millisecond)
}

func TestSubmissionService_Submit_ModerationPostFailureStillSucceeds(t *testing.T) {
	svc, d := newIntake(t)
	creator := &domain.User{ID: "u1", DiscordID: "111"}

	d.userRepo.EXPECT().GetByDiscordID(mock.Anything, "111").Return(creator, nil)
	d.media.EXPECT().Save(mock.Anything, mock.Anything).Return("f.png", nil)
	d.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *domain.EventRecord) { e.ID = 3 }).
		Return(nil)
	d.platform.EXPECT().PostModerationSummary(mock.Anything, mock.Anything, creator).
		Return("", errors.New("discord unavailable"))
	d.alerter.EXPECT().AlertSubmission(mock.Anything, mock.Anything, creator).Return()

	e, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(3), e.ID)
	assert.Nil(t, e.ModerationMessageID)

	time.Sleep(50 * time.Millisecond)
}

func TestSubmissionService_Submit_Unauthenticated(t *testing.T) {
	svc, _ := newIntake(t)

	input := validInput()
	input.DiscordUserID = ""

	_, err := svc.Submit(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSubmissionService_Submit_UnknownUser(t *testing.T) {
	svc, d := newIntake(t)

	d.userRepo.EXPECT().GetByDiscordID(mock.Anything, "111").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Submit(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSubmissionService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *domain.SubmitEventInput)
	}{
		{"empty title", func(in *domain.SubmitEventInput) { in.Title = "  " }},
		{"long title", func(in *domain.SubmitEventInput) { in.Title = strings.Repeat("a", 257) }},
		{"empty description", func(in *domain.SubmitEventInput) { in.Description = "" }},
		{"long description", func(in *domain.SubmitEventInput) { in.Description = strings.Repeat("a", 4097) }},
		{"zero date", func(in *domain.SubmitEventInput) { in.EventDate = time.Time{} }},
		{"missing flyer", func(in *domain.SubmitEventInput) { in.Flyer = nil }},
		{"too many mapping images", func(in *domain.SubmitEventInput) {
			in.MappingImages = make([]domain.Upload, 11)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newIntake(t)
			d.userRepo.EXPECT().GetByDiscordID(mock.Anything, "111").Return(&domain.User{ID: "u1"}, nil)

			input := validInput()
			tt.modify(&input)

			_, err := svc.Submit(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSubmissionService_Submit_DropsDescriptionsWithoutFlags(t *testing.T) {
	input := validInput()
	input.Support = domain.SupportRequest{VehiclesDescription: "10 coches", MappingDescription: "rampa", NeedsRadio: true}

	require.NoError(t, validateSubmission(&input))

	assert.Empty(t, input.Support.VehiclesDescription)
	assert.Empty(t, input.Support.MappingDescription)
	assert.True(t, input.Support.NeedsRadio)
}

func TestSubmissionService_Submit_StoreFailure(t *testing.T) {
	svc, d := newIntake(t)

	d.userRepo.EXPECT().GetByDiscordID(mock.Anything, "111").Return(&domain.User{ID: "u1"}, nil)
	d.media.EXPECT().Save(mock.Anything, mock.Anything).Return("f.png", nil)
	dbErr := errors.New("db down")
	d.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr)

	_, err := svc.Submit(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestSubmissionService_NotifyModerators_Success(t *testing.T) {
	svc, d := newIntake(t)
	e := pendingEvent(5)
	e.ModerationMessageID = nil
	creator := &domain.User{ID: "u1"}

	d.eventRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(e, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(creator, nil)
	d.platform.EXPECT().PostModerationSummary(mock.Anything, e, creator).Return("mod-5", nil)
	d.eventRepo.EXPECT().SetModerationMessage(mock.Anything, int64(5), "mod-5").Return(nil)

	err := svc.NotifyModerators(context.Background(), 5)

	require.NoError(t, err)
}

func TestSubmissionService_NotifyModerators_NotPending(t *testing.T) {
	svc, d := newIntake(t)
	e := pendingEvent(5)
	e.Status = domain.EventStatusApproved

	d.eventRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(e, nil)

	err := svc.NotifyModerators(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSubmissionService_NotifyModerators_NotFound(t *testing.T) {
	svc, d := newIntake(t)

	d.eventRepo.EXPECT().GetByID(mock.Anything, int64(9)).Return(nil, domain.ErrEventNotFound)

	err := svc.NotifyModerators(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestSubmissionService_NotifyModerators_DeliveryFailed(t *testing.T) {
	svc, d := newIntake(t)
	e := pendingEvent(5)
	creator := &domain.User{ID: "u1"}

	d.eventRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(e, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(creator, nil)
	d.platform.EXPECT().PostModerationSummary(mock.Anything, e, creator).Return("", errors.New("missing access"))

	err := svc.NotifyModerators(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}

func TestSubmissionService_Get(t *testing.T) {
	svc, d := newIntake(t)

	d.eventRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(pendingEvent(5), nil)

	e, err := svc.Get(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), e.ID)
}
