package notification

import (
	"context"
	"testing"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func testEvent() *domain.EventRecord {
	return &domain.EventRecord{
		ID:        12,
		Title:     "Drift_night",
		EventDate: time.Date(2026, 11, 1, 20, 30, 0, 0, time.UTC),
		Support:   domain.SupportRequest{NeedsRadio: true},
	}
}

func TestNewTelegramAlerter_DisabledWithoutConfig(t *testing.T) {
	log := newTestLogger(t)

	for _, tc := range []struct {
		token  string
		chatID int64
	}{{"", 0}, {"token", 0}, {"", 42}} {
		a, err := NewTelegramAlerter(tc.token, tc.chatID, log)
		require.NoError(t, err)
		assert.Nil(t, a.bot)
	}
}

func TestTelegramAlerter_DisabledDoesNotPanic(t *testing.T) {
	a, err := NewTelegramAlerter("", 0, newTestLogger(t))
	require.NoError(t, err)

	a.AlertSubmission(context.Background(), testEvent(), &domain.User{Username: "alice"})
	a.AlertApprovalFailure(context.Background(), testEvent(), &domain.ApprovalReport{})
}

func TestSubmissionText(t *testing.T) {
	text := submissionText(testEvent(), &domain.User{Username: "alice"})

	assert.Contains(t, text, "#12")
	assert.Contains(t, text, `Drift\_night`)
	assert.Contains(t, text, "01/11/2026 20:30")
	assert.Contains(t, text, "alice")
	assert.Contains(t, text, "apoyo")
}

func TestApprovalFailureText(t *testing.T) {
	report := &domain.ApprovalReport{EventID: 12}
	report.Add("announcement", domain.DeliveryDelivered, "")
	report.Add("support channel", domain.DeliveryFailed, "missing access")

	text := approvalFailureText(testEvent(), report)

	assert.Contains(t, text, "- announcement: delivered\n")
	assert.Contains(t, text, "- support channel: failed (missing access)")
	assert.Contains(t, text, "reintentar")
}
