package service

import (
	"testing"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
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

func newTestMetrics() *metrics.Recorder {
	return metrics.New(prometheus.NewRegistry())
}

func strPtr(s string) *string {
	return &s
}

func pendingEvent(id int64) *domain.EventRecord {
	return &domain.EventRecord{
		ID:                  id,
		CreatorID:           "u1",
		Title:               "Carrera nocturna",
		Description:         "Vuelta por Vinewood",
		EventDate:           time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC),
		FlyerPath:           "flyer.png",
		Status:              domain.EventStatusPending,
		ModerationMessageID: strPtr("mod-1"),
		Subscribers:         []string{},
	}
}
