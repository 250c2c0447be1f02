package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, creator_id, title, description, event_date, flyer_path, mapping_images,
		needs_vehicles, vehicles_description, needs_radio, needs_mapping, mapping_description,
		status, rejection_reason, reviewed_by,
		moderation_message_id, public_message_id, flyer_url, ticket_channel_id,
		start_notified, subscribers, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.EventRecord) error {
	query := `INSERT INTO events (creator_id, title, description, event_date, flyer_path, mapping_images,
	                              needs_vehicles, vehicles_description, needs_radio, needs_mapping, mapping_description,
	                              status, start_notified, subscribers, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, false, '{}', $13, $13)
			  RETURNING id`

	if e.MappingImages == nil {
		e.MappingImages = []string{}
	}

	now := time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.CreatorID, e.Title, e.Description, e.EventDate, e.FlyerPath, pq.Array(e.MappingImages),
		e.Support.NeedsVehicles, e.Support.VehiclesDescription, e.Support.NeedsRadio,
		e.Support.NeedsMapping, e.Support.MappingDescription,
		domain.EventStatusPending, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	if err = row.Scan(&e.ID); err != nil {
		return fmt.Errorf("scan event id: %w", err)
	}

	e.Status = domain.EventStatusPending
	e.StartNotified = false
	e.Subscribers = []string{}
	e.CreatedAt = now
	e.UpdatedAt = now

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.EventRecord, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) SetModerationMessage(ctx context.Context, id int64, messageID string) error {
	query := `UPDATE events SET moderation_message_id = $2, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, "set moderation message", query, id, messageID)
}

func (r *EventRepository) Approve(ctx context.Context, id int64, moderatorID string) error {
	return r.transition(ctx, id, domain.EventStatusApproved, moderatorID, nil)
}

func (r *EventRepository) Reject(ctx context.Context, id int64, moderatorID, reason string) error {
	return r.transition(ctx, id, domain.EventStatusRejected, moderatorID, &reason)
}

// transition moves a PENDING event to next. The status guard lives in the
// WHERE clause so two moderators racing on the same record get one winner.
func (r *EventRepository) transition(
	ctx context.Context,
	id int64,
	next domain.EventStatus,
	moderatorID string,
	reason *string,
) error {
	query := `UPDATE events
			  SET status = $2, reviewed_by = $3, rejection_reason = $4, updated_at = now()
			  WHERE id = $1 AND status = $5`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, next, moderatorID, reason, domain.EventStatusPending,
	)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 1 {
		return nil
	}

	// Нет обновления: либо события нет, либо оно уже не в PENDING
	if _, err = r.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrInvalidTransition
}

func (r *EventRepository) SetAnnouncement(ctx context.Context, id int64, messageID, flyerURL string) error {
	query := `UPDATE events
			  SET public_message_id = $2, flyer_url = $3, updated_at = now()
			  WHERE id = $1`
	return r.execOne(ctx, "set announcement", query, id, messageID, flyerURL)
}

func (r *EventRepository) SetTicketChannel(ctx context.Context, id int64, channelID string) error {
	query := `UPDATE events SET ticket_channel_id = $2, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, "set ticket channel", query, id, channelID)
}

// AddSubscriber appends userID unless it is already present and returns the
// resulting subscriber count.
func (r *EventRepository) AddSubscriber(ctx context.Context, id int64, userID string) (int, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var subscribers []string
	lockQuery := `SELECT subscribers FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(pq.Array(&subscribers)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, domain.ErrEventNotFound
		}
		return 0, false, fmt.Errorf("lock event subscribers: %w", err)
	}

	for _, s := range subscribers {
		if s == userID {
			return len(subscribers), false, nil
		}
	}

	var count int
	updateQuery := `UPDATE events
					SET subscribers = array_append(subscribers, $2::text), updated_at = now()
					WHERE id = $1
					RETURNING cardinality(subscribers)`
	if err = tx.QueryRowContext(ctx, updateQuery, id, userID).Scan(&count); err != nil {
		return 0, false, fmt.Errorf("append subscriber: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit subscriber: %w", err)
	}

	return count, true, nil
}

// ListAwaitingStart returns approved events that have not been announced as
// started and are scheduled within [from, until].
func (r *EventRepository) ListAwaitingStart(ctx context.Context, from, until time.Time) ([]*domain.EventRecord, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status = $1 AND start_notified = false
			    AND event_date BETWEEN $2 AND $3
			  ORDER BY event_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.EventStatusApproved, from, until)
	if err != nil {
		return nil, fmt.Errorf("list awaiting start: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventRecord
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// MarkStartNotified flips start_notified exactly once. The returned bool is
// false when another sweep already claimed the event.
func (r *EventRepository) MarkStartNotified(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE events
			  SET start_notified = true, updated_at = now()
			  WHERE id = $1 AND status = $2 AND start_notified = false`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.EventStatusApproved)
	if err != nil {
		return false, fmt.Errorf("mark start notified: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("event rows affected: %w", err)
	}

	return rows == 1, nil
}

func (r *EventRepository) execOne(ctx context.Context, op, query string, args ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func scanEvent(s rowScanner) (*domain.EventRecord, error) {
	var e domain.EventRecord
	err := s.Scan(
		&e.ID, &e.CreatorID, &e.Title, &e.Description, &e.EventDate, &e.FlyerPath, pq.Array(&e.MappingImages),
		&e.Support.NeedsVehicles, &e.Support.VehiclesDescription, &e.Support.NeedsRadio,
		&e.Support.NeedsMapping, &e.Support.MappingDescription,
		&e.Status, &e.RejectionReason, &e.ReviewedBy,
		&e.ModerationMessageID, &e.PublicMessageID, &e.FlyerURL, &e.TicketChannelID,
		&e.StartNotified, pq.Array(&e.Subscribers), &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
