package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert inserts the user or refreshes the username of an already linked
// Discord account. user.ID and user.CreatedAt are overwritten with the stored values.
func (r *UserRepository) Upsert(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, discord_id, created_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (discord_id) DO UPDATE SET username = EXCLUDED.username
			  RETURNING id, created_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, user.ID, user.Username, user.DiscordID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	if err = row.Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("scan user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, discord_id, created_at
			  FROM users
			  WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	query := `SELECT id, username, discord_id, created_at
			  FROM users
			  WHERE discord_id = $1`

	return r.getOne(ctx, query, discordID)
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, username, discord_id, created_at
			  FROM users
			  ORDER BY username`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Username, &u.DiscordID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.DiscordID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
