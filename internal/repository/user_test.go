package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upsertUserQuery = `INSERT INTO users .+ ON CONFLICT \(discord_id\) DO UPDATE SET username = EXCLUDED.username\s+RETURNING id, created_at`

func TestUserRepository_Upsert_Relink(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	linkedAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)` + upsertUserQuery).
		WithArgs("fresh-id", "alice2", "111", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("stored-id", linkedAt))

	user := &domain.User{ID: "fresh-id", Username: "alice2", DiscordID: "111"}
	err := repo.Upsert(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "stored-id", user.ID)
	assert.Equal(t, linkedAt, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByDiscordID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(`(?s)SELECT id, username, discord_id, created_at\s+FROM users\s+WHERE discord_id = \$1`).
		WithArgs("999").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "discord_id", "created_at"}))

	_, err := repo.GetByDiscordID(context.Background(), "999")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
