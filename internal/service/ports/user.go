package ports

import (
	"context"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
)

type UserRepo interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
