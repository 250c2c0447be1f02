package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/service/ports"
	"github.com/google/uuid"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Link creates the account of a Discord user or refreshes its username.
func (s *UserService) Link(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.DiscordID = strings.TrimSpace(input.DiscordID)

	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.DiscordID == "" {
		return nil, fmt.Errorf("%w: discord_id is required", domain.ErrValidation)
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  input.Username,
		DiscordID: input.DiscordID,
	}

	if err := s.repo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("link user: %w", err)
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
