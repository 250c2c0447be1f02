package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	DiscordID string    `json:"discord_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username  string
	DiscordID string
}
