package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"
)

// NewSession prepares a bot session. Interactions arrive without
// privileged intents, so only guild events are requested.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	return s, nil
}

// Connect registers the interaction router and opens the gateway.
func Connect(s *discordgo.Session, router *Router, log logger.Logger) error {
	s.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info("discord session ready",
			logger.String("user", r.User.Username),
			logger.Int("guilds", len(r.Guilds)),
		)
	})
	s.AddHandler(router.Handle)

	if err := s.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}
