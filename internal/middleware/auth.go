package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

const (
	apiKeyHeader      = "X-API-Key"
	discordUserHeader = "X-Discord-User-ID"
	discordUserKey    = "discord_user_id"
)

// APIKey rejects requests that do not carry the shared web-tier secret.
func APIKey(key string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		got := strings.TrimSpace(c.GetHeader(apiKeyHeader))
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		if id := strings.TrimSpace(c.GetHeader(discordUserHeader)); id != "" {
			c.Set(discordUserKey, id)
		}
		c.Next()
	}
}

// DiscordUserID returns the Discord account the web tier acts for, if any.
func DiscordUserID(c *ginext.Context) string {
	return c.GetString(discordUserKey)
}
