package auth

import (
	"time"

	"recruai-web/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localsSessionID = "sessionID"

// SessionCookie makes sure every request carries a session id, issuing a new
// random one when the cookie is missing or malformed.
func SessionCookie(cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cfg.CookieName)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    sid,
				Path:     "/",
				Expires:  time.Now().Add(cfg.TTL),
				HTTPOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(localsSessionID, sid)
		return c.Next()
	}
}

func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(localsSessionID).(string)
	return sid
}
