package auth

import (
	"errors"
	"net/url"
	"strings"

	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/session"

	"github.com/gofiber/fiber/v2"
)

type GuardState uint8

const (
	GuardChecking GuardState = iota
	GuardAuthenticated
	GuardUnauthenticated
)

func (s GuardState) String() string {
	switch s {
	case GuardAuthenticated:
		return "authenticated"
	case GuardUnauthenticated:
		return "unauthenticated"
	default:
		return "checking"
	}
}

const localsState = "sessionState"

type Guard struct {
	verifier   *Verifier
	signInPath string
	log        logger.ILogger
}

func NewGuard(verifier *Verifier, signInPath string, log logger.ILogger) *Guard {
	return &Guard{
		verifier:   verifier,
		signInPath: signInPath,
		log:        log,
	}
}

// Decide runs one verification for the request. A canceled request stays in
// GuardChecking and nothing else happens.
func (g *Guard) Decide(c *fiber.Ctx) GuardState {
	if st, ok := c.Locals(localsState).(session.State); ok && st.IsResolved() {
		return stateOf(st)
	}

	st, _, err := g.verifier.Verify(c.UserContext(), SessionID(c))
	if errors.Is(err, ErrCanceled) {
		return GuardChecking
	}
	c.Locals(localsState, st)
	return stateOf(st)
}

func stateOf(st session.State) GuardState {
	if st.IsAuthenticated() {
		return GuardAuthenticated
	}
	return GuardUnauthenticated
}

// Protect renders the wrapped handlers only for a verified session and sends
// everyone else to the sign-in page with a 303, so the guarded URL never
// renders and the POST that may have led here is not replayed.
func (g *Guard) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch g.Decide(c) {
		case GuardAuthenticated:
			return c.Next()
		case GuardUnauthenticated:
			c.Set(fiber.HeaderCacheControl, "no-store")
			return c.Redirect(g.signInURL(c), fiber.StatusSeeOther)
		default:
			return g.abandon(c)
		}
	}
}

// Observe resolves the session for public pages without ever redirecting.
func (g *Guard) Observe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if g.Decide(c) == GuardChecking {
			return g.abandon(c)
		}
		return c.Next()
	}
}

// abandon ends a request whose context finished before verification did.
// Nothing is rendered and nobody is redirected.
func (g *Guard) abandon(c *fiber.Ctx) error {
	g.log.Debug("Guard", "request gone before verification finished", map[string]interface{}{"path": c.Path()})
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.SendStatus(fiber.StatusServiceUnavailable)
}

func (g *Guard) signInURL(c *fiber.Ctx) string {
	if c.Method() != fiber.MethodGet || strings.HasPrefix(c.Path(), "/ws/") {
		return g.signInPath
	}
	return g.signInPath + "?next=" + url.QueryEscape(c.OriginalURL())
}

// StateFrom returns the state resolved by Protect or Observe. Handlers that
// run without either see session.Unknown().
func StateFrom(c *fiber.Ctx) session.State {
	if st, ok := c.Locals(localsState).(session.State); ok {
		return st
	}
	return session.Unknown()
}

// SafeNext keeps post-sign-in redirects on this site.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}
