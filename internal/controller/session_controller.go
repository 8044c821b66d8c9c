package controller

import (
	"recruai-web/internal/auth"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/session"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Current(ctx *fiber.Ctx) error
}

type sessionController struct {
	guard *auth.Guard
}

func NewSessionController(guard *auth.Guard) ISessionController {
	return &sessionController{guard: guard}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Get("/session", c.guard.Observe(), c.Current)
}

// Current reports the verified session. It never redirects; an
// unauthenticated caller gets a 200 with authenticated false.
func (c *sessionController) Current(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderCacheControl, "no-store")
	st := auth.StateFrom(ctx)
	return ctx.JSON(serverutils.SuccessResponse[session.State]("Session resolved", st))
}
