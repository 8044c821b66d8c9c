package controller

import (
	"errors"

	"recruai-web/internal/auth"
	"recruai-web/internal/dto"
	"recruai-web/internal/navigation"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/service"
	"recruai-web/internal/view"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SignInPage(ctx *fiber.Ctx) error
	SignIn(ctx *fiber.Ctx) error
	SignOut(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	guard   *auth.Guard
	limit   fiber.Handler
	log     logger.ILogger
}

// NewAuthController takes the rate limiter for credential posts; nil disables it.
func NewAuthController(service service.IAuthService, guard *auth.Guard, limit fiber.Handler, log logger.ILogger) IAuthController {
	if limit == nil {
		limit = func(c *fiber.Ctx) error { return c.Next() }
	}
	return &authController{service: service, guard: guard, limit: limit, log: log}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/signin", c.guard.Observe(), c.SignInPage)
	r.Post("/signin", c.limit, c.SignIn)
	r.Post("/signout", c.SignOut)
}

func (c *authController) renderSignIn(ctx *fiber.Ctx, status int, content view.SignIn, banner *view.Banner) error {
	shell := view.PublicShell(auth.StateFrom(ctx), ctx.Path(), "Sign in")
	shell.Banner = banner
	ctx.Status(status)
	return ctx.Render("auth/signin", view.NewPage(shell, content), view.LayoutPublic)
}

func (c *authController) SignInPage(ctx *fiber.Ctx) error {
	next := auth.SafeNext(ctx.Query("next"), navigation.RouteOverview)
	if auth.StateFrom(ctx).IsAuthenticated() {
		return ctx.Redirect(next, fiber.StatusSeeOther)
	}
	return c.renderSignIn(ctx, fiber.StatusOK, view.SignIn{Next: next}, nil)
}

func (c *authController) SignIn(ctx *fiber.Ctx) error {
	var form dto.SignInForm
	if err := ctx.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed form")
	}
	next := auth.SafeNext(form.Next, navigation.RouteOverview)
	content := view.SignIn{Email: form.Email, Next: next}

	if err := serverutils.ValidateRequest(form); err != nil {
		content.Errors = fieldErrors(err)
		return c.renderSignIn(ctx, fiber.StatusUnprocessableEntity, content, nil)
	}

	_, err := c.service.SignIn(ctx.UserContext(), auth.SessionID(ctx), form)
	switch {
	case err == nil:
		return ctx.Redirect(next, fiber.StatusSeeOther)
	case errors.Is(err, auth.ErrCanceled):
		return nil
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.renderSignIn(ctx, fiber.StatusUnauthorized, content, view.ErrorBanner("Invalid email or password."))
	case errors.Is(err, service.ErrSignInRejected):
		return c.renderSignIn(ctx, fiber.StatusUnauthorized, content, view.ErrorBanner("We could not verify your account. Please try again."))
	default:
		c.log.Error("AuthController", "sign in failed", map[string]interface{}{"error": err.Error()})
		return c.renderSignIn(ctx, fiber.StatusBadGateway, content, view.ErrorBanner(failureMessage(err)))
	}
}

// SignOut always lands on the home page; a session that could not be
// cleared will fail verification on its next use anyway.
func (c *authController) SignOut(ctx *fiber.Ctx) error {
	if err := c.service.SignOut(ctx.UserContext(), auth.SessionID(ctx)); err != nil {
		c.log.Warn("AuthController", "sign out incomplete", map[string]interface{}{"error": err.Error()})
	}
	ctx.Set(fiber.HeaderCacheControl, "no-store")
	return ctx.Redirect("/", fiber.StatusSeeOther)
}
