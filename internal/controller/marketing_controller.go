package controller

import (
	"errors"

	"recruai-web/internal/auth"
	"recruai-web/internal/dto"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/service"
	"recruai-web/internal/view"

	"github.com/gofiber/fiber/v2"
)

// Placeholder copy.
var (
	testimonials = []view.Testimonial{
		{Quote: "We cut our time-to-hire in half without adding recruiters.", Author: "Dana K.", Title: "Head of Talent"},
		{Quote: "Candidates get a consistent interview no matter when they apply.", Author: "Rafi M.", Title: "Engineering Manager"},
		{Quote: "The scorecards made our hiring debriefs actually short.", Author: "Ines L.", Title: "People Ops Lead"},
	}

	pricingTiers = []view.PricingTier{
		{Name: "Trial", Price: "Free", Period: "for 14 days", CTA: "Start trial",
			Features: []string{"5 AI interviews", "Interview scheduling", "Candidate directory"}},
		{Name: "Pro", Price: "$99", Period: "per month", CTA: "Choose Pro", Featured: true,
			Features: []string{"Unlimited AI interviews", "Team members", "Hiring pipeline", "Analytics"}},
		{Name: "Enterprise", Price: "Custom", Period: "annual", CTA: "Contact sales",
			Features: []string{"Everything in Pro", "SSO", "Dedicated support"}},
	}
)

type IMarketingController interface {
	RegisterRoutes(r fiber.Router)
	Landing(ctx *fiber.Ctx) error
	Pricing(ctx *fiber.Ctx) error
	JoinWaitlist(ctx *fiber.Ctx) error
}

type marketingController struct {
	waitlist service.IWaitlistService
	guard    *auth.Guard
	limit    fiber.Handler
	log      logger.ILogger
}

func NewMarketingController(waitlist service.IWaitlistService, guard *auth.Guard, limit fiber.Handler, log logger.ILogger) IMarketingController {
	if limit == nil {
		limit = func(c *fiber.Ctx) error { return c.Next() }
	}
	return &marketingController{waitlist: waitlist, guard: guard, limit: limit, log: log}
}

func (c *marketingController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.guard.Observe(), c.Landing)
	r.Get("/pricing", c.guard.Observe(), c.Pricing)
	r.Post("/waitlist", c.limit, c.guard.Observe(), c.JoinWaitlist)
}

func (c *marketingController) renderLanding(ctx *fiber.Ctx, status int, form view.WaitlistForm, banner *view.Banner) error {
	shell := view.PublicShell(auth.StateFrom(ctx), "/", "RecruAI by MenteE")
	shell.Banner = banner

	size, err := c.waitlist.Count(ctx.UserContext())
	if err != nil {
		c.log.Warn("MarketingController", "waitlist count unavailable", map[string]interface{}{"error": err.Error()})
	}

	ctx.Status(status)
	return ctx.Render("marketing/landing", view.NewPage(shell, view.Landing{
		Testimonials: testimonials,
		Waitlist:     form,
		WaitlistSize: size,
	}), view.LayoutPublic)
}

func (c *marketingController) Landing(ctx *fiber.Ctx) error {
	form := view.WaitlistForm{Role: "organization", Joined: ctx.Query("joined") == "1"}
	return c.renderLanding(ctx, fiber.StatusOK, form, nil)
}

func (c *marketingController) Pricing(ctx *fiber.Ctx) error {
	shell := view.PublicShell(auth.StateFrom(ctx), ctx.Path(), "Pricing")
	return ctx.Render("marketing/pricing", view.NewPage(shell, pricingTiers), view.LayoutPublic)
}

func (c *marketingController) JoinWaitlist(ctx *fiber.Ctx) error {
	var req dto.WaitlistForm
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed form")
	}
	form := view.WaitlistForm{Email: req.Email, Name: req.Name, Role: req.Role}

	if err := serverutils.ValidateRequest(req); err != nil {
		form.Errors = fieldErrors(err)
		return c.renderLanding(ctx, fiber.StatusUnprocessableEntity, form, nil)
	}

	metadata := map[string]string{
		"source":     "landing",
		"user_agent": ctx.Get(fiber.HeaderUserAgent),
		"referer":    ctx.Get(fiber.HeaderReferer),
	}
	err := c.waitlist.Join(ctx.UserContext(), req, metadata)
	switch {
	case err == nil:
		return ctx.Redirect("/?joined=1#waitlist", fiber.StatusSeeOther)
	case errors.Is(err, service.ErrAlreadyOnWaitlist):
		form.Errors = map[string]string{"email": "is already on the waitlist"}
		return c.renderLanding(ctx, fiber.StatusConflict, form, nil)
	default:
		c.log.Error("MarketingController", "waitlist join failed", map[string]interface{}{"error": err.Error()})
		return c.renderLanding(ctx, fiber.StatusInternalServerError, form,
			view.ErrorBanner("We could not save your details. Please try again."))
	}
}
