package controller

import (
	"sort"
	"strconv"
	"strings"

	"recruai-web/internal/auth"
	"recruai-web/internal/dto"
	"recruai-web/internal/navigation"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/service"
	"recruai-web/internal/session"
	"recruai-web/internal/view"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
	Analytics(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboard
	interviews    service.IInterviewService
	organizations service.IOrganizationService
}

func NewDashboardController(auth service.IAuthService, interviews service.IInterviewService, organizations service.IOrganizationService, log logger.ILogger) IDashboardController {
	return &dashboardController{
		dashboard:     dashboard{auth: auth, log: log},
		interviews:    interviews,
		organizations: organizations,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("", c.Overview)
	r.Get("/analytics", c.Analytics)
}

// interviewCards counts interviews by status for the overview.
func interviewCards(records []dto.Record) []view.Metric {
	var scheduled, completed int
	for _, r := range records {
		switch strings.ToLower(service.Status(r)) {
		case "scheduled", "pending", "in_progress":
			scheduled++
		case "completed":
			completed++
		}
	}
	return []view.Metric{
		{Label: "Interviews", Value: strconv.Itoa(len(records))},
		{Label: "Upcoming", Value: strconv.Itoa(scheduled)},
		{Label: "Completed", Value: strconv.Itoa(completed)},
	}
}

func (c *dashboardController) Overview(ctx *fiber.Ctx) error {
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	shell := c.shell(ctx, "Dashboard", service.CollectionInterviews)

	records, err := c.interviews.List(ctx.UserContext(), p)
	if err != nil {
		c.fetchFailed(&shell, service.CollectionInterviews, err)
	}

	content := view.Overview{Cards: interviewCards(records)}
	content.Cards = append(content.Cards, view.Metric{Label: "Plan", Value: view.Label(p.Plan.String())})
	for _, e := range navigation.SidebarEntries(p.Role, p.Plan) {
		if e.Route != navigation.RouteOverview {
			content.Links = append(content.Links, view.Metric{Label: e.Label, Value: e.Route})
		}
	}
	return renderDashboard(ctx, "overview", view.NewPage(shell, content))
}

func analyticsAvailable(st session.State) bool {
	return st.Role == session.RoleOrganization &&
		(st.Plan == session.PlanPro || st.Plan == session.PlanEnterprise)
}

// metricsOf lists the scalar top-level fields of an analytics object, sorted
// by key so the grid is stable between reloads.
func metricsOf(r dto.Record) []view.Metric {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []view.Metric
	for _, k := range keys {
		if v := r.Text(k); v != "" {
			out = append(out, view.Metric{Label: view.Label(splitCamel(k)), Value: v})
		}
	}
	return out
}

func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Analytics is plan-gated: trial accounts get an upgrade prompt instead of a
// backend call.
func (c *dashboardController) Analytics(ctx *fiber.Ctx) error {
	shell := c.shell(ctx, "Analytics", "")
	st := auth.StateFrom(ctx)
	if !analyticsAvailable(st) {
		return renderDashboard(ctx, "analytics", view.NewPage(shell, view.Analytics{}))
	}

	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	content := view.Analytics{Available: true}
	record, err := c.organizations.Analytics(ctx.UserContext(), p)
	if err != nil {
		c.fetchFailed(&shell, "analytics", err)
	} else {
		content.Metrics = metricsOf(record)
	}
	return renderDashboard(ctx, "analytics", view.NewPage(shell, content))
}
