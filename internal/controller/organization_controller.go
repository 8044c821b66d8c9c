package controller

import (
	"recruai-web/internal/dto"
	"recruai-web/internal/listview"
	"recruai-web/internal/navigation"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/service"
	"recruai-web/internal/view"

	"github.com/gofiber/fiber/v2"
)

type IOrganizationController interface {
	RegisterRoutes(r fiber.Router)
	Organizations(ctx *fiber.Ctx) error
	Candidates(ctx *fiber.Ctx) error
}

type organizationController struct {
	dashboard
	service service.IOrganizationService
}

func NewOrganizationController(auth service.IAuthService, service service.IOrganizationService, log logger.ILogger) IOrganizationController {
	return &organizationController{
		dashboard: dashboard{auth: auth, log: log},
		service:   service,
	}
}

func (c *organizationController) RegisterRoutes(r fiber.Router) {
	r.Get("/organizations", c.Organizations)
	r.Get("/candidates", c.Candidates)
}

func organizationRow(r dto.Record) view.OrganizationRow {
	return view.OrganizationRow{
		ID:       r.ID(),
		Name:     service.Name(r),
		Industry: service.Industry(r),
		Location: service.Location(r),
		Size:     service.Size(r),
	}
}

func candidateRow(r dto.Record) view.CandidateRow {
	return view.CandidateRow{
		ID:     r.ID(),
		Name:   service.Name(r),
		Email:  service.Email(r),
		Role:   service.UserRole(r),
		Status: service.Status(r),
	}
}

// Organizations is the directory an individual browses.
func (c *organizationController) Organizations(ctx *fiber.Ctx) error {
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	shell := c.shell(ctx, "Organizations", service.CollectionOrganizations)

	records, err := c.service.Directory(ctx.UserContext(), p)
	if err != nil {
		c.fetchFailed(&shell, service.CollectionOrganizations, err)
		records = nil
	}

	st := listState(service.OrganizationListSpec, records, currentQuery(ctx))
	criteria := st.Criteria()
	content := view.List[view.OrganizationRow]{
		BasePath: navigation.RouteOrganizations,
		Page:     listview.MapPage(st.Current(), organizationRow),
		Criteria: criteria,
		Filters: []view.FilterControl{
			view.FilterFrom("industry", "Industry", records, service.Industry, criteria.Filters["industry"]),
			view.FilterFrom("size", "Size", records, service.Size, criteria.Filters["size"]),
		},
		RawCount: len(records),
	}
	return renderDashboard(ctx, "organizations", view.NewPage(shell, content))
}

func (c *organizationController) Candidates(ctx *fiber.Ctx) error {
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	shell := c.shell(ctx, "Candidates", service.CollectionCandidates)

	records, err := c.service.Candidates(ctx.UserContext(), p)
	if err != nil {
		c.fetchFailed(&shell, service.CollectionCandidates, err)
		records = nil
	}

	st := listState(service.CandidateListSpec, records, currentQuery(ctx))
	criteria := st.Criteria()
	content := view.List[view.CandidateRow]{
		BasePath: navigation.RouteCandidates,
		Page:     listview.MapPage(st.Current(), candidateRow),
		Criteria: criteria,
		Filters: []view.FilterControl{
			view.FilterFrom("status", "Status", records, service.Status, criteria.Filters["status"]),
			view.FilterFrom("role", "Role", records, service.UserRole, criteria.Filters["role"]),
		},
		RawCount: len(records),
	}
	return renderDashboard(ctx, "candidates", view.NewPage(shell, content))
}
