package controller

import (
	"fmt"
	"net/url"

	"recruai-web/internal/dto"
	"recruai-web/internal/listview"
	"recruai-web/internal/navigation"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/service"
	"recruai-web/internal/view"

	"github.com/gofiber/fiber/v2"
)

type ITeamController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Invite(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type teamController struct {
	dashboard
	service service.ITeamService
}

func NewTeamController(auth service.IAuthService, service service.ITeamService, log logger.ILogger) ITeamController {
	return &teamController{
		dashboard: dashboard{auth: auth, log: log},
		service:   service,
	}
}

func (c *teamController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/team")
	h.Get("", c.Index)
	h.Post("/invite", c.Invite)
	h.Post("/:id", c.Update)
	h.Post("/:id/delete", c.Remove)
}

func memberRow(r dto.Record) view.MemberRow {
	return view.MemberRow{
		ID:     r.ID(),
		Name:   service.Name(r),
		Email:  service.Email(r),
		Role:   service.UserRole(r),
		Status: service.Status(r),
	}
}

func teamModalFor(q url.Values, records []dto.Record) *view.Modal {
	name, target := view.ParseModal(q.Get("modal"))
	switch name {
	case "invite":
		return &view.Modal{Name: name, Action: navigation.RouteTeam + "/invite", Values: map[string]string{"role": "recruiter"}}
	case "edit":
		for _, r := range records {
			if r.ID() == target {
				return &view.Modal{
					Name:   name,
					Target: target,
					Action: fmt.Sprintf("%s/%s", navigation.RouteTeam, url.PathEscape(target)),
					Values: map[string]string{"role": service.UserRole(r), "status": service.Status(r)},
				}
			}
		}
	}
	return nil
}

func (c *teamController) render(ctx *fiber.Ctx, status int, modal *view.Modal, banner *view.Banner) error {
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	shell := c.shell(ctx, "Team", service.CollectionTeam)
	if banner != nil {
		shell.Banner = banner
	}

	records, err := c.service.Members(ctx.UserContext(), p)
	if err != nil {
		c.fetchFailed(&shell, service.CollectionTeam, err)
		records = nil
	}

	q := currentQuery(ctx)
	st := listState(service.TeamListSpec, records, q)
	if modal == nil && ctx.Method() == fiber.MethodGet {
		modal = teamModalFor(q, records)
	}

	criteria := st.Criteria()
	content := view.List[view.MemberRow]{
		BasePath: navigation.RouteTeam,
		Page:     listview.MapPage(st.Current(), memberRow),
		Criteria: criteria,
		Filters: []view.FilterControl{
			view.FilterFrom("role", "Role", records, service.UserRole, criteria.Filters["role"], "admin", "recruiter", "interviewer", "viewer"),
			view.FilterFrom("status", "Status", records, service.Status, criteria.Filters["status"]),
		},
		RawCount: len(records),
		Modal:    modal,
	}

	ctx.Status(status)
	return renderDashboard(ctx, "team", view.NewPage(shell, content))
}

func (c *teamController) failed(ctx *fiber.Ctx, err error, modal *view.Modal) error {
	c.log.Info("TeamController", "mutation failed", map[string]interface{}{"path": ctx.Path(), "error": err.Error()})
	if modal != nil {
		modal.Errors = fieldErrors(err)
	}
	return c.render(ctx, failureStatus(err), modal, view.ErrorBanner(failureMessage(err)))
}

func (c *teamController) Index(ctx *fiber.Ctx) error {
	return c.render(ctx, fiber.StatusOK, nil, nil)
}

func (c *teamController) Invite(ctx *fiber.Ctx) error {
	var form dto.InviteForm
	if err := ctx.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed form")
	}
	modal := &view.Modal{
		Name:   "invite",
		Action: ctx.Path(),
		Values: map[string]string{"email": form.Email, "name": form.Name, "role": form.Role},
	}

	if err := serverutils.ValidateRequest(form); err != nil {
		return c.failed(ctx, err, modal)
	}
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	if err := c.service.Invite(ctx.UserContext(), p, form); err != nil {
		return c.failed(ctx, err, modal)
	}
	return backTo(ctx, navigation.RouteTeam, "invited")
}

func (c *teamController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var form dto.MemberUpdateForm
	if err := ctx.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed form")
	}
	modal := &view.Modal{
		Name:   "edit",
		Target: id,
		Action: ctx.Path(),
		Values: map[string]string{"role": form.Role, "status": form.Status},
	}

	if err := serverutils.ValidateRequest(form); err != nil {
		return c.failed(ctx, err, modal)
	}
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	if err := c.service.Update(ctx.UserContext(), p, id, form); err != nil {
		return c.failed(ctx, err, modal)
	}
	return backTo(ctx, navigation.RouteTeam, "updated")
}

func (c *teamController) Remove(ctx *fiber.Ctx) error {
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	if err := c.service.Remove(ctx.UserContext(), p, ctx.Params("id")); err != nil {
		return c.failed(ctx, err, nil)
	}
	return backTo(ctx, navigation.RouteTeam, "removed")
}
