package controller

import (
	"fmt"
	"net/url"
	"strings"

	"recruai-web/internal/dto"
	"recruai-web/internal/listview"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/service"
	"recruai-web/internal/view"

	"github.com/gofiber/fiber/v2"
)

const interviewsPath = "/dashboard/interviews"

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	BulkDelete(ctx *fiber.Ctx) error
	AssignAgent(ctx *fiber.Ctx) error
}

type interviewController struct {
	dashboard
	service service.IInterviewService
}

func NewInterviewController(auth service.IAuthService, service service.IInterviewService, log logger.ILogger) IInterviewController {
	return &interviewController{
		dashboard: dashboard{auth: auth, log: log},
		service:   service,
	}
}

// RegisterRoutes expects r to be the guarded /dashboard group.
func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interviews")
	h.Get("", c.Index)
	h.Post("", c.Schedule)
	h.Post("/bulk-delete", c.BulkDelete)
	h.Post("/:id", c.Update)
	h.Post("/:id/cancel", c.Cancel)
	h.Post("/:id/delete", c.Delete)
	h.Post("/:id/assign-agent", c.AssignAgent)
}

func interviewRow(r dto.Record) view.InterviewRow {
	return view.InterviewRow{
		ID:          r.ID(),
		Candidate:   service.CandidateName(r),
		Email:       service.CandidateEmail(r),
		Position:    service.Position(r),
		Type:        service.InterviewType(r),
		Status:      service.Status(r),
		ScheduledAt: service.ScheduledAt(r),
		Agent:       service.AgentName(r),
		Decision:    service.Decision(r),
		Score:       service.Score(r),
	}
}

func interviewFormValues(f dto.InterviewForm) map[string]string {
	return map[string]string{
		"candidate_name":  f.CandidateName,
		"candidate_email": f.CandidateEmail,
		"position":        f.Position,
		"type":            f.Type,
		"scheduled_at":    f.ScheduledAt,
		"notes":           f.Notes,
	}
}

func interviewRecordValues(r dto.Record) map[string]string {
	scheduled := service.ScheduledAt(r)
	if len(scheduled) > 16 {
		scheduled = scheduled[:16] // datetime-local wants "2006-01-02T15:04"
	}
	return map[string]string{
		"candidate_name":  service.CandidateName(r),
		"candidate_email": service.CandidateEmail(r),
		"position":        service.Position(r),
		"type":            strings.ToLower(service.InterviewType(r)),
		"scheduled_at":    scheduled,
		"notes":           r.Text("notes"),
		"agent_id":        r.Text("agentId", "agent_id", "agent.id"),
	}
}

// modalFor opens the dialog named by the "modal" query value on a GET.
func modalFor(q url.Values, records []dto.Record) *view.Modal {
	name, target := view.ParseModal(q.Get("modal"))
	if name == "" {
		return nil
	}
	if name == "schedule" {
		return &view.Modal{Name: name, Action: interviewsPath, Values: map[string]string{"type": "technical"}}
	}

	for _, r := range records {
		if r.ID() != target {
			continue
		}
		m := &view.Modal{Name: name, Target: target, Values: interviewRecordValues(r)}
		switch name {
		case "edit":
			m.Action = fmt.Sprintf("%s/%s", interviewsPath, url.PathEscape(target))
		case "assign":
			m.Action = fmt.Sprintf("%s/%s/assign-agent", interviewsPath, url.PathEscape(target))
		case "cancel":
			m.Action = fmt.Sprintf("%s/%s/cancel", interviewsPath, url.PathEscape(target))
		default:
			return nil
		}
		return m
	}
	return nil
}

// render fetches the collection and renders the list. A non-nil modal comes
// from a failed submission and stays open with what the user typed.
func (c *interviewController) render(ctx *fiber.Ctx, status int, modal *view.Modal, banner *view.Banner) error {
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}

	shell := c.shell(ctx, "Interviews", service.CollectionInterviews)
	if banner != nil {
		shell.Banner = banner
	}

	records, err := c.service.List(ctx.UserContext(), p)
	if err != nil {
		c.fetchFailed(&shell, service.CollectionInterviews, err)
		records = nil
	}

	q := currentQuery(ctx)
	st := listState(service.InterviewListSpec, records, q)
	if modal == nil && ctx.Method() == fiber.MethodGet {
		modal = modalFor(q, records)
	}

	criteria := st.Criteria()
	content := view.List[view.InterviewRow]{
		BasePath: interviewsPath,
		Page:     listview.MapPage(st.Current(), interviewRow),
		Criteria: criteria,
		Filters: []view.FilterControl{
			view.FilterFrom("status", "Status", records, service.Status, criteria.Filters["status"], "scheduled", "completed", "cancelled"),
			view.FilterFrom("type", "Type", records, service.InterviewType, criteria.Filters["type"], "technical", "behavioral", "hr", "screening"),
		},
		RawCount: len(records),
		Modal:    modal,
	}

	ctx.Status(status)
	return renderDashboard(ctx, "interviews", view.NewPage(shell, content))
}

func (c *interviewController) failed(ctx *fiber.Ctx, err error, modal *view.Modal) error {
	c.log.Info("InterviewController", "mutation failed", map[string]interface{}{"path": ctx.Path(), "error": err.Error()})
	if modal != nil {
		modal.Errors = fieldErrors(err)
	}
	return c.render(ctx, failureStatus(err), modal, view.ErrorBanner(failureMessage(err)))
}

func (c *interviewController) Index(ctx *fiber.Ctx) error {
	return c.render(ctx, fiber.StatusOK, nil, nil)
}

func (c *interviewController) Schedule(ctx *fiber.Ctx) error {
	var form dto.InterviewForm
	if err := ctx.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed form")
	}
	modal := &view.Modal{Name: "schedule", Action: interviewsPath, Values: interviewFormValues(form)}

	if err := serverutils.ValidateRequest(form); err != nil {
		return c.failed(ctx, err, modal)
	}
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	if err := c.service.Schedule(ctx.UserContext(), p, form); err != nil {
		return c.failed(ctx, err, modal)
	}
	return backTo(ctx, interviewsPath, "scheduled")
}

func (c *interviewController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var form dto.InterviewForm
	if err := ctx.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed form")
	}
	modal := &view.Modal{Name: "edit", Target: id, Action: ctx.Path(), Values: interviewFormValues(form)}

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
	return backTo(ctx, interviewsPath, "updated")
}

// Cancel keeps its confirmation dialog open on failure so the user can retry.
func (c *interviewController) Cancel(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	if err := c.service.Cancel(ctx.UserContext(), p, id); err != nil {
		return c.failed(ctx, err, &view.Modal{Name: "cancel", Target: id, Action: ctx.Path()})
	}
	return backTo(ctx, interviewsPath, "cancelled")
}

func (c *interviewController) Delete(ctx *fiber.Ctx) error {
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), p, ctx.Params("id")); err != nil {
		return c.failed(ctx, err, nil)
	}
	return backTo(ctx, interviewsPath, "deleted")
}

func (c *interviewController) BulkDelete(ctx *fiber.Ctx) error {
	var form dto.BulkDeleteForm
	for _, id := range ctx.Request().PostArgs().PeekMulti("ids") {
		form.IDs = append(form.IDs, string(id))
	}
	if len(form.IDs) == 0 {
		return c.render(ctx, fiber.StatusUnprocessableEntity, nil, view.ErrorBanner("Select at least one interview to delete."))
	}

	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	deleted, err := c.service.BulkDelete(ctx.UserContext(), p, form.IDs)
	if err != nil {
		banner := view.ErrorBanner(
			fmt.Sprintf("Deleted %d of %d interviews.", deleted, len(form.IDs)),
			failureMessage(err),
		)
		return c.render(ctx, failureStatus(err), nil, banner)
	}
	return backTo(ctx, interviewsPath, "deleted")
}

func (c *interviewController) AssignAgent(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var form dto.AssignAgentForm
	if err := ctx.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed form")
	}
	modal := &view.Modal{Name: "assign", Target: id, Action: ctx.Path(), Values: map[string]string{"agent_id": form.AgentID}}

	if err := serverutils.ValidateRequest(form); err != nil {
		return c.failed(ctx, err, modal)
	}
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	if err := c.service.AssignAgent(ctx.UserContext(), p, id, form); err != nil {
		return c.failed(ctx, err, modal)
	}
	return backTo(ctx, interviewsPath, "agent_assigned")
}
