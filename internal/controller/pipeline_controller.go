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

type IPipelineController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Decide(ctx *fiber.Ctx) error
}

type pipelineController struct {
	dashboard
	service service.IPipelineService
}

func NewPipelineController(auth service.IAuthService, service service.IPipelineService, log logger.ILogger) IPipelineController {
	return &pipelineController{
		dashboard: dashboard{auth: auth, log: log},
		service:   service,
	}
}

func (c *pipelineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pipeline")
	h.Get("", c.Index)
	h.Post("/:interviewId/decision", c.Decide)
}

// board filters every stage with the same criteria. Stages are never paged.
func board(stages []dto.Stage, criteria listview.Criteria) view.Board {
	b := view.Board{Search: criteria.Search}
	var all []dto.Record
	for _, s := range stages {
		all = append(all, s.Candidates...)
		kept := listview.Apply(s.Candidates, service.PipelineCandidateSpec, criteria)
		col := view.StageColumn{ID: s.ID, Name: s.Name, Candidates: make([]view.InterviewRow, 0, len(kept))}
		for _, r := range kept {
			col.Candidates = append(col.Candidates, interviewRow(r))
		}
		b.Stages = append(b.Stages, col)
		b.Total += len(s.Candidates)
		b.Filtered += len(kept)
	}
	b.Filters = []view.FilterControl{
		view.FilterFrom("decision", "Decision", all, service.Decision, criteria.Filters["decision"], "advance", "hold", "reject", "hire"),
	}
	return b
}

func (c *pipelineController) render(ctx *fiber.Ctx, status int, modal *view.Modal, banner *view.Banner) error {
	p, err := c.principal(ctx)
	if err != nil {
		return err
	}
	shell := c.shell(ctx, "Pipeline", service.CollectionPipeline)
	if banner != nil {
		shell.Banner = banner
	}

	stages, err := c.service.Board(ctx.UserContext(), p)
	if err != nil {
		c.fetchFailed(&shell, service.CollectionPipeline, err)
		stages = nil
	}

	q := currentQuery(ctx)
	b := board(stages, criteriaFrom(q, service.PipelineCandidateSpec))
	if modal == nil && ctx.Method() == fiber.MethodGet {
		if name, target := view.ParseModal(q.Get("modal")); name == "decide" && target != "" {
			modal = &view.Modal{
				Name:   name,
				Target: target,
				Action: fmt.Sprintf("%s/%s/decision", navigation.RoutePipeline, url.PathEscape(target)),
			}
		}
	}
	b.Modal = modal

	ctx.Status(status)
	return renderDashboard(ctx, "pipeline", view.NewPage(shell, b))
}

func (c *pipelineController) Index(ctx *fiber.Ctx) error {
	return c.render(ctx, fiber.StatusOK, nil, nil)
}

func (c *pipelineController) Decide(ctx *fiber.Ctx) error {
	id := ctx.Params("interviewId")
	var form dto.DecisionForm
	if err := ctx.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed form")
	}
	modal := &view.Modal{
		Name:   "decide",
		Target: id,
		Action: ctx.Path(),
		Values: map[string]string{"decision": form.Decision, "feedback": form.Feedback},
	}

	err := serverutils.ValidateRequest(form)
	if err == nil {
		var p service.Principal
		if p, err = c.principal(ctx); err != nil {
			return err
		}
		err = c.service.Decide(ctx.UserContext(), p, id, form)
	}
	if err != nil {
		c.log.Info("PipelineController", "decision failed", map[string]interface{}{"interview_id": id, "error": err.Error()})
		modal.Errors = fieldErrors(err)
		return c.render(ctx, failureStatus(err), modal, view.ErrorBanner(failureMessage(err)))
	}
	return backTo(ctx, navigation.RoutePipeline, "decided")
}
