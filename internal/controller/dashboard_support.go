package controller

import (
	"errors"
	"net/url"
	"strconv"

	"recruai-web/internal/auth"
	"recruai-web/internal/dto"
	"recruai-web/internal/listview"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/service"
	"recruai-web/internal/upstream"
	"recruai-web/internal/view"

	"github.com/gofiber/fiber/v2"
)

// notices are the success banners shown after a mutation redirects back.
var notices = map[string]string{
	"scheduled":      "Interview scheduled.",
	"updated":        "Changes saved.",
	"cancelled":      "Interview cancelled.",
	"deleted":        "Deleted.",
	"agent_assigned": "AI agent assigned.",
	"invited":        "Invitation sent.",
	"removed":        "Team member removed.",
	"decided":        "Decision recorded.",
}

// dashboard is shared by every controller behind the guard.
type dashboard struct {
	auth service.IAuthService
	log  logger.ILogger
}

func (d dashboard) principal(c *fiber.Ctx) (service.Principal, error) {
	return d.auth.Principal(c.UserContext(), auth.SessionID(c), auth.StateFrom(c))
}

func (d dashboard) shell(c *fiber.Ctx, title, refreshOn string) view.Shell {
	s := view.NewShell(auth.StateFrom(c), c.Path(), title)
	s.RefreshOn = refreshOn
	if msg, ok := notices[c.Query("notice")]; ok {
		s.Banner = view.SuccessBanner(msg)
	}
	return s
}

// fetchFailed logs a collection fetch error and puts it in the shell's banner
// unless a mutation banner is already there.
func (d dashboard) fetchFailed(s *view.Shell, collection string, err error) {
	d.log.Warn("Dashboard", "collection fetch failed", map[string]interface{}{
		"collection": collection,
		"status":     upstream.StatusOf(err),
		"error":      err.Error(),
	})
	msg := failureMessage(err)
	if s.Banner != nil && s.Banner.Kind == view.BannerError {
		s.Banner.Details = append(s.Banner.Details, msg)
		return
	}
	s.Banner = view.ErrorBanner(msg + " Reload the page to try again.")
}

func renderDashboard(c *fiber.Ctx, name string, data interface{}) error {
	return c.Render("dashboard/"+name, data, view.LayoutDashboard)
}

// currentQuery is the list state a request carries: the URL query for GETs,
// the form's "return" field for POSTs.
func currentQuery(c *fiber.Ctx) url.Values {
	raw := string(c.Request().URI().QueryString())
	if c.Method() == fiber.MethodPost {
		raw = c.FormValue("return")
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return url.Values{}
	}
	return q
}

func criteriaFrom[T any](q url.Values, spec listview.Spec[T]) listview.Criteria {
	c := listview.Criteria{Search: q.Get("q"), Filters: map[string]string{}}
	for _, name := range spec.FilterNames() {
		if v := q.Get(name); v != "" {
			c.Filters[name] = v
		}
	}
	return c
}

func pageFrom(q url.Values) int {
	n, err := strconv.Atoi(q.Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// listState derives the visible list from a fresh fetch. Criteria are applied
// before the page, so a changed filter always lands on page 1.
func listState(spec listview.Spec[dto.Record], raw []dto.Record, q url.Values) *listview.State[dto.Record] {
	st := listview.NewState(spec, listview.DefaultPageSize)
	st.Replace(raw)
	st.SetCriteria(criteriaFrom(q, spec))
	st.SetPage(pageFrom(q))
	return st
}

// backTo redirects (303) to base with the list state the form came from, so
// the next GET re-fetches the whole collection.
func backTo(c *fiber.Ctx, base, notice string) error {
	q := currentQuery(c)
	q.Del("modal")
	q.Del("notice")
	if notice != "" {
		q.Set("notice", notice)
	}
	target := base
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

func failureMessage(err error) string {
	var ve *serverutils.ValidationError
	switch {
	case errors.As(err, &ve):
		return "Please fix the highlighted fields."
	case errors.Is(err, service.ErrNoOrganization):
		return "Your account is not linked to an organization."
	default:
		return upstream.UserMessage(err)
	}
}

func fieldErrors(err error) map[string]string {
	var ve *serverutils.ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// failureStatus is the status of a page re-rendered after a failed mutation.
func failureStatus(err error) int {
	var ve *serverutils.ValidationError
	switch {
	case errors.As(err, &ve):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNoOrganization):
		return fiber.StatusForbidden
	}
	if s := upstream.StatusOf(err); s >= 400 && s < 500 {
		return s
	}
	return fiber.StatusBadGateway
}
