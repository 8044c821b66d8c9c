package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"recruai-web/internal/auth"
	"recruai-web/internal/config"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/repository/memory"
	"recruai-web/internal/service"
	"recruai-web/internal/session"
	"recruai-web/internal/upstream"
	"recruai-web/internal/view"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "recruai_sid"

// fakeBackend is an in-memory REST backend with a call log.
type fakeBackend struct {
	mu           sync.Mutex
	plan         string
	interviews   []map[string]interface{}
	members      []map[string]interface{}
	stages       []map[string]interface{}
	failCancel   map[string]bool
	failMember   map[string]bool
	failDecision map[string]bool
	calls        []string
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		plan:         "pro",
		failCancel:   map[string]bool{},
		failMember:   map[string]bool{},
		failDecision: map[string]bool{},
	}
	for i, role := range []string{"admin", "recruiter", "recruiter", "viewer"} {
		b.members = append(b.members, map[string]interface{}{
			"id":     fmt.Sprintf("m-%d", i),
			"name":   fmt.Sprintf("Member %d", i),
			"email":  fmt.Sprintf("m%d@acme.test", i),
			"role":   role,
			"status": "active",
		})
	}
	b.stages = []map[string]interface{}{
		{"id": "s-screen", "name": "Screening", "candidates": []interface{}{
			map[string]interface{}{"id": "iv-1", "candidateName": "Candidate 1", "position": "Backend Engineer", "decision": "hold"},
			map[string]interface{}{"id": "iv-2", "candidateName": "Candidate 2", "position": "Data Engineer", "decision": "advance"},
		}},
		{"id": "s-offer", "name": "Offer", "candidates": []interface{}{
			map[string]interface{}{"id": "iv-3", "candidateName": "Candidate 3", "position": "Backend Engineer", "decision": "hire"},
		}},
	}
	for i := 0; i < 23; i++ {
		status := "scheduled"
		if i%6 == 0 {
			status = "cancelled"
		}
		b.interviews = append(b.interviews, map[string]interface{}{
			"id":             fmt.Sprintf("iv-%d", i),
			"candidateName":  fmt.Sprintf("Candidate %d", i),
			"candidateEmail": fmt.Sprintf("c%d@example.com", i),
			"position":       "Backend Engineer",
			"type":           "technical",
			"status":         status,
			"scheduledAt":    "2026-11-02T10:00:00Z",
		})
	}
	return b
}

func (b *fakeBackend) count(call string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (b *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "tok"})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "expired"})
			return
		}
		b.mu.Lock()
		plan := b.plan
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{"user": map[string]interface{}{
			"id": "u-1", "name": "Acme Hiring", "role": "organization", "plan": plan, "organization_id": "org-1",
		}})
	})
	mux.HandleFunc("GET /api/interviews", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, "list")
		body := map[string]interface{}{"interviews": b.interviews}
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, body)
	})
	mux.HandleFunc("POST /api/interviews", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, "create")
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]string{"id": "iv-new"})
	})
	mux.HandleFunc("PUT /api/interviews/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.calls = append(b.calls, "update:"+id)
		if b.failCancel[id] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for _, iv := range b.interviews {
			if iv["id"] == id {
				for k, v := range payload {
					iv[k] = v
				}
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/organizations/{org}/analytics", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, "analytics")
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{"totalInterviews": 23, "hireRate": 0.25})
	})
	mux.HandleFunc("GET /api/organizations/{org}/team-members", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, "team")
		body := map[string]interface{}{"teamMembers": b.members}
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, body)
	})
	mux.HandleFunc("POST /api/organizations/{org}/invite", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.calls = append(b.calls, "invite")
		for _, m := range b.members {
			if m["email"] == payload["email"] {
				writeJSON(w, http.StatusConflict, map[string]string{"message": "already a member"})
				return
			}
		}
		payload["id"] = fmt.Sprintf("m-%d", len(b.members))
		payload["status"] = "invited"
		b.members = append(b.members, payload)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("PUT /api/organizations/{org}/team-members/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.calls = append(b.calls, "member:update:"+id)
		if b.failMember[id] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for _, m := range b.members {
			if m["id"] == id {
				for k, v := range payload {
					m[k] = v
				}
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /api/organizations/{org}/team-members/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		b.mu.Lock()
		defer b.mu.Unlock()
		b.calls = append(b.calls, "member:remove:"+id)
		kept := b.members[:0]
		for _, m := range b.members {
			if m["id"] != id {
				kept = append(kept, m)
			}
		}
		b.members = kept
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/pipeline/{org}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, "pipeline")
		body := map[string]interface{}{"stages": b.stages}
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, body)
	})
	mux.HandleFunc("POST /api/organizations/{org}/interviews/{id}/decision", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.calls = append(b.calls, "decision:"+id)
		if b.failDecision[id] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for _, stage := range b.stages {
			for _, c := range stage["candidates"].([]interface{}) {
				if cand := c.(map[string]interface{}); cand["id"] == id {
					cand["decision"] = payload["decision"]
				}
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/organizations", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, "organizations")
		b.mu.Unlock()
		orgs := make([]map[string]interface{}, 0, 12)
		for i := 0; i < 12; i++ {
			industry := "fintech"
			if i%2 == 1 {
				industry = "health"
			}
			orgs = append(orgs, map[string]interface{}{
				"id": i, "name": fmt.Sprintf("Org %02d", i), "industry": industry, "location": "Jakarta", "size": "51-200",
			})
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": map[string]interface{}{"organizations": orgs}})
	})
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, "users")
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, []map[string]interface{}{
			{"id": "u-10", "name": "Ada Lovelace", "email": "ada@example.com", "role": "individual", "status": "active"},
			{"id": "u-11", "name": "Grace Hopper", "email": "grace@example.com", "role": "individual", "status": "active"},
			{"id": "u-12", "name": "Alan Turing", "email": "alan@example.com", "role": "individual", "status": "inactive"},
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected backend call %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})
	return mux
}

type harness struct {
	app     *fiber.App
	store   *session.MemoryStore
	backend *fakeBackend
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logger.NewNopLogger()
	b := newFakeBackend()
	srv := httptest.NewServer(b.handler(t))
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore(time.Hour)
	api := upstream.NewClient(srv.URL, 2*time.Second)
	verifier := auth.NewVerifier(api, store, log)
	guard := auth.NewGuard(verifier, "/signin", log)

	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = bus.Close() })
	refresh := service.NewRefreshPublisher(bus, log)

	authSvc := service.NewAuthService(api, verifier, store, service.NewNoopPublisher(), log)
	interviews := service.NewInterviewService(api, refresh, log)
	organizations := service.NewOrganizationService(api)
	waitlist := service.NewWaitlistService(memory.NewWaitlistRepository(), nil, service.NewNoopPublisher(), log)

	app := fiber.New(fiber.Config{Views: view.NewEngine(false)})
	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use(auth.SessionCookie(config.SessionConfig{CookieName: cookieName, TTL: time.Hour, SignInPath: "/signin"}))

	NewMarketingController(waitlist, guard, nil, log).RegisterRoutes(app)
	NewAuthController(authSvc, guard, nil, log).RegisterRoutes(app)
	NewSessionController(guard).RegisterRoutes(app.Group("/api"))
	dash := app.Group("/dashboard", guard.Protect())
	NewDashboardController(authSvc, interviews, organizations, log).RegisterRoutes(dash)
	NewInterviewController(authSvc, interviews, log).RegisterRoutes(dash)
	NewOrganizationController(authSvc, organizations, log).RegisterRoutes(dash)
	NewTeamController(authSvc, service.NewTeamService(api, refresh), log).RegisterRoutes(dash)
	NewPipelineController(authSvc, service.NewPipelineService(api, refresh), log).RegisterRoutes(dash)

	return &harness{app: app, store: store, backend: b}
}

// signedIn seeds a session holding a valid token and returns its id.
func (h *harness) signedIn(t *testing.T) string {
	t.Helper()
	sid := uuid.NewString()
	require.NoError(t, h.store.Set(context.Background(), sid, session.KeyAccessToken, "tok"))
	return sid
}

func (h *harness) do(t *testing.T, req *http.Request, sid string) (*http.Response, string) {
	t.Helper()
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: sid})
	}
	res, err := h.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func get(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func post(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func rows(body string) int {
	return strings.Count(body, `name="ids"`)
}

func TestDashboardRedirectsAnonymousVisitor(t *testing.T) {
	h := newHarness(t)

	res, _ := h.do(t, get("/dashboard/interviews?status=scheduled"), "")

	assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/signin?next=%2Fdashboard%2Finterviews%3Fstatus%3Dscheduled", res.Header.Get("Location"))
	assert.Equal(t, 0, h.backend.count("list"))
}

func TestDashboardRedirectsWhenTokenRejected(t *testing.T) {
	h := newHarness(t)
	sid := uuid.NewString()
	require.NoError(t, h.store.Set(context.Background(), sid, session.KeyAccessToken, "stale"))
	require.NoError(t, h.store.Set(context.Background(), sid, session.KeyIsAuthenticated, session.AuthenticatedValue))

	res, _ := h.do(t, get("/dashboard"), sid)

	assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	snap, err := session.Snapshot(context.Background(), h.store, sid)
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestInterviewsFilterAndPage(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	res, body := h.do(t, get("/dashboard/interviews"), sid)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, 10, rows(body))

	_, body = h.do(t, get("/dashboard/interviews?page=3"), sid)
	assert.Equal(t, 3, rows(body))

	_, body = h.do(t, get("/dashboard/interviews?status=cancelled&page=3"), sid)
	assert.Equal(t, 4, rows(body), "filtered list has a single page")

	_, body = h.do(t, get("/dashboard/interviews?q=CANDIDATE+1"), sid)
	assert.Equal(t, 10, rows(body), "1 and 10-19 match; first page holds 10")
}

func TestCancelRedirectsAndRefetches(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)
	before := h.backend.count("list")

	res, _ := h.do(t, post("/dashboard/interviews/iv-1/cancel", url.Values{"return": {"status=scheduled&page=2"}}), sid)

	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	location := res.Header.Get("Location")
	assert.Equal(t, "/dashboard/interviews?notice=cancelled&page=2&status=scheduled", location)
	assert.Equal(t, 1, h.backend.count("update:iv-1"))
	assert.Equal(t, before, h.backend.count("list"), "no fetch before the redirect")

	res, body := h.do(t, get(location), sid)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, before+1, h.backend.count("list"))
	assert.Contains(t, body, "Interview cancelled.")

	_, body = h.do(t, get("/dashboard/interviews?status=cancelled"), sid)
	assert.Contains(t, body, `value="iv-1"`)
	assert.Equal(t, 5, rows(body))
}

func TestCancelFailureKeepsDialogOpen(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)
	h.backend.failCancel["iv-2"] = true

	res, body := h.do(t, post("/dashboard/interviews/iv-2/cancel", url.Values{"return": {""}}), sid)

	assert.Equal(t, fiber.StatusBadGateway, res.StatusCode)
	assert.Contains(t, body, "<dialog open>")
	assert.Contains(t, body, "/dashboard/interviews/iv-2/cancel")
	assert.Contains(t, body, `class="banner error"`)
}

func TestScheduleValidationKeepsInput(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	form := url.Values{
		"candidate_email": {"not-an-email"},
		"position":        {"Data Engineer"},
		"type":            {"technical"},
		"scheduled_at":    {"2026-11-02T10:00"},
	}
	res, body := h.do(t, post("/dashboard/interviews", form), sid)

	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, body, "<dialog open>")
	assert.Contains(t, body, "must be a valid email address")
	assert.Contains(t, body, `value="Data Engineer"`)
	assert.Equal(t, 0, h.backend.count("create"))
}

func TestOpenModalFromQuery(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	_, body := h.do(t, get("/dashboard/interviews?modal=edit:iv-3"), sid)

	assert.Contains(t, body, "Edit interview")
	assert.Contains(t, body, `value="c3@example.com"`)
	assert.Contains(t, body, `value="2026-11-02T10:00"`)
}

func TestSignInStoresTokenAndRedirects(t *testing.T) {
	h := newHarness(t)
	sid := uuid.NewString()

	res, _ := h.do(t, post("/signin", url.Values{
		"email": {"hr@acme.test"}, "password": {"secret"}, "next": {"/dashboard/interviews"},
	}), sid)

	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/dashboard/interviews", res.Header.Get("Location"))
	snap, err := session.Snapshot(context.Background(), h.store, sid)
	require.NoError(t, err)
	assert.Equal(t, "tok", snap[session.KeyAccessToken])
	assert.Equal(t, "organization", snap[session.KeyAuthRole])
}

func TestSignInRejectsBadPasswordAndOffsiteNext(t *testing.T) {
	h := newHarness(t)
	sid := uuid.NewString()

	res, body := h.do(t, post("/signin", url.Values{
		"email": {"hr@acme.test"}, "password": {"wrong"}, "next": {"//evil.test"},
	}), sid)

	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Invalid email or password.")
	assert.Contains(t, body, `value="/dashboard"`)
}

func TestSignOutClearsSession(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	res, _ := h.do(t, post("/signout", nil), sid)

	assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))
	snap, err := session.Snapshot(context.Background(), h.store, sid)
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestSessionEndpointNeverRedirects(t *testing.T) {
	h := newHarness(t)

	res, body := h.do(t, get("/api/session"), "")
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"authenticated":false`)

	_, body = h.do(t, get("/api/session"), h.signedIn(t))
	assert.Contains(t, body, `"authenticated":true`)
	assert.Contains(t, body, `"role":"organization"`)
}

func TestAnalyticsGatedByPlan(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	_, body := h.do(t, get("/dashboard/analytics"), sid)
	assert.Contains(t, body, "Total Interviews")
	assert.Equal(t, 1, h.backend.count("analytics"))

	h.backend.mu.Lock()
	h.backend.plan = "trial"
	h.backend.mu.Unlock()

	_, body = h.do(t, get("/dashboard/analytics"), sid)
	assert.Contains(t, body, "Upgrade")
	assert.Equal(t, 1, h.backend.count("analytics"))
}

func TestWaitlistJoinAndDuplicate(t *testing.T) {
	h := newHarness(t)
	form := url.Values{"email": {"ada@example.com"}, "name": {"Ada"}, "role": {"organization"}}

	res, _ := h.do(t, post("/waitlist", form), "")
	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/?joined=1#waitlist", res.Header.Get("Location"))

	res, body := h.do(t, post("/waitlist", form), "")
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "is already on the waitlist")
}

func TestClearingSearchRestoresFullList(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	_, body := h.do(t, get("/dashboard/interviews?q=candidate+1"), sid)
	assert.Contains(t, body, "Showing 1–10 of 11 (filtered from 23)")

	_, body = h.do(t, get("/dashboard/interviews?q="), sid)
	assert.Contains(t, body, "Showing 1–10 of 23")
	assert.NotContains(t, body, "filtered from")
}

func TestTeamInviteRedirectsAndRefetches(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)
	before := h.backend.count("team")

	res, _ := h.do(t, post("/dashboard/team/invite", url.Values{
		"email": {"new@acme.test"}, "name": {"New Hire"}, "role": {"recruiter"}, "return": {"role=recruiter"},
	}), sid)

	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	location := res.Header.Get("Location")
	assert.Equal(t, "/dashboard/team?notice=invited&role=recruiter", location)
	assert.Equal(t, 1, h.backend.count("invite"))
	assert.Equal(t, before, h.backend.count("team"), "no fetch before the redirect")

	res, body := h.do(t, get(location), sid)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, before+1, h.backend.count("team"))
	assert.Contains(t, body, "Invitation sent.")
	assert.Contains(t, body, "new@acme.test")
}

func TestTeamInviteRejectedKeepsDialogOpen(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	res, body := h.do(t, post("/dashboard/team/invite", url.Values{
		"email": {"m1@acme.test"}, "role": {"viewer"},
	}), sid)

	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "<dialog open>")
	assert.Contains(t, body, "Invite a team member")
	assert.Contains(t, body, `value="m1@acme.test"`)
	assert.Contains(t, body, `class="banner error"`)

	res, body = h.do(t, post("/dashboard/team/invite", url.Values{
		"email": {"someone@acme.test"}, "role": {"owner"},
	}), sid)

	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, body, "<dialog open>")
	assert.Equal(t, 1, h.backend.count("invite"), "invalid form never reaches the backend")
}

func TestTeamUpdateFailureKeepsEditDialog(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)
	h.backend.failMember["m-2"] = true

	res, body := h.do(t, post("/dashboard/team/m-2", url.Values{
		"role": {"admin"}, "status": {"active"}, "return": {""},
	}), sid)

	assert.Equal(t, fiber.StatusBadGateway, res.StatusCode)
	assert.Equal(t, 1, h.backend.count("member:update:m-2"))
	assert.Contains(t, body, "<dialog open>")
	assert.Contains(t, body, "Edit member")
	assert.Contains(t, body, `action="/dashboard/team/m-2"`)
	assert.Contains(t, body, `<option value="admin" selected>`)
}

func TestTeamRemoveRedirectsAndRefetches(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	res, _ := h.do(t, post("/dashboard/team/m-3/delete", url.Values{"return": {"role=viewer"}}), sid)

	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	location := res.Header.Get("Location")
	assert.Equal(t, "/dashboard/team?notice=removed&role=viewer", location)
	assert.Equal(t, 1, h.backend.count("member:remove:m-3"))

	_, body := h.do(t, get(location), sid)
	assert.Contains(t, body, "Team member removed.")
	assert.Contains(t, body, "No team members match.")
}

func TestPipelineBoardFilters(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	res, body := h.do(t, get("/dashboard/pipeline"), sid)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, body, "3 of 3 candidates")
	assert.Contains(t, body, "Screening")
	assert.Contains(t, body, "Offer")

	_, body = h.do(t, get("/dashboard/pipeline?decision=hire"), sid)
	assert.Contains(t, body, "1 of 3 candidates")
	assert.Contains(t, body, "Candidate 3")
	assert.NotContains(t, body, "Candidate 1")

	_, body = h.do(t, get("/dashboard/pipeline?q=data"), sid)
	assert.Contains(t, body, "1 of 3 candidates")
	assert.Contains(t, body, "Candidate 2")
}

func TestPipelineDecisionRedirectsAndRefetches(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)
	before := h.backend.count("pipeline")

	res, _ := h.do(t, post("/dashboard/pipeline/iv-2/decision", url.Values{
		"decision": {"hire"}, "feedback": {"Strong systems design"},
	}), sid)

	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	location := res.Header.Get("Location")
	assert.Equal(t, "/dashboard/pipeline?notice=decided", location)
	assert.Equal(t, 1, h.backend.count("decision:iv-2"))
	assert.Equal(t, before, h.backend.count("pipeline"))

	_, body := h.do(t, get(location), sid)
	assert.Equal(t, before+1, h.backend.count("pipeline"))
	assert.Contains(t, body, "Decision recorded.")

	_, body = h.do(t, get("/dashboard/pipeline?decision=hire"), sid)
	assert.Contains(t, body, "2 of 3 candidates")
}

func TestPipelineDecisionFailureKeepsDialogOpen(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)
	h.backend.failDecision["iv-1"] = true

	res, body := h.do(t, post("/dashboard/pipeline/iv-1/decision", url.Values{
		"decision": {"reject"}, "feedback": {"Needs work"},
	}), sid)

	assert.Equal(t, fiber.StatusBadGateway, res.StatusCode)
	assert.Contains(t, body, "<dialog open>")
	assert.Contains(t, body, "Record a decision")
	assert.Contains(t, body, `action="/dashboard/pipeline/iv-1/decision"`)
	assert.Contains(t, body, ">Needs work</textarea>")

	res, _ = h.do(t, post("/dashboard/pipeline/iv-1/decision", url.Values{"decision": {"maybe"}}), sid)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	assert.Equal(t, 1, h.backend.count("decision:iv-1"))
}

func TestDirectoriesRender(t *testing.T) {
	h := newHarness(t)
	sid := h.signedIn(t)

	res, body := h.do(t, get("/dashboard/organizations"), sid)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Org 00")
	assert.Contains(t, body, "Showing 1–10 of 12")

	_, body = h.do(t, get("/dashboard/organizations?industry=health"), sid)
	assert.Contains(t, body, "Showing 1–6 of 6 (filtered from 12)")
	assert.NotContains(t, body, "Org 00")

	res, body = h.do(t, get("/dashboard/candidates?status=active"), sid)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Grace Hopper")
	assert.NotContains(t, body, "Alan Turing")
	assert.Equal(t, 1, h.backend.count("users"))
}
