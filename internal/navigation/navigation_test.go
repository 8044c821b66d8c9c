package navigation

import (
	"testing"

	"recruai-web/internal/session"

	"github.com/stretchr/testify/assert"
)

func routes(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Route)
	}
	return out
}

func TestSidebarEntries(t *testing.T) {
	orgBase := []string{RouteOverview, RouteInterviews, RouteCandidates, RouteTeam, RoutePipeline}

	tests := []struct {
		name string
		role session.Role
		plan session.Plan
		want []string
	}{
		{"organization without plan", session.RoleOrganization, session.PlanUnknown, orgBase},
		{"organization pro", session.RoleOrganization, session.PlanPro, append(append([]string{}, orgBase...), RouteAnalytics)},
		{"organization enterprise", session.RoleOrganization, session.PlanEnterprise, append(append([]string{}, orgBase...), RouteAnalytics)},
		{"organization trial", session.RoleOrganization, session.PlanTrial, append(append([]string{}, orgBase...), RouteUpgrade)},
		{"individual", session.RoleIndividual, session.PlanPro, []string{RouteOverview, RouteInterviews, RouteOrganizations}},
		{"individual trial", session.RoleIndividual, session.PlanTrial, []string{RouteOverview, RouteInterviews, RouteOrganizations, RouteUpgrade}},
		{"unknown role", session.RoleUnknown, session.PlanPro, []string{RouteOverview}},
		{"unknown role and plan", session.RoleUnknown, session.PlanUnknown, []string{RouteOverview}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, routes(SidebarEntries(tt.role, tt.plan)))
			})
		})
	}
}

func TestSidebarEntriesFromRawStrings(t *testing.T) {
	// Values as they arrive from the backend or the store.
	got := SidebarEntries(session.ParseRole("organization"), session.ParsePlan(""))
	assert.Equal(t, []string{RouteOverview, RouteInterviews, RouteCandidates, RouteTeam, RoutePipeline}, routes(got))

	got = SidebarEntries(session.ParseRole("superuser"), session.ParsePlan("gold"))
	assert.Equal(t, routes(DefaultEntries()), routes(got))
}

func TestSidebarEntriesIsDeterministic(t *testing.T) {
	a := SidebarEntries(session.RoleOrganization, session.PlanPro)
	a[0].Label = "mutated"
	b := SidebarEntries(session.RoleOrganization, session.PlanPro)
	assert.Equal(t, "Overview", b[0].Label)
}

func TestMarkActive(t *testing.T) {
	entries := MarkActive(SidebarEntries(session.RoleOrganization, session.PlanPro), "/dashboard/team/42")
	for _, e := range entries {
		assert.Equal(t, e.Route == RouteTeam, e.Active, e.Route)
	}

	entries = MarkActive(SidebarEntries(session.RoleIndividual, session.PlanPro), "/dashboard")
	assert.True(t, entries[0].Active)
	assert.False(t, entries[1].Active)

	entries = MarkActive(SidebarEntries(session.RoleIndividual, session.PlanPro), "/dashboardx")
	for _, e := range entries {
		assert.False(t, e.Active)
	}
}

func TestNavbarFor(t *testing.T) {
	assert.Equal(t, NavbarOrganization, NavbarFor(session.RoleOrganization))
	assert.Equal(t, NavbarIndividual, NavbarFor(session.RoleIndividual))
	assert.Equal(t, NavbarIndividual, NavbarFor(session.RoleUnknown))
}
