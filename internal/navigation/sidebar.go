// Package navigation decides what the dashboard chrome shows for a role and
// plan. Everything here is pure.
package navigation

import (
	"strings"

	"recruai-web/internal/session"
)

type Entry struct {
	Label  string
	Route  string
	Icon   string
	Active bool
}

const (
	RouteOverview      = "/dashboard"
	RouteInterviews    = "/dashboard/interviews"
	RouteOrganizations = "/dashboard/organizations"
	RouteCandidates    = "/dashboard/candidates"
	RouteTeam          = "/dashboard/team"
	RoutePipeline      = "/dashboard/pipeline"
	RouteAnalytics     = "/dashboard/analytics"
	RouteUpgrade       = "/pricing"
)

var (
	overview      = Entry{Label: "Overview", Route: RouteOverview, Icon: "home"}
	interviews    = Entry{Label: "Interviews", Route: RouteInterviews, Icon: "calendar"}
	organizations = Entry{Label: "Organizations", Route: RouteOrganizations, Icon: "building"}
	candidates    = Entry{Label: "Candidates", Route: RouteCandidates, Icon: "users"}
	team          = Entry{Label: "Team", Route: RouteTeam, Icon: "user-plus"}
	pipeline      = Entry{Label: "Pipeline", Route: RoutePipeline, Icon: "columns"}
	analytics     = Entry{Label: "Analytics", Route: RouteAnalytics, Icon: "chart"}
	upgrade       = Entry{Label: "Upgrade", Route: RouteUpgrade, Icon: "star"}
)

// SidebarEntries returns a fresh slice on every call; callers may mutate it.
// An unknown role gets the minimal default set.
func SidebarEntries(role session.Role, plan session.Plan) []Entry {
	var entries []Entry
	switch role {
	case session.RoleIndividual:
		entries = []Entry{overview, interviews, organizations}
	case session.RoleOrganization:
		entries = []Entry{overview, interviews, candidates, team, pipeline}
		if plan == session.PlanPro || plan == session.PlanEnterprise {
			entries = append(entries, analytics)
		}
	default:
		return DefaultEntries()
	}

	if plan == session.PlanTrial {
		entries = append(entries, upgrade)
	}
	return entries
}

func DefaultEntries() []Entry {
	return []Entry{overview}
}

// MarkActive flags the entry owning path: the longest route that is path itself
// or a parent segment of it.
func MarkActive(entries []Entry, path string) []Entry {
	best := -1
	for i, e := range entries {
		if path == e.Route || strings.HasPrefix(path, e.Route+"/") {
			if best == -1 || len(e.Route) > len(entries[best].Route) {
				best = i
			}
		}
	}
	for i := range entries {
		entries[i].Active = i == best
	}
	return entries
}
