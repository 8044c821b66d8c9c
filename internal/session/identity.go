package session

import "strings"

// Role is the closed set of account kinds the dashboard branches on.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleIndividual
	RoleOrganization
)

func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "individual":
		return RoleIndividual
	case "organization", "organisation":
		return RoleOrganization
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleIndividual:
		return "individual"
	case RoleOrganization:
		return "organization"
	default:
		return "unknown"
	}
}

// Plan is the subscription tier. Unknown covers missing and unrecognised values.
type Plan uint8

const (
	PlanUnknown Plan = iota
	PlanTrial
	PlanPro
	PlanEnterprise
)

func ParsePlan(s string) Plan {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trial", "free":
		return PlanTrial
	case "pro":
		return PlanPro
	case "enterprise":
		return PlanEnterprise
	default:
		return PlanUnknown
	}
}

func (p Plan) String() string {
	switch p {
	case PlanTrial:
		return "trial"
	case PlanPro:
		return "pro"
	case PlanEnterprise:
		return "enterprise"
	default:
		return "unknown"
	}
}
