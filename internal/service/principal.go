package service

import (
	"errors"

	"recruai-web/internal/dto"
	"recruai-web/internal/session"
)

// ErrNoOrganization means the signed-in user has no organization to scope
// org-level calls to.
var ErrNoOrganization = errors.New("service: no organization for this account")

// Principal is who a dashboard request acts as: the verified user plus the
// token to forward upstream.
type Principal struct {
	Token string
	User  *dto.CurrentUser
	Role  session.Role
	Plan  session.Plan
}

// OrganizationID resolves the organization org-scoped endpoints need. An
// organization account without an explicit organization id is its own
// organization.
func (p Principal) OrganizationID() (string, error) {
	if p.User == nil {
		return "", ErrNoOrganization
	}
	if id := p.User.OrganizationID.String(); id != "" {
		return id, nil
	}
	if p.Role == session.RoleOrganization && p.User.ID != "" {
		return p.User.ID.String(), nil
	}
	return "", ErrNoOrganization
}

// Scope is the live-refresh channel this principal listens on.
func (p Principal) Scope() string {
	if id, err := p.OrganizationID(); err == nil && p.Role == session.RoleOrganization {
		return "org:" + id
	}
	if p.User != nil && p.User.ID != "" {
		return "user:" + p.User.ID.String()
	}
	return ""
}
