package upstream

import (
	"context"
	"net/http"
	"net/url"

	"recruai-web/internal/dto"
)

func teamPath(orgID string) string {
	return "/api/organizations/" + url.PathEscape(orgID) + "/team-members"
}

func (c *Client) ListTeamMembers(ctx context.Context, token, orgID string) ([]dto.Record, error) {
	return c.list(ctx, "team.list", teamPath(orgID), token, "teamMembers", "team_members", "members")
}

func (c *Client) InviteMember(ctx context.Context, token, orgID string, payload map[string]interface{}) error {
	path := "/api/organizations/" + url.PathEscape(orgID) + "/invite"
	return c.do(ctx, "team.invite", http.MethodPost, path, token, payload, nil)
}

func (c *Client) UpdateMember(ctx context.Context, token, orgID, memberID string, payload map[string]interface{}) error {
	return c.do(ctx, "team.update", http.MethodPut, teamPath(orgID)+"/"+url.PathEscape(memberID), token, payload, nil)
}

func (c *Client) RemoveMember(ctx context.Context, token, orgID, memberID string) error {
	return c.do(ctx, "team.remove", http.MethodDelete, teamPath(orgID)+"/"+url.PathEscape(memberID), token, nil, nil)
}
