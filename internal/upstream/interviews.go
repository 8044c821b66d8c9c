package upstream

import (
	"context"
	"net/http"
	"net/url"

	"recruai-web/internal/dto"
)

func interviewPath(id string) string {
	return "/api/interviews/" + url.PathEscape(id)
}

func (c *Client) ListInterviews(ctx context.Context, token string) ([]dto.Record, error) {
	return c.list(ctx, "interviews.list", "/api/interviews", token, "interviews")
}

func (c *Client) CreateInterview(ctx context.Context, token string, payload map[string]interface{}) error {
	return c.do(ctx, "interviews.create", http.MethodPost, "/api/interviews", token, payload, nil)
}

func (c *Client) UpdateInterview(ctx context.Context, token, id string, payload map[string]interface{}) error {
	return c.do(ctx, "interviews.update", http.MethodPut, interviewPath(id), token, payload, nil)
}

func (c *Client) DeleteInterview(ctx context.Context, token, id string) error {
	return c.do(ctx, "interviews.delete", http.MethodDelete, interviewPath(id), token, nil, nil)
}

func (c *Client) AssignAgent(ctx context.Context, token, id string, payload map[string]interface{}) error {
	return c.do(ctx, "interviews.assign_agent", http.MethodPost, interviewPath(id)+"/assign-agent", token, payload, nil)
}
