package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"recruai-web/internal/dto"
)

var wrapperKeys = []string{"data", "items", "results"}

// decodeCollection accepts a bare JSON array or an object holding the array
// under one of keys or a generic wrapper key. A wrapper holding another
// wrapper ({"data":{"interviews":[...]}}) is unwrapped once more.
func decodeCollection(raw json.RawMessage, keys ...string) ([]dto.Record, error) {
	var list []dto.Record
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			list = []dto.Record{}
		}
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("upstream: collection is neither array nor object: %w", err)
	}

	for _, k := range append(append([]string{}, keys...), wrapperKeys...) {
		inner, ok := obj[k]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &list); err == nil {
			if list == nil {
				list = []dto.Record{}
			}
			return list, nil
		}
		if k == "data" {
			return decodeCollection(inner, keys...)
		}
	}
	return []dto.Record{}, nil
}

func (c *Client) list(ctx context.Context, endpoint, path, token string, keys ...string) ([]dto.Record, error) {
	var raw json.RawMessage
	if err := c.do(ctx, endpoint, http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []dto.Record{}, nil
	}
	return decodeCollection(raw, keys...)
}

func (c *Client) ListOrganizations(ctx context.Context, token string) ([]dto.Record, error) {
	return c.list(ctx, "organizations.list", "/api/organizations", token, "organizations")
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]dto.Record, error) {
	return c.list(ctx, "users.list", "/api/users", token, "users", "candidates")
}

// GetAnalytics returns the organization's analytics object as-is.
func (c *Client) GetAnalytics(ctx context.Context, token, orgID string) (dto.Record, error) {
	var raw dto.Record
	path := "/api/organizations/" + url.PathEscape(orgID) + "/analytics"
	if err := c.do(ctx, "organizations.analytics", http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}
	for _, k := range []string{"analytics", "data"} {
		if inner, ok := raw[k].(map[string]interface{}); ok {
			return dto.Record(inner), nil
		}
	}
	if raw == nil {
		raw = dto.Record{}
	}
	return raw, nil
}
