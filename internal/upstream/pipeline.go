package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"recruai-web/internal/dto"
)

func (c *Client) GetPipeline(ctx context.Context, token, orgID string) ([]dto.Stage, error) {
	records, err := c.list(ctx, "pipeline.get", "/api/pipeline/"+url.PathEscape(orgID), token, "stages", "pipeline")
	if err != nil {
		return nil, err
	}

	stages := make([]dto.Stage, 0, len(records))
	for _, r := range records {
		stages = append(stages, dto.Stage{
			ID:         r.ID(),
			Name:       r.Text("name", "title", "stage"),
			Candidates: nestedRecords(r, "candidates", "applications", "interviews", "items"),
		})
	}
	return stages, nil
}

func nestedRecords(r dto.Record, keys ...string) []dto.Record {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			continue
		}
		var out []dto.Record
		if err := json.Unmarshal(b, &out); err == nil {
			if out == nil {
				out = []dto.Record{}
			}
			return out
		}
	}
	return []dto.Record{}
}

func (c *Client) Decide(ctx context.Context, token, orgID, interviewID string, payload map[string]interface{}) error {
	path := "/api/organizations/" + url.PathEscape(orgID) + "/interviews/" + url.PathEscape(interviewID) + "/decision"
	return c.do(ctx, "pipeline.decision", http.MethodPost, path, token, payload, nil)
}
