package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordText(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 42,
		"title": "",
		"position": "Backend Engineer",
		"candidate": {"name": "Ada", "score": 91.5},
		"remote": true
	}`), &r))

	assert.Equal(t, "42", r.ID())
	assert.Equal(t, "Backend Engineer", r.Text("title", "position"))
	assert.Equal(t, "Ada", r.Text("candidate.name"))
	assert.Equal(t, "91.5", r.Text("candidate.score"))
	assert.Equal(t, "true", r.Text("remote"))
	assert.Equal(t, "", r.Text("candidate.name.first", "missing"))
}

func TestCurrentUserDecoding(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    CurrentUser
	}{
		{
			name:    "numeric id",
			payload: `{"user":{"id":1,"role":"organization"}}`,
			want:    CurrentUser{ID: "1", Role: "organization"},
		},
		{
			name:    "nested organization",
			payload: `{"user":{"_id":"u-9","role":"organization","organization":{"id":"org-3","name":"Acme"},"subscription":{"plan":"pro"}}}`,
			want:    CurrentUser{ID: "u-9", Role: "organization", OrganizationID: "org-3", Name: "Acme", Plan: "pro"},
		},
		{
			name:    "camel case org id",
			payload: `{"user":{"id":"u-1","role":"individual","organizationId":77,"fullName":"Grace"}}`,
			want:    CurrentUser{ID: "u-1", Role: "individual", OrganizationID: "77", Name: "Grace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res MeResponse
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &res))
			require.NotNil(t, res.User)

			got := *res.User
			got.Raw = nil
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoginResponseBearerToken(t *testing.T) {
	assert.Equal(t, "a", (&LoginResponse{AccessToken: "a", Token: "b"}).BearerToken())
	assert.Equal(t, "b", (&LoginResponse{Token: "b"}).BearerToken())
}
