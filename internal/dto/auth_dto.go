package dto

import "encoding/json"

// CurrentUser is the "user" object of GET /api/auth/me. Only the fields the
// dashboard branches on are typed; the rest stays in Raw.
type CurrentUser struct {
	ID             FlexibleID `json:"id"`
	Email          string     `json:"email,omitempty"`
	Name           string     `json:"name,omitempty"`
	Role           string     `json:"role,omitempty"`
	Plan           string     `json:"plan,omitempty"`
	OrganizationID FlexibleID `json:"organization_id,omitempty"`

	Raw Record `json:"-"`
}

func (u *CurrentUser) UnmarshalJSON(b []byte) error {
	type alias CurrentUser
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	var raw Record
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*u = CurrentUser(a)
	u.Raw = raw
	if u.ID == "" {
		u.ID = FlexibleID(raw.Text("_id", "userId"))
	}
	if u.OrganizationID == "" {
		u.OrganizationID = FlexibleID(raw.Text("organizationId", "organization.id", "organization._id", "orgId"))
	}
	if u.Name == "" {
		u.Name = raw.Text("fullName", "full_name", "username", "organization.name")
	}
	if u.Plan == "" {
		u.Plan = raw.Text("planTier", "subscription.plan", "organization.plan")
	}
	return nil
}

type MeResponse struct {
	User *CurrentUser `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	Token       string       `json:"token"`
	User        *CurrentUser `json:"user"`
}

// BearerToken returns whichever token field the backend filled in.
func (r *LoginResponse) BearerToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

type SignInForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}
