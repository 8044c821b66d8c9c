package session

import (
	"context"
	"encoding/json"

	"recruai-web/internal/dto"
)

// Phase is where a request is in establishing who the user is.
//
//	unknown ──► verifying ──► resolved{authenticated | unauthenticated}
type Phase uint8

const (
	PhaseUnknown Phase = iota
	PhaseVerifying
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseVerifying:
		return "verifying"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session at one phase. The cached flag read from
// the store before verification is reachable only through CachedAuthenticated,
// so nothing can mistake it for a verified answer.
type State struct {
	phase         Phase
	authenticated bool
	cached        bool

	Role Role
	Plan Plan
	User *dto.CurrentUser
}

func Unknown() State {
	return State{phase: PhaseUnknown}
}

// Cached reads the optimistic values left by a previous verification.
func Cached(ctx context.Context, s Store, sid string) (State, error) {
	snap, err := Snapshot(ctx, s, sid)
	if err != nil {
		return Unknown(), err
	}
	return State{
		phase:  PhaseUnknown,
		cached: snap[KeyIsAuthenticated] == AuthenticatedValue,
		Role:   ParseRole(snap[KeyAuthRole]),
		Plan:   ParsePlan(snap[KeyAuthPlan]),
	}, nil
}

// Verifying moves prev into the verifying phase, keeping its cached values.
func Verifying(prev State) State {
	prev.phase = PhaseVerifying
	prev.authenticated = false
	return prev
}

func Authenticated(user *dto.CurrentUser, role Role, plan Plan) State {
	return State{
		phase:         PhaseResolved,
		authenticated: true,
		cached:        true,
		Role:          role,
		Plan:          plan,
		User:          user,
	}
}

func Unauthenticated() State {
	return State{phase: PhaseResolved}
}

func (s State) Phase() Phase { return s.phase }

func (s State) IsResolved() bool { return s.phase == PhaseResolved }

// IsAuthenticated is true only once the backend has confirmed the session.
func (s State) IsAuthenticated() bool {
	return s.phase == PhaseResolved && s.authenticated
}

// CachedAuthenticated is the optimistic flag from the store. Display hint only.
func (s State) CachedAuthenticated() bool { return s.cached }

func (s State) String() string {
	if !s.IsResolved() {
		return s.phase.String()
	}
	if s.authenticated {
		return "resolved:authenticated"
	}
	return "resolved:unauthenticated"
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Phase         string           `json:"phase"`
		Authenticated bool             `json:"authenticated"`
		Role          string           `json:"role"`
		Plan          string           `json:"plan"`
		User          *dto.CurrentUser `json:"user,omitempty"`
	}{
		Phase:         s.phase.String(),
		Authenticated: s.IsAuthenticated(),
		Role:          s.Role.String(),
		Plan:          s.Plan.String(),
		User:          s.User,
	})
}
