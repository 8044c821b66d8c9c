package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recruai-web/internal/auth"
	"recruai-web/internal/dto"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/session"
	"recruai-web/internal/upstream"
	"recruai-web/pkg/events"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSignInRejected     = errors.New("signed in, but the account could not be verified")
)

// AuthAPI is the slice of the backend the sign-in flow uses.
type AuthAPI interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type IAuthService interface {
	SignIn(ctx context.Context, sid string, form dto.SignInForm) (session.State, error)
	SignOut(ctx context.Context, sid string) error
	Principal(ctx context.Context, sid string, st session.State) (Principal, error)
}

type authService struct {
	api       AuthAPI
	verifier  *auth.Verifier
	store     session.Store
	publisher EventPublisher
	log       logger.ILogger
}

func NewAuthService(api AuthAPI, verifier *auth.Verifier, store session.Store, publisher EventPublisher, log logger.ILogger) IAuthService {
	return &authService{
		api:       api,
		verifier:  verifier,
		store:     store,
		publisher: publisher,
		log:       log,
	}
}

// SignIn exchanges credentials for a token, stores it, and immediately runs a
// verification so role and plan come from the whoami endpoint like on every
// other page.
func (s *authService) SignIn(ctx context.Context, sid string, form dto.SignInForm) (session.State, error) {
	res, err := s.api.Login(ctx, dto.LoginRequest{
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	})
	if err != nil {
		switch upstream.StatusOf(err) {
		case 400, 401, 403, 404:
			return session.Unauthenticated(), ErrInvalidCredentials
		}
		return session.Unauthenticated(), fmt.Errorf("login: %w", err)
	}

	token := res.BearerToken()
	if token == "" {
		return session.Unauthenticated(), ErrInvalidCredentials
	}

	if err := s.store.Clear(ctx, sid); err != nil {
		return session.Unauthenticated(), fmt.Errorf("reset session: %w", err)
	}
	if err := s.store.Set(ctx, sid, session.KeyAccessToken, token); err != nil {
		return session.Unauthenticated(), fmt.Errorf("store token: %w", err)
	}

	st, user, err := s.verifier.Verify(ctx, sid)
	if err != nil {
		return st, err
	}
	if !st.IsAuthenticated() {
		return st, ErrSignInRejected
	}

	event := events.New(events.TypeSignedIn, map[string]interface{}{
		"user_id": user.ID.String(),
		"role":    st.Role.String(),
		"plan":    st.Plan.String(),
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("AuthService", "failed to publish sign-in event", map[string]interface{}{"error": err.Error()})
	}

	s.log.Info("AuthService", "user signed in", map[string]interface{}{"user_id": user.ID.String(), "role": st.Role.String()})
	return st, nil
}

// SignOut tells the backend (best effort) and always clears every session key.
func (s *authService) SignOut(ctx context.Context, sid string) error {
	token, _, err := s.store.Get(ctx, sid, session.KeyAccessToken)
	if err == nil && token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			s.log.Debug("AuthService", "backend logout failed, ignoring", map[string]interface{}{"error": err.Error()})
		}
	}

	if err := s.store.Clear(ctx, sid); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	if err := s.publisher.Publish(ctx, events.New(events.TypeSignedOut, nil)); err != nil {
		s.log.Warn("AuthService", "failed to publish sign-out event", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

// Principal builds the acting identity for a request the guard already let through.
func (s *authService) Principal(ctx context.Context, sid string, st session.State) (Principal, error) {
	token, _, err := s.store.Get(ctx, sid, session.KeyAccessToken)
	if err != nil {
		return Principal{}, fmt.Errorf("read token: %w", err)
	}
	return Principal{
		Token: token,
		User:  st.User,
		Role:  st.Role,
		Plan:  st.Plan,
	}, nil
}
