// Package auth resolves who is behind a browser session. The backend is the
// only authority; nothing cached locally is treated as verified.
package auth

import (
	"context"
	"errors"
	"time"

	"recruai-web/internal/dto"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/session"
	"recruai-web/internal/upstream"
)

// ErrCanceled means the caller went away before verification finished. The
// result was discarded and the session store left untouched.
var ErrCanceled = errors.New("auth: verification canceled")

// WhoAmI is the backend call the verifier depends on.
type WhoAmI interface {
	Me(ctx context.Context, token string) (*dto.CurrentUser, error)
}

type Verifier struct {
	api   WhoAmI
	store session.Store
	log   logger.ILogger
	now   func() time.Time
}

func NewVerifier(api WhoAmI, store session.Store, log logger.ILogger) *Verifier {
	return &Verifier{
		api:   api,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Verify asks the backend who owns sid's access token.
//
// On success the role and plan the backend reports are persisted together with
// isAuthenticated="true". Any failure, whether a non-2xx status, a transport
// error, a timeout, a missing or expired token, clears every session key and
// resolves to unauthenticated. No retries.
func (v *Verifier) Verify(ctx context.Context, sid string) (session.State, *dto.CurrentUser, error) {
	if ctx.Err() != nil {
		return session.Unknown(), nil, ErrCanceled
	}

	token, _, err := v.store.Get(ctx, sid, session.KeyAccessToken)
	if err != nil {
		v.log.Warn("Verifier", "session store read failed", map[string]interface{}{"error": err.Error()})
		return v.reject(ctx, sid, "store_unavailable")
	}
	if token == "" {
		return v.reject(ctx, sid, "no_token")
	}
	if serverutils.TokenExpired(token, v.now()) {
		return v.reject(ctx, sid, "token_expired")
	}

	user, err := v.api.Me(ctx, token)
	if ctx.Err() != nil {
		return session.Unknown(), nil, ErrCanceled
	}
	if err != nil {
		v.log.Info("Verifier", "whoami rejected", map[string]interface{}{
			"status": upstream.StatusOf(err),
			"error":  err.Error(),
		})
		return v.reject(ctx, sid, "whoami_failed")
	}

	return v.accept(ctx, sid, user)
}

func (v *Verifier) accept(ctx context.Context, sid string, user *dto.CurrentUser) (session.State, *dto.CurrentUser, error) {
	if user.Role != "" {
		if err := v.store.Set(ctx, sid, session.KeyAuthRole, user.Role); err != nil {
			return v.storeFailed(ctx, sid, err)
		}
	}
	if user.Plan != "" {
		if err := v.store.Set(ctx, sid, session.KeyAuthPlan, user.Plan); err != nil {
			return v.storeFailed(ctx, sid, err)
		}
	}
	if err := v.store.Set(ctx, sid, session.KeyIsAuthenticated, session.AuthenticatedValue); err != nil {
		return v.storeFailed(ctx, sid, err)
	}

	// A user without a role keeps whatever role an earlier sign-in stored.
	cached, err := session.Cached(ctx, v.store, sid)
	if err != nil {
		return v.storeFailed(ctx, sid, err)
	}
	return session.Authenticated(user, cached.Role, cached.Plan), user, nil
}

func (v *Verifier) storeFailed(ctx context.Context, sid string, err error) (session.State, *dto.CurrentUser, error) {
	v.log.Error("Verifier", "session store write failed", map[string]interface{}{"error": err.Error()})
	return v.reject(ctx, sid, "store_unavailable")
}

func (v *Verifier) reject(ctx context.Context, sid, reason string) (session.State, *dto.CurrentUser, error) {
	if err := v.store.Clear(ctx, sid); err != nil {
		v.log.Error("Verifier", "failed to clear session", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
	}
	v.log.Debug("Verifier", "session unauthenticated", map[string]interface{}{"reason": reason})
	return session.Unauthenticated(), nil, nil
}
