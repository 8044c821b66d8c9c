// Package session holds the per-browser key/value state the dashboard relies on:
// the backend access token and the cached authentication flag, role and plan.
package session

import (
	"context"
	"errors"
)

type Key string

const (
	KeyAccessToken     Key = "access_token"
	KeyIsAuthenticated Key = "isAuthenticated"
	KeyAuthRole        Key = "authRole"
	KeyAuthPlan        Key = "authPlan"
)

// AllKeys is every key Clear removes. They are always cleared together.
var AllKeys = []Key{KeyAccessToken, KeyIsAuthenticated, KeyAuthRole, KeyAuthPlan}

// AuthenticatedValue is the only value ever stored under KeyIsAuthenticated.
const AuthenticatedValue = "true"

var ErrInvalidSession = errors.New("session: empty session id")

// Store is the injectable replacement for browser local storage. Writes are
// last-write-wins.
type Store interface {
	Get(ctx context.Context, sid string, key Key) (string, bool, error)
	Set(ctx context.Context, sid string, key Key, value string) error
	Clear(ctx context.Context, sid string) error
}

// Snapshot reads every known key of a session. Missing keys are absent from
// the map.
func Snapshot(ctx context.Context, s Store, sid string) (map[Key]string, error) {
	out := make(map[Key]string, len(AllKeys))
	for _, k := range AllKeys {
		v, ok, err := s.Get(ctx, sid, k)
		if err != nil {
			return nil, err
		}
		if ok {
			out[k] = v
		}
	}
	return out, nil
}
