package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reports the expiry of the stored bearer token, when it can be
// determined. The token is parsed without signature verification: the client
// has no keys and only introspects the claims for display purposes. Returns
// the zero time when no token is stored or the token carries no exp claim.
func (m *Manager) TokenExpiry(ctx context.Context) time.Time {
	token, ok := m.store.Token(ctx)
	if !ok {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
