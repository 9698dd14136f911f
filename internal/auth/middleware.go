package auth

import (
	"context"
	"net/http"
	"strings"
)

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID string
	Email  string
	Nome   string
}

type contextKey struct{}

// FromContext returns the caller identity, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

func withIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// Require rejects requests without a valid bearer token.
func (m *TokenManager) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		claims, err := m.Verify(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		ctx := withIdentity(r.Context(), Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Nome:   claims.Nome,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the caller identity when a valid token is present
// and lets the request through either way. Used by the pedido routes,
// which only need the identity to attribute audit events.
func (m *TokenManager) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if claims, err := m.Verify(token); err == nil {
				ctx := withIdentity(r.Context(), Identity{
					UserID: claims.UserID,
					Email:  claims.Email,
					Nome:   claims.Nome,
				})
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}
