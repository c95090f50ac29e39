package http

import (
	"context"
	"net/http"
	"strings"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware validates the bearer token and stores the claims on the
// request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, response{Success: false, Message: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil || claims.Type != security.TokenTypeAccess {
				writeJSON(w, http.StatusUnauthorized, response{Success: false, Message: "invalid token"})
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// AdminOnly guards the admin surface.
func AdminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())
		if claims == nil || claims.Role != domain.RoleAdmin {
			writeJSON(w, http.StatusForbidden, response{Success: false, Message: "admin access required"})
			return
		}
		next(w, r)
	}
}

func claimsFrom(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsKey).(*security.UserClaims)
	return claims
}

// callerID returns the authenticated user's id, or 0 when unauthenticated.
func callerID(ctx context.Context) int32 {
	if claims := claimsFrom(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}
