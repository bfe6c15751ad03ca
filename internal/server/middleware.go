// internal/server/middleware.go
package server

import (
	"context"
	"net/http"
	"strings"

	"biblioteca/internal/membership"
)

type contextKey string

// CtxClaimsKey carries the validated token claims on the request context.
const CtxClaimsKey contextKey = "claims"

// RequireStaff validates an "Authorization: Bearer <token>" header and
// rejects anyone who is not a staff member.
func RequireStaff(mem membership.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				http.Error(w, "missing Authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := mem.VerifyToken(strings.TrimSpace(parts[1]))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if claims.Kind != membership.KindStaff {
				http.Error(w, "staff access required", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), CtxClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
