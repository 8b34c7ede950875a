package httpapi

import (
	"context"
	"net/http"
	"strings"

	"zomighty/internal/auth"
)

type contextKey string

const userIDKey contextKey = "user_id"

// requireAuth verifies the Bearer token and injects the resolved user id
// into the request context before the handler runs.
func requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.Replace(r.Header.Get("Authorization"), "Bearer ", "", 1)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Missing authorization token")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next(w, r.WithContext(ctx))
	}
}

// UserIDFrom returns the authenticated user id injected by requireAuth.
func UserIDFrom(ctx context.Context) int {
	id, _ := ctx.Value(userIDKey).(int)
	return id
}
