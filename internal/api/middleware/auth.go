package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/api/handlers"
)

// UserIDHeader carries the caller identity resolved by the upstream
// gateway. The service trusts it; authentication itself happens there.
const UserIDHeader = "X-User-ID"

const msgMissingUser = "brak identyfikatora użytkownika"

type ctxKey struct{}

var userIDKey ctxKey

// Auth requires a valid X-User-ID header and stores the parsed id in the
// request context. Requests without one get a 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get(UserIDHeader))
		if err != nil || userID == uuid.Nil {
			handlers.RespondUnauthorized(w, msgMissingUser)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// OptionalAuth stores the caller id when a valid header is present and
// lets the request through anonymously otherwise. Used on public routes
// that enrich their response for known users.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, err := uuid.Parse(r.Header.Get(UserIDHeader)); err == nil && userID != uuid.Nil {
			r = r.WithContext(WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

// WithUserID stores the caller id in the context
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the caller id placed by Auth/OptionalAuth
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
