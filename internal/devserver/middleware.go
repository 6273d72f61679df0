package devserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// requireAuth validates the bearer token and stores the authenticated
// user ID in the request context. Failures come back as the standard 401
// envelope so clients exercise their forced-logout path.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeFailed(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		userID, err := validateToken(token, s.secret)
		if err != nil {
			writeFailed(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if _, ok := s.store.userByID(userID); !ok {
			writeFailed(w, http.StatusUnauthorized, "account no longer exists")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext extracts the authenticated user ID placed there by
// requireAuth. Returns "" for unauthenticated requests.
func userIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

// withRequestLogging logs each request and its duration.
func withRequestLogging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
