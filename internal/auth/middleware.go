package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/redmonkez12/learnhub-api/internal/logging"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const (
	UserEmailContextKey ContextKey = "user_email"
)

// Middleware resolves the caller identity from session tokens
type Middleware struct {
	tokenService TokenService
}

func NewMiddleware(tokenService TokenService) *Middleware {
	return &Middleware{tokenService: tokenService}
}

// Identify attaches the token email to the request context and logger when a
// valid bearer token is sent. It never rejects a request: no route requires a
// token, so missing or bad tokens only leave the request anonymous.
func (m *Middleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		logger := logging.GetLoggerFromContext(r.Context())

		claims, err := m.tokenService.VerifyToken(token)
		if err != nil {
			reason := "invalid"
			if errors.Is(err, ErrExpiredToken) {
				reason = "expired"
			}
			logger.Debug("ignoring session token", "reason", reason)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserEmailContextKey, claims.Email)
		ctx = logging.WithLogger(ctx, logger.WithFields(map[string]any{"user_email": claims.Email}))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetUserEmailFromContext extracts the caller email set by Identify
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailContextKey).(string)
	return email, ok
}
