package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Rrens/fitcoach/internal/api/response"
	"github.com/Rrens/fitcoach/internal/repository/redis"
	"github.com/rs/zerolog/log"
)

// Limiter decides whether a keyed request may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (redis.Decision, error)
}

// RateLimitMiddleware handles rate limiting
type RateLimitMiddleware struct {
	limiter Limiter
}

// NewRateLimitMiddleware creates a new rate limit middleware. A nil limiter disables it.
func NewRateLimitMiddleware(limiter Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit applies rate limiting based on user ID
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := GetUserID(r.Context())
		if !ok {
			response.Unauthorized(w, response.CodeNoToken, "Token não fornecido")
			return
		}

		decision, err := m.limiter.Allow(r.Context(), userID.String())
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID.String()).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			response.Error(w, http.StatusTooManyRequests, response.CodeRateLimited, "Muitas requisições. Tente novamente em instantes.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
