package http

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/utils"
)

// ipRateLimiter hands out one token-bucket limiter per client IP. It is
// applied to the token-issuing endpoints to slow down credential guessing.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// limiterFor returns the limiter bound to ip, creating it on first sight.
func (l *ipRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[ip] = limiter
	}

	return limiter
}

// withRateLimit rejects requests exceeding the per-IP budget with HTTP 429.
// A zero RPS disables limiting.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.rateLimit.RPS <= 0 {
		return next
	}

	limiter := newIPRateLimiter(h.rateLimit.RPS, h.rateLimit.Burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.limiterFor(ip).Allow() {
			log.Warn().Str("ip", ip).Msg("rate limit exceeded")
			utils.WriteJSON(w, map[string]string{"message": "too many requests"}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
