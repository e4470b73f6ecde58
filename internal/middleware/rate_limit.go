package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"flightops360/hangar/internal/common"
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	rps       rate.Limit
	burst     int
	whitelist map[string]bool
}

func NewRateLimiter(rps, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		whitelist: map[string]bool{
			"127.0.0.1": true,
			"::1":       true,
		},
	}
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(l.rps, l.burst)
	l.limiters[ip] = limiter
	return limiter
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if l.whitelist[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !l.limiter(ip).Allow() {
			common.RespondError(w, http.StatusTooManyRequests, "Too many requests", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}
