package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// One request every 2 seconds with a burst of 10 per client IP.
	rateLimitInterval = 2 * time.Second
	rateLimitBurst    = 10

	rateLimitCleanupAfter = 10 * time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*ipLimiter
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{visitors: make(map[string]*ipLimiter)}

	go func() {
		for range time.Tick(time.Minute) {
			rl.mu.Lock()
			for ip, v := range rl.visitors {
				if time.Since(v.lastSeen) > rateLimitCleanupAfter {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()

	return rl
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &ipLimiter{limiter: rate.NewLimiter(rate.Every(rateLimitInterval), rateLimitBurst)}
		rl.visitors[ip] = v
	}

	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

// middleware throttles clients per peer IP. If the server ever sits
// behind a reverse proxy, the key must come from a forwarded header
// instead.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.allow(ip) {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
