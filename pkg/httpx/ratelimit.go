package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig defines a token-bucket profile for a group of endpoints.
type RateLimitConfig struct {
	// RequestsPerWindow is the sustained number of requests allowed per Window.
	RequestsPerWindow int
	// Window is the time window the sustained rate is measured over.
	Window time.Duration
	// Burst is the number of requests that may be consumed at once.
	Burst int
}

// Default profiles. Reads get the generous public profile, writes the
// lenient one. Both can be overridden via RATELIMIT_* environment
// variables.
var (
	// LenientLimit for mutating endpoints.
	// Override with RATELIMIT_LENIENT_REQUESTS, RATELIMIT_LENIENT_WINDOW_SEC, RATELIMIT_LENIENT_BURST.
	LenientLimit = RateLimitConfig{
		RequestsPerWindow: 100,
		Window:            time.Minute,
		Burst:             100,
	}

	// PublicLimit for read-only endpoints.
	// Override with RATELIMIT_PUBLIC_REQUESTS, RATELIMIT_PUBLIC_WINDOW_SEC, RATELIMIT_PUBLIC_BURST.
	PublicLimit = RateLimitConfig{
		RequestsPerWindow: 1000,
		Window:            time.Minute,
		Burst:             1000,
	}
)

func init() {
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv overlays a profile with RATELIMIT_{prefix}_{field}
// environment variables when they are set and parse cleanly.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def

	if v := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestsPerWindow = n
		}
	}
	if v := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Window = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("RATELIMIT_" + prefix + "_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Burst = n
		}
	}

	return cfg
}

// clientIP extracts the caller address, honouring X-Forwarded-For and
// X-Real-IP for proxied requests.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// ipLimiter keeps one token bucket per caller address.
type ipLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *ipLimiter) get(key string) *rate.Limiter {
	if l, ok := rl.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}
	l, _ := rl.limiters.LoadOrStore(key, rate.NewLimiter(rl.rate, rl.burst))
	rl.maybeCleanup()
	return l.(*rate.Limiter)
}

// maybeCleanup drops idle buckets so ephemeral addresses don't accumulate
// forever. A bucket with a full complement of tokens hasn't been used for at
// least one window.
func (rl *ipLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitByIP limits requests per caller address using the given profile.
// Rejected requests get a 429 with a Retry-After hint.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	perSecond := float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()
	rl := &ipLimiter{
		rate:        rate.Limit(perSecond),
		burst:       cfg.Burst,
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := rl.get(clientIP(r))
			if !limiter.Allow() {
				res := limiter.Reserve()
				delay := res.Delay()
				res.Cancel()

				retryAfter := max(int(delay.Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", cfg.Window.String())
				WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"message": "Too Many Requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
