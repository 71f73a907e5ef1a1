package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleLimiterTTL = 10 * time.Minute

// RateLimiter implements per-IP token bucket rate limiting.
type RateLimiter struct {
	limiters sync.Map // map[string]*clientLimiter
	rps      rate.Limit
	burst    int
	stop     chan struct{}
	once     sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter allowing rps requests per second with
// the given burst per client IP, with background cleanup of idle clients.
// Call Stop() on shutdown.
func NewRateLimiter(rps float64, burst int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		rps:   rate.Limit(rps),
		burst: burst,
		stop:  make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that rate-limits mutating requests. Safe methods
// (GET, HEAD, OPTIONS) are never throttled.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if !rl.get(clientIP(r)).Allow() {
				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	val, _ := rl.limiters.LoadOrStore(key, &clientLimiter{
		limiter: rate.NewLimiter(rl.rps, rl.burst),
	})
	c := val.(*clientLimiter)

	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()

	return c.limiter
}

// retryAfter is the number of whole seconds until one token is available.
func (rl *RateLimiter) retryAfter() int {
	if rl.rps <= 0 {
		return 60
	}
	return int(math.Ceil(1 / float64(rl.rps)))
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.limiters.Range(func(key, value any) bool {
				c := value.(*clientLimiter)
				c.mu.Lock()
				idle := now.Sub(c.lastSeen)
				c.mu.Unlock()
				if idle > idleLimiterTTL {
					rl.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
