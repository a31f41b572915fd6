package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

// AuthMiddleware rejects requests outside PublicPaths that do not carry the
// configured X-API-Key. An empty apiKey disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				tracker.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					LogFieldPath, r.URL.Path,
					LogFieldHasKey, providedKey != "",
					LogFieldIP, ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// ClientTracker counts requests and failed logins per client IP over a fixed
// window. Counters reset together when the window elapses.
type ClientTracker struct {
	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	alertAt     int
	now         func() time.Time

	windowStart time.Time
	requests    map[string]int
	failedAuth  map[string]int
}

// NewClientTracker creates a tracker allowing maxRequests per client per window
// and warning once a client reaches alertAt failed authentications.
func NewClientTracker(window time.Duration, maxRequests, alertAt int) *ClientTracker {
	return newClientTrackerWithClock(window, maxRequests, alertAt, time.Now)
}

func newClientTrackerWithClock(window time.Duration, maxRequests, alertAt int, now func() time.Time) *ClientTracker {
	return &ClientTracker{
		window:      window,
		maxRequests: maxRequests,
		alertAt:     alertAt,
		now:         now,
		windowStart: now(),
		requests:    make(map[string]int),
		failedAuth:  make(map[string]int),
	}
}

// RecordFailedAuth counts a failed authentication attempt from ip.
func (t *ClientTracker) RecordFailedAuth(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollWindow()
	t.failedAuth[ip]++
	if t.failedAuth[ip] == t.alertAt {
		slog.Warn(LogMsgRepeatedAuthFail, LogFieldIP, ip, LogFieldCount, t.failedAuth[ip])
	}
}

// Allow counts a request from ip and reports whether it is within the limit.
func (t *ClientTracker) Allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollWindow()
	t.requests[ip]++
	n := t.requests[ip]
	if n <= t.maxRequests {
		return true
	}
	// Warn on the first rejection and every hundredth after it.
	if (n-t.maxRequests)%100 == 1 {
		slog.Warn(LogMsgRateLimited, LogFieldIP, ip, LogFieldCount, n)
	}
	return false
}

// Requests returns the number of requests counted for ip in the current window.
func (t *ClientTracker) Requests(ip string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollWindow()
	return t.requests[ip]
}

// rollWindow must be called with mu held.
func (t *ClientTracker) rollWindow() {
	now := t.now()
	if now.Sub(t.windowStart) < t.window {
		return
	}
	t.windowStart = now
	t.requests = make(map[string]int)
	t.failedAuth = make(map[string]int)
}

// RateLimitMiddleware answers 429 once a client exceeds the tracker's limit.
func RateLimitMiddleware(trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tracker.Allow(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only when
// the direct peer is a trusted proxy, and then its rightmost hop is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware sets the response headers every API reply carries.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
