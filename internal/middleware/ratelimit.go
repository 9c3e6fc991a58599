package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/edusync/sis-backend/internal/response"
	"github.com/gin-gonic/gin"
)

// WriteGuard is a per-IP token bucket applied to mutating routes. Reads are
// left unthrottled; the guard only meters POST/PUT/DELETE traffic.
type WriteGuard struct {
	mu       sync.Mutex
	clients  map[string]*bucket
	rate     int           // tokens per window
	window   time.Duration // refill window
	staleTTL time.Duration
}

type bucket struct {
	tokens   int
	lastSeen time.Time
}

// NewWriteGuard creates a WriteGuard allowing rate mutations per window for
// each client IP.
func NewWriteGuard(rate int, window time.Duration) *WriteGuard {
	g := &WriteGuard{
		clients:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		staleTTL: 3 * window,
	}

	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for range ticker.C {
			g.evictStale()
		}
	}()

	return g
}

// Middleware returns a Gin middleware that rate-limits requests by client IP.
func (g *WriteGuard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		g.mu.Lock()
		b, exists := g.clients[ip]
		if !exists {
			b = &bucket{tokens: g.rate, lastSeen: time.Now()}
			g.clients[ip] = b
		}

		// Refill based on elapsed windows.
		elapsed := time.Since(b.lastSeen)
		refill := int(elapsed/g.window) * g.rate
		if refill > 0 {
			b.tokens += refill
			if b.tokens > g.rate {
				b.tokens = g.rate
			}
			b.lastSeen = time.Now()
		}

		if b.tokens <= 0 {
			g.mu.Unlock()
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}

		b.tokens--
		g.mu.Unlock()
		c.Next()
	}
}

func (g *WriteGuard) evictStale() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for ip, b := range g.clients {
		if time.Since(b.lastSeen) > g.staleTTL {
			delete(g.clients, ip)
		}
	}
}
