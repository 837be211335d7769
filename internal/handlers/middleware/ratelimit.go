package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
	"golang.org/x/time/rate"
)

// RateLimiter aplica um token bucket por IP de cliente.
// Limiters ociosos são descartados periodicamente para conter o mapa.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	rps      rate.Limit
	burst    int
	lastSeen time.Duration
}

type clientLimiter struct {
	limiter *rate.Limiter
	seenAt  time.Time
}

// NewRateLimiter cria um novo limitador por cliente
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		lastSeen: 10 * time.Minute,
	}

	go rl.cleanup()
	return rl
}

// Limit rejeita com 429 quando o cliente excede o limite
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.Header("Content-Type", problems.ProblemMediaType)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, problems.Problem{
				Type:     c.GetString("base_url") + "/problems/too-many-requests",
				Title:    translate(c, "error.too_many_requests.title"),
				Status:   http.StatusTooManyRequests,
				Detail:   translate(c, "error.too_many_requests.detail"),
				Instance: c.Request.URL.Path,
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, ok := rl.clients[clientIP]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[clientIP] = client
	}
	client.seenAt = time.Now()

	return client.limiter.Allow()
}

func (rl *RateLimiter) cleanup() {
	for range time.Tick(time.Minute) {
		rl.mu.Lock()
		for ip, client := range rl.clients {
			if time.Since(client.seenAt) > rl.lastSeen {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}
