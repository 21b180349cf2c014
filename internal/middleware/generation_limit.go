package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	apperrors "github.com/charlesng35/ayumi/pkg/errors"
	"github.com/charlesng35/ayumi/pkg/response"
)

const defaultLimiterClients = 4096

// GenerationLimiter applies a token bucket per client in front of endpoints
// that call the text generator synchronously. Buckets live in memory; the
// least recently seen clients are evicted first.
type GenerationLimiter struct {
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	buckets *lru.Cache[string, *rate.Limiter]
	now     func() time.Time
}

// NewGenerationLimiter allows perMinute requests per client with the given
// burst. A non-positive perMinute disables limiting.
func NewGenerationLimiter(perMinute, burst int) *GenerationLimiter {
	if burst <= 0 {
		burst = 1
	}
	buckets, _ := lru.New[string, *rate.Limiter](defaultLimiterClients)
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60)
	}
	return &GenerationLimiter{limit: limit, burst: burst, buckets: buckets, now: time.Now}
}

func (l *GenerationLimiter) bucket(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, ok := l.buckets.Get(client); ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.buckets.Add(client, limiter)
	return limiter
}

// Middleware rejects requests once the client's bucket is empty.
func (l *GenerationLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.limit == rate.Inf {
			c.Next()
			return
		}

		reservation := l.bucket(c.ClientIP()).ReserveN(l.now(), 1)
		if delay := reservation.DelayFrom(l.now()); delay > 0 {
			reservation.CancelAt(l.now())
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			response.Error(c, apperrors.ErrRateLimit)
			c.Abort()
			return
		}
		c.Next()
	}
}
