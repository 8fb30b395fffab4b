package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// FixedWindowRateLimiter counts requests per client IP inside the current
// window. Counters carry the window they were taken in, so a stale counter
// is simply overwritten instead of needing a reset goroutine per client.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]windowCount
	limit   int
	window  time.Duration
}

type windowCount struct {
	window int64
	count  int
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]windowCount),
		limit:   limit,
		window:  window,
	}
}

// Allow reports whether this client may proceed, and when not, how long
// until the window rolls over.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := time.Now()
	current := now.UnixNano() / int64(rl.window)

	rl.Lock()
	defer rl.Unlock()

	wc := rl.clients[ip]
	if wc.window != current {
		wc = windowCount{window: current}
	}

	if wc.count >= rl.limit {
		next := time.Unix(0, (current+1)*int64(rl.window))
		return false, next.Sub(now)
	}

	wc.count++
	rl.clients[ip] = wc

	// Opportunistic sweep of stale entries so the map does not grow with
	// one entry per IP ever seen.
	if len(rl.clients) > 4*rl.limit {
		for k, v := range rl.clients {
			if v.window != current {
				delete(rl.clients, k)
			}
		}
	}

	return true, 0
}
