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

// FixedWindowRateLimiter counts requests per client key and resets every
// counter at the end of each window.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]int // client key (IP) -> requests in the current window
	limit   int
	window  time.Duration
	stop    chan struct{}
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   limit,
		window:  window,
		stop:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.Lock()
			rl.clients = make(map[string]int) // reset all
			rl.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// Allow records one request from key. When the limit is reached it returns
// false and how long the caller should wait before retrying.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	if rl.clients[key] >= rl.limit {
		return false, rl.window
	}
	rl.clients[key]++
	return true, 0
}

// Stop ends the reset loop.
func (rl *FixedWindowRateLimiter) Stop() {
	close(rl.stop)
}
