// Package ratelimit throttles login attempts per client IP.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	ttl      time.Duration
}

func New(r rate.Limit, burst int) *Limiter {
	return &Limiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
		ttl:      5 * time.Minute,
	}
}

// Allow reports whether the given IP may attempt a login right now.
func (l *Limiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

// StartCleanupLoop evicts idle visitors forever; run it on its own goroutine.
func (l *Limiter) StartCleanupLoop(interval time.Duration) {
	for {
		time.Sleep(interval)
		l.sweep()
	}
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	for ip, v := range l.visitors {
		if time.Since(v.lastSeen) > l.ttl {
			delete(l.visitors, ip)
		}
	}
	l.mu.Unlock()
}

// Reset drops all visitor state.
func (l *Limiter) Reset() {
	l.mu.Lock()
	l.visitors = make(map[string]*visitor)
	l.mu.Unlock()
}
