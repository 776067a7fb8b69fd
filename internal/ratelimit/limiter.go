package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds rate limiter configuration
type Config struct {
	RequestsPerMin int           // per-client request limit per minute
	Burst          int           // burst capacity
	IdleEviction   time.Duration // drop per-client state after this idle time
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		RequestsPerMin: 30,
		Burst:          10,
		IdleEviction:   10 * time.Minute,
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter provides in-memory per-client token bucket rate limiting.
type Limiter struct {
	config  Config
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

// NewLimiter creates a limiter and starts background eviction of idle
// client buckets.
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		config:  config,
		clients: make(map[string]*clientLimiter),
	}
	go l.evictIdle()
	return l
}

// Allow reports whether the client identified by key may proceed.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[key]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(float64(l.config.RequestsPerMin)/60), l.config.Burst),
		}
		l.clients[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

// Size returns the number of tracked clients.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiter) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-l.config.IdleEviction)
		l.mu.Lock()
		for key, cl := range l.clients {
			if cl.lastSeen.Before(cutoff) {
				delete(l.clients, key)
			}
		}
		l.mu.Unlock()
	}
}
