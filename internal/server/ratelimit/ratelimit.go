// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// tokenBucket allows a burst of requests, refilling at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens = min(float64(tb.capacity), tb.tokens+now.Sub(tb.lastRefill).Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens--
		return true
	}
	return false
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled bool
	Limit   int           // requests per window
	Window  time.Duration // refill window
}

// LoadConfig reads configuration from the environment, with defaults of 60
// requests per minute. RATE_LIMIT_ENABLED=false disables limiting.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled: true,
		Limit:   60,
		Window:  time.Minute,
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_REQUESTS"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			cfg.Limit = limit
		}
	}
	return cfg
}

// Limiter manages token buckets for multiple clients.
type Limiter struct {
	config  *Config
	buckets map[string]*tokenBucket
	mu      sync.Mutex

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	lastAccess    map[string]time.Time
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
	}
	if config.Enabled {
		l.cleanupTicker = time.NewTicker(5 * time.Minute)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}
	return l
}

// Allow reports whether a request from the client should proceed.
func (l *Limiter) Allow(clientID string) bool {
	if !l.config.Enabled {
		return true
	}

	l.mu.Lock()
	bucket, ok := l.buckets[clientID]
	if !ok {
		refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
		bucket = newTokenBucket(l.config.Limit, refillRate)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	l.mu.Unlock()

	return bucket.allow()
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

// cleanup drops buckets idle for more than an hour so the map cannot grow
// unbounded under churning client IPs.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-time.Hour)
			l.mu.Lock()
			for id, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, id)
					delete(l.lastAccess, id)
				}
			}
			l.mu.Unlock()
		case <-l.cleanupStop:
			return
		}
	}
}
