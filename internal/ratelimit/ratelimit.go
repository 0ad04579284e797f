// Package ratelimit provides a per-address fixed-window request limiter.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count     int
	expiresAt time.Time
}

// Limiter counts requests per client address within a fixed window.
// Bursts straddling a window boundary can admit up to twice the limit;
// that imprecision is accepted in exchange for a trivial data structure.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   int
	window  time.Duration
	ticker  *time.Ticker
	quit    chan struct{}
	now     func() time.Time
}

// New initializes a Limiter admitting up to limit requests per window per address.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		limit:   limit,
		window:  window,
		ticker:  time.NewTicker(window),
		quit:    make(chan struct{}),
		now:     time.Now,
	}
}

// Allow reports whether a request from addr is within budget, counting it if so.
// Requests over the limit are rejected without extending the window.
func (l *Limiter) Allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[addr]
	if !ok || now.After(e.expiresAt) {
		l.entries[addr] = &entry{count: 1, expiresAt: now.Add(l.window)}
		return true
	}
	if e.count < l.limit {
		e.count++
		return true
	}
	return false
}

// Start runs the periodic sweep of expired entries.
func (l *Limiter) Start() {
	for {
		select {
		case <-l.ticker.C:
			l.sweep()
		case <-l.quit:
			l.ticker.Stop()
			return
		}
	}
}

// Stop signals the sweeper to shut down.
func (l *Limiter) Stop() {
	close(l.quit)
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for addr, e := range l.entries {
		if now.After(e.expiresAt) {
			delete(l.entries, addr)
		}
	}
}
