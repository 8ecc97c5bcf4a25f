// Package rate provides a fixed-window request limiter.
package rate

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow(key string, limit int, window time.Duration) (bool, time.Duration)
}

type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	hits    int
	resetAt time.Time
	span    time.Duration
}

func NewMemory() *MemoryLimiter {
	return &MemoryLimiter{windows: make(map[string]*window)}
}

func (m *MemoryLimiter) Allow(key string, limit int, span time.Duration) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if len(m.windows) > 4096 {
		m.prune(now)
	}

	w, ok := m.windows[key]
	if !ok || now.After(w.resetAt) || w.span != span {
		w = &window{resetAt: now.Add(span), span: span}
		m.windows[key] = w
	}

	if w.hits >= limit {
		return false, time.Until(w.resetAt)
	}

	w.hits++
	return true, time.Until(w.resetAt)
}

func (m *MemoryLimiter) prune(now time.Time) {
	for key, w := range m.windows {
		if now.After(w.resetAt) {
			delete(m.windows, key)
		}
	}
}
