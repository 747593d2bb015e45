package admission

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start   time.Time
	expires time.Time
	count   int
}

// MemoryBackend keeps windows in process memory under a single mutex.
type MemoryBackend struct {
	mu      sync.Mutex
	windows map[string]window
	closed  bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{windows: make(map[string]window)}
}

func (m *MemoryBackend) Admit(_ context.Context, keys []string, now time.Time, win time.Duration, limit int) (map[string]time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	var blocked map[string]time.Duration
	for _, k := range keys {
		w, ok := m.windows[k]
		// expired but not yet swept counts as absent
		if !ok || !now.Before(w.expires) || w.count < limit {
			continue
		}
		if blocked == nil {
			blocked = make(map[string]time.Duration, len(keys))
		}
		blocked[k] = w.expires.Sub(now)
	}
	if len(blocked) > 0 {
		return blocked, nil
	}

	for _, k := range keys {
		w, ok := m.windows[k]
		if ok && now.Before(w.expires) {
			w.count++
			m.windows[k] = w
			continue
		}
		m.windows[k] = window{start: now, expires: now.Add(win), count: 1}
	}
	return nil, nil
}

func (m *MemoryBackend) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for k, w := range m.windows {
		if !now.Before(w.expires) {
			delete(m.windows, k)
			n++
		}
	}
	return n
}

func (m *MemoryBackend) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}

func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows = nil
	m.closed = true
	return nil
}
