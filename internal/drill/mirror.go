package drill

import "sync"

// Mirror holds the latest published Snapshot for readers on other
// goroutines. The owner of the State publishes after every transition.
type Mirror struct {
	mu   sync.RWMutex
	snap Snapshot
}

// Publish replaces the held snapshot.
func (m *Mirror) Publish(s State) {
	snap := s.Snapshot()
	m.mu.Lock()
	m.snap = snap
	m.mu.Unlock()
}

// Load returns the held snapshot.
func (m *Mirror) Load() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}
