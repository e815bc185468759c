package store

import "sync"

// membership mirrors the persisted "known" / "has odds" flags for O(1)
// checks without re-querying storage. It is rebuilt fresh at the start
// of every run and updated on write, inside the same call that commits
// the backing transaction.
type membership struct {
	mu     sync.RWMutex
	events map[string]bool // event id -> odds ingested
}

func newMembership() *membership {
	return &membership{events: make(map[string]bool)}
}

func (m *membership) reset(events map[string]bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = events
}

func (m *membership) known(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.events[id]
	return ok
}

func (m *membership) hasOdds(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.events[id]
}

func (m *membership) add(id string, oddsIngested bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[id] = oddsIngested
}

func (m *membership) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}
