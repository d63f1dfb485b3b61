package memory

import "sync"

// OrderedMap is an in-memory map that remembers first-insertion order.
// Safe for concurrent use; readers never block each other.
type OrderedMap[V any] struct {
	mu    sync.RWMutex
	index map[string]int
	keys  []string
	vals  []V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{index: make(map[string]int)}
}

// Put inserts or replaces value under key. New keys go to the end,
// existing keys keep their position. Returns true if key was new.
func (m *OrderedMap[V]) Put(key string, value V) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return false
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
	return true
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Values returns a snapshot of values in insertion order.
func (m *OrderedMap[V]) Values() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]V, len(m.vals))
	copy(out, m.vals)
	return out
}

// Len returns the number of keys.
func (m *OrderedMap[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}
