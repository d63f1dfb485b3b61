package db

// Store is an insertion-ordered key-value store.
// Putting an existing key replaces its value without moving it.
type Store[V any] interface {
	Put(key string, value V) (created bool)
	Get(key string) (V, bool)
	Values() []V
	Len() int
}
