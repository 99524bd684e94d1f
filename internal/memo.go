package internal

import "sync"

// Compute-once wrapper for values derived from an immutable polygon. The
// value is produced on the first get and never changes afterwards; a
// different value means a different polygon.
type lazy[T any] struct {
	once    sync.Once
	compute func() T
	value   T
}

func newLazy[T any](compute func() T) *lazy[T] {
	return &lazy[T]{compute: compute}
}

func (l *lazy[T]) get() T {
	l.once.Do(func() {
		l.value = l.compute()
		l.compute = nil
	})
	return l.value
}
