// Package lazy provides values that are computed on first use.
package lazy

import (
	"sync"

	"go.uber.org/atomic"
)

// Of is a lazy value that is initialized at most once. If the create
// function panics, the value stays uninitialized and the next Get retries.
type Of[T any] struct {
	create      func() T
	mut         sync.Mutex
	value       T
	initialized atomic.Bool
}

// Get returns the value, running the create function on first use.
func (t *Of[T]) Get() T { //nolint:ireturn
	t.mut.Lock()
	defer t.mut.Unlock()

	if !t.initialized.Load() && t.create != nil {
		// A panic here leaves create in place so the next Get can retry.
		t.value = t.create()

		t.initialized.Store(true)
		t.create = nil
	}

	return t.value
}

// Set replaces the value and discards the create function if it has not
// run yet.
func (t *Of[T]) Set(value T) {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.create = nil
	t.value = value
	t.initialized.Store(true)
}

// Initialized reports whether Get or Set has stored a value.
func (t *Of[T]) Initialized() bool {
	return t.initialized.Load()
}

// New wraps f. Nothing runs until the first Get.
func New[T any](f func() T) *Of[T] {
	return &Of[T]{create: f}
}
