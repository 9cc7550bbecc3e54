package rx

import (
	"sync"

	"go.uber.org/atomic"
)

// recorder is an observer that keeps every event it receives.
type recorder[T any] struct {
	mu     sync.Mutex
	events []Notification[T]
}

func (r *recorder[T]) add(n Notification[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, n)
}

func (r *recorder[T]) Next(v T) {
	r.add(NextOf(v))
}

func (r *recorder[T]) Error(err error) {
	r.add(ErrorOf[T](err))
}

func (r *recorder[T]) Complete() {
	r.add(CompleteOf[T]())
}

func (r *recorder[T]) Events() []Notification[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification[T](nil), r.events...)
}

func (r *recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	values := make([]T, 0, len(r.events))
	for _, n := range r.events {
		if n.Kind == KindNext {
			values = append(values, n.Value)
		}
	}
	return values
}

func (r *recorder[T]) Terminals() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, n := range r.events {
		if n.IsTerminal() {
			count++
		}
	}
	return count
}

// counter is a child resource that counts every release, with no guard of
// its own against being released twice.
type counter struct {
	releases atomic.Int32
}

func (c *counter) Unsubscribe() {
	c.releases.Inc()
}

func (c *counter) IsClosed() bool {
	return c.releases.Load() > 0
}
