package rx

import (
	"slices"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"
	"go.uber.org/atomic"
)

// Subject is a hot observable that multicasts the events pushed into it to
// every current subscriber. Subscribers arriving after termination receive
// the terminal event immediately.
type Subject[T any] struct {
	observers *xsync.MapOf[uint64, *Subscriber[T]]
	ids       atomic.Uint64

	mu   sync.Mutex
	done bool
	err  error
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		observers: xsync.NewMapOf[uint64, *Subscriber[T]](),
	}
}

func (s *Subject[T]) Subscribe(sub *Subscriber[T]) Subscription {
	s.mu.Lock()
	if s.done {
		err := s.err
		s.mu.Unlock()
		if err != nil {
			sub.Error(err)
		} else {
			sub.Complete()
		}
		return sub
	}
	id := s.ids.Inc()
	s.observers.Store(id, sub)
	s.mu.Unlock()

	sub.Add(Teardown(func() {
		s.observers.Delete(id)
	}))
	return sub
}

func (s *Subject[T]) Next(v T) {
	s.observers.Range(func(_ uint64, sub *Subscriber[T]) bool {
		sub.Next(v)
		return true
	})
}

func (s *Subject[T]) Error(err error) {
	for _, sub := range s.terminate(err) {
		sub.Error(err)
	}
}

func (s *Subject[T]) Complete() {
	for _, sub := range s.terminate(nil) {
		sub.Complete()
	}
}

// HasObservers reports whether any subscriber is still registered.
func (s *Subject[T]) HasObservers() bool {
	return s.observers.Size() > 0
}

// terminate marks the subject done and returns the registered subscribers in
// subscription order. It returns nil if the subject was already done.
func (s *Subject[T]) terminate(err error) []*Subscriber[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	s.done = true
	s.err = err

	registered := make(map[uint64]*Subscriber[T], s.observers.Size())
	s.observers.Range(func(id uint64, sub *Subscriber[T]) bool {
		registered[id] = sub
		return true
	})
	s.observers.Clear()

	ids := lo.Keys(registered)
	slices.Sort(ids)
	return lo.Map(ids, func(id uint64, _ int) *Subscriber[T] {
		return registered[id]
	})
}
