package rx

import (
	"sync"

	"go.uber.org/atomic"
)

// Subscriber decorates an Observer with a Subscription. Whatever the source
// does, the wrapped observer sees zero or more Next calls followed by at most
// one Error or Complete, and nothing after that or after Unsubscribe.
//
// A local subscriber must be driven from a single goroutine. A shared
// subscriber serializes delivery and close: once Unsubscribe returns on one
// goroutine, no Next is running or will run on another.
type Subscriber[T any] struct {
	observer     Observer[T]
	subscription composite
	lock         sync.Locker
	shared       bool

	// stopped is set before a terminal event is handed to the observer.
	stopped atomic.Bool
}

func NewLocalSubscriber[T any](o Observer[T]) *Subscriber[T] {
	return &Subscriber[T]{
		observer:     o,
		subscription: NewLocalSubscription(),
		lock:         nopLocker{},
	}
}

func NewSharedSubscriber[T any](o Observer[T]) *Subscriber[T] {
	return &Subscriber[T]{
		observer:     o,
		subscription: NewSharedSubscription(),
		lock:         &reentrantMutex{},
		shared:       true,
	}
}

// NewSubscriberLike creates a subscriber for o in the same mode as
// downstream. Operators use it for the subscribers they hand to upstream
// observables.
func NewSubscriberLike[U, T any](downstream *Subscriber[T], o Observer[U]) *Subscriber[U] {
	if downstream.IsShared() {
		return NewSharedSubscriber(o)
	}
	return NewLocalSubscriber(o)
}

func (s *Subscriber[T]) IsShared() bool {
	return s.shared
}

func (s *Subscriber[T]) Next(v T) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.stopped.Load() || s.subscription.IsClosed() {
		return
	}
	s.observer.Next(v)
}

func (s *Subscriber[T]) Error(err error) {
	var children []Subscription
	defer func() { releaseAll(children) }()

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.stopped.Load() || s.subscription.IsClosed() {
		log.Debugf("dropped error on closed subscriber: %v", err)
		return
	}
	s.stopped.Store(true)
	defer func() { children = s.subscription.detach() }()
	s.observer.Error(err)
}

func (s *Subscriber[T]) Complete() {
	var children []Subscription
	defer func() { releaseAll(children) }()

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.stopped.Load() || s.subscription.IsClosed() {
		log.Debug("dropped complete on closed subscriber")
		return
	}
	s.stopped.Store(true)
	defer func() { children = s.subscription.detach() }()
	s.observer.Complete()
}

// Unsubscribe cancels the stream without notifying the observer. Owned
// children are released after the delivery lock has been dropped.
//
// While a terminal event is being delivered Unsubscribe returns at once: no
// further Next can reach the observer and the terminal path releases the
// children itself.
func (s *Subscriber[T]) Unsubscribe() {
	if s.stopped.Load() {
		return
	}
	s.lock.Lock()
	children := s.subscription.detach()
	s.lock.Unlock()
	releaseAll(children)
}

func (s *Subscriber[T]) IsClosed() bool {
	return s.subscription.IsClosed()
}

func (s *Subscriber[T]) Add(child Subscription) {
	s.subscription.Add(child)
}

// ToShared switches a local subscriber to shared mode in place, lifting the
// children it owns. It must not race with delivery.
func (s *Subscriber[T]) ToShared() *Subscriber[T] {
	if s.shared {
		return s
	}
	if local, ok := s.subscription.(*LocalSubscription); ok {
		s.subscription = local.ToShared()
	}
	s.lock = &reentrantMutex{}
	s.shared = true
	return s
}

func (s *Subscriber[T]) share() Subscription {
	return s.ToShared()
}
