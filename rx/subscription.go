package rx

import (
	"sync"

	"go.uber.org/atomic"
)

// Subscription represents whether a stream is still active.
type Subscription interface {
	// Unsubscribe closes the subscription and releases everything it owns.
	// Calling it again is a no-op.
	Unsubscribe()
	IsClosed() bool
}

// CompositeSubscription owns child resources that are released when it closes.
type CompositeSubscription interface {
	Subscription
	// Add registers a child. Adding to a closed subscription releases the
	// child immediately.
	Add(Subscription)
}

type composite interface {
	CompositeSubscription
	// detach marks the subscription closed and hands over the children that
	// still need releasing. It returns nil when already closed.
	detach() []Subscription
}

type sharer interface {
	share() Subscription
}

// LocalSubscription is confined to a single goroutine and does no locking.
type LocalSubscription struct {
	closed   bool
	children []Subscription
}

func NewLocalSubscription() *LocalSubscription {
	return &LocalSubscription{}
}

func (s *LocalSubscription) IsClosed() bool {
	return s.closed
}

func (s *LocalSubscription) Add(child Subscription) {
	if child == nil {
		return
	}
	if s.closed {
		release(child)
		return
	}
	s.children = append(s.children, child)
}

func (s *LocalSubscription) Unsubscribe() {
	releaseAll(s.detach())
}

func (s *LocalSubscription) detach() []Subscription {
	if s.closed {
		return nil
	}
	s.closed = true
	children := s.children
	s.children = nil
	return children
}

// ToShared lifts the subscription into a SharedSubscription. Owned local
// subscriptions and subscribers are lifted the same way.
func (s *LocalSubscription) ToShared() *SharedSubscription {
	shared := &SharedSubscription{
		closed:   s.closed,
		children: make([]Subscription, 0, len(s.children)),
	}
	for _, child := range s.children {
		shared.children = append(shared.children, lift(child))
	}
	return shared
}

func (s *LocalSubscription) share() Subscription {
	return s.ToShared()
}

// SharedSubscription may be closed and queried from any goroutine.
type SharedSubscription struct {
	mu       sync.Mutex
	closed   bool
	children []Subscription
}

func NewSharedSubscription() *SharedSubscription {
	return &SharedSubscription{}
}

func (s *SharedSubscription) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *SharedSubscription) Add(child Subscription) {
	if child == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		release(child)
		return
	}
	s.children = append(s.children, child)
	s.mu.Unlock()
}

func (s *SharedSubscription) Unsubscribe() {
	releaseAll(s.detach())
}

func (s *SharedSubscription) detach() []Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	children := s.children
	s.children = nil
	return children
}

type teardown struct {
	closed atomic.Bool
	f      func()
}

// Teardown returns a subscription that runs f exactly once when closed.
func Teardown(f func()) Subscription {
	return &teardown{f: f}
}

func (t *teardown) Unsubscribe() {
	if t.closed.CompareAndSwap(false, true) && t.f != nil {
		t.f()
	}
}

func (t *teardown) IsClosed() bool {
	return t.closed.Load()
}

func lift(s Subscription) Subscription {
	if sh, ok := s.(sharer); ok {
		return sh.share()
	}
	return s
}

func release(child Subscription) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("teardown of %T panicked: %v", child, r)
		}
	}()
	child.Unsubscribe()
}

func releaseAll(children []Subscription) {
	for _, child := range children {
		release(child)
	}
}
