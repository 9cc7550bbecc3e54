package rx

import (
	"sync"

	"github.com/7vars/rxcore"
)

type switchState int

const (
	switchIdle switchState = iota
	switchActive
	switchOuterDone
	switchClosed
)

func (s switchState) String() string {
	switch s {
	case switchIdle:
		return "idle"
	case switchActive:
		return "active"
	case switchOuterDone:
		return "outer-done"
	default:
		return "closed"
	}
}

// Switch flattens an observable of observables by following only the most
// recently started inner observable. When the outer emits a new inner, the
// previous inner is unsubscribed before the new one is subscribed.
//
// The result completes once the outer and the current inner have completed.
// An error from the outer or the current inner ends the whole stream.
func Switch[T any](source Observable[Observable[T]]) Observable[T] {
	return ObservableFunc[T](func(downstream *Subscriber[T]) Subscription {
		op := &switchObserver[T]{
			downstream: downstream,
			lock:       nopLocker{},
		}
		if downstream.IsShared() {
			op.lock = &sync.Mutex{}
		}
		downstream.Add(Teardown(op.dropInner))
		connect[Observable[T]](source, downstream, op)
		return downstream
	})
}

// SwitchMap maps every value to an observable and switches to it.
func SwitchMap[T, K any](source Observable[T], f func(T) Observable[K]) Observable[K] {
	return Switch(Map(source, f))
}

type switchObserver[T any] struct {
	downstream *Subscriber[T]

	lock      sync.Locker
	inner     *Subscriber[T]
	outerDone bool
}

func (op *switchObserver[T]) state() switchState {
	op.lock.Lock()
	defer op.lock.Unlock()
	switch {
	case op.downstream.IsClosed():
		return switchClosed
	case op.outerDone:
		return switchOuterDone
	case op.inner != nil:
		return switchActive
	default:
		return switchIdle
	}
}

func (op *switchObserver[T]) Next(obs Observable[T]) {
	if obs == nil {
		op.downstream.Error(ErrNilObservable)
		return
	}

	op.lock.Lock()
	prev := op.inner
	op.inner = nil
	op.lock.Unlock()
	if prev != nil {
		prev.Unsubscribe()
	}
	log.Debugf("switch: next inner, cancelled previous: %v", prev != nil)

	in := &switchInner[T]{op: op}
	inner := NewSubscriberLike[T](op.downstream, in)
	in.self = inner

	op.lock.Lock()
	if op.downstream.IsClosed() {
		op.lock.Unlock()
		return
	}
	op.inner = inner
	op.lock.Unlock()

	if sub := obs.Subscribe(inner); sub != nil && sub != Subscription(inner) {
		inner.Add(sub)
	}
}

func (op *switchObserver[T]) Error(err error) {
	log.Debugf("switch: outer error: %v", err)
	op.downstream.Error(err)
}

func (op *switchObserver[T]) Complete() {
	op.lock.Lock()
	op.outerDone = true
	active := op.inner != nil
	op.lock.Unlock()

	if rxcore.IsDebug() {
		log.Debugf("switch: outer complete, state %s", op.state())
	}
	if !active {
		op.downstream.Complete()
	}
}

// innerComplete clears the slot if inner is still current and reports
// whether the combined stream is finished.
func (op *switchObserver[T]) innerComplete(inner *Subscriber[T]) bool {
	op.lock.Lock()
	defer op.lock.Unlock()
	if op.inner != inner {
		return false
	}
	op.inner = nil
	return op.outerDone
}

func (op *switchObserver[T]) dropInner() {
	op.lock.Lock()
	prev := op.inner
	op.inner = nil
	op.lock.Unlock()
	if prev != nil {
		prev.Unsubscribe()
	}
}

type switchInner[T any] struct {
	op   *switchObserver[T]
	self *Subscriber[T]
}

func (in *switchInner[T]) Next(v T) {
	in.op.downstream.Next(v)
}

func (in *switchInner[T]) Error(err error) {
	log.Debugf("switch: inner error: %v", err)
	in.op.downstream.Error(err)
}

func (in *switchInner[T]) Complete() {
	done := in.op.innerComplete(in.self)
	log.Debugf("switch: inner complete, finished: %v", done)
	if done {
		in.op.downstream.Complete()
	}
}
