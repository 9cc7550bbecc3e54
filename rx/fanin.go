package rx

import (
	"sync"

	"github.com/samber/lo"
)

// Merge emits the values of all sources as they arrive. It completes when
// every source has completed and fails with the first error. A nil source
// fails the merge with ErrNilObservable before anything is subscribed.
func Merge[T any](sources ...Observable[T]) Observable[T] {
	return ObservableFunc[T](func(downstream *Subscriber[T]) Subscription {
		if len(sources) == 0 {
			downstream.Complete()
			return downstream
		}
		if lo.SomeBy(sources, func(src Observable[T]) bool { return src == nil }) {
			downstream.Error(ErrNilObservable)
			return downstream
		}

		m := &merge[T]{
			downstream: downstream,
			active:     len(sources),
			lock:       nopLocker{},
		}
		if downstream.IsShared() {
			m.lock = &sync.Mutex{}
		}

		for _, src := range sources {
			if downstream.IsClosed() {
				break
			}
			connect[T](src, downstream, Funcs[T]{
				OnNext:     downstream.Next,
				OnError:    downstream.Error,
				OnComplete: m.complete,
			})
		}
		return downstream
	})
}

type merge[T any] struct {
	downstream *Subscriber[T]

	lock   sync.Locker
	active int
}

func (m *merge[T]) complete() {
	m.lock.Lock()
	m.active--
	done := m.active == 0
	m.lock.Unlock()
	if done {
		m.downstream.Complete()
	}
}
