package rx

import (
	"errors"

	"github.com/7vars/rxcore"
)

var log = rxcore.NewLogger("rx")

var ErrNilObservable = errors.New("rx: nil observable")

// Observer receives the events of a stream: any number of Next calls followed
// by at most one of Error or Complete.
//
// Implementations are not required to guard against out-of-contract calls,
// that is the job of Subscriber.
type Observer[T any] interface {
	Next(T)
	Error(error)
	Complete()
}

// Observable starts emitting into the given subscriber and returns a handle
// that cancels the emission.
type Observable[T any] interface {
	Subscribe(*Subscriber[T]) Subscription
}

type ObservableFunc[T any] func(*Subscriber[T]) Subscription

func (f ObservableFunc[T]) Subscribe(s *Subscriber[T]) Subscription {
	return f(s)
}

// SubscribeLocal subscribes in single-goroutine mode. All events and the
// cancellation of the returned handle must happen on one goroutine.
func SubscribeLocal[T any](src Observable[T], o Observer[T]) Subscription {
	return subscribe(src, NewLocalSubscriber(o))
}

// SubscribeShared subscribes in shared mode. The returned handle may be
// cancelled from any goroutine.
func SubscribeShared[T any](src Observable[T], o Observer[T]) Subscription {
	return subscribe(src, NewSharedSubscriber(o))
}

func subscribe[T any](src Observable[T], s *Subscriber[T]) Subscription {
	if src == nil {
		s.Error(ErrNilObservable)
		return s
	}
	if sub := src.Subscribe(s); sub != nil && sub != Subscription(s) {
		s.Add(sub)
	}
	return s
}

// connect subscribes o to source through a subscriber in the same mode as
// downstream. The upstream subscriber is owned by downstream, so closing
// downstream cancels it.
func connect[U, T any](source Observable[U], downstream *Subscriber[T], o Observer[U]) *Subscriber[U] {
	upstream := NewSubscriberLike[U](downstream, o)
	downstream.Add(upstream)
	subscribe(source, upstream)
	return upstream
}
