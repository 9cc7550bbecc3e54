package rx

import "fmt"

type Kind int

const (
	KindNext Kind = iota
	KindError
	KindComplete
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindError:
		return "error"
	case KindComplete:
		return "complete"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Notification is a stream event as a value.
type Notification[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

func NextOf[T any](v T) Notification[T] {
	return Notification[T]{Kind: KindNext, Value: v}
}

func ErrorOf[T any](err error) Notification[T] {
	return Notification[T]{Kind: KindError, Err: err}
}

func CompleteOf[T any]() Notification[T] {
	return Notification[T]{Kind: KindComplete}
}

func (n Notification[T]) IsTerminal() bool {
	return n.Kind != KindNext
}

// Accept replays the notification on o.
func (n Notification[T]) Accept(o Observer[T]) {
	switch n.Kind {
	case KindNext:
		o.Next(n.Value)
	case KindError:
		o.Error(n.Err)
	case KindComplete:
		o.Complete()
	}
}

func (n Notification[T]) String() string {
	switch n.Kind {
	case KindNext:
		return fmt.Sprintf("next(%v)", n.Value)
	case KindError:
		return fmt.Sprintf("error(%v)", n.Err)
	default:
		return n.Kind.String()
	}
}

// Materialize emits every event of source, terminal ones included, as a
// Notification and then completes.
func Materialize[T any](source Observable[T]) Observable[Notification[T]] {
	return ObservableFunc[Notification[T]](func(downstream *Subscriber[Notification[T]]) Subscription {
		connect[T](source, downstream, Funcs[T]{
			OnNext: func(v T) {
				downstream.Next(NextOf(v))
			},
			OnError: func(err error) {
				downstream.Next(ErrorOf[T](err))
				downstream.Complete()
			},
			OnComplete: func() {
				downstream.Next(CompleteOf[T]())
				downstream.Complete()
			},
		})
		return downstream
	})
}

// Dematerialize turns notifications back into events.
func Dematerialize[T any](source Observable[Notification[T]]) Observable[T] {
	return ObservableFunc[T](func(downstream *Subscriber[T]) Subscription {
		connect[Notification[T]](source, downstream, Funcs[Notification[T]]{
			OnNext:     func(n Notification[T]) { n.Accept(downstream) },
			OnError:    downstream.Error,
			OnComplete: downstream.Complete,
		})
		return downstream
	})
}
