package rx

import "github.com/7vars/rxcore"

// Create builds an observable from a producer. The producer drives the
// subscriber directly; a panic inside it is delivered as a RuntimeErr.
func Create[T any](produce func(*Subscriber[T])) Observable[T] {
	return ObservableFunc[T](func(s *Subscriber[T]) (sub Subscription) {
		sub = s
		defer func() {
			if r := recover(); r != nil {
				log.Warnf("producer panicked: %v", r)
				s.Error(rxcore.RuntimeError(r))
			}
		}()
		produce(s)
		return
	})
}

func Of[T any](items ...T) Observable[T] {
	return FromSlice(items)
}

// FromSlice emits the items in order and completes. Emission stops as soon as
// the subscriber is closed.
func FromSlice[T any](items []T) Observable[T] {
	return ObservableFunc[T](func(s *Subscriber[T]) Subscription {
		for _, item := range items {
			if s.IsClosed() {
				return s
			}
			s.Next(item)
		}
		s.Complete()
		return s
	})
}

func Empty[T any]() Observable[T] {
	return ObservableFunc[T](func(s *Subscriber[T]) Subscription {
		s.Complete()
		return s
	})
}

// Never emits nothing and never terminates.
func Never[T any]() Observable[T] {
	return ObservableFunc[T](func(s *Subscriber[T]) Subscription {
		return s
	})
}

func Throw[T any](err error) Observable[T] {
	return ObservableFunc[T](func(s *Subscriber[T]) Subscription {
		s.Error(err)
		return s
	})
}

// FromChan emits the values received from ch on its own goroutine and
// completes when ch is closed. Subscribe it in shared mode.
func FromChan[T any](ch <-chan T) Observable[T] {
	return ObservableFunc[T](func(s *Subscriber[T]) Subscription {
		done := make(chan struct{})
		s.Add(Teardown(func() { close(done) }))
		go func() {
			for {
				select {
				case <-done:
					return
				case v, open := <-ch:
					if !open {
						s.Complete()
						return
					}
					s.Next(v)
				}
			}
		}()
		return s
	})
}
