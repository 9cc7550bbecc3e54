package rx

func Map[T, K any](source Observable[T], f func(T) K) Observable[K] {
	return ObservableFunc[K](func(downstream *Subscriber[K]) Subscription {
		connect[T](source, downstream, Funcs[T]{
			OnNext:     func(v T) { downstream.Next(f(v)) },
			OnError:    downstream.Error,
			OnComplete: downstream.Complete,
		})
		return downstream
	})
}

func Filter[T any](source Observable[T], f func(T) bool) Observable[T] {
	return ObservableFunc[T](func(downstream *Subscriber[T]) Subscription {
		connect[T](source, downstream, Funcs[T]{
			OnNext: func(v T) {
				if f(v) {
					downstream.Next(v)
				}
			},
			OnError:    downstream.Error,
			OnComplete: downstream.Complete,
		})
		return downstream
	})
}
