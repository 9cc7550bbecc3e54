package rx

// Funcs adapts callbacks to an Observer. Missing callbacks ignore the event.
type Funcs[T any] struct {
	OnNext     func(T)
	OnError    func(error)
	OnComplete func()
}

func (f Funcs[T]) Next(v T) {
	if f.OnNext != nil {
		f.OnNext(v)
	}
}

func (f Funcs[T]) Error(err error) {
	if f.OnError != nil {
		f.OnError(err)
	}
}

func (f Funcs[T]) Complete() {
	if f.OnComplete != nil {
		f.OnComplete()
	}
}

// ForEach calls f for every value of src in single-goroutine mode.
func ForEach[T any](src Observable[T], f func(T)) Subscription {
	return SubscribeLocal(src, Funcs[T]{OnNext: f})
}
