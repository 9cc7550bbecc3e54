package rx

import (
	"context"
	"sync"
)

// Collect subscribes to src in shared mode and blocks until it terminates or
// ctx is done. On a stream error the values received so far are returned
// together with the error. When ctx is done the subscription is cancelled and
// ctx.Err() is returned.
func Collect[T any](ctx context.Context, src Observable[T]) ([]T, error) {
	var m sync.Mutex
	values := make([]T, 0)
	result := make(chan error, 1)

	sub := SubscribeShared(src, Funcs[T]{
		OnNext: func(v T) {
			m.Lock()
			defer m.Unlock()
			values = append(values, v)
		},
		OnError: func(err error) {
			result <- err
		},
		OnComplete: func() {
			result <- nil
		},
	})

	select {
	case <-ctx.Done():
		sub.Unsubscribe()
		return nil, ctx.Err()
	case err := <-result:
		m.Lock()
		defer m.Unlock()
		return values, err
	}
}

// Wait blocks until src terminates or ctx is done and returns the stream
// error, if any.
func Wait[T any](ctx context.Context, src Observable[T]) error {
	_, err := Collect(ctx, Filter(src, func(T) bool { return false }))
	return err
}
