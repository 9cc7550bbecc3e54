package rx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestLocalSubscriptionUnsubscribeTwice(t *testing.T) {
	child := &counter{}
	sub := NewLocalSubscription()
	sub.Add(child)

	assert.False(t, sub.IsClosed())
	sub.Unsubscribe()
	assert.True(t, sub.IsClosed())
	assert.NotPanics(t, sub.Unsubscribe)
	assert.True(t, sub.IsClosed())
	assert.Equal(t, int32(1), child.releases.Load())
}

func TestSharedSubscriptionUnsubscribeTwice(t *testing.T) {
	child := &counter{}
	sub := NewSharedSubscription()
	sub.Add(child)

	sub.Unsubscribe()
	assert.NotPanics(t, sub.Unsubscribe)
	assert.True(t, sub.IsClosed())
	assert.Equal(t, int32(1), child.releases.Load())
}

func TestSubscriptionReleasesChildrenInOrder(t *testing.T) {
	order := make([]int, 0)
	sub := NewLocalSubscription()
	for i := 0; i < 3; i++ {
		i := i
		sub.Add(Teardown(func() { order = append(order, i) }))
	}
	nested := NewLocalSubscription()
	nested.Add(Teardown(func() { order = append(order, 99) }))
	sub.Add(nested)

	sub.Unsubscribe()
	assert.Equal(t, []int{0, 1, 2, 99}, order)
	assert.True(t, nested.IsClosed())
}

func TestSubscriptionAddAfterClose(t *testing.T) {
	for name, sub := range map[string]CompositeSubscription{
		"local":  NewLocalSubscription(),
		"shared": NewSharedSubscription(),
	} {
		t.Run(name, func(t *testing.T) {
			sub.Unsubscribe()
			child := NewLocalSubscription()
			sub.Add(child)
			assert.True(t, child.IsClosed())
			assert.NotPanics(t, func() { sub.Add(nil) })
		})
	}
}

func TestSubscriptionPanickingChildDoesNotSkipOthers(t *testing.T) {
	released := atomic.NewInt32(0)
	sub := NewSharedSubscription()
	sub.Add(Teardown(func() { released.Inc() }))
	sub.Add(Teardown(func() { panic("boom") }))
	sub.Add(Teardown(func() { released.Inc() }))

	assert.NotPanics(t, sub.Unsubscribe)
	assert.Equal(t, int32(2), released.Load())
}

func TestLocalSubscriptionToShared(t *testing.T) {
	released := atomic.NewInt32(0)
	child := NewLocalSubscription()
	child.Add(Teardown(func() { released.Inc() }))
	subscriber := NewLocalSubscriber[int](Funcs[int]{})

	local := NewLocalSubscription()
	local.Add(child)
	local.Add(subscriber)

	shared := local.ToShared()
	require.Len(t, shared.children, 2)
	assert.IsType(t, &SharedSubscription{}, shared.children[0])
	assert.True(t, subscriber.IsShared())

	shared.Unsubscribe()
	assert.Equal(t, int32(1), released.Load())
	assert.True(t, subscriber.IsClosed())
}

func TestLocalSubscriptionToSharedKeepsClosedState(t *testing.T) {
	local := NewLocalSubscription()
	local.Unsubscribe()
	assert.True(t, local.ToShared().IsClosed())
}

func TestTeardownRunsOnce(t *testing.T) {
	calls := atomic.NewInt32(0)
	td := Teardown(func() { calls.Inc() })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			td.Unsubscribe()
		}()
	}
	wg.Wait()

	assert.True(t, td.IsClosed())
	assert.Equal(t, int32(1), calls.Load())
}

func TestSharedSubscriptionConcurrentUnsubscribe(t *testing.T) {
	children := make([]*counter, 50)
	sub := NewSharedSubscription()
	for i := range children {
		children[i] = &counter{}
		sub.Add(children[i])
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub.Unsubscribe()
		}()
	}
	wg.Wait()

	for i, child := range children {
		assert.Equal(t, int32(1), child.releases.Load(), "child %d", i)
	}
}
