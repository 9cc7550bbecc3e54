package rx

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/7vars/rxcore"
)

// Scheduler runs callbacks. Scheduling policy belongs to the implementation.
type Scheduler interface {
	Schedule(func())
}

type SchedulerFunc func(func())

func (f SchedulerFunc) Schedule(task func()) {
	f(task)
}

// Immediate runs every task on the calling goroutine.
var Immediate Scheduler = SchedulerFunc(func(task func()) {
	task()
})

// PoolScheduler runs tasks on goroutines, at most limit at a time. Schedule
// blocks while the pool is full. A panicking task fails the pool: Wait
// returns the panic as a RuntimeErr and tasks not yet started are skipped.
type PoolScheduler struct {
	ctx   context.Context
	group *errgroup.Group
}

// NewPoolScheduler creates a pool bounded by limit. A limit <= 0 uses the
// rx.scheduler.workers setting.
func NewPoolScheduler(ctx context.Context, limit int) *PoolScheduler {
	if limit <= 0 {
		limit = rxcore.Settings().GetIntDefault(rxcore.KeySchedulerWorkers, 8)
	}
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)
	return &PoolScheduler{
		ctx:   ctx,
		group: group,
	}
}

func (p *PoolScheduler) Schedule(task func()) {
	p.group.Go(func() (err error) {
		if err := p.ctx.Err(); err != nil {
			return err
		}
		defer func() {
			if r := recover(); r != nil {
				log.Warnf("scheduled task panicked: %v", r)
				err = rxcore.RuntimeError(r)
			}
		}()
		task()
		return nil
	})
}

// Wait blocks until every scheduled task has returned.
func (p *PoolScheduler) Wait() error {
	return p.group.Wait()
}

// SubscribeOn performs the subscription to source on sched. Events are then
// emitted on whatever goroutine source uses, so subscribe in shared mode.
func SubscribeOn[T any](source Observable[T], sched Scheduler) Observable[T] {
	return ObservableFunc[T](func(downstream *Subscriber[T]) Subscription {
		sched.Schedule(func() {
			if downstream.IsClosed() {
				return
			}
			subscribe(source, downstream)
		})
		return downstream
	})
}
