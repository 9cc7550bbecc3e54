package rx

import (
	"sync"

	"github.com/petermattis/goid"
	"go.uber.org/atomic"
)

// reentrantMutex lets the goroutine holding the lock acquire it again, so an
// observer may cancel its own subscriber from inside a callback.
type reentrantMutex struct {
	mu    sync.Mutex
	owner atomic.Int64
	depth int
}

func (m *reentrantMutex) Lock() {
	id := goid.Get()
	if m.owner.Load() == id {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

func (m *reentrantMutex) Unlock() {
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
}

type nopLocker struct{}

func (nopLocker) Lock() {}

func (nopLocker) Unlock() {}
