// SPDX-License-Identifier: EPL-2.0

// Package dispatch runs callbacks on a single dedicated goroutine, the
// equivalent of a UI message thread for code that must not touch shared
// state concurrently.
package dispatch

import (
	"context"
	"sync"
)

// Dispatcher queues f for asynchronous execution. It reports false when f
// was not accepted.
type Dispatcher interface {
	CallAsync(f func()) bool
}

// Loop executes queued callbacks in order on the goroutine running Run.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop returns a Loop buffering up to size pending callbacks. CallAsync
// blocks while the buffer is full.
func NewLoop(size int) *Loop {
	return &Loop{
		queue: make(chan func(), max(size, 1)),
		done:  make(chan struct{}),
	}
}

// Run executes callbacks until ctx is cancelled. Callbacks still queued at
// that point are dropped. Run must be called at most once.
func (l *Loop) Run(ctx context.Context) {
	defer l.once.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return
		case f := <-l.queue:
			f()
		}
	}
}

// CallAsync queues f. It returns false once Run has returned. A nil Loop
// runs f inline.
func (l *Loop) CallAsync(f func()) bool {
	if l == nil {
		f()
		return true
	}

	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.queue <- f:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

// CallOnMessageThreadIfNotNull hands f to d when there is one and calls it
// inline otherwise.
func CallOnMessageThreadIfNotNull(d Dispatcher, f func()) {
	if d == nil {
		f()
		return
	}

	d.CallAsync(f)
}
