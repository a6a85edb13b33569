package viewer

import (
	"sync"

	"photo-viewer/internal/logging"
)

// Dispatcher serializes engine events. Post never blocks on the event
// running; events execute in submission order on a single goroutine.
type Dispatcher interface {
	Post(fn func())
}

// Loop is the production dispatcher: one goroutine draining an event
// channel. All engine state lives behind it, which is why none of the
// session types carry locks.
type Loop struct {
	events chan func()
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewLoop creates and starts a dispatch loop.
func NewLoop() *Loop {
	l := &Loop{events: make(chan func(), 256)}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer l.wg.Done()
	for fn := range l.events {
		fn()
	}
}

// Post implements Dispatcher. Events posted after Stop are dropped with a
// debug log rather than panicking; this happens only during shutdown.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		logging.Debug("Dispatch loop stopped, dropping event")
		return
	}
	l.events <- fn
}

// Stop drains pending events and stops the loop.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.events)
	l.mu.Unlock()

	l.wg.Wait()
}
