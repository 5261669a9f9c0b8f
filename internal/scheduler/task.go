// Package scheduler runs periodic callbacks that can be cancelled through an
// owned handle.
package scheduler

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Task is a running periodic callback. The zero value is not usable; create
// one with Every.
type Task struct {
	ticker clockwork.Ticker
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// Every calls fn with the tick time once per interval until Stop is called.
// fn runs on the task's own goroutine and must not call Stop.
func Every(clock clockwork.Clock, interval time.Duration, fn func(time.Time)) *Task {
	t := &Task{
		ticker: clock.NewTicker(interval),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	go t.run(fn)
	return t
}

func (t *Task) run(fn func(time.Time)) {
	defer close(t.done)
	defer t.ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case now := <-t.ticker.Chan():
			// A tick and a stop request can be ready together; stop wins.
			select {
			case <-t.stop:
				return
			default:
			}
			fn(now)
		}
	}
}

// Stop cancels the task and waits for its goroutine to exit. After Stop
// returns the callback is never invoked again. Stop is idempotent.
func (t *Task) Stop() {
	t.once.Do(func() {
		close(t.stop)
	})
	<-t.done
}

// Done is closed once the task goroutine has exited.
func (t *Task) Done() <-chan struct{} {
	return t.done
}
