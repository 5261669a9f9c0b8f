// Package session drives one display session: it recomputes the year
// statistics and the displayed time once per interval and hands the values
// to subscribed observers until the session is closed.
package session

import (
	"sync"
	"time"

	"year-progress/internal/logger"
	"year-progress/internal/progress"
	"year-progress/internal/scheduler"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the refresh period of both session tasks.
const DefaultInterval = time.Second

// Observer receives computed values. Methods are called from the session's
// task goroutines and must be safe for concurrent use.
type Observer interface {
	StatsChanged(stats progress.Stats)
	ClockChanged(now time.Time)
}

// Options configures a Session.
type Options struct {
	Clock    clockwork.Clock
	Policy   progress.Policy
	Interval time.Duration
	Logger   logger.Logger
}

type Session struct {
	clock    clockwork.Clock
	policy   progress.Policy
	interval time.Duration
	logger   logger.Logger

	// publish serialises observer calls and guards closed.
	publish sync.Mutex
	closed  bool

	mu        sync.RWMutex
	observers map[int]Observer
	nextID    int
	last      progress.Stats
	started   bool

	tasks     scheduler.Group
	startOnce sync.Once
	closeOnce sync.Once
}

// New creates a stopped session. Missing options fall back to the real
// clock, the current-year policy, a one second interval and a discarding
// logger.
func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Policy == nil {
		opts.Policy = progress.CurrentYear{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}

	return &Session{
		clock:     opts.Clock,
		policy:    opts.Policy,
		interval:  opts.Interval,
		logger:    opts.Logger,
		observers: make(map[int]Observer),
	}
}

// Subscribe registers o and returns a function that removes it. A subscriber
// added to a running session immediately receives the latest statistics,
// before any later tick reaches it.
func (s *Session) Subscribe(o Observer) (unsubscribe func()) {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = o
	started, last := s.started, s.last
	s.mu.Unlock()

	if started && !s.closed {
		o.StatsChanged(last)
		o.ClockChanged(last.Now)
	}

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Start publishes a first computation right away and then starts the
// statistics and clock tasks. Calling Start more than once, or after Close,
// has no effect.
func (s *Session) Start() {
	s.startOnce.Do(func() {
		now := s.clock.Now()
		if !s.publishStats(now) {
			return
		}
		s.refreshClock(now)

		s.tasks.Add(scheduler.Every(s.clock, s.interval, s.refreshStats))
		s.tasks.Add(scheduler.Every(s.clock, s.interval, s.refreshClock))

		s.logger.Info("Session", "started", map[string]interface{}{
			"interval": s.interval.String(),
			"year":     s.Snapshot().Interval.Year(),
			"days":     s.Snapshot().Interval.Length(),
		})
	})
}

// Close stops both tasks. No observer is called after Close returns.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.publish.Lock()
		s.closed = true
		s.publish.Unlock()

		s.tasks.Stop()
		s.logger.Info("Session", "closed", nil)
	})
}

// Shutdown implements shutdown.Shutdownable.
func (s *Session) Shutdown() {
	s.Close()
}

// Snapshot returns the most recently published statistics.
func (s *Session) Snapshot() progress.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *Session) refreshStats(now time.Time) {
	s.publishStats(now)
}

// publishStats reports false once the session is closed.
func (s *Session) publishStats(now time.Time) bool {
	stats := progress.At(s.policy, now)

	s.publish.Lock()
	defer s.publish.Unlock()
	if s.closed {
		return false
	}

	s.mu.Lock()
	if s.started && stats.Interval.Year() != s.last.Interval.Year() {
		s.logger.Info("Session", "tracked year changed", map[string]interface{}{
			"from": s.last.Interval.Year(),
			"to":   stats.Interval.Year(),
			"days": stats.Interval.Length(),
		})
	}
	s.last = stats
	s.started = true
	s.mu.Unlock()

	for _, o := range s.snapshotObservers() {
		o.StatsChanged(stats)
	}
	return true
}

func (s *Session) refreshClock(now time.Time) {
	s.publish.Lock()
	defer s.publish.Unlock()
	if s.closed {
		return
	}

	for _, o := range s.snapshotObservers() {
		o.ClockChanged(now)
	}
}

func (s *Session) snapshotObservers() []Observer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	observers := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	return observers
}

// Funcs adapts plain functions to Observer. Nil fields are ignored.
type Funcs struct {
	OnStats func(progress.Stats)
	OnClock func(time.Time)
}

func (f Funcs) StatsChanged(stats progress.Stats) {
	if f.OnStats != nil {
		f.OnStats(stats)
	}
}

func (f Funcs) ClockChanged(now time.Time) {
	if f.OnClock != nil {
		f.OnClock(now)
	}
}
