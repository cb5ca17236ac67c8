// Package clock provides the time source used by the engine. The system
// clock backs production; the manual clock drives deterministic tests of
// debounce and tick-based delivery.
package clock

import (
	"sort"
	"sync"
	"time"
)

// System is the real time source.
type System struct{}

func NewSystem() *System { return &System{} }

func (System) Now() time.Time { return time.Now() }

func (System) After(d time.Duration) <-chan time.Time { return time.After(d) }

func (System) Tick(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Manual is a controllable time source. Time only moves when Advance is
// called; pending After waiters and tickers fire synchronously inside
// Advance, in deadline order.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*manualTimer
	tickers []*manualTicker
}

type manualTimer struct {
	deadline time.Time
	ch       chan time.Time
}

type manualTicker struct {
	period  time.Duration
	next    time.Time
	ch      chan time.Time
	stopped bool
}

// NewManual creates a manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{deadline: m.now.Add(d), ch: make(chan time.Time, 1)}
	m.timers = append(m.timers, t)
	return t.ch
}

func (m *Manual) Tick(d time.Duration) (<-chan time.Time, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Buffered so a slow consumer cannot block Advance.
	tk := &manualTicker{period: d, next: m.now.Add(d), ch: make(chan time.Time, 64)}
	m.tickers = append(m.tickers, tk)
	stop := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		tk.stopped = true
	}
	return tk.ch, stop
}

// Advance moves the clock forward by d, firing every timer and ticker whose
// deadline falls within the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	var due []*manualTimer
	remaining := m.timers[:0]
	for _, t := range m.timers {
		if !t.deadline.After(target) {
			due = append(due, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	m.timers = remaining
	sort.Slice(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })

	for _, tk := range m.tickers {
		for !tk.stopped && !tk.next.After(target) {
			select {
			case tk.ch <- tk.next:
			default:
			}
			tk.next = tk.next.Add(tk.period)
		}
	}

	m.now = target
	m.mu.Unlock()

	for _, t := range due {
		t.ch <- t.deadline
	}
}
