// Package realtime implements the engine's notification channel: publishes
// enqueue, delivery happens in batches on a fixed-period tick.
package realtime

import (
	"fmt"
	"sync"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// Bus is the in-process event bus. Subscriptions are scoped to one dispute
// ID or to the wildcard scope. Disconnect clears everything; there is no
// replay of events missed while disconnected.
type Bus struct {
	mu        sync.Mutex
	clock     ports.Clock
	tick      time.Duration
	log       zerolog.Logger
	connected bool
	queue     []domain.RealtimeEvent
	subs      map[string]map[int]ports.EventCallback
	nextSub   int
	seq       int64
	stopTick  func()
	done      chan struct{}
}

func NewBus(clock ports.Clock, tick time.Duration, log zerolog.Logger) *Bus {
	return &Bus{
		clock: clock,
		tick:  tick,
		log:   log,
		subs:  make(map[string]map[int]ports.EventCallback),
	}
}

// Connect starts the delivery loop. Connecting twice is a no-op.
func (b *Bus) Connect() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.connected {
		return
	}

	ch, stop := b.clock.Tick(b.tick)
	done := make(chan struct{})
	b.connected = true
	b.stopTick = stop
	b.done = done

	go func() {
		for {
			select {
			case <-ch:
				b.Drain()
			case <-done:
				return
			}
		}
	}()

	b.log.Debug().Dur("tick", b.tick).Msg("event bus connected")
}

// Disconnect stops delivery and clears all subscriptions and any queued
// events.
func (b *Bus) Disconnect() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return
	}

	b.stopTick()
	close(b.done)
	b.connected = false
	b.queue = nil
	b.subs = make(map[string]map[int]ports.EventCallback)

	b.log.Debug().Msg("event bus disconnected")
}

func (b *Bus) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connected
}

// Subscribe registers a callback for one dispute's events.
func (b *Bus) Subscribe(disputeID string, cb ports.EventCallback) func() {
	return b.subscribe(disputeID, cb)
}

// SubscribeAll registers a callback for every event.
func (b *Bus) SubscribeAll(cb ports.EventCallback) func() {
	return b.subscribe(domain.WildcardScope, cb)
}

func (b *Bus) subscribe(scope string, cb ports.EventCallback) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSub++
	id := b.nextSub
	if b.subs[scope] == nil {
		b.subs[scope] = make(map[int]ports.EventCallback)
	}
	b.subs[scope][id] = cb

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if set, ok := b.subs[scope]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(b.subs, scope)
			}
		}
	}
}

// Publish enqueues an event for the next tick. Events published while
// disconnected are dropped.
func (b *Bus) Publish(eventType domain.RealtimeEventType, disputeID string, payload map[string]any, actorID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return
	}

	b.seq++
	b.queue = append(b.queue, domain.RealtimeEvent{
		ID:        fmt.Sprintf("EVT-%06d", b.seq),
		Type:      eventType,
		DisputeID: disputeID,
		Payload:   payload,
		ActorID:   actorID,
		Timestamp: b.clock.Now(),
	})
}

// Drain delivers every queued event immediately, in publish order. The
// delivery loop calls this on each tick; tests call it directly.
func (b *Bus) Drain() {
	b.mu.Lock()
	if len(b.queue) == 0 {
		b.mu.Unlock()
		return
	}
	batch := b.queue
	b.queue = nil

	type delivery struct {
		cb ports.EventCallback
		ev domain.RealtimeEvent
	}
	var deliveries []delivery
	for _, ev := range batch {
		for _, cb := range b.subs[ev.DisputeID] {
			deliveries = append(deliveries, delivery{cb, ev})
		}
		for _, cb := range b.subs[domain.WildcardScope] {
			deliveries = append(deliveries, delivery{cb, ev})
		}
	}
	b.mu.Unlock()

	for _, d := range deliveries {
		d.cb(d.ev)
	}
}
