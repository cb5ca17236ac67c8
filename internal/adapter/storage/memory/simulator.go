// Package memory implements the engine's storage ports on in-process maps,
// with configurable latency and transient-failure injection so the retry
// and conflict paths are exercised without external infrastructure.
package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"
)

// Simulator injects artificial latency and transient failures. With
// deterministic=true it is a no-op: zero latency, zero failures.
type Simulator struct {
	mu            sync.Mutex
	rng           *rand.Rand
	latencyMin    time.Duration
	latencyMax    time.Duration
	failureRate   float64
	deterministic bool
	injector      ports.FaultInjector
}

// NewSimulator creates a simulator. failureRate is the probability in
// [0, 1] that a fallible operation returns a transient error; the
// simulator's own random source acts as the fault injector.
func NewSimulator(latencyMin, latencyMax time.Duration, failureRate float64, deterministic bool) *Simulator {
	s := &Simulator{
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		latencyMin:    latencyMin,
		latencyMax:    latencyMax,
		failureRate:   failureRate,
		deterministic: deterministic,
	}
	s.injector = s
	return s
}

// NewSimulatorWithInjector delegates every fault decision to inj. Latency
// still applies; use zero bounds for instant operations.
func NewSimulatorWithInjector(latencyMin, latencyMax time.Duration, inj ports.FaultInjector) *Simulator {
	s := NewSimulator(latencyMin, latencyMax, 0, false)
	s.injector = inj
	return s
}

// NewDeterministicSimulator is the test configuration: instant, infallible.
func NewDeterministicSimulator() *Simulator {
	return NewSimulator(0, 0, 0, true)
}

// Delay blocks for a random duration in [latencyMin, latencyMax], honoring
// context cancellation.
func (s *Simulator) Delay(ctx context.Context) error {
	if s.deterministic || s.latencyMax <= 0 {
		return ctx.Err()
	}

	s.mu.Lock()
	d := s.latencyMin
	if span := s.latencyMax - s.latencyMin; span > 0 {
		d += time.Duration(s.rng.Int63n(int64(span)))
	}
	s.mu.Unlock()

	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ShouldFail reports whether the next fallible operation fails. Implements
// the fault injector port.
func (s *Simulator) ShouldFail() bool {
	if s.deterministic || s.failureRate <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < s.failureRate
}

// run applies latency and, when fallible, a possible transient failure for
// the named operation.
func (s *Simulator) run(ctx context.Context, op string, fallible bool) error {
	if err := s.Delay(ctx); err != nil {
		return err
	}
	if fallible && s.injector.ShouldFail() {
		return apperror.ErrTransient(op)
	}
	return nil
}
