// Package submit stands in for the remote signup endpoint. There is no
// real network I/O anywhere behind it; the simulator resolves after a
// fixed delay with an outcome drawn from an injectable source, so tests
// can force either branch deterministically while the default runtime
// behavior stays randomized.
package submit

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"signupform/internal/form"
)

// ErrRejected is the simulated failure outcome. The user-facing message
// shown for it comes from configuration, not from this error.
var ErrRejected = errors.New("signup rejected")

// Submitter is the boundary the navigation layer talks to. A real client
// would live behind the same interface.
type Submitter interface {
	// Submit blocks for the duration of the simulated round trip.
	// It returns nil on acceptance, ErrRejected on the simulated
	// failure, or the context's error if cancelled first.
	Submit(ctx context.Context, data form.Data) error
}

// Simulator resolves each submission after a fixed delay.
type Simulator struct {
	delay   time.Duration
	outcome func() bool
}

// NewSimulator builds a simulator. A nil outcome source gets the default
// time-seeded coin flip.
func NewSimulator(delay time.Duration, outcome func() bool) *Simulator {
	if outcome == nil {
		outcome = RandomOutcome(0)
	}
	return &Simulator{delay: delay, outcome: outcome}
}

// RandomOutcome returns a source with roughly even odds. seed 0 means
// time-seeded; any other value makes the sequence reproducible.
func RandomOutcome(seed int64) func() bool {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return func() bool { return rng.Intn(2) == 0 }
}

// FixedOutcome always resolves the same way. Test helper.
func FixedOutcome(ok bool) func() bool {
	return func() bool { return ok }
}

func (s *Simulator) Submit(ctx context.Context, _ form.Data) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	if s.outcome() {
		return nil
	}
	return ErrRejected
}
