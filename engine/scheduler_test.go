package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerTicksAndStops(t *testing.T) {
	w := NewWorld(Config{Width: 10, Height: 10}, nil)
	s := NewScheduler(w, time.Millisecond, nil)

	var hooks atomic.Uint64
	s.OnTick(func(uint64) { hooks.Add(1) })

	s.Start()
	deadline := time.After(time.Second)
	for w.Tick() < 3 {
		select {
		case <-deadline:
			t.Fatal("scheduler did not reach 3 ticks in time")
		case <-time.After(time.Millisecond):
		}
	}
	s.Stop()

	stopped := w.Tick()
	assert.GreaterOrEqual(t, hooks.Load(), uint64(3), "post-step hook runs per tick")

	// No ticks after Stop returns
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, w.Tick())
}

func TestSchedulerStopIdempotent(t *testing.T) {
	w := NewWorld(Config{Width: 10, Height: 10}, nil)
	s := NewScheduler(w, time.Millisecond, nil)
	s.Start()
	s.Stop()
	s.Stop()
	s.Start() // restart after stop is a no-op, not a panic
	s.Stop()
}

func TestSchedulerDefaultInterval(t *testing.T) {
	w := NewWorld(Config{Width: 10, Height: 10}, nil)
	s := NewScheduler(w, 0, nil)
	assert.Positive(t, s.tickInterval)
}
