package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/steersim/parameter"
)

// Scheduler steps a World on a fixed tick interval. The loop corrects for
// timer drift by scheduling against an advancing deadline instead of
// sleeping a fixed interval; when the loop falls too far behind it resyncs
// rather than bursting catch-up ticks.
type Scheduler struct {
	world        *World
	tickInterval time.Duration
	log          *zap.Logger

	// onTick runs after each completed step, on the scheduler goroutine
	onTick func(tick uint64)

	nextDeadline time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewScheduler creates a stopped scheduler. A non-positive interval resolves
// to the default tick interval; a nil logger is replaced with a no-op one.
func NewScheduler(world *World, tickInterval time.Duration, log *zap.Logger) *Scheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.DefaultTickInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		world:        world,
		tickInterval: tickInterval,
		log:          log,
		stopChan:     make(chan struct{}),
	}
}

// OnTick installs a post-step hook, e.g. a snapshot broadcaster. Must be
// called before Start.
func (s *Scheduler) OnTick(fn func(tick uint64)) { s.onTick = fn }

// Start launches the tick loop. Repeated calls are no-ops.
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts the loop and waits for the in-flight tick to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	s.nextDeadline = time.Now().Add(s.tickInterval)
	timer := time.NewTimer(s.tickInterval)
	defer timer.Stop()

	maxBehind := time.Duration(parameter.MaxTicksBehind) * s.tickInterval

	for {
		select {
		case <-s.stopChan:
			return

		case now := <-timer.C:
			s.world.Step()
			if s.onTick != nil {
				s.onTick(s.world.Tick())
			}

			s.nextDeadline = s.nextDeadline.Add(s.tickInterval)
			if behind := now.Sub(s.nextDeadline); behind > maxBehind {
				s.log.Warn("tick deadline slipped, resyncing",
					zap.Duration("behind", behind),
					zap.Uint64("tick", s.world.Tick()))
				s.nextDeadline = now.Add(s.tickInterval)
			}
			timer.Reset(time.Until(s.nextDeadline))
		}
	}
}
