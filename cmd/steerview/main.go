// Command steerview renders a scenario in the terminal. The mouse acts as
// the world pointer, so pointer-following agents chase the cursor. Space
// pauses, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/steersim/audio"
	"github.com/lixenwraith/steersim/engine"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario YAML file (required)")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "usage: steerview -scenario file.yaml")
		os.Exit(2)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	scenario, err := engine.LoadScenarioFile(*scenarioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	v, err := newViewer(scenario, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer v.cleanup()

	v.run(scenario.TickInterval())
}

type viewer struct {
	screen  tcell.Screen
	world   *engine.World
	pointer *engine.TrackedPointer
	sound   *audio.Player
	log     *zap.Logger

	paused bool

	// captured tracks which agents already triggered the capture cue
	captured map[uint64]bool
}

func newViewer(scenario *engine.Scenario, log *zap.Logger) (*viewer, error) {
	world, err := scenario.Build(log)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	v := &viewer{
		screen:   screen,
		world:    world,
		pointer:  engine.NewTrackedPointer(false),
		sound:    audio.NewPlayer(),
		log:      log,
		captured: make(map[uint64]bool),
	}
	world.SetPointerSource(v.pointer)

	// Sound is optional; the viewer runs silent without a device
	if err := v.sound.Initialize(); err != nil {
		log.Warn("audio unavailable", zap.Error(err))
	}

	return v, nil
}

func (v *viewer) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !v.paused {
				v.world.Step()
				v.checkCaptures()
			}
			v.draw()
		}
	}
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			v.paused = !v.paused
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		v.pointer.Move(v.cellToWorld(x, y))

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) cleanup() {
	v.sound.Cleanup()
	v.screen.Fini()
}
