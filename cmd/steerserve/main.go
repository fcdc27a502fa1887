// Command steerserve runs a scenario headless and publishes per-tick world
// snapshots over a websocket at /ws.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/steersim/engine"
	"github.com/lixenwraith/steersim/stream"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario YAML file (required)")
	addr := flag.String("addr", ":8080", "listen address")
	dev := flag.Bool("dev", false, "development logging")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "usage: steerserve -scenario file.yaml [-addr :8080]")
		os.Exit(2)
	}

	log, err := buildLogger(*dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*scenarioPath, *addr, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func buildLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(scenarioPath, addr string, log *zap.Logger) error {
	scenario, err := engine.LoadScenarioFile(scenarioPath)
	if err != nil {
		return err
	}
	world, err := scenario.Build(log)
	if err != nil {
		return err
	}

	broadcaster := stream.NewServer(log)
	defer broadcaster.Close()

	scheduler := engine.NewScheduler(world, scenario.TickInterval(), log)
	scheduler.OnTick(func(uint64) {
		if broadcaster.ClientCount() > 0 {
			broadcaster.Broadcast(stream.Capture(world))
		}
	})

	mux := http.NewServeMux()
	mux.Handle("/ws", broadcaster)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, "ok tick=%d\n", world.Tick())
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	errChan := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		errChan <- srv.ListenAndServe()
	}()

	scheduler.Start()
	defer scheduler.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
