package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/trailfollow/internal/ai"
	"github.com/udisondev/trailfollow/internal/config"
	"github.com/udisondev/trailfollow/internal/trail"
	"github.com/udisondev/trailfollow/internal/world"
)

const ConfigPath = "config/trailsim.yaml"

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("TRAILSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.SetTickTrace(logLevel == slog.LevelDebug)

	slog.Info("trailsim starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"tick_interval", cfg.TickInterval,
		"record_max_length", cfg.RecordMaxLength)

	sim, err := build(cfg)
	if err != nil {
		return fmt.Errorf("building simulation: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if err := sim.runLoops(ctx, sigCh); err != nil {
		return err
	}

	sim.report()
	return nil
}

// runLoops runs the tick manager and the signal watcher in one group.
// A signal stops the ticks, and the tick manager finishing (tick limit or
// Stop) releases the watcher.
func (s *simulation) runLoops(ctx context.Context, sigCh <-chan os.Signal) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if err := s.ticks.Start(gctx); err != nil && gctx.Err() == nil {
			return fmt.Errorf("tick manager: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-sigCh:
			slog.Info("shutting down", "signal", sig)
			s.ticks.Stop()
		case <-gctx.Done():
		}
		return nil
	})

	return g.Wait()
}

// simulation is everything run() wires together.
type simulation struct {
	world    *world.World
	recorder *trail.Recorder
	ticks    *ai.TickManager
	trails   []*ai.TrailAI
}

func build(cfg config.Simulation) (*simulation, error) {
	w := world.New()
	for _, m := range cfg.Maps {
		grid, err := world.ParseGrid(m.ID, m.Rows)
		if err != nil {
			return nil, fmt.Errorf("parsing map: %w", err)
		}
		w.AddGrid(grid)
	}

	rec := trail.NewRecorder(cfg.RecordMaxLength)
	leader, err := w.SpawnLeader(cfg.Leader.Name, cfg.Leader.MapID, cfg.Leader.X, cfg.Leader.Y, rec)
	if err != nil {
		return nil, fmt.Errorf("spawning leader: %w", err)
	}

	route, err := buildRoute(cfg.Leader.Route)
	if err != nil {
		return nil, fmt.Errorf("leader route: %w", err)
	}

	mgr := ai.NewTickManager(cfg.TickInterval)
	mgr.SetMaxTicks(cfg.MaxTicks)
	mgr.Register(leader.ObjectID(), ai.NewLeaderAI(leader, route, cfg.Leader.Loop))

	sim := &simulation{world: w, recorder: rec, ticks: mgr}
	for _, fc := range cfg.Followers {
		ch, err := w.Spawn(fc.Name, fc.MapID, fc.X, fc.Y)
		if err != nil {
			return nil, fmt.Errorf("spawning follower: %w", err)
		}
		follower := trail.NewFollower(ch, rec)
		if fc.WatchFromStart {
			// Before the first tick, so the leader's first move is recorded
			follower.Watch()
		}
		controller := ai.NewTrailAI(fc.Name, follower, fc.StartDelay, fc.WatchFromStart)
		mgr.Register(ch.ObjectID(), controller)
		sim.trails = append(sim.trails, controller)
	}

	slog.Info("simulation ready",
		"maps", len(cfg.Maps),
		"leader", leader.Name(),
		"followers", len(sim.trails),
		"route", len(route))
	return sim, nil
}

func (s *simulation) report() {
	slog.Info("trail",
		"recording", s.recorder.Recording(),
		"session", s.recorder.Session(),
		"length", s.recorder.Len(),
		"dropped", s.recorder.Dropped())

	for _, c := range s.world.Characters() {
		slog.Info("character",
			"name", c.Name(),
			"mapID", c.MapID(),
			"x", c.Location().X,
			"y", c.Location().Y,
			"facing", c.Facing())
	}
	for _, t := range s.trails {
		cursor, ok := t.Follower().Cursor()
		slog.Info("follower",
			"state", t.Follower().State(),
			"cursor", cursor,
			"replaying", ok)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
