package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/deeploop/internal/config"
	"github.com/udisondev/deeploop/internal/db"
	"github.com/udisondev/deeploop/internal/engine"
	"github.com/udisondev/deeploop/internal/model"
)

const ConfigPath = "config/deeploop.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("DEEPLOOP_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))
	slog.Info("deeploop starting", "tick_ms", cfg.TickIntervalMS, "party_size", cfg.PartySize, "slot", cfg.SaveSlot)

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed))
	eng := engine.New(rng, cfg.PartySize)

	var saver engine.Saver
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		repo := db.NewSaveRepository(database)
		saver = repo

		state, err := repo.Load(ctx, cfg.SaveSlot)
		if err != nil {
			return fmt.Errorf("loading save: %w", err)
		}
		if state != nil {
			eng.LoadState(state)
		}
	}
	if eng.State() == nil {
		eng.NewGame()
	}

	interval := time.Duration(cfg.TickIntervalMS) * time.Millisecond

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting simulation")
		if err := eng.Run(gctx, interval, cfg.AutosaveTicks, saver, cfg.SaveSlot); err != nil {
			return fmt.Errorf("simulation: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		autopilot(gctx, eng, interval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run error: %w", err)
	}
	return nil
}

// autopilot makes the player-gated decisions so the simulation runs
// unattended: leave safe rooms, prestige when eligible, start over when not.
func autopilot(ctx context.Context, eng *engine.Engine, interval time.Duration) {
	ticker := time.NewTicker(interval * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			switch eng.Phase() {
			case model.PhaseSafeRoom:
				eng.ContinueExploring()
			case model.PhasePrestige:
				if res := eng.PerformPrestige(); !res.OK {
					eng.StartOver()
				}
			}
		}
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
