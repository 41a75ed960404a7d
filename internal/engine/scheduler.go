package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/deeploop/internal/model"
)

// Saver persists run states. Satisfied by db.SaveRepository; nil disables
// autosave.
type Saver interface {
	Store(ctx context.Context, slot string, state *model.State) error
}

// Run drives the simulation on a fixed-interval ticker until ctx is
// cancelled. Every autosaveTicks processed ticks the state is snapshotted
// and handed to the saver; a final save runs on shutdown. Autosave
// failures are logged, never fatal: the run keeps going.
func (e *Engine) Run(ctx context.Context, interval time.Duration, autosaveTicks int, saver Saver, slot string) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			if saver != nil {
				if err := e.save(context.WithoutCancel(ctx), saver, slot); err != nil {
					return fmt.Errorf("final save: %w", err)
				}
			}
			return nil
		case <-ticker.C:
			e.Tick()
			ticks++
			if saver != nil && autosaveTicks > 0 && ticks%autosaveTicks == 0 {
				if err := e.save(ctx, saver, slot); err != nil {
					slog.Error("autosave failed", "error", err)
				}
			}
		}
	}
}

func (e *Engine) save(ctx context.Context, saver Saver, slot string) error {
	snap := e.Snapshot()
	if err := saver.Store(ctx, slot, snap); err != nil {
		return err
	}
	slog.Debug("state saved", "slot", slot, "tick", snap.TickCount)
	return nil
}
