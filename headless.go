package bounce3d

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls RunHeadless.
type HeadlessConfig struct {
	// Hz is the tick rate. Defaults to 60.
	Hz int
	// Ticks stops the run after this many steps; 0 runs until ctx ends.
	Ticks uint64
	// Stats, when set, is ticked after every step.
	Stats *FrameStats
	// Renderer, when set, receives a frame after every step.
	Renderer Renderer
	Aspect   float64
}

// RunHeadless steps w on a ticker without a window. It returns nil once the
// tick budget is spent, ctx.Err() when ctx ends first, or the first
// renderer error.
func RunHeadless(ctx context.Context, w *World, cfg HeadlessConfig) error {
	if cfg.Hz == 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Aspect <= 0 {
		cfg.Aspect = 1
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := w.Tick(cfg.Renderer, cfg.Aspect); err != nil {
				return err
			}
			if cfg.Stats != nil {
				cfg.Stats.Tick(w.Len())
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
