package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/smasonuk/bounce3d"
	"github.com/smasonuk/bounce3d/config"
	"github.com/smasonuk/bounce3d/render"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to YAML settings")
	headless := flag.Bool("headless", false, "step the simulation without a window")
	hz := flag.Int("hz", 60, "headless tick rate")
	ticks := flag.Uint64("ticks", 0, "stop headless after this many ticks (0 runs until interrupted)")
	spawn := flag.Int("spawn", 1, "headless: number of batches to spawn before the first tick")
	seed := flag.Int64("seed", 0, "random seed (overrides the config; 0 keeps it)")
	exportPLY := flag.String("export-ply", "", "write the sphere mesh to this PLY file and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}

	w, err := bounce3d.NewWorldFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *exportPLY != "" {
		if err := bounce3d.SavePLY(*exportPLY, w.Mesh.Indexed()); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s", *exportPLY)
		return
	}

	stats := bounce3d.NewFrameStats(cfg.Stats.Interval)

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		for i := 0; i < *spawn; i++ {
			w.HandleEvent(bounce3d.EventSpawn)
		}

		err := bounce3d.RunHeadless(ctx, w, bounce3d.HeadlessConfig{
			Hz:     *hz,
			Ticks:  *ticks,
			Stats:  stats,
			Aspect: float64(cfg.Window.Width) / float64(cfg.Window.Height),
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		log.Printf("Stopped after %d ticks with %d spheres (%d outside the box)", w.Ticks(), w.Len(), w.Escaped())
		return
	}

	game, err := render.NewGame(w, cfg.Window.Width, cfg.Window.Height, stats)
	if err != nil {
		log.Fatal(err)
	}
	if err := render.Run(game, cfg.Window.Title); err != nil {
		log.Fatal(err)
	}
}
