// Command flock runs the simulation without a window, for benchmarking.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/go-echarts/statsview"
	statsviewer "github.com/go-echarts/statsview/viewer"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file")
	schemaFile := flag.String("schema", "", "JSON schema overriding the embedded one")
	ticks := flag.Int("ticks", 600, "number of ticks to run, 0 runs until interrupted")
	presetEvery := flag.Int("preset-every", 0, "cycle to the next preset every N ticks, 0 disables")
	statsAddr := flag.String("statsview", "", "serve runtime charts on this address, e.g. localhost:18066")
	flag.Parse()

	var logger golog.Logger = golog.DefaultLogger

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile, *schemaFile); err != nil {
			log.Fatal(err)
		}
	}

	if *statsAddr != "" {
		// set configurations before calling `statsview.New()` method
		statsviewer.SetConfiguration(statsviewer.WithTheme(statsviewer.ThemeWesteros), statsviewer.WithAddr(*statsAddr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	system, err := actor.NewActorSystem("Flock3D",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(context.Background())

	pid, err := system.Spawn(ctx, "flock", simulation.NewFlockActor(nil, cfg))
	if err != nil {
		log.Fatal(err)
	}

	var pace <-chan time.Time
	if cfg.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
		defer ticker.Stop()
		pace = ticker.C
	}

	preset := 0
	for i, p := range cfg.Presets {
		if p.Name == cfg.ActivePreset {
			preset = i
		}
	}
	for n := 1; *ticks == 0 || n <= *ticks; n++ {
		if pace != nil {
			select {
			case <-pace:
			case <-ctx.Done():
				return
			}
		} else if ctx.Err() != nil {
			return
		}

		if *presetEvery > 0 && n%*presetEvery == 0 {
			preset = (preset + 1) % len(cfg.Presets)
			_ = actor.Tell(ctx, pid, &pb.SelectPreset{Name: cfg.Presets[preset].Name})
		}
		if err := actor.Tell(ctx, pid, &pb.Tick{DeltaTime: int64(time.Second) / int64(max(cfg.TickRate, 1))}); err != nil {
			log.Fatal(err)
		}
	}

	resp, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, 30*time.Second)
	if err != nil {
		log.Fatal(err)
	}
	if snap, ok := resp.(*pb.FlockSnapshot); ok {
		logger.Infof("tick %d, preset %q, centroid (%.3f, %.3f, %.3f), speed min %.4f mean %.4f max %.4f",
			snap.GetTick(), snap.GetPreset(),
			snap.GetCentroid().GetX(), snap.GetCentroid().GetY(), snap.GetCentroid().GetZ(),
			snap.GetMinSpeed(), snap.GetMeanSpeed(), snap.GetMaxSpeed())
	}
}
