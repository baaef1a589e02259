package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/viewer"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file")
	schemaFile := flag.String("schema", "", "JSON schema overriding the embedded one")
	verbose := flag.Bool("v", false, "log actor system messages")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile, *schemaFile); err != nil {
			log.Fatal(err)
		}
	}

	var logger golog.Logger = golog.DiscardLogger
	if *verbose {
		logger = golog.DefaultLogger
	}

	ctx := context.Background()
	system, err := actor.NewActorSystem("Flock3D",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	game, err := viewer.NewGame(ctx, cfg, system)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(viewer.ScreenWidth, viewer.ScreenHeight)
	ebiten.SetWindowTitle("Boids 3D")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
