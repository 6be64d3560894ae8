package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/amalg/bomb-arena/internal/config"
	"github.com/amalg/bomb-arena/internal/game"
	"github.com/amalg/bomb-arena/internal/window"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: built-in settings)")
	seed := flag.Int64("seed", 0, "Random seed (default: current time)")
	debug := flag.Bool("debug", false, "Log bomb, blast and pickup events")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.WithField("seed", *seed).Info("starting arena window")

	engine := game.NewEngine(cfg, *seed)
	g := window.New(engine)

	// Set up ebiten
	ts := int(cfg.TileSize)
	ebiten.SetWindowSize(cfg.Cols*ts, cfg.Rows*ts+window.HUDHeight)
	ebiten.SetWindowTitle("Bomb Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
