package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/amalg/bomb-arena/internal/config"
	"github.com/amalg/bomb-arena/internal/game"
	"github.com/amalg/bomb-arena/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: built-in settings)")
	seed := flag.Int64("seed", 0, "Random seed (default: current time)")
	bots := flag.Int("bots", 0, "Number of bots (1-3)")
	cols := flag.Int("cols", 0, "Board columns (odd number)")
	rows := flag.Int("rows", 0, "Board rows (odd number)")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	debug := flag.Bool("debug", false, "Log bomb, blast and pickup events")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the file only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bots":
			cfg.Bots = *bots
		case "cols":
			cfg.Cols = *cols
		case "rows":
			cfg.Rows = *rows
		}
	})

	// Flags go through the same odd-dimension fix and checks as the file.
	cfg, err = config.Normalize(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Redirect log output IMMEDIATELY, before the engine logs anything.
	// Any stderr output will corrupt Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.WithField("seed", *seed).Info("starting arena")

	engine := game.NewEngine(cfg, *seed)
	model := ui.NewModel(engine)
	go engine.Run()

	// Handle OS signals for clean shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		engine.Stop()
		os.Exit(0)
	}()

	// Start the TUI, which takes over the terminal completely
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		engine.Stop()
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	engine.Stop()
}
