package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/internal/config"
	debugui_ebiten "github.com/plus3/blockfall/internal/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	envFile := flag.String("env", "", "Load settings from this .env file instead of ./.env.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug windows.")
	verbose := flag.Bool("v", false, "Log engine events to stderr.")
	ghost := flag.Bool("ghost", true, "Show where the falling piece will land.")
	seed := flag.Uint64("seed", 0, "Seed for the piece randomizer; 0 uses BLOCKFALL_SEED or a random seed.")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	settings, err := config.Load(files...)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *seed != 0 {
		settings.Game.Seed = *seed
	}

	cfg := settings.EngineConfig()
	if *verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	engine, err := tetris.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	game := NewGame(tetris.NewDriver(engine), settings.Keys, *ghost)
	if *debug {
		game.EnableDebugUI(debugui_ebiten.NewImguiBackend("blockfall (debug)", 1280, 720))
	} else {
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("blockfall")
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited: %v", err)
	}
}
