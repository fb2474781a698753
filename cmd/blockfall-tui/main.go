package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	envFile := flag.String("env", "", "Load settings from this .env file instead of ./.env.")
	debug := flag.Bool("debug", false, "Write a debug log to the temp directory.")
	ghost := flag.Bool("ghost", true, "Show where the falling piece will land.")
	themeName := flag.String("theme", "classic", "Colour theme: "+strings.Join(themeNames(), ", ")+".")
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
	theme, ok := themeByName(*themeName)
	if !ok {
		log.Fatalf("Unknown theme %q, want one of %s", *themeName, strings.Join(themeNames(), ", "))
	}

	cfg := settings.EngineConfig()
	if *debug {
		logger, err := EnableDebugLogging()
		if err != nil {
			log.Fatalf("Failed to enable debug logging: %v", err)
		}
		defer CloseDebugLog()
		cfg.Logger = logger
	}
	DebugLogf("blockfall-tui start debug=%v theme=%s randomizer=%s", *debug, theme.Name, settings.Randomizer)

	engine, err := tetris.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	var program *tea.Program
	driver := tetris.NewDriver(engine, tetris.WithUpdateFunc(func(s tetris.Snapshot) {
		program.Send(snapshotMsg(s))
	}))
	model := NewModel(driver.Send, settings.Keys, theme, *ghost, engine.Snapshot())
	program = tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- driver.Run(ctx) }()

	_, runErr := program.Run()
	cancel()
	<-done

	stats := driver.Stats()
	DebugLogf("blockfall-tui exit ticks=%d commands=%d clears=%d", stats.Ticks, stats.Commands, stats.Clears)
	if runErr != nil {
		DebugLogf("program error: %v", runErr)
		CloseDebugLog()
		os.Exit(1)
	}
}
