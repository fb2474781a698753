package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/plus3/blockfall/internal/config"
)

func main() {
	envFile := flag.String("env", "", "Load settings from this .env file instead of ./.env.")
	games := flag.Int("games", 20, "The number of games to autoplay.")
	workers := flag.Int("workers", runtime.NumCPU(), "The number of games played in parallel.")
	maxPieces := flag.Int("max-pieces", 500, "Stop a game after this many pieces have locked.")
	seed := flag.Uint64("seed", 1, "Seed of the first game; game i uses seed+i.")
	frame := flag.Duration("frame", time.Second/60, "Simulated time per frame.")
	timeout := flag.Duration("timeout", 0, "Stop all games after this long; 0 means no limit.")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	settings, err := config.Load(files...)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	report := &Report{
		Games:      *games,
		Workers:    *workers,
		MaxPieces:  *maxPieces,
		Seed:       *seed,
		Randomizer: settings.Randomizer,
		Frame:      *frame,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Playing %d games on %d workers...\n", *games, *workers)
	startTime := time.Now()
	results, err := runGames(ctx, settings, *games, *workers, *maxPieces, *seed, *frame)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	report.TotalTime = time.Since(startTime)
	report.Add(results)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
