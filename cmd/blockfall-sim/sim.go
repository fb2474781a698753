package main

import (
	"context"
	"sync"
	"time"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/view"
	"github.com/plus3/blockfall/tetris"
)

// GameResult is the outcome of one autoplayed game.
type GameResult struct {
	Seed      uint64
	Score     int
	Lines     int
	Level     int
	Pieces    int
	GameOver  bool
	Simulated time.Duration
	Wall      time.Duration
	Driver    tetris.DriverStats
	Board     string
}

// playGame autoplays one game, stepping the driver one frame at a time, until
// the game ends, maxPieces have locked or ctx is done.
func playGame(ctx context.Context, cfg tetris.Config, maxPieces int, frame time.Duration) (GameResult, error) {
	engine, err := tetris.NewEngine(cfg)
	if err != nil {
		return GameResult{}, err
	}
	driver := tetris.NewDriver(engine)
	bot := &Bot{}

	start := time.Now()
	var simulated time.Duration
	for !engine.GameOver() && engine.Pieces() < maxPieces && ctx.Err() == nil {
		driver.Advance(frame)
		simulated += frame
		if cmd := bot.Step(engine.Snapshot()); cmd != tetris.CommandNone {
			driver.Do(cmd)
		}
	}

	snap := engine.Snapshot()
	return GameResult{
		Seed:      cfg.Seed,
		Score:     snap.Score,
		Lines:     snap.Lines,
		Level:     snap.Level,
		Pieces:    snap.Pieces,
		GameOver:  snap.GameOver,
		Simulated: simulated,
		Wall:      time.Since(start),
		Driver:    driver.Stats(),
		Board:     view.Compose(snap, view.Options{}).String(),
	}, nil
}

// runGames plays games seeded seed, seed+1, ... on workers goroutines and
// returns the results in seed order.
func runGames(ctx context.Context, settings config.Settings, games, workers, maxPieces int, seed uint64, frame time.Duration) ([]GameResult, error) {
	results := make([]GameResult, games)
	errs := make([]error, games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range max(workers, 1) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := settings
				s.Game.Seed = seed + uint64(i)
				results[i], errs[i] = playGame(ctx, s.EngineConfig(), maxPieces, frame)
			}
		}()
	}

	for i := range games {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
