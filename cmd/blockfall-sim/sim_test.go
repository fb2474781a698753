package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWith(t *testing.T, board *tetris.Board, kind tetris.Kind) tetris.Snapshot {
	t.Helper()
	cfg := tetris.DefaultConfig()
	cfg.Source = tetris.NewSequenceSource(kind)
	e, err := tetris.NewEngine(cfg)
	require.NoError(t, err)
	if board != nil {
		require.NoError(t, e.LoadBoard(board))
	}
	_, ok := e.Spawn()
	require.True(t, ok)
	return e.Snapshot()
}

func TestPlanLaysIFlatOnEmptyBoard(t *testing.T) {
	p, ok := plan(snapshotWith(t, nil, tetris.KindI))

	require.True(t, ok)
	assert.Equal(t, 0, p.rotations%2)
}

func TestPlanFillsTheGap(t *testing.T) {
	b := tetris.NewBoard(tetris.BoardWidth, tetris.BoardHeight)
	for y := 16; y < tetris.BoardHeight; y++ {
		for x := range tetris.BoardWidth - 1 {
			b.Set(x, y, tetris.Red)
		}
	}

	p, ok := plan(snapshotWith(t, b, tetris.KindI))

	require.True(t, ok)
	assert.Equal(t, 1, p.rotations%2)
	assert.Equal(t, 9, p.x)
}

func TestPlanWithoutActivePiece(t *testing.T) {
	cfg := tetris.DefaultConfig()
	e, err := tetris.NewEngine(cfg)
	require.NoError(t, err)

	_, ok := plan(e.Snapshot())

	assert.False(t, ok)
}

func TestEvaluatePrefersFewerHoles(t *testing.T) {
	flat := tetris.NewBoard(tetris.BoardWidth, tetris.BoardHeight)
	flat.Set(0, 19, tetris.Red)
	flat.Set(1, 19, tetris.Red)

	holed := tetris.NewBoard(tetris.BoardWidth, tetris.BoardHeight)
	holed.Set(0, 18, tetris.Red)
	holed.Set(1, 18, tetris.Red)

	assert.Greater(t, evaluate(flat), evaluate(holed))
}

func TestBotStepsTowardsTarget(t *testing.T) {
	b := tetris.NewBoard(tetris.BoardWidth, tetris.BoardHeight)
	for y := 16; y < tetris.BoardHeight; y++ {
		for x := range tetris.BoardWidth - 1 {
			b.Set(x, y, tetris.Red)
		}
	}
	s := snapshotWith(t, b, tetris.KindI)
	var bot Bot

	assert.Equal(t, tetris.CommandRotate, bot.Step(s))
	s.Active.Shape = s.Active.Shape.Rotate()
	assert.Equal(t, tetris.CommandMoveRight, bot.Step(s))

	s.Active.X = 9
	assert.Equal(t, tetris.CommandSoftDrop, bot.Step(s))
}

func TestBotRetriesRejectedRotation(t *testing.T) {
	b := tetris.NewBoard(tetris.BoardWidth, tetris.BoardHeight)
	for y := 16; y < tetris.BoardHeight; y++ {
		for x := range tetris.BoardWidth - 1 {
			b.Set(x, y, tetris.Red)
		}
	}
	s := snapshotWith(t, b, tetris.KindI)
	var bot Bot

	// The shape never changes, as if every rotate were rejected.
	for range maxRotateAttempts {
		require.Equal(t, tetris.CommandRotate, bot.Step(s))
	}
	assert.Equal(t, tetris.CommandMoveRight, bot.Step(s))
}

func TestPlayGameStopsAtPieceLimit(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 11

	res, err := playGame(context.Background(), cfg, 30, time.Second/60)

	require.NoError(t, err)
	assert.True(t, res.GameOver || res.Pieces == 30)
	assert.LessOrEqual(t, res.Pieces, 30)
	assert.Positive(t, res.Driver.Commands)
	assert.Equal(t, uint64(11), res.Seed)
}

func TestPlayGameClearsLines(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Source = tetris.NewSequenceSource(tetris.KindO)

	res, err := playGame(context.Background(), cfg, 20, time.Second/60)

	require.NoError(t, err)
	assert.False(t, res.GameOver)
	assert.Positive(t, res.Lines)
	assert.Equal(t, res.Lines*tetris.PointsPerRow, res.Score)
}

func TestRunGamesKeepsSeedOrder(t *testing.T) {
	results, err := runGames(context.Background(), config.Defaults(), 4, 2, 10, 100, time.Second/60)

	require.NoError(t, err)
	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, uint64(100+i), r.Seed)
	}
}

func TestRunGamesRejectsInvalidRules(t *testing.T) {
	s := config.Defaults()
	s.Game.SpeedFactor = 2

	_, err := runGames(context.Background(), s, 2, 1, 10, 1, time.Second/60)

	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats[int]{Samples: []int{4, 10, 1}}
	s.Finalize()

	assert.Equal(t, 1, s.Min)
	assert.Equal(t, 10, s.Max)
	assert.Equal(t, 5, s.Avg)

	var empty Stats[time.Duration]
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{Games: 2, Workers: 1, MaxPieces: 10, Seed: 5, Randomizer: "bag", Frame: time.Second / 60}
	r.Add([]GameResult{
		{Seed: 5, Score: 100, Lines: 1, Level: 1, Pieces: 10, Board: "..##"},
		{Seed: 6, Score: 300, Lines: 3, Level: 1, Pieces: 10, GameOver: true, Board: "#..#"},
	})

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "# blockfall Simulation Report")
	assert.Contains(t, out, "**Seeds:** 5 to 6")
	assert.Contains(t, out, "**Score:** avg 200, min 100, max 300")
	assert.Contains(t, out, "**Game Overs:** 1 of 2")
	assert.Contains(t, out, "## Best Game (seed 6, score 300)")
	assert.Contains(t, out, "#..#")
}
