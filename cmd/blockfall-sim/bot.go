package main

import (
	"math"

	"github.com/plus3/blockfall/tetris"
)

// Heuristic weights for a placed board.
const (
	weightHeight    = -0.51
	weightLines     = 0.76
	weightHoles     = -0.36
	weightBumpiness = -0.18
)

type placement struct {
	rotations int
	shape     tetris.Shape
	x         int
	score     float64
}

// plan picks the rotation count and column that give the best board once the
// active piece is dropped straight down.
func plan(s tetris.Snapshot) (placement, bool) {
	if s.Active == nil {
		return placement{}, false
	}
	p := *s.Active
	best := placement{score: math.Inf(-1)}
	found := false

	shape := p.Shape
	for r := 0; r < 4; r++ {
		for x := 0; x+shape.Cols() <= s.Board.Width(); x++ {
			y := p.Y
			if tetris.Collides(s.Board, shape, x, y) {
				continue
			}
			for !tetris.Collides(s.Board, shape, x, y+1) {
				y++
			}

			b := s.Board.Clone()
			shape.Cells(func(r, c int) bool {
				b.Set(x+c, y+r, p.Color)
				return true
			})
			if score := evaluate(b); score > best.score {
				best = placement{rotations: r, shape: shape, x: x, score: score}
				found = true
			}
		}
		shape = shape.Rotate()
	}
	return best, found
}

func evaluate(b *tetris.Board) float64 {
	complete := b.CompleteRows()
	lines := len(complete)
	b.RemoveRows(complete)

	heights := make([]int, b.Width())
	holes := 0
	for x := range b.Width() {
		seen := false
		for y := range b.Height() {
			filled := b.At(x, y) != tetris.Empty
			if filled && !seen {
				heights[x] = b.Height() - y
				seen = true
			} else if !filled && seen {
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for x, h := range heights {
		aggregate += h
		if x > 0 {
			bumpiness += abs(h - heights[x-1])
		}
	}

	return weightHeight*float64(aggregate) +
		weightLines*float64(lines) +
		weightHoles*float64(holes) +
		weightBumpiness*float64(bumpiness)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// maxRotateAttempts bounds how often the bot retries a rotation the engine
// keeps rejecting before it settles for the current orientation.
const maxRotateAttempts = 8

// Bot plays by issuing one command per frame towards the planned placement.
type Bot struct {
	target   placement
	planned  bool
	pieces   int
	attempts int
}

// Step returns the next command for the game in s, or CommandNone.
func (b *Bot) Step(s tetris.Snapshot) tetris.Command {
	if s.Active == nil || s.GameOver {
		b.planned = false
		return tetris.CommandNone
	}
	if !b.planned || s.Pieces != b.pieces {
		b.target, b.planned = plan(s)
		b.pieces = s.Pieces
		b.attempts = 0
		if !b.planned {
			return tetris.CommandSoftDrop
		}
	}

	switch {
	case !s.Active.Shape.Equal(b.target.shape) && b.attempts < maxRotateAttempts:
		b.attempts++
		return tetris.CommandRotate
	case s.Active.X < b.target.x:
		return tetris.CommandMoveRight
	case s.Active.X > b.target.x:
		return tetris.CommandMoveLeft
	default:
		return tetris.CommandSoftDrop
	}
}
