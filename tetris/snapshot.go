package tetris

import (
	"slices"
	"time"
)

// Snapshot is a read-only copy of the game state for presenters.
type Snapshot struct {
	Board        *Board
	Active       *Piece
	Score        int
	Level        int
	Lines        int
	Pieces       int
	DropInterval time.Duration
	GameOver     bool
	// ClearingRows lists the rows marked for clearing, sorted top to bottom.
	ClearingRows []int
}

// Snapshot copies the current state. Later engine mutations do not affect it.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Board:        e.board.Clone(),
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		Pieces:       e.pieces,
		DropInterval: e.dropInterval,
		GameOver:     e.over,
	}
	if e.active != nil {
		p := *e.active
		s.Active = &p
	}
	s.ClearingRows = slices.Sorted(e.animating.Keys())
	return s
}

// Clearing reports whether row y is marked for clearing.
func (s Snapshot) Clearing(y int) bool {
	_, found := slices.BinarySearch(s.ClearingRows, y)
	return found
}
