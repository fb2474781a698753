// Package tetris implements the rules of a falling-block puzzle game: the
// board, the falling piece, collision, rotation with wall kicks, line clears
// and scoring.
//
// The Engine has no goroutines and no clock. Something outside it calls Tick
// at the current DropInterval, forwards player commands, and calls
// ResolveLineClear once completed rows have been shown for Config.ClearDelay.
// Driver does all three.
package tetris

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kamstrup/intmap"
)

// ErrBoardSize is returned by LoadBoard for boards of the wrong dimensions.
var ErrBoardSize = errors.New("tetris: wrong board size")

// Wall kick offsets tried in order when placing a rotated shape.
var kicks = [...]struct{ dx, dy int }{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
}

// Engine owns the whole game state. It is not safe for concurrent use.
type Engine struct {
	cfg    Config
	source Source
	log    *slog.Logger

	board        *Board
	active       *Piece
	score        int
	level        int
	lines        int
	pieces       int
	dropInterval time.Duration
	over         bool

	// Row groups marked complete, oldest first, waiting for ResolveLineClear.
	// pending only orders the groups; animating is the row set readers use.
	pending   [][]int
	animating *intmap.Map[int, struct{}]
}

// NewEngine returns an engine in its initial state: empty board, no active
// piece, level 1. It returns ErrInvalidConfig if cfg does not validate.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:       cfg,
		source:    cfg.source(),
		log:       cfg.logger(),
		animating: intmap.New[int, struct{}](BoardHeight),
	}
	e.init()
	return e, nil
}

func (e *Engine) init() {
	e.board = NewBoard(BoardWidth, BoardHeight)
	e.active = nil
	e.score = 0
	e.level = 1
	e.lines = 0
	e.pieces = 0
	e.dropInterval = e.cfg.DropInterval
	e.over = false
	e.pending = nil
	e.animating.Clear()
}

// Reset restores the initial state. It is the only way out of game over.
func (e *Engine) Reset() {
	e.init()
	e.log.Debug("game reset")
}

// LoadBoard replaces the locked cells with a copy of b, for puzzles and
// scripted starts. The falling piece and any marked rows are dropped; score and
// level are kept.
func (e *Engine) LoadBoard(b *Board) error {
	if b.Width() != BoardWidth || b.Height() != BoardHeight {
		return fmt.Errorf("%w: board is %dx%d, want %dx%d", ErrBoardSize, b.Width(), b.Height(), BoardWidth, BoardHeight)
	}
	e.board = b.Clone()
	e.active = nil
	e.pending = nil
	e.animating.Clear()
	return nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) Score() int                  { return e.score }
func (e *Engine) Level() int                  { return e.level }
func (e *Engine) Lines() int                  { return e.lines }
func (e *Engine) Pieces() int                 { return e.pieces }
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }
func (e *Engine) GameOver() bool              { return e.over }

// Active returns a copy of the falling piece.
func (e *Engine) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	return *e.active, true
}

// Clearing reports whether rows are marked and waiting for ResolveLineClear.
func (e *Engine) Clearing() bool {
	return e.animating.Len() > 0
}

// Animating reports whether row y is marked for clearing.
func (e *Engine) Animating(y int) bool {
	return e.animating.Has(y)
}

// Spawn places a new piece at the top centre. If it collides the game is over
// and no piece is produced. Spawn does nothing while a piece is falling or
// after game over.
func (e *Engine) Spawn() (Piece, bool) {
	if e.over || e.active != nil {
		return Piece{}, false
	}

	kind := e.source.Next()
	p := newPiece(kind, BoardWidth/2-1, 0)
	if Collides(e.board, p.Shape, p.X, p.Y) {
		e.over = true
		e.log.Debug("game over", "kind", kind, "score", e.score, "level", e.level)
		return Piece{}, false
	}

	e.active = &p
	e.log.Debug("spawn", "kind", kind, "x", p.X, "y", p.Y)
	return p, true
}

// MoveLeft shifts the piece one column left if the target is free.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1, 0)
}

// MoveRight shifts the piece one column right if the target is free.
func (e *Engine) MoveRight() bool {
	return e.shift(1, 0)
}

// SoftDrop moves the piece down one row. When the row below is blocked the
// piece locks instead and SoftDrop returns false.
func (e *Engine) SoftDrop() bool {
	if e.shift(0, 1) {
		return true
	}
	if e.active != nil {
		e.lock()
	}
	return false
}

// Tick advances gravity by one row. With no piece in play it spawns one.
func (e *Engine) Tick() bool {
	if e.over {
		return false
	}
	if e.active == nil {
		_, ok := e.Spawn()
		return ok
	}
	return e.SoftDrop()
}

func (e *Engine) shift(dx, dy int) bool {
	if e.over || e.active == nil {
		return false
	}
	p := e.active
	if Collides(e.board, p.Shape, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// Rotate turns the piece clockwise, trying the current anchor, one column
// left, one column right and one row up in that order. If none fits nothing
// changes.
func (e *Engine) Rotate() bool {
	if e.over || e.active == nil {
		return false
	}
	p := e.active
	rotated := p.Shape.Rotate()

	for _, k := range kicks {
		x, y := p.X+k.dx, p.Y+k.dy
		if Collides(e.board, rotated, x, y) {
			continue
		}
		if e.cfg.RotationSnapDown && y+1 < BoardHeight && !Collides(e.board, rotated, x, y+1) {
			y++
		}
		p.Shape, p.X, p.Y = rotated, x, y
		return true
	}
	return false
}

// lock commits the active piece to the board, marks completed rows and spawns
// the next piece.
func (e *Engine) lock() {
	p := *e.active
	e.active = nil
	e.board.commit(p)
	e.pieces++
	e.log.Debug("lock", "kind", p.Kind, "x", p.X, "y", p.Y)

	e.markCompleteRows()
	e.Spawn()
}

func (e *Engine) markCompleteRows() {
	var rows []int
	for _, y := range e.board.CompleteRows() {
		if !e.Animating(y) {
			rows = append(rows, y)
		}
	}
	if len(rows) == 0 {
		return
	}
	e.pending = append(e.pending, rows)
	for _, y := range rows {
		e.animating.Put(y, struct{}{})
	}
	e.log.Debug("rows marked", "rows", rows)
}

// ResolveLineClear compacts the oldest group of marked rows, then applies the
// score and level change for it. It returns the number of rows removed.
func (e *Engine) ResolveLineClear() int {
	if len(e.pending) == 0 {
		return 0
	}
	rows := e.pending[0]
	e.pending = e.pending[1:]

	removed := e.board.RemoveRows(rows)
	for i, group := range e.pending {
		e.pending[i] = shiftRows(group, rows)
	}
	e.animating.Clear()
	for _, group := range e.pending {
		for _, y := range group {
			e.animating.Put(y, struct{}{})
		}
	}

	e.lines += removed
	e.score += PointsPerRow * removed
	e.levelUp()
	e.log.Debug("rows cleared", "count", removed, "score", e.score, "level", e.level)
	return removed
}

// shiftRows maps row indices through the removal of removed: every row above a
// removed row moves down by one.
func shiftRows(rows, removed []int) []int {
	out := make([]int, len(rows))
	for i, y := range rows {
		below := 0
		for _, r := range removed {
			if r > y {
				below++
			}
		}
		out[i] = y + below
	}
	return out
}

func (e *Engine) levelUp() {
	for e.score/PointsPerLevel > e.level-1 {
		e.level++
		next := time.Duration(float64(e.dropInterval) * e.cfg.SpeedFactor)
		e.dropInterval = max(next, e.cfg.MinDropInterval)
		e.log.Debug("level up", "level", e.level, "interval", e.dropInterval)
		if !e.cfg.MultiLevelUp {
			return
		}
	}
}

// Apply runs a command and reports whether it changed the piece or state.
// Unknown commands are ignored.
func (e *Engine) Apply(cmd Command) bool {
	switch cmd {
	case CommandMoveLeft:
		return e.MoveLeft()
	case CommandMoveRight:
		return e.MoveRight()
	case CommandSoftDrop:
		return e.SoftDrop()
	case CommandRotate:
		return e.Rotate()
	case CommandTick:
		return e.Tick()
	case CommandReset:
		e.Reset()
		return true
	default:
		return false
	}
}
