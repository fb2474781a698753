// Package view turns engine snapshots into grids of drawable cells. It holds
// what every presenter needs: compositing the falling piece over the locked
// cells, the landing ghost and the rows waiting to be cleared.
package view

import (
	"image/color"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

// Cell is one board position as a presenter should draw it.
type Cell struct {
	Color tetris.Color
	// Active is set for cells of the falling piece.
	Active bool
	// Ghost is set for empty cells where the falling piece would land.
	Ghost bool
	// Clearing is set for every cell of a row marked for clearing.
	Clearing bool
}

// Empty reports whether nothing is drawn in the cell apart from a ghost.
func (c Cell) Empty() bool {
	return c.Color == tetris.Empty
}

type Options struct {
	Ghost bool
}

// Grid is a composed board, indexed [y][x].
type Grid [][]Cell

// Compose overlays the falling piece and, when asked, its ghost on the locked
// cells of s. Cells of the piece above the top row are not drawn.
func Compose(s tetris.Snapshot, opts Options) Grid {
	b := s.Board
	grid := make(Grid, b.Height())
	for y := range grid {
		row := make([]Cell, b.Width())
		clearing := s.Clearing(y)
		for x := range row {
			row[x] = Cell{Color: b.At(x, y), Clearing: clearing}
		}
		grid[y] = row
	}

	if s.Active == nil {
		return grid
	}
	p := *s.Active

	if opts.Ghost {
		if gy, ok := GhostY(s); ok && gy != p.Y {
			ghost := p
			ghost.Y = gy
			ghost.Cells(func(x, y int) bool {
				if b.Contains(x, y) && grid[y][x].Empty() {
					grid[y][x].Ghost = true
				}
				return true
			})
		}
	}

	p.Cells(func(x, y int) bool {
		if b.Contains(x, y) {
			grid[y][x].Color = p.Color
			grid[y][x].Active = true
			grid[y][x].Ghost = false
		}
		return true
	})
	return grid
}

// GhostY returns the row the falling piece would lock at if dropped straight
// down.
func GhostY(s tetris.Snapshot) (int, bool) {
	if s.Active == nil {
		return 0, false
	}
	p := s.Active
	y := p.Y
	for !tetris.Collides(s.Board, p.Shape, p.X, y+1) {
		y++
	}
	return y, true
}

// String renders the grid as text: '#' for the falling piece, the first letter
// of the colour name for locked cells, '=' for cells of clearing rows, ':' for
// the ghost and '.' for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteByte(c.Rune())
		}
	}
	return sb.String()
}

// Rune returns the character String uses for the cell.
func (c Cell) Rune() byte {
	switch {
	case c.Active:
		return '#'
	case c.Clearing && !c.Empty():
		return '='
	case !c.Empty():
		return strings.ToUpper(c.Color.String())[0]
	case c.Ghost:
		return ':'
	default:
		return '.'
	}
}

var palette = [...]color.RGBA{
	tetris.Empty:  {0x14, 0x14, 0x1c, 0xff},
	tetris.Cyan:   {0x00, 0xd8, 0xe8, 0xff},
	tetris.Blue:   {0x2a, 0x5b, 0xe8, 0xff},
	tetris.Orange: {0xf0, 0x8c, 0x1a, 0xff},
	tetris.Yellow: {0xf0, 0xd8, 0x20, 0xff},
	tetris.Green:  {0x38, 0xc8, 0x48, 0xff},
	tetris.Red:    {0xe0, 0x30, 0x30, 0xff},
	tetris.Purple: {0xa0, 0x40, 0xd8, 0xff},
}

// RGBA returns the display colour for c. Unknown colours draw as empty.
func RGBA(c tetris.Color) color.RGBA {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[tetris.Empty]
}
