package tetris

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Board is the grid of locked cells, indexed [row][column] with row 0 at the top.
type Board struct {
	width int
	rows  [][]Color
}

// NewBoard returns an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{
		width: width,
		rows:  make([][]Color, height),
	}
	for y := range b.rows {
		b.rows[y] = make([]Color, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return len(b.rows) }

// Contains reports whether (x, y) lies on the board.
func (b *Board) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < len(b.rows)
}

// At returns the cell at column x, row y. Cells off the board read as Empty.
func (b *Board) At(x, y int) Color {
	if !b.Contains(x, y) {
		return Empty
	}
	return b.rows[y][x]
}

// Set writes a cell. Writes outside the board are dropped.
func (b *Board) Set(x, y int, c Color) {
	if b.Contains(x, y) {
		b.rows[y][x] = c
	}
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []Color {
	return append([]Color(nil), b.rows[y]...)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		width: b.width,
		rows:  make([][]Color, len(b.rows)),
	}
	for y, row := range b.rows {
		clone.rows[y] = append([]Color(nil), row...)
	}
	return clone
}

// Filled returns the number of non-empty cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// CompleteRows returns the indices of fully occupied rows, top to bottom.
func (b *Board) CompleteRows() []int {
	var complete []int
	for y, row := range b.rows {
		full := true
		for _, c := range row {
			if c == Empty {
				full = false
				break
			}
		}
		if full {
			complete = append(complete, y)
		}
	}
	return complete
}

// RemoveRows deletes the given rows and prepends the same number of empty rows,
// so the height is unchanged. Indices outside the board are ignored.
func (b *Board) RemoveRows(rows []int) int {
	drop := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < len(b.rows) {
			drop[y] = true
		}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := make([][]Color, 0, len(b.rows))
	for y, row := range b.rows {
		if !drop[y] {
			kept = append(kept, row)
		}
	}

	fresh := make([][]Color, len(drop), len(b.rows))
	for i := range fresh {
		fresh[i] = make([]Color, b.width)
	}
	b.rows = append(fresh, kept...)
	return len(drop)
}

// commit writes every occupied cell of p into the board with the piece color.
// Cells outside the board are skipped.
func (b *Board) commit(p Piece) int {
	written := 0
	p.Cells(func(x, y int) bool {
		if b.Contains(x, y) {
			b.rows[y][x] = p.Color
			written++
		}
		return true
	})
	return written
}

// Collides reports whether shape anchored at (x, y) leaves the board sideways,
// falls below the bottom, or overlaps a locked cell. Cells above the top edge
// never collide.
func Collides(board *Board, shape Shape, x, y int) bool {
	hit := false
	shape.Cells(func(r, c int) bool {
		bx, by := x+c, y+r
		if bx < 0 || bx >= board.Width() || by >= board.Height() {
			hit = true
			return false
		}
		if by >= 0 && board.rows[by][bx] != Empty {
			hit = true
			return false
		}
		return true
	})
	return hit
}
