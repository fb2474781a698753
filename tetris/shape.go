package tetris

import "strings"

// Shape is an immutable matrix of occupied sub-cells. The zero value is an
// empty 0x0 shape.
type Shape struct {
	rows  int
	cols  int
	cells []bool
}

// NewShape builds a shape from rows of 0/1 values. All rows must have the
// same length; shorter rows are padded with empty cells.
func NewShape(rows [][]int) Shape {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}

	s := Shape{
		rows:  len(rows),
		cols:  cols,
		cells: make([]bool, len(rows)*cols),
	}
	for r, row := range rows {
		for c, v := range row {
			s.cells[r*cols+c] = v != 0
		}
	}
	return s
}

// Rows returns the height of the bounding box.
func (s Shape) Rows() int { return s.rows }

// Cols returns the width of the bounding box.
func (s Shape) Cols() int { return s.cols }

// At reports whether the sub-cell at row r, column c is occupied.
func (s Shape) At(r, c int) bool {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return false
	}
	return s.cells[r*s.cols+c]
}

// Rotate returns the shape turned 90 degrees clockwise: the transpose with
// each row reversed. A rows x cols shape becomes cols x rows.
func (s Shape) Rotate() Shape {
	rotated := Shape{
		rows:  s.cols,
		cols:  s.rows,
		cells: make([]bool, len(s.cells)),
	}
	for r := range s.rows {
		for c := range s.cols {
			rotated.cells[c*rotated.cols+(s.rows-1-r)] = s.cells[r*s.cols+c]
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Cells calls fn with the row and column of every occupied sub-cell, in row
// major order. Iteration stops early when fn returns false.
func (s Shape) Cells(fn func(r, c int) bool) {
	for r := range s.rows {
		for c := range s.cols {
			if s.cells[r*s.cols+c] && !fn(r, c) {
				return
			}
		}
	}
}

// Matrix returns the shape as rows of 0/1 values.
func (s Shape) Matrix() [][]int {
	out := make([][]int, s.rows)
	for r := range s.rows {
		out[r] = make([]int, s.cols)
		for c := range s.cols {
			if s.cells[r*s.cols+c] {
				out[r][c] = 1
			}
		}
	}
	return out
}

func (s Shape) String() string {
	var b strings.Builder
	for r := range s.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range s.cols {
			if s.cells[r*s.cols+c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
