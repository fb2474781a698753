package tetris

import "fmt"

// Color tags a board cell with the kind of piece that filled it.
type Color uint8

const (
	Empty Color = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Red
	Purple
)

var colorNames = [...]string{"empty", "cyan", "blue", "orange", "yellow", "green", "red", "purple"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindZ
	KindT
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

type template struct {
	name  string
	shape Shape
	color Color
}

var templates = [KindCount]template{
	KindI: {"I", NewShape([][]int{{1, 1, 1, 1}}), Cyan},
	KindJ: {"J", NewShape([][]int{{1, 0, 0}, {1, 1, 1}}), Blue},
	KindL: {"L", NewShape([][]int{{0, 0, 1}, {1, 1, 1}}), Orange},
	KindO: {"O", NewShape([][]int{{1, 1}, {1, 1}}), Yellow},
	KindS: {"S", NewShape([][]int{{0, 1, 1}, {1, 1, 0}}), Green},
	KindZ: {"Z", NewShape([][]int{{1, 1, 0}, {0, 1, 1}}), Red},
	KindT: {"T", NewShape([][]int{{0, 1, 0}, {1, 1, 1}}), Purple},
}

// Kinds returns every tetromino kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindZ, KindT}
}

// Valid reports whether k names one of the seven tetrominoes.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// Shape returns the spawn orientation of the kind. Shapes are immutable so the
// template can be shared.
func (k Kind) Shape() Shape {
	return templates[k].shape
}

// Color returns the color tag cells of this kind are locked with.
func (k Kind) Color() Color {
	return templates[k].color
}

func (k Kind) String() string {
	if k.Valid() {
		return templates[k].name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Piece is the falling piece: its current rotation, color tag and top-left
// anchor in board coordinates.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Color
	X, Y  int
}

func newPiece(kind Kind, x, y int) Piece {
	return Piece{
		Kind:  kind,
		Shape: kind.Shape(),
		Color: kind.Color(),
		X:     x,
		Y:     y,
	}
}

// Cells calls fn with the board coordinates of every occupied cell of the piece.
func (p Piece) Cells(fn func(x, y int) bool) {
	p.Shape.Cells(func(r, c int) bool {
		return fn(p.X+c, p.Y+r)
	})
}
