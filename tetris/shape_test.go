package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestShapeRotateClockwise(t *testing.T) {
	tee := tetris.NewShape([][]int{
		{0, 1, 0},
		{1, 1, 1},
	})

	rotated := tee.Rotate()

	assert.Equal(t, 3, rotated.Rows())
	assert.Equal(t, 2, rotated.Cols())
	assert.Equal(t, [][]int{
		{1, 0},
		{1, 1},
		{1, 0},
	}, rotated.Matrix())
}

func TestShapeRotateSwapsDimensions(t *testing.T) {
	i := tetris.KindI.Shape()
	assert.Equal(t, 1, i.Rows())
	assert.Equal(t, 4, i.Cols())

	vertical := i.Rotate()
	assert.Equal(t, 4, vertical.Rows())
	assert.Equal(t, 1, vertical.Cols())
	assert.Equal(t, [][]int{{1}, {1}, {1}, {1}}, vertical.Matrix())
}

func TestShapeRotateFourTimesIsIdentity(t *testing.T) {
	for _, kind := range tetris.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			shape := kind.Shape()
			turned := shape.Rotate().Rotate().Rotate().Rotate()
			assert.True(t, shape.Equal(turned), "got\n%s\nwant\n%s", turned, shape)
		})
	}
}

func TestShapeRotateLeavesTemplateUntouched(t *testing.T) {
	before := tetris.KindL.Shape().Matrix()

	_ = tetris.KindL.Shape().Rotate()

	assert.Equal(t, before, tetris.KindL.Shape().Matrix())
}

func TestShapeCellsVisitsOccupiedOnly(t *testing.T) {
	var cells [][2]int
	tetris.KindS.Shape().Cells(func(r, c int) bool {
		cells = append(cells, [2]int{r, c})
		return true
	})

	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}}, cells)
}

func TestShapeCellsStopsEarly(t *testing.T) {
	visited := 0
	tetris.KindO.Shape().Cells(func(r, c int) bool {
		visited++
		return false
	})

	assert.Equal(t, 1, visited)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "##.\n.##", tetris.KindZ.Shape().String())
}

func TestKindsHaveFourCells(t *testing.T) {
	for _, kind := range tetris.Kinds() {
		count := 0
		kind.Shape().Cells(func(r, c int) bool {
			count++
			return true
		})
		assert.Equal(t, 4, count, kind.String())
		assert.NotEqual(t, tetris.Empty, kind.Color(), kind.String())
	}
}

func BenchmarkShapeRotate(b *testing.B) {
	shape := tetris.KindT.Shape()
	for b.Loop() {
		shape = shape.Rotate()
	}
}
