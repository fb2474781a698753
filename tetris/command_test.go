package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestParseCommandRoundTripsNames(t *testing.T) {
	for _, cmd := range []tetris.Command{
		tetris.CommandMoveLeft,
		tetris.CommandMoveRight,
		tetris.CommandSoftDrop,
		tetris.CommandRotate,
		tetris.CommandTick,
		tetris.CommandReset,
	} {
		got, ok := tetris.ParseCommand(cmd.String())
		assert.True(t, ok, cmd.String())
		assert.Equal(t, cmd, got)
	}

	_, ok := tetris.ParseCommand("none")
	assert.False(t, ok)
	assert.Equal(t, "unknown", tetris.Command(42).String())
}

func TestCommandBufferFlushInOrder(t *testing.T) {
	e := newEngine(t, tetris.KindO)
	e.Spawn()
	var buf tetris.CommandBuffer
	buf.Push(tetris.CommandMoveLeft)
	buf.Push(tetris.CommandMoveLeft)
	buf.Push(tetris.CommandSoftDrop)
	buf.Push(tetris.CommandNone)

	applied := buf.Flush(e)

	assert.Equal(t, 3, applied)
	assert.Equal(t, 0, buf.Len())
	p, _ := e.Active()
	assert.Equal(t, 2, p.X)
	assert.Equal(t, 1, p.Y)
}

func TestCommandBufferDiscard(t *testing.T) {
	var buf tetris.CommandBuffer
	buf.Push(tetris.CommandRotate)

	buf.Discard()

	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 0, buf.Drain(func(tetris.Command) bool { return true }))
}

func TestCommandBufferPop(t *testing.T) {
	var buf tetris.CommandBuffer
	buf.Push(tetris.CommandRotate)
	buf.Push(tetris.CommandSoftDrop)

	cmd, ok := buf.Pop()
	assert.True(t, ok)
	assert.Equal(t, tetris.CommandRotate, cmd)
	assert.Equal(t, 1, buf.Len())

	cmd, ok = buf.Pop()
	assert.True(t, ok)
	assert.Equal(t, tetris.CommandSoftDrop, cmd)

	cmd, ok = buf.Pop()
	assert.False(t, ok)
	assert.Equal(t, tetris.CommandNone, cmd)
}
