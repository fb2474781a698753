package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	sent []tetris.Command
	full bool
}

func (r *recorder) send(cmd tetris.Command) bool {
	if r.full {
		return false
	}
	r.sent = append(r.sent, cmd)
	return true
}

func newTestModel(t *testing.T, r *recorder) Model {
	t.Helper()
	cfg := tetris.DefaultConfig()
	cfg.Source = tetris.NewSequenceSource(tetris.KindT)
	e, err := tetris.NewEngine(cfg)
	require.NoError(t, err)
	e.Spawn()
	return NewModel(r.send, config.DefaultKeymap(), themes[0], true, e.Snapshot())
}

func TestModelForwardsBoundKeys(t *testing.T) {
	var r recorder
	m := newTestModel(t, &r)

	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft},
		{Type: tea.KeyRunes, Runes: []rune{'l'}},
		{Type: tea.KeyDown},
		{Type: tea.KeyUp},
		{Type: tea.KeySpace},
		{Type: tea.KeyRunes, Runes: []rune{'r'}},
		{Type: tea.KeyRunes, Runes: []rune{'p'}},
	}
	for _, k := range keys {
		next, cmd := m.Update(k)
		m = next.(Model)
		assert.Nil(t, cmd)
	}

	assert.Equal(t, []tetris.Command{
		tetris.CommandMoveLeft,
		tetris.CommandMoveRight,
		tetris.CommandSoftDrop,
		tetris.CommandRotate,
		tetris.CommandRotate,
		tetris.CommandReset,
	}, r.sent)
}

func TestModelQuits(t *testing.T) {
	var r recorder
	m := newTestModel(t, &r)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, r.sent)
}

func TestModelCountsDroppedInput(t *testing.T) {
	r := recorder{full: true}
	m := newTestModel(t, &r)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	assert.Equal(t, 1, next.(Model).dropped)
}

func TestModelTakesSnapshots(t *testing.T) {
	var r recorder
	m := newTestModel(t, &r)
	snap := m.snap
	snap.Score = 700
	snap.GameOver = true

	next, _ := m.Update(snapshotMsg(snap))
	out := next.View()

	assert.Contains(t, out, "Score: 700")
	assert.Contains(t, out, "GAME OVER")
}

func TestRenderBoardFrame(t *testing.T) {
	var r recorder
	m := newTestModel(t, &r)

	out := renderBoard(m.snap, themes[0], false)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, tetris.BoardHeight+2)
	assert.Contains(t, lines[0], "+"+strings.Repeat("-", 20)+"+")
}

func TestThemeByName(t *testing.T) {
	theme, ok := themeByName("AMBER")
	assert.True(t, ok)
	assert.Equal(t, "amber", theme.Name)

	theme, ok = themeByName("nope")
	assert.False(t, ok)
	assert.Equal(t, themes[0].Name, theme.Name)

	for _, theme := range themes {
		assert.Len(t, theme.PieceColors, tetris.KindCount, theme.Name)
	}
}
