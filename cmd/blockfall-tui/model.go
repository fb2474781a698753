package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/tetris"
)

// snapshotMsg carries a state published by the driver.
type snapshotMsg tetris.Snapshot

// Model is the bubbletea model. The driver owns the engine and runs on its
// own goroutine; the model only forwards key presses and draws snapshots.
type Model struct {
	send  func(tetris.Command) bool
	keys  config.Keymap
	theme Theme
	ghost bool

	snap    tetris.Snapshot
	width   int
	height  int
	dropped int
}

func NewModel(send func(tetris.Command) bool, keys config.Keymap, theme Theme, ghost bool, initial tetris.Snapshot) Model {
	return Model{
		send:  send,
		keys:  keys,
		theme: theme,
		ghost: ghost,
		snap:  initial,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case snapshotMsg:
		m.snap = tetris.Snapshot(msg)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			DebugLogf("quit key=%s score=%d", msg.String(), m.snap.Score)
			return m, tea.Quit
		}
		cmd, ok := m.keys.Lookup(msg.String())
		if !ok {
			return m, nil
		}
		if !m.send(cmd) {
			m.dropped++
			DebugLogf("input buffer full, dropped %s", cmd)
		}
	}
	return m, nil
}

func (m Model) View() string {
	return viewGame(m)
}
