package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/blockfall/internal/view"
	"github.com/plus3/blockfall/tetris"
)

type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	ClearColor  lipgloss.Color
	// PieceColors is indexed by tetris.Color minus one.
	PieceColors []lipgloss.Color
}

var themes = []Theme{
	{
		Name:        "classic",
		BorderColor: lipgloss.Color("15"),
		TextColor:   lipgloss.Color("250"),
		AccentColor: lipgloss.Color("226"),
		ClearColor:  lipgloss.Color("255"),
		PieceColors: []lipgloss.Color{"51", "21", "208", "226", "46", "196", "93"},
	},
	{
		Name:        "amber",
		BorderColor: lipgloss.Color("214"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("208"),
		ClearColor:  lipgloss.Color("230"),
		PieceColors: []lipgloss.Color{"220", "214", "222", "208", "215", "216", "223"},
	},
	{
		Name:        "mono",
		BorderColor: lipgloss.Color("250"),
		TextColor:   lipgloss.Color("245"),
		AccentColor: lipgloss.Color("82"),
		ClearColor:  lipgloss.Color("255"),
		PieceColors: []lipgloss.Color{"236", "239", "242", "245", "248", "251", "254"},
	},
}

// themeByName returns the named theme, or the first one when name is unknown.
func themeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return themes[0], false
}

func themeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) pieceColor(c tetris.Color) lipgloss.Color {
	if c == tetris.Empty {
		return ""
	}
	return t.PieceColors[(int(c)-1)%len(t.PieceColors)]
}

const cellText = "  "

func viewGame(m Model) string {
	board := renderBoard(m.snap, m.theme, m.ghost)
	info := renderInfo(m)
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, info)
	return center(m.width, m.height, content)
}

func renderBoard(s tetris.Snapshot, theme Theme, ghost bool) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	ghostStyle := lipgloss.NewStyle().Foreground(theme.BorderColor).Faint(true)
	clearStyle := lipgloss.NewStyle().Background(theme.ClearColor)
	grid := view.Compose(s, view.Options{Ghost: ghost})

	var b strings.Builder
	b.WriteString(border.Render("+" + strings.Repeat("-", s.Board.Width()*len(cellText)) + "+"))
	b.WriteString("\n")
	for _, row := range grid {
		b.WriteString(border.Render("|"))
		for _, cell := range row {
			switch {
			case cell.Clearing && !cell.Empty():
				b.WriteString(clearStyle.Render(cellText))
			case !cell.Empty():
				b.WriteString(lipgloss.NewStyle().Background(theme.pieceColor(cell.Color)).Render(cellText))
			case cell.Ghost:
				b.WriteString(ghostStyle.Render("::"))
			default:
				b.WriteString(cellText)
			}
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border.Render("+" + strings.Repeat("-", s.Board.Width()*len(cellText)) + "+"))
	return b.String()
}

func renderInfo(m Model) string {
	s := m.snap
	theme := m.theme
	pad := lipgloss.NewStyle().PaddingLeft(2)
	title := lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
	help := lipgloss.NewStyle().Foreground(theme.TextColor)

	var b strings.Builder
	b.WriteString(pad.Render(title.Render("blockfall")))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(fmt.Sprintf("Score: %d", s.Score)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Level: %d", s.Level)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Lines: %d", s.Lines)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Speed: %s", s.DropInterval)))
	b.WriteString("\n\n")
	for _, line := range append(m.keys.Help(), "quit: q esc") {
		b.WriteString(pad.Render(help.Render(line)))
		b.WriteString("\n")
	}
	if s.GameOver {
		b.WriteString("\n")
		b.WriteString(pad.Render(title.Render("GAME OVER")))
		b.WriteString("\n")
		b.WriteString(pad.Render(help.Render("press r to restart")))
	}
	return b.String()
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
