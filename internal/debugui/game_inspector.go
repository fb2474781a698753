package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/view"
	"github.com/plus3/blockfall/tetris"
)

// GameInspector shows the engine state and offers buttons that issue commands.
type GameInspector struct {
	do        func(tetris.Command) bool
	showBoard bool
	lastCmd   string
}

// NewGameInspector returns an inspector whose buttons send commands to do.
func NewGameInspector(do func(tetris.Command) bool) *GameInspector {
	return &GameInspector{do: do, showBoard: true}
}

func (gi *GameInspector) Render(s tetris.Snapshot) {
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range summary(s) {
		imgui.Text(line)
	}

	imgui.Separator()
	for _, cmd := range []tetris.Command{tetris.CommandTick, tetris.CommandRotate, tetris.CommandReset} {
		if imgui.Button(cmd.String()) {
			ok := gi.do(cmd)
			gi.lastCmd = fmt.Sprintf("%s -> %v", cmd, ok)
		}
		imgui.SameLine()
	}
	imgui.NewLine()
	if gi.lastCmd != "" {
		imgui.Text(gi.lastCmd)
	}

	imgui.Checkbox("Show Board", &gi.showBoard)
	if gi.showBoard {
		imgui.Text(view.Compose(s, view.Options{Ghost: true}).String())
	}

	imgui.End()
}

// summary returns the inspector's text lines for s.
func summary(s tetris.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Level: %d", s.Level),
		fmt.Sprintf("Lines: %d", s.Lines),
		fmt.Sprintf("Pieces: %d", s.Pieces),
		fmt.Sprintf("Drop Interval: %s", s.DropInterval),
		fmt.Sprintf("Filled Cells: %d", s.Board.Filled()),
	}
	if s.Active != nil {
		lines = append(lines, fmt.Sprintf("Active: %s at (%d, %d)", s.Active.Kind, s.Active.X, s.Active.Y))
	} else {
		lines = append(lines, "Active: none")
	}
	if len(s.ClearingRows) > 0 {
		rows := make([]string, len(s.ClearingRows))
		for i, y := range s.ClearingRows {
			rows[i] = fmt.Sprint(y)
		}
		lines = append(lines, "Clearing: "+strings.Join(rows, ", "))
	}
	if s.GameOver {
		lines = append(lines, "GAME OVER")
	}
	return lines
}
