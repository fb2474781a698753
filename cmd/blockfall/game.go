package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/debugui"
	debugui_ebiten "github.com/plus3/blockfall/internal/debugui/ebiten"
	"github.com/plus3/blockfall/internal/view"
	"github.com/plus3/blockfall/tetris"
)

const (
	cellSize     = 28
	boardOffset  = 20
	panelWidth   = 220
	screenWidth  = boardOffset*2 + tetris.BoardWidth*cellSize + panelWidth
	screenHeight = boardOffset*2 + tetris.BoardHeight*cellSize
)

var (
	gridColor     = color.RGBA{0x30, 0x30, 0x3c, 0xff}
	ghostColor    = color.RGBA{0x50, 0x50, 0x60, 0xff}
	flashColor    = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	backdropColor = color.RGBA{0x08, 0x08, 0x0c, 0xff}
)

// Game implements ebiten.Game around a frame-stepped Driver.
type Game struct {
	driver *tetris.Driver
	keys   config.Keymap
	ghost  bool

	frame   int
	pressed []ebiten.Key

	imgui *debugui_ebiten.ImguiBackend
	perf  *debugui.PerformanceStats
	timer *debugui.FrameTimer
}

func NewGame(driver *tetris.Driver, keys config.Keymap, ghost bool) *Game {
	return &Game{driver: driver, keys: keys, ghost: ghost}
}

// EnableDebugUI draws the performance and inspector windows over the game.
func (g *Game) EnableDebugUI(backend *debugui_ebiten.ImguiBackend) {
	g.imgui = backend
	g.perf = debugui.NewPerformanceStats(120)
	g.timer = debugui.NewFrameTimer()
	inspector := debugui.NewGameInspector(g.driver.Do)

	backend.Overlay.Add(
		debugui.Item{Render: func() { g.perf.Render(g.driver.Stats()) }},
		debugui.Item{Render: func() { inspector.Render(g.driver.Engine().Snapshot()) }},
	)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.frame++

	if g.imgui != nil {
		g.perf.Record(g.timer.GetDeltaTime())
		g.imgui.Update()
	}

	if g.imgui == nil || !g.imgui.Overlay.Input().WantCaptureKeyboard {
		g.handleInput()
	}

	g.driver.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) handleInput() {
	g.pressed = ebiten.AppendPressedKeys(g.pressed[:0])
	for _, key := range g.pressed {
		cmd, ok := g.keys.Lookup(key.String())
		if !ok {
			continue
		}
		if config.DefaultKeyRepeat.Fire(cmd, inpututil.KeyPressDuration(key)) {
			g.driver.Do(cmd)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdropColor)
	snap := g.driver.Engine().Snapshot()
	g.drawBoard(screen, snap)
	g.drawPanel(screen, snap)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, snap tetris.Snapshot) {
	grid := view.Compose(snap, view.Options{Ghost: g.ghost})
	flash := (g.frame/6)%2 == 0

	for y, row := range grid {
		for x, cell := range row {
			px := float32(boardOffset + x*cellSize)
			py := float32(boardOffset + y*cellSize)

			var clr color.Color
			switch {
			case cell.Clearing && flash:
				clr = flashColor
			case !cell.Empty():
				clr = view.RGBA(cell.Color)
			case cell.Ghost:
				clr = ghostColor
			default:
				clr = view.RGBA(tetris.Empty)
			}
			vector.DrawFilledRect(screen, px, py, cellSize, cellSize, gridColor, false)
			vector.DrawFilledRect(screen, px+1, py+1, cellSize-2, cellSize-2, clr, false)
		}
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, snap tetris.Snapshot) {
	x := boardOffset*2 + tetris.BoardWidth*cellSize
	lines := []string{
		fmt.Sprintf("SCORE  %d", snap.Score),
		fmt.Sprintf("LEVEL  %d", snap.Level),
		fmt.Sprintf("LINES  %d", snap.Lines),
		fmt.Sprintf("SPEED  %s", snap.DropInterval),
		"",
	}
	lines = append(lines, g.keys.Help()...)
	lines = append(lines, "quit: q esc")
	if snap.GameOver {
		lines = append(lines, "", "GAME OVER", "press r to restart")
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), x, boardOffset)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}
