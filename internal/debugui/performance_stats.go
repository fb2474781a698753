package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// PerformanceStats keeps a ring of recent frame times and shows them next to
// the driver counters.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds one frame duration in seconds.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.recorded = min(ps.recorded+1, ps.historyFrames)
}

// AvgFrameTime returns the mean of the recorded frames in milliseconds.
func (ps *PerformanceStats) AvgFrameTime() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

func (ps *PerformanceStats) Render(stats tetris.DriverStats) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.AvgFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}
	imgui.Text(fmt.Sprintf("Drop Interval: %s", stats.LastInterval))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Driver Counters") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("DriverStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Counter")
			imgui.TableSetupColumn("Value")
			imgui.TableHeadersRow()

			for _, row := range counterRows(stats) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.value))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type counterRow struct {
	name  string
	value int64
}

func counterRows(s tetris.DriverStats) []counterRow {
	return []counterRow{
		{"Ticks", s.Ticks},
		{"Commands", s.Commands},
		{"Rejected", s.Rejected},
		{"Queued", s.Queued},
		{"Locks", s.Locks},
		{"Clears", s.Clears},
		{"Rows Cleared", s.RowsCleared},
		{"Level Ups", s.LevelUps},
		{"Game Overs", s.GameOvers},
	}
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
