// Package debugui provides Dear ImGui windows that inspect a running game:
// driver counters, frame timing and the engine state.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function drawn once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay draws a set of items. Call Render between the backend's BeginFrame
// and EndFrame.
type Overlay struct {
	items []Item
	input InputState
}

func (o *Overlay) Add(items ...Item) {
	o.items = append(o.items, items...)
}

// Render refreshes the input capture state and draws every item.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}

// Input returns the capture state from the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}
