// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend and the overlay it
// draws. Draw and Layout come from the embedded backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay debugui.Overlay
}

// NewImguiBackend creates the backend and sets up the window. Ebiten runs the
// window, so callers still pass their game to ebiten.RunGame.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini
	return &ImguiBackend{EbitenBackend: backend}
}

// Update runs one ImGui frame drawing the overlay items.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	b.Overlay.Render()
	b.EndFrame()
}
