package vitrine

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often the FPS line is recomputed, in seconds.
const hudRefresh = 0.5

// HUD prints the inspected exhibit's title and description in the top-left
// corner, optionally under an FPS/TPS line. It is an EventSink fed by the
// controller and a System that refreshes the frame-rate readout; pass it to
// RunConfig.HUD to have it drawn after the scene.
type HUD struct {
	ShowFPS bool

	caption string
	stats   string
	elapsed float64
}

// NewHUD returns an empty overlay.
func NewHUD(showFPS bool) *HUD {
	return &HUD{ShowFPS: showFPS}
}

// EmitSessionEvent shows the exhibit while a session is open.
func (h *HUD) EmitSessionEvent(e SessionEvent) {
	switch e.Type {
	case SessionEntered, SessionReplaced:
		h.caption = e.Title
		if e.Description != "" {
			h.caption += "\n" + e.Description
		}
	case SessionExited:
		h.caption = ""
	}
}

// Caption returns the exhibit text currently shown.
func (h *HUD) Caption() string {
	return h.caption
}

// Update refreshes the FPS line every half second.
func (h *HUD) Update(dt float64) {
	if !h.ShowFPS {
		return
	}
	h.elapsed += dt
	if h.stats != "" && h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0
	h.stats = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Draw prints the overlay onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	text := h.caption
	if h.ShowFPS {
		text = h.stats + text
	}
	if text != "" {
		ebitenutil.DebugPrint(screen, text)
	}
}
