package panzoom

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hud is the on-screen debug readout: FPS, TPS, and the current viewport
// state in the top-left corner. The text is rebuilt every ~0.5 seconds.
type hud struct {
	last time.Time
	text string
}

func (h *hud) draw(screen *ebiten.Image, st State) {
	if h.text == "" || time.Since(h.last) >= 500*time.Millisecond {
		h.last = time.Now()
		h.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\noffset: (%.1f, %.1f)\nscale: %.3f",
			ebiten.ActualFPS(), ebiten.ActualTPS(), st.OffsetX, st.OffsetY, st.Scale)
	}
	ebitenutil.DebugPrint(screen, h.text)
}
