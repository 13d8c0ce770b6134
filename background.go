package panzoom

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	defaultPatternTile = 40.0 // world units between grid lines / dots
	dotRadius          = 1.5  // screen pixels
	gridLineWidth      = 1.0  // screen pixels
)

// patternColor is the default tint for grid lines and dots.
var patternColor = color.RGBA{R: 0x3a, G: 0x3f, B: 0x4c, A: 0xff}

// patternPhase returns the screen-space phase of an infinite tiling and the
// tile size after zoom. The tiling is anchored container-local: the phase is
// offset mod (tile*scale), normalized to [0, tile*scale), so panning in any
// direction never produces a visible seam.
func patternPhase(offset, scale, tile float64) (phase, scaled float64) {
	scaled = tile * scale
	if scaled <= 0 {
		return 0, 0
	}
	phase = math.Mod(offset, scaled)
	if phase < 0 {
		phase += scaled
	}
	return phase, scaled
}

// drawPattern paints the configured background pattern across dst using the
// viewport state. The pattern tiles in screen space with its phase locked to
// the world origin, so it reads as an infinite world-space pattern.
func drawPattern(dst *ebiten.Image, pattern Pattern, state State, tile float64) {
	if pattern == PatternNone {
		return
	}
	b := dst.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	phaseX, scaled := patternPhase(state.OffsetX, state.Scale, tile)
	phaseY, _ := patternPhase(state.OffsetY, state.Scale, tile)
	if scaled < 4 {
		// Tiles below a few pixels degenerate into noise; skip instead of
		// issuing thousands of draws.
		return
	}

	switch pattern {
	case PatternGrid:
		for x := phaseX - scaled; x <= w; x += scaled {
			vector.StrokeLine(dst, float32(x), 0, float32(x), float32(h),
				gridLineWidth, patternColor, false)
		}
		for y := phaseY - scaled; y <= h; y += scaled {
			vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y),
				gridLineWidth, patternColor, false)
		}
	case PatternDots:
		for x := phaseX - scaled; x <= w; x += scaled {
			for y := phaseY - scaled; y <= h; y += scaled {
				vector.DrawFilledCircle(dst, float32(x), float32(y),
					dotRadius, patternColor, true)
			}
		}
	}
}
