package panzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSink is the surface the viewport pushes its transform to. The sink
// reports its container rectangle for centering and fit calculations and
// re-renders with the new transform on each change. The viewport neither
// knows nor cares how content is painted.
type RenderSink interface {
	// SetTransform installs a 2D affine transform [a, b, c, d, tx, ty]
	// mapping world space to container-local screen space.
	SetTransform(m [6]float64)
	// Bounds returns the container rectangle in screen space.
	Bounds() Rect
}

// DrawFunc paints content onto the layer. geom is the current world-to-screen
// transform; content positioned in world space should be drawn through it.
type DrawFunc func(screen *ebiten.Image, geom ebiten.GeoM)

// drawHook is one attached content painter.
type drawHook struct {
	id uint32
	fn DrawFunc
}

// LayerHandle allows detaching content previously attached to a Layer.
type LayerHandle struct {
	id    uint32
	layer *Layer
}

// Detach removes the attached draw hook. Safe to call more than once.
func (h LayerHandle) Detach() {
	if h.layer == nil {
		return
	}
	hooks := h.layer.hooks
	for i := range hooks {
		if hooks[i].id == h.id {
			copy(hooks[i:], hooks[i+1:])
			hooks[len(hooks)-1] = drawHook{}
			h.layer.hooks = hooks[:len(hooks)-1]
			return
		}
	}
}

// Layer is the Ebiten-backed render sink: a mount point anchored at the
// world origin that content painters attach to. It stores the viewport
// transform, paints the background pattern behind the content, and invokes
// each attached painter in attach order with the current transform.
//
// The Layer owns the mount point, never the content: detaching hooks is the
// attaching caller's responsibility and outlives any Viewport bound to the
// layer.
type Layer struct {
	width, height float64
	transform     [6]float64
	pattern       Pattern
	tile          float64
	hooks         []drawHook
	nextID        uint32
}

// NewLayer creates a render layer with the given container size and
// background pattern. tile <= 0 selects the default pattern tile size.
func NewLayer(width, height float64, pattern Pattern, tile float64) *Layer {
	if tile <= 0 {
		tile = defaultPatternTile
	}
	return &Layer{
		width:     width,
		height:    height,
		transform: identityTransform,
		pattern:   pattern,
		tile:      tile,
	}
}

// SetTransform implements [RenderSink].
func (l *Layer) SetTransform(m [6]float64) {
	l.transform = m
}

// Transform returns the currently installed affine transform.
func (l *Layer) Transform() [6]float64 {
	return l.transform
}

// Bounds implements [RenderSink].
func (l *Layer) Bounds() Rect {
	return Rect{Width: l.width, Height: l.height}
}

// Resize updates the container size. The transform is left untouched; the
// owning viewport reapplies it via [Viewport.Resized].
func (l *Layer) Resize(width, height float64) {
	l.width = width
	l.height = height
}

// Attach registers a content painter and returns a handle for detaching it.
// Painters run in attach order, after the background pattern.
func (l *Layer) Attach(fn DrawFunc) LayerHandle {
	l.nextID++
	l.hooks = append(l.hooks, drawHook{id: l.nextID, fn: fn})
	return LayerHandle{id: l.nextID, layer: l}
}

// GeoM returns the installed transform as an ebiten.GeoM.
func (l *Layer) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, l.transform[0])
	g.SetElement(1, 0, l.transform[1])
	g.SetElement(0, 1, l.transform[2])
	g.SetElement(1, 1, l.transform[3])
	g.SetElement(0, 2, l.transform[4])
	g.SetElement(1, 2, l.transform[5])
	return g
}

// Draw paints the background pattern and then every attached content hook.
func (l *Layer) Draw(screen *ebiten.Image) {
	state := State{
		OffsetX: l.transform[4],
		OffsetY: l.transform[5],
		Scale:   l.transform[0],
	}
	drawPattern(screen, l.pattern, state, l.tile)

	geom := l.GeoM()
	for _, h := range l.hooks {
		h.fn(screen, geom)
	}
}
