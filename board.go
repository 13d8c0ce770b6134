package panzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Board wires the full interaction stack together: an Ebiten render
// [Layer] as the sink, the [Viewport] engine on top of it, the [Gestures]
// layer fed by per-frame input polling, and a [Dragger] for element
// repositioning. A Board plugs directly into an ebiten.Game, or use [Run]
// for a ready-made game loop.
type Board struct {
	layer    *Layer
	vp       *Viewport
	gestures *Gestures
	dragger  *Dragger
	poll     poller

	injectQueue     []syntheticEvent
	script          *Script
	screenshotQueue []string

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	// ShowHUD draws an FPS and viewport-state readout in the corner.
	ShowHUD bool

	readout *debugReadout
	hud     hud
}

// NewBoard creates a board with the given container size. Wire element
// dragging with [Board.SetElements]; without it every press pans.
func NewBoard(width, height float64, cfg Config) *Board {
	layer := NewLayer(width, height, cfg.Pattern, cfg.PatternTile)
	vp := NewViewport(layer, cfg)
	b := &Board{
		layer:         layer,
		vp:            vp,
		gestures:      NewGestures(vp, nil, nil),
		ScreenshotDir: "screenshots",
	}
	b.poll.g = b.gestures
	return b
}

// SetElements installs the element source, move callback, and hit test
// that make elements draggable. The drag holds a cursor-shape interaction
// scope while active.
func (b *Board) SetElements(source ElementSource, move MoveFunc, hit HitFunc) {
	b.dragger = NewDragger(b.vp, source, move)
	b.dragger.SetScope(&CursorScope{})
	b.gestures.dragger = b.dragger
	b.gestures.hit = hit
}

// Viewport returns the board's viewport engine.
func (b *Board) Viewport() *Viewport {
	return b.vp
}

// Layer returns the board's render layer for attaching content painters.
func (b *Board) Layer() *Layer {
	return b.layer
}

// Gestures returns the board's gesture layer, e.g. to set a click callback
// or to feed synthetic events directly.
func (b *Board) Gestures() *Gestures {
	return b.gestures
}

// Dragger returns the drag subsystem, or nil before SetElements.
func (b *Board) Dragger() *Dragger {
	return b.dragger
}

// SetDebug enables or disables the stderr viewport readout.
func (b *Board) SetDebug(enabled bool) {
	if enabled && b.readout == nil {
		b.readout = newDebugReadout(b.vp)
		return
	}
	if !enabled && b.readout != nil {
		b.readout.stop()
		b.readout = nil
	}
}

// Update advances the board by one frame: the gesture script (if any), one
// injected synthetic event or the real polled input, and the viewport's
// glide animation. Call from ebiten.Game.Update.
func (b *Board) Update() {
	if b.script != nil {
		b.script.step(b)
	}
	if !b.consumeInjected() {
		b.poll.step()
	}
	b.vp.Update(1.0 / float64(ebiten.TPS()))
}

// Draw paints the layer (background pattern plus attached content) and
// flushes any queued screenshots. Call from ebiten.Game.Draw.
func (b *Board) Draw(screen *ebiten.Image) {
	b.layer.Draw(screen)
	if b.ShowHUD {
		b.hud.draw(screen, b.vp.State())
	}
	b.flushScreenshots(screen)
}

// Layout implements the ebiten.Game layout contract and doubles as the
// container-resize observer: a size change resizes the layer and reapplies
// the current transform without changing offset or scale.
func (b *Board) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	bounds := b.layer.Bounds()
	if bounds.Width != w || bounds.Height != h {
		b.layer.Resize(w, h)
		b.vp.Resized()
	}
	return outsideWidth, outsideHeight
}

// Destroy cancels in-flight gestures and destroys the viewport. Content
// attached to the layer stays attached; the layer and its content belong
// to the caller.
func (b *Board) Destroy() {
	b.gestures.CancelAll()
	b.vp.Destroy()
}

// RunConfig configures the window for [Run].
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the FPS and viewport-state readout.
	ShowFPS bool
	// Debug enables the stderr viewport readout.
	Debug bool
}

// game adapts a Board to ebiten.Game.
type game struct {
	board *Board
}

func (g *game) Update() error {
	g.board.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.board.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.board.Layout(outsideWidth, outsideHeight)
}

// Run opens a resizable window and drives the board with a standard game
// loop. Blocks until the window closes.
func Run(board *Board, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 768
	}
	board.SetDebug(cfg.Debug)
	board.ShowHUD = cfg.ShowFPS
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{board: board})
}
