package panzoom

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Configuration defaults applied by NewViewport for zero-valued fields.
const (
	DefaultMinScale           = 0.1
	DefaultMaxScale           = 10.0
	DefaultWheelSensitivity   = 0.001
	DefaultTransitionDuration = 150 * time.Millisecond
	DefaultDragDeadZone       = 4.0 // pixels
)

// State is an immutable snapshot of the viewport transform. OffsetX and
// OffsetY are the screen-space position of the world origin; Scale is the
// uniform zoom factor. A world point w maps to screen as w*Scale + Offset.
type State struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// Config controls viewport behavior. The zero value is usable: zero fields
// fall back to the package defaults, so pan and zoom are enabled and scale
// is clamped to [0.1, 10].
type Config struct {
	// MinScale and MaxScale bound the zoom factor. Scale mutations are
	// clamped into [MinScale, MaxScale]; no operation can escape them.
	MinScale float64
	MaxScale float64
	// WheelSensitivity converts a normalized wheel delta (pixels) into a
	// relative zoom delta.
	WheelSensitivity float64
	// DisablePan suppresses pointer-drag panning in the gesture layer.
	// Programmatic PanBy/SetState calls are unaffected.
	DisablePan bool
	// DisableZoom suppresses wheel and pinch zooming in the gesture layer.
	// Programmatic ZoomTo/ZoomBy calls are unaffected.
	DisableZoom bool
	// SmoothTransitions animates programmatic moves (Fit, CenterOn, Reset)
	// over TransitionDuration instead of snapping. Gesture-driven mutation
	// is always immediate.
	SmoothTransitions  bool
	TransitionDuration time.Duration
	// Pattern is the background pattern painted by the Layer.
	Pattern Pattern
	// PatternTile is the world-space tile size of the background pattern.
	PatternTile float64
	// DragDeadZone is the minimum pointer movement in pixels before an
	// element drag begins.
	DragDeadZone float64
}

// withDefaults returns a copy of c with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.MinScale == 0 {
		c.MinScale = DefaultMinScale
	}
	if c.MaxScale == 0 {
		c.MaxScale = DefaultMaxScale
	}
	if c.WheelSensitivity == 0 {
		c.WheelSensitivity = DefaultWheelSensitivity
	}
	if c.TransitionDuration == 0 {
		c.TransitionDuration = DefaultTransitionDuration
	}
	if c.PatternTile == 0 {
		c.PatternTile = defaultPatternTile
	}
	if c.DragDeadZone == 0 {
		c.DragDeadZone = DefaultDragDeadZone
	}
	return c
}

// stateListener is one registered viewport-change callback.
type stateListener struct {
	id uint32
	fn func(State)
}

// Subscription allows removing a registered viewport-change listener.
type Subscription struct {
	id uint32
	vp *Viewport
}

// Remove unregisters this listener so it no longer fires.
// Safe to call more than once.
func (s Subscription) Remove() {
	if s.vp == nil {
		return
	}
	ls := s.vp.listeners
	for i := range ls {
		if ls[i].id == s.id {
			copy(ls[i:], ls[i+1:])
			ls[len(ls)-1] = stateListener{}
			s.vp.listeners = ls[:len(ls)-1]
			return
		}
	}
}

// glideAnim holds active transition tweens for offset and scale.
type glideAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenS *gween.Tween
	doneX  bool
	doneY  bool
	doneS  bool
}

// Viewport is the single source of truth for the pan/zoom transform of an
// infinite 2D board. It owns the {offset, scale} state, converts between
// screen and world coordinates, clamps every mutation, pushes the resulting
// affine transform to its render sink, and notifies subscribers on change.
//
// All methods must be called from the input/update goroutine; Viewport is
// not safe for concurrent use. After Destroy every method is a no-op.
type Viewport struct {
	cfg       Config
	state     State
	sink      RenderSink
	listeners []stateListener
	nextID    uint32
	glide     *glideAnim
	destroyed bool
}

// NewViewport creates a viewport bound to the given render sink with state
// {0, 0, 1}. The sink's transform is initialized immediately. A nil sink is
// allowed; coordinate conversion then has no container to center on and
// Fit/CenterOn become no-ops.
func NewViewport(sink RenderSink, cfg Config) *Viewport {
	v := &Viewport{
		cfg:   cfg.withDefaults(),
		state: State{Scale: 1},
		sink:  sink,
	}
	v.applyTransform()
	return v
}

// Config returns the effective configuration (defaults applied).
func (v *Viewport) Config() Config {
	return v.cfg
}

// State returns the current transform snapshot.
func (v *Viewport) State() State {
	return v.state
}

// Transform returns the current world-to-screen affine matrix
// {scale, 0, 0, scale, offsetX, offsetY} in the layout used by [RenderSink].
func (v *Viewport) Transform() [6]float64 {
	return translateScale(v.state.OffsetX, v.state.OffsetY, v.state.Scale)
}

// SetState is the single mutation entry point. The scale is clamped into
// [MinScale, MaxScale], the resulting transform is pushed to the render
// sink, and every subscriber is notified exactly once with the clamped
// snapshot, but only if some field actually changed. Setting the current
// values is a no-op and fires no notification.
func (v *Viewport) SetState(next State) {
	if v.destroyed {
		return
	}
	v.glide = nil
	v.setStateNow(next)
}

// setStateNow applies a mutation without cancelling an active glide.
func (v *Viewport) setStateNow(next State) {
	next.Scale = clamp(next.Scale, v.cfg.MinScale, v.cfg.MaxScale)
	if next == v.state {
		return
	}
	v.state = next
	v.applyTransform()
	v.notify()
}

// applyTransform pushes the current transform to the render sink.
func (v *Viewport) applyTransform() {
	if v.sink != nil {
		v.sink.SetTransform(v.Transform())
	}
}

// notify invokes every listener with the new snapshot. A panicking listener
// is recovered and logged; the remaining listeners still run and the
// viewport state is never corrupted.
func (v *Viewport) notify() {
	snapshot := v.state
	for _, l := range v.listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					_, _ = fmt.Fprintf(os.Stderr, "[panzoom] viewport listener panic: %v\n", r)
				}
			}()
			l.fn(snapshot)
		}()
	}
}

// Subscribe registers a viewport-change listener. The listener fires
// synchronously after each distinct mutation and must tolerate event-rate
// call frequency during continuous gestures.
func (v *Viewport) Subscribe(fn func(State)) Subscription {
	if v.destroyed {
		return Subscription{}
	}
	v.nextID++
	v.listeners = append(v.listeners, stateListener{id: v.nextID, fn: fn})
	return Subscription{id: v.nextID, vp: v}
}

// ScreenToWorld converts a container-local screen point to world space
// under the current state.
func (v *Viewport) ScreenToWorld(p Vec2) Vec2 {
	return Vec2{
		X: (p.X - v.state.OffsetX) / v.state.Scale,
		Y: (p.Y - v.state.OffsetY) / v.state.Scale,
	}
}

// WorldToScreen converts a world point to container-local screen space
// under the current state. Exact inverse of [Viewport.ScreenToWorld].
func (v *Viewport) WorldToScreen(p Vec2) Vec2 {
	return Vec2{
		X: p.X*v.state.Scale + v.state.OffsetX,
		Y: p.Y*v.state.Scale + v.state.OffsetY,
	}
}

// PanBy shifts the viewport offset by (dx, dy) screen pixels.
func (v *Viewport) PanBy(dx, dy float64) {
	v.SetState(State{
		OffsetX: v.state.OffsetX + dx,
		OffsetY: v.state.OffsetY + dy,
		Scale:   v.state.Scale,
	})
}

// ZoomTo sets the zoom factor so that the world point currently under the
// anchor (screen coordinates; default container center) stays visually
// fixed. The anchor's world point is resolved under the old scale and the
// offset is corrected so it re-projects to the same screen position under
// the new scale.
func (v *Viewport) ZoomTo(scale float64, anchor ...Vec2) {
	if v.destroyed {
		return
	}
	c := v.containerCenter()
	if len(anchor) > 0 {
		c = anchor[0]
	}

	world := v.ScreenToWorld(c)
	newScale := clamp(scale, v.cfg.MinScale, v.cfg.MaxScale)

	// Where the anchored world point would land with the new scale but the
	// old offset; the difference is the offset correction.
	screen := Vec2{
		X: world.X*newScale + v.state.OffsetX,
		Y: world.Y*newScale + v.state.OffsetY,
	}
	v.SetState(State{
		OffsetX: v.state.OffsetX + c.X - screen.X,
		OffsetY: v.state.OffsetY + c.Y - screen.Y,
		Scale:   newScale,
	})
}

// ZoomBy applies a relative zoom delta: newScale = scale * (1 + delta),
// anchored like [Viewport.ZoomTo]. Zooming outward while already pinned at
// a bound exits early so subscribers see no redundant notification churn.
func (v *Viewport) ZoomBy(delta float64, anchor ...Vec2) {
	if v.destroyed || delta == 0 {
		return
	}
	if delta > 0 && v.state.Scale >= v.cfg.MaxScale {
		return
	}
	if delta < 0 && v.state.Scale <= v.cfg.MinScale {
		return
	}
	v.ZoomTo(v.state.Scale*(1+delta), anchor...)
}

// Fit zooms and pans so the world-space bounds rect (minus padding pixels on
// every side) fills the container, then centers the viewport on the bounds'
// centroid. Skipped silently when the bounds or the container have no area,
// so the state never picks up NaN or Inf.
func (v *Viewport) Fit(bounds Rect, padding float64) {
	if v.destroyed || v.sink == nil {
		return
	}
	container := v.sink.Bounds()
	availW := container.Width - 2*padding
	availH := container.Height - 2*padding
	if bounds.Width <= 0 || bounds.Height <= 0 || availW <= 0 || availH <= 0 {
		return
	}

	scale := clamp(math.Min(availW/bounds.Width, availH/bounds.Height),
		v.cfg.MinScale, v.cfg.MaxScale)
	centroid := bounds.Center()
	center := container.Center()
	v.moveTo(State{
		OffsetX: center.X - centroid.X*scale,
		OffsetY: center.Y - centroid.Y*scale,
		Scale:   scale,
	})
}

// CenterOn pans so the given world point maps to the container's screen
// center under the current scale.
func (v *Viewport) CenterOn(world Vec2) {
	if v.destroyed || v.sink == nil {
		return
	}
	center := v.containerCenter()
	v.moveTo(State{
		OffsetX: center.X - world.X*v.state.Scale,
		OffsetY: center.Y - world.Y*v.state.Scale,
		Scale:   v.state.Scale,
	})
}

// Reset restores the identity viewport {0, 0, 1}.
func (v *Viewport) Reset() {
	if v.destroyed {
		return
	}
	v.moveTo(State{Scale: 1})
}

// moveTo routes a programmatic move through the glide animation when smooth
// transitions are enabled, otherwise applies it immediately.
func (v *Viewport) moveTo(target State) {
	if !v.cfg.SmoothTransitions {
		v.SetState(target)
		return
	}
	d := float32(v.cfg.TransitionDuration.Seconds())
	v.glide = &glideAnim{
		tweenX: gween.New(float32(v.state.OffsetX), float32(target.OffsetX), d, ease.OutQuad),
		tweenY: gween.New(float32(v.state.OffsetY), float32(target.OffsetY), d, ease.OutQuad),
		tweenS: gween.New(float32(v.state.Scale), float32(target.Scale), d, ease.OutQuad),
	}
}

// Update advances an active glide animation by dt seconds. Call once per
// frame; a no-op when nothing is animating.
func (v *Viewport) Update(dt float64) {
	if v.destroyed || v.glide == nil {
		return
	}
	g := v.glide
	next := v.state
	if !g.doneX {
		val, done := g.tweenX.Update(float32(dt))
		next.OffsetX = float64(val)
		g.doneX = done
	}
	if !g.doneY {
		val, done := g.tweenY.Update(float32(dt))
		next.OffsetY = float64(val)
		g.doneY = done
	}
	if !g.doneS {
		val, done := g.tweenS.Update(float32(dt))
		next.Scale = float64(val)
		g.doneS = done
	}
	v.setStateNow(next)
	if g.doneX && g.doneY && g.doneS {
		v.glide = nil
	}
}

// Gliding reports whether a smooth transition is in progress.
func (v *Viewport) Gliding() bool {
	return v.glide != nil
}

// VisibleBounds returns the world-space rect currently visible through the
// container, for culling off-screen content.
func (v *Viewport) VisibleBounds() Rect {
	if v.sink == nil {
		return Rect{}
	}
	return transformRect(invertAffine(v.Transform()), v.sink.Bounds())
}

// Resized reapplies the current transform after the container changed size.
// State is untouched: resizing never moves or rescales the content.
func (v *Viewport) Resized() {
	if v.destroyed {
		return
	}
	v.applyTransform()
}

// containerCenter returns the screen-space center of the render sink, or
// the origin when no sink is attached.
func (v *Viewport) containerCenter() Vec2 {
	if v.sink == nil {
		return Vec2{}
	}
	return v.sink.Bounds().Center()
}

// Destroy resets the sink transform to identity, releases the sink
// reference, and drops all subscribers. Content attached to the sink is not
// touched; its disposal belongs to the external owner. Every call on a
// destroyed viewport is a no-op.
func (v *Viewport) Destroy() {
	if v.destroyed {
		return
	}
	if v.sink != nil {
		v.sink.SetTransform(identityTransform)
	}
	v.sink = nil
	v.listeners = nil
	v.glide = nil
	v.destroyed = true
}

// clamp restricts val to [min, max].
func clamp(val, min, max float64) float64 {
	return math.Max(min, math.Min(val, max))
}
