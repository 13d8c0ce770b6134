package panzoom

import "math"

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	wheelLineMultiplier = 16.0  // one wheel line ≈ 16 pixels
	wheelPageMultiplier = 400.0 // one wheel page ≈ 400 pixels
	maxWheelZoomStep    = 0.1   // per-event zoom delta clamp
)

// HitFunc resolves the topmost element under a screen point, or false when
// the point hits empty board.
type HitFunc func(screen Vec2) (ElementID, bool)

// gesturePointer is the per-pointer tracking state.
type gesturePointer struct {
	down  bool
	last  Vec2
	start Vec2
	touch bool
}

// pinchSession is the two-finger zoom state.
type pinchSession struct {
	active   bool
	lastDist float64
}

// Gestures converts discrete pointer, touch, and wheel events into viewport
// pans and zooms and element drags. Pointer 0 is the mouse; pointers 1-9
// are touch slots.
//
// Panning captures a single pointer: the first primary-button press on
// empty board enters PanActive, moves from that pointer pan the viewport,
// and its release (or cancellation) returns to Idle. Events from other
// pointers are ignored while captured, which suppresses multi-pointer
// noise. A second touch promotes the gesture to a pinch zoom anchored at
// the touch midpoint; the pinch downgrades back to Idle when the touch
// count leaves two.
type Gestures struct {
	vp      *Viewport
	dragger *Dragger
	hit     HitFunc

	pointers [maxPointers]gesturePointer
	pinch    pinchSession

	panPointer  int // pointer captured for panning, -1 when idle
	dragPointer int // pointer driving an element drag, -1 when idle
	dragTarget  ElementID
	dragArmed   bool // press landed on an element, dead zone not yet exceeded

	// OnClick, when set, fires for a press+release on the same element
	// without the drag dead zone being exceeded.
	OnClick func(id ElementID, world Vec2)
}

// NewGestures creates the gesture layer over a viewport. dragger and hit
// are optional: without them every press pans.
func NewGestures(vp *Viewport, dragger *Dragger, hit HitFunc) *Gestures {
	return &Gestures{
		vp:          vp,
		dragger:     dragger,
		hit:         hit,
		panPointer:  -1,
		dragPointer: -1,
	}
}

// PointerDown feeds a press for the given pointer at container-local
// screen coordinates. Touch presses use pointer ids 1-9.
func (g *Gestures) PointerDown(id int, pos Vec2, button MouseButton) {
	if id < 0 || id >= maxPointers {
		return
	}
	ps := &g.pointers[id]
	ps.down = true
	ps.last = pos
	ps.start = pos
	ps.touch = id > 0

	if g.refreshPinch() {
		return
	}
	if button != MouseButtonLeft {
		return
	}

	// A press over an element arms a drag; the drag session itself starts
	// once movement leaves the dead zone, so plain clicks stay clicks.
	if g.dragPointer < 0 && g.hit != nil {
		if target, ok := g.hit(pos); ok {
			g.dragPointer = id
			g.dragTarget = target
			g.dragArmed = true
			return
		}
	}

	if g.panPointer < 0 && !g.vp.cfg.DisablePan {
		g.panPointer = id
	}
}

// PointerMove feeds a move for the given pointer. Moves from pointers that
// hold no capture are ignored.
func (g *Gestures) PointerMove(id int, pos Vec2) {
	if id < 0 || id >= maxPointers {
		return
	}
	ps := &g.pointers[id]
	prev := ps.last
	ps.last = pos
	if !ps.down {
		return
	}

	if g.pinch.active {
		g.stepPinch()
		return
	}

	if id == g.dragPointer {
		if g.dragArmed {
			dx := pos.X - ps.start.X
			dy := pos.Y - ps.start.Y
			if math.Hypot(dx, dy) <= g.vp.cfg.DragDeadZone {
				return
			}
			g.dragArmed = false
			if g.dragger == nil || !g.dragger.Begin(g.dragTarget, ps.start) {
				// Element vanished between press and dead-zone exit: fall
				// back to panning from here.
				g.dragPointer = -1
				if g.panPointer < 0 && !g.vp.cfg.DisablePan {
					g.panPointer = id
				}
				return
			}
		}
		g.dragger.Move(pos)
		return
	}

	if id == g.panPointer {
		g.vp.PanBy(pos.X-prev.X, pos.Y-prev.Y)
	}
}

// PointerUp feeds a release for the given pointer.
func (g *Gestures) PointerUp(id int, pos Vec2) {
	if id < 0 || id >= maxPointers {
		return
	}
	ps := &g.pointers[id]
	ps.last = pos
	g.releasePointer(id, true)
}

// PointerCancel handles externally revoked capture (window blur, touch
// stream loss). The gesture returns to Idle and in-flight deltas are
// discarded so the next gesture starts from clean anchor state.
func (g *Gestures) PointerCancel(id int) {
	if id < 0 || id >= maxPointers {
		return
	}
	g.releasePointer(id, false)
}

// releasePointer clears a pointer's capture roles and refreshes the pinch
// state. clean distinguishes an orderly release from a cancellation.
func (g *Gestures) releasePointer(id int, clean bool) {
	ps := &g.pointers[id]
	wasDown := ps.down
	ps.down = false

	if id == g.dragPointer {
		if g.dragArmed {
			// Never left the dead zone: this was a click, not a drag.
			if clean && wasDown && g.OnClick != nil {
				g.OnClick(g.dragTarget, g.vp.ScreenToWorld(ps.last))
			}
		} else if g.dragger != nil {
			if clean {
				g.dragger.End()
			} else {
				g.dragger.Cancel()
			}
		}
		g.dragPointer = -1
		g.dragArmed = false
	}
	if id == g.panPointer {
		g.panPointer = -1
	}
	g.refreshPinch()
}

// CancelAll aborts every in-flight gesture: the pan capture, an element
// drag (restoring the element), and the pinch. Used when input focus is
// lost or the user hits escape mid-gesture.
func (g *Gestures) CancelAll() {
	for i := 0; i < maxPointers; i++ {
		if g.pointers[i].down {
			g.releasePointer(i, false)
			g.pointers[i].down = false
		}
	}
	g.panPointer = -1
	g.dragPointer = -1
	g.dragArmed = false
	g.pinch.active = false
}

// activeTouches returns the ids of currently-down touch pointers, capped at
// the two the pinch tracks.
func (g *Gestures) activeTouches() (ids [2]int, count int) {
	for i := 1; i < maxPointers; i++ {
		if g.pointers[i].down {
			if count < 2 {
				ids[count] = i
			}
			count++
		}
	}
	return ids, count
}

// refreshPinch transitions the pinch machine after a touch count change.
// Returns true when a pinch is (still) active, which suppresses pan and
// drag handling for the involved touches.
func (g *Gestures) refreshPinch() bool {
	ids, count := g.activeTouches()
	if count != 2 || g.vp.cfg.DisableZoom {
		g.pinch.active = false
		return false
	}
	if !g.pinch.active {
		g.pinch.active = true
		g.pinch.lastDist = g.touchDistance(ids)

		// The pinch owns both touches: drop any pan or drag they started.
		if g.panPointer > 0 {
			g.panPointer = -1
		}
		if g.dragPointer > 0 {
			if !g.dragArmed && g.dragger != nil {
				g.dragger.Cancel()
			}
			g.dragPointer = -1
			g.dragArmed = false
		}
	}
	return true
}

// stepPinch advances an active pinch from the current touch positions:
// the scale changes by the ratio of the new to the previous inter-touch
// distance, anchored at the touch midpoint.
func (g *Gestures) stepPinch() {
	ids, count := g.activeTouches()
	if count != 2 {
		g.pinch.active = false
		return
	}
	dist := g.touchDistance(ids)
	if g.pinch.lastDist > 0 && dist > 0 {
		ratio := dist / g.pinch.lastDist
		p0 := g.pointers[ids[0]].last
		p1 := g.pointers[ids[1]].last
		mid := Vec2{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
		g.vp.ZoomTo(g.vp.State().Scale*ratio, mid)
	}
	g.pinch.lastDist = dist
}

func (g *Gestures) touchDistance(ids [2]int) float64 {
	p0 := g.pointers[ids[0]].last
	p1 := g.pointers[ids[1]].last
	return math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
}

// Wheel feeds a wheel event at the given screen position. Vertical deltas
// always zoom, never scroll, and horizontal deltas are ignored so a
// skewed trackpad gesture cannot pan sideways. Line and page deltas are
// normalized to pixels before the configured sensitivity applies, and the
// resulting zoom step is clamped so one coarse mouse notch cannot cause a
// visually discontinuous jump.
func (g *Gestures) Wheel(dx, dy float64, mode WheelDeltaMode, pos Vec2) {
	_ = dx // horizontal wheel movement is intentionally dropped
	if dy == 0 || g.vp.cfg.DisableZoom {
		return
	}
	g.vp.ZoomBy(normalizeWheelDelta(dy, mode, g.vp.cfg.WheelSensitivity), pos)
}

// normalizeWheelDelta converts a raw vertical wheel delta into a relative
// zoom delta. A positive wheel delta (scrolling down) zooms out.
func normalizeWheelDelta(dy float64, mode WheelDeltaMode, sensitivity float64) float64 {
	switch mode {
	case WheelDeltaLine:
		dy *= wheelLineMultiplier
	case WheelDeltaPage:
		dy *= wheelPageMultiplier
	}
	delta := -dy * sensitivity
	return clamp(delta, -maxWheelZoomStep, maxWheelZoomStep)
}
