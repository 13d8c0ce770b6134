package panzoom

// InteractionScope is an exclusive interaction mode held for the duration
// of an element drag, typically a global cursor override. Acquire is
// called once a drag is confirmed, Release when it ends or is cancelled.
// Release is guaranteed to follow every Acquire, including on teardown.
type InteractionScope interface {
	Acquire()
	Release()
}

// Dragger repositions individual elements by pointer drag, independent of
// and concurrent with viewport panning. It uses the Viewport purely as a
// coordinate-conversion oracle: every move reads the live viewport state,
// so panning or zooming mid-drag stays geometrically correct. It never
// mutates viewport state and never owns element storage: the MoveFunc is
// the sole place element positions change.
type Dragger struct {
	vp     *Viewport
	source ElementSource
	move   MoveFunc
	scope  InteractionScope

	active     bool
	target     ElementID
	grabOffset Vec2 // pointer screen position minus element screen position
	startWorld Vec2
}

// NewDragger creates a drag subsystem over the given viewport, element
// source, and move callback.
func NewDragger(vp *Viewport, source ElementSource, move MoveFunc) *Dragger {
	return &Dragger{vp: vp, source: source, move: move}
}

// SetScope installs the exclusive interaction scope held while dragging.
// Optional; nil disables scope handling.
func (d *Dragger) SetScope(scope InteractionScope) {
	d.scope = scope
}

// Active reports whether a drag session is in progress.
func (d *Dragger) Active() bool {
	return d.active
}

// Target returns the element id of the active session. Only meaningful
// while Active reports true.
func (d *Dragger) Target() ElementID {
	return d.target
}

// Begin starts a drag session for the element under the pointer (screen
// coordinates). Reports whether a session started: an unknown element id or
// an already-active session is a no-op returning false. On success the
// pointer-to-element offset is recorded from the current viewport snapshot
// and the interaction scope is acquired.
func (d *Dragger) Begin(id ElementID, pointer Vec2) bool {
	if d.active {
		return false
	}
	world, ok := d.source.Position(id)
	if !ok {
		return false
	}
	d.active = true
	d.target = id
	d.startWorld = world
	d.grabOffset = pointer.Sub(d.vp.WorldToScreen(world))
	if d.scope != nil {
		d.scope.Acquire()
	}
	return true
}

// Move advances the active session to a new pointer position. The target
// screen position (pointer minus the recorded grab offset) is converted to
// world space under the live viewport state and handed to the MoveFunc.
// No-op without an active session.
func (d *Dragger) Move(pointer Vec2) {
	if !d.active {
		return
	}
	d.move(d.target, d.vp.ScreenToWorld(pointer.Sub(d.grabOffset)))
}

// End closes the active session and releases the interaction scope.
// Idempotent: without an active session it does nothing.
func (d *Dragger) End() {
	if !d.active {
		return
	}
	d.active = false
	if d.scope != nil {
		d.scope.Release()
	}
}

// Cancel aborts the active session and moves the element back to the world
// position it held when the drag began. No-op without an active session.
func (d *Dragger) Cancel() {
	if !d.active {
		return
	}
	d.move(d.target, d.startWorld)
	d.End()
}
