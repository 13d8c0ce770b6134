package panzoom

import (
	"testing"
)

// mapSource is an ElementSource backed by a plain map.
type mapSource map[ElementID]Vec2

func (m mapSource) Position(id ElementID) (Vec2, bool) {
	p, ok := m[id]
	return p, ok
}

// testBoard builds a viewport + gestures + dragger over an 800x600
// container, with elements treated as 1-point hit targets at their exact
// position.
func testBoard(elements mapSource) (*Viewport, *Gestures, mapSource) {
	vp := NewViewport(newRecordSink(800, 600), Config{})
	dragger := NewDragger(vp, elements, func(id ElementID, world Vec2) {
		elements[id] = world
	})
	hit := func(screen Vec2) (ElementID, bool) {
		for id, pos := range elements {
			sp := vp.WorldToScreen(pos)
			if approxEqual(sp.X, screen.X, 8) && approxEqual(sp.Y, screen.Y, 8) {
				return id, true
			}
		}
		return 0, false
	}
	return vp, NewGestures(vp, dragger, hit), elements
}

func TestPan_Basic(t *testing.T) {
	vp, g, _ := testBoard(nil)
	g.PointerDown(0, Vec2{100, 100}, MouseButtonLeft)
	g.PointerMove(0, Vec2{130, 90})
	g.PointerUp(0, Vec2{130, 90})

	st := vp.State()
	if st.OffsetX != 30 || st.OffsetY != -10 {
		t.Errorf("offset = (%f,%f), want (30,-10)", st.OffsetX, st.OffsetY)
	}
	if st.Scale != 1 {
		t.Errorf("pan changed scale to %f", st.Scale)
	}
}

func TestPan_IncrementalDeltas(t *testing.T) {
	vp, g, _ := testBoard(nil)
	g.PointerDown(0, Vec2{0, 0}, MouseButtonLeft)
	g.PointerMove(0, Vec2{10, 0})
	g.PointerMove(0, Vec2{10, 5})
	g.PointerMove(0, Vec2{25, 5})
	g.PointerUp(0, Vec2{25, 5})

	st := vp.State()
	if st.OffsetX != 25 || st.OffsetY != 5 {
		t.Errorf("offset = (%f,%f), want (25,5)", st.OffsetX, st.OffsetY)
	}
}

func TestPan_UncapturedPointerIgnored(t *testing.T) {
	vp, g, _ := testBoard(nil)
	g.PointerDown(0, Vec2{100, 100}, MouseButtonLeft)
	// A second pointer joins and moves; its deltas must not pan.
	g.PointerDown(3, Vec2{500, 500}, MouseButtonLeft)
	g.PointerMove(3, Vec2{600, 600})
	g.PointerMove(0, Vec2{110, 100})

	if vp.State().OffsetX != 10 {
		t.Errorf("offset = %f, want 10 (captured pointer only)", vp.State().OffsetX)
	}
}

func TestPan_MovesWithoutPressIgnored(t *testing.T) {
	vp, g, _ := testBoard(nil)
	g.PointerMove(0, Vec2{100, 100})
	g.PointerMove(0, Vec2{200, 200})
	if vp.State() != (State{Scale: 1}) {
		t.Errorf("hover moves panned: %+v", vp.State())
	}
}

func TestPan_SecondaryButtonIgnored(t *testing.T) {
	vp, g, _ := testBoard(nil)
	g.PointerDown(0, Vec2{100, 100}, MouseButtonRight)
	g.PointerMove(0, Vec2{200, 200})
	if vp.State().OffsetX != 0 {
		t.Error("right-button drag panned the viewport")
	}
}

func TestPan_CancelDiscardsAnchor(t *testing.T) {
	vp, g, _ := testBoard(nil)
	g.PointerDown(0, Vec2{100, 100}, MouseButtonLeft)
	g.PointerMove(0, Vec2{120, 100})
	g.PointerCancel(0)

	// A fresh gesture must compute deltas from its own anchor, not the
	// cancelled one's.
	g.PointerDown(0, Vec2{500, 500}, MouseButtonLeft)
	g.PointerMove(0, Vec2{510, 500})

	if vp.State().OffsetX != 30 {
		t.Errorf("offset = %f, want 20+10=30", vp.State().OffsetX)
	}
}

func TestPan_Disabled(t *testing.T) {
	vp := NewViewport(newRecordSink(800, 600), Config{DisablePan: true})
	g := NewGestures(vp, nil, nil)
	g.PointerDown(0, Vec2{100, 100}, MouseButtonLeft)
	g.PointerMove(0, Vec2{200, 200})
	if vp.State().OffsetX != 0 {
		t.Error("DisablePan did not suppress panning")
	}
}

func TestWheel_ZoomsAtCursor(t *testing.T) {
	vp, g, _ := testBoard(nil)
	cursor := Vec2{200, 150}
	world := vp.ScreenToWorld(cursor)

	g.Wheel(0, -100, WheelDeltaPixel, cursor) // scroll up = zoom in

	if vp.State().Scale <= 1 {
		t.Errorf("scale = %f, want > 1", vp.State().Scale)
	}
	after := vp.WorldToScreen(world)
	if !approxEqual(after.X, cursor.X, 1e-6) || !approxEqual(after.Y, cursor.Y, 1e-6) {
		t.Errorf("cursor anchor moved to %v", after)
	}
}

func TestWheel_HorizontalIgnored(t *testing.T) {
	vp, g, _ := testBoard(nil)
	g.Wheel(500, 0, WheelDeltaPixel, Vec2{400, 300})
	if vp.State() != (State{Scale: 1}) {
		t.Errorf("horizontal wheel mutated state: %+v", vp.State())
	}
}

func TestWheel_ZoomDisabled(t *testing.T) {
	vp := NewViewport(newRecordSink(800, 600), Config{DisableZoom: true})
	g := NewGestures(vp, nil, nil)
	g.Wheel(0, -100, WheelDeltaPixel, Vec2{400, 300})
	if vp.State().Scale != 1 {
		t.Error("DisableZoom did not suppress wheel zoom")
	}
}

func TestNormalizeWheelDelta(t *testing.T) {
	// Pixel mode: -100px * 0.001 sensitivity, inverted sign.
	if got := normalizeWheelDelta(-100, WheelDeltaPixel, 0.001); !approxEqual(got, 0.1, epsilon) {
		t.Errorf("pixel delta = %f, want 0.1", got)
	}
	// Line mode: 3 lines = 48px.
	if got := normalizeWheelDelta(3, WheelDeltaLine, 0.001); !approxEqual(got, -0.048, epsilon) {
		t.Errorf("line delta = %f, want -0.048", got)
	}
	// Page mode clamps: 2 pages = 800px -> 0.8 -> clamp 0.1.
	if got := normalizeWheelDelta(-2, WheelDeltaPage, 0.001); got != maxWheelZoomStep {
		t.Errorf("page delta = %f, want clamp %f", got, maxWheelZoomStep)
	}
	if got := normalizeWheelDelta(2, WheelDeltaPage, 0.001); got != -maxWheelZoomStep {
		t.Errorf("page delta = %f, want clamp %f", got, -maxWheelZoomStep)
	}
}

func TestPinch_ZoomsByDistanceRatio(t *testing.T) {
	vp, g, _ := testBoard(nil)
	// Two fingers 100 apart, centered on (400, 300).
	g.PointerDown(1, Vec2{350, 300}, MouseButtonLeft)
	g.PointerDown(2, Vec2{450, 300}, MouseButtonLeft)

	// Spread to 200 apart: scale doubles.
	g.PointerMove(1, Vec2{300, 300})
	g.PointerMove(2, Vec2{500, 300})

	if !approxEqual(vp.State().Scale, 2.0, 1e-6) {
		t.Errorf("scale = %f, want 2.0", vp.State().Scale)
	}
}

func TestPinch_MidpointAnchored(t *testing.T) {
	vp, g, _ := testBoard(nil)

	g.PointerDown(1, Vec2{350, 300}, MouseButtonLeft)
	g.PointerDown(2, Vec2{450, 300}, MouseButtonLeft)

	// Finger 1 spreads to (250,300): new midpoint (350,300). The world
	// point under that midpoint must stay put through the zoom step.
	mid := Vec2{350, 300}
	world := vp.ScreenToWorld(mid)
	g.PointerMove(1, Vec2{250, 300})

	after := vp.WorldToScreen(world)
	if !approxEqual(after.X, mid.X, 1e-6) || !approxEqual(after.Y, mid.Y, 1e-6) {
		t.Errorf("pinch midpoint drifted to %v", after)
	}
	if !approxEqual(vp.State().Scale, 2.0, 1e-6) {
		t.Errorf("scale = %f, want 2.0", vp.State().Scale)
	}
}

func TestPinch_SuppressesPan(t *testing.T) {
	vp, g, _ := testBoard(nil)
	g.PointerDown(1, Vec2{350, 300}, MouseButtonLeft)
	// First touch pans until the second lands.
	g.PointerMove(1, Vec2{360, 300})
	if vp.State().OffsetX != 10 {
		t.Fatalf("single touch did not pan: %f", vp.State().OffsetX)
	}

	g.PointerDown(2, Vec2{450, 300}, MouseButtonLeft)
	g.PointerMove(1, Vec2{340, 300})

	// The move drove a zoom step, not a pan delta.
	if vp.State().Scale == 1 {
		t.Error("pinch move did not zoom")
	}
}

func TestPinch_EndsWhenTouchLifts(t *testing.T) {
	vp, g, _ := testBoard(nil)
	g.PointerDown(1, Vec2{350, 300}, MouseButtonLeft)
	g.PointerDown(2, Vec2{450, 300}, MouseButtonLeft)
	g.PointerMove(2, Vec2{500, 300})
	scaleAfterPinch := vp.State().Scale

	g.PointerUp(2, Vec2{500, 300})
	offsetAfter := vp.State().OffsetX

	// The remaining finger must not pan with a stale anchor or keep zooming.
	g.PointerMove(1, Vec2{250, 300})
	if vp.State().Scale != scaleAfterPinch {
		t.Errorf("scale changed after pinch ended: %f", vp.State().Scale)
	}
	if vp.State().OffsetX != offsetAfter {
		t.Errorf("offset changed after pinch ended: %f", vp.State().OffsetX)
	}
}

func TestPinch_ZoomDisabled(t *testing.T) {
	vp := NewViewport(newRecordSink(800, 600), Config{DisableZoom: true})
	g := NewGestures(vp, nil, nil)
	g.PointerDown(1, Vec2{350, 300}, MouseButtonLeft)
	g.PointerDown(2, Vec2{450, 300}, MouseButtonLeft)
	g.PointerMove(1, Vec2{300, 300})
	if vp.State().Scale != 1 {
		t.Error("DisableZoom did not suppress pinch")
	}
}

func TestElementDrag_ThroughGestures(t *testing.T) {
	_, g, elements := testBoard(mapSource{7: {100, 100}})

	g.PointerDown(0, Vec2{100, 100}, MouseButtonLeft)
	g.PointerMove(0, Vec2{150, 130}) // beyond the dead zone
	g.PointerUp(0, Vec2{150, 130})

	got := elements[7]
	if !approxEqual(got.X, 150, 1e-6) || !approxEqual(got.Y, 130, 1e-6) {
		t.Errorf("element at %v, want (150,130)", got)
	}
}

func TestElementDrag_DeadZoneKeepsClicks(t *testing.T) {
	_, g, elements := testBoard(mapSource{7: {100, 100}})

	var clicked ElementID
	g.OnClick = func(id ElementID, world Vec2) { clicked = id }

	g.PointerDown(0, Vec2{100, 100}, MouseButtonLeft)
	g.PointerMove(0, Vec2{102, 101}) // inside the dead zone
	g.PointerUp(0, Vec2{102, 101})

	if got := elements[7]; got != (Vec2{100, 100}) {
		t.Errorf("click moved the element to %v", got)
	}
	if clicked != 7 {
		t.Errorf("OnClick id = %d, want 7", clicked)
	}
}

func TestElementDrag_DoesNotPanViewport(t *testing.T) {
	vp, g, _ := testBoard(mapSource{7: {100, 100}})

	g.PointerDown(0, Vec2{100, 100}, MouseButtonLeft)
	g.PointerMove(0, Vec2{200, 200})
	g.PointerUp(0, Vec2{200, 200})

	if vp.State() != (State{Scale: 1}) {
		t.Errorf("element drag mutated viewport: %+v", vp.State())
	}
}

func TestElementDrag_CancelRestoresPosition(t *testing.T) {
	_, g, elements := testBoard(mapSource{7: {100, 100}})

	g.PointerDown(0, Vec2{100, 100}, MouseButtonLeft)
	g.PointerMove(0, Vec2{180, 140})
	g.PointerCancel(0)

	if got := elements[7]; got != (Vec2{100, 100}) {
		t.Errorf("cancelled drag left element at %v", got)
	}
}

func TestCancelAll_ResetsEverything(t *testing.T) {
	vp, g, elements := testBoard(mapSource{7: {100, 100}})

	g.PointerDown(0, Vec2{100, 100}, MouseButtonLeft)
	g.PointerMove(0, Vec2{150, 100})
	g.PointerDown(1, Vec2{400, 300}, MouseButtonLeft)
	g.CancelAll()

	if got := elements[7]; got != (Vec2{100, 100}) {
		t.Errorf("element not restored: %v", got)
	}

	// Next gesture must behave as the first of its kind.
	offsetBefore := vp.State().OffsetX
	g.PointerDown(0, Vec2{500, 500}, MouseButtonLeft)
	g.PointerMove(0, Vec2{510, 500})
	if vp.State().OffsetX != offsetBefore+10 {
		t.Errorf("post-cancel pan delta wrong: %f", vp.State().OffsetX-offsetBefore)
	}
}
