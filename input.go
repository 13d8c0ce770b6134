package panzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CursorScope is an InteractionScope backed by the system cursor: the
// cursor switches to the move shape while an element drag is held and is
// restored on release. Balanced Acquire/Release pairs are enforced so a
// cancelled drag cannot leave the override stuck.
type CursorScope struct {
	held bool
}

// Acquire implements [InteractionScope].
func (c *CursorScope) Acquire() {
	if c.held {
		return
	}
	c.held = true
	ebiten.SetCursorShape(ebiten.CursorShapeMove)
}

// Release implements [InteractionScope].
func (c *CursorScope) Release() {
	if !c.held {
		return
	}
	c.held = false
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// ReadModifiers reads the current keyboard modifier state.
func ReadModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// poller translates Ebiten's per-frame polled input into discrete gesture
// events: cursor + buttons onto pointer 0, touches onto slots 1-9, and the
// wheel as a line-mode wheel event at the cursor.
type poller struct {
	g         *Gestures
	mouseDown bool
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchBuf  []ebiten.TouchID
}

// step polls input for one frame and feeds the gesture layer.
func (p *poller) step() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.g.CancelAll()
	}
	p.stepMouse()
	p.stepTouches()
	p.stepWheel()
}

// stepMouse drives pointer 0 from the cursor and the primary button.
func (p *poller) stepMouse() {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{X: float64(mx), Y: float64(my)}
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !p.mouseDown:
		p.mouseDown = true
		p.g.PointerDown(0, pos, MouseButtonLeft)
	case !pressed && p.mouseDown:
		p.mouseDown = false
		p.g.PointerUp(0, pos)
	case pressed:
		p.g.PointerMove(0, pos)
	}
}

// stepTouches maps live touch IDs onto pointer slots 1-9 and synthesizes
// down/move/up transitions.
func (p *poller) stepTouches() {
	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])

	var seen [maxPointers]bool
	for _, tid := range p.touchBuf {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		pos := Vec2{X: float64(tx), Y: float64(ty)}
		if seen[slot] {
			continue
		}
		seen[slot] = true
		if !p.g.pointers[slot].down {
			p.g.PointerDown(slot, pos, MouseButtonLeft)
		} else {
			p.g.PointerMove(slot, pos)
		}
	}

	// Release slots whose touch lifted this frame.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !seen[i] {
			p.g.PointerUp(i, p.g.pointers[i].last)
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (p *poller) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// stepWheel forwards wheel movement as a line-mode wheel event at the
// cursor. Ebiten reports upward movement as positive; wheel events use the
// opposite sign convention (positive = scroll down).
func (p *poller) stepWheel() {
	wx, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	p.g.Wheel(wx, -wy, WheelDeltaLine, Vec2{X: float64(mx), Y: float64(my)})
}
