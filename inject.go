package panzoom

// syntheticEvent is a single injected input event. Screen coordinates are
// used, identical to real input, so scripted gestures exercise the same
// conversion paths.
type syntheticEvent struct {
	kind    syntheticKind
	pointer int
	pos     Vec2
	wheelY  float64
}

type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthWheel
)

// InjectPress queues a primary-button press at the given screen
// coordinates on pointer 0. One queued event is consumed per frame.
func (b *Board) InjectPress(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticEvent{kind: synthPress, pos: Vec2{x, y}})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a pan or drag.
func (b *Board) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticEvent{kind: synthMove, pos: Vec2{x, y}})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (b *Board) InjectRelease(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticEvent{kind: synthRelease, pos: Vec2{x, y}})
}

// InjectWheel queues a line-mode wheel event at the given screen
// coordinates. Positive deltaY zooms out, matching wheel conventions.
func (b *Board) InjectWheel(x, y, deltaY float64) {
	b.injectQueue = append(b.injectQueue, syntheticEvent{kind: synthWheel, pos: Vec2{x, y}, wheelY: deltaY})
}

// InjectDrag queues a full press-move-release sequence from (fromX, fromY)
// to (toX, toY), linearly interpolated over frames-2 moves. The final move
// lands exactly on the destination before the release. The whole sequence
// consumes frames frames; the minimum is 2.
func (b *Board) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	b.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		b.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	b.InjectRelease(toX, toY)
}

// InjectPinch queues a symmetric two-finger pinch centered on (cx, cy),
// spreading the fingers from fromDist to toDist apart over the given
// number of move frames. fromDist < toDist zooms in.
func (b *Board) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	half := fromDist / 2
	b.injectTouch(synthPress, 1, Vec2{cx - half, cy})
	b.injectTouch(synthPress, 2, Vec2{cx + half, cy})
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		half = (fromDist + (toDist-fromDist)*t) / 2
		b.injectTouch(synthMove, 1, Vec2{cx - half, cy})
		b.injectTouch(synthMove, 2, Vec2{cx + half, cy})
	}
	b.injectTouch(synthRelease, 1, Vec2{cx - half, cy})
	b.injectTouch(synthRelease, 2, Vec2{cx + half, cy})
}

func (b *Board) injectTouch(kind syntheticKind, slot int, pos Vec2) {
	b.injectQueue = append(b.injectQueue, syntheticEvent{kind: kind, pointer: slot, pos: pos})
}

// consumeInjected pops one queued event and feeds it through the gesture
// layer. Returns true if an event was consumed, in which case real polled
// input is skipped for the frame.
func (b *Board) consumeInjected() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	switch evt.kind {
	case synthPress:
		b.gestures.PointerDown(evt.pointer, evt.pos, MouseButtonLeft)
	case synthMove:
		b.gestures.PointerMove(evt.pointer, evt.pos)
	case synthRelease:
		b.gestures.PointerUp(evt.pointer, evt.pos)
	case synthWheel:
		b.gestures.Wheel(0, evt.wheelY, WheelDeltaLine, evt.pos)
	}
	return true
}
