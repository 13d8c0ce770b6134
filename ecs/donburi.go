package ecs

import (
	"github.com/mgorunuch/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateEventType is the Donburi event type for viewport-change events.
// Subscribe to this in your ECS systems to react to pan and zoom.
var StateEventType = events.NewEventType[panzoom.State]()

// MoveEvent carries one requested element move.
type MoveEvent struct {
	ID    panzoom.ElementID
	World panzoom.Vec2
}

// MoveEventType is the Donburi event type for element-move events emitted
// by the drag subsystem.
var MoveEventType = events.NewEventType[MoveEvent]()

// NewDonburiObserver returns a viewport-change listener that publishes each
// state snapshot to StateEventType. Pass it to Viewport.Subscribe and
// consume with events.Subscribe plus ProcessEvents.
func NewDonburiObserver(w donburi.World) func(panzoom.State) {
	return func(state panzoom.State) {
		StateEventType.Publish(w, state)
	}
}

// NewDonburiMover returns a panzoom.MoveFunc that publishes element moves
// to MoveEventType instead of mutating storage directly. A system consuming
// the events applies them to its own position components.
func NewDonburiMover(w donburi.World) panzoom.MoveFunc {
	return func(id panzoom.ElementID, pos panzoom.Vec2) {
		MoveEventType.Publish(w, MoveEvent{ID: id, World: pos})
	}
}
