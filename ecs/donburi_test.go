package ecs

import (
	"testing"

	"github.com/mgorunuch/panzoom"

	"github.com/yohamta/donburi"
)

func TestDonburiObserver_PublishesState(t *testing.T) {
	world := donburi.NewWorld()
	observer := NewDonburiObserver(world)

	var received []panzoom.State
	StateEventType.Subscribe(world, func(w donburi.World, s panzoom.State) {
		received = append(received, s)
	})

	observer(panzoom.State{OffsetX: 10, OffsetY: -20, Scale: 2})
	observer(panzoom.State{Scale: 1})

	// Events are queued until processed.
	StateEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].OffsetX != 10 || received[0].Scale != 2 {
		t.Errorf("event 0: %+v", received[0])
	}
}

func TestDonburiObserver_WorksAsSubscription(t *testing.T) {
	world := donburi.NewWorld()

	var count int
	StateEventType.Subscribe(world, func(w donburi.World, s panzoom.State) {
		count++
	})

	vp := panzoom.NewViewport(nil, panzoom.Config{})
	sub := vp.Subscribe(NewDonburiObserver(world))
	defer sub.Remove()

	vp.PanBy(5, 5)
	vp.PanBy(0, 0) // no-op, must not publish

	StateEventType.ProcessEvents(world)
	if count != 1 {
		t.Errorf("published %d events, want 1", count)
	}
}

func TestDonburiMover_PublishesMoves(t *testing.T) {
	world := donburi.NewWorld()
	move := NewDonburiMover(world)

	var received []MoveEvent
	MoveEventType.Subscribe(world, func(w donburi.World, e MoveEvent) {
		received = append(received, e)
	})

	move(42, panzoom.Vec2{X: 150, Y: 130})
	MoveEventType.ProcessEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].ID != 42 || received[0].World.X != 150 {
		t.Errorf("event: %+v", received[0])
	}
}
