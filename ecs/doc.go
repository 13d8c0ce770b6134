// Package ecs provides ECS adapters for panzoom's viewport and drag events.
//
// The adapters bridge panzoom callbacks into a [Donburi] world as typed
// events: [NewDonburiObserver] publishes viewport-change snapshots to
// [StateEventType], and [NewDonburiMover] publishes element moves to
// [MoveEventType].
//
// Usage:
//
//	sub := vp.Subscribe(ecs.NewDonburiObserver(world))
//	dragger := panzoom.NewDragger(vp, source, ecs.NewDonburiMover(world))
//
// Consume the events in your systems with events.Subscribe and
// ProcessEvents.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
