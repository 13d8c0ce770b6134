// Package panzoom is an infinite pan/zoom board for [Ebitengine].
//
// Panzoom provides the viewport transform engine, the pointer/touch/wheel
// gesture layer, and the element drag subsystem needed to build
// whiteboard-style surfaces such as investigation boards, node editors, and
// maps, with freely positioned content on an unbounded plane.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	board := panzoom.NewBoard(1024, 768, panzoom.Config{Pattern: panzoom.PatternDots})
//	board.Layer().Attach(drawContent)
//	panzoom.Run(board, panzoom.RunConfig{Title: "My Board"})
//
// For full control, implement ebiten.Game yourself and call [Board.Update],
// [Board.Draw], and [Board.Layout] directly, or skip [Board] entirely and
// compose [Viewport], [Gestures], and [Dragger] by hand.
//
// # Coordinate spaces
//
// World space is the unbounded logical plane elements live on. Screen space
// is pixels relative to the container's top-left corner. The [Viewport]
// owns the affine mapping between them (a uniform scale plus an offset)
// and converts with [Viewport.ScreenToWorld] and [Viewport.WorldToScreen].
// Every mutation goes through [Viewport.SetState], which clamps the scale,
// pushes the transform to the render sink, and notifies subscribers.
//
// # Gestures
//
// [Gestures] turns raw input into viewport calls: single-pointer panning
// with capture, two-finger pinch zoom anchored at the touch midpoint, and
// wheel zoom anchored at the cursor with per-event delta clamping. Element
// drags go through [Dragger], which reads the live viewport state on every
// move so panning while dragging stays geometrically correct.
//
// # Key features
//
// Smooth viewport transitions (via [gween]), infinite grid and dot
// background patterns, visible-bounds culling, synthetic input injection
// and JSON gesture scripts for automated testing, PNG frame capture, and
// ECS integration (via [Donburi] adapter in panzoom/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package panzoom
