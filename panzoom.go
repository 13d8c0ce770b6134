package panzoom

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout
// the API. Depending on context a Vec2 is either in screen space (pixels
// relative to the container's top-left corner) or in world space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the rectangle's centroid.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// WheelDeltaMode describes the unit of a wheel event's delta values.
// Pixel deltas are used as-is; line and page deltas are normalized with
// fixed multipliers before the zoom sensitivity is applied.
type WheelDeltaMode uint8

const (
	WheelDeltaPixel WheelDeltaMode = iota // delta in pixels (default)
	WheelDeltaLine                        // delta in lines (x16)
	WheelDeltaPage                        // delta in pages (x400)
)

// Pattern selects the background pattern painted behind the content layer.
type Pattern uint8

const (
	PatternNone Pattern = iota // solid background, no pattern
	PatternGrid                // infinite square grid lines
	PatternDots                // infinite dot lattice
)

// ElementID identifies a movable element placed on the board. Elements are
// owned externally; the library only reads their positions and reports
// requested moves through a MoveFunc.
type ElementID uint64

// ElementSource resolves an element's current world-space position.
// The second return value reports whether the element exists.
type ElementSource interface {
	Position(id ElementID) (Vec2, bool)
}

// MoveFunc receives requested element moves from the drag subsystem.
// It is the sole mutation path for element positions and must be cheap
// enough to call at input-event frequency.
type MoveFunc func(id ElementID, world Vec2)
