package drift

import "math"

// Viewport scale limits. Every mutation of the viewport clamps scale into
// [MinScale, MaxScale]; no write path can escape the range.
const (
	MinScale = 0.2
	MaxScale = 8.0
)

// Gesture tuning. These match the feel the library was tuned for and are not
// exposed as knobs; hosts that need a different feel can drive the Viewport
// directly.
const (
	// smoothingWeight is the weight of the newest instantaneous velocity
	// sample; the previous estimate keeps the remaining 1 - smoothingWeight.
	smoothingWeight = 0.8

	// flingThreshold is the minimum smoothed release speed (units/second)
	// that launches an inertia glide. Slower releases stop dead.
	flingThreshold = 50.0

	// decayFactor converts release velocity into glide displacement:
	// target = position + velocity * decayFactor.
	decayFactor = 0.3

	// inertiaDuration is the fixed length of the glide animation in seconds.
	inertiaDuration = 0.4

	// pinchDeadZone is the minimum change in finger distance (pixels) before
	// a two-finger gesture counts as zoom rather than pan. Suppresses zoom
	// jitter while two-finger panning.
	pinchDeadZone = 4.0
)

// Vec2 is a 2D vector used for positions, velocities, and deltas throughout
// the API. It carries whatever unit the host's pointer events use.
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

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// GestureState identifies which gesture, if any, a Controller is currently
// tracking. States are mutually exclusive and change only on explicit
// gesture start/end calls.
type GestureState uint8

const (
	GestureIdle     GestureState = iota // no pointer interaction in progress
	GestureDragging                     // single-pointer pan
	GesturePinching                     // two-finger zoom / pan
)

// String returns the state name for debug output.
func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GestureDragging:
		return "dragging"
	case GesturePinching:
		return "pinching"
	default:
		return "unknown"
	}
}

// clampScale restricts s to [MinScale, MaxScale].
func clampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(s, MaxScale))
}
