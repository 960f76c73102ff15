package drift

import "github.com/tanema/gween/ease"

// Controller turns gesture events into pan and zoom of one Viewport. Create
// one per canvas; controllers share nothing, so any number of independent
// viewports can coexist.
//
// All methods must be called from the host's update goroutine. Gesture state
// changes only on the explicit start/end methods, and every gesture start
// cancels whatever animation is still gliding, so a new gesture always takes
// over a live viewport cleanly.
type Controller struct {
	viewport *Viewport
	backend  Animator

	guard   animationGuard
	tracker VelocityTracker
	pinch   pinchGesture
	glide   glide

	state      GestureState
	grabOffset Vec2
}

// NewController creates a controller around a fresh Viewport, running its
// inertia and zoom animations on backend.
func NewController(backend Animator) *Controller {
	c := &Controller{
		viewport: NewViewport(),
		backend:  backend,
	}
	c.pinch.viewport = c.viewport
	c.glide = glide{backend: backend, guard: &c.guard}
	return c
}

// Viewport returns the controller's viewport. Hosts read position and scale
// from it and may register change observers; writing to it directly is also
// fine between gestures.
func (c *Controller) Viewport() *Viewport {
	return c.viewport
}

// State returns the gesture currently being tracked.
func (c *Controller) State() GestureState {
	return c.state
}

// Animating reports whether an inertia or zoom animation is in flight.
func (c *Controller) Animating() bool {
	return c.guard.active()
}

// DragStart begins a single-pointer pan at pointer position pos and time t
// (seconds on any monotonic host clock). Cancels any running animation
// before touching tracking state.
func (c *Controller) DragStart(pos Vec2, t float64) {
	c.guard.stop()
	c.tracker.Start(pos, t)
	c.grabOffset = c.viewport.Position().Sub(pos)
	c.state = GestureDragging
}

// DragMove continues a pan. The viewport follows the pointer exactly (the
// grab offset from DragStart is preserved) while the velocity estimate
// accumulates. Ignored unless a drag is in progress.
func (c *Controller) DragMove(pos Vec2, t float64) {
	if c.state != GestureDragging {
		return
	}
	c.tracker.Update(pos, t)
	c.viewport.SetPosition(pos.Add(c.grabOffset))
}

// DragEnd finishes a pan and, if the release was fast enough, launches the
// inertia glide. Ignored unless a drag is in progress.
func (c *Controller) DragEnd(pos Vec2, t float64) {
	if c.state != GestureDragging {
		return
	}
	c.tracker.Update(pos, t)
	c.viewport.SetPosition(pos.Add(c.grabOffset))
	c.state = GestureIdle
	c.glide.release(c.viewport.Position(), c.tracker.Velocity(), c.applyFrame)
}

// PinchStart begins a two-finger gesture at touch points a and b. Cancels
// any running animation first.
func (c *Controller) PinchStart(a, b Vec2) {
	c.guard.stop()
	c.pinch.start(a, b)
	c.state = GesturePinching
}

// PinchMove continues a two-finger gesture; dt is the time in seconds since
// the previous move. Ignored unless a pinch is in progress.
func (c *Controller) PinchMove(a, b Vec2, dt float64) {
	if c.state != GesturePinching {
		return
	}
	c.pinch.move(a, b, dt)
}

// PinchEnd finishes a two-finger gesture. A gesture that ended panning may
// launch an inertia glide; one that ended zooming never does. Ignored unless
// a pinch is in progress.
func (c *Controller) PinchEnd() {
	if c.state != GesturePinching {
		return
	}
	c.state = GestureIdle
	c.pinch.end(&c.glide, c.applyFrame)
}

// ZoomAt instantly multiplies the scale by factor, clamped to
// [MinScale, MaxScale], keeping the content under pivot stationary. Used for
// wheel zoom. Cancels any running animation first.
func (c *Controller) ZoomAt(pivot Vec2, factor float64) {
	c.guard.stop()
	zoomAround(c.viewport, pivot, c.viewport.Scale()*factor)
}

// AnimateZoomTo eases the scale to target (clamped) over duration seconds,
// keeping the content under pivot stationary throughout. It runs through the
// same guard as inertia, so a zoom animation and a glide can never overlap.
func (c *Controller) AnimateZoomTo(target float64, pivot Vec2, duration float64) {
	c.guard.stop()
	from := Vec2{X: c.viewport.Scale()}
	to := Vec2{X: clampScale(target)}
	// Scale rides the X channel; each frame recomputes the pivot-preserving
	// position from the interpolated scale.
	c.guard.start(c.backend, from, to, duration, ease.OutQuad, func(v Vec2) {
		zoomAround(c.viewport, pivot, v.X)
	}, nil)
}

// applyFrame is the per-frame sink for glide animations; routing every
// intermediate position through the viewport keeps it authoritative while an
// animation runs.
func (c *Controller) applyFrame(pos Vec2) {
	c.viewport.SetPosition(pos)
}
