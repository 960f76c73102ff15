package drift

import "testing"

func TestControllerDragPansViewport(t *testing.T) {
	backend := &fakeAnimator{}
	c := NewController(backend)

	c.DragStart(Vec2{10, 10}, 0)
	if c.State() != GestureDragging {
		t.Fatalf("state = %v, want dragging", c.State())
	}
	c.DragMove(Vec2{40, 25}, 0.016)

	// The grab point sticks to the pointer: the viewport moves by the same
	// delta as the pointer.
	if !approxVec(c.Viewport().Position(), Vec2{30, 15}, epsilon) {
		t.Errorf("position = %v, want {30 15}", c.Viewport().Position())
	}
}

func TestControllerFlingScenario(t *testing.T) {
	backend := &fakeAnimator{}
	c := NewController(backend)

	c.DragStart(Vec2{0, 0}, 0)
	c.DragMove(Vec2{50, 0}, 0.1)
	c.DragMove(Vec2{100, 0}, 0.2)
	c.DragEnd(Vec2{100, 0}, 0.2)

	if c.State() != GestureIdle {
		t.Errorf("state = %v, want idle", c.State())
	}
	if len(backend.calls) != 1 {
		t.Fatalf("backend called %d times, want 1 (smoothed speed 480 > 50)", len(backend.calls))
	}
	call := backend.calls[0]
	// Smoothed velocity is 480 u/s; target x = 100 + 480*0.3 = 244.
	if !approxVec(call.to, Vec2{244, 0}, 1e-6) {
		t.Errorf("glide target = %v, want {244 0}", call.to)
	}
	if call.duration != inertiaDuration {
		t.Errorf("duration = %v, want %v", call.duration, inertiaDuration)
	}

	// Animation frames keep the viewport authoritative.
	backend.onFrame(Vec2{150, 0})
	if c.Viewport().Position() != (Vec2{150, 0}) {
		t.Errorf("position after frame = %v, want {150 0}", c.Viewport().Position())
	}
}

func TestControllerSlowReleaseStopsDead(t *testing.T) {
	backend := &fakeAnimator{}
	c := NewController(backend)

	c.DragStart(Vec2{0, 0}, 0)
	c.DragMove(Vec2{1, 0}, 0.5) // 1.6 u/s smoothed, way under threshold
	c.DragEnd(Vec2{1, 0}, 0.5)

	if len(backend.calls) != 0 {
		t.Errorf("backend called for a slow release")
	}
	// Position is exactly where the last move left it, no overshoot.
	if c.Viewport().Position() != (Vec2{1, 0}) {
		t.Errorf("position = %v, want exactly {1 0}", c.Viewport().Position())
	}
}

func TestControllerNewGestureCancelsGlide(t *testing.T) {
	backend := &fakeAnimator{}
	c := NewController(backend)

	c.DragStart(Vec2{0, 0}, 0)
	c.DragMove(Vec2{100, 0}, 0.1)
	c.DragEnd(Vec2{100, 0}, 0.1)
	if !c.Animating() {
		t.Fatal("no glide after fast release")
	}
	glideHandle := backend.lastHandle

	c.DragStart(Vec2{0, 0}, 1.0)
	if !glideHandle.cancelled {
		t.Error("glide not cancelled by next drag start")
	}
	if c.Animating() {
		t.Error("Animating() = true during a drag")
	}
}

func TestControllerPinchCancelsGlide(t *testing.T) {
	backend := &fakeAnimator{}
	c := NewController(backend)

	c.DragStart(Vec2{0, 0}, 0)
	c.DragMove(Vec2{100, 0}, 0.1)
	c.DragEnd(Vec2{100, 0}, 0.1)
	glideHandle := backend.lastHandle

	c.PinchStart(Vec2{0, 0}, Vec2{100, 0})
	if !glideHandle.cancelled {
		t.Error("glide not cancelled by pinch start")
	}
	if c.State() != GesturePinching {
		t.Errorf("state = %v, want pinching", c.State())
	}
}

func TestControllerPinchScenario(t *testing.T) {
	backend := &fakeAnimator{}
	c := NewController(backend)

	c.PinchStart(Vec2{0, 0}, Vec2{100, 0})
	c.PinchMove(Vec2{-50, 0}, Vec2{150, 0}, 0.016)

	if !approxEqual(c.Viewport().Scale(), 2, epsilon) {
		t.Errorf("scale = %f, want 2", c.Viewport().Scale())
	}
	if !approxVec(c.Viewport().Position(), Vec2{-50, 0}, epsilon) {
		t.Errorf("position = %v, want {-50 0}", c.Viewport().Position())
	}

	c.PinchEnd()
	if c.State() != GestureIdle {
		t.Errorf("state = %v, want idle", c.State())
	}
	if len(backend.calls) != 0 {
		t.Error("zoom end launched a glide")
	}
}

func TestControllerIgnoresStrayMoves(t *testing.T) {
	backend := &fakeAnimator{}
	c := NewController(backend)

	// Moves and ends without a start are benign no-ops.
	c.DragMove(Vec2{50, 50}, 0.1)
	c.DragEnd(Vec2{50, 50}, 0.2)
	c.PinchMove(Vec2{0, 0}, Vec2{10, 0}, 0.016)
	c.PinchEnd()

	if c.Viewport().Position() != (Vec2{}) || c.Viewport().Scale() != 1 {
		t.Errorf("stray events moved the viewport: %v scale %f",
			c.Viewport().Position(), c.Viewport().Scale())
	}
	if len(backend.calls) != 0 {
		t.Error("stray events launched an animation")
	}
}

func TestControllerZoomAt(t *testing.T) {
	backend := &fakeAnimator{}
	c := NewController(backend)

	pivot := Vec2{100, 100}
	before := pivot.Sub(c.Viewport().Position()).Scale(1 / c.Viewport().Scale())
	c.ZoomAt(pivot, 2)
	after := pivot.Sub(c.Viewport().Position()).Scale(1 / c.Viewport().Scale())

	if !approxEqual(c.Viewport().Scale(), 2, epsilon) {
		t.Errorf("scale = %f, want 2", c.Viewport().Scale())
	}
	if !approxVec(before, after, 1e-9) {
		t.Errorf("pivot content point moved %v -> %v", before, after)
	}

	// Repeated zooming saturates at the clamp.
	for i := 0; i < 10; i++ {
		c.ZoomAt(pivot, 2)
	}
	if c.Viewport().Scale() != MaxScale {
		t.Errorf("scale = %f, want clamped %f", c.Viewport().Scale(), MaxScale)
	}
}

func TestControllerAnimateZoomTo(t *testing.T) {
	animator := NewTweenAnimator()
	c := NewController(animator)
	pivot := Vec2{200, 150}

	c.AnimateZoomTo(4, pivot, 0.4)
	if !c.Animating() {
		t.Fatal("no animation after AnimateZoomTo")
	}

	before := pivot.Sub(c.Viewport().Position()).Scale(1 / c.Viewport().Scale())
	animator.Update(0.2)
	mid := pivot.Sub(c.Viewport().Position()).Scale(1 / c.Viewport().Scale())
	// float32 interpolation inside gween limits the precision here
	if !approxVec(before, mid, 1e-3) {
		t.Errorf("pivot content point moved during zoom: %v -> %v", before, mid)
	}
	if c.Viewport().Scale() <= 1 || c.Viewport().Scale() >= 4 {
		t.Errorf("mid-animation scale = %f, want between 1 and 4", c.Viewport().Scale())
	}

	animator.Update(0.3)
	if !approxEqual(c.Viewport().Scale(), 4, 1e-3) {
		t.Errorf("final scale = %f, want 4", c.Viewport().Scale())
	}
	if c.Animating() {
		t.Error("guard still holds a handle after the zoom finished")
	}
}

func TestControllerAnimateZoomToClampsTarget(t *testing.T) {
	animator := NewTweenAnimator()
	c := NewController(animator)

	c.AnimateZoomTo(100, Vec2{}, 0.1)
	animator.Update(1.0)
	if c.Viewport().Scale() != MaxScale {
		t.Errorf("scale = %f, want clamped %f", c.Viewport().Scale(), MaxScale)
	}
}

func TestControllersAreIndependent(t *testing.T) {
	a := NewController(&fakeAnimator{})
	b := NewController(&fakeAnimator{})

	a.DragStart(Vec2{0, 0}, 0)
	a.DragMove(Vec2{100, 0}, 0.1)

	if b.Viewport().Position() != (Vec2{}) {
		t.Errorf("second controller moved: %v", b.Viewport().Position())
	}
	if b.State() != GestureIdle {
		t.Errorf("second controller state = %v, want idle", b.State())
	}
}

func TestControllerGlideWithTweenBackend(t *testing.T) {
	animator := NewTweenAnimator()
	c := NewController(animator)

	c.DragStart(Vec2{0, 0}, 0)
	c.DragMove(Vec2{50, 0}, 0.1)
	c.DragMove(Vec2{100, 0}, 0.2)
	c.DragEnd(Vec2{100, 0}, 0.2)

	var changes int
	c.Viewport().OnChange(func(ViewportEvent) { changes++ })

	// Drive the full glide; ease-out means early frames cover more ground.
	for i := 0; i < 30; i++ {
		animator.Update(inertiaDuration / 20)
	}

	if changes == 0 {
		t.Fatal("glide produced no viewport changes")
	}
	if !approxEqual(c.Viewport().Position().X, 244, 0.01) {
		t.Errorf("glide settled at %v, want x = 244", c.Viewport().Position())
	}
	if c.Animating() {
		t.Error("guard still active after glide completed")
	}
}

func TestControllerGlideDecelerates(t *testing.T) {
	animator := NewTweenAnimator()
	c := NewController(animator)

	c.DragStart(Vec2{0, 0}, 0)
	c.DragMove(Vec2{100, 0}, 0.1) // smoothed velocity 800 u/s, target x = 340
	c.DragEnd(Vec2{100, 0}, 0.1)

	// An ease-out glide covers more than half its distance in the first
	// half of its duration.
	animator.Update(inertiaDuration / 2)
	covered := c.Viewport().Position().X - 100
	if covered <= 120 {
		t.Errorf("covered %f of 240 at halftime, want > 120 (deceleration)", covered)
	}
}
