package drift

import "math"

// pinchMode tells pan apart from zoom within one two-finger gesture.
type pinchMode uint8

const (
	pinchModePan pinchMode = iota
	pinchModeZoom
)

// pinchGesture tracks one two-finger gesture against a viewport. The dead
// zone decides per move whether the fingers are zooming or panning: while
// the finger distance stays within pinchDeadZone of its starting value the
// gesture pans, beyond it the gesture zooms around the finger midpoint.
type pinchGesture struct {
	viewport *Viewport

	startDist  float64
	startScale float64
	lastCenter Vec2
	mode       pinchMode
	velocity   Vec2
}

// start begins tracking at touch points a and b. The caller cancels any
// in-flight animation before this.
func (p *pinchGesture) start(a, b Vec2) {
	p.startDist = b.Sub(a).Len()
	p.startScale = p.viewport.Scale()
	p.lastCenter = midpoint(a, b)
	p.mode = pinchModePan
	p.velocity = Vec2{}
}

// move processes the next positions of both touch points. dt is the time in
// seconds since the previous move and only affects the pan-velocity
// estimate; a non-positive dt leaves the estimate untouched.
func (p *pinchGesture) move(a, b Vec2, dt float64) {
	dist := b.Sub(a).Len()
	center := midpoint(a, b)

	// startDist == 0 means both touches began on the same pixel; the zoom
	// ratio is undefined, so the gesture stays a pan.
	zooming := p.startDist > 0 && math.Abs(dist-p.startDist) > pinchDeadZone

	if zooming {
		p.mode = pinchModeZoom
		zoomAround(p.viewport, center, p.startScale*dist/p.startDist)
	} else {
		p.mode = pinchModePan
		delta := center.Sub(p.lastCenter)
		p.viewport.SetPosition(p.viewport.Position().Add(delta))
		if dt > 0 {
			instant := delta.Scale(1 / dt)
			p.velocity = instant.Scale(smoothingWeight).
				Add(p.velocity.Scale(1 - smoothingWeight))
		}
	}

	p.lastCenter = center
}

// end finishes the gesture. A gesture whose last move was a pan hands its
// accumulated velocity to the glide, so two-finger pans fling like drags;
// zoom gestures carry no momentum.
func (p *pinchGesture) end(gl *glide, onFrame func(Vec2)) {
	if p.mode != pinchModePan {
		return
	}
	gl.release(p.viewport.Position(), p.velocity, onFrame)
}

// zoomAround rescales the viewport to rawScale (clamped) while keeping the
// content point under pivot stationary: it solves for the position that maps
// the same content coordinate back to pivot at the new scale. Position and
// scale are written in one change.
func zoomAround(vp *Viewport, pivot Vec2, rawScale float64) {
	newScale := clampScale(rawScale)
	contentPoint := pivot.Sub(vp.Position()).Scale(1 / vp.Scale())
	vp.Set(pivot.Sub(contentPoint.Scale(newScale)), newScale)
}
