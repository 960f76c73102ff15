package drift

import "github.com/tanema/gween/ease"

// glide launches the inertia animation for a gesture release, shared by drag
// end and pinch end.
type glide struct {
	backend Animator
	guard   *animationGuard
}

// release decides whether the gesture ends with a fling. It always cancels
// any in-flight animation first, so releases can never stack. Releases
// slower than flingThreshold start nothing: the viewport stays exactly where
// the last move left it. Faster releases animate from pos to
// pos + velocity*decayFactor over inertiaDuration seconds with an ease-out
// curve, feeding every intermediate position through onFrame.
//
// Each release is independent; a superseding gesture cancels a running glide
// through its own guard stop.
func (gl *glide) release(pos, velocity Vec2, onFrame func(Vec2)) {
	gl.guard.stop()
	if velocity.Len() <= flingThreshold {
		return
	}
	target := pos.Add(velocity.Scale(decayFactor))
	gl.guard.start(gl.backend, pos, target, inertiaDuration, ease.OutQuad,
		onFrame, nil)
}
