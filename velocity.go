package drift

// VelocityTracker estimates pointer velocity from a stream of timestamped
// positions using exponential smoothing. Raw per-frame deltas are too noisy
// to fling from directly; the smoothed estimate weights the newest sample at
// 0.8 and the running estimate at 0.2.
//
// A tracker is reset with Start at every gesture start and has no meaning
// outside one gesture cycle.
type VelocityTracker struct {
	lastPos  Vec2
	lastTime float64
	velocity Vec2
}

// Start begins a new gesture sample at pos and time t (seconds). The
// velocity estimate resets to zero.
func (tr *VelocityTracker) Start(pos Vec2, t float64) {
	tr.lastPos = pos
	tr.lastTime = t
	tr.velocity = Vec2{}
}

// Update feeds the next timestamped position. Samples with a non-positive
// time delta (duplicate or out-of-order timestamps) leave the velocity
// estimate untouched so it can never become NaN or Inf; the position and
// timestamp are recorded regardless.
func (tr *VelocityTracker) Update(pos Vec2, t float64) {
	dt := t - tr.lastTime
	if dt > 0 {
		instant := pos.Sub(tr.lastPos).Scale(1 / dt)
		tr.velocity = instant.Scale(smoothingWeight).
			Add(tr.velocity.Scale(1 - smoothingWeight))
	}
	tr.lastPos = pos
	tr.lastTime = t
}

// Velocity returns the current smoothed velocity estimate.
func (tr *VelocityTracker) Velocity() Vec2 {
	return tr.velocity
}

// Magnitude returns the speed of the smoothed estimate.
func (tr *VelocityTracker) Magnitude() float64 {
	return tr.velocity.Len()
}
