package drift

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenAnimation pairs two gween tweens, one per axis, like the camera
// scroll animations this package grew out of.
type tweenAnimation struct {
	tweenX, tweenY *gween.Tween
	doneX, doneY   bool
	cancelled      bool
	finished       bool
	onFrame        func(Vec2)
	onFinish       func()
	last           Vec2
}

// Running reports whether the animation will still produce frames.
func (a *tweenAnimation) Running() bool {
	return !a.cancelled && !a.finished
}

// Cancel stops the animation. Its remaining frames and finish callback are
// dropped; the animator garbage-collects it on the next Update.
func (a *tweenAnimation) Cancel() {
	a.cancelled = true
}

// advance steps the animation by dt seconds, firing onFrame and, on natural
// completion, onFinish.
func (a *tweenAnimation) advance(dt float64) {
	if !a.Running() {
		return
	}
	if !a.doneX {
		val, done := a.tweenX.Update(float32(dt))
		a.last.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(float32(dt))
		a.last.Y = float64(val)
		a.doneY = done
	}
	if a.onFrame != nil {
		a.onFrame(a.last)
	}
	if a.doneX && a.doneY {
		a.finished = true
		if a.onFinish != nil {
			a.onFinish()
		}
	}
}

// TweenAnimator is the built-in Animator, running animations on gween
// tweens. It has no scheduler of its own: the host calls Update(dt) once per
// frame, which advances every live animation and fires its callbacks on the
// caller's goroutine.
//
// There is no global animator; create one per game (or per controller, it
// makes no difference) and keep it updated.
type TweenAnimator struct {
	active []*tweenAnimation
}

// NewTweenAnimator creates an empty animator.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{}
}

// Animate starts a from-to animation over duration seconds and returns its
// handle. The first frame fires on the next Update call.
func (ta *TweenAnimator) Animate(from, to Vec2, duration float64, easing ease.TweenFunc,
	onFrame func(Vec2), onFinish func()) (AnimationHandle, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("animate: non-positive duration %v", duration)
	}
	if easing == nil {
		easing = ease.Linear
	}
	anim := &tweenAnimation{
		tweenX:   gween.New(float32(from.X), float32(to.X), float32(duration), easing),
		tweenY:   gween.New(float32(from.Y), float32(to.Y), float32(duration), easing),
		onFrame:  onFrame,
		onFinish: onFinish,
		last:     from,
	}
	ta.active = append(ta.active, anim)
	return anim, nil
}

// Update advances all live animations by dt seconds and drops cancelled or
// finished ones. Call once per host frame.
//
// Callbacks may start new animations mid-update; those are collected
// separately and first advance on the next Update.
func (ta *TweenAnimator) Update(dt float64) {
	current := ta.active
	ta.active = nil
	for _, anim := range current {
		anim.advance(dt)
		if anim.Running() {
			ta.active = append(ta.active, anim)
		}
	}
}

// Len returns the number of live animations, for debugging and tests.
func (ta *TweenAnimator) Len() int {
	return len(ta.active)
}
