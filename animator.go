package drift

import (
	"log"

	"github.com/tanema/gween/ease"
)

// AnimationHandle is a live from-to animation started through an Animator.
// Backends must implement both methods; the guard relies on this fixed
// contract instead of probing for capabilities at runtime.
type AnimationHandle interface {
	// Running reports whether the animation is still producing frames.
	Running() bool
	// Cancel stops the animation. No further frame or finish callbacks may
	// fire after Cancel returns. Cancelling a finished animation is a no-op.
	Cancel()
}

// Animator starts position animations. The library ships NewTweenAnimator;
// hosts with their own animation scheduler can implement this instead.
//
// onFrame must be invoked with the live intermediate value on every tick of
// the animation, and onFinish exactly once when the animation completes
// naturally (not when cancelled). Either callback may be nil.
type Animator interface {
	Animate(from, to Vec2, duration float64, easing ease.TweenFunc,
		onFrame func(Vec2), onFinish func()) (AnimationHandle, error)
}

// animationGuard owns the single in-flight animation of one controller.
// All starts and cancellations route through it, which is what guarantees
// that two glide/zoom animations never overlap and that a faulty backend
// cannot wedge gesture handling: every fault is recovered, logged, and
// resolved as "no animation".
type animationGuard struct {
	handle AnimationHandle
}

// stop cancels the current animation, if any. The retained handle is nil
// when stop returns, no matter what the backend did. Safe to call on an
// already-empty guard.
func (g *animationGuard) stop() {
	h := g.handle
	g.handle = nil
	if h == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("drift: animation cancel failed: %v", r)
		}
	}()
	if h.Running() {
		h.Cancel()
	}
}

// start launches a new animation on backend and retains its handle. The
// caller is expected to have called stop first. A backend error or panic is
// logged and leaves the guard empty.
func (g *animationGuard) start(backend Animator, from, to Vec2, duration float64,
	easing ease.TweenFunc, onFrame func(Vec2), onFinish func()) {
	g.handle = nil
	defer func() {
		if r := recover(); r != nil {
			log.Printf("drift: animation start failed: %v", r)
			g.handle = nil
		}
	}()
	finish := func() {
		g.handle = nil
		if onFinish != nil {
			onFinish()
		}
	}
	h, err := backend.Animate(from, to, duration, easing, onFrame, finish)
	if err != nil {
		log.Printf("drift: animation start failed: %v", err)
		return
	}
	g.handle = h
}

// active reports whether the guard currently retains a handle.
func (g *animationGuard) active() bool {
	return g.handle != nil
}
