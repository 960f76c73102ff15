// Package drift is a gesture-driven 2D viewport controller for [Ebitengine]
// and similar host loops.
//
// Drift turns raw pointer and touch input into pan and zoom of a canvas-like
// viewport, and adds inertia: after a fling the viewport keeps gliding
// briefly, decelerating from the last smoothed velocity. It computes and
// reports position and scale over time. It never renders pixels and never
// persists state; how the viewport transform is applied to pixels is the
// host's business.
//
// # Quick start
//
// Create one [Controller] per canvas, drive it from your update loop, and
// read the transform from its [Viewport]:
//
//	animator := drift.NewTweenAnimator()
//	ctrl := drift.NewController(animator)
//	driver := drift.NewInputDriver(ctrl)
//
//	func (g *Game) Update() error {
//		dt := 1.0 / float64(ebiten.TPS())
//		driver.Update(dt)   // polls mouse/touch, feeds the controller
//		animator.Update(dt) // advances any inertia/zoom animation
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		pos := ctrl.Viewport().Position()
//		scale := ctrl.Viewport().Scale()
//		// apply translate(pos) * scale(scale) to your canvas content
//	}
//
// Hosts that manage their own input can skip [InputDriver] and call the
// gesture methods ([Controller.DragStart], [Controller.PinchMove], ...)
// directly with their own events.
//
// # Change notification
//
// [Viewport.OnChange] fires synchronously on every mutation (drag move,
// pinch move, wheel zoom, and every animation frame) so host-rendered
// overlays stay in sync. The drift/ecs module bridges the same events into a
// [Donburi] world.
//
// # Animation backends
//
// Inertia and animated zoom run through an [Animator]. [NewTweenAnimator]
// provides the built-in backend on [gween] tweens; custom backends implement
// [Animator] and [AnimationHandle]. A misbehaving backend is logged and
// degrades to "no animation" rather than blocking the next gesture.
//
// All state is scoped to a Controller instance, so multiple independent
// canvases can coexist in one process. Everything runs on the host's update
// goroutine; no method blocks or locks.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package drift
