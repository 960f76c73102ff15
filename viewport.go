package drift

// ViewportEvent is a snapshot of the viewport transform, delivered on every
// change.
type ViewportEvent struct {
	Position Vec2
	Scale    float64
}

// ViewportSink receives viewport change events. Implementations bridge
// changes into external systems; see the drift/ecs module for a Donburi
// implementation.
type ViewportSink interface {
	EmitViewport(ViewportEvent)
}

// Viewport is the single authoritative position and scale of one canvas.
// Every component of a Controller reads and writes through it, and every
// write notifies the registered callback and sink synchronously, so reads
// within the same tick always see the latest value.
//
// Scale is clamped to [MinScale, MaxScale] on every write.
type Viewport struct {
	position Vec2
	scale    float64
	onChange func(ViewportEvent)
	sink     ViewportSink
}

// NewViewport creates a viewport at the origin with scale 1.
func NewViewport() *Viewport {
	return &Viewport{scale: 1.0}
}

// Position returns the current canvas position.
func (v *Viewport) Position() Vec2 {
	return v.position
}

// Scale returns the current canvas scale.
func (v *Viewport) Scale() float64 {
	return v.scale
}

// SetPosition moves the canvas and notifies observers.
func (v *Viewport) SetPosition(p Vec2) {
	v.position = p
	v.notify()
}

// SetScale rescales the canvas, clamping to [MinScale, MaxScale], and
// notifies observers.
func (v *Viewport) SetScale(s float64) {
	v.scale = clampScale(s)
	v.notify()
}

// Set writes position and scale together in a single change, so observers
// never see a zoom step's translation and scale out of sync.
func (v *Viewport) Set(p Vec2, s float64) {
	v.position = p
	v.scale = clampScale(s)
	v.notify()
}

// OnChange registers the host callback invoked after every viewport write.
// Pass nil to remove it. Only one callback is held; hosts needing fan-out
// can register a ViewportSink as well.
func (v *Viewport) OnChange(fn func(ViewportEvent)) {
	v.onChange = fn
}

// SetSink registers a ViewportSink that receives the same events as the
// OnChange callback. Pass nil to remove it.
func (v *Viewport) SetSink(sink ViewportSink) {
	v.sink = sink
}

func (v *Viewport) notify() {
	ev := ViewportEvent{Position: v.position, Scale: v.scale}
	if v.onChange != nil {
		v.onChange(ev)
	}
	if v.sink != nil {
		v.sink.EmitViewport(ev)
	}
}
