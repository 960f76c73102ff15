package drift

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// frameInput is one frame's worth of polled pointer state. Polling and
// gesture interpretation are split so the interpretation can run on
// synthetic input in tests.
type frameInput struct {
	mousePos  Vec2
	mouseDown bool
	wheelY    float64
	touches   []Vec2
}

// InputDriver polls Ebitengine mouse, wheel, and touch state once per frame
// and translates it into Controller gesture calls: left-button or
// single-touch drags pan, two touches pinch, and the wheel zooms around the
// cursor. Hosts with their own event routing can skip the driver and call
// the Controller directly.
type InputDriver struct {
	ctrl *Controller

	// WheelZoomStep is the scale factor applied per wheel notch. Values
	// below 1 invert the wheel direction.
	WheelZoomStep float64

	now      float64
	dragging bool
	pinching bool
	lastPos  Vec2

	touchIDs []ebiten.TouchID
	touchBuf []Vec2
}

// NewInputDriver creates a driver feeding ctrl.
func NewInputDriver(ctrl *Controller) *InputDriver {
	return &InputDriver{ctrl: ctrl, WheelZoomStep: 1.1}
}

// Update polls input state and advances the driver by dt seconds. Call once
// per host update tick.
func (d *InputDriver) Update(dt float64) {
	var in frameInput
	mx, my := ebiten.CursorPosition()
	in.mousePos = Vec2{float64(mx), float64(my)}
	in.mouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	_, in.wheelY = ebiten.Wheel()

	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	d.touchBuf = d.touchBuf[:0]
	for _, id := range d.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		d.touchBuf = append(d.touchBuf, Vec2{float64(tx), float64(ty)})
	}
	in.touches = d.touchBuf

	d.step(in, dt)
}

// step interprets one frame of pointer state.
func (d *InputDriver) step(in frameInput, dt float64) {
	d.now += dt

	// Two touches always mean pinch; hand off from a drag if one was in
	// progress. PinchStart cancels whatever the drag release may have
	// launched.
	if len(in.touches) >= 2 {
		if d.dragging {
			d.ctrl.DragEnd(d.lastPos, d.now)
			d.dragging = false
		}
		if !d.pinching {
			d.ctrl.PinchStart(in.touches[0], in.touches[1])
			d.pinching = true
		} else {
			d.ctrl.PinchMove(in.touches[0], in.touches[1], dt)
		}
		return
	}
	if d.pinching {
		d.ctrl.PinchEnd()
		d.pinching = false
	}

	// Single pointer: one touch, or the mouse.
	pos, down := in.mousePos, in.mouseDown
	if len(in.touches) == 1 {
		pos, down = in.touches[0], true
	}

	switch {
	case down && !d.dragging:
		d.ctrl.DragStart(pos, d.now)
		d.dragging = true
	case down && d.dragging:
		d.ctrl.DragMove(pos, d.now)
	case !down && d.dragging:
		d.ctrl.DragEnd(pos, d.now)
		d.dragging = false
	}
	d.lastPos = pos

	if in.wheelY != 0 && !d.dragging {
		d.ctrl.ZoomAt(in.mousePos, math.Pow(d.WheelZoomStep, in.wheelY))
	}
}
