package ecs

import (
	"github.com/phanxgames/drift"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ViewportEventType is the Donburi event type for drift viewport changes.
// Subscribe to this in your ECS systems to react to pan, zoom, and inertia
// frames.
var ViewportEventType = events.NewEventType[drift.ViewportEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a ViewportSink backed by a Donburi world. Register
// it on a viewport with Viewport.SetSink; changes are published to
// ViewportEventType and consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) drift.ViewportSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitViewport(event drift.ViewportEvent) {
	ViewportEventType.Publish(s.world, event)
}
