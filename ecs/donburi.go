package ecs

import (
	"github.com/phanxgames/vitrine"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SessionEventType is the Donburi event type for vitrine session events.
var SessionEventType = events.NewEventType[vitrine.SessionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to SessionEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) vitrine.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitSessionEvent(event vitrine.SessionEvent) {
	SessionEventType.Publish(s.world, event)
}
