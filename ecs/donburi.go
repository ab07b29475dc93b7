package ecs

import (
	"github.com/phanxgames/elements"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventRecordType is the Donburi event type for element events.
var EventRecordType = events.NewEventType[elements.EventRecord]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Records are published to EventRecordType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) elements.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(record elements.EventRecord) {
	EventRecordType.Publish(s.world, record)
}
