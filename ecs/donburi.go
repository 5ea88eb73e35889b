// Package ecs provides ECS adapters for colorcombine.
package ecs

import (
	"github.com/phanxgames/colorcombine"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType is the Donburi event type for scene events.
// Subscribe to this in your ECS systems to receive pointer, drag and merge
// events.
var InteractionEventType = events.NewEventType[colorcombine.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) colorcombine.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event colorcombine.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// MergeRecord is the component stored for every merge seen by a MergeLog.
type MergeRecord struct {
	Group    colorcombine.EntityID
	Members  [2]colorcombine.EntityID
	Combined colorcombine.HSLA
}

// MergeRecordComponent is the Donburi component type holding a MergeRecord.
var MergeRecordComponent = donburi.NewComponentType[MergeRecord]()

var mergeQuery = donburi.NewQuery(filter.Contains(MergeRecordComponent))

// RegisterMergeLog subscribes a handler that turns every EventMerge into an
// entity carrying a MergeRecord. Records appear once events are processed.
func RegisterMergeLog(world donburi.World) {
	InteractionEventType.Subscribe(world, recordMerge)
}

func recordMerge(w donburi.World, e colorcombine.InteractionEvent) {
	if e.Type != colorcombine.EventMerge {
		return
	}
	entry := w.Entry(w.Create(MergeRecordComponent))
	*MergeRecordComponent.Get(entry) = MergeRecord{
		Group:    e.EntityID,
		Members:  e.Members,
		Combined: e.Combined,
	}
}

// MergeRecords returns every recorded merge. Order follows Donburi's
// storage order, not merge order.
func MergeRecords(world donburi.World) []MergeRecord {
	var out []MergeRecord
	mergeQuery.Each(world, func(entry *donburi.Entry) {
		out = append(out, *MergeRecordComponent.Get(entry))
	})
	return out
}
