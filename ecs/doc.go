// Package ecs provides ECS adapters for element events.
//
// The primary adapter is [NewDonburiStore], which bridges every event fired in
// an elements.Document (load, mount, text changes, pointer events, image
// loads) into a [Donburi] world as typed events. Subscribe to
// [EventRecordType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	doc.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
