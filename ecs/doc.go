// Package ecs provides ECS adapters for colorcombine's event system.
//
// The primary adapter is [NewDonburiStore], which bridges scene events
// (pointer, drag, merge) into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them,
// or call [RegisterMergeLog] to keep every merge as an entity.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
