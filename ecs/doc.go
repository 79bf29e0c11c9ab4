// Package ecs provides ECS adapters for branchline's event stream.
//
// [NewDonburiStore] bridges pointer and timeline events (hover changes, the
// timeline becoming visible) into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them.
//
// [SubscribeTimeline] filters that stream down to the timeline events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	ecs.SubscribeTimeline(world, ecs.TimelineHandlers{
//		Hover: func(id int, hovered bool) { ... },
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
