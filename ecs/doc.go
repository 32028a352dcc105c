// Package ecs provides ECS adapters for vitrine's inspection session events.
//
// The primary adapter is [NewDonburiSink], which publishes session events
// (entered, replaced, exited) into a [Donburi] world as typed events.
// Subscribe to [SessionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctrl := vitrine.NewController(vitrine.Config{Events: sink, ...})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
