// Package vitrine is an exhibit-inspection mode for VR walkthroughs built on
// [Ebitengine].
//
// When the user selects an exhibit, the [Controller] moves the user's rig to
// an inspection station, spawns a miniature copy of the exhibit scaled to a
// target height, lets the user orbit and zoom it with two sticks, and on
// request puts the rig back exactly where it was.
//
// # Quick start
//
//	scene := vitrine.NewScene()
//	rig := vitrine.NewContainer("rig")
//	station := vitrine.NewContainer("station")
//	spawn := vitrine.NewContainer("spawn")
//	// ... place station and spawn, add all three to scene.Root() ...
//
//	pad := vitrine.NewGamepadInput()
//	scene.AddPoller(pad)
//
//	ctrl := vitrine.NewController(vitrine.Config{
//		Settings:   vitrine.DefaultSettings(),
//		Scene:      scene,
//		Rig:        rig,
//		Station:    station,
//		SpawnPoint: spawn,
//		Rotate:     pad.RightStick(),
//		Zoom:       pad.LeftStick(),
//		Exit:       pad.Button(ebiten.StandardGamepadButtonRightTop),
//	})
//	scene.AddSystem(ctrl)
//
// Exhibits are entered through a [Trigger], usually picked by a [Selector]
// pointing from a hand node:
//
//	trig, _ := vitrine.NewTrigger(proxy, vitrine.Descriptor{
//		Template: model, Title: "Amphora",
//	}, ctrl, nil)
//
// # Tick loop
//
// [Scene.Update] polls inputs, steps the script runner, then runs systems in
// registration order. Everything is single-threaded; at most one session is
// open per controller, and [Controller.Enter] during a session is ignored or
// replaces the exhibit according to [ReentryPolicy].
//
// # Configuration
//
// [LoadSettings] reads TOML or YAML and then VITRINE_* environment
// variables. Session events can be forwarded to a [Donburi] world via the
// vitrine/ecs module.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package vitrine
