// Package techcanvas draws an interactive two-axis map of technologies for
// [Ebitengine].
//
// The horizontal axis is a catalog of lifecycle [Stage]s, each drawn as a
// labelled segment under the grid. The vertical axis is abstraction depth,
// 1 (concrete) through 5 (abstract). Every [Technology] becomes a point at
// its stage and depth, filled with a color ramp keyed on its mastery.
//
// # Quick start
//
//	c := techcanvas.NewCanvas(techcanvas.Options{Zoom: true, ParallaxLayers: 3})
//	c.SetTechnologies(techs)
//	techcanvas.Run(c, techcanvas.RunConfig{Title: "Tech map", Resizable: true})
//
// A host game can instead call [Canvas.Update], [Canvas.Draw] and
// [Canvas.Layout] from its own [ebiten.Game].
//
// # Rendering
//
// Every state change rebuilds a screen-space display list of
// [RenderCommand]s, ordered background, depth grid, stage grid, stage
// segments, points. [Canvas.Commands] exposes the list so it can be
// inspected without a GPU.
//
// # View
//
// The [Camera] maps world to screen with a uniform scale and translation.
// With zoom enabled the wheel zooms around the pointer and dragging pans.
// [Parallax] adds an eased per-layer offset that follows the pointer, so
// back layers move less than the points.
//
// # Interaction
//
// [Canvas.HitTest] inverts the transforms of the last render, so hovering
// always matches what is on screen. Points take priority over stage
// segments. Register [Canvas.OnHoverChange], [Canvas.OnPointClick] and
// [Canvas.OnStageClick] to react to input.
//
// # Tuning
//
// A [DebugBus] carries [DebugSet], [DebugRequest], [DebugReset] and
// [DebugSnapshot] events between a canvas and a tuning panel.
//
// # Automated testing
//
// Inject* methods queue synthetic pointer events. [LoadTestScript] parses a
// YAML step list that drives injection, parameter changes and
// [Canvas.Screenshot] across frames.
//
// [Ebitengine]: https://ebitengine.org
package techcanvas
