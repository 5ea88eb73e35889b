// Package colorcombine is the core of a small color-mixing puzzle toy.
//
// Colored circular tokens are scattered on a 2D surface. The player drags
// them with the pointer, and whenever two tokens overlap they fuse for good
// into a group that shows a darker mix of both colors.
//
// # Quick start
//
//	scene := colorcombine.NewScene()
//	scene.NewCamera(colorcombine.Rect{Width: 1200, Height: 800})
//	scene.SetWindow(1200, 800)
//	colorcombine.Populate(scene, colorcombine.NewRand(42), colorcombine.DefaultPopulateConfig)
//
//	// every frame:
//	scene.Step()
//
// The play package runs a scene in an [Ebitengine] window and the term
// package runs one in a terminal. Both feed pointer input through a
// [PointerSource]; tests use [Scene.InjectDrag] instead.
//
// # Scene graph
//
// Entities are [Node] values stored in the scene's arena and identified by
// [EntityID]. Nodes form a tree rooted at [Scene.Root]; a child's world
// transform is composed from its ancestors on read.
//
// # Step order
//
// [Scene.Step] runs camera animation, input sampling, hover, the
// [DragController], and then the overlap pass that forms groups. Everything
// is single-threaded.
//
// # Colors
//
// Token colors are [HSLA] drawn by [RandomColor] inside a [ColorBand].
// [Combine] halves each color's lightness and adds the two; hue wraps and
// the other channels clamp to [0, 1].
//
// [Ebitengine]: https://ebitengine.org
package colorcombine
