// Package branchline renders an animated, branching timeline for [Ebitengine].
//
// A [Timeline] lays events out along a horizontal main line. Events with a
// non-zero Branch sit off the line at the end of an S-shaped curve: positive
// branches below it (screen y grows downward), negative ones above.
// Nothing is drawn in until the timeline scrolls into the viewport: the main
// line then draws in linearly, and each branch and node springs in with a
// delay that keeps it in step with the line. Hovering a node shows a detail
// card with the event's title and date.
//
// # Quick start
//
//	scene := branchline.NewScene()
//	cam := scene.NewCamera(branchline.Rect{Width: 960, Height: 640})
//	cam.SetBounds(branchline.Rect{Y: -640, Width: 1200, Height: 1920})
//
//	tl, err := branchline.New(nil) // nil uses DefaultEvents
//	if err != nil {
//		log.Fatal(err)
//	}
//	tl.Root().SetPosition(0, 640) // starts below the fold
//	if err := tl.Mount(scene); err != nil {
//		log.Fatal(err)
//	}
//	err = branchline.Run(scene, branchline.RunConfig{Title: "timeline", Width: 960, Height: 640})
//
// # Scene graph
//
// Every visual element is a [Node]: containers, strokes, circles and cards.
// Nodes form a tree rooted at [Scene.Root] and inherit their parent's
// transform and alpha. [Scene.Draw] turns the tree into [RenderCommand]s,
// sorts them by render layer and submits them to the screen.
//
// # Visibility
//
// [IntersectionObserver] compares a node's world bounds to the primary
// camera's visible area once per [Scene.Update]. The timeline uses one to
// latch its visible state the first time at least 20% of it is on screen.
// [Timeline.Unmount] always disconnects it.
//
// # Export
//
// [WriteSVG] writes the same layout as a standalone animated SVG using CSS
// keyframes and :hover cards.
//
// [Ebitengine]: https://ebitengine.org
package branchline
