package branchline

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional configuration for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size in device-independent pixels.
	Width, Height int
	// Background fills the screen each frame. Zero keeps the scene's
	// ClearColor.
	Background Color
	// ShowFPS displays an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// Resizable lets the user resize the window; the camera viewport follows.
	Resizable bool
}

// Run is a convenience entry point that opens a window and runs scene until
// the window closes or an update callback returns an error.
//
//	scene := branchline.NewScene()
//	tl, _ := branchline.New(nil)
//	_ = tl.Mount(scene)
//	err := branchline.Run(scene, branchline.RunConfig{Title: "timeline", Width: 960, Height: 600})
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 640
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Background.A > 0 {
		scene.ClearColor = cfg.Background
	}
	scene.SetScreenSize(float64(cfg.Width), float64(cfg.Height))

	g := &gameShell{scene: scene}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	return ebiten.RunGame(g)
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
	fps   *fpsOverlay
	w, h  int
}

func (g *gameShell) Update() error {
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return g.scene.Update()
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout tracks the outside size so the primary camera viewport and the
// observer viewport match the window.
func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.scene.SetScreenSize(float64(outsideWidth), float64(outsideHeight))
		if cam := g.scene.primaryCamera(); cam != nil {
			cam.Viewport.Width = float64(outsideWidth)
			cam.Viewport.Height = float64(outsideHeight)
			cam.MarkDirty()
		}
	}
	return outsideWidth, outsideHeight
}
