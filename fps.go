package branchline

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay prints FPS and TPS in the top-left corner. The text refreshes
// every half second.
type fpsOverlay struct {
	sinceUpdate float64
	label       string
}

func (f *fpsOverlay) update(dt float64) {
	f.sinceUpdate += dt
	if f.label != "" && f.sinceUpdate < 0.5 {
		return
	}
	f.sinceUpdate = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, f.label)
}
