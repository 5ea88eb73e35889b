package play

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsRefresh is how often, in seconds, the FPS text is rebuilt.
const fpsRefresh = 0.5

// fpsCounter caches the "FPS/TPS" text so it is formatted at most twice a
// second instead of every frame.
type fpsCounter struct {
	elapsed float64
	text    string
}

// update advances the counter by dt seconds and refreshes the text when
// due. sample returns the current FPS and TPS.
func (f *fpsCounter) update(dt float64, sample func() (fps, tps float64)) {
	f.elapsed += dt
	if f.text != "" && f.elapsed < fpsRefresh {
		return
	}
	f.elapsed = 0
	fps, tps := sample()
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}

func actualRates() (fps, tps float64) {
	return ebiten.ActualFPS(), ebiten.ActualTPS()
}
