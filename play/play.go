// Package play runs a colorcombine scene in an Ebitengine window.
package play

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/colorcombine"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS sets both Ebitengine's tick rate and the scene's. Zero keeps 60.
	TPS int
	// ClearColor fills the window before tokens are drawn.
	ClearColor colorcombine.Color
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
	// ShowLabels prints each token's name next to it.
	ShowLabels bool
	// ScreenshotDir receives PNGs captured with F12. Empty means
	// "screenshots".
	ScreenshotDir string
	// OnReset is called when R is pressed.
	OnReset func()
	// OnUpdate runs after every Scene.Step. Returning ebiten.Termination
	// closes the window and makes Run return nil.
	OnUpdate func() error
}

// Run opens a window and drives the scene until it is closed. The scene
// reads the mouse through Ebitengine; if it has no camera, one covering the
// window is created.
func Run(scene *colorcombine.Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("play: window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	scene.SetPointerSource(ebitenPointer{})
	return ebiten.RunGame(newGame(scene, cfg))
}

type game struct {
	scene *colorcombine.Scene
	cfg   RunConfig
	fps   fpsCounter
	shots screenshots
	tps   int
}

func newGame(scene *colorcombine.Scene, cfg RunConfig) *game {
	if cfg.TPS > 0 {
		scene.SetTPS(cfg.TPS)
	}
	if scene.MainCamera() == nil {
		scene.NewCamera(colorcombine.Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	}
	scene.SetWindow(float64(cfg.Width), float64(cfg.Height))
	tps := cfg.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &game{scene: scene, cfg: cfg, tps: tps, shots: screenshots{dir: cfg.ScreenshotDir}}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.cfg.OnReset != nil {
		g.cfg.OnReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.add(fmt.Sprintf("step-%d", g.scene.Steps()))
	}
	g.scene.Step()
	if g.cfg.ShowFPS {
		g.fps.update(1/float64(g.tps), actualRates)
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(toNRGBA(g.cfg.ClearColor))
	if cam := g.scene.MainCamera(); cam != nil {
		g.drawNode(screen, cam, g.scene.Root())
	}
	g.shots.flush(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fps.text)
	}
}

// Layout tracks the window size so pointer projection follows resizes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	g.scene.SetWindow(w, h)
	if cam := g.scene.MainCamera(); cam != nil {
		cam.Viewport = colorcombine.Rect{Width: w, Height: h}
	}
	return outsideWidth, outsideHeight
}

// drawNode draws n and its descendants in painter order.
func (g *game) drawNode(screen *ebiten.Image, cam *colorcombine.Camera, n *colorcombine.Node) {
	if !n.Visible {
		return
	}
	if n.Type == colorcombine.NodeTypeCircle {
		x, y, r := screenCircle(cam, n)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), toNRGBA(n.Fill.RGBA()), true)
		if n.Hovered() {
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 2, color.White, true)
		}
		if g.cfg.ShowLabels {
			ebitenutil.DebugPrintAt(screen, n.Name, int(x-r), int(y+r))
		}
	}
	for _, child := range n.Children() {
		g.drawNode(screen, cam, child)
	}
}

// screenCircle returns a token's center and radius in screen pixels.
func screenCircle(cam *colorcombine.Camera, n *colorcombine.Node) (x, y, r float64) {
	center := n.WorldPosition()
	x, y = cam.WorldToScreen(center.X, center.Y)
	ex, ey := cam.WorldToScreen(center.X+n.Radius, center.Y)
	return x, y, math.Hypot(ex-x, ey-y)
}

// toNRGBA converts a [0, 1] color to 8-bit straight alpha.
func toNRGBA(c colorcombine.Color) color.NRGBA {
	return color.NRGBA{
		R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// ebitenPointer reads the mouse through Ebitengine.
type ebitenPointer struct{}

func (ebitenPointer) CursorPosition() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), true
}

func (ebitenPointer) IsButtonPressed(b colorcombine.MouseButton) bool {
	switch b {
	case colorcombine.MouseButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case colorcombine.MouseButtonMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	default:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
}
