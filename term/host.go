// Package term runs a colorcombine scene in a terminal with tcell.
//
// Each cell is one "pixel" of the scene's window; the camera projection is
// fitted so that the board fills the terminal, with cells treated as twice
// as tall as they are wide.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/colorcombine"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Host drives a scene from a tcell screen.
type Host struct {
	screen  tcell.Screen
	scene   *colorcombine.Scene
	pointer *mousePointer

	// Board is the world-space size kept visible, centered on the camera.
	Board colorcombine.Vec2
	// OnReset is called when the player presses r.
	OnReset func()
	// Background fills cells no token covers.
	Background tcell.Color

	width, height int
}

// NewHost binds an initialized screen to a scene. It enables mouse
// reporting, installs itself as the scene's pointer source and gives the
// scene a camera if it has none.
func NewHost(screen tcell.Screen, scene *colorcombine.Scene, board colorcombine.Vec2) *Host {
	h := &Host{
		screen:     screen,
		scene:      scene,
		pointer:    &mousePointer{},
		Board:      board,
		Background: tcell.ColorBlack,
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	scene.SetPointerSource(h.pointer)
	if scene.MainCamera() == nil {
		scene.NewCamera(colorcombine.Rect{})
	}
	h.Fit()
	return h
}

// Fit resizes the scene window and camera to the screen so the whole board
// is visible.
func (h *Host) Fit() {
	w, height := h.screen.Size()
	h.width, h.height = w, height
	if w <= 0 || height <= 0 {
		h.scene.ClearWindow()
		return
	}
	h.scene.SetWindow(float64(w), float64(height))

	cam := h.scene.MainCamera()
	cam.Viewport = colorcombine.Rect{Width: float64(w), Height: float64(height)}
	// World units per cell column; rows cover cellAspect times as much.
	unit := max(h.Board.X/float64(w), h.Board.Y/(float64(height)*cellAspect))
	if unit <= 0 {
		unit = 1
	}
	cam.SetProjection([6]float64{
		2 / (float64(w) * unit), 0,
		0, -2 / (float64(height) * unit * cellAspect),
		0, 0,
	})
}

// HandleEvent applies one tcell event. It returns false when the user asked
// to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				if h.OnReset != nil {
					h.OnReset()
				}
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.pointer.set(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		h.screen.Sync()
		h.Fit()
	}
	return true
}

// Draw renders every visible token into the screen and shows it.
func (h *Host) Draw() {
	bg := tcell.StyleDefault.Background(h.Background)
	h.screen.Fill(' ', bg)

	cam := h.scene.MainCamera()
	if cam == nil || h.width <= 0 || h.height <= 0 {
		h.screen.Show()
		return
	}
	drawNode(h, cam, h.scene.Root())

	groups := len(h.scene.Groups())
	free := 0
	for _, t := range h.scene.Tokens() {
		if t.IsDraggable() {
			free++
		}
	}
	status := fmt.Sprintf(" free: %d  groups: %d  r: reset  q: quit ", free, groups)
	for i, r := range status {
		if i >= h.width {
			break
		}
		h.screen.SetContent(i, h.height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	h.screen.Show()
}

// drawNode paints n and its descendants in painter order.
func drawNode(h *Host, cam *colorcombine.Camera, n *colorcombine.Node) {
	if !n.Visible {
		return
	}
	if n.Type == colorcombine.NodeTypeCircle {
		drawCircle(h, cam, n)
	}
	for _, child := range n.Children() {
		drawNode(h, cam, child)
	}
}

// drawCircle fills every cell whose center lies inside the token.
func drawCircle(h *Host, cam *colorcombine.Camera, n *colorcombine.Node) {
	center := n.WorldPosition()
	x0, y0 := cam.WorldToScreen(center.X-n.Radius, center.Y-n.Radius)
	x1, y1 := cam.WorldToScreen(center.X+n.Radius, center.Y+n.Radius)
	style := tcell.StyleDefault.Background(cellColor(n.Fill, h.Background))
	glyph := ' '
	if n.Hovered() {
		glyph = '░'
	}

	for cy := max(int(min(y0, y1)), 0); cy <= min(int(max(y0, y1)), h.height-1); cy++ {
		for cx := max(int(min(x0, x1)), 0); cx <= min(int(max(x0, x1)), h.width-1); cx++ {
			p, ok := cam.ScreenToWorld(float64(cx)+0.5, float64(cy)+0.5)
			if !ok || p.Distance(center) >= n.Radius {
				continue
			}
			h.screen.SetContent(cx, cy, glyph, nil, style)
		}
	}
}

// cellColor blends a translucent fill over the background.
func cellColor(c colorcombine.HSLA, bg tcell.Color) tcell.Color {
	rgb := c.RGBA()
	br, bgc, bb := bg.RGB()
	if br < 0 {
		br, bgc, bb = 0, 0, 0
	}
	blend := func(v float64, under int32) int32 {
		return int32(v*rgb.A*255 + float64(under)*(1-rgb.A) + 0.5)
	}
	return tcell.NewRGBColor(blend(rgb.R, br), blend(rgb.G, bgc), blend(rgb.B, bb))
}

// Run steps the scene tps times per second and redraws after each step,
// until the user quits or ctx is canceled. The caller owns the screen and
// must call Fini on it afterwards.
func (h *Host) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		return fmt.Errorf("term: tps must be positive, got %d", tps)
	}
	h.scene.SetTPS(tps)
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.scene.Step()
			h.Draw()
		}
	}
}

// mousePointer is the scene's PointerSource, fed from tcell mouse events.
// Positions are reported at the center of the cell.
//
// tcell can deliver several events between two scene steps. Button changes
// are queued with the cell they happened in, and each step sees at most one
// of them, so a quick click or a press followed by motion is not lost.
type mousePointer struct {
	x, y    int
	known   bool
	pressed bool
	edges   []mouseEdge
}

// mouseEdge is a button change the scene has not sampled yet.
type mouseEdge struct {
	x, y    int
	pressed bool
}

func (p *mousePointer) set(x, y int, pressed bool) {
	last := p.pressed
	if n := len(p.edges); n > 0 {
		last = p.edges[n-1].pressed
	}
	if pressed != last {
		p.edges = append(p.edges, mouseEdge{x: x, y: y, pressed: pressed})
	}
	p.x, p.y = x, y
	p.known = true
	if len(p.edges) == 0 {
		p.pressed = pressed
	}
}

// CursorPosition reports the cell of the oldest unsampled button change, or
// the latest position when there is none.
func (p *mousePointer) CursorPosition() (float64, float64, bool) {
	x, y := p.x, p.y
	if len(p.edges) > 0 {
		x, y = p.edges[0].x, p.edges[0].y
	}
	return float64(x) + 0.5, float64(y) + 0.5, p.known
}

// IsButtonPressed consumes the oldest unsampled button change, if any. The
// scene reads the cursor first and the button second on every step.
func (p *mousePointer) IsButtonPressed(b colorcombine.MouseButton) bool {
	if b != colorcombine.MouseButtonLeft {
		return false
	}
	if len(p.edges) > 0 {
		p.pressed = p.edges[0].pressed
		p.edges = p.edges[1:]
	}
	return p.pressed
}
