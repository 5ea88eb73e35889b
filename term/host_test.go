package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/colorcombine"
)

func newSimHost(t *testing.T) (*Host, tcell.SimulationScreen, *colorcombine.Scene) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	scene := colorcombine.NewScene()
	scene.SetLogOutput(nil)
	// 80x25 cells: one column is 10 world units, one row 20.
	h := NewHost(screen, scene, colorcombine.Vec2{X: 700, Y: 500})
	return h, screen, scene
}

func spawnToken(s *colorcombine.Scene, x, y float64) *colorcombine.Node {
	n := colorcombine.NewCircle("tok", 40, colorcombine.HSLA{H: 240, S: 1, L: 0.7, A: 0.7})
	n.SetPosition(x, y)
	n.SetDraggable(true)
	s.Spawn(n)
	return n
}

func cellBackground(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	cells, w, _ := screen.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func TestNewHostFitsWindow(t *testing.T) {
	_, _, scene := newSimHost(t)
	win := scene.Window()
	if win == nil || win.Width != 80 || win.Height != 25 {
		t.Fatalf("window = %+v, want 80x25", win)
	}
	p, ok := scene.MainCamera().ScreenToWorld(40, 12.5)
	if !ok || p.X != 0 || p.Y != 0 {
		t.Errorf("screen center = %v, want world origin", p)
	}
	p, _ = scene.MainCamera().ScreenToWorld(50, 12.5)
	if p.X < 99.99 || p.X > 100.01 {
		t.Errorf("ten columns right = %v, want x 100", p)
	}
}

func TestDrawFillsTokenCells(t *testing.T) {
	h, screen, scene := newSimHost(t)
	tok := spawnToken(scene, 0, 0)
	h.Draw()

	want := cellColor(tok.Fill, tcell.ColorBlack)
	if got := cellBackground(t, screen, 40, 12); got != want {
		t.Errorf("center cell = %v, want %v", got, want)
	}
	if got := cellBackground(t, screen, 0, 0); got != tcell.ColorBlack {
		t.Errorf("corner cell = %v, want black", got)
	}
	if got := cellBackground(t, screen, 48, 12); got != tcell.ColorBlack {
		t.Errorf("cell past the radius = %v, want black", got)
	}
}

func TestCellColorBlendsAlpha(t *testing.T) {
	opaque := cellColor(colorcombine.HSLA{H: 0, S: 1, L: 0.5, A: 1}, tcell.ColorBlack)
	if r, g, b := opaque.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("opaque red = (%d, %d, %d)", r, g, b)
	}
	half := cellColor(colorcombine.HSLA{H: 0, S: 1, L: 0.5, A: 0.5}, tcell.ColorBlack)
	if r, _, _ := half.RGB(); r != 128 {
		t.Errorf("half red = %d, want 128", r)
	}
}

func TestMouseDrag(t *testing.T) {
	h, _, scene := newSimHost(t)
	tok := spawnToken(scene, 0, 0)

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	scene.Step()
	if id, ok := scene.Drag().Dragging(); !ok || id != tok.ID {
		t.Fatalf("Dragging = (%d, %v), want token", id, ok)
	}

	h.HandleEvent(tcell.NewEventMouse(50, 12, tcell.Button1, tcell.ModNone))
	scene.Step()
	if p := tok.WorldPosition(); p.X < 104.99 || p.X > 105.01 {
		t.Errorf("token = %v, want x 105", p)
	}

	h.HandleEvent(tcell.NewEventMouse(50, 12, tcell.ButtonNone, tcell.ModNone))
	scene.Step()
	if _, ok := scene.Drag().Dragging(); ok {
		t.Error("release should end the drag")
	}
}

func TestClickBetweenSteps(t *testing.T) {
	h, _, scene := newSimHost(t)
	tok := spawnToken(scene, 0, 0)
	var downs, ups []colorcombine.EntityID
	scene.OnPointerDown(func(ctx colorcombine.PointerContext) { downs = append(downs, ctx.EntityID) })
	scene.OnPointerUp(func(ctx colorcombine.PointerContext) { ups = append(ups, ctx.EntityID) })

	// Press and release both arrive before the next step.
	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone))
	scene.Step()
	if len(downs) != 1 || downs[0] != tok.ID {
		t.Fatalf("downs = %v, want [%d]", downs, tok.ID)
	}
	scene.Step()
	if len(ups) != 1 {
		t.Errorf("ups = %v, want one", ups)
	}
	if _, ok := scene.Drag().Dragging(); ok {
		t.Error("drag should have ended")
	}
}

func TestPressThenMoveBeforeStep(t *testing.T) {
	h, _, scene := newSimHost(t)
	tok := spawnToken(scene, 0, 0)

	// The press lands on the token, the motion leaves it before the step.
	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(60, 12, tcell.Button1, tcell.ModNone))
	scene.Step()
	if id, ok := scene.Drag().Dragging(); !ok || id != tok.ID {
		t.Fatalf("Dragging = (%d, %v), want token", id, ok)
	}
	scene.Step()
	if p := tok.WorldPosition(); p.X < 204.99 || p.X > 205.01 {
		t.Errorf("token = %v, want x 205", p)
	}
}

func TestMousePointerEdges(t *testing.T) {
	var p mousePointer
	if _, _, ok := p.CursorPosition(); ok {
		t.Error("cursor should be unknown before any event")
	}
	p.set(1, 1, true)
	p.set(2, 2, true)
	p.set(3, 3, false)
	p.set(4, 4, false)

	steps := []struct {
		x, y    float64
		pressed bool
	}{
		{1.5, 1.5, true},
		{3.5, 3.5, false},
		{4.5, 4.5, false},
	}
	for i, want := range steps {
		x, y, _ := p.CursorPosition()
		pressed := p.IsButtonPressed(colorcombine.MouseButtonLeft)
		if x != want.x || y != want.y || pressed != want.pressed {
			t.Errorf("sample %d = (%v, %v, %v), want (%v, %v, %v)", i, x, y, pressed, want.x, want.y, want.pressed)
		}
	}
	if p.IsButtonPressed(colorcombine.MouseButtonRight) {
		t.Error("right button is never reported")
	}
}

func TestHandleKeys(t *testing.T) {
	h, _, _ := newSimHost(t)
	resets := 0
	h.OnReset = func() { resets++ }

	tests := []struct {
		name string
		ev   tcell.Event
		want bool
	}{
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), false},
		{"r resets", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), true},
		{"other keys ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}
	for _, tt := range tests {
		if got := h.HandleEvent(tt.ev); got != tt.want {
			t.Errorf("%s: HandleEvent = %v, want %v", tt.name, got, tt.want)
		}
	}
	if resets != 1 {
		t.Errorf("resets = %d, want 1", resets)
	}
}

func TestResizeRefits(t *testing.T) {
	h, screen, scene := newSimHost(t)
	screen.SetSize(40, 20)
	h.HandleEvent(tcell.NewEventResize(40, 20))
	if win := scene.Window(); win.Width != 40 || win.Height != 20 {
		t.Errorf("window = %+v, want 40x20", win)
	}
	if vp := scene.MainCamera().Viewport; vp.Width != 40 || vp.Height != 20 {
		t.Errorf("viewport = %+v", vp)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	h, screen, _ := newSimHost(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- h.Run(context.Background(), 60) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h, _, scene := newSimHost(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := h.Run(ctx, 100)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run = %v, want deadline exceeded", err)
	}
	if scene.Steps() == 0 {
		t.Error("scene never stepped")
	}
}

func TestRunRejectsBadTPS(t *testing.T) {
	h, _, _ := newSimHost(t)
	if err := h.Run(context.Background(), 0); err == nil {
		t.Error("expected error for zero tps")
	}
}
