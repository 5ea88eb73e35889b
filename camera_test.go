package colorcombine

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	p := cam.Projection()
	want := [6]float64{2.0 / 800, 0, 0, -2.0 / 600, 0, 0}
	if p != want {
		t.Errorf("Projection = %v, want %v", p, want)
	}
}

func TestCameraScreenToWorld(t *testing.T) {
	tests := []struct {
		name         string
		x, y, zoom   float64
		sx, sy       float64
		wantX, wantY float64
	}{
		{"center", 0, 0, 1, 400, 300, 0, 0},
		{"top-left", 0, 0, 1, 0, 0, -400, -300},
		{"bottom-right", 0, 0, 1, 800, 600, 400, 300},
		{"zoomed", 0, 0, 2, 0, 0, -200, -150},
		{"translated", 100, 50, 1, 400, 300, 100, 50},
		{"translated offset", 100, 50, 1, 600, 375, 300, 125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newCamera(Rect{Width: 800, Height: 600})
			cam.X, cam.Y, cam.Zoom = tt.x, tt.y, tt.zoom
			got, ok := cam.ScreenToWorld(tt.sx, tt.sy)
			if !ok {
				t.Fatal("ScreenToWorld failed")
			}
			if !approxEqual(got.X, tt.wantX, 1e-9) || !approxEqual(got.Y, tt.wantY, 1e-9) {
				t.Errorf("ScreenToWorld(%v, %v) = %v, want (%v, %v)", tt.sx, tt.sy, got, tt.wantX, tt.wantY)
			}
			sx, sy := cam.WorldToScreen(got.X, got.Y)
			if !approxEqual(sx, tt.sx, 1e-9) || !approxEqual(sy, tt.sy, 1e-9) {
				t.Errorf("WorldToScreen round trip = (%v, %v), want (%v, %v)", sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestCameraRotation(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.Rotation = math.Pi / 2
	// The screen point 100px right of center lies along the camera's rotated x axis.
	got, _ := cam.ScreenToWorld(500, 300)
	if !approxEqual(got.X, 0, 1e-9) || !approxEqual(got.Y, 100, 1e-9) {
		t.Errorf("rotated ScreenToWorld = %v, want (0, 100)", got)
	}
}

func TestCameraViewportOffset(t *testing.T) {
	cam := newCamera(Rect{X: 100, Y: 50, Width: 400, Height: 200})
	got, ok := cam.ScreenToWorld(300, 150)
	if !ok || !approxEqual(got.X, 0, 1e-9) || !approxEqual(got.Y, 0, 1e-9) {
		t.Errorf("viewport center = %v (ok %v), want origin", got, ok)
	}
}

func TestCameraDegenerateViewport(t *testing.T) {
	cam := newCamera(Rect{})
	if _, ok := cam.ScreenToWorld(0, 0); ok {
		t.Error("empty viewport should not project")
	}
	if cam.Projection() != identityTransform {
		t.Error("empty viewport projection should be identity")
	}
}

func TestCameraCustomProjection(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.SetProjection(identityTransform)
	got, ok := cam.NDCToWorld(0.5, -0.25)
	if !ok || !approxEqual(got.X, 0.5, epsilon) || !approxEqual(got.Y, -0.25, epsilon) {
		t.Errorf("NDCToWorld = %v (ok %v), want (0.5, -0.25)", got, ok)
	}

	cam.SetProjection([6]float64{0, 0, 0, 0, 0, 0})
	if _, ok := cam.NDCToWorld(0, 0); ok {
		t.Error("singular projection should not unproject")
	}

	cam.ResetProjection()
	if cam.Projection()[0] != 2.0/800 {
		t.Error("ResetProjection did not restore the viewport projection")
	}
}

func TestCameraWorldToNDC(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 10, 20
	nx, ny := cam.WorldToNDC(210, 95)
	if !approxEqual(nx, 0.5, epsilon) || !approxEqual(ny, -0.25, epsilon) {
		t.Errorf("WorldToNDC = (%v, %v), want (0.5, -0.25)", nx, ny)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, 200, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("expected Scrolling after ScrollTo")
	}
	cam.update(0.5)
	if !approxEqual(cam.X, 50, 1e-3) || !approxEqual(cam.Y, 100, 1e-3) {
		t.Errorf("halfway = (%v, %v), want (50, 100)", cam.X, cam.Y)
	}
	cam.update(0.5)
	if !approxEqual(cam.X, 100, 1e-3) || !approxEqual(cam.Y, 200, 1e-3) {
		t.Errorf("end = (%v, %v), want (100, 200)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("scroll should be finished")
	}
}

func TestCameraScrollAdvancesWithStep(t *testing.T) {
	s := newTestScene(t)
	s.SetTPS(10)
	cam := s.MainCamera()
	cam.ScrollTo(100, 0, 1.0, ease.Linear)
	for i := 0; i < 5; i++ {
		s.Step()
	}
	if !approxEqual(cam.X, 50, 1e-3) {
		t.Errorf("after 5 of 10 steps X = %v, want 50", cam.X)
	}
	for i := 0; i < 6; i++ {
		s.Step()
	}
	if cam.Scrolling() || !approxEqual(cam.X, 100, 1e-3) {
		t.Errorf("after scroll X = %v scrolling %v", cam.X, cam.Scrolling())
	}
}

func TestCameraCenterOnCancelsScroll(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, 100, 1.0, ease.Linear)
	cam.CenterOn(5, 6)
	if cam.Scrolling() || cam.X != 5 || cam.Y != 6 {
		t.Errorf("CenterOn = (%v, %v) scrolling %v", cam.X, cam.Y, cam.Scrolling())
	}
}
