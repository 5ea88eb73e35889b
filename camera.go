package colorcombine

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the scene. Its world transform places it in
// the scene; its projection maps camera-space points to normalized device
// coordinates (NDC), where x grows right and y grows up, both in [-1, 1]
// across the viewport.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	projection       [6]float64
	customProjection bool

	scrollTween *scrollAnim
}

// newCamera creates a Camera with default values and the given viewport.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
	}
}

// Projection returns the camera-space to NDC matrix. Unless overridden with
// SetProjection it is an orthographic projection sized to the viewport and
// zoom, with screen-down mapped to NDC-down. A degenerate viewport yields the
// identity.
func (c *Camera) Projection() [6]float64 {
	if c.customProjection {
		return c.projection
	}
	w, h := c.Viewport.Width, c.Viewport.Height
	if w <= 0 || h <= 0 || c.Zoom == 0 {
		return identityTransform
	}
	return [6]float64{2 * c.Zoom / w, 0, 0, -2 * c.Zoom / h, 0, 0}
}

// SetProjection overrides the projection matrix.
func (c *Camera) SetProjection(m [6]float64) {
	c.projection = m
	c.customProjection = true
}

// ResetProjection returns to the viewport-derived orthographic projection.
func (c *Camera) ResetProjection() {
	c.customProjection = false
}

// WorldTransform returns the camera's placement in the world:
// Translate(X, Y) * Rotate(Rotation).
func (c *Camera) WorldTransform() [6]float64 {
	sin, cos := math.Sincos(c.Rotation)
	return [6]float64{cos, sin, -sin, cos, c.X, c.Y}
}

// NDCToWorld unprojects a normalized device coordinate through the inverse
// projection and the camera's world transform. Returns false when the
// projection is singular.
func (c *Camera) NDCToWorld(nx, ny float64) (Vec2, bool) {
	inv, ok := invertAffine(c.Projection())
	if !ok {
		return Vec2{}, false
	}
	m := multiplyAffine(c.WorldTransform(), inv)
	wx, wy := transformPoint(m, nx, ny)
	return Vec2{wx, wy}, true
}

// WorldToNDC projects a world-space point into normalized device coordinates.
func (c *Camera) WorldToNDC(wx, wy float64) (nx, ny float64) {
	invWorld, _ := invertAffine(c.WorldTransform())
	return transformPoint(multiplyAffine(c.Projection(), invWorld), wx, wy)
}

// ScreenToWorld converts a point in screen pixels (relative to the screen,
// not the viewport) to world coordinates. Returns false when the viewport is
// empty or the projection singular.
func (c *Camera) ScreenToWorld(sx, sy float64) (Vec2, bool) {
	vp := c.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return Vec2{}, false
	}
	nx, ny := pixelToNDC(sx-vp.X, sy-vp.Y, vp.Width, vp.Height)
	return c.NDCToWorld(nx, ny)
}

// WorldToScreen converts world coordinates to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	nx, ny := c.WorldToNDC(wx, wy)
	vp := c.Viewport
	sx = vp.X + (nx+1)/2*vp.Width
	sy = vp.Y + (1-ny)/2*vp.Height
	return sx, sy
}

// pixelToNDC maps a pixel inside a w x h area to [-1, 1] on both axes,
// flipping y so that the top edge is +1.
func pixelToNDC(px, py, w, h float64) (nx, ny float64) {
	return px/w*2 - 1, 1 - py/h*2
}

// CenterOn moves the camera to the given world position and cancels any
// running scroll.
func (c *Camera) CenterOn(x, y float64) {
	c.X, c.Y = x, y
	c.scrollTween = nil
}

// ScrollTo animates the camera to the given world position over duration
// seconds. The animation advances on each Scene.Step.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances the scroll animation by dt seconds.
func (c *Camera) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}
